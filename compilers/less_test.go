package compilers

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cezary12/WebEssentials2013/compile"
	"github.com/cezary12/WebEssentials2013/parse"
)

func TestLess_Pattern(t *testing.T) {
	t.Parallel()

	less := NewLess("/opt/node_modules/less/bin/lessc")
	p, err := parse.NewPattern(slog.NewTextHandler(os.Stderr, nil), less.Name(), less.Pattern())
	require.NoError(t, err)

	parsed := p.Parse("ParseError: Unrecognised input in styles.less on line 4, column 3:")
	require.Len(t, parsed, 1)
	assert.Equal(t, compile.Diagnostic{
		FileName: "styles.less",
		Message:  "ParseError: Unrecognised input",
		Line:     4,
		Column:   3,
	}, parsed[0])
}

func TestLess_BuildArguments(t *testing.T) {
	t.Parallel()

	less := NewLess("/opt/lessc")
	args, err := less.BuildArguments("/proj/a b.less", "/proj/css/a b.css")
	require.NoError(t, err)
	assert.Equal(t, `--no-color --relative-urls '/proj/a b.less' '/proj/css/a b.css'`, args)
}

func TestLess_PostProcess(t *testing.T) {
	t.Parallel()

	less := NewLess("/opt/lessc")

	t.Run("same directory untouched", func(t *testing.T) {
		t.Parallel()

		content := `a{background:url("img/x.png")}`
		out, err := less.PostProcess(content, "/proj/styles.less", "/proj/styles.css")
		require.NoError(t, err)
		assert.Equal(t, content, out)
	})

	t.Run("relative references rebased", func(t *testing.T) {
		t.Parallel()

		content := `a{background:url("img/x.png")}` +
			`b{background:url(/abs.png)}` +
			`c{background:url(data:image/png;base64,AA)}` +
			`d{background:url(https://cdn.example.com/y.png)}`
		out, err := less.PostProcess(content, "/proj/styles.less", "/proj/css/styles.css")
		require.NoError(t, err)
		assert.Equal(t, `a{background:url("../img/x.png")}`+
			`b{background:url(/abs.png)}`+
			`c{background:url(data:image/png;base64,AA)}`+
			`d{background:url(https://cdn.example.com/y.png)}`, out)
	})

	t.Run("empty target untouched", func(t *testing.T) {
		t.Parallel()

		out, err := less.PostProcess("a{}", "/proj/styles.less", "")
		require.NoError(t, err)
		assert.Equal(t, "a{}", out)
	})
}
