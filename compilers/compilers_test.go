package compilers

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cezary12/WebEssentials2013/parse"
)

func TestSass_PatternDefaultsColumn(t *testing.T) {
	t.Parallel()

	sass := NewSass("/opt/sass")
	p, err := parse.NewPattern(slog.NewTextHandler(os.Stderr, nil), sass.Name(), sass.Pattern())
	require.NoError(t, err)

	parsed := p.Parse(`Syntax error: Invalid CSS after "body {": expected "}" on line 3 of styles.scss`)
	require.Len(t, parsed, 1)
	assert.Equal(t, `Invalid CSS after "body {": expected "}"`, parsed[0].Message)
	assert.Equal(t, "styles.scss", parsed[0].FileName)
	assert.Equal(t, 3, parsed[0].Line)
	assert.Equal(t, 1, parsed[0].Column, "the sass grammar has no column group")
}

func TestCoffeeScript_UsesStructuredDecode(t *testing.T) {
	t.Parallel()

	coffee := NewCoffeeScript("/opt/coffee")
	assert.Nil(t, coffee.Pattern())

	args, err := coffee.BuildArguments("/proj/app.coffee", "/proj/js/app.js")
	require.NoError(t, err)
	assert.Equal(t, `--compile --output '/proj/js' '/proj/app.coffee'`, args)
}

func TestLiveScript_UsesStructuredDecode(t *testing.T) {
	t.Parallel()

	lsc := NewLiveScript("/opt/lsc")
	assert.Nil(t, lsc.Pattern())

	args, err := lsc.BuildArguments("/proj/app.ls", "/proj/js/app.js")
	require.NoError(t, err)
	assert.Equal(t, `--compile --output '/proj/js' '/proj/app.ls'`, args)
}

func TestFrontEnds_IdentityPostProcess(t *testing.T) {
	t.Parallel()

	for _, c := range []interface {
		PostProcess(string, string, string) (string, error)
	}{
		NewSass("/opt/sass"),
		NewCoffeeScript("/opt/coffee"),
		NewLiveScript("/opt/lsc"),
	} {
		out, err := c.PostProcess("content", "/a", "/b")
		require.NoError(t, err)
		assert.Equal(t, "content", out)
	}
}
