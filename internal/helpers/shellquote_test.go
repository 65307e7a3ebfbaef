package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShellQuote(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `'/p/a b.css'`, ShellQuote("/p/a b.css"))
	assert.Equal(t, `'a $b'`, ShellQuote("a $b"))
	assert.Equal(t, "'`whoami`'", ShellQuote("`whoami`"))
	assert.Equal(t, `'it'\''s'`, ShellQuote("it's"))
	assert.Equal(t, "''", ShellQuote(""))
}
