package compilers

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/cezary12/WebEssentials2013/internal/helpers"
)

// LiveScript is the front-end for the lsc entry script. Like CoffeeScript it
// reports errors as structured JSON, so no pattern is supplied.
type LiveScript struct {
	scriptPath string
}

// NewLiveScript creates a LiveScript front-end from the absolute path of the
// bundled lsc script.
func NewLiveScript(scriptPath string) *LiveScript {
	return &LiveScript{scriptPath: scriptPath}
}

func (l *LiveScript) Name() string { return "LiveScript" }

func (l *LiveScript) ScriptPath() string { return l.scriptPath }

func (l *LiveScript) Pattern() *regexp.Regexp { return nil }

func (l *LiveScript) BuildArguments(sourcePath, targetPath string) (string, error) {
	return fmt.Sprintf("--compile --output %s %s",
		helpers.ShellQuote(filepath.Dir(targetPath)), helpers.ShellQuote(sourcePath)), nil
}

func (l *LiveScript) PostProcess(content, _, _ string) (string, error) {
	return content, nil
}
