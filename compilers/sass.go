package compilers

import (
	"fmt"
	"regexp"

	"github.com/cezary12/WebEssentials2013/internal/helpers"
)

// The sass CLI reports errors without a column, so parsed diagnostics
// default to column 1:
//
//	Syntax error: Invalid CSS after "body {": expected "}" on line 3 of styles.scss
var sassErrorPattern = regexp.MustCompile(
	`(?m)^Syntax error:\s*(?P<message>.+) on line (?P<line>\d+) of (?P<fileName>.+)$`)

// Sass is the front-end for the sass entry script.
type Sass struct {
	scriptPath string
}

// NewSass creates a Sass front-end from the absolute path of the bundled
// sass script.
func NewSass(scriptPath string) *Sass {
	return &Sass{scriptPath: scriptPath}
}

func (s *Sass) Name() string { return "Sass" }

func (s *Sass) ScriptPath() string { return s.scriptPath }

func (s *Sass) Pattern() *regexp.Regexp { return sassErrorPattern }

func (s *Sass) BuildArguments(sourcePath, targetPath string) (string, error) {
	return fmt.Sprintf("--no-color %s %s",
		helpers.ShellQuote(sourcePath), helpers.ShellQuote(targetPath)), nil
}

func (s *Sass) PostProcess(content, _, _ string) (string, error) {
	return content, nil
}
