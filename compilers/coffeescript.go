package compilers

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/cezary12/WebEssentials2013/internal/helpers"
)

// CoffeeScript is the front-end for the coffee entry script. The compiler
// reports errors as a JSON array on its output stream, so no pattern is
// supplied and the structured-decode parser takes over.
type CoffeeScript struct {
	scriptPath string
}

// NewCoffeeScript creates a CoffeeScript front-end from the absolute path of
// the bundled coffee script.
func NewCoffeeScript(scriptPath string) *CoffeeScript {
	return &CoffeeScript{scriptPath: scriptPath}
}

func (c *CoffeeScript) Name() string { return "CoffeeScript" }

func (c *CoffeeScript) ScriptPath() string { return c.scriptPath }

func (c *CoffeeScript) Pattern() *regexp.Regexp { return nil }

// BuildArguments points the compiler at the target's directory; coffee names
// the artifact after the source itself.
func (c *CoffeeScript) BuildArguments(sourcePath, targetPath string) (string, error) {
	return fmt.Sprintf("--compile --output %s %s",
		helpers.ShellQuote(filepath.Dir(targetPath)), helpers.ShellQuote(sourcePath)), nil
}

func (c *CoffeeScript) PostProcess(content, _, _ string) (string, error) {
	return content, nil
}
