package compilers

import (
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cezary12/WebEssentials2013/internal/helpers"
)

// lessc writes its diagnostics as free text, one parse error per run:
//
//	ParseError: Unrecognised input in styles.less on line 4, column 3:
var lessErrorPattern = regexp.MustCompile(
	`(?m)^(?P<message>.+) in (?P<fileName>.+) on line (?P<line>\d+), column (?P<column>\d+):`)

// Relative references inside the artifact that need rebasing when the
// artifact lands in a different directory than its source.
var lessURLPattern = regexp.MustCompile(`url\((['"]?)([^'")]+?)(['"]?)\)`)

// Less is the front-end for the lessc entry script.
type Less struct {
	scriptPath string
}

// NewLess creates a LESS front-end from the absolute path of the bundled
// lessc script.
func NewLess(scriptPath string) *Less {
	return &Less{scriptPath: scriptPath}
}

func (l *Less) Name() string { return "LESS" }

func (l *Less) ScriptPath() string { return l.scriptPath }

func (l *Less) Pattern() *regexp.Regexp { return lessErrorPattern }

func (l *Less) BuildArguments(sourcePath, targetPath string) (string, error) {
	return fmt.Sprintf("--no-color --relative-urls %s %s",
		helpers.ShellQuote(sourcePath), helpers.ShellQuote(targetPath)), nil
}

// PostProcess rebases relative url() references against the source
// directory when the artifact is written somewhere else. Absolute, protocol
// and data: references pass through untouched.
func (l *Less) PostProcess(content, sourcePath, targetPath string) (string, error) {
	if targetPath == "" {
		return content, nil
	}

	sourceDir := filepath.Dir(sourcePath)
	targetDir := filepath.Dir(targetPath)
	if sourceDir == targetDir {
		return content, nil
	}

	rel, err := filepath.Rel(targetDir, sourceDir)
	if err != nil {
		return "", fmt.Errorf("rebasing url references: %w", err)
	}
	prefix := filepath.ToSlash(rel)

	rewritten := lessURLPattern.ReplaceAllStringFunc(content, func(m string) string {
		parts := lessURLPattern.FindStringSubmatch(m)
		ref := parts[2]
		if strings.HasPrefix(ref, "/") || strings.Contains(ref, "//") ||
			strings.HasPrefix(ref, "data:") {
			return m
		}
		return fmt.Sprintf("url(%s%s%s)", parts[1], path.Join(prefix, ref), parts[3])
	})

	return rewritten, nil
}
