package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/cezary12/WebEssentials2013/compile"
)

// validate inspects the completed run and populates the result.
//
// Exit code 0 is a success: the target file, when a path was given, is read
// back as the artifact. A missing target under exit 0 is a logged failure
// with no diagnostics, distinct from the non-zero path. A non-zero exit has
// its captured text normalized to Unix line endings and handed to the
// configured parser.
func (p *Pipeline) validate(outcome *compile.Outcome, targetPath string, rst *compile.Result) error {
	logger := p.logger.WithGroup("validate").With("source", rst.SourceFileName)

	if outcome.ExitCode == 0 {
		if targetPath != "" {
			content, err := os.ReadFile(targetPath)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					logger.Error("compiler reported success but produced no output file",
						"compiler", p.compiler.Name(), "target", targetPath)
					return nil
				}
				return fmt.Errorf("reading compiled output: %w", err)
			}
			rst.Output = string(content)
		}
		rst.Success = true
		return nil
	}

	text := strings.ReplaceAll(outcome.Output, "\r", "")
	rst.Diagnostics = p.parser.Parse(text)
	return nil
}
