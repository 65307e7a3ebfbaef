package parse

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/cezary12/WebEssentials2013/compile"
	"github.com/cezary12/WebEssentials2013/internal/helpers"
)

// Capture group names every diagnostic grammar works with. fileName and
// column may be absent from a grammar; message and line may not.
const (
	groupFileName = "fileName"
	groupMessage  = "message"
	groupLine     = "line"
	groupColumn   = "column"
)

// Pattern extracts one diagnostic from free-text compiler output using a
// compiler-supplied grammar with named capture groups.
type Pattern struct {
	re         *regexp.Regexp
	logHandler slog.Handler
	logger     *slog.Logger
}

// NewPattern creates a pattern parser for the named compiler. The grammar
// must define the message and line capture groups; a grammar without them is
// a defect in the front-end, reported here rather than at parse time.
func NewPattern(handler slog.Handler, compilerName string, re *regexp.Regexp) (*Pattern, error) {
	if re == nil {
		return nil, ErrPatternNil
	}
	for _, required := range []string{groupMessage, groupLine} {
		if re.SubexpIndex(required) < 0 {
			return nil, fmt.Errorf("%w: %s", ErrPatternIncomplete, required)
		}
	}

	handler, logger := helpers.SetupLogger(handler, compilerName, "parse.Pattern")

	return &Pattern{
		re:         re,
		logHandler: handler,
		logger:     logger,
	}, nil
}

func (p *Pattern) String() string {
	return "parse.Pattern"
}

// Parse implements compile.ErrorParser.
//
// Non-matching text degrades to a single synthetic record carrying the raw
// text and nothing else. A match yields exactly one record built from the
// captured groups, with the column defaulting to 1 when its capture is empty.
func (p *Pattern) Parse(text string) []compile.Diagnostic {
	m := p.re.FindStringSubmatch(text)
	if m == nil {
		p.logger.Warn("diagnostic output did not match the grammar", "raw", text)
		return []compile.Diagnostic{{Message: text}}
	}

	line, err := strconv.Atoi(p.group(m, groupLine))
	if err != nil {
		// A grammar whose line group can capture non-numeric text is
		// broken; surface the raw text instead of a half-built record.
		p.logger.Error("grammar captured a non-numeric line number", "error", err, "raw", text)
		return []compile.Diagnostic{{Message: text}}
	}

	column := 1
	if c := p.group(m, groupColumn); c != "" {
		column, err = strconv.Atoi(c)
		if err != nil {
			p.logger.Error("grammar captured a non-numeric column number", "error", err, "raw", text)
			return []compile.Diagnostic{{Message: text}}
		}
	}

	return []compile.Diagnostic{{
		FileName: p.group(m, groupFileName),
		Message:  p.group(m, groupMessage),
		Line:     line,
		Column:   column,
	}}
}

// group returns the capture for a named group, or "" when the grammar does
// not define it.
func (p *Pattern) group(m []string, name string) string {
	idx := p.re.SubexpIndex(name)
	if idx < 0 || idx >= len(m) {
		return ""
	}
	return m[idx]
}
