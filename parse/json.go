package parse

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/cezary12/WebEssentials2013/compile"
	"github.com/cezary12/WebEssentials2013/internal/helpers"
)

// JSON decodes diagnostic text as a serialized array of error records.
// It is the parser for compilers that report structured errors on their
// output stream instead of free text.
type JSON struct {
	logHandler slog.Handler
	logger     *slog.Logger
}

// NewJSON creates a structured-decode parser for the named compiler.
func NewJSON(handler slog.Handler, compilerName string) *JSON {
	handler, logger := helpers.SetupLogger(handler, compilerName, "parse.JSON")

	return &JSON{
		logHandler: handler,
		logger:     logger,
	}
}

func (p *JSON) String() string {
	return "parse.JSON"
}

// Parse implements compile.ErrorParser.
//
// Empty input yields nil, which is distinguishable from a decoded empty
// array. A decoded empty array is an anomaly (a compiler that exits non-zero
// should say why) and is logged, but still returned as-is. Malformed input
// degrades to a single synthetic record carrying the raw text.
func (p *JSON) Parse(text string) []compile.Diagnostic {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var diags []compile.Diagnostic
	if err := json.Unmarshal([]byte(text), &diags); err != nil {
		p.logger.Warn("diagnostic output is not a valid error array", "error", err, "raw", text)
		return []compile.Diagnostic{{Message: text}}
	}

	if len(diags) == 0 {
		p.logger.Warn("compiler exited non-zero but reported no errors")
		return []compile.Diagnostic{}
	}

	// Records that locate an error but omit the column get the same
	// default a column-less grammar would.
	for i := range diags {
		if diags[i].Line > 0 && diags[i].Column < 1 {
			diags[i].Column = 1
		}
	}

	return diags
}
