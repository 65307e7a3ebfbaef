package compile

import "fmt"

// Diagnostic is one structured compiler complaint. Line and Column are
// 1-based when present; Column defaults to 1 when a grammar captures none.
type Diagnostic struct {
	FileName string `json:"fileName,omitempty"`
	Message  string `json:"message"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

func (d Diagnostic) String() string {
	if d.FileName == "" {
		return d.Message
	}
	return fmt.Sprintf("%s(%d,%d): %s", d.FileName, d.Line, d.Column, d.Message)
}

// Result is the outcome of one compilation attempt. A fresh Result is created
// per invocation and populated by exactly one validation pass; it holds no
// resources and needs no teardown.
type Result struct {
	// SourceFileName identifies the input; set at construction.
	SourceFileName string

	// Success is false until validation proves otherwise.
	Success bool

	// Output is the compiled artifact's text content when Success is true.
	// A front-end's post-processing step may rewrite it once.
	Output string

	// Diagnostics is the ordered error list when the compiler exited
	// non-zero. It stays nil for the success path and for the
	// missing-output failure mode.
	Diagnostics []Diagnostic
}

// NewResult creates an empty, unsuccessful Result for the given source file.
func NewResult(sourceFileName string) *Result {
	return &Result{SourceFileName: sourceFileName}
}

func (r *Result) String() string {
	return fmt.Sprintf(
		"Result{Source: %s, Success: %t, Diagnostics: %d}",
		r.SourceFileName, r.Success, len(r.Diagnostics))
}
