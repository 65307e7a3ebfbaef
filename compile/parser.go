package compile

// ErrorParser turns captured diagnostic text into structured records.
//
// Implementations never return a failure with zero diagnostics for non-empty
// input: text that cannot be decoded degrades to a single synthetic record
// carrying the raw text as its message.
type ErrorParser interface {
	Parse(text string) []Diagnostic
}
