package helpers

import "strings"

// ShellQuote wraps s in single quotes for the POSIX shell, escaping embedded
// single quotes. Unlike %q, nothing inside single quotes is subject to
// expansion, so paths carrying $, backticks or backslashes survive the shell
// wrapper unchanged.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
