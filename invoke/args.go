package invoke

import "strings"

// splitArgs splits compiler argument text into argv entries the way the
// shell wrapper of the Node invoker would: whitespace separates arguments,
// single quotes protect everything inside them, double quotes protect
// whitespace and honor backslash escapes. Front-ends build quoted argument
// text, so both invokers must agree on how it comes apart.
func splitArgs(text string) []string {
	var args []string
	var cur strings.Builder
	inArg := false

	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case ' ', '\t', '\n':
			if inArg {
				args = append(args, cur.String())
				cur.Reset()
				inArg = false
			}
		case '\'':
			inArg = true
			for i++; i < len(text) && text[i] != '\''; i++ {
				cur.WriteByte(text[i])
			}
		case '"':
			inArg = true
			for i++; i < len(text) && text[i] != '"'; i++ {
				if text[i] == '\\' && i+1 < len(text) {
					i++
				}
				cur.WriteByte(text[i])
			}
		case '\\':
			inArg = true
			if i+1 < len(text) {
				i++
			}
			cur.WriteByte(text[i])
		default:
			inArg = true
			cur.WriteByte(c)
		}
	}

	if inArg {
		args = append(args, cur.String())
	}
	return args
}
