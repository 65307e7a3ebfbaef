package compile

import "regexp"

// Compiler is the capability set one member of the compiler family supplies.
// The pipeline depends only on this interface; each front-end contributes its
// entry script, command-line shape and diagnostic format, nothing more.
type Compiler interface {
	// Name identifies the compiler in log output.
	Name() string

	// ScriptPath is the absolute path to the compiler's entry script,
	// executed by the bundled runtime (or a WASM build of the toolchain
	// when paired with the WASI invoker).
	ScriptPath() string

	// Pattern is the diagnostic grammar with named capture groups
	// fileName, message, line and column. A nil pattern selects the
	// structured-decode parser instead.
	Pattern() *regexp.Regexp

	// BuildArguments assembles the compiler-specific argument text placed
	// between the entry script and the output redirection.
	BuildArguments(sourcePath, targetPath string) (string, error)

	// PostProcess transforms the produced artifact text before it is
	// handed back to the caller.
	PostProcess(content, sourcePath, targetPath string) (string, error)
}
