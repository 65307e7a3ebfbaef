package compile

import "context"

// Request describes one compiler launch.
type Request struct {
	// SourcePath is the file being compiled; its directory becomes the
	// working directory of the child so compiler-relative paths resolve
	// predictably.
	SourcePath string

	// TargetPath is where the compiler writes its artifact.
	TargetPath string

	// ScriptPath is the compiler's entry script.
	ScriptPath string

	// Arguments is the compiler-specific argument text.
	Arguments string

	// OutputPath is the capture file both stdout and stderr are
	// redirected into. The caller owns its lifecycle.
	OutputPath string
}

// Outcome is the observable end state of a compiler run. A non-zero exit
// code is a normal Outcome, not an error; only a process that could not be
// started at all surfaces as an error from Invoke.
type Outcome struct {
	ExitCode int
	Output   string
}

// Invoker launches a compiler and reports how it ended. Cancelling the
// context kills an in-flight run.
type Invoker interface {
	Invoke(ctx context.Context, req Request) (*Outcome, error)
}
