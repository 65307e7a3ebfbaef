package invoke

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/cezary12/WebEssentials2013/compile"
	"github.com/cezary12/WebEssentials2013/internal/helpers"
)

// Node launches a compiler's entry script under the bundled node runtime as
// a child process. The command line is shell-wrapped so both output streams
// are redirected into the capture file and the shell exits with the child's
// exit code; nothing is read from the child's live streams.
type Node struct {
	runtimePath string
	shellPath   string
	logHandler  slog.Handler
	logger      *slog.Logger
}

// NodeOption configures a Node invoker during construction.
type NodeOption func(*Node) error

// WithRuntimePath sets the path of the node binary. The default resolves
// "node" through PATH at launch time.
func WithRuntimePath(path string) NodeOption {
	return func(n *Node) error {
		if path == "" {
			return ErrRuntimeEmpty
		}
		n.runtimePath = path
		return nil
	}
}

// WithShellPath sets the shell used to wrap the command line.
func WithShellPath(path string) NodeOption {
	return func(n *Node) error {
		if path == "" {
			return ErrShellEmpty
		}
		n.shellPath = path
		return nil
	}
}

// NewNode creates a child-process invoker with the provided options.
func NewNode(handler slog.Handler, opts ...NodeOption) (*Node, error) {
	n := &Node{
		runtimePath: "node",
		shellPath:   "/bin/sh",
	}

	for _, opt := range opts {
		if err := opt(n); err != nil {
			return nil, fmt.Errorf("error applying invoker option: %w", err)
		}
	}

	n.logHandler, n.logger = helpers.SetupLogger(handler, "node", "invoke.Node")
	return n, nil
}

func (n *Node) String() string {
	return "invoke.Node"
}

// Invoke implements compile.Invoker. The working directory is the source
// file's directory. A non-zero exit is reported through the Outcome; only a
// shell that cannot be started at all is an error. Cancelling the context
// kills the child and surfaces the context's error.
func (n *Node) Invoke(ctx context.Context, req compile.Request) (*compile.Outcome, error) {
	logger := n.logger.WithGroup("Invoke").With("source", req.SourcePath)

	cmdLine := fmt.Sprintf("%s %s %s > %s 2>&1",
		helpers.ShellQuote(n.runtimePath),
		helpers.ShellQuote(req.ScriptPath),
		req.Arguments,
		helpers.ShellQuote(req.OutputPath))

	cmd := exec.CommandContext(ctx, n.shellPath, "-c", cmdLine)
	cmd.Dir = filepath.Dir(req.SourcePath)

	logger.Debug("launching compiler", "cmd", cmdLine, "dir", cmd.Dir)

	exitCode := 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		switch {
		case ctx.Err() != nil:
			return nil, fmt.Errorf("compilation cancelled: %w", ctx.Err())
		case errors.As(err, &exitErr):
			exitCode = exitErr.ExitCode()
		default:
			return nil, fmt.Errorf("%w: %v", ErrProcessStart, err)
		}
	}

	output, err := os.ReadFile(req.OutputPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading capture file: %w", err)
	}

	logger.Debug("compiler exited", "exitCode", exitCode, "captured", len(output))
	return &compile.Outcome{ExitCode: exitCode, Output: string(output)}, nil
}
