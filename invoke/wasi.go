package invoke

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"github.com/tetratelabs/wazero/sys"

	"github.com/cezary12/WebEssentials2013/compile"
	"github.com/cezary12/WebEssentials2013/internal/helpers"
)

// WASI runs a WASM build of a compiler toolchain in-process under wazero's
// WASI host, for front-ends that ship a wasm binary instead of a node
// script. The contract matches Node: argv carries the compiler arguments,
// stdout and stderr land in the capture file, and the exit code comes from
// the module's proc_exit.
type WASI struct {
	runtimeConfig wazero.RuntimeConfig
	logHandler    slog.Handler
	logger        *slog.Logger
}

// WASIOption configures a WASI invoker during construction.
type WASIOption func(*WASI) error

// WithRuntimeConfig sets a custom wazero runtime configuration, allowing
// callers to share a compilation cache or set memory limits. Custom configs
// should keep WithCloseOnContextDone enabled, or cancelling a compilation
// will no longer stop a running module.
func WithRuntimeConfig(cfg wazero.RuntimeConfig) WASIOption {
	return func(w *WASI) error {
		if cfg == nil {
			return fmt.Errorf("runtime config cannot be nil")
		}
		w.runtimeConfig = cfg
		return nil
	}
}

// NewWASI creates an in-process WASI invoker with the provided options.
func NewWASI(handler slog.Handler, opts ...WASIOption) (*WASI, error) {
	// Close-on-context-done makes the runtime interrupt a running module
	// when the context fires; without it a cancelled compilation would run
	// to completion anyway.
	w := &WASI{
		runtimeConfig: wazero.NewRuntimeConfig().WithCloseOnContextDone(true),
	}

	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, fmt.Errorf("error applying invoker option: %w", err)
		}
	}

	w.logHandler, w.logger = helpers.SetupLogger(handler, "wasi", "invoke.WASI")
	return w, nil
}

func (w *WASI) String() string {
	return "invoke.WASI"
}

// Invoke implements compile.Invoker. The source file's directory is mounted
// as the module's filesystem root, mirroring the working-directory behavior
// of the child-process invoker. A module that cannot be loaded or
// instantiated is an error; a proc_exit with any code is a normal Outcome.
func (w *WASI) Invoke(ctx context.Context, req compile.Request) (*compile.Outcome, error) {
	logger := w.logger.WithGroup("Invoke").With("source", req.SourcePath)

	wasmBytes, err := os.ReadFile(req.ScriptPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModuleLoad, err)
	}

	capture, err := os.Create(req.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("creating capture file: %w", err)
	}
	defer func() { _ = capture.Close() }()

	rt := wazero.NewRuntimeWithConfig(ctx, w.runtimeConfig)
	defer func() { _ = rt.Close(ctx) }()
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)

	workDir := filepath.Dir(req.SourcePath)
	args := append([]string{filepath.Base(req.ScriptPath)}, splitArgs(req.Arguments)...)

	cfg := wazero.NewModuleConfig().
		WithStdout(capture).
		WithStderr(capture).
		WithArgs(args...).
		WithFSConfig(wazero.NewFSConfig().WithDirMount(workDir, "/"))

	logger.Debug("instantiating compiler module", "args", args, "dir", workDir)

	exitCode := 0
	if _, err := rt.InstantiateWithConfig(ctx, wasmBytes, cfg); err != nil {
		var exitErr *sys.ExitError
		switch {
		case ctx.Err() != nil:
			return nil, fmt.Errorf("compilation cancelled: %w", ctx.Err())
		case errors.As(err, &exitErr):
			exitCode = int(exitErr.ExitCode())
		default:
			return nil, fmt.Errorf("%w: %v", ErrProcessStart, err)
		}
	}

	output, err := os.ReadFile(req.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("reading capture file: %w", err)
	}

	logger.Debug("compiler module exited", "exitCode", exitCode, "captured", len(output))
	return &compile.Outcome{ExitCode: exitCode, Output: string(output)}, nil
}
