package pipeline

import (
	"log/slog"

	"github.com/cezary12/WebEssentials2013/compile"
	"github.com/cezary12/WebEssentials2013/project"
)

// Option configures a Pipeline during construction.
type Option func(*Pipeline) error

// WithLogHandler sets the log handler the pipeline and its defaults report
// through. This handler is the logging sink for compilation failures, parse
// anomalies and missing-output conditions.
func WithLogHandler(handler slog.Handler) Option {
	return func(p *Pipeline) error {
		if handler == nil {
			return ErrLogHandlerNil
		}
		p.logHandler = handler
		return nil
	}
}

// WithInvoker replaces the default child-process invoker, e.g. with the
// WASI invoker for front-ends shipping a wasm toolchain.
func WithInvoker(inv compile.Invoker) Option {
	return func(p *Pipeline) error {
		if inv == nil {
			return ErrInvokerNil
		}
		p.invoker = inv
		return nil
	}
}

// WithParser overrides the parser selected from the compiler's Pattern().
func WithParser(parser compile.ErrorParser) Option {
	return func(p *Pipeline) error {
		if parser == nil {
			return ErrParserNil
		}
		p.parser = parser
		return nil
	}
}

// WithHooks sets the host collaborators called around the artifact write.
func WithHooks(hooks project.Hooks) Option {
	return func(p *Pipeline) error {
		if hooks == nil {
			return ErrHooksNil
		}
		p.hooks = hooks
		return nil
	}
}

// WithTestMode suppresses the register-generated-file hook. The switch is
// per pipeline rather than process-wide, so concurrent test runs cannot race
// on shared state.
func WithTestMode(enabled bool) Option {
	return func(p *Pipeline) error {
		p.testMode = enabled
		return nil
	}
}

// WithTempDir sets the directory capture files are created in. Defaults to
// the system temp directory.
func WithTempDir(dir string) Option {
	return func(p *Pipeline) error {
		if dir == "" {
			return ErrTempDirEmpty
		}
		p.tempDir = dir
		return nil
	}
}
