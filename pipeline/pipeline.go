package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/cezary12/WebEssentials2013/compile"
	"github.com/cezary12/WebEssentials2013/internal/helpers"
	"github.com/cezary12/WebEssentials2013/invoke"
	"github.com/cezary12/WebEssentials2013/parse"
	"github.com/cezary12/WebEssentials2013/project"
)

// Pipeline sequences one compilation: prerequisite check, argument assembly,
// process invocation, result validation, post-processing and host
// registration. Every invocation owns its own capture file, process and
// result, so concurrent Compile calls on different sources never share
// mutable state.
type Pipeline struct {
	compiler   compile.Compiler
	invoker    compile.Invoker
	parser     compile.ErrorParser
	hooks      project.Hooks
	testMode   bool
	tempDir    string
	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a Pipeline for one member of the compiler family. With no
// options it launches the compiler's entry script under node and selects the
// parser from the compiler's Pattern: a grammar picks the pattern parser,
// nil picks structured decode.
func New(compiler compile.Compiler, opts ...Option) (*Pipeline, error) {
	if compiler == nil {
		return nil, ErrCompilerNil
	}

	p := &Pipeline{
		compiler: compiler,
		hooks:    project.NoopHooks{},
		tempDir:  os.TempDir(),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, fmt.Errorf("error applying pipeline option: %w", err)
		}
	}

	p.logHandler, p.logger = helpers.SetupLogger(p.logHandler, compiler.Name(), "Pipeline")

	if p.invoker == nil {
		node, err := invoke.NewNode(p.logHandler)
		if err != nil {
			return nil, err
		}
		p.invoker = node
	}

	if p.parser == nil {
		if re := compiler.Pattern(); re != nil {
			pattern, err := parse.NewPattern(p.logHandler, compiler.Name(), re)
			if err != nil {
				return nil, err
			}
			p.parser = pattern
		} else {
			p.parser = parse.NewJSON(p.logHandler, compiler.Name())
		}
	}

	return p, nil
}

func (p *Pipeline) String() string {
	return fmt.Sprintf("pipeline.Pipeline{Compiler: %s}", p.compiler.Name())
}

// Compile runs the full pipeline for one source file.
//
// An ineligible source returns (nil, nil): skipped silently, no process
// spawned. A compiler that runs but fails returns a populated, unsuccessful
// Result with a nil error; only conditions like a process that cannot start
// escape as errors. The capture file is removed before Compile returns,
// whatever path the invocation took.
func (p *Pipeline) Compile(ctx context.Context, sourcePath, targetPath string) (*compile.Result, error) {
	logger := p.logger.WithGroup("Compile").With("source", sourcePath)

	ok, err := CanCompile(sourcePath)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.Debug("skipping source with a same-stem image sibling")
		return nil, nil
	}

	args, err := p.compiler.BuildArguments(sourcePath, targetPath)
	if err != nil {
		return nil, fmt.Errorf("assembling compiler arguments: %w", err)
	}

	capturePath := filepath.Join(p.tempDir, fmt.Sprintf("compile-%s.out", uuid.NewString()))
	defer func() { _ = os.Remove(capturePath) }()

	rst := compile.NewResult(sourcePath)

	p.hooks.PrepareForWrite(targetPath)

	outcome, err := p.invoker.Invoke(ctx, compile.Request{
		SourcePath: sourcePath,
		TargetPath: targetPath,
		ScriptPath: p.compiler.ScriptPath(),
		Arguments:  args,
		OutputPath: capturePath,
	})
	if err != nil {
		return nil, err
	}

	if err := p.validate(outcome, targetPath, rst); err != nil {
		return nil, err
	}

	if !rst.Success {
		logger.Error("compilation failed",
			"compiler", p.compiler.Name(), "exitCode", outcome.ExitCode)
		return rst, nil
	}

	processed, err := p.compiler.PostProcess(rst.Output, sourcePath, targetPath)
	if err != nil {
		return nil, fmt.Errorf("post-processing artifact: %w", err)
	}
	rst.Output = processed

	if !p.testMode {
		p.hooks.RegisterGeneratedFile(sourcePath, targetPath)
	}

	logger.Debug("compilation succeeded", "target", targetPath)
	return rst, nil
}
