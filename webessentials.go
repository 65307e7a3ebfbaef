package webessentials

import (
	"github.com/cezary12/WebEssentials2013/compile"
	"github.com/cezary12/WebEssentials2013/compilers"
	"github.com/cezary12/WebEssentials2013/pipeline"
)

// NewLess creates a compilation pipeline for LESS stylesheets. scriptPath is
// the absolute path of the bundled lessc entry script.
func NewLess(scriptPath string, opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	return pipeline.New(compilers.NewLess(scriptPath), opts...)
}

// NewSass creates a compilation pipeline for Sass stylesheets.
func NewSass(scriptPath string, opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	return pipeline.New(compilers.NewSass(scriptPath), opts...)
}

// NewCoffeeScript creates a compilation pipeline for CoffeeScript sources.
func NewCoffeeScript(scriptPath string, opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	return pipeline.New(compilers.NewCoffeeScript(scriptPath), opts...)
}

// NewLiveScript creates a compilation pipeline for LiveScript sources.
func NewLiveScript(scriptPath string, opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	return pipeline.New(compilers.NewLiveScript(scriptPath), opts...)
}

// NewCompiler creates a compilation pipeline for a caller-supplied member of
// the compiler family.
func NewCompiler(c compile.Compiler, opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	return pipeline.New(c, opts...)
}
