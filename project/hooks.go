package project

// Hooks are the host-side collaborators the pipeline calls around an
// artifact write. A host editor typically backs these with its own
// source-control and project-system integrations; no return value is
// consumed from either call.
type Hooks interface {
	// PrepareForWrite receives the target path before the compiler writes
	// to it, so hosts that need a check-out can perform one.
	PrepareForWrite(targetPath string)

	// RegisterGeneratedFile receives source and target paths after a
	// successful, post-processed compilation so the host can attach the
	// artifact to its project.
	RegisterGeneratedFile(sourcePath, targetPath string)
}

// NoopHooks satisfies Hooks for hosts without a project system.
type NoopHooks struct{}

func (NoopHooks) PrepareForWrite(string) {}

func (NoopHooks) RegisterGeneratedFile(string, string) {}
