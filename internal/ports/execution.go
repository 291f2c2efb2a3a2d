package ports

import "context"

// ProcessParams describes one subprocess invocation.
type ProcessParams struct {
	// Command holds the program path followed by its arguments.
	Command []string
	// Dir is the working directory; empty means the current directory.
	Dir string
	// Env holds variables added to the inherited environment.
	Env map[string]string
}

// ProcessResult is the fully collected outcome of a process that ran to
// completion.
type ProcessResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// ProcessExecutor launches a process and blocks until it terminates, returning
// its exit code and complete stdout/stderr. A process that cannot be started
// yields an error (see pkg/errors.LaunchError) instead of a result; a non-zero
// exit code is not an error. Cancellation and timeouts are carried by ctx.
type ProcessExecutor interface {
	Execute(ctx context.Context, params ProcessParams) (ProcessResult, error)
}
