package step

import "fmt"

// ExecutionResult is the outcome of one step execution. It is either Success
// or Failure; callers branch on it with a type switch.
type ExecutionResult interface {
	// ExitCode is 0 for Success and the verbatim non-zero code for Failure.
	ExitCode() int
	// Message returns the captured stderr of a Failure.
	Message() (string, bool)

	isExecutionResult()
}

// Success carries no message, even when the process wrote to stderr.
type Success struct{}

// ExitCode implements ExecutionResult.
func (Success) ExitCode() int { return 0 }

// Message implements ExecutionResult.
func (Success) Message() (string, bool) { return "", false }

func (Success) isExecutionResult() {}

func (Success) String() string { return "success" }

// Failure records a process that ran to completion with a non-zero exit code.
type Failure struct {
	Code   int
	Stderr string
}

// ExitCode implements ExecutionResult.
func (f Failure) ExitCode() int { return f.Code }

// Message implements ExecutionResult.
func (f Failure) Message() (string, bool) { return f.Stderr, true }

func (Failure) isExecutionResult() {}

func (f Failure) String() string {
	return fmt.Sprintf("failure(exit=%d)", f.Code)
}

// ResultOf classifies an exit code. stderr is dropped on success.
func ResultOf(exitCode int, stderr string) ExecutionResult {
	if exitCode == 0 {
		return Success{}
	}
	return Failure{Code: exitCode, Stderr: stderr}
}

// IsSuccess reports whether r is a Success.
func IsSuccess(r ExecutionResult) bool {
	_, ok := r.(Success)
	return ok
}
