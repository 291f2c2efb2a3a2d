package errors

import (
	"fmt"
)

// ParseError represents a configuration file that could not be decoded.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ExecutionError is a failure while preparing or running a step that is not a
// compiler diagnostic, for example an unwritable output directory.
type ExecutionError struct {
	Target string
	Err    error
}

// NewExecutionError constructs an ExecutionError.
func NewExecutionError(target string, err error) error {
	return &ExecutionError{Target: target, Err: err}
}

func (e *ExecutionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Target != "" {
		return fmt.Sprintf("execution error on %s: %v", e.Target, e.Err)
	}
	return fmt.Sprintf("execution error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *ExecutionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// LaunchError reports a process that could not be started at all. It is never
// produced for a process that ran and exited with a non-zero code.
type LaunchError struct {
	Program string
	Err     error
}

// NewLaunchError constructs a LaunchError for the given program path.
func NewLaunchError(program string, err error) error {
	return &LaunchError{Program: program, Err: err}
}

func (e *LaunchError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("launch error: %s: %v", e.Program, e.Err)
}

// Unwrap exposes the underlying error.
func (e *LaunchError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
