// Package step defines the unit of build execution and the outcome it
// produces.
package step

import (
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/javacstep/internal/ports"
)

// Step is one unit of build execution.
type Step interface {
	ShortName() string
	// Description renders what Execute would do, e.g. the command line.
	Description(ec *ExecutionContext) string
	// Execute runs the step. Failures of the tool it drives are reported as a
	// Failure result; errors are reserved for the step not being able to run.
	Execute(ec *ExecutionContext) (ExecutionResult, error)
}

// Run executes s, surrounding it with lifecycle events and a log entry.
func Run(ec *ExecutionContext, s Step) (ExecutionResult, error) {
	if s == nil {
		return nil, fmt.Errorf("step is nil")
	}
	ctx := ec.Ctx()
	log := ec.Log().With("component", "step", "step", s.ShortName())
	description := s.Description(ec)

	if err := ec.Post(ports.StepEvent{Type: ports.EventStepStarted, Step: s.ShortName(), Description: description}); err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := s.Execute(ec)
	elapsed := time.Since(start)
	if err != nil {
		log.Error(ctx, "step could not run", "error", err, "duration_ms", elapsed.Milliseconds())
		return nil, err
	}

	log.Debug(ctx, "step finished", "exit_code", result.ExitCode(), "duration_ms", elapsed.Milliseconds())
	if err := ec.Post(ports.StepEvent{Type: ports.EventStepFinished, Step: s.ShortName(), ExitCode: result.ExitCode()}); err != nil {
		return result, err
	}
	return result, nil
}
