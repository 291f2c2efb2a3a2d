package process

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/javacstep/internal/ports"
	javacerrors "github.com/alexisbeaulieu97/javacstep/pkg/errors"
)

// FakeProcess is the canned outcome of a fake invocation. A non-nil LaunchErr
// simulates a program that could not be started.
type FakeProcess struct {
	ExitCode  int
	Stdout    string
	Stderr    string
	LaunchErr error
}

// FakeExecutor is a ports.ProcessExecutor that never spawns anything. It
// records every invocation.
type FakeExecutor struct {
	respond func(ports.ProcessParams) FakeProcess

	mu    sync.Mutex
	calls []ports.ProcessParams
}

// NewFakeExecutor answers each invocation with respond(params).
func NewFakeExecutor(respond func(ports.ProcessParams) FakeProcess) *FakeExecutor {
	return &FakeExecutor{respond: respond}
}

// NewConstantFakeExecutor answers every invocation with p.
func NewConstantFakeExecutor(p FakeProcess) *FakeExecutor {
	return NewFakeExecutor(func(ports.ProcessParams) FakeProcess { return p })
}

// Execute implements ports.ProcessExecutor.
func (f *FakeExecutor) Execute(ctx context.Context, params ports.ProcessParams) (ports.ProcessResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, params)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return ports.ProcessResult{}, err
	}

	p := f.respond(params)
	if p.LaunchErr != nil {
		program := ""
		if len(params.Command) > 0 {
			program = params.Command[0]
		}
		return ports.ProcessResult{}, javacerrors.NewLaunchError(program, p.LaunchErr)
	}
	return ports.ProcessResult{ExitCode: p.ExitCode, Stdout: p.Stdout, Stderr: p.Stderr}, nil
}

// Calls returns the recorded invocations.
func (f *FakeExecutor) Calls() []ports.ProcessParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ports.ProcessParams(nil), f.calls...)
}

var _ ports.ProcessExecutor = (*FakeExecutor)(nil)
