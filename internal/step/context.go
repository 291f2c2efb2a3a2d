package step

import (
	"context"
	"path/filepath"

	"github.com/alexisbeaulieu97/javacstep/internal/console"
	"github.com/alexisbeaulieu97/javacstep/internal/ports"
)

// ExecutionContext carries the collaborators a step needs for one run.
type ExecutionContext struct {
	Context  context.Context
	Executor ports.ProcessExecutor
	Events   ports.EventPublisher
	Console  *console.Console
	Logger   ports.Logger
	// WorkDir anchors relative paths and is the process working directory.
	WorkDir string
	Env     map[string]string
}

// Ctx returns the context for blocking calls.
func (ec *ExecutionContext) Ctx() context.Context {
	if ec == nil || ec.Context == nil {
		return context.Background()
	}
	return ec.Context
}

// Log returns the configured logger or a no-op one.
func (ec *ExecutionContext) Log() ports.Logger {
	if ec == nil || ec.Logger == nil {
		return ports.NewNoOpLogger()
	}
	return ec.Logger
}

// PostConsoleMessage publishes one message on the console channel.
func (ec *ExecutionContext) PostConsoleMessage(level ports.LogLevel, message string) error {
	return ec.Post(ports.NewConsoleEvent(level, message))
}

// Post publishes event when an event channel is configured.
func (ec *ExecutionContext) Post(event ports.DomainEvent) error {
	if ec == nil || ec.Events == nil {
		return nil
	}
	return ec.Events.Publish(ec.Ctx(), event)
}

// Resolve makes path absolute against WorkDir, or against the current
// directory when no WorkDir is set.
func (ec *ExecutionContext) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	if ec != nil && ec.WorkDir != "" {
		return filepath.Join(ec.WorkDir, path)
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
