package ports

import "context"

const (
	// EventConsoleLog carries one discrete block of text meant for the user,
	// typically compiler output after a failed build step.
	EventConsoleLog = "console.log"
	// EventStepStarted is emitted before a step launches its process.
	EventStepStarted = "step.started"
	// EventStepFinished is emitted after a step produced a result.
	EventStepFinished = "step.finished"
)

// DomainEvent represents a significant occurrence within the build. Events
// carry structured payloads that subscribers use for logging or reporting.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish returns after all handlers ran, so the order in which a
// caller publishes is the order every subscriber observes. Implementations must
// be thread-safe.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler.
type Subscription interface {
	Unsubscribe()
}

// LogLevel classifies console messages.
type LogLevel string

const (
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warning"
	LogLevelError   LogLevel = "error"
)

// ConsoleEvent is a single text message for the console channel. Messages are
// delivered verbatim; they are never split or concatenated.
type ConsoleEvent struct {
	Level   LogLevel
	Message string
}

// NewConsoleEvent constructs a ConsoleEvent.
func NewConsoleEvent(level LogLevel, message string) ConsoleEvent {
	return ConsoleEvent{Level: level, Message: message}
}

// EventType implements DomainEvent.
func (e ConsoleEvent) EventType() string { return EventConsoleLog }

// Payload implements DomainEvent.
func (e ConsoleEvent) Payload() interface{} {
	return map[string]interface{}{
		"level":   string(e.Level),
		"message": e.Message,
	}
}

// StepEvent describes the lifecycle of one step execution.
type StepEvent struct {
	Type        string
	Step        string
	Description string
	ExitCode    int
}

// EventType implements DomainEvent.
func (e StepEvent) EventType() string { return e.Type }

// Payload implements DomainEvent.
func (e StepEvent) Payload() interface{} {
	payload := map[string]interface{}{
		"step": e.Step,
	}
	if e.Description != "" {
		payload["description"] = e.Description
	}
	if e.Type == EventStepFinished {
		payload["exit_code"] = e.ExitCode
	}
	return payload
}
