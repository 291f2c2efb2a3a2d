package ports

import (
	"context"

	"github.com/google/uuid"
)

// Logger defines the structured logging contract. All log calls take
// key/value pairs, must be safe for concurrent use, and should enrich entries
// with a correlation ID when one is present in context. Common fields:
//   - correlation_id (generated once per CLI invocation)
//   - layer (domain|application|infrastructure)
//   - component (javac, process, config, ...)
//   - target / exit_code / run_id
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, msg string, fields ...interface{})
	Error(ctx context.Context, msg string, fields ...interface{})
	With(fields ...interface{}) Logger
}

// NoOpLogger discards all log entries.
type NoOpLogger struct{}

// Debug implements Logger.
func (n *NoOpLogger) Debug(context.Context, string, ...interface{}) {}

// Info implements Logger.
func (n *NoOpLogger) Info(context.Context, string, ...interface{}) {}

// Warn implements Logger.
func (n *NoOpLogger) Warn(context.Context, string, ...interface{}) {}

// Error implements Logger.
func (n *NoOpLogger) Error(context.Context, string, ...interface{}) {}

// With implements Logger.
func (n *NoOpLogger) With(...interface{}) Logger { return n }

// NewNoOpLogger returns a Logger that discards all log entries.
func NewNoOpLogger() Logger {
	return &NoOpLogger{}
}

type correlationIDKey struct{}

// WithCorrelationID attaches the provided correlation ID to the context.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// GetCorrelationID extracts a correlation ID from context, or "" when unset.
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GenerateCorrelationID produces a new UUIDv4 string for log correlation.
func GenerateCorrelationID() string {
	return uuid.NewString()
}
