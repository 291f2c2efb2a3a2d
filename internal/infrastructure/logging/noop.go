package logging

import (
	"github.com/alexisbeaulieu97/javacstep/internal/ports"
)

// NoOpLogger discards all log entries.
type NoOpLogger = ports.NoOpLogger

// NewNoOpLogger returns a ports.Logger that discards all log entries.
func NewNoOpLogger() ports.Logger {
	return ports.NewNoOpLogger()
}
