package events

import (
	"context"
	"io"
	"strings"

	"github.com/alexisbeaulieu97/javacstep/internal/ports"
)

// Painter decorates console text by level, e.g. console.Ansi.
type Painter interface {
	AsErrorText(text string) string
	AsWarningText(text string) string
}

// NewConsolePrinter subscribes a handler that writes every console message to
// w, terminating it with a newline when missing. painter may be nil.
func NewConsolePrinter(publisher ports.EventPublisher, w io.Writer, painter Painter) (ports.Subscription, error) {
	return publisher.Subscribe(ports.EventConsoleLog, func(_ context.Context, event ports.DomainEvent) error {
		consoleEvent, ok := event.(ports.ConsoleEvent)
		if !ok {
			return nil
		}
		text := consoleEvent.Message
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		if painter != nil {
			switch consoleEvent.Level {
			case ports.LogLevelError:
				text = painter.AsErrorText(text)
			case ports.LogLevelWarning:
				text = painter.AsWarningText(text)
			}
		}
		_, err := io.WriteString(w, text)
		return err
	})
}
