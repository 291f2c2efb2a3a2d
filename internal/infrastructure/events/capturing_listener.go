package events

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/javacstep/internal/ports"
)

// CapturingConsoleListener records every console message published on a
// channel, in delivery order.
type CapturingConsoleListener struct {
	mu       sync.Mutex
	messages []string
	sub      ports.Subscription
}

// NewCapturingConsoleListener subscribes a new listener to console events of
// the given publisher.
func NewCapturingConsoleListener(publisher ports.EventPublisher) (*CapturingConsoleListener, error) {
	l := &CapturingConsoleListener{}
	sub, err := publisher.Subscribe(ports.EventConsoleLog, l.handle)
	if err != nil {
		return nil, err
	}
	l.sub = sub
	return l, nil
}

func (l *CapturingConsoleListener) handle(_ context.Context, event ports.DomainEvent) error {
	consoleEvent, ok := event.(ports.ConsoleEvent)
	if !ok {
		return nil
	}
	l.mu.Lock()
	l.messages = append(l.messages, consoleEvent.Message)
	l.mu.Unlock()
	return nil
}

// LogMessages returns a copy of the messages seen so far.
func (l *CapturingConsoleListener) LogMessages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string{}, l.messages...)
}

// Close stops listening.
func (l *CapturingConsoleListener) Close() {
	if l.sub != nil {
		l.sub.Unsubscribe()
	}
}
