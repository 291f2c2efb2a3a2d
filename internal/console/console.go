// Package console provides the output destinations used by build steps: the
// real terminal and an in-memory capturing variant for inspection after the
// fact.
package console

import (
	"io"
	"os"
	"sync"
)

// Console groups the stdout and stderr streams with a verbosity level and an
// ANSI policy.
type Console struct {
	verbosity Verbosity
	stdout    Stream
	stderr    Stream
	ansi      Ansi

	mu       sync.RWMutex
	override *Verbosity
}

// New creates a Console over arbitrary streams.
func New(verbosity Verbosity, stdout, stderr Stream, ansi Ansi) *Console {
	return &Console{
		verbosity: verbosity,
		stdout:    stdout,
		stderr:    stderr,
		ansi:      ansi,
	}
}

// NewStandard creates a Console bound to the process stdout and stderr.
func NewStandard(verbosity Verbosity) *Console {
	return New(verbosity, os.Stdout, os.Stderr, ForFile(os.Stderr))
}

// NewTestConsole creates a Console that writes into CapturingStreams and never
// emits ANSI sequences.
func NewTestConsole() *Console {
	return New(VerbosityStandard, NewCapturingStream(), NewCapturingStream(), WithoutTty())
}

// Verbosity returns the override set through SetVerbosity, or the verbosity
// the console was created with.
func (c *Console) Verbosity() Verbosity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.override != nil {
		return *c.override
	}
	return c.verbosity
}

// SetVerbosity overrides the inherited verbosity.
func (c *Console) SetVerbosity(v Verbosity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.override = &v
}

// StdOut returns the stdout stream.
func (c *Console) StdOut() Stream { return c.stdout }

// StdErr returns the stderr stream.
func (c *Console) StdErr() Stream { return c.stderr }

// Ansi returns the console colour policy.
func (c *Console) Ansi() Ansi { return c.ansi }

// PrintErrorText writes text to stderr in the error colour.
func (c *Console) PrintErrorText(text string) {
	_, _ = c.stderr.WriteString(c.ansi.AsErrorText(text))
}

// TextWrittenToStdOut returns what was captured on stdout, or "" when stdout
// is not a CapturingStream.
func (c *Console) TextWrittenToStdOut() string {
	return capturedText(c.stdout)
}

// TextWrittenToStdErr returns what was captured on stderr, or "" when stderr
// is not a CapturingStream.
func (c *Console) TextWrittenToStdErr() string {
	return capturedText(c.stderr)
}

func capturedText(stream Stream) string {
	capturing, ok := stream.(*CapturingStream)
	if !ok {
		return ""
	}
	return capturing.String()
}

// AsStream adapts any io.Writer to Stream.
func AsStream(w io.Writer) Stream {
	if s, ok := w.(Stream); ok {
		return s
	}
	return writerStream{w}
}

type writerStream struct {
	io.Writer
}

func (w writerStream) WriteString(s string) (int, error) {
	return io.WriteString(w.Writer, s)
}
