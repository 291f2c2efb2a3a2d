package console

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Ansi decides whether text written to a console is decorated with colours.
type Ansi struct {
	enabled bool
}

// WithoutTty returns an Ansi that never emits escape sequences.
func WithoutTty() Ansi {
	return Ansi{}
}

// ForFile enables colours when f is attached to a terminal.
func ForFile(f *os.File) Ansi {
	if f == nil {
		return WithoutTty()
	}
	return Ansi{enabled: term.IsTerminal(int(f.Fd()))}
}

// Enabled reports whether escape sequences are emitted.
func (a Ansi) Enabled() bool { return a.enabled }

// AsErrorText renders text in red.
func (a Ansi) AsErrorText(text string) string {
	return a.paint(color.FgRed, text)
}

// AsWarningText renders text in yellow.
func (a Ansi) AsWarningText(text string) string {
	return a.paint(color.FgYellow, text)
}

// AsHighlightedText renders text in bold.
func (a Ansi) AsHighlightedText(text string) string {
	return a.paint(color.Bold, text)
}

func (a Ansi) paint(attr color.Attribute, text string) string {
	if !a.enabled || text == "" {
		return text
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(text)
}
