package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexisbeaulieu97/javacstep/internal/console"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var exitErr *exitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		console.NewStandard(console.VerbosityStandard).PrintErrorText(err.Error() + "\n")
		os.Exit(1)
	}
}

// exitCodeError makes the process exit with the compiler's own exit code. The
// compiler output has already been printed, so it carries no message.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("compiler exited with code %d", e.code)
}
