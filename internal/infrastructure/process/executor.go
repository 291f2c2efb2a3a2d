// Package process runs subprocesses on behalf of build steps.
package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"

	"github.com/alessio/shellescape"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/javacstep/internal/console"
	"github.com/alexisbeaulieu97/javacstep/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/javacstep/internal/ports"
	javacerrors "github.com/alexisbeaulieu97/javacstep/pkg/errors"
)

// OSExecutor launches real processes with os/exec and collects their complete
// output.
type OSExecutor struct {
	console *console.Console
	logger  ports.Logger
}

// NewOSExecutor creates an executor. con may be nil; when set, launched
// command lines are echoed to its stderr at VerbosityCommands and above.
func NewOSExecutor(con *console.Console, logger ports.Logger) *OSExecutor {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return &OSExecutor{
		console: con,
		logger:  logger.With("component", "process"),
	}
}

// Execute implements ports.ProcessExecutor. Both pipes are drained
// concurrently so a child filling one of them cannot block on the other.
func (e *OSExecutor) Execute(ctx context.Context, params ports.ProcessParams) (ports.ProcessResult, error) {
	if len(params.Command) == 0 {
		return ports.ProcessResult{}, javacerrors.NewLaunchError("", fmt.Errorf("empty command"))
	}
	program := params.Command[0]

	cmd := exec.CommandContext(ctx, program, params.Command[1:]...)
	cmd.Dir = params.Dir
	cmd.Env = buildEnv(params.Env)

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return ports.ProcessResult{}, javacerrors.NewLaunchError(program, err)
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return ports.ProcessResult{}, javacerrors.NewLaunchError(program, err)
	}

	if e.console != nil && e.console.Verbosity().ShouldPrintCommand() {
		_, _ = e.console.StdErr().WriteString(e.console.Ansi().AsHighlightedText(shellescape.QuoteCommand(params.Command)) + "\n")
	}

	runID := uuid.NewString()
	log := e.logger.With("run_id", runID, "program", program)
	log.Debug(ctx, "launching process", "args", len(params.Command)-1, "dir", params.Dir)

	if err := cmd.Start(); err != nil {
		log.Debug(ctx, "launch failed", "error", err)
		return ports.ProcessResult{}, javacerrors.NewLaunchError(program, err)
	}

	stdout := console.NewCapturingStream()
	stderr := console.NewCapturingStream()
	var g errgroup.Group
	g.Go(func() error {
		_, err := io.Copy(stdout, stdoutPipe)
		return err
	})
	g.Go(func() error {
		_, err := io.Copy(stderr, stderrPipe)
		return err
	})
	copyErr := g.Wait()
	waitErr := cmd.Wait()

	result := ports.ProcessResult{
		Stdout: string(stdout.Bytes()),
		Stderr: string(stderr.Bytes()),
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return result, fmt.Errorf("wait for %s: %w", program, waitErr)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, fmt.Errorf("%s interrupted: %w", program, ctxErr)
		}
		result.ExitCode = exitErr.ExitCode()
	}
	if copyErr != nil {
		return result, fmt.Errorf("read output of %s: %w", program, copyErr)
	}

	log.Debug(ctx, "process exited", "exit_code", result.ExitCode)
	return result, nil
}

// buildEnv appends custom variables to the inherited environment in key order
// so repeated runs see identical environments.
func buildEnv(custom map[string]string) []string {
	env := os.Environ()
	keys := make([]string, 0, len(custom))
	for k := range custom {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		env = append(env, fmt.Sprintf("%s=%s", k, custom[k]))
	}
	return env
}

var _ ports.ProcessExecutor = (*OSExecutor)(nil)
