package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/javacstep/internal/config"
	"github.com/alexisbeaulieu97/javacstep/internal/console"
	"github.com/alexisbeaulieu97/javacstep/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/javacstep/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/javacstep/internal/infrastructure/process"
	"github.com/alexisbeaulieu97/javacstep/internal/javac"
	"github.com/alexisbeaulieu97/javacstep/internal/step"
)

type compileOptions struct {
	ConfigPath   string
	PrintCommand bool
}

func newCompileCmd(root *rootFlags) *cobra.Command {
	opts := compileOptions{}

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile the sources described by a configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateCompileOptions(opts); err != nil {
				return err
			}
			return runCompile(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (.yaml or .toml)")
	cmd.Flags().BoolVar(&opts.PrintCommand, "print-command", false, "Print the compiler command line without running it")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runCompile(cmd *cobra.Command, root *rootFlags, opts compileOptions) error {
	cfg, err := config.ParseConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	verbosity, err := resolveVerbosity(root.verbosity, cfg.Settings.Verbosity)
	if err != nil {
		return err
	}
	con := newConsole(cmd, verbosity)

	log, err := logging.New(logging.Options{
		Writer:        cmd.ErrOrStderr(),
		Level:         firstNonEmpty(root.logLevel, cfg.Settings.LogLevel, "warn"),
		HumanReadable: !root.jsonLogs,
		Layer:         "application",
		Component:     "cli",
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithCorrelationID(ctx, logging.GenerateCorrelationID())

	publisher := events.NewLoggingPublisher(log)
	printer, err := events.NewConsolePrinter(publisher, con.StdErr(), con.Ansi())
	if err != nil {
		return err
	}
	defer printer.Unsubscribe()

	workDir, err := resolveWorkDir(opts.ConfigPath, cfg.WorkDir)
	if err != nil {
		return err
	}

	ec := &step.ExecutionContext{
		Context:  ctx,
		Executor: process.NewOSExecutor(con, log),
		Events:   publisher,
		Console:  con,
		Logger:   log,
		WorkDir:  workDir,
		Env:      cfg.Env,
	}
	s := javac.New(cfg.StepParams())

	if opts.PrintCommand {
		_, err := fmt.Fprintln(con.StdOut(), s.Description(ec))
		return err
	}

	result, err := step.Run(ec, s)
	if err != nil {
		return err
	}

	if !step.IsSuccess(result) {
		log.Info(ctx, "compilation failed", "target", cfg.Target, "exit_code", result.ExitCode())
		return &exitCodeError{code: result.ExitCode()}
	}
	if verbosity.ShouldPrintStandardInformation() {
		_, _ = fmt.Fprintf(con.StdOut(), "compiled %s\n", cfg.Target)
	}
	return nil
}

func newConsole(cmd *cobra.Command, verbosity console.Verbosity) *console.Console {
	ansi := console.WithoutTty()
	if f, ok := cmd.ErrOrStderr().(*os.File); ok {
		ansi = console.ForFile(f)
	}
	return console.New(verbosity, console.AsStream(cmd.OutOrStdout()), console.AsStream(cmd.ErrOrStderr()), ansi)
}

// resolveWorkDir anchors the configured work_dir, or the config file's own
// directory when unset, to an absolute path.
func resolveWorkDir(configPath, workDir string) (string, error) {
	base := filepath.Dir(configPath)
	if workDir == "" {
		return filepath.Abs(base)
	}
	if filepath.IsAbs(workDir) {
		return filepath.Clean(workDir), nil
	}
	return filepath.Abs(filepath.Join(base, workDir))
}
