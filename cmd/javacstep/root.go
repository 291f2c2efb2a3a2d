package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbosity string
	logLevel  string
	jsonLogs  bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "javacstep",
		Short:         "javacstep runs the Java compiler as a build step and explains its failures",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.verbosity, "verbosity", "", "Console verbosity: silent, standard, binary_outputs, commands, all")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Structured log level: debug, info, warn, error")
	cmd.PersistentFlags().BoolVar(&flags.jsonLogs, "json-logs", false, "Emit structured logs as JSON")

	cmd.AddCommand(newCompileCmd(flags))
	cmd.AddCommand(newMissingImportsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
