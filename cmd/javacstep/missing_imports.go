package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/javacstep/internal/javac"
)

func newMissingImportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "missing-imports [FILE|-]",
		Short: "List symbols that compiler diagnostics report as missing",
		Long: "Reads javac diagnostics from FILE, or standard input when FILE is - or omitted, " +
			"and prints each unresolved package or class once, sorted.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readDiagnostics(cmd, args)
			if err != nil {
				return err
			}
			for _, symbol := range javac.FindFailedImports(text).Sorted() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), symbol); err != nil {
					return err
				}
			}
			return nil
		},
	}
	return cmd
}

func readDiagnostics(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read diagnostics: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read diagnostics: %w", err)
	}
	return string(data), nil
}
