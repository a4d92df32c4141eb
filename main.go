package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"library-inventory/library"
	"library-inventory/shell"

	"github.com/spf13/cobra"
)

func main() {
	logger := newLogger(os.Stderr)

	if err := newRootCmd(logger).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger returns the diagnostics logger. Only warnings and failures are
// written, so an ordinary session leaves w untouched.
func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// newRootCmd builds the single command that runs the menu shell on the
// command's input and output streams. All state lives for one run only.
func newRootCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:           "library",
		Short:         "In-memory library inventory with an interactive menu",
		Long:          `Add, list, issue and return books from a numbered text menu. Nothing is saved between runs.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.Debug("session started")

			catalog := library.NewCatalog(library.WithLogger(logger))
			return shell.New(catalog, cmd.InOrStdin(), cmd.OutOrStdout(), shell.WithLogger(logger)).Run()
		},
	}
}
