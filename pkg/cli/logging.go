package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/chainguard-dev/clog"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func addVerboseFlag(val *int, cmd *cobra.Command) {
	cmd.Flags().CountVarP(val, "verbose", "v", "logging verbosity (v = info, vv = debug)")
}

func newLogger(w io.Writer, verbosity int) *slog.Logger {
	level := charmlog.WarnLevel
	switch {
	case verbosity >= 2:
		level = charmlog.DebugLevel
	case verbosity == 1:
		level = charmlog.InfoLevel
	}

	return slog.New(charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		Level:           level,
	}))
}

// withLogger returns the command's context with a logger writing to the
// command's stderr.
func withLogger(cmd *cobra.Command, verbosity int) context.Context {
	logger := clog.NewLogger(newLogger(cmd.ErrOrStderr(), verbosity))
	return clog.WithLogger(cmd.Context(), logger)
}
