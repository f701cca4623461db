package internal

import (
	"context"
	"log/slog"

	"github.com/chainguard-dev/clog"
)

// NopLogger returns a new slog.Logger that drops every record.
func NopLogger() *slog.Logger {
	return slog.New(nopHandler{})
}

// WithNopLogger returns a copy of ctx that carries a logger that drops every
// record.
func WithNopLogger(ctx context.Context) context.Context {
	return clog.WithLogger(ctx, clog.NewLogger(NopLogger()))
}

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (nopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h nopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h nopHandler) WithGroup(string) slog.Handler { return h }
