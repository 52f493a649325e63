package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/manzanit0/googletoolkit/pkg/middleware"
)

// InitGlobalSlog makes a JSON logger on stdout the default one. Services use
// it: their stdout is collected as logs.
func InitGlobalSlog(service string, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(New(os.Stdout, service, level))
}

// InitCLISlog is the command line counterpart of InitGlobalSlog. Stdout is
// left to the command's output and only warnings are logged unless debug is
// set.
func InitCLISlog(service string, debug bool) {
	slog.SetDefault(New(os.Stderr, service, cliLevel(debug)))
}

func cliLevel(debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}

	return slog.LevelWarn
}

// New returns a JSON logger tagged with service which also records the trace
// id carried by the context of each record.
func New(w io.Writer, service string, level slog.Leveler) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(WithTraceID(h)).With("service", service)
}

// WithTraceID decorates h so that records logged with a traced context carry
// a trace_id attribute.
func WithTraceID(h slog.Handler) slog.Handler {
	return traceHandler{h}
}

type traceHandler struct {
	slog.Handler
}

func (h traceHandler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := middleware.TraceIDFromContext(ctx); ok {
		r = r.Clone()
		r.AddAttrs(slog.String(string(middleware.CtxKeyTraceID), id))
	}

	return h.Handler.Handle(ctx, r)
}

func (h traceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return traceHandler{h.Handler.WithAttrs(attrs)}
}

func (h traceHandler) WithGroup(name string) slog.Handler {
	return traceHandler{h.Handler.WithGroup(name)}
}
