//go:build notrace

package xmlrs

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// No-op implementations when built with -tags notrace

type traceLoggerKey struct{}
type spanInfoKey struct{}

var TracingEnabled = false

type Span interface {
	End()
}

type noOpSpan struct{}

func (s *noOpSpan) End() {
	// no-op
}

// SpanInfo holds information about a tracing span
type SpanInfo struct {
	ID       string
	ParentID string
	Name     string
	Start    time.Time
}

func WithTraceLogger(ctx context.Context, tlog *slog.Logger) context.Context {
	return ctx
}

func getTraceLogFromContext(ctx context.Context) *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func generateSpanID() string {
	return ""
}

func WithSpan(ctx context.Context, name string) (context.Context, *SpanInfo) {
	return ctx, nil
}

func StartSpan(ctx context.Context, name string) (context.Context, Span) {
	return ctx, &noOpSpan{}
}

func TraceEvent(ctx context.Context, msg string, attrs ...slog.Attr) {
	// no-op
}

func TraceError(ctx context.Context, err error, msg string, attrs ...slog.Attr) {
	// no-op
}
