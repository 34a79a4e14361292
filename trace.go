//go:build !notrace

package xmlrs

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"io"
	"log/slog"
	"runtime"
	"time"
)

type traceLoggerKey struct{}
type spanInfoKey struct{}

// the null logger is a logger that does nothing
var nullLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

var TracingEnabled = true

// Span is the handle returned by StartSpan. It exists so callers can
// defer span.End() without caring whether tracing is compiled in.
type Span interface {
	End()
}

// SpanInfo holds information about a tracing span
type SpanInfo struct {
	ID       string
	ParentID string
	Name     string
	Start    time.Time
}

func WithTraceLogger(ctx context.Context, tlog *slog.Logger) context.Context {
	// If the context already has a trace logger, return the context as is
	if _, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok {
		return ctx
	}

	return context.WithValue(ctx, traceLoggerKey{}, tlog)
}

func getTraceLogFromContext(ctx context.Context) *slog.Logger {
	// If the context has a trace logger, use that
	if tlog, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok {
		// Retrieve the function name of the caller for tracing
		pc, _, _, ok := runtime.Caller(2)
		if ok {
			fn := runtime.FuncForPC(pc)
			if fn != nil {
				tlog = tlog.With(slog.String("fn", fn.Name()))
			}
		}

		return tlog
	}

	return nullLogger
}

func generateSpanID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// WithSpan derives a context carrying a new span. The span inherits
// its parent from the context, if any.
func WithSpan(ctx context.Context, name string) (context.Context, *SpanInfo) {
	info := &SpanInfo{
		ID:    generateSpanID(),
		Name:  name,
		Start: time.Now(),
	}
	if parent, ok := ctx.Value(spanInfoKey{}).(*SpanInfo); ok {
		info.ParentID = parent.ID
	}
	return context.WithValue(ctx, spanInfoKey{}, info), info
}

type loggedSpan struct {
	ctx  context.Context
	info *SpanInfo
}

func (s *loggedSpan) End() {
	tlog := getTraceLogFromContext(s.ctx)
	tlog.LogAttrs(s.ctx, slog.LevelDebug, "END",
		slog.String("span_id", s.info.ID),
		slog.String("span_name", s.info.Name),
		slog.Duration("duration", time.Since(s.info.Start)),
	)
}

// StartSpan opens a span, logs its START event, and returns a handle
// whose End logs the matching END event with the span's duration.
func StartSpan(ctx context.Context, name string) (context.Context, Span) {
	ctx, info := WithSpan(ctx, name)
	tlog := getTraceLogFromContext(ctx)
	tlog.LogAttrs(ctx, slog.LevelDebug, "START",
		slog.String("span_id", info.ID),
		slog.String("span_name", info.Name),
	)
	return ctx, &loggedSpan{ctx: ctx, info: info}
}

// TraceEvent logs a structured event, annotated with the current span
// if the context carries one.
func TraceEvent(ctx context.Context, msg string, attrs ...slog.Attr) {
	tlog := getTraceLogFromContext(ctx)
	if info, ok := ctx.Value(spanInfoKey{}).(*SpanInfo); ok {
		attrs = append(attrs, slog.String("span_id", info.ID))
	}
	tlog.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

// TraceError logs an error event at error level.
func TraceError(ctx context.Context, err error, msg string, attrs ...slog.Attr) {
	tlog := getTraceLogFromContext(ctx)
	attrs = append(attrs, slog.String("error", err.Error()))
	if info, ok := ctx.Value(spanInfoKey{}).(*SpanInfo); ok {
		attrs = append(attrs, slog.String("span_id", info.ID))
	}
	tlog.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}
