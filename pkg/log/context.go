package log

import "context"

type ctxKey string

// TraceIDKey is the context key read by the logger to tag entries.
const TraceIDKey ctxKey = "trace_id"

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}
