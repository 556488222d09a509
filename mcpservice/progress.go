package mcpservice

import "context"

// ProgressReporter receives progress of a long-running tool call.
// Transports inject one into the context when the caller asked for progress
// (stdio and /rpc forward it as notifications/progress). Reports are
// informational and never change a tool's result.
type ProgressReporter interface {
	Report(ctx context.Context, progress, total float64) error
}

// ProgressFunc adapts a plain function to ProgressReporter.
type ProgressFunc func(ctx context.Context, progress, total float64) error

func (f ProgressFunc) Report(ctx context.Context, progress, total float64) error {
	return f(ctx, progress, total)
}

type progressKey struct{}

// WithProgressReporter returns a new context carrying the provided reporter.
func WithProgressReporter(ctx context.Context, pr ProgressReporter) context.Context {
	if pr == nil {
		return ctx
	}
	return context.WithValue(ctx, progressKey{}, pr)
}

// ProgressFrom retrieves a ProgressReporter from the context if present.
func ProgressFrom(ctx context.Context) (ProgressReporter, bool) {
	if v := ctx.Value(progressKey{}); v != nil {
		if pr, ok := v.(ProgressReporter); ok && pr != nil {
			return pr, true
		}
	}
	return nil, false
}
