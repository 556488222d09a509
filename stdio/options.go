package stdio

import (
	"io"
	"log/slog"
	"time"
)

// Option customizes a Handler.
type Option func(*Handler)

// WithIO replaces stdin and stdout. A nil side keeps its default, so tests
// can swap only the input.
func WithIO(r io.Reader, w io.Writer) Option {
	return func(h *Handler) {
		if r != nil {
			h.r = r
		}
		if w != nil {
			h.w = w
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.l = l
		}
	}
}

// WithToolTimeout bounds each tools/call. Non-positive disables the bound.
func WithToolTimeout(d time.Duration) Option {
	return func(h *Handler) { h.toolTimeout = d }
}
