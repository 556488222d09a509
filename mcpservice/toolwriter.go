package mcpservice

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/FrankGoortani/cv-mcp/mcp"
)

// ToolResponseWriter is handed to tool handlers to produce the JSON result
// and to emit optional progress and log side channels.
//
// Notes:
//   - WriteJSON may be called more than once; the last value wins.
//   - Writes after the invocation finished return ErrFinalized.
//   - SendProgress and Log never affect the result.
type ToolResponseWriter interface {
	WriteJSON(v any) error
	SendProgress(progress, total float64) error
	Log(level mcp.LoggingLevel, msg string, data map[string]any)
}

var (
	// ErrFinalized is returned when attempting to write after the tool call ended.
	ErrFinalized = errors.New("result already finalized")
)

type toolResponseWriter struct {
	ctx       context.Context
	mu        sync.Mutex
	finalized bool
	result    json.RawMessage
}

var _ ToolResponseWriter = (*toolResponseWriter)(nil)

func newToolResponseWriter(ctx context.Context) *toolResponseWriter {
	return &toolResponseWriter{ctx: ctx}
}

func (w *toolResponseWriter) WriteJSON(v any) error {
	if err := w.ctx.Err(); err != nil {
		return err
	}
	b, err := json.Marshal(v)
	if err != nil {
		return Errorf(KindInternal, "encode tool result: %w", err)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.finalized {
		return ErrFinalized
	}
	w.result = b
	return nil
}

func (w *toolResponseWriter) SendProgress(progress, total float64) error {
	if err := w.ctx.Err(); err != nil {
		return err
	}
	if pr, ok := ProgressFrom(w.ctx); ok {
		return pr.Report(w.ctx, progress, total)
	}
	return nil
}

func (w *toolResponseWriter) Log(level mcp.LoggingLevel, msg string, data map[string]any) {
	if l, ok := ToolLoggerFrom(w.ctx); ok {
		l.Log(w.ctx, level, msg, data)
		return
	}
	SlogToolLogger(slog.Default()).Log(w.ctx, level, msg, data)
}

// finalize seals the writer and returns the last written result.
func (w *toolResponseWriter) finalize() (json.RawMessage, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.finalized = true
	return w.result, w.result != nil
}
