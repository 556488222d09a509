package mcpservice

import (
	"context"
	"errors"
	"log/slog"

	"github.com/FrankGoortani/cv-mcp/mcp"
)

// ToolLogger receives log messages emitted by tool handlers. stdio forwards
// them to the client as notifications/message; without one, messages go to
// the server's slog logger.
type ToolLogger interface {
	Log(ctx context.Context, level mcp.LoggingLevel, msg string, data map[string]any)
}

// ToolLoggerFunc adapts a plain function to ToolLogger.
type ToolLoggerFunc func(ctx context.Context, level mcp.LoggingLevel, msg string, data map[string]any)

func (f ToolLoggerFunc) Log(ctx context.Context, level mcp.LoggingLevel, msg string, data map[string]any) {
	f(ctx, level, msg, data)
}

type toolLoggerKey struct{}

// WithToolLogger returns a new context carrying the provided logger.
func WithToolLogger(ctx context.Context, l ToolLogger) context.Context {
	if l == nil {
		return ctx
	}
	return context.WithValue(ctx, toolLoggerKey{}, l)
}

// ToolLoggerFrom retrieves a ToolLogger from the context if present.
func ToolLoggerFrom(ctx context.Context) (ToolLogger, bool) {
	l, ok := ctx.Value(toolLoggerKey{}).(ToolLogger)
	return l, ok && l != nil
}

// SlogToolLogger writes tool log messages to an slog.Logger.
func SlogToolLogger(log *slog.Logger) ToolLogger {
	return ToolLoggerFunc(func(ctx context.Context, level mcp.LoggingLevel, msg string, data map[string]any) {
		attrs := make([]slog.Attr, 0, len(data))
		for k, v := range data {
			attrs = append(attrs, slog.Any(k, v))
		}
		log.LogAttrs(ctx, SlogLevel(level), msg, attrs...)
	})
}

// LevelSetter applies logging/setLevel requests.
type LevelSetter interface {
	SetLevel(ctx context.Context, level mcp.LoggingLevel) error
}

// NewSlogLevelVarLogging returns a LevelSetter that maps MCP LoggingLevel
// onto lv. Handlers built from the same LevelVar follow the change.
func NewSlogLevelVarLogging(lv *slog.LevelVar) LevelSetter {
	return &slogLevelVarLogging{lv: lv}
}

type slogLevelVarLogging struct{ lv *slog.LevelVar }

func (l *slogLevelVarLogging) SetLevel(_ context.Context, level mcp.LoggingLevel) error {
	if !mcp.IsValidLoggingLevel(level) {
		return ErrInvalidLoggingLevel
	}
	if l.lv != nil {
		l.lv.Set(SlogLevel(level))
	}
	return nil
}

// SlogLevel maps an MCP level to the nearest slog level. Notice maps to
// info; critical and above map to error.
func SlogLevel(level mcp.LoggingLevel) slog.Level {
	switch level {
	case mcp.LoggingLevelDebug:
		return slog.LevelDebug
	case mcp.LoggingLevelWarning:
		return slog.LevelWarn
	case mcp.LoggingLevelError, mcp.LoggingLevelCritical, mcp.LoggingLevelAlert, mcp.LoggingLevelEmergency:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ErrInvalidLoggingLevel indicates the provided level is not one of the
// protocol-defined LoggingLevel values.
var ErrInvalidLoggingLevel = errors.New("invalid logging level")
