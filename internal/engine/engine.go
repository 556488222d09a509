package engine

import (
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/FrankGoortani/cv-mcp/internal/jsonrpc"
	"github.com/FrankGoortani/cv-mcp/mcp"
	"github.com/FrankGoortani/cv-mcp/mcpservice"
)

const defaultToolTimeout = 30 * time.Second

// Engine maps MCP methods onto a mcpservice.Server. It holds no per-peer
// state; every connection gets its own SessionHandle.
type Engine struct {
	srv         *mcpservice.Server
	log         *slog.Logger
	toolTimeout time.Duration
}

// NewEngine constructs an engine over srv.
func NewEngine(srv *mcpservice.Server, opts ...EngineOption) *Engine {
	e := &Engine{
		srv:         srv,
		log:         slog.Default(),
		toolTimeout: defaultToolTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type EngineOption func(*Engine)

// WithLogger sets the logger used by the engine.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithToolTimeout bounds every tools/call. A non-positive value disables
// the bound.
func WithToolTimeout(d time.Duration) EngineOption {
	return func(e *Engine) { e.toolTimeout = d }
}

// Server returns the server the engine dispatches to.
func (e *Engine) Server() *mcpservice.Server { return e.srv }

func (e *Engine) initialize(req *mcp.InitializeRequest) *mcp.InitializeResult {
	version := mcp.LatestProtocolVersion
	for _, v := range mcp.SupportedProtocolVersions {
		if req.ProtocolVersion == v {
			version = v
			break
		}
	}
	return &mcp.InitializeResult{
		ProtocolVersion: version,
		Capabilities:    e.srv.Capabilities(),
		ServerInfo:      e.srv.Info,
		Instructions:    e.srv.Instructions,
	}
}

// rpcError maps a classified service error onto a JSON-RPC error object.
func rpcError(err error) *jsonrpc.Error {
	var rpcErr *jsonrpc.Error
	if errors.As(err, &rpcErr) {
		return rpcErr
	}
	switch mcpservice.KindOf(err) {
	case mcpservice.KindNotFound, mcpservice.KindInvalidArgument:
		return &jsonrpc.Error{Code: jsonrpc.ErrorCodeInvalidParams, Message: err.Error()}
	case mcpservice.KindResourceUnavailable:
		return &jsonrpc.Error{Code: jsonrpc.ErrorCodeResourceUnavailable, Message: err.Error()}
	case mcpservice.KindTimeout:
		return &jsonrpc.Error{Code: jsonrpc.ErrorCodeRequestTimeout, Message: "request timed out"}
	default:
		return &jsonrpc.Error{Code: jsonrpc.ErrorCodeInternalError, Message: "internal error"}
	}
}

var errInvalidParams = &jsonrpc.Error{Code: jsonrpc.ErrorCodeInvalidParams, Message: "invalid params"}

// decodeParams unmarshals params into v. Absent params leave v untouched.
func decodeParams(params json.RawMessage, v any) *jsonrpc.Error {
	if len(params) == 0 || string(params) == "null" {
		return nil
	}
	if err := json.Unmarshal(params, v); err != nil {
		return errInvalidParams
	}
	return nil
}

var levelRank = map[mcp.LoggingLevel]int{
	mcp.LoggingLevelDebug:     0,
	mcp.LoggingLevelInfo:      1,
	mcp.LoggingLevelNotice:    2,
	mcp.LoggingLevelWarning:   3,
	mcp.LoggingLevelError:     4,
	mcp.LoggingLevelCritical:  5,
	mcp.LoggingLevelAlert:     6,
	mcp.LoggingLevelEmergency: 7,
}
