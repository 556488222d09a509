package engine

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/FrankGoortani/cv-mcp/internal/jsonrpc"
	"github.com/FrankGoortani/cv-mcp/internal/logctx"
	"github.com/FrankGoortani/cv-mcp/mcp"
	"github.com/FrankGoortani/cv-mcp/mcpservice"
)

// SessionHandle is the per-connection MCP state: the client's requested log
// level and the cancel funcs of in-flight tool calls.
type SessionHandle struct {
	e         *Engine
	id        string
	transport string
	w         MessageWriter

	mu          sync.Mutex
	initialized bool
	logLevel    mcp.LoggingLevel
	toolCancels map[string]context.CancelCauseFunc
	closed      bool
}

// NewSession creates the handle for one connection. w may be nil when the
// transport cannot push notifications; progress and log forwarding are
// then skipped.
func (e *Engine) NewSession(id, transport string, w MessageWriter) *SessionHandle {
	return &SessionHandle{
		e:           e,
		id:          id,
		transport:   transport,
		w:           w,
		logLevel:    mcp.LoggingLevelInfo,
		toolCancels: make(map[string]context.CancelCauseFunc),
	}
}

func (s *SessionHandle) SessionID() string { return s.id }

func (s *SessionHandle) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// Close cancels every in-flight tool call.
func (s *SessionHandle) Close() {
	s.mu.Lock()
	s.closed = true
	cancels := s.toolCancels
	s.toolCancels = make(map[string]context.CancelCauseFunc)
	s.mu.Unlock()
	for _, cancel := range cancels {
		cancel(context.Canceled)
	}
}

// Handle processes one request or notification. Notifications yield a nil
// response.
func (s *SessionHandle) Handle(ctx context.Context, req *jsonrpc.Request) *jsonrpc.Response {
	if req.ID.IsNil() {
		s.Notify(ctx, req.Method, req.Params)
		return nil
	}
	res, rpcErr := s.Call(ctx, req.Method, req.ID, req.Params)
	if rpcErr != nil {
		return jsonrpc.NewErrorObjectResponse(req.ID, rpcErr)
	}
	return &jsonrpc.Response{JSONRPCVersion: jsonrpc.ProtocolVersion, Result: res, ID: req.ID}
}

// Call runs a request and returns the JSON encoded result.
func (s *SessionHandle) Call(ctx context.Context, method string, id *jsonrpc.RequestID, params json.RawMessage) (json.RawMessage, *jsonrpc.Error) {
	start := time.Now()
	ctx = logctx.WithSessionData(ctx, &logctx.SessionData{SessionID: s.id, Transport: s.transport})
	ctx = logctx.WithRPCMessage(ctx, &logctx.RPCMessage{Method: method, ID: id.String(), Type: "request"})
	log := s.e.log

	res, rpcErr := s.dispatch(ctx, method, id, params)
	if rpcErr != nil {
		log.InfoContext(ctx, "engine.handle_request.err",
			slog.Int("code", int(rpcErr.Code)),
			slog.String("err", rpcErr.Message),
			slog.Int64("dur_ms", time.Since(start).Milliseconds()))
		return nil, rpcErr
	}
	b, err := json.Marshal(res)
	if err != nil {
		log.ErrorContext(ctx, "engine.handle_request.marshal.err", slog.String("err", err.Error()))
		return nil, &jsonrpc.Error{Code: jsonrpc.ErrorCodeInternalError, Message: "internal error"}
	}
	log.DebugContext(ctx, "engine.handle_request.ok", slog.Int64("dur_ms", time.Since(start).Milliseconds()))
	return b, nil
}

// Notify processes a client notification. Unknown notifications are
// ignored.
func (s *SessionHandle) Notify(ctx context.Context, method string, params json.RawMessage) {
	ctx = logctx.WithSessionData(ctx, &logctx.SessionData{SessionID: s.id, Transport: s.transport})
	ctx = logctx.WithRPCMessage(ctx, &logctx.RPCMessage{Method: method, Type: "notification"})

	switch mcp.Method(method) {
	case mcp.InitializedNotificationMethod:
		s.mu.Lock()
		s.initialized = true
		s.mu.Unlock()
		s.e.log.DebugContext(ctx, "engine.session.initialized")
	case mcp.CancelledNotificationMethod:
		var p struct {
			RequestID jsonrpc.RequestID `json:"requestId"`
			Reason    string            `json:"reason,omitempty"`
		}
		if err := json.Unmarshal(params, &p); err != nil {
			s.e.log.DebugContext(ctx, "engine.cancel.invalid", slog.String("err", err.Error()))
			return
		}
		s.mu.Lock()
		cancel, ok := s.toolCancels[p.RequestID.String()]
		s.mu.Unlock()
		if ok {
			cancel(context.Canceled)
		}
		s.e.log.DebugContext(ctx, "engine.cancel", slog.String("request_id", p.RequestID.String()), slog.Bool("found", ok))
	default:
		s.e.log.DebugContext(ctx, "engine.notification.ignored")
	}
}

func (s *SessionHandle) dispatch(ctx context.Context, method string, id *jsonrpc.RequestID, params json.RawMessage) (any, *jsonrpc.Error) {
	srv := s.e.srv
	switch mcp.Method(method) {
	case mcp.InitializeMethod:
		var req mcp.InitializeRequest
		if rpcErr := decodeParams(params, &req); rpcErr != nil {
			return nil, rpcErr
		}
		res := s.e.initialize(&req)
		s.e.log.InfoContext(ctx, "engine.initialize",
			slog.String("requested", req.ProtocolVersion),
			slog.String("negotiated", res.ProtocolVersion))
		return res, nil

	case mcp.PingMethod:
		return mcp.EmptyResult{}, nil

	case mcp.ToolsListMethod:
		if srv.Tools == nil {
			return nil, unsupported("tools")
		}
		return mcp.ListToolsResult{Tools: srv.Tools.Snapshot()}, nil

	case mcp.ToolsCallMethod:
		if srv.Tools == nil {
			return nil, unsupported("tools")
		}
		var req mcp.CallToolRequestReceived
		if rpcErr := decodeParams(params, &req); rpcErr != nil {
			return nil, rpcErr
		}
		if req.Name == "" {
			return nil, &jsonrpc.Error{Code: jsonrpc.ErrorCodeInvalidParams, Message: "missing tool name"}
		}
		return s.callTool(ctx, id, &req)

	case mcp.ResourcesListMethod:
		if srv.Resources == nil {
			return nil, unsupported("resources")
		}
		return mcp.ListResourcesResult{Resources: srv.Resources.Snapshot()}, nil

	case mcp.ResourcesReadMethod:
		if srv.Resources == nil {
			return nil, unsupported("resources")
		}
		var req mcp.ReadResourceRequest
		if rpcErr := decodeParams(params, &req); rpcErr != nil {
			return nil, rpcErr
		}
		if req.URI == "" {
			return nil, &jsonrpc.Error{Code: jsonrpc.ErrorCodeInvalidParams, Message: "missing resource uri"}
		}
		res, err := srv.Resources.Read(ctx, req.URI)
		if err != nil {
			return nil, rpcError(err)
		}
		return res, nil

	case mcp.PromptsListMethod:
		if srv.Prompts == nil {
			return nil, unsupported("prompts")
		}
		return mcp.ListPromptsResult{Prompts: srv.Prompts.Snapshot()}, nil

	case mcp.PromptsGetMethod:
		if srv.Prompts == nil {
			return nil, unsupported("prompts")
		}
		var req mcp.GetPromptRequestReceived
		if rpcErr := decodeParams(params, &req); rpcErr != nil {
			return nil, rpcErr
		}
		res, err := srv.Prompts.Get(ctx, req.Name, req.Arguments)
		if err != nil {
			return nil, rpcError(err)
		}
		return res, nil

	case mcp.LoggingSetLevelMethod:
		if srv.Logging == nil {
			return nil, unsupported("logging")
		}
		var req mcp.SetLevelRequest
		if rpcErr := decodeParams(params, &req); rpcErr != nil {
			return nil, rpcErr
		}
		if !mcp.IsValidLoggingLevel(req.Level) {
			return nil, &jsonrpc.Error{Code: jsonrpc.ErrorCodeInvalidParams, Message: "invalid logging level"}
		}
		if err := srv.Logging.SetLevel(ctx, req.Level); err != nil {
			return nil, rpcError(err)
		}
		s.mu.Lock()
		s.logLevel = req.Level
		s.mu.Unlock()
		return mcp.EmptyResult{}, nil
	}

	return nil, &jsonrpc.Error{Code: jsonrpc.ErrorCodeMethodNotFound, Message: "method not found: " + method}
}

func unsupported(feature string) *jsonrpc.Error {
	return &jsonrpc.Error{Code: jsonrpc.ErrorCodeMethodNotFound, Message: feature + " capability not supported"}
}

type toolOutcome struct {
	res *mcp.CallToolResult
	err error
}

// callTool runs the tool in its own goroutine so that a handler which
// ignores its context still cannot hold the request past the timeout.
func (s *SessionHandle) callTool(ctx context.Context, id *jsonrpc.RequestID, req *mcp.CallToolRequestReceived) (any, *jsonrpc.Error) {
	var stop context.CancelFunc = func() {}
	if s.e.toolTimeout > 0 {
		ctx, stop = context.WithTimeout(ctx, s.e.toolTimeout)
	}
	defer stop()
	toolCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(context.Canceled)

	reqID := id.String()
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, &jsonrpc.Error{Code: jsonrpc.ErrorCodeInternalError, Message: "session closed"}
	}
	s.toolCancels[reqID] = cancel
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.toolCancels, reqID)
		s.mu.Unlock()
	}()

	toolCtx = s.withSideChannels(toolCtx, req)

	done := make(chan toolOutcome, 1)
	go func() {
		res, err := s.e.srv.Tools.Call(toolCtx, req)
		done <- toolOutcome{res: res, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil {
			return nil, rpcError(out.err)
		}
		return out.res, nil
	case <-toolCtx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			s.e.log.WarnContext(ctx, "engine.tool.timeout", slog.String("tool", req.Name))
			return nil, rpcError(mcpservice.ErrTimeout)
		}
		return nil, &jsonrpc.Error{Code: jsonrpc.ErrorCodeInternalError, Message: "cancelled"}
	}
}

// withSideChannels wires progress and log forwarding for one tool call.
func (s *SessionHandle) withSideChannels(ctx context.Context, req *mcp.CallToolRequestReceived) context.Context {
	if s.w == nil {
		return mcpservice.WithToolLogger(ctx, mcpservice.SlogToolLogger(s.e.log))
	}
	if req.Meta != nil && req.Meta.ProgressToken != nil {
		token := req.Meta.ProgressToken
		ctx = mcpservice.WithProgressReporter(ctx, mcpservice.ProgressFunc(func(ctx context.Context, progress, total float64) error {
			return s.w.WriteNotification(ctx, string(mcp.ProgressNotificationMethod), mcp.ProgressNotificationParams{
				ProgressToken: token,
				Progress:      progress,
				Total:         total,
			})
		}))
	}
	return mcpservice.WithToolLogger(ctx, mcpservice.ToolLoggerFunc(func(ctx context.Context, level mcp.LoggingLevel, msg string, data map[string]any) {
		s.mu.Lock()
		threshold := s.logLevel
		s.mu.Unlock()
		if levelRank[level] < levelRank[threshold] {
			return
		}
		payload := make(map[string]any, len(data)+1)
		for k, v := range data {
			payload[k] = v
		}
		payload["message"] = msg
		err := s.w.WriteNotification(ctx, string(mcp.LoggingMessageNotificationMethod), mcp.LoggingMessageNotification{
			Level:  level,
			Data:   payload,
			Logger: req.Name,
		})
		if err != nil {
			s.e.log.DebugContext(ctx, "engine.tool.log.err", slog.String("err", err.Error()))
		}
	}))
}
