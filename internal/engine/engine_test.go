package engine

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/FrankGoortani/cv-mcp/internal/jsonrpc"
	"github.com/FrankGoortani/cv-mcp/mcp"
	"github.com/FrankGoortani/cv-mcp/mcpservice"
)

type slowArgs struct{}

type recorder struct {
	mu    sync.Mutex
	notes []string
}

func (r *recorder) WriteNotification(_ context.Context, method string, params any) error {
	b, _ := json.Marshal(params)
	r.mu.Lock()
	r.notes = append(r.notes, method+" "+string(b))
	r.mu.Unlock()
	return nil
}

func (r *recorder) methods() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, n := range r.notes {
		for i := 0; i < len(n); i++ {
			if n[i] == ' ' {
				out = append(out, n[:i])
				break
			}
		}
	}
	return out
}

func testServer() *mcpservice.Server {
	echo := mcpservice.NewTool("echo", func(ctx context.Context, w mcpservice.ToolResponseWriter, r *mcpservice.ToolRequest[struct {
		Msg string `json:"msg" jsonschema:"required"`
	}]) error {
		w.Log(mcp.LoggingLevelDebug, "debug line", nil)
		w.Log(mcp.LoggingLevelInfo, "echoing", map[string]any{"msg": r.Args().Msg})
		_ = w.SendProgress(1, 1)
		return w.WriteJSON(map[string]string{"msg": r.Args().Msg})
	})
	// hang ignores its context entirely.
	hang := mcpservice.NewTool("hang", func(ctx context.Context, w mcpservice.ToolResponseWriter, r *mcpservice.ToolRequest[slowArgs]) error {
		time.Sleep(time.Second)
		return w.WriteJSON(true)
	})
	prompts := mcpservice.NewPromptsContainer(mcpservice.StaticPrompt{
		Descriptor: mcp.Prompt{Name: "p"},
		Render:     func(context.Context, map[string]string) (string, error) { return "text", nil },
	})
	return mcpservice.NewServer(
		mcpservice.WithServerInfo(mcp.ImplementationInfo{Name: "test", Version: "1.2.3"}),
		mcpservice.WithInstructions("be nice"),
		mcpservice.WithToolsContainer(mcpservice.NewToolsContainer(echo, hang)),
		mcpservice.WithPromptsContainer(prompts),
		mcpservice.WithLevelSetter(mcpservice.NewSlogLevelVarLogging(new(slog.LevelVar))),
	)
}

func quietEngine(opts ...EngineOption) *Engine {
	opts = append([]EngineOption{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	return NewEngine(testServer(), opts...)
}

func call(t *testing.T, s *SessionHandle, method string, params string) (json.RawMessage, *jsonrpc.Error) {
	t.Helper()
	var raw json.RawMessage
	if params != "" {
		raw = json.RawMessage(params)
	}
	return s.Call(context.Background(), method, jsonrpc.NewRequestID(int64(1)), raw)
}

func TestInitialize(t *testing.T) {
	s := quietEngine().NewSession("s1", "test", nil)
	res, rpcErr := call(t, s, "initialize", `{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"c","version":"1"}}`)
	if rpcErr != nil {
		t.Fatalf("initialize: %v", rpcErr)
	}
	var got mcp.InitializeResult
	if err := json.Unmarshal(res, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ProtocolVersion != "2024-11-05" {
		t.Fatalf("expected negotiated 2024-11-05 got %q", got.ProtocolVersion)
	}
	if got.ServerInfo.Name != "test" || got.Instructions != "be nice" {
		t.Fatalf("unexpected result %+v", got)
	}
	if got.Capabilities.Tools == nil || got.Capabilities.Prompts == nil || got.Capabilities.Logging == nil || got.Capabilities.Resources != nil {
		t.Fatalf("unexpected capabilities %+v", got.Capabilities)
	}

	res, _ = call(t, s, "initialize", `{"protocolVersion":"1999-01-01"}`)
	_ = json.Unmarshal(res, &got)
	if got.ProtocolVersion != mcp.LatestProtocolVersion {
		t.Fatalf("expected fallback to latest, got %q", got.ProtocolVersion)
	}

	s.Notify(context.Background(), "notifications/initialized", nil)
	if !s.Initialized() {
		t.Fatalf("expected session to be initialized")
	}
}

func TestErrorCodes(t *testing.T) {
	s := quietEngine().NewSession("s1", "test", nil)
	cases := []struct {
		method string
		params string
		code   jsonrpc.ErrorCode
	}{
		{"nope/method", "", jsonrpc.ErrorCodeMethodNotFound},
		{"resources/list", "", jsonrpc.ErrorCodeMethodNotFound},
		{"tools/call", `{"name":"unknown-tool-xyz","arguments":{}}`, jsonrpc.ErrorCodeInvalidParams},
		{"tools/call", `{}`, jsonrpc.ErrorCodeInvalidParams},
		{"tools/call", `[1,2]`, jsonrpc.ErrorCodeInvalidParams},
		{"prompts/get", `{"name":"missing"}`, jsonrpc.ErrorCodeInvalidParams},
		{"logging/setLevel", `{"level":"loud"}`, jsonrpc.ErrorCodeInvalidParams},
	}
	for _, tc := range cases {
		_, rpcErr := call(t, s, tc.method, tc.params)
		if rpcErr == nil || rpcErr.Code != tc.code {
			t.Fatalf("%s %s: want code %d got %v", tc.method, tc.params, tc.code, rpcErr)
		}
	}
}

func TestToolsCall_InvalidArgumentsIsErrorResult(t *testing.T) {
	s := quietEngine().NewSession("s1", "test", nil)
	res, rpcErr := call(t, s, "tools/call", `{"name":"echo","arguments":{}}`)
	if rpcErr != nil {
		t.Fatalf("unexpected rpc error %v", rpcErr)
	}
	var got mcp.CallToolResult
	if err := json.Unmarshal(res, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.IsError {
		t.Fatalf("expected isError result, got %s", res)
	}
}

func TestToolsCall_ProgressAndLogForwarding(t *testing.T) {
	rec := &recorder{}
	s := quietEngine().NewSession("s1", "test", rec)
	res, rpcErr := call(t, s, "tools/call", `{"name":"echo","arguments":{"msg":"hi"},"_meta":{"progressToken":"tok"}}`)
	if rpcErr != nil {
		t.Fatalf("tools/call: %v", rpcErr)
	}
	var got mcp.CallToolResult
	if err := json.Unmarshal(res, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Content) != 1 || got.Content[0].Text != `{"msg":"hi"}` {
		t.Fatalf("unexpected content %s", res)
	}
	methods := rec.methods()
	// The debug line is filtered at the default info level.
	if len(methods) != 2 || methods[0] != "notifications/message" || methods[1] != "notifications/progress" {
		t.Fatalf("unexpected notifications %v", rec.notes)
	}

	if _, rpcErr := call(t, s, "logging/setLevel", `{"level":"debug"}`); rpcErr != nil {
		t.Fatalf("setLevel: %v", rpcErr)
	}
	rec.notes = nil
	if _, rpcErr := call(t, s, "tools/call", `{"name":"echo","arguments":{"msg":"hi"}}`); rpcErr != nil {
		t.Fatalf("tools/call: %v", rpcErr)
	}
	if n := len(rec.methods()); n != 2 {
		t.Fatalf("expected two log notifications without progress, got %v", rec.notes)
	}
}

func TestToolsCall_Timeout(t *testing.T) {
	s := quietEngine(WithToolTimeout(20*time.Millisecond)).NewSession("s1", "test", nil)
	start := time.Now()
	_, rpcErr := call(t, s, "tools/call", `{"name":"hang"}`)
	if rpcErr == nil || rpcErr.Code != jsonrpc.ErrorCodeRequestTimeout {
		t.Fatalf("expected timeout code, got %v", rpcErr)
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Fatalf("timeout was not enforced promptly")
	}
}

func TestToolsCall_Cancelled(t *testing.T) {
	s := quietEngine().NewSession("s1", "test", nil)
	done := make(chan *jsonrpc.Error, 1)
	go func() {
		_, rpcErr := s.Call(context.Background(), "tools/call", jsonrpc.NewRequestID("req-7"), json.RawMessage(`{"name":"hang"}`))
		done <- rpcErr
	}()

	deadline := time.Now().Add(time.Second)
	for {
		s.Notify(context.Background(), "notifications/cancelled", json.RawMessage(`{"requestId":"req-7"}`))
		select {
		case rpcErr := <-done:
			if rpcErr == nil || rpcErr.Code != jsonrpc.ErrorCodeInternalError {
				t.Fatalf("expected cancelled error, got %v", rpcErr)
			}
			return
		case <-time.After(10 * time.Millisecond):
		}
		if time.Now().After(deadline) {
			t.Fatalf("call was never cancelled")
		}
	}
}

func TestHandle_NotificationHasNoResponse(t *testing.T) {
	s := quietEngine().NewSession("s1", "test", nil)
	if resp := s.Handle(context.Background(), &jsonrpc.Request{JSONRPCVersion: "2.0", Method: "notifications/initialized"}); resp != nil {
		t.Fatalf("expected nil response, got %+v", resp)
	}
	resp := s.Handle(context.Background(), &jsonrpc.Request{JSONRPCVersion: "2.0", Method: "ping", ID: jsonrpc.NewRequestID("p")})
	if resp == nil || resp.Error != nil || string(resp.Result) != `{}` {
		t.Fatalf("unexpected ping response %+v", resp)
	}
}

func TestPromptsAndTools(t *testing.T) {
	s := quietEngine().NewSession("s1", "test", nil)
	res, rpcErr := call(t, s, "tools/list", "")
	if rpcErr != nil {
		t.Fatalf("tools/list: %v", rpcErr)
	}
	var tl mcp.ListToolsResult
	_ = json.Unmarshal(res, &tl)
	if len(tl.Tools) != 2 || tl.Tools[0].Name != "echo" {
		t.Fatalf("unexpected tools %s", res)
	}
	res, rpcErr = call(t, s, "prompts/get", `{"name":"p"}`)
	if rpcErr != nil {
		t.Fatalf("prompts/get: %v", rpcErr)
	}
	var pr mcp.GetPromptResult
	_ = json.Unmarshal(res, &pr)
	if len(pr.Messages) != 1 || pr.Messages[0].Content.Text != "text" {
		t.Fatalf("unexpected prompt %s", res)
	}
}
