package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/FrankGoortani/cv-mcp/cvserver"
	"github.com/FrankGoortani/cv-mcp/internal/jsonrpc"
	"github.com/FrankGoortani/cv-mcp/mcp"
	"github.com/FrankGoortani/cv-mcp/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rpcBody(t *testing.T, id any, method string, params any) string {
	t.Helper()
	req := jsonrpc.Request{JSONRPCVersion: jsonrpc.ProtocolVersion, Method: method}
	if id != nil {
		req.ID = jsonrpc.NewRequestID(id)
	}
	if params != nil {
		b, err := json.Marshal(params)
		require.NoError(t, err)
		req.Params = b
	}
	b, err := json.Marshal(req)
	require.NoError(t, err)
	return string(b)
}

func decodeRPC(t *testing.T, data []byte) jsonrpc.Response {
	t.Helper()
	var res jsonrpc.Response
	require.NoError(t, json.Unmarshal(data, &res), string(data))
	return res
}

func TestRPC_Initialize(t *testing.T) {
	body := rpcBody(t, 1, string(mcp.InitializeMethod), map[string]any{
		"protocolVersion": mcp.LatestProtocolVersion,
		"capabilities":    map[string]any{},
		"clientInfo":      map[string]any{"name": "test-client", "version": "0.0.1"},
	})
	rec := do(t, newRouter(), http.MethodPost, "/rpc", body, map[string]string{"Content-Type": "application/json"})
	require.Equal(t, http.StatusOK, rec.Code)

	res := decodeRPC(t, rec.Body.Bytes())
	require.Nil(t, res.Error)
	var init mcp.InitializeResult
	require.NoError(t, json.Unmarshal(res.Result, &init))
	assert.Equal(t, "test", init.ServerInfo.Name)
	assert.Equal(t, mcp.LatestProtocolVersion, init.ProtocolVersion)
	assert.NotNil(t, init.Capabilities.Tools)
}

func TestRPC_ToolsCall(t *testing.T) {
	body := rpcBody(t, "c1", string(mcp.ToolsCallMethod), map[string]any{
		"name":      "echo",
		"arguments": map[string]any{"message": "hi"},
	})
	rec := do(t, newRouter(), http.MethodPost, "/rpc", body, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	res := decodeRPC(t, rec.Body.Bytes())
	require.Nil(t, res.Error)
	var result mcp.CallToolResult
	require.NoError(t, json.Unmarshal(res.Result, &result))
	require.Len(t, result.Content, 1)
	assert.JSONEq(t, `{"echo":"hi"}`, result.Content[0].Text)
	assert.False(t, result.IsError)
}

func TestRPC_Errors(t *testing.T) {
	rt := newRouter()

	rec := do(t, rt, http.MethodPost, "/rpc", `{"jsonrpc":`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"jsonrpc":"2.0","error":{"code":-32700,"message":"Parse error"},"id":null}`, rec.Body.String())

	rec = do(t, rt, http.MethodPost, "/rpc", rpcBody(t, 2, "nope/nope", nil), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decodeRPC(t, rec.Body.Bytes())
	require.NotNil(t, res.Error)
	assert.Equal(t, jsonrpc.ErrorCodeMethodNotFound, res.Error.Code)

	rec = do(t, rt, http.MethodPost, "/rpc", `{"jsonrpc":"2.0","id":3,"result":{}}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, rt, http.MethodGet, "/rpc", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = do(t, rt, http.MethodPost, "/rpc", "x", map[string]string{"Content-Type": "text/plain"})
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestRPC_NotificationAccepted(t *testing.T) {
	rec := do(t, newRouter(), http.MethodPost, "/rpc", rpcBody(t, nil, string(mcp.InitializedNotificationMethod), nil), nil)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRPC_EventStreamNegotiation(t *testing.T) {
	cases := []struct {
		accept string
		want   bool
	}{
		{"", false},
		{"*/*", false},
		{"application/json", false},
		{"text/event-stream", true},
		{"text/event-stream, application/json;q=0.5", true},
	}
	for _, c := range cases {
		r := httptest.NewRequest(http.MethodPost, "/rpc", nil)
		if c.accept != "" {
			r.Header.Set("Accept", c.accept)
		}
		assert.Equal(t, c.want, wantsEventStream(r), c.accept)
	}
}

func TestRPC_StreamsNotifications(t *testing.T) {
	srv, err := cvserver.New(cvserver.WithMediaDir(t.TempDir()))
	require.NoError(t, err)
	hs := httptest.NewServer(New(srv, WithLogger(quiet())))
	t.Cleanup(hs.Close)

	body := rpcBody(t, "s1", string(mcp.ToolsCallMethod), map[string]any{
		"name":      "search_cv",
		"arguments": map[string]any{"query": "Terrablob"},
		"_meta":     map[string]any{"progressToken": "p1"},
	})
	req, err := http.NewRequest(http.MethodPost, hs.URL+"/rpc", bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/event-stream", res.Header.Get("Content-Type"))

	var progress, logs int
	var final *jsonrpc.AnyMessage
	rd := sse.NewReader(res.Body)
	for {
		f, err := rd.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		require.Equal(t, "message", f.Event)
		var msg jsonrpc.AnyMessage
		require.NoError(t, json.Unmarshal(f.Data, &msg))
		require.Nil(t, final, "no frames after the response")
		switch {
		case msg.Type() == "response":
			final = &msg
		case msg.Method == string(mcp.ProgressNotificationMethod):
			progress++
		case msg.Method == string(mcp.LoggingMessageNotificationMethod):
			logs++
		}
	}
	require.NotNil(t, final)
	assert.Nil(t, final.Error)
	assert.Equal(t, 8, progress)
	assert.Equal(t, 2, logs)
}
