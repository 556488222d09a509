package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/FrankGoortani/cv-mcp/mcpservice"
	"github.com/elnormous/contenttype"
)

const maxBodyBytes = 1 << 20

var jsonMediaType = contenttype.NewMediaType("application/json")

type toolResponse struct {
	Status string          `json:"status"`
	Result json.RawMessage `json:"result"`
}

func (rt *Router) handleTool(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !jsonBody(r) {
		writeStatus(w, http.StatusUnsupportedMediaType, "error", "content-type must be application/json")
		rt.log.WarnContext(ctx, "content_type.unsupported", slog.String("content_type", r.Header.Get("Content-Type")))
		return
	}
	body, err := readBody(w, r)
	if err != nil {
		rt.writeError(ctx, w, err)
		return
	}

	var pathName string
	if strings.HasPrefix(r.URL.Path, "/tools/") {
		pathName = strings.TrimPrefix(r.URL.Path, "/tools/")
	}
	name, args, err := resolveToolCall(pathName, body)
	if err != nil {
		rt.writeError(ctx, w, err)
		return
	}

	start := time.Now()
	out, err := rt.invoke(ctx, name, args)
	if err != nil {
		rt.log.InfoContext(ctx, "http.tool.invoke.fail",
			slog.String("tool", name),
			slog.String("err", err.Error()),
			slog.Int64("dur_ms", time.Since(start).Milliseconds()))
		rt.writeError(ctx, w, err)
		return
	}
	rt.log.InfoContext(ctx, "http.tool.invoke.ok", slog.String("tool", name), slog.Int64("dur_ms", time.Since(start).Milliseconds()))
	writeJSON(w, http.StatusOK, toolResponse{Status: "success", Result: out})
}

// invoke runs the tool bounded by the request timeout. The handler runs in
// its own goroutine so one that ignores its context is still cut off.
func (rt *Router) invoke(ctx context.Context, name string, args json.RawMessage) (json.RawMessage, error) {
	if rt.srv.Tools == nil {
		return nil, mcpservice.Errorf(mcpservice.KindNotFound, "unknown tool: %s", name)
	}
	ctx, cancel := context.WithTimeout(ctx, rt.timeout)
	defer cancel()
	ctx = mcpservice.WithToolLogger(ctx, mcpservice.SlogToolLogger(rt.log))

	type outcome struct {
		out json.RawMessage
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		out, err := rt.srv.Tools.Invoke(ctx, name, args)
		done <- outcome{out: out, err: err}
	}()
	select {
	case o := <-done:
		return o.out, o.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, mcpservice.ErrTimeout
		}
		return nil, ctx.Err()
	}
}

// resolveToolCall picks the tool name and arguments of a POST body. The
// name comes from the path segment, then body.tool, then body.name. The
// arguments are body.arguments when present, otherwise the body without
// the routing fields.
func resolveToolCall(pathName string, body map[string]json.RawMessage) (string, json.RawMessage, error) {
	if i := strings.LastIndex(pathName, "/"); i >= 0 {
		pathName = pathName[i+1:]
	}
	name := pathName
	if name == "" {
		name = stringField(body, "tool")
	}
	if name == "" {
		name = stringField(body, "name")
	}
	if name == "" {
		return "", nil, mcpservice.Errorf(mcpservice.KindInvalidArgument, "missing tool name")
	}

	if raw, ok := body["arguments"]; ok && !isNull(raw) {
		return name, raw, nil
	}
	rest := make(map[string]json.RawMessage, len(body))
	for k, v := range body {
		switch k {
		case "tool", "name", "arguments":
			continue
		}
		rest[k] = v
	}
	args, err := json.Marshal(rest)
	if err != nil {
		return "", nil, mcpservice.Errorf(mcpservice.KindInternal, "encode arguments: %w", err)
	}
	return name, args, nil
}

func stringField(body map[string]json.RawMessage, key string) string {
	raw, ok := body[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func isNull(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}

// jsonBody reports whether the request declares a JSON body or no type.
func jsonBody(r *http.Request) bool {
	if r.Header.Get("Content-Type") == "" {
		return true
	}
	mt, err := contenttype.GetMediaType(r)
	return err == nil && mt.Matches(jsonMediaType)
}

// readBody decodes a JSON object body. An empty body is an empty object.
func readBody(w http.ResponseWriter, r *http.Request) (map[string]json.RawMessage, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, mcpservice.Errorf(mcpservice.KindInvalidArgument, "failed to read body: %w", err)
	}
	body := map[string]json.RawMessage{}
	if len(bytes.TrimSpace(data)) == 0 {
		return body, nil
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, mcpservice.Errorf(mcpservice.KindInvalidArgument, "invalid JSON body: %w", err)
	}
	if body == nil {
		body = map[string]json.RawMessage{}
	}
	return body, nil
}

// statusFor maps an error kind to its HTTP status.
func statusFor(kind mcpservice.ErrorKind) int {
	switch kind {
	case mcpservice.KindNotFound:
		return http.StatusNotFound
	case mcpservice.KindInvalidArgument:
		return http.StatusBadRequest
	case mcpservice.KindResourceUnavailable:
		return http.StatusServiceUnavailable
	case mcpservice.KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case mcpservice.KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (rt *Router) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		// client went away
		return
	}
	kind := mcpservice.KindOf(err)
	msg := err.Error()
	switch kind {
	case mcpservice.KindTimeout:
		msg = "request timed out"
	case mcpservice.KindInternal:
		rt.log.ErrorContext(ctx, "http.internal_error", slog.String("err", err.Error()))
		msg = "internal server error"
	}
	writeStatus(w, statusFor(kind), "error", msg)
}
