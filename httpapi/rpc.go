package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/FrankGoortani/cv-mcp/internal/engine"
	"github.com/FrankGoortani/cv-mcp/internal/jsonrpc"
	"github.com/FrankGoortani/cv-mcp/sse"
	"github.com/elnormous/contenttype"
	"github.com/google/uuid"
)

var (
	eventStreamMediaType = contenttype.NewMediaType("text/event-stream")
	rpcMediaTypes        = []contenttype.MediaType{jsonMediaType, eventStreamMediaType}
)

// handleRPC dispatches one JSON-RPC message through a throwaway engine
// session. A client accepting only text/event-stream receives progress and
// log notifications as "message" events ahead of the response.
func (rt *Router) handleRPC(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !jsonBody(r) {
		writeStatus(w, http.StatusUnsupportedMediaType, "error", "content-type must be application/json")
		return
	}
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeStatus(w, http.StatusBadRequest, "error", "failed to read body")
		return
	}
	msg, rpcErr := jsonrpc.Decode(data)
	if rpcErr != nil {
		rt.log.WarnContext(ctx, "jsonrpc.message.invalid", slog.String("err", rpcErr.Message))
		writeJSON(w, http.StatusOK, jsonrpc.NewErrorObjectResponse(nil, rpcErr))
		return
	}
	req := msg.AsRequest()
	if req == nil {
		writeStatus(w, http.StatusBadRequest, "error", "expected a JSON-RPC request or notification")
		return
	}

	var (
		writer engine.MessageWriter
		sink   sse.Sink
		mu     sync.Mutex
	)
	if !req.ID.IsNil() && wantsEventStream(r) {
		if f, ok := w.(http.Flusher); ok {
			hdr := w.Header()
			hdr.Set("Content-Type", eventStreamMediaType.String())
			hdr.Set("Cache-Control", "no-cache, no-transform")
			hdr.Set("X-Accel-Buffering", "no")
			w.WriteHeader(http.StatusOK)
			sink = sse.NewStreamSink(ctx, w, f)
			defer sink.Close()
			writer = engine.MessageWriterFunc(func(ctx context.Context, method string, params any) error {
				b, err := encodeNotification(method, params)
				if err != nil {
					return err
				}
				mu.Lock()
				defer mu.Unlock()
				return sink.Send(ctx, "message", b)
			})
		}
	}

	sess := rt.eng.NewSession(uuid.NewString(), "http", writer)
	defer sess.Close()

	if req.ID.IsNil() {
		sess.Notify(ctx, req.Method, req.Params)
		w.WriteHeader(http.StatusAccepted)
		return
	}
	res := sess.Handle(ctx, req)
	if sink == nil {
		writeJSON(w, http.StatusOK, res)
		return
	}
	b, err := json.Marshal(res)
	if err != nil {
		rt.log.ErrorContext(ctx, "jsonrpc.response.marshal.err", slog.String("err", err.Error()))
		return
	}
	mu.Lock()
	defer mu.Unlock()
	if err := sink.Send(ctx, "message", b); err != nil {
		rt.log.WarnContext(ctx, "jsonrpc.response.write.err", slog.String("err", err.Error()))
	}
}

func encodeNotification(method string, params any) (json.RawMessage, error) {
	p, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	return json.Marshal(jsonrpc.Request{JSONRPCVersion: jsonrpc.ProtocolVersion, Method: method, Params: p})
}

// wantsEventStream reports whether content negotiation prefers an event
// stream over JSON. JSON wins ties and wildcards.
func wantsEventStream(r *http.Request) bool {
	if r.Header.Get("Accept") == "" {
		return false
	}
	mt, _, err := contenttype.GetAcceptableMediaType(r, rpcMediaTypes)
	return err == nil && mt.Matches(eventStreamMediaType)
}
