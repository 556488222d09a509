package stdio

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/FrankGoortani/cv-mcp/internal/engine"
	"github.com/FrankGoortani/cv-mcp/internal/jsonrpc"
	"github.com/FrankGoortani/cv-mcp/mcpservice"
	"github.com/google/uuid"
	"github.com/sourcegraph/jsonrpc2"
)

// Handler is a single-connection stdio transport that reads JSON-RPC messages
// from an io.Reader and writes responses to an io.Writer. By default, it uses
// os.Stdin and os.Stdout.
//
// The handler is transport-only; it delegates all MCP semantics to the
// engine built over the provided server.
type Handler struct {
	srv         *mcpservice.Server
	r           io.Reader
	w           io.Writer
	l           *slog.Logger
	toolTimeout time.Duration
}

// NewHandler constructs a stdio Handler with defaults and applies options.
func NewHandler(srv *mcpservice.Server, opts ...Option) *Handler {
	h := &Handler{
		srv:         srv,
		r:           os.Stdin,
		w:           os.Stdout,
		l:           slog.Default(),
		toolTimeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Serve runs the stdio event loop until EOF on the reader or the context is
// canceled. EOF is a clean shutdown and returns nil. It is safe to call at
// most once per Handler.
func (h *Handler) Serve(ctx context.Context) error {
	eng := engine.NewEngine(h.srv, engine.WithLogger(h.l), engine.WithToolTimeout(h.toolTimeout))

	var conn *jsonrpc2.Conn
	ready := make(chan struct{})
	writer := engine.MessageWriterFunc(func(ctx context.Context, method string, params any) error {
		select {
		case <-ready:
		case <-ctx.Done():
			return ctx.Err()
		}
		return conn.Notify(ctx, method, params)
	})

	sess := eng.NewSession(uuid.NewString(), "stdio", writer)
	defer sess.Close()

	handler := jsonrpc2.HandlerWithError(func(ctx context.Context, _ *jsonrpc2.Conn, r *jsonrpc2.Request) (interface{}, error) {
		var params json.RawMessage
		if r.Params != nil {
			params = *r.Params
		}
		if r.Notif {
			sess.Notify(ctx, r.Method, params)
			return nil, nil
		}
		res, rpcErr := sess.Call(ctx, r.Method, requestID(r.ID), params)
		if rpcErr != nil {
			return nil, &jsonrpc2.Error{Code: int64(rpcErr.Code), Message: rpcErr.Message}
		}
		return res, nil
	})

	stream := jsonrpc2.NewBufferedStream(&rwc{r: h.r, w: h.w}, jsonrpc2.PlainObjectCodec{})
	conn = jsonrpc2.NewConn(ctx, stream, jsonrpc2.AsyncHandler(handler),
		jsonrpc2.SetLogger(slog.NewLogLogger(h.l.Handler(), slog.LevelDebug)))
	close(ready)

	h.l.InfoContext(ctx, "stdio.serve.start", slog.String("session_id", sess.SessionID()))

	select {
	case <-conn.DisconnectNotify():
		h.l.InfoContext(ctx, "stdio.serve.eof")
		return nil
	case <-ctx.Done():
		_ = conn.Close()
		h.l.InfoContext(ctx, "stdio.serve.cancelled")
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil
		}
		return ctx.Err()
	}
}

func requestID(id jsonrpc2.ID) *jsonrpc.RequestID {
	if id.IsString {
		return jsonrpc.NewRequestID(id.Str)
	}
	return jsonrpc.NewRequestID(int64(id.Num))
}

// rwc joins the configured reader and writer into the io.ReadWriteCloser the
// jsonrpc2 stream expects. Close releases whichever sides are closable.
type rwc struct {
	r io.Reader
	w io.Writer
}

func (c *rwc) Read(p []byte) (int, error)  { return c.r.Read(p) }
func (c *rwc) Write(p []byte) (int, error) { return c.w.Write(p) }

func (c *rwc) Close() error {
	var errs []error
	if rc, ok := c.r.(io.Closer); ok {
		errs = append(errs, rc.Close())
	}
	if wc, ok := c.w.(io.Closer); ok {
		errs = append(errs, wc.Close())
	}
	return errors.Join(errs...)
}
