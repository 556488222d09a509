package hosted

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
)

// Event is one request as delivered by the runtime.
type Event struct {
	Method  string              `json:"method"`
	Path    string              `json:"path"`
	Query   map[string][]string `json:"query,omitempty"`
	Headers map[string]string   `json:"headers,omitempty"`
	Body    string              `json:"body,omitempty"`
	// IsBase64Encoded marks Body as base64 encoded bytes.
	IsBase64Encoded bool `json:"isBase64Encoded,omitempty"`
}

// Response is the router's answer to an Event. Body must be closed by the
// caller. Closing it early cancels the request context, which ends any
// streaming session behind it.
type Response struct {
	Status  int
	Headers map[string]string
	Body    io.ReadCloser
}

// ReadAll drains and closes the body.
func (r *Response) ReadAll() ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(r.Body)
}

// Option configures an Adapter.
type Option func(*Adapter)

func WithLogger(l *slog.Logger) Option {
	return func(a *Adapter) {
		if l != nil {
			a.log = l
		}
	}
}

// WithHost sets the Host used for synthesized requests.
func WithHost(host string) Option {
	return func(a *Adapter) { a.host = host }
}

// Adapter drives an http.Handler with runtime events.
type Adapter struct {
	h    http.Handler
	log  *slog.Logger
	host string
}

func New(h http.Handler, opts ...Option) *Adapter {
	a := &Adapter{h: h, log: slog.Default(), host: "hosted.local"}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Handle serves ev and returns once the handler has committed its status.
// It returns an error only when the event cannot be turned into a request
// or ctx ends before the handler responds.
func (a *Adapter) Handle(ctx context.Context, ev Event) (*Response, error) {
	req, cancel, err := a.newRequest(ctx, ev)
	if err != nil {
		return nil, err
	}

	pr, pw := io.Pipe()
	w := newPipeWriter(pw)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				a.log.ErrorContext(req.Context(), "hosted.panic", slog.String("err", fmt.Sprint(r)))
				w.WriteHeader(http.StatusInternalServerError)
				_ = pw.CloseWithError(fmt.Errorf("handler panicked: %v", r))
				return
			}
			w.commit()
			_ = pw.Close()
		}()
		a.h.ServeHTTP(w, req)
	}()

	select {
	case <-w.ready:
	case <-ctx.Done():
		cancel()
		_ = pr.Close()
		return nil, ctx.Err()
	}

	return &Response{
		Status:  w.status,
		Headers: flatten(w.committed),
		Body:    &body{PipeReader: pr, cancel: cancel},
	}, nil
}

func (a *Adapter) newRequest(ctx context.Context, ev Event) (*http.Request, context.CancelFunc, error) {
	method := strings.ToUpper(ev.Method)
	if method == "" {
		method = http.MethodGet
	}
	path := ev.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u := &url.URL{Scheme: "https", Host: a.host, Path: path, RawQuery: url.Values(ev.Query).Encode()}

	var data []byte
	if ev.IsBase64Encoded {
		b, err := base64.StdEncoding.DecodeString(ev.Body)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to decode body: %w", err)
		}
		data = b
	} else {
		data = []byte(ev.Body)
	}

	// The request outlives Handle for streaming responses, so it gets its
	// own cancel tied to the body.
	rctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	req, err := http.NewRequestWithContext(rctx, method, u.String(), bytes.NewReader(data))
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("failed to build request: %w", err)
	}
	for k, v := range ev.Headers {
		req.Header.Set(k, v)
	}
	if h := req.Header.Get("Host"); h != "" {
		req.Host = h
	}
	req.RemoteAddr = req.Header.Get("X-Forwarded-For")
	return req, cancel, nil
}

type body struct {
	*io.PipeReader
	cancel context.CancelFunc
	once   sync.Once
}

func (b *body) Close() error {
	b.once.Do(b.cancel)
	return b.PipeReader.Close()
}

// pipeWriter is an http.ResponseWriter whose body feeds an io.Pipe. The
// header map is snapshotted at commit so later mutations by the handler
// do not race with the caller reading Response.Headers.
type pipeWriter struct {
	header    http.Header
	committed http.Header
	pw        *io.PipeWriter
	status    int
	ready     chan struct{}
	once      sync.Once
}

func newPipeWriter(pw *io.PipeWriter) *pipeWriter {
	return &pipeWriter{header: http.Header{}, pw: pw, ready: make(chan struct{})}
}

func (w *pipeWriter) Header() http.Header { return w.header }

func (w *pipeWriter) WriteHeader(code int) {
	w.once.Do(func() {
		w.status = code
		w.committed = w.header.Clone()
		close(w.ready)
	})
}

func (w *pipeWriter) commit() { w.WriteHeader(http.StatusOK) }

func (w *pipeWriter) Write(p []byte) (int, error) {
	w.commit()
	return w.pw.Write(p)
}

// Flush commits the headers. Writes reach the reader directly, so there is
// nothing buffered to push.
func (w *pipeWriter) Flush() { w.commit() }

func flatten(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[k] = strings.Join(v, ", ")
	}
	return out
}
