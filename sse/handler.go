package sse

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/FrankGoortani/cv-mcp/mcpservice"
	"github.com/FrankGoortani/cv-mcp/sessions"
	"github.com/FrankGoortani/cv-mcp/sessions/memoryhost"
	"github.com/elnormous/contenttype"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	TransportSSE       = "sse"
	TransportWebSocket = "ws"

	DefaultPingInterval  = 15 * time.Second
	DefaultMaxHeartbeats = 500
)

var (
	eventStreamMediaType  = contenttype.NewMediaType("text/event-stream")
	eventStreamMediaTypes = []contenttype.MediaType{eventStreamMediaType}
)

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithPingInterval sets the heartbeat period.
func WithPingInterval(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.interval = d
		}
	}
}

// WithMaxHeartbeats caps the number of heartbeats per session.
func WithMaxHeartbeats(n int) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxHeartbeats = n
		}
	}
}

// WithAnnounceDelay sets the grace period between connected and server_info.
func WithAnnounceDelay(d time.Duration) Option {
	return func(h *Handler) {
		if d >= 0 {
			h.announceDelay = d
		}
	}
}

// WithDirectory sets where live sessions are recorded. Defaults to a
// process-local memoryhost.Directory.
func WithDirectory(d sessions.Directory) Option {
	return func(h *Handler) {
		if d != nil {
			h.dir = d
		}
	}
}

// WithClock overrides the clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		if now != nil {
			h.now = now
		}
	}
}

// Handler serves streaming sessions for one server.
type Handler struct {
	srv           *mcpservice.Server
	log           *slog.Logger
	interval      time.Duration
	maxHeartbeats int
	announceDelay time.Duration
	dir           sessions.Directory
	now           func() time.Time
	upgrader      websocket.Upgrader
	timers        atomic.Int64
}

func NewHandler(srv *mcpservice.Server, opts ...Option) *Handler {
	h := &Handler{
		srv:           srv,
		log:           slog.Default(),
		interval:      DefaultPingInterval,
		maxHeartbeats: DefaultMaxHeartbeats,
		now:           time.Now,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.dir == nil {
		h.dir = memoryhost.New()
	}
	return h
}

// ActiveTimers reports the number of heartbeat tickers currently running.
func (h *Handler) ActiveTimers() int { return int(h.timers.Load()) }

// Directory returns the directory live sessions are registered in.
func (h *Handler) Directory() sessions.Directory { return h.dir }

// NewSession creates a session writing to sink.
func (h *Handler) NewSession(transport, subject string, sink Sink) *Session {
	return &Session{
		ID:          uuid.NewString(),
		ConnectedAt: h.now(),
		Transport:   transport,
		Subject:     subject,
		h:           h,
		sink:        sink,
	}
}

// ttl keeps a directory entry alive across a couple of missed heartbeats.
func (h *Handler) ttl() time.Duration { return 3 * h.interval }

func (h *Handler) serverInfo() ServerInfo {
	tools := h.srv.ToolNames()
	if tools == nil {
		tools = []string{}
	}
	resources := h.srv.ResourceURIs()
	if resources == nil {
		resources = []string{}
	}
	return ServerInfo{
		Name:         h.srv.Info.Name,
		Version:      h.srv.Info.Version,
		Description:  h.srv.Description,
		Status:       "ready",
		Capabilities: h.srv.Capabilities(),
		Tools:        tools,
		Resources:    resources,
	}
}

// ServeSSE runs a session over a text/event-stream response.
func (h *Handler) ServeSSE(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Header.Get("Accept") != "" {
		if _, _, err := contenttype.GetAcceptableMediaType(r, eventStreamMediaTypes); err != nil {
			writeJSONError(w, http.StatusNotAcceptable, "client must accept text/event-stream")
			h.log.WarnContext(ctx, "sse.accept.unsupported", slog.String("accept", r.Header.Get("Accept")))
			return
		}
	}
	if tt := r.URL.Query().Get("transportType"); tt != "" && tt != TransportSSE {
		h.log.WarnContext(ctx, "sse.transport_type.unexpected", slog.String("transport_type", tt))
	}

	f, ok := w.(http.Flusher)
	if !ok {
		writeJSONError(w, http.StatusInternalServerError, "streaming unsupported")
		h.log.ErrorContext(ctx, "flusher.missing")
		return
	}

	hdr := w.Header()
	hdr.Set("Content-Type", eventStreamMediaType.String())
	hdr.Set("Cache-Control", "no-cache, no-transform")
	hdr.Set("Connection", "keep-alive")
	hdr.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	sess := h.NewSession(TransportSSE, SubjectFrom(ctx), NewStreamSink(ctx, w, f))
	if err := sess.Run(ctx); err != nil {
		h.log.WarnContext(ctx, "sse.session.fail", slog.String("session_id", sess.ID), slog.String("err", err.Error()))
	}
}

// ServeWS upgrades to a WebSocket and runs a session over it. Inbound
// messages are discarded; a read error ends the session.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an HTTP error.
		h.log.WarnContext(r.Context(), "ws.upgrade.fail", slog.String("err", err.Error()))
		return
	}

	// The request context is not cancelled when a hijacked connection
	// drops, so the read loop does it.
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	sess := h.NewSession(TransportWebSocket, SubjectFrom(r.Context()), NewWebSocketSink(conn))
	if err := sess.Run(ctx); err != nil {
		h.log.WarnContext(ctx, "ws.session.fail", slog.String("session_id", sess.ID), slog.String("err", err.Error()))
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "message": msg})
}

type subjectKey struct{}

// WithSubject records the authenticated subject for sessions started from
// ctx.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey{}, subject)
}

// SubjectFrom returns the subject stored by WithSubject, or "".
func SubjectFrom(ctx context.Context) string {
	s, _ := ctx.Value(subjectKey{}).(string)
	return s
}
