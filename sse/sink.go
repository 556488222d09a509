package sse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// lockedWriteFlusher wraps an io.Writer + http.Flusher with a mutex and an optional context.
// It serializes writes/flushes, avoids writing after ctx is canceled and
// refuses everything once released.
type lockedWriteFlusher struct {
	io.Writer
	http.Flusher
	mu       sync.Mutex
	ctx      context.Context
	released bool
}

func (l *lockedWriteFlusher) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.released {
		return 0, ErrSinkClosed
	}
	if l.ctx != nil && l.ctx.Err() != nil {
		return 0, l.ctx.Err()
	}
	return l.Writer.Write(p)
}

func (l *lockedWriteFlusher) Flush() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.released || (l.ctx != nil && l.ctx.Err() != nil) {
		return
	}
	l.Flusher.Flush()
}

func (l *lockedWriteFlusher) release() {
	l.mu.Lock()
	l.released = true
	l.mu.Unlock()
}

// writeSSEEvent writes one text/event-stream frame and flushes it.
func writeSSEEvent(wf *lockedWriteFlusher, event string, payload []byte) error {
	if _, err := fmt.Fprintf(wf, "event: %s\n", event); err != nil {
		return fmt.Errorf("failed to write SSE event name: %w", err)
	}
	if _, err := wf.Write([]byte("data: ")); err != nil {
		return fmt.Errorf("failed to write SSE data prefix: %w", err)
	}
	if _, err := wf.Write(payload); err != nil {
		return fmt.Errorf("failed to write SSE payload: %w", err)
	}
	if _, err := wf.Write([]byte("\n\n")); err != nil {
		return fmt.Errorf("failed to write SSE frame terminator: %w", err)
	}
	wf.Flush()
	return nil
}

type streamSink struct {
	wf *lockedWriteFlusher
}

// NewStreamSink returns a Sink writing text/event-stream frames to w. The
// caller is responsible for the response headers.
func NewStreamSink(ctx context.Context, w io.Writer, f http.Flusher) Sink {
	return &streamSink{wf: &lockedWriteFlusher{Writer: w, Flusher: f, ctx: ctx}}
}

func (s *streamSink) Send(_ context.Context, typ EventType, data json.RawMessage) error {
	return writeSSEEvent(s.wf, string(typ), data)
}

func (s *streamSink) Close() error {
	s.wf.release()
	return nil
}

const wsWriteTimeout = 10 * time.Second

// wsFrame is the WebSocket rendering of an event.
type wsFrame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type wsSink struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	closed bool
}

// NewWebSocketSink returns a Sink sending one JSON text message per event
// on conn. Close sends a normal closure frame and closes the connection.
func NewWebSocketSink(conn *websocket.Conn) Sink {
	return &wsSink{conn: conn}
}

func (s *wsSink) Send(_ context.Context, typ EventType, data json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSinkClosed
	}
	_ = s.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	if err := s.conn.WriteJSON(wsFrame{Event: string(typ), Data: data}); err != nil {
		return fmt.Errorf("failed to write websocket frame: %w", err)
	}
	return nil
}

func (s *wsSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed")
	_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	return s.conn.Close()
}
