package sse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/FrankGoortani/cv-mcp/internal/logctx"
	"github.com/FrankGoortani/cv-mcp/sessions"
)

// State is the lifecycle position of a Session.
type State int32

const (
	StateInit State = iota
	StateAnnounce
	StateAlive
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateAnnounce:
		return "announce"
	case StateAlive:
		return "alive"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Session is one client stream. Create it with Handler.NewSession and drive
// it with Run; a Session is not reusable.
type Session struct {
	ID          string
	ConnectedAt time.Time
	Transport   string
	Subject     string

	h          *Handler
	sink       Sink
	state      atomic.Int32
	heartbeats atomic.Int32
	closeOnce  sync.Once
}

// State reports the current lifecycle state.
func (s *Session) State() State { return State(s.state.Load()) }

// Heartbeats reports how many heartbeat events have been written.
func (s *Session) Heartbeats() int { return int(s.heartbeats.Load()) }

// Run emits the session's events until ctx is done, a write fails or the
// heartbeat cap is reached. It returns nil for the first two ordinary
// endings and the write or encoding error otherwise. The sink is closed
// before Run returns.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	ctx = logctx.WithSessionData(ctx, &logctx.SessionData{SessionID: s.ID, Transport: s.Transport, Subject: s.Subject})

	start := time.Now()
	log := s.h.log
	log.InfoContext(ctx, "sse.session.start")
	defer func() {
		s.close(ctx)
		log.InfoContext(ctx, "sse.session.closed",
			slog.Int("heartbeats", s.Heartbeats()),
			slog.Int64("dur_ms", time.Since(start).Milliseconds()))
	}()

	if err := s.emit(ctx, Event{Type: EventConnected, Payload: Connected{Status: "connected", SessionID: s.ID}}); err != nil {
		return err
	}
	s.register(ctx)

	s.state.Store(int32(StateAnnounce))
	if d := s.h.announceDelay; d > 0 {
		grace := time.NewTimer(d)
		select {
		case <-ctx.Done():
			grace.Stop()
			return nil
		case <-grace.C:
		}
	}
	if err := s.emit(ctx, Event{Type: EventServerInfo, Payload: s.h.serverInfo()}); err != nil {
		return err
	}

	s.state.Store(int32(StateAlive))
	ticker := time.NewTicker(s.h.interval)
	s.h.timers.Add(1)
	defer func() {
		ticker.Stop()
		s.h.timers.Add(-1)
	}()

	for n := 1; n <= s.h.maxHeartbeats; n++ {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		hb := Heartbeat{
			Timestamp: s.h.now().UTC().Format(time.RFC3339Nano),
			Status:    "ok",
			Counter:   n,
		}
		if err := s.emit(ctx, Event{Type: EventHeartbeat, Payload: hb}); err != nil {
			return err
		}
		s.heartbeats.Add(1)
		s.refresh(ctx)
	}
	log.InfoContext(ctx, "sse.session.heartbeat_cap", slog.Int("max", s.h.maxHeartbeats))
	return nil
}

// emit encodes and writes ev. On encoding failure an error event is
// attempted before the failure is returned.
func (s *Session) emit(ctx context.Context, ev Event) error {
	data, err := json.Marshal(ev.Payload)
	if err != nil {
		s.h.log.ErrorContext(ctx, "sse.event.marshal.err", slog.String("event", string(ev.Type)), slog.String("err", err.Error()))
		msg, mErr := json.Marshal(ErrorPayload{Message: fmt.Sprintf("failed to encode %s event", ev.Type)})
		if mErr == nil {
			_ = s.sink.Send(ctx, EventError, msg)
		}
		return fmt.Errorf("failed to marshal %s event: %w", ev.Type, err)
	}
	if err := s.sink.Send(ctx, ev.Type, data); err != nil {
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			return nil
		}
		s.h.log.WarnContext(ctx, "sse.event.write.err", slog.String("event", string(ev.Type)), slog.String("err", err.Error()))
		return fmt.Errorf("failed to write %s event: %w", ev.Type, err)
	}
	return nil
}

func (s *Session) entry() sessions.Entry {
	return sessions.Entry{ID: s.ID, Transport: s.Transport, Subject: s.Subject, ConnectedAt: s.ConnectedAt}
}

func (s *Session) register(ctx context.Context) {
	if err := s.h.dir.Register(ctx, s.entry(), s.h.ttl()); err != nil {
		s.h.log.WarnContext(ctx, "sse.session.register.err", slog.String("err", err.Error()))
	}
}

func (s *Session) refresh(ctx context.Context) {
	err := s.h.dir.Refresh(ctx, s.ID, s.h.ttl())
	if errors.Is(err, sessions.ErrUnknownSession) {
		s.register(ctx)
		return
	}
	if err != nil {
		s.h.log.WarnContext(ctx, "sse.session.refresh.err", slog.String("err", err.Error()))
	}
}

// close releases the sink and removes the directory entry exactly once.
func (s *Session) close(ctx context.Context) {
	s.closeOnce.Do(func() {
		s.state.Store(int32(StateClosed))
		if err := s.sink.Close(); err != nil {
			s.h.log.DebugContext(ctx, "sse.sink.close.err", slog.String("err", err.Error()))
		}
		rmCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		if err := s.h.dir.Remove(rmCtx, s.ID); err != nil {
			s.h.log.WarnContext(ctx, "sse.session.remove.err", slog.String("err", err.Error()))
		}
	})
}
