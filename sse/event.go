package sse

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/FrankGoortani/cv-mcp/mcp"
)

// EventType names a session event.
type EventType string

const (
	EventConnected  EventType = "connected"
	EventServerInfo EventType = "server_info"
	EventHeartbeat  EventType = "heartbeat"
	EventError      EventType = "error"
)

// Event is one message on a session stream. Payload is encoded as JSON.
type Event struct {
	Type    EventType
	Payload any
}

// Connected is the payload of the first event of every session.
type Connected struct {
	Status    string `json:"status"`
	SessionID string `json:"sessionId"`
}

// ServerInfo announces the server once the session is established.
type ServerInfo struct {
	Name         string                 `json:"name"`
	Version      string                 `json:"version"`
	Description  string                 `json:"description"`
	Status       string                 `json:"status"`
	Capabilities mcp.ServerCapabilities `json:"capabilities"`
	Tools        []string               `json:"tools"`
	Resources    []string               `json:"resources"`
}

// Heartbeat is emitted every ping interval while the session is alive.
type Heartbeat struct {
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
	Counter   int    `json:"counter"`
}

// ErrorPayload reports a failure to produce an event.
type ErrorPayload struct {
	Message string `json:"message"`
}

// ErrSinkClosed is returned by a Sink written after Close.
var ErrSinkClosed = errors.New("sse: sink closed")

// Sink delivers encoded events to one client. Send is only called from the
// session goroutine. Close releases the underlying writer; later Sends fail
// with ErrSinkClosed.
type Sink interface {
	Send(ctx context.Context, typ EventType, data json.RawMessage) error
	Close() error
}
