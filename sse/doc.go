// Package sse implements the streaming session endpoint of the CV server.
//
// A session is a one-way stream of typed events. Every session emits, in
// order and from a single goroutine:
//
//	connected    {"status":"connected","sessionId":"..."}
//	server_info  name, version, capabilities, tool names and resource URIs
//	heartbeat    {"timestamp":"...","status":"ok","counter":n}, repeated
//
// Heartbeats stop when the client goes away, the server shuts down, a write
// fails or the configured cap is reached. Each session owns exactly one
// heartbeat ticker, stopped exactly once when the session closes;
// Handler.ActiveTimers reports how many are live.
//
// The same session runs over two sinks. ServeSSE writes text/event-stream
// frames flushed per event. ServeWS upgrades to a WebSocket and sends one
// {"event":...,"data":...} text message per event.
//
// Live sessions are tracked in a sessions.Directory with a TTL refreshed on
// every heartbeat.
package sse
