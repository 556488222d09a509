// Package memoryhost provides an in-memory sessions.Directory suitable for
// tests, development, and single-process servers. All state is ephemeral
// and discarded on process exit.
//
// Characteristics
//
//	Durability        : none (RAM only)
//	Horizontal scale  : no (process local)
//	Expiry            : lazy, evaluated against the injected clock
//	Concurrency       : safe (single mutex)
//
// Example:
//
//	dir := memoryhost.New()
//	// the session handler is wired with sse.WithDirectory(dir)
//
// For multi-process deployments prefer redishost.
package memoryhost
