// Package sessions tracks the live streaming sessions of a server.
//
// A Directory records one Entry per open session together with a time to
// live. Session handlers register on connect, refresh the TTL on every
// heartbeat and remove the entry when the transport closes, so an entry
// left behind by a crashed process disappears on its own once the TTL
// elapses. The health endpoint reports Count.
//
// Two implementations are provided: memoryhost for single-process servers
// and tests, and redishost for deployments where several processes share
// one view of the active sessions.
package sessions
