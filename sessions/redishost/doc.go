// Package redishost implements sessions.Directory on Redis so several
// server processes share one view of the open sessions.
//
// Design Notes
//   - Entries: JSON blob per session at <prefix><id>, expiring via PEXPIRE
//   - Index: sorted set <prefix>index scored by expiry (unix ms); Count
//     trims members whose score is in the past and returns ZCARD
//   - Register and Remove touch both keys in one MULTI/EXEC
//
// Example:
//
//	dir, _ := redishost.New(ctx, "localhost:6379", redishost.WithKeyPrefix("cv-mcp:sessions:"))
//	defer dir.Close()
package redishost
