package sessions

import (
	"context"
	"errors"
	"time"
)

// ErrUnknownSession is returned by Refresh when the entry does not exist or
// has already expired.
var ErrUnknownSession = errors.New("unknown session")

// Entry describes one open session.
type Entry struct {
	ID          string    `json:"id"`
	Transport   string    `json:"transport"`
	Subject     string    `json:"subject,omitempty"`
	ConnectedAt time.Time `json:"connectedAt"`
}

// Directory is the registry of live sessions. Implementations must be safe
// for concurrent use.
type Directory interface {
	// Register records e, replacing any entry with the same ID. The entry
	// expires after ttl unless refreshed.
	Register(ctx context.Context, e Entry, ttl time.Duration) error
	// Refresh extends the expiry of an existing entry to now+ttl.
	Refresh(ctx context.Context, id string, ttl time.Duration) error
	// Remove deletes the entry. Removing an unknown ID is not an error.
	Remove(ctx context.Context, id string) error
	// Get returns the entry for id if it is live.
	Get(ctx context.Context, id string) (Entry, bool, error)
	// Count reports the number of live entries.
	Count(ctx context.Context) (int, error)
}
