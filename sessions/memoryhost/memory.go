package memoryhost

import (
	"context"
	"sync"
	"time"

	"github.com/FrankGoortani/cv-mcp/sessions"
)

var _ sessions.Directory = (*Directory)(nil)

// Option configures a Directory.
type Option func(*Directory)

// WithClock overrides time.Now, for tests that exercise expiry.
func WithClock(now func() time.Time) Option {
	return func(d *Directory) {
		if now != nil {
			d.now = now
		}
	}
}

// Directory is an in-memory implementation of sessions.Directory.
type Directory struct {
	mu      sync.Mutex
	entries map[string]*record
	now     func() time.Time
}

type record struct {
	entry     sessions.Entry
	expiresAt time.Time
}

func New(opts ...Option) *Directory {
	d := &Directory{entries: make(map[string]*record), now: time.Now}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Directory) Register(ctx context.Context, e sessions.Entry, ttl time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries[e.ID] = &record{entry: e, expiresAt: d.now().Add(ttl)}
	return nil
}

func (d *Directory) Refresh(ctx context.Context, id string, ttl time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.now()
	rec, ok := d.entries[id]
	if !ok || !now.Before(rec.expiresAt) {
		delete(d.entries, id)
		return sessions.ErrUnknownSession
	}
	rec.expiresAt = now.Add(ttl)
	return nil
}

func (d *Directory) Remove(ctx context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.entries, id)
	return nil
}

func (d *Directory) Get(ctx context.Context, id string) (sessions.Entry, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	rec, ok := d.entries[id]
	if !ok {
		return sessions.Entry{}, false, nil
	}
	if !d.now().Before(rec.expiresAt) {
		delete(d.entries, id)
		return sessions.Entry{}, false, nil
	}
	return rec.entry, true, nil
}

// Count prunes expired entries and reports the rest.
func (d *Directory) Count(ctx context.Context) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.now()
	for id, rec := range d.entries {
		if !now.Before(rec.expiresAt) {
			delete(d.entries, id)
		}
	}
	return len(d.entries), nil
}
