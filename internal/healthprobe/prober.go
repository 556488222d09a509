// Package healthprobe polls the server's own health endpoint and backs off
// while it is failing.
package healthprobe

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/FrankGoortani/cv-mcp/internal/logctx"
)

// Option configures a Prober.
type Option func(*Prober)

func WithLogger(l *slog.Logger) Option {
	return func(p *Prober) {
		if l != nil {
			p.log = l
		}
	}
}

func WithHTTPClient(c *http.Client) Option {
	return func(p *Prober) {
		if c != nil {
			p.client = c
		}
	}
}

// WithIntervals sets the base interval, the backoff cap and the number of
// consecutive successes that reset the interval.
func WithIntervals(base, maxInterval time.Duration, resetAfter int) Option {
	return func(p *Prober) {
		if base > 0 {
			p.backoff.Base = base
		}
		if maxInterval > 0 {
			p.backoff.Max = maxInterval
		}
		if resetAfter > 0 {
			p.backoff.ResetAfter = resetAfter
		}
	}
}

// WithWait replaces the timer used between probes. wait must return
// ctx.Err() once ctx is done.
func WithWait(wait func(ctx context.Context, d time.Duration) error) Option {
	return func(p *Prober) {
		if wait != nil {
			p.wait = wait
		}
	}
}

// Prober checks a health URL periodically.
type Prober struct {
	target  string
	client  *http.Client
	log     *slog.Logger
	backoff Backoff
	wait    func(ctx context.Context, d time.Duration) error
}

func New(target string, opts ...Option) *Prober {
	p := &Prober{
		target:  target,
		client:  &http.Client{Timeout: 5 * time.Second},
		log:     slog.Default(),
		backoff: Backoff{Base: 30 * time.Second, Max: 5 * time.Minute, ResetAfter: 3},
		wait:    sleep,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Check performs one probe. Anything but a 200 is a failure.
func (p *Prober) Check(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.target, nil)
	if err != nil {
		return fmt.Errorf("build probe request: %w", err)
	}
	res, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("probe %s: %w", p.target, err)
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("probe %s: unexpected status %d", p.target, res.StatusCode)
	}
	return nil
}

// Run probes until ctx is done, waiting the backoff interval before each
// attempt. It always returns nil.
func (p *Prober) Run(ctx context.Context) error {
	interval := p.backoff.Current()
	for attempt := 1; ; attempt++ {
		if err := p.wait(ctx, interval); err != nil {
			return nil
		}
		pctx := logctx.WithProbeData(ctx, &logctx.ProbeData{Target: p.target, Attempt: attempt})
		err := p.Check(pctx)
		interval = p.backoff.Next(err == nil)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			p.log.WarnContext(pctx, "healthprobe.fail", slog.String("err", err.Error()), slog.Duration("next", interval))
			continue
		}
		p.log.DebugContext(pctx, "healthprobe.ok", slog.Duration("next", interval))
	}
}
