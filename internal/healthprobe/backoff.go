package healthprobe

import "time"

// Backoff computes the wait before the next probe. Each failure doubles the
// interval up to Max; ResetAfter consecutive successes return it to Base.
type Backoff struct {
	Base       time.Duration
	Max        time.Duration
	ResetAfter int

	cur    time.Duration
	streak int
}

// Current returns the interval in effect.
func (b *Backoff) Current() time.Duration {
	if b.cur == 0 {
		return b.Base
	}
	return b.cur
}

// Next records one probe outcome and returns the next interval.
func (b *Backoff) Next(ok bool) time.Duration {
	cur := b.Current()
	if !ok {
		b.streak = 0
		cur *= 2
		if b.Max > 0 && cur > b.Max {
			cur = b.Max
		}
		b.cur = cur
		return cur
	}
	b.streak++
	if b.streak >= b.ResetAfter {
		b.streak = 0
		b.cur = b.Base
	}
	return b.Current()
}
