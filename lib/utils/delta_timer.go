package utils

import "time"

// DeltaTimer measures the time between consecutive frames.
type DeltaTimer struct {
	last time.Time
}

func (d *DeltaTimer) Next() time.Duration {
	// one timestamp per frame so the deltas sum up to wall time
	now := time.Now()

	defer d.Set(now)
	if d.last.IsZero() {
		return 0
	}
	return now.Sub(d.last)
}

func (d *DeltaTimer) Set(t time.Time) {
	d.last = t
}
