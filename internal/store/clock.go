package store

import "time"

// touchClock hands out strictly increasing timestamps so updated_at always
// advances even when two mutations land within the wall clock's resolution.
// Callers must hold their store's lock.
type touchClock struct {
	last time.Time
}

func (c *touchClock) Now() time.Time {
	now := time.Now().UTC()
	if !now.After(c.last) {
		now = c.last.Add(time.Nanosecond)
	}
	c.last = now
	return now
}
