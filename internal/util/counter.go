package util

import "sync/atomic"

// Counter allocates monotonically increasing ids for receipt and
// transaction headers. The counter starts at 1 and is incremented before
// use, so the first allocated value is 2. Ids only need to be unique within
// one connection; each connection owns its own counters.
type Counter struct {
	n atomic.Uint64
}

// NewCounter creates a new counter
func NewCounter() *Counter {
	c := &Counter{}
	c.n.Store(1)
	return c
}

// Next increments the counter and returns the new value
func (c *Counter) Next() uint64 {
	return c.n.Add(1)
}
