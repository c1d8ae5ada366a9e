// Package clock implements the Lamport logical clock used to order
// REQUEST/REPLY/HEARTBEAT events across peers.
package clock

import "sync"

// Clock is a monotone Lamport logical clock. Every local event
// strictly increases the value; ties are broken elsewhere, by peer
// name, over the pair (timestamp, name).
type Clock struct {
	mu    sync.Mutex
	value uint64
}

// Tick advances the clock for a purely local event (no externally
// observed value) and returns the new value. This is equivalent to
// Observe with received=0: max(local, 0)+1 still strictly increments.
func (c *Clock) Tick() uint64 {
	c.mu.Lock()
	c.value++
	v := c.value
	c.mu.Unlock()
	return v
}

// Observe folds a received timestamp into the clock: value =
// max(value, received) + 1. The engine uses it when it handles an
// inbound REQUEST and when it folds in the clock piggybacked on a
// REQUEST's acknowledgement. REPLY and HEARTBEAT messages carry no
// timestamp and do not advance the clock.
func (c *Clock) Observe(received uint64) uint64 {
	c.mu.Lock()
	if received > c.value {
		c.value = received
	}
	c.value++
	v := c.value
	c.mu.Unlock()
	return v
}

// Value returns the current clock value without advancing it.
func (c *Clock) Value() uint64 {
	c.mu.Lock()
	v := c.value
	c.mu.Unlock()
	return v
}
