// Package frame provides the per-frame scheduling primitives the game runs on.
// It has no dependency on ebiten or any graphics library so the simulation can
// be driven by tests with synthetic timestamps.
package frame

import (
	"sync"
	"time"
)

// Clock reports a monotonic timestamp measured from an arbitrary origin,
// the way a display's frame callback receives its timestamp.
type Clock interface {
	Now() time.Duration
}

// SystemClock measures real time since it was created.
type SystemClock struct {
	origin time.Time
}

// NewSystemClock creates a clock whose origin is the current instant.
func NewSystemClock() *SystemClock {
	return &SystemClock{origin: time.Now()}
}

// Now returns the time elapsed since the clock was created.
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.origin)
}

// ManualClock is a Clock that only moves when told to.
// Used by tests to drive frames with exact timestamps.
type ManualClock struct {
	mu  sync.Mutex
	now time.Duration
}

// NewManualClock creates a manual clock starting at the given timestamp.
func NewManualClock(start time.Duration) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual timestamp.
func (c *ManualClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set jumps the clock to an absolute timestamp.
func (c *ManualClock) Set(t time.Duration) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	c.mu.Unlock()
}
