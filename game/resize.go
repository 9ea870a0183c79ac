package game

import (
	"log"
	"time"

	"github.com/automoto/recycle-catch/frame"
)

type resizeState struct {
	measure func() (w, h float64)
	attempt int
	due     time.Duration
	req     frame.RequestID
}

// Resize applies a measured field size. Non-positive sizes are ignored and
// reported as false. The layout tier is re-derived from the new width and
// the container re-clamped; the first real size centers the container.
func (c *Controller) Resize(w, h float64) bool {
	if c.disposed || w <= 0 || h <= 0 {
		return false
	}
	first := c.fieldW <= 0
	c.fieldW, c.fieldH = w, h
	c.layout = c.cfg.Layout(w)

	c.container.Width = c.layout.ContainerWidth
	c.container.Height = c.layout.ContainerHeight
	c.container.Y = h - c.layout.ContainerHeight - c.layout.BottomOffset
	if first {
		c.container.X = (w - c.container.Width) / 2
	}
	c.container.X = c.clampContainerX(c.container.X)

	if c.state != Running {
		c.snapshot()
	}
	return true
}

// ObserveResize measures the field now. While measure reports a zero size,
// it is retried on the frame scheduler after each of the configured delays.
// A newer call supersedes any retries still pending.
func (c *Controller) ObserveResize(measure func() (w, h float64)) {
	if c.disposed || measure == nil {
		return
	}
	c.cancelResize()
	c.resize.measure = measure
	c.resize.attempt = 0
	c.tryMeasure()
}

func (c *Controller) tryMeasure() {
	w, h := c.resize.measure()
	if c.Resize(w, h) {
		return
	}
	delays := c.cfg.ResizeRetryDelays
	if c.resize.attempt >= len(delays) {
		log.Printf("Warning: field size still %vx%v after %d retries", w, h, len(delays))
		return
	}
	c.resize.due = c.clock.Now() + delays[c.resize.attempt]
	c.resize.attempt++
	c.resize.req = c.sched.Schedule(c.resizeWait)
}

func (c *Controller) resizeWait(now time.Duration) {
	c.resize.req = 0
	if c.disposed {
		return
	}
	if now < c.resize.due {
		c.resize.req = c.sched.Schedule(c.resizeWait)
		return
	}
	c.tryMeasure()
}

// ResizePending reports whether a deferred re-measure is scheduled.
func (c *Controller) ResizePending() bool {
	return c.resize.req != 0
}

func (c *Controller) cancelResize() {
	if c.resize.req != 0 {
		c.sched.Cancel(c.resize.req)
		c.resize.req = 0
	}
}
