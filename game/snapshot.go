package game

import (
	"image/color"
	"time"

	"github.com/automoto/recycle-catch/tween"
)

// Frame is what one draw needs, captured at a single point in the frame so
// the render pass never sees a half-updated tick.
type Frame struct {
	Width, Height float64

	Items     []FallingItem
	Popups    []ScorePopup
	Particles []tween.Particle
	Container Container

	ShakeX, ShakeY float64
	FlashColor     color.RGBA
	FlashAlpha     float64

	State     State
	Score     int
	Remaining time.Duration
}

func (c *Controller) snapshot() {
	f := c.snap
	f.Width, f.Height = c.fieldW, c.fieldH

	f.Items = f.Items[:0]
	c.handles = c.items.Active(c.handles[:0])
	for _, h := range c.handles {
		if it, ok := c.items.Get(h); ok {
			f.Items = append(f.Items, *it)
		}
	}
	f.Popups = f.Popups[:0]
	c.handles = c.popups.Active(c.handles[:0])
	for _, h := range c.handles {
		if p, ok := c.popups.Get(h); ok {
			f.Popups = append(f.Popups, *p)
		}
	}
	f.Particles = c.effects.AppendParticles(f.Particles[:0])

	f.Container = c.container
	f.ShakeX, f.ShakeY = c.effects.ShakeOffset()
	f.FlashColor = c.flashColor
	f.FlashAlpha = c.effects.ValueOr(FlashKey, 0)

	f.State = c.state
	f.Score = c.score
	f.Remaining = c.remaining
}

// Snapshot returns the frame captured by the latest tick. The container
// position is current, since input moves it between ticks, and the shake
// direction is resampled on every call. The frame is reused by the next tick.
func (c *Controller) Snapshot() *Frame {
	scale := c.snap.Container.Scale
	c.snap.Container = c.container
	c.snap.Container.Scale = scale
	c.snap.Width, c.snap.Height = c.fieldW, c.fieldH
	c.snap.ShakeX, c.snap.ShakeY = c.effects.ShakeOffset()
	return c.snap
}
