package game

import (
	"fmt"
	"image/color"
	"strconv"
	"time"

	"github.com/automoto/recycle-catch/easing"
)

// Effect keys in the controller's tween registry.
const (
	BounceKey = "container.bounce"
	FlashKey  = "flash"
)

func itemKey(id uint64, prop string) string {
	return "item." + strconv.FormatUint(id, 10) + "." + prop
}

func popupKey(id uint64) string {
	return "popup." + strconv.FormatUint(id, 10) + ".scale"
}

func (c *Controller) startSpawnEffect(it *FallingItem) {
	fx := c.cfg.Effects
	if fx.SpawnDuration <= 0 {
		return
	}
	it.Scale = fx.SpawnScale
	it.Alpha = 0
	it.Rotation = fx.SpawnRotation
	c.effects.Create(itemKey(it.ID, "scale"), fx.SpawnScale, 1, fx.SpawnDuration, c.spawnEase)
	c.effects.Create(itemKey(it.ID, "alpha"), 0, 1, fx.SpawnDuration, easing.OutCubic)
	c.effects.Create(itemKey(it.ID, "rot"), fx.SpawnRotation, 0, fx.SpawnDuration, easing.OutCubic)
}

func (c *Controller) stopSpawnEffect(id uint64) {
	c.effects.Remove(itemKey(id, "scale"))
	c.effects.Remove(itemKey(id, "alpha"))
	c.effects.Remove(itemKey(id, "rot"))
}

// animateItem pulls the spawn-in values; a finished tween leaves the item at rest.
func (c *Controller) animateItem(it *FallingItem) {
	it.Scale = c.effects.ValueOr(itemKey(it.ID, "scale"), 1)
	it.Alpha = c.effects.ValueOr(itemKey(it.ID, "alpha"), 1)
	it.Rotation = c.effects.ValueOr(itemKey(it.ID, "rot"), 0)
}

func (c *Controller) flash(clr color.RGBA, alpha float64, d time.Duration) {
	c.flashColor = clr
	c.effects.Create(FlashKey, alpha, 0, d, easing.OutCubic)
}

// PopupText formats a score delta the way popups show it, e.g. "+20 DKK".
func PopupText(points int, unit string) string {
	s := fmt.Sprintf("%+d", points)
	if unit != "" {
		s += " " + unit
	}
	return s
}

func (c *Controller) addPopup(now time.Duration, x, y float64, points int) {
	pc := c.cfg.Popup
	if old, ok := c.popups.Evictee(); ok {
		c.effects.Remove(popupKey(old.ID))
	}
	h, p := c.popups.Acquire()
	*p = ScorePopup{
		ID:       h.ID,
		X:        x,
		Y:        y,
		OriginY:  y,
		Text:     PopupText(points, c.cfg.CurrencyUnit),
		Positive: points >= 0,
		Color:    pc.NegativeColor,
		Opacity:  1,
		Scale:    1,
		Born:     now,
	}
	if p.Positive {
		p.Color = pc.PositiveColor
	}
	if pc.PopDuration > 0 && pc.PopScale > 0 {
		p.Scale = pc.PopScale
		c.effects.Create(popupKey(h.ID), pc.PopScale, 1, pc.PopDuration, easing.OutBack)
	}
}

// popupFade maps a popup's age onto its opacity. expired is true from the
// moment age reaches lifetime, when opacity is exactly 0.
func popupFade(age, lifetime time.Duration) (opacity float64, expired bool) {
	if age >= lifetime {
		return 0, true
	}
	if age <= 0 {
		return 1, false
	}
	return 1 - float64(age)/float64(lifetime), false
}

func (c *Controller) advancePopups(now time.Duration) {
	pc := c.cfg.Popup
	c.handles = c.popups.Active(c.handles[:0])
	for _, h := range c.handles {
		p, ok := c.popups.Get(h)
		if !ok {
			continue
		}
		age := now - p.Born
		opacity, expired := popupFade(age, pc.Lifetime)
		p.Opacity = opacity
		if expired {
			c.effects.Remove(popupKey(p.ID))
			c.popups.Release(h)
			continue
		}
		p.Y = p.OriginY - pc.RiseSpeed*age.Seconds()
		p.Scale = c.effects.ValueOr(popupKey(p.ID), 1)
	}
}
