// Package tween tracks named, time-based interpolations and short-lived
// particles for a single game instance. Values are sampled from gween tweens
// against an injected clock, and a frame.Scheduler drives Update and
// AdvanceParticles once per frame.
package tween

import (
	"math/rand/v2"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/automoto/recycle-catch/easing"
	"github.com/automoto/recycle-catch/frame"
)

// Keys of the two animations making up screen shake.
const (
	ShakeX = "shake.x"
	ShakeY = "shake.y"
)

type animation struct {
	from, to float64
	duration time.Duration
	start    time.Duration
	tw       *gween.Tween
	current  float64
	complete bool
}

// Registry owns the animations and particles of one game.
// It is not safe for concurrent use; everything runs on the frame thread.
type Registry struct {
	clock frame.Clock
	sched frame.Scheduler
	rng   *rand.Rand

	anims     map[string]*animation
	particles []Particle

	running bool
	request frame.RequestID
}

// NewRegistry creates an empty registry. A nil rng gets a time-seeded source.
func NewRegistry(clock frame.Clock, sched frame.Scheduler, rng *rand.Rand) *Registry {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed))
	}
	return &Registry{
		clock: clock,
		sched: sched,
		rng:   rng,
		anims: make(map[string]*animation),
	}
}

// Create installs an animation under key, replacing any animation already
// using that key. A nil curve is linear.
func (r *Registry) Create(key string, from, to float64, d time.Duration, fn ease.TweenFunc) {
	if fn == nil {
		fn = easing.Linear
	}
	r.anims[key] = &animation{
		from:     from,
		to:       to,
		duration: d,
		start:    r.clock.Now(),
		tw:       gween.New(float32(from), float32(to), float32(d.Milliseconds()), fn),
		current:  from,
	}
}

// Update advances every animation by the wall-clock time since its own start.
// Animations completed by the previous pass are dropped first, so a finished
// animation reports its exact end value for one pass before disappearing.
func (r *Registry) Update() {
	now := r.clock.Now()
	for key, a := range r.anims {
		if a.complete {
			delete(r.anims, key)
		}
	}
	for _, a := range r.anims {
		elapsed := now - a.start
		if a.duration <= 0 || elapsed >= a.duration {
			a.current = a.to
			a.complete = true
			continue
		}
		ms := float32(elapsed) / float32(time.Millisecond)
		v, done := a.tw.Set(ms)
		a.current = float64(v)
		if done {
			a.current = a.to
			a.complete = true
		}
	}
}

// Value returns the current value of the animation under key.
// ok is false when no such animation exists; callers use a neutral default.
func (r *Registry) Value(key string) (float64, bool) {
	a, ok := r.anims[key]
	if !ok {
		return 0, false
	}
	return a.current, true
}

// ValueOr returns the animation's value or neutral when it does not exist.
func (r *Registry) ValueOr(key string, neutral float64) float64 {
	if v, ok := r.Value(key); ok {
		return v
	}
	return neutral
}

// Complete reports whether the animation has finished. Missing keys count as finished.
func (r *Registry) Complete(key string) bool {
	a, ok := r.anims[key]
	return !ok || a.complete
}

// Remove drops an animation without waiting for it to finish.
func (r *Registry) Remove(key string) {
	delete(r.anims, key)
}

// Len reports the number of installed animations.
func (r *Registry) Len() int {
	return len(r.anims)
}

// Shake starts a screen shake whose magnitude decays from intensity to zero.
func (r *Registry) Shake(intensity float64, d time.Duration) {
	r.Create(ShakeX, intensity, 0, d, easing.OutElastic)
	r.Create(ShakeY, intensity, 0, d, easing.OutElastic)
}

// ShakeOffset samples a fresh offset per axis scaled by the current shake
// magnitude. The direction is re-randomized on every call.
func (r *Registry) ShakeOffset() (x, y float64) {
	mx := r.ValueOr(ShakeX, 0)
	my := r.ValueOr(ShakeY, 0)
	if mx == 0 && my == 0 {
		return 0, 0
	}
	return (r.rng.Float64() - 0.5) * mx, (r.rng.Float64() - 0.5) * my
}

// Start schedules Update and AdvanceParticles once per frame until Stop.
// Calling Start on a running registry does nothing.
func (r *Registry) Start() {
	if r.running {
		return
	}
	r.running = true
	r.request = r.sched.Schedule(r.step)
}

func (r *Registry) step(time.Duration) {
	if !r.running {
		return
	}
	r.Update()
	r.AdvanceParticles()
	r.request = r.sched.Schedule(r.step)
}

// Stop cancels the per-frame driver. Safe to call when already stopped.
func (r *Registry) Stop() {
	if !r.running {
		return
	}
	r.running = false
	r.sched.Cancel(r.request)
	r.request = 0
}

// Running reports whether the driver is scheduled.
func (r *Registry) Running() bool {
	return r.running
}

// Clear drops all animations and particles. The driver keeps its state.
func (r *Registry) Clear() {
	clear(r.anims)
	r.particles = r.particles[:0]
}
