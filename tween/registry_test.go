package tween

import (
	"image/color"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/automoto/recycle-catch/easing"
	"github.com/automoto/recycle-catch/frame"
)

func newTestRegistry() (*Registry, *frame.ManualClock, *frame.Loop) {
	clock := frame.NewManualClock(0)
	loop := frame.NewLoop(clock)
	return NewRegistry(clock, loop, rand.New(rand.NewPCG(1, 2))), clock, loop
}

func TestUpdateInterpolatesByElapsedTime(t *testing.T) {
	r, clock, _ := newTestRegistry()
	r.Create("k", 0, 100, 100*time.Millisecond, easing.Linear)

	if v, ok := r.Value("k"); !ok || v != 0 {
		t.Fatalf("Value before update = %v, %v; want 0, true", v, ok)
	}

	clock.Advance(25 * time.Millisecond)
	r.Update()
	if v := r.ValueOr("k", -1); math.Abs(v-25) > 1e-3 {
		t.Errorf("Value at 25ms = %v, want 25", v)
	}
}

func TestCompletedAnimationReportsEndValueOnce(t *testing.T) {
	r, clock, _ := newTestRegistry()
	r.Create("bounce", 1.2, 1, 200*time.Millisecond, easing.OutBounce)

	clock.Advance(250 * time.Millisecond)
	r.Update()
	v, ok := r.Value("bounce")
	if !ok || v != 1 {
		t.Fatalf("Value after completion = %v, %v; want 1, true", v, ok)
	}
	if !r.Complete("bounce") {
		t.Error("Complete() = false after reaching the end")
	}

	r.Update()
	if _, ok := r.Value("bounce"); ok {
		t.Error("completed animation still present after the next Update")
	}
	if got := r.ValueOr("bounce", 1); got != 1 {
		t.Errorf("ValueOr neutral = %v, want 1", got)
	}
}

func TestCreateReplacesExistingKey(t *testing.T) {
	r, clock, _ := newTestRegistry()
	r.Create("k", 0, 10, time.Second, easing.Linear)
	clock.Advance(500 * time.Millisecond)
	r.Create("k", 100, 200, time.Second, easing.Linear)
	r.Update()

	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}
	if v := r.ValueOr("k", 0); v != 100 {
		t.Errorf("replaced animation value = %v, want 100", v)
	}
}

func TestZeroDurationCompletesImmediately(t *testing.T) {
	r, _, _ := newTestRegistry()
	r.Create("k", 3, 7, 0, nil)
	r.Update()
	if v, _ := r.Value("k"); v != 7 {
		t.Errorf("Value = %v, want 7", v)
	}
}

func TestShakeDecaysToZero(t *testing.T) {
	r, clock, _ := newTestRegistry()
	r.Shake(10, 300*time.Millisecond)

	for i := 0; i < 20; i++ {
		clock.Advance(10 * time.Millisecond)
		r.Update()
		mx := r.ValueOr(ShakeX, 0)
		x, y := r.ShakeOffset()
		if math.Abs(x) > math.Abs(mx)/2+1e-9 {
			t.Fatalf("shake x = %v exceeds half magnitude %v", x, mx)
		}
		if math.Abs(y) > math.Abs(r.ValueOr(ShakeY, 0))/2+1e-9 {
			t.Fatalf("shake y = %v exceeds half magnitude", y)
		}
	}

	clock.Advance(time.Second)
	r.Update()
	r.Update()
	if x, y := r.ShakeOffset(); x != 0 || y != 0 {
		t.Errorf("ShakeOffset after expiry = (%v, %v), want (0, 0)", x, y)
	}
}

func TestBurstFansOutAndDecays(t *testing.T) {
	r, _, _ := newTestRegistry()
	r.Burst(50, 60, color.RGBA{R: 0x22, G: 0xc5, B: 0x5e, A: 0xff}, 8)

	ps := r.Particles()
	if len(ps) != 8 {
		t.Fatalf("len(Particles) = %d, want 8", len(ps))
	}
	for i, p := range ps {
		speed := math.Hypot(p.VX, p.VY-ParticleUpwardBias)
		if speed < ParticleMinSpeed-1e-9 || speed > ParticleMinSpeed+ParticleSpeedRange+1e-9 {
			t.Errorf("particle %d speed = %v, out of range", i, speed)
		}
		if p.Size < ParticleMinSize || p.Size > ParticleMinSize+ParticleSizeRange {
			t.Errorf("particle %d size = %v, out of range", i, p.Size)
		}
	}
	// First particle points along +X.
	if ps[0].VY != ParticleUpwardBias {
		t.Errorf("particle 0 VY = %v, want %v", ps[0].VY, ParticleUpwardBias)
	}

	r.AdvanceParticles()
	for _, p := range r.Particles() {
		if math.Abs(p.Alpha-0.98) > 1e-9 {
			t.Errorf("alpha after one frame = %v, want 0.98", p.Alpha)
		}
	}

	for i := 0; i < 60; i++ {
		r.AdvanceParticles()
	}
	if n := len(r.Particles()); n != 0 {
		t.Errorf("particles alive after 61 frames = %d, want 0", n)
	}
}

func TestDriverStartIsIdempotent(t *testing.T) {
	r, clock, loop := newTestRegistry()
	r.Start()
	r.Start()
	if loop.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", loop.Pending())
	}

	r.Create("k", 0, 1, 10*time.Millisecond, easing.Linear)
	r.Burst(0, 0, color.RGBA{A: 0xff}, 4)
	clock.Advance(20 * time.Millisecond)
	loop.RunFrame()

	if v := r.ValueOr("k", -1); v != 1 {
		t.Errorf("driver did not update animations: %v", v)
	}
	if ps := r.Particles(); len(ps) != 4 || ps[0].Life >= 1 {
		t.Error("driver did not advance particles")
	}
	if loop.Pending() != 1 {
		t.Errorf("driver did not reschedule: Pending() = %d", loop.Pending())
	}

	r.Stop()
	r.Stop()
	if r.Running() {
		t.Error("Running() = true after Stop")
	}
	if loop.Pending() != 0 {
		t.Errorf("Pending() after Stop = %d, want 0", loop.Pending())
	}
}

func TestClear(t *testing.T) {
	r, _, _ := newTestRegistry()
	r.Create("a", 0, 1, time.Second, nil)
	r.Burst(0, 0, color.RGBA{}, 3)
	r.Clear()
	if r.Len() != 0 || len(r.Particles()) != 0 {
		t.Errorf("Clear left %d animations and %d particles", r.Len(), len(r.Particles()))
	}
}
