package easing

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestCurveEndpoints(t *testing.T) {
	curves := map[string]ease.TweenFunc{
		"Linear":     Linear,
		"OutCubic":   OutCubic,
		"InOutCubic": InOutCubic,
		"OutQuart":   OutQuart,
		"OutExpo":    OutExpo,
		"OutBack":    OutBack,
		"OutBounce":  OutBounce,
		"OutElastic": OutElastic,
	}
	for name, fn := range curves {
		t.Run(name, func(t *testing.T) {
			if got := At(fn, 0); got != 0 {
				t.Errorf("At(0) = %v, want 0", got)
			}
			if got := At(fn, 1); got != 1 {
				t.Errorf("At(1) = %v, want 1", got)
			}
			if got := At(fn, -3); got != 0 {
				t.Errorf("At(-3) = %v, want 0", got)
			}
			if got := At(fn, 7); got != 1 {
				t.Errorf("At(7) = %v, want 1", got)
			}
		})
	}
}

func TestLinearMidpoint(t *testing.T) {
	if got := At(Linear, 0.25); math.Abs(got-0.25) > 1e-6 {
		t.Errorf("At(Linear, 0.25) = %v, want 0.25", got)
	}
	if got := At(nil, 0.5); math.Abs(got-0.5) > 1e-6 {
		t.Errorf("At(nil, 0.5) = %v, want 0.5", got)
	}
}

func TestOutBackOvershoots(t *testing.T) {
	peak := 0.0
	for i := 1; i < 100; i++ {
		peak = math.Max(peak, At(OutBack, float64(i)/100))
	}
	if peak <= 1 {
		t.Errorf("OutBack peak = %v, want > 1", peak)
	}
}

func TestOutCubicIsMonotonic(t *testing.T) {
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := At(OutCubic, float64(i)/100)
		if v < prev {
			t.Fatalf("OutCubic decreased at step %d: %v < %v", i, v, prev)
		}
		prev = v
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(Linear, 10, 0, 0.5); math.Abs(got-5) > 1e-6 {
		t.Errorf("Lerp(10, 0, 0.5) = %v, want 5", got)
	}
	if got := Lerp(OutElastic, 10, 0, 1); got != 0 {
		t.Errorf("Lerp end = %v, want 0", got)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"OutBack", true},
		{"out-bounce", true},
		{"out_elastic", true},
		{"LINEAR", true},
		{"wobble", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, ok := Lookup(tt.name)
			if ok != tt.ok {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			}
			if ok && fn == nil {
				t.Errorf("Lookup(%q) returned nil curve", tt.name)
			}
		})
	}
}
