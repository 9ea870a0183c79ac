package config

import "testing"

func TestLayoutTiers(t *testing.T) {
	tests := []struct {
		name  string
		width float64
		want  LayoutConfig
	}{
		{"desktop", 1280, Game.Desktop},
		{"breakpoint is desktop", Game.MobileBreakpoint, Game.Desktop},
		{"phone", 390, Game.Mobile},
		{"unmeasured", 0, Game.Desktop},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Game.Layout(tt.width); got != tt.want {
				t.Errorf("Layout(%v) = %+v, want %+v", tt.width, got, tt.want)
			}
		})
	}
}

func TestDefaultsAreConsistent(t *testing.T) {
	g := Game
	if g.RecyclableChance <= 0 || g.RecyclableChance >= 1 {
		t.Errorf("RecyclableChance = %v, want in (0,1)", g.RecyclableChance)
	}
	if g.Mobile.FallSpeed <= g.Desktop.FallSpeed {
		t.Error("mobile items should fall faster than desktop items")
	}
	for _, l := range []LayoutConfig{g.Desktop, g.Mobile} {
		// Band height must exceed per-tick fall distance or items can skip the band.
		if l.ContainerHeight <= l.FallSpeed {
			t.Errorf("container height %v <= fall speed %v", l.ContainerHeight, l.FallSpeed)
		}
	}
	if len(g.ResizeRetryDelays) == 0 {
		t.Error("no resize retry schedule")
	}
}
