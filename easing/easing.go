// Package easing exposes the animation curves used by the game on normalized
// progress. The curves themselves come from gween's ease package; this package
// only names the ones the game uses and evaluates them on [0,1].
package easing

import (
	"strings"

	"github.com/tanema/gween/ease"
)

// Curves used by the game's effects.
var (
	Linear     ease.TweenFunc = ease.Linear
	OutCubic   ease.TweenFunc = ease.OutCubic
	InOutCubic ease.TweenFunc = ease.InOutCubic
	OutQuart   ease.TweenFunc = ease.OutQuart
	OutExpo    ease.TweenFunc = ease.OutExpo
	OutBack    ease.TweenFunc = ease.OutBack
	OutBounce  ease.TweenFunc = ease.OutBounce
	OutElastic ease.TweenFunc = ease.OutElastic
)

var byName = map[string]ease.TweenFunc{
	"linear":     Linear,
	"outcubic":   OutCubic,
	"inoutcubic": InOutCubic,
	"outquart":   OutQuart,
	"outexpo":    OutExpo,
	"outback":    OutBack,
	"outbounce":  OutBounce,
	"outelastic": OutElastic,
}

// At evaluates fn at progress t. t is clamped to [0,1]; the result is 0 at
// t=0 and exactly 1 at t=1, and may overshoot in between for back/elastic curves.
func At(fn ease.TweenFunc, t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	if fn == nil {
		fn = Linear
	}
	return float64(fn(float32(t), 0, 1, 1))
}

// Lerp maps progress t through fn onto the range [from, to].
func Lerp(fn ease.TweenFunc, from, to, t float64) float64 {
	return from + (to-from)*At(fn, t)
}

// Lookup resolves a curve by name, ignoring case, dashes and underscores
// ("out-back", "OutBack" and "out_back" are the same curve).
func Lookup(name string) (ease.TweenFunc, bool) {
	key := strings.ToLower(name)
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	fn, ok := byName[key]
	return fn, ok
}
