package game

import (
	"image/color"
	"time"

	"github.com/automoto/recycle-catch/assets"
)

// Category is the closed set of falling item kinds.
type Category int

const (
	Recyclable Category = iota
	Noise
)

func (c Category) String() string {
	switch c {
	case Recyclable:
		return "recyclable"
	case Noise:
		return "noise"
	}
	return "unknown"
}

// AssetCategory maps an item kind to the asset category its images live in.
// An unknown kind maps to a category with no assets.
func (c Category) AssetCategory() assets.Category {
	switch c {
	case Recyclable:
		return assets.Recyclable
	case Noise:
		return assets.Noise
	}
	return assets.Category(-1)
}

// FallingItem is a pooled item descending through the field.
// Width, Height and Category are fixed for the lifetime of one spawn.
type FallingItem struct {
	ID       uint64
	X, Y     float64
	Width    float64
	Height   float64
	Speed    float64 // pixels per tick
	Category Category
	Asset    string

	// Presentation, driven by the spawn-in tween.
	Scale    float64
	Alpha    float64
	Rotation float64
}

// Reset clears every field.
func (it *FallingItem) Reset() {
	*it = FallingItem{}
}

// Bottom is the y of the item's bottom edge.
func (it *FallingItem) Bottom() float64 {
	return it.Y + it.Height
}

// CenterX is the x of the item's horizontal center.
func (it *FallingItem) CenterX() float64 {
	return it.X + it.Width/2
}

// ScorePopup is floating score text shown where an item was caught.
type ScorePopup struct {
	ID       uint64
	X, Y     float64
	OriginY  float64
	Text     string
	Positive bool
	Color    color.RGBA
	Opacity  float64
	Scale    float64
	Born     time.Duration
}

// Reset clears every field.
func (p *ScorePopup) Reset() {
	*p = ScorePopup{}
}

// Container is the player-controlled catcher.
type Container struct {
	X, Y   float64
	Width  float64
	Height float64
	Scale  float64 // bounce scale around the container's center, 1 at rest
}

// Caught reports whether item is inside the container's catch band: its bottom
// edge lies within [top, top+height] and its center within [left, right],
// both inclusive. Only the bottom edge is tested, so an item moving further
// than the band height in one tick can pass through uncaught.
func Caught(item *FallingItem, c Container) bool {
	bottom := item.Bottom()
	if bottom < c.Y || bottom > c.Y+c.Height {
		return false
	}
	cx := item.CenterX()
	return cx >= c.X && cx <= c.X+c.Width
}

// Stats are the per-run catch counters reported with the final score.
type Stats struct {
	ItemsCaught    int `json:"itemsCaught"`
	CorrectCatches int `json:"correctCatches"`
	WrongCatches   int `json:"wrongCatches"`
}

// Lifecycle counts how spawned items left play.
type Lifecycle struct {
	Spawned int
	Caught  int
	Missed  int // fell off the field
	Cleared int // still active when the run ended
	Evicted int // reclaimed by a saturated pool
}

// Balanced reports whether every spawned item is accounted for.
func (l Lifecycle) Balanced() bool {
	return l.Spawned == l.Caught+l.Missed+l.Cleared+l.Evicted
}

// State of the controller's run.
type State int

const (
	Idle State = iota
	Running
	Ended
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Ended:
		return "ended"
	}
	return "unknown"
}
