package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// PointerData tracks where the player wants the container, merged from
// mouse, touch and keyboard. The last device that moved wins.
type PointerData struct {
	TargetX  float64
	HasInput bool

	LastCursorX int
	LastCursorY int
	Touches     []ebiten.TouchID // reused every frame
}

var Pointer = donburi.NewComponentType[PointerData]()
