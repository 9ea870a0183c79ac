package systems

import (
	"github.com/automoto/recycle-catch/components"
	cfg "github.com/automoto/recycle-catch/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

var (
	steerLeftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	steerRightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
)

// UpdatePointer merges touch, mouse and keyboard steering into one target and
// recenters the container on it. Touch wins over the mouse, and the mouse
// only counts when it moved or is held, so a parked cursor does not fight
// the keyboard.
func UpdatePointer(e *ecs.ECS) {
	entry, s, ok := getSession(e)
	if !ok {
		return
	}
	p := components.Pointer.Get(entry)
	moved := false

	p.Touches = ebiten.AppendTouchIDs(p.Touches[:0])
	if len(p.Touches) > 0 {
		x, _ := ebiten.TouchPosition(p.Touches[0])
		p.TargetX = float64(x)
		moved = true
	} else {
		cx, cy := ebiten.CursorPosition()
		if cx != p.LastCursorX || cy != p.LastCursorY || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			p.TargetX = float64(cx)
			moved = true
		}
		p.LastCursorX, p.LastCursorY = cx, cy
	}

	dir := 0.0
	if anyKeyPressed(steerLeftKeys) {
		dir--
	}
	if anyKeyPressed(steerRightKeys) {
		dir++
	}
	if dir != 0 {
		c := s.Controller.Container()
		p.TargetX = c.X + c.Width/2 + dir*cfg.Pointer.KeyboardSpeed
		moved = true
	}

	if moved {
		p.HasInput = true
		s.Controller.SetTargetX(p.TargetX)
	}
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// anyInput reports whether the player touched, clicked or pressed a key this
// frame. Idle timers reset on it.
func anyInput() bool {
	if len(ebiten.AppendTouchIDs(nil)) > 0 {
		return true
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendPressedKeys(nil)) > 0
}
