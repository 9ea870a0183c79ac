package systems

import (
	"github.com/automoto/recycle-catch/archetypes"
	"github.com/automoto/recycle-catch/components"
	cfg "github.com/automoto/recycle-catch/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// NewResult spawns the result state of a finished round.
func NewResult(e *ecs.ECS, data components.ResultData) *components.ResultData {
	entry := archetypes.Result.Spawn(e)
	res := components.Result.Get(entry)
	*res = data
	return res
}

// NewUpdateResult creates the result update system. Enter plays again, and
// nobody touching the screen for the idle timeout returns to the menu.
func NewUpdateResult(onAgain, onIdle func()) func(*ecs.ECS) {
	timeout := secondsToFrames(cfg.Result.IdleTimeout)
	return func(e *ecs.ECS) {
		entry, ok := components.Result.First(e.World)
		if !ok {
			return
		}
		res := components.Result.Get(entry)

		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			onAgain()
			return
		}
		if anyInput() {
			res.IdleFrames = 0
			return
		}
		res.IdleFrames++
		if res.IdleFrames >= timeout {
			onIdle()
		}
	}
}

// DrawResult draws the empty field behind the result screen.
func DrawResult(_ *ecs.ECS, screen *ebiten.Image) {
	DrawBackdrop(screen, 0)
}
