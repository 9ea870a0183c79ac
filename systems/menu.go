package systems

import (
	"github.com/automoto/recycle-catch/archetypes"
	"github.com/automoto/recycle-catch/components"
	cfg "github.com/automoto/recycle-catch/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// NewMenu spawns the menu state with today's local leaderboard.
func NewMenu(e *ecs.ECS) *components.MenuData {
	entry := archetypes.Menu.Spawn(e)
	menu := components.Menu.Get(entry)
	menu.Leaderboard = TodayLeaderboard(cfg.Menu.LeaderboardSize)
	return menu
}

func getMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		return nil
	}
	return components.Menu.Get(entry)
}

// NewUpdateMenu creates the menu update system. Enter or space starts a round.
func NewUpdateMenu(onStart func()) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		menu := getMenu(e)
		if menu == nil {
			return
		}
		menu.Frames++

		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			menu.StartPressed = true
		}
		if menu.StartPressed {
			menu.StartPressed = false
			onStart()
		}
	}
}

// DrawMenu draws the attract animation behind the menu screen.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	frames := 0
	if menu := getMenu(e); menu != nil {
		frames = menu.Frames
	}
	DrawBackdrop(screen, frames)
}
