package systems

import (
	"fmt"

	cfg "github.com/automoto/recycle-catch/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug prints pool and lifecycle counters when -stats is set.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowStats {
		return
	}
	_, s, ok := getSession(e)
	if !ok {
		return
	}
	items, popups := s.Controller.PoolStats()
	life := s.Controller.Lifecycle()
	fw, fh := s.Controller.Field()

	msg := fmt.Sprintf(
		"TPS %.0f  FPS %.0f\nfield %.0fx%.0f  state %s\nitems %d/%d evicted %d\npopups %d/%d\nspawned %d caught %d missed %d cleared %d\nassets %d/%d",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		fw, fh, s.Controller.State(),
		items.Active, items.Total, items.Evictions,
		popups.Active, popups.Total,
		life.Spawned, life.Caught, life.Missed, life.Cleared,
		s.Assets.LoadedCount(), s.Assets.TotalCount(),
	)
	ebitenutil.DebugPrintAt(screen, msg, 8, screen.Bounds().Dy()-90)
}
