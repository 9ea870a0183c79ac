package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/recycle-catch/archetypes"
	cfg "github.com/automoto/recycle-catch/config"
	"github.com/automoto/recycle-catch/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayScene runs one round: countdown, play, then the result screen.
type PlayScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewPlayScene creates a play scene using the global game configuration
func NewPlayScene(sc SceneChanger) *PlayScene {
	return &PlayScene{sceneChanger: sc}
}

func (ps *PlayScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		systems.AbortSession(ps.ecs)
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger))
		return
	}

	if result, ok := systems.FinishSession(ps.ecs); ok {
		ps.sceneChanger.ChangeScene(NewResultScene(ps.sceneChanger, result))
	}
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlayScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input and layout land before the frame loop ticks the controller
	ecs.AddSystem(systems.UpdateLayout)
	ecs.AddSystem(systems.UpdatePointer)
	ecs.AddSystem(systems.UpdateCountdown)
	ecs.AddSystem(systems.UpdateFrameLoop)

	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawGame)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawHUD)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawCountdown)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawDebug)

	ps.ecs = ecs

	systems.NewSession(ps.ecs, cfg.Game)
}
