package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/recycle-catch/archetypes"
	"github.com/automoto/recycle-catch/components"
	"github.com/automoto/recycle-catch/systems"
	"github.com/automoto/recycle-catch/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	menu         *components.MenuData
	once         sync.Once
	shouldStart  bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.menuUI.Update()

	if ms.shouldStart {
		ms.sceneChanger.ChangeScene(NewPlayScene(ms.sceneChanger))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	ms.menu = systems.NewMenu(ms.ecs)

	start := func() { ms.shouldStart = true }
	ms.ecs.AddSystem(systems.NewUpdateMenu(start))
	ms.ecs.AddRenderer(archetypes.LayerDefault, systems.DrawMenu)

	ms.menuUI = ui.NewMenuUI(ms.menu.Leaderboard, start)
}
