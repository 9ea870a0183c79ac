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

// ResultScene displays the final score of a round
type ResultScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	data         components.ResultData
	resultUI     *ui.ResultUI
	once         sync.Once
	next         func() interface{}
}

// NewResultScene creates a result scene for a finished round
func NewResultScene(sc SceneChanger, data components.ResultData) *ResultScene {
	return &ResultScene{sceneChanger: sc, data: data}
}

func (rs *ResultScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()
	rs.resultUI.Update()

	if rs.next != nil {
		rs.sceneChanger.ChangeScene(rs.next())
	}
}

func (rs *ResultScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
	rs.resultUI.UI.Draw(screen)
}

func (rs *ResultScene) configure() {
	rs.ecs = ecs.NewECS(donburi.NewWorld())

	// Scene factories
	playAgain := func() {
		rs.next = func() interface{} { return NewPlayScene(rs.sceneChanger) }
	}
	toMenu := func() {
		rs.next = func() interface{} { return NewMenuScene(rs.sceneChanger) }
	}

	result := systems.NewResult(rs.ecs, rs.data)
	rs.ecs.AddSystem(systems.NewUpdateResult(playAgain, toMenu))
	rs.ecs.AddRenderer(archetypes.LayerDefault, systems.DrawResult)

	rs.resultUI = ui.NewResultUI(result, playAgain, toMenu)
}
