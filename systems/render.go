package systems

import (
	"math"

	"github.com/automoto/recycle-catch/assets"
	cfg "github.com/automoto/recycle-catch/config"
	"github.com/automoto/recycle-catch/game"
	"github.com/automoto/recycle-catch/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var (
	globalCanvas   *Canvas
	globalBackdrop *render.Renderer
)

func canvas(screen *ebiten.Image) *Canvas {
	if globalCanvas == nil {
		globalCanvas = NewCanvas()
	}
	globalCanvas.Target(screen)
	return globalCanvas
}

// DrawGame renders the controller's latest snapshot.
func DrawGame(e *ecs.ECS, screen *ebiten.Image) {
	_, s, ok := getSession(e)
	if !ok {
		return
	}
	s.Renderer.Draw(canvas(screen), s.Controller.Snapshot())
}

// DrawBackdrop renders the empty field behind the menu and result screens,
// with a demo item falling into the container when frames advance.
func DrawBackdrop(screen *ebiten.Image, frames int) {
	if globalBackdrop == nil {
		globalBackdrop = render.NewRenderer(Assets(), cfg.Field, cfg.Game.Popup)
	}
	globalBackdrop.Draw(canvas(screen), attractFrame(screen, frames))
}

func attractFrame(screen *ebiten.Image, frames int) *game.Frame {
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	layout := cfg.Game.Layout(w)
	f := &game.Frame{Width: w, Height: h}
	if frames <= 0 {
		return f
	}

	t := float64(frames) / float64(ebiten.TPS())
	cx := w/2 + math.Sin(t*0.8)*w/4
	f.Container = game.Container{
		X:      cx - layout.ContainerWidth/2,
		Y:      h - layout.BottomOffset - layout.ContainerHeight,
		Width:  layout.ContainerWidth,
		Height: layout.ContainerHeight,
		Scale:  1,
	}

	size := cfg.Game.ItemSize
	fall := h + size
	y := math.Mod(t*layout.FallSpeed*60, fall) - size
	item := game.FallingItem{
		X:        cx - size/2,
		Y:        y,
		Width:    size,
		Height:   size,
		Category: game.Recyclable,
		Scale:    1,
		Alpha:    1,
	}
	if names := Assets().Names(assets.Recyclable); len(names) > 0 {
		item.Asset = names[int(t/3)%len(names)]
	}
	f.Items = []game.FallingItem{item}
	return f
}
