package systems

import (
	"fmt"
	"image/color"
	"math"

	cfg "github.com/automoto/recycle-catch/config"
	"github.com/automoto/recycle-catch/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the score in the top left and the remaining whole seconds
// in the top right.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	_, s, ok := getSession(e)
	if !ok {
		return
	}
	width := screen.Bounds().Dx()
	margin := int(cfg.HUD.Margin)

	seconds := int(math.Ceil(max(0, s.Remaining)))
	scoreStr := fmt.Sprintf("%d %s", s.Score, cfg.Game.CurrencyUnit)
	timeStr := fmt.Sprintf("%d", seconds)

	timeColor := cfg.HUD.TextColor
	if seconds <= cfg.HUD.LowTimeSeconds {
		timeColor = cfg.HUD.LowTimeColor
	}

	drawHUDPanel(screen, margin, margin, cfg.HUD.ScoreLabel, scoreStr, cfg.HUD.TextColor, false)
	drawHUDPanel(screen, width-margin, margin, cfg.HUD.TimeLabel, timeStr, timeColor, true)
}

// drawHUDPanel draws a caption over a value on a translucent panel. With
// alignRight, x is the panel's right edge.
func drawHUDPanel(screen *ebiten.Image, x, y int, caption, value string, valueColor color.RGBA, alignRight bool) {
	captionFace := fonts.HUDSmall.Get()
	valueFace := fonts.HUD.Get()

	cb := text.BoundString(captionFace, caption) //nolint:staticcheck // TODO: migrate to text/v2
	vb := text.BoundString(valueFace, value)     //nolint:staticcheck // TODO: migrate to text/v2

	pad := 10
	w := max(cb.Dx(), vb.Dx()) + pad*2
	h := cb.Dy() + vb.Dy() + pad*3
	if alignRight {
		x -= w
	}

	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.HUD.PanelColor, false)
	text.Draw(screen, caption, captionFace, x+pad, y+pad+cb.Dy(), cfg.HUD.TextColor)
	text.Draw(screen, value, valueFace, x+pad, y+pad*2+cb.Dy()+vb.Dy(), valueColor)
}
