package ui

import (
	"fmt"

	"github.com/automoto/recycle-catch/components"
	cfg "github.com/automoto/recycle-catch/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// ResultUI holds the ebitenui interface for the end of round screen
type ResultUI struct {
	UI     *ebitenui.UI
	Result *components.ResultData

	// Callbacks
	OnAgain func()
	OnMenu  func()

	faces faces
}

// NewResultUI creates the result screen for a finished round.
func NewResultUI(result *components.ResultData, onAgain, onMenu func()) *ResultUI {
	rui := &ResultUI{
		Result:  result,
		OnAgain: onAgain,
		OnMenu:  onMenu,
	}
	rui.faces = loadFaces()
	rui.buildUI()
	return rui
}

func (rui *ResultUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(32)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		centered(),
	)

	r := rui.Result
	panel.AddChild(label(cfg.Result.Title, &rui.faces.title, cfg.Result.TitleColor))
	panel.AddChild(label(ScoreLine(r.Score, cfg.Game.CurrencyUnit), &rui.faces.large, cfg.Result.TextColor))
	panel.AddChild(label(StatsLine(r), &rui.faces.normal, cfg.Result.TextColor))
	if r.Rank > 0 {
		panel.AddChild(label(fmt.Sprintf("#%d today", r.Rank), &rui.faces.normal, cfg.Result.TitleColor))
	}
	for _, e := range r.Leaderboard {
		panel.AddChild(label(LeaderboardLine(e, cfg.Game.CurrencyUnit), &rui.faces.small, cfg.Result.TextColor))
	}

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
		)),
	)
	buttons.AddChild(widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(240, 60)),
		widget.ButtonOpts.Image(buttonImage(cfg.Menu.ButtonIdle, cfg.Menu.ButtonHover, cfg.Menu.ButtonPressed)),
		widget.ButtonOpts.Text(cfg.Result.AgainLabel, &rui.faces.normal, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if rui.OnAgain != nil {
				rui.OnAgain()
			}
		}),
	))
	buttons.AddChild(widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 60)),
		widget.ButtonOpts.Image(buttonImage(cfg.Slate, cfg.SteelBlue, cfg.Black)),
		widget.ButtonOpts.Text(cfg.Result.MenuLabel, &rui.faces.normal, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if rui.OnMenu != nil {
				rui.OnMenu()
			}
		}),
	))
	panel.AddChild(buttons)

	rootContainer.AddChild(panel)

	rui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// ScoreLine formats a final score with its currency unit.
func ScoreLine(score int, unit string) string {
	return fmt.Sprintf("%d %s", score, unit)
}

// StatsLine summarizes the catches of a round.
func StatsLine(r *components.ResultData) string {
	return fmt.Sprintf("%d caught: %d correct, %d wrong",
		r.Stats.ItemsCaught, r.Stats.CorrectCatches, r.Stats.WrongCatches)
}

func (rui *ResultUI) Update() {
	rui.UI.Update()
}
