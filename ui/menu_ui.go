package ui

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/recycle-catch/config"
	"github.com/automoto/recycle-catch/records"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// MenuUI holds the ebitenui interface for the main menu
type MenuUI struct {
	UI *ebitenui.UI

	OnStart func()

	faces faces
}

// NewMenuUI creates the main menu listing today's leaderboard.
func NewMenuUI(board []records.Entry, onStart func()) *MenuUI {
	mui := &MenuUI{OnStart: onStart}
	mui.faces = loadFaces()
	mui.buildUI(board)
	return mui
}

func (mui *MenuUI) buildUI(board []records.Entry) {
	// Transparent root so the attract animation shows around the panel
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(32)),
			widget.RowLayoutOpts.Spacing(14),
		)),
		centered(),
	)

	panel.AddChild(label(cfg.Menu.Title, &mui.faces.title, cfg.Menu.TitleColor))
	panel.AddChild(label(cfg.Menu.Subtitle, &mui.faces.normal, cfg.Menu.TextColor))

	startButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(320, 72),
		),
		widget.ButtonOpts.Image(buttonImage(cfg.Menu.ButtonIdle, cfg.Menu.ButtonHover, cfg.Menu.ButtonPressed)),
		widget.ButtonOpts.Text(cfg.Menu.StartLabel, &mui.faces.large, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnStart != nil {
				mui.OnStart()
			}
		}),
	)
	panel.AddChild(startButton)

	panel.AddChild(label("TODAY'S TOP", &mui.faces.normal, cfg.Menu.TitleColor))
	panel.AddChild(mui.buildLeaderboard(board))

	rootContainer.AddChild(panel)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) buildLeaderboard(board []records.Entry) *widget.Container {
	list := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	if len(board) == 0 {
		list.AddChild(label("No plays yet today", &mui.faces.small, color.RGBA{180, 180, 180, 255}))
		return list
	}
	for _, e := range board {
		list.AddChild(label(LeaderboardLine(e, cfg.Game.CurrencyUnit), &mui.faces.small, cfg.Menu.TextColor))
	}
	return list
}

// LeaderboardLine formats one leaderboard row, e.g. " 1. Anna B.   120 DKK".
func LeaderboardLine(e records.Entry, unit string) string {
	return fmt.Sprintf("%2d. %-16s %5d %s", e.Rank, e.Name, e.Score, unit)
}

func (mui *MenuUI) Update() {
	mui.UI.Update()
}
