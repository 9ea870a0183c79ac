package main

import (
	"flag"
	"image"
	"log"

	cfg "github.com/automoto/recycle-catch/config"
	"github.com/automoto/recycle-catch/fonts"
	"github.com/automoto/recycle-catch/records"
	"github.com/automoto/recycle-catch/scenes"
	"github.com/automoto/recycle-catch/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadDefaults(cfg.HUD.FontSize, cfg.Countdown.FontSize)

	g := &Game{
		bounds: image.Rectangle{},
	}

	if cfg.Debug.SkipMenu {
		g.scene = scenes.NewPlayScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout uses the window size as the field size, so the responsive layout
// follows the window. The size may read zero right after startup.
func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, width, height)
	if width > 0 && height > 0 {
		cfg.C.Width, cfg.C.Height = width, height
	}
	return max(width, 1), max(height, 1)
}

func main() {
	skipMenu := flag.Bool("skip-menu", false, "Start a round immediately")
	stats := flag.Bool("stats", false, "Draw pool and lifecycle counters")
	assetDir := flag.String("assets", "public", "Directory holding the images/ tree")
	duration := flag.Duration("duration", cfg.Game.Duration, "Round duration")
	scoreboardURL := flag.String("scoreboard", "", "Scoreboard server URL, empty keeps plays local")
	venue := flag.String("venue", "", "Venue ID reported with each play")
	player := flag.String("player", "", "Player name recorded with each play")
	email := flag.String("email", "", "Player email, required for scoreboard submission")
	zone := flag.String("zone", records.DefaultZone, "Time zone leaderboard days are counted in")
	fullscreen := flag.Bool("fullscreen", false, "Run fullscreen (kiosk)")
	flag.Parse()

	cfg.Debug.SkipMenu = *skipMenu
	cfg.Debug.ShowStats = *stats
	if *duration > 0 {
		cfg.Game.Duration = *duration
	}
	cfg.Scoreboard.URL = *scoreboardURL
	cfg.Scoreboard.VenueID = *venue
	cfg.Scoreboard.PlayerName = *player
	cfg.Scoreboard.PlayerEmail = *email

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle(cfg.Menu.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreen)

	if err := systems.InitPersistence(records.Location(*zone)); err != nil {
		log.Printf("Warning: Leaderboard starts empty: %v", err)
	}
	systems.InitAssets(*assetDir)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
