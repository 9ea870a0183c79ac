package config

import (
	"image/color"
	"time"
)

// LayoutConfig holds the size-dependent tuning of one responsive tier.
type LayoutConfig struct {
	ContainerWidth  float64
	ContainerHeight float64
	BottomOffset    float64 // gap between the container's bottom edge and the field bottom
	FallSpeed       float64 // pixels per tick, constant (no acceleration)
}

// PopupConfig contains floating score text configuration
type PopupConfig struct {
	Lifetime      time.Duration
	RiseSpeed     float64       // pixels per second
	PopDuration   time.Duration // scale-in when the popup appears
	PopScale      float64       // starting scale of the pop-in
	PositiveColor color.RGBA
	NegativeColor color.RGBA
	OutlineColor  color.RGBA
	FontSize      float64
}

// EffectsConfig contains catch feedback configuration
type EffectsConfig struct {
	BounceScale    float64 // container scale right after a catch, tweened back to 1
	BounceDuration time.Duration
	BounceEasing   string

	ShakeIntensity float64 // pixels
	ShakeDuration  time.Duration

	CorrectFlashColor    color.RGBA
	CorrectFlashAlpha    float64
	CorrectFlashDuration time.Duration
	WrongFlashColor      color.RGBA
	WrongFlashAlpha      float64
	WrongFlashDuration   time.Duration

	BurstCount int
	BurstColor color.RGBA

	// Spawn-in of falling items
	SpawnDuration time.Duration
	SpawnScale    float64
	SpawnRotation float64 // radians, settles to 0
	SpawnEasing   string
}

// GameConfig contains everything the game loop controller is tuned by.
// The controller keeps its own copy, so callers may override fields freely.
type GameConfig struct {
	Duration         time.Duration
	SpawnInterval    time.Duration
	RecyclableChance float64 // probability a spawn is recyclable; the rest is noise
	ScorePerCorrect  int
	PenaltyPerWrong  int
	ScoreFloor       int
	CurrencyUnit     string // suffix of score popups, e.g. "+20 DKK"

	ItemSize         float64
	OffFieldMargin   float64 // items whose top passes fieldHeight+margin are dropped
	MobileBreakpoint float64 // fields narrower than this use the Mobile layout
	Desktop          LayoutConfig
	Mobile           LayoutConfig

	Popup   PopupConfig
	Effects EffectsConfig

	MaxItems  int
	MaxPopups int

	// Delays between re-measurements while the field reports a zero size.
	ResizeRetryDelays []time.Duration
}

// Layout returns the responsive tier for a field of the given width.
func (g GameConfig) Layout(fieldWidth float64) LayoutConfig {
	if fieldWidth > 0 && fieldWidth < g.MobileBreakpoint {
		return g.Mobile
	}
	return g.Desktop
}

// FieldConfig contains the look of the play field
type FieldConfig struct {
	SkyTop       color.RGBA
	SkyBottom    color.RGBA
	GroundColor  color.RGBA
	GroundHeight float64
	Background   string // asset name of the background image
	Container    string // asset name of the container image

	RecyclableFill   color.RGBA
	RecyclableBorder color.RGBA
	RecyclableLabel  string
	NoiseFill        color.RGBA
	NoiseBorder      color.RGBA
	NoiseLabel       string
	ItemShadow       color.RGBA
	LabelColor       color.RGBA
	ContainerFill    color.RGBA
	ContainerBorder  color.RGBA
}

// HUDConfig contains the in-game overlay configuration
type HUDConfig struct {
	FontSize       float64
	Margin         float64
	TextColor      color.RGBA
	PanelColor     color.RGBA
	LowTimeColor   color.RGBA
	LowTimeSeconds int
	ScoreLabel     string
	TimeLabel      string
}

// CountdownConfig contains the pre-game countdown configuration
type CountdownConfig struct {
	From         int
	StepDuration time.Duration
	GoText       string
	GoDuration   time.Duration
	FontSize     float64
	TextColor    color.RGBA
	OverlayColor color.RGBA
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	PanelColor      color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	Title           string
	Subtitle        string
	StartLabel      string
	LeaderboardSize int
}

// ResultConfig contains result screen configuration values
type ResultConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	Title           string
	AgainLabel      string
	MenuLabel       string
	IdleTimeout     time.Duration // kiosk: return to the menu when nobody touches the screen
}

// ScoreboardConfig contains backend connection settings
type ScoreboardConfig struct {
	URL         string // empty disables remote submission
	VenueID     string
	DeviceID    string
	PlayerName  string
	PlayerEmail string // required by the server, plays without one stay local
	Timeout     time.Duration
}

// PointerConfig contains container steering configuration
type PointerConfig struct {
	KeyboardSpeed float64 // px per frame while a steering key is held
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu  bool // Skip menu and go directly to game
	ShowStats bool // Draw pool and lifecycle counters
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var (
	C          *Config
	Game       GameConfig
	Field      FieldConfig
	HUD        HUDConfig
	Countdown  CountdownConfig
	Menu       MenuConfig
	Result     ResultConfig
	Scoreboard ScoreboardConfig
	Pointer    PointerConfig
	Debug      DebugConfig
)

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0x22, G: 0xC5, B: 0x5E, A: 255}
	Red          = color.RGBA{R: 0xEF, G: 0x44, B: 0x44, A: 255}
	Blue         = color.RGBA{R: 0x25, G: 0x63, B: 0xEB, A: 255}
	DarkBlue     = color.RGBA{R: 0x1D, G: 0x4E, B: 0xD8, A: 255}
	Crimson      = color.RGBA{R: 0xDC, G: 0x26, B: 0x26, A: 255}
	DarkCrimson  = color.RGBA{R: 0xB9, G: 0x1C, B: 0x1C, A: 255}
	SkyBlue      = color.RGBA{R: 0x87, G: 0xCE, B: 0xEB, A: 255}
	SteelBlue    = color.RGBA{R: 0x46, G: 0x82, B: 0xB4, A: 255}
	Slate        = color.RGBA{R: 0x2D, G: 0x37, B: 0x48, A: 255}
	Amber        = color.RGBA{R: 0xF5, G: 0x9E, B: 0x0B, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Shadow       = color.RGBA{R: 0, G: 0, B: 0, A: 77}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	// Game Config
	Game = GameConfig{
		Duration:         30 * time.Second,
		SpawnInterval:    600 * time.Millisecond,
		RecyclableChance: 0.65,
		ScorePerCorrect:  20,
		PenaltyPerWrong:  20,
		ScoreFloor:       0,
		CurrencyUnit:     "DKK",

		ItemSize:         100,
		OffFieldMargin:   100,
		MobileBreakpoint: 768,
		Desktop: LayoutConfig{
			ContainerWidth:  140,
			ContainerHeight: 100,
			BottomOffset:    60,
			FallSpeed:       3,
		},
		Mobile: LayoutConfig{
			ContainerWidth:  120,
			ContainerHeight: 80,
			BottomOffset:    20,
			FallSpeed:       3.75, // 25% faster on small screens
		},

		Popup: PopupConfig{
			Lifetime:      1500 * time.Millisecond,
			RiseSpeed:     120, // 2px per frame at 60fps
			PopDuration:   150 * time.Millisecond,
			PopScale:      1.4,
			PositiveColor: Green,
			NegativeColor: Red,
			OutlineColor:  White,
			FontSize:      24,
		},

		Effects: EffectsConfig{
			BounceScale:    1.2,
			BounceDuration: 200 * time.Millisecond,
			BounceEasing:   "OutBounce",

			ShakeIntensity: 10,
			ShakeDuration:  300 * time.Millisecond,

			CorrectFlashColor:    Green,
			CorrectFlashAlpha:    0.3,
			CorrectFlashDuration: 400 * time.Millisecond,
			WrongFlashColor:      Red,
			WrongFlashAlpha:      0.35,
			WrongFlashDuration:   300 * time.Millisecond,

			BurstCount: 10,
			BurstColor: Green,

			SpawnDuration: 300 * time.Millisecond,
			SpawnScale:    0.5,
			SpawnRotation: 0.25,
			SpawnEasing:   "OutBack",
		},

		MaxItems:  50,
		MaxPopups: 30,

		ResizeRetryDelays: []time.Duration{
			50 * time.Millisecond,
			150 * time.Millisecond,
			300 * time.Millisecond,
			600 * time.Millisecond,
		},
	}

	// Field Config
	Field = FieldConfig{
		SkyTop:       SkyBlue,
		SkyBottom:    SteelBlue,
		GroundColor:  Slate,
		GroundHeight: 50,
		Background:   "background",
		Container:    "container",

		RecyclableFill:   Blue,
		RecyclableBorder: DarkBlue,
		RecyclableLabel:  "PARK",
		NoiseFill:        Crimson,
		NoiseBorder:      DarkCrimson,
		NoiseLabel:       "TRASH",
		ItemShadow:       Shadow,
		LabelColor:       White,
		ContainerFill:    color.RGBA{R: 0x15, G: 0x80, B: 0x3D, A: 255},
		ContainerBorder:  color.RGBA{R: 0x14, G: 0x53, B: 0x2D, A: 255},
	}

	// HUD Config
	HUD = HUDConfig{
		FontSize:       28,
		Margin:         16,
		TextColor:      White,
		PanelColor:     color.RGBA{R: 0, G: 0, B: 0, A: 140},
		LowTimeColor:   Red,
		LowTimeSeconds: 5,
		ScoreLabel:     "SCORE",
		TimeLabel:      "TIME",
	}

	// Countdown Config
	Countdown = CountdownConfig{
		From:         3,
		StepDuration: time.Second,
		GoText:       "GO!",
		GoDuration:   500 * time.Millisecond,
		FontSize:     96,
		TextColor:    White,
		OverlayColor: color.RGBA{R: 0, G: 0, B: 0, A: 100},
	}

	// Menu Config
	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		PanelColor:      color.RGBA{R: 30, G: 40, B: 70, A: 230},
		TitleColor:      Green,
		TextColor:       White,
		ButtonIdle:      color.RGBA{R: 0x16, G: 0xA3, B: 0x4A, A: 255},
		ButtonHover:     Green,
		ButtonPressed:   color.RGBA{R: 0x15, G: 0x80, B: 0x3D, A: 255},
		Title:           "RECYCLE CATCH",
		Subtitle:        "Catch the bottles, dodge the trash",
		StartLabel:      "START",
		LeaderboardSize: 10,
	}

	// Result Config
	Result = ResultConfig{
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:      Amber,
		TextColor:       White,
		Title:           "TIME'S UP!",
		AgainLabel:      "PLAY AGAIN",
		MenuLabel:       "MENU",
		IdleTimeout:     20 * time.Second,
	}

	Scoreboard = ScoreboardConfig{
		DeviceID: "kiosk",
		Timeout:  5 * time.Second,
	}

	Pointer = PointerConfig{
		KeyboardSpeed: 14,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
	}
}
