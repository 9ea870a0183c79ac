package systems

import (
	"image/color"
	"strconv"
	"time"

	"github.com/automoto/recycle-catch/components"
	cfg "github.com/automoto/recycle-catch/config"
	"github.com/automoto/recycle-catch/fonts"
	"github.com/automoto/recycle-catch/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func startCountdown(cd *components.CountdownData) {
	cd.Active = true
	cd.Value = cfg.Countdown.From
	cd.Timer = secondsToFrames(cfg.Countdown.StepDuration)
	if cd.Value <= 0 {
		cd.Value = 0
		cd.Timer = secondsToFrames(cfg.Countdown.GoDuration)
	}
}

// UpdateCountdown steps 3-2-1-GO and starts the round when GO appears.
func UpdateCountdown(e *ecs.ECS) {
	entry, s, ok := getSession(e)
	if !ok {
		return
	}
	cd := components.Countdown.Get(entry)
	if !cd.Active {
		return
	}

	if cd.Value == 0 && s.State == cfg.SessionCountdown {
		beginRound(s)
	}

	cd.Timer--
	if cd.Timer > 0 {
		return
	}
	if cd.Value == 0 {
		cd.Active = false
		return
	}
	cd.Value--
	if cd.Value == 0 {
		cd.Timer = secondsToFrames(cfg.Countdown.GoDuration)
		return
	}
	cd.Timer = secondsToFrames(cfg.Countdown.StepDuration)
}

func beginRound(s *components.SessionData) {
	s.State = cfg.SessionPlaying
	s.StartedAt = time.Now()
	s.Controller.SetPlaying(true)
}

// DrawCountdown draws the current countdown value over the field.
func DrawCountdown(e *ecs.ECS, screen *ebiten.Image) {
	entry, _, ok := getSession(e)
	if !ok {
		return
	}
	cd := components.Countdown.Get(entry)
	if !cd.Active {
		return
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	label := cfg.Countdown.GoText
	overlay := cfg.Countdown.OverlayColor
	if cd.Value > 0 {
		label = strconv.Itoa(cd.Value)
	} else {
		// GO fades with its remaining time.
		t := float64(cd.Timer) / float64(secondsToFrames(cfg.Countdown.GoDuration))
		overlay = render.Fade(overlay, t)
	}
	vector.FillRect(screen, 0, 0, float32(width), float32(height), overlay, false)

	face := fonts.Countdown.Get()
	bounds := text.BoundString(face, label) //nolint:staticcheck // TODO: migrate to text/v2
	x := width/2 - bounds.Dx()/2
	y := height/2 + bounds.Dy()/2
	text.Draw(screen, label, face, x+3, y+3, color.RGBA{A: 160})
	text.Draw(screen, label, face, x, y, cfg.Countdown.TextColor)
}
