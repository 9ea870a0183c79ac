package components

import (
	"time"

	"github.com/automoto/recycle-catch/assets"
	cfg "github.com/automoto/recycle-catch/config"
	"github.com/automoto/recycle-catch/frame"
	"github.com/automoto/recycle-catch/game"
	"github.com/automoto/recycle-catch/render"
	"github.com/yohamta/donburi"
)

// SessionData is one play session: the controller, the frame loop that
// drives it and what the host callbacks last reported.
// This is a singleton component, the play scene owns exactly one.
type SessionData struct {
	State      cfg.SessionStateID
	Controller *game.Controller
	Loop       *frame.Loop
	Assets     *assets.Registry
	Renderer   *render.Renderer

	Score     int           // last OnScore value
	Remaining float64       // last OnTime value, seconds
	Stats     game.Stats    // set by OnEnd
	Ended     bool          // OnEnd fired
	StartedAt time.Time     // wall clock at SetPlaying(true)
	Played    time.Duration // round length actually played
}

var Session = donburi.NewComponentType[SessionData]()
