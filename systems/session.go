package systems

import (
	"context"
	"log"
	"time"

	"github.com/automoto/recycle-catch/archetypes"
	"github.com/automoto/recycle-catch/components"
	cfg "github.com/automoto/recycle-catch/config"
	"github.com/automoto/recycle-catch/frame"
	"github.com/automoto/recycle-catch/game"
	"github.com/automoto/recycle-catch/records"
	"github.com/automoto/recycle-catch/render"
	"github.com/automoto/recycle-catch/scoreboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewSession spawns the play session entity with an idle controller. The
// round starts when the countdown runs out.
func NewSession(e *ecs.ECS, gameCfg cfg.GameConfig) *donburi.Entry {
	entry := archetypes.Session.Spawn(e)

	clock := frame.NewSystemClock()
	loop := frame.NewLoop(clock)
	reg := Assets()

	s := components.Session.Get(entry)
	s.State = cfg.SessionCountdown
	s.Loop = loop
	s.Assets = reg
	s.Renderer = render.NewRenderer(reg, cfg.Field, gameCfg.Popup)
	s.Remaining = gameCfg.Duration.Seconds()

	// Component data may move inside the world, so callbacks look it up.
	s.Controller = game.New(gameCfg, game.Deps{
		Clock:     clock,
		Scheduler: loop,
		Assets:    reg,
		Callbacks: game.Callbacks{
			OnScore: func(score int) {
				components.Session.Get(entry).Score = score
			},
			OnTime: func(remaining float64) {
				components.Session.Get(entry).Remaining = remaining
			},
			OnEnd: func(finalScore int, stats game.Stats) {
				s := components.Session.Get(entry)
				s.Score = finalScore
				s.Stats = stats
				s.Ended = true
				s.State = cfg.SessionFinished
				s.Played = time.Since(s.StartedAt)
			},
		},
	})
	s.Controller.ObserveResize(fieldSize)

	startCountdown(components.Countdown.Get(entry))
	return entry
}

// fieldSize is the play field: the whole logical screen.
func fieldSize() (w, h float64) {
	return float64(cfg.C.Width), float64(cfg.C.Height)
}

func getSession(e *ecs.ECS) (*donburi.Entry, *components.SessionData, bool) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil, nil, false
	}
	return entry, components.Session.Get(entry), true
}

// UpdateFrameLoop runs one animation frame: the controller tick, the
// effects driver and any pending resize retries.
func UpdateFrameLoop(e *ecs.ECS) {
	_, s, ok := getSession(e)
	if !ok {
		return
	}
	s.Loop.RunFrame()
}

// UpdateLayout feeds window size changes to the controller.
func UpdateLayout(e *ecs.ECS) {
	_, s, ok := getSession(e)
	if !ok || s.Controller.ResizePending() {
		return
	}
	w, h := fieldSize()
	fw, fh := s.Controller.Field()
	if w > 0 && h > 0 && (w != fw || h != fh) {
		s.Controller.Resize(w, h)
	}
}

// AbortSession stops a round without reporting a result.
func AbortSession(e *ecs.ECS) {
	_, s, ok := getSession(e)
	if !ok {
		return
	}
	s.Controller.SetPlaying(false)
	s.Controller.Dispose()
}

// FinishSession hands over a round that has ended: the play is recorded
// locally, submitted to the scoreboard in the background and the result
// screen data is returned. It reports false while the round is running.
func FinishSession(e *ecs.ECS) (components.ResultData, bool) {
	_, s, ok := getSession(e)
	if !ok || !s.Ended || s.Controller.Disposed() {
		return components.ResultData{}, false
	}
	s.Controller.Dispose()

	play := records.Play{
		Player:         cfg.Scoreboard.PlayerName,
		Venue:          cfg.Scoreboard.VenueID,
		Score:          s.Score,
		ItemsCaught:    s.Stats.ItemsCaught,
		CorrectCatches: s.Stats.CorrectCatches,
		WrongCatches:   s.Stats.WrongCatches,
		DurationMS:     s.Played.Milliseconds(),
		StartedAt:      s.StartedAt,
	}
	rank := RecordPlay(play)
	SubmitPlay(scoreboard.Submission{
		Name:     cfg.Scoreboard.PlayerName,
		Email:    cfg.Scoreboard.PlayerEmail,
		VenueID:  cfg.Scoreboard.VenueID,
		DeviceID: cfg.Scoreboard.DeviceID,
		Score:    s.Score,
		Stats: scoreboard.Stats{
			ItemsCaught:    s.Stats.ItemsCaught,
			CorrectCatches: s.Stats.CorrectCatches,
			WrongCatches:   s.Stats.WrongCatches,
		},
		DurationMS: play.DurationMS,
	})

	return components.ResultData{
		Score:       s.Score,
		Stats:       s.Stats,
		Rank:        rank,
		Leaderboard: TodayLeaderboard(cfg.Menu.LeaderboardSize),
	}, true
}

// SubmitPlay reports a finished play to the scoreboard server without
// blocking the game. Nothing is sent when no server or player email is set.
func SubmitPlay(sub scoreboard.Submission) {
	if cfg.Scoreboard.URL == "" {
		return
	}
	if sub.Email == "" {
		log.Printf("Warning: No player email set, play kept locally only")
		return
	}
	client := scoreboard.NewClient(cfg.Scoreboard.URL, cfg.Scoreboard.Timeout)
	go func() {
		res, err := client.Submit(context.Background(), sub)
		if err != nil {
			log.Printf("Warning: Could not submit play: %v", err)
			return
		}
		log.Printf("Play submitted: %d (first of day: %t)", res.FinalScore, res.IsFirstPlay)
	}()
}

// secondsToFrames converts a duration to update ticks.
func secondsToFrames(d time.Duration) int {
	return max(1, int(d.Seconds()*float64(ebiten.TPS())+0.5))
}
