// Package game is the falling-items catch game: spawning, physics, catch
// resolution, scoring and the effects they trigger. The controller is driven
// by a frame.Scheduler and has no knowledge of how frames are drawn.
package game

import (
	"image/color"
	"math"
	"math/rand/v2"
	"time"

	"github.com/tanema/gween/ease"

	"github.com/automoto/recycle-catch/assets"
	"github.com/automoto/recycle-catch/config"
	"github.com/automoto/recycle-catch/easing"
	"github.com/automoto/recycle-catch/frame"
	"github.com/automoto/recycle-catch/pool"
	"github.com/automoto/recycle-catch/tween"
)

// AssetPicker chooses an image name for a newly spawned item.
type AssetPicker interface {
	PickRandom(c assets.Category) string
}

// Callbacks are how the controller reports to its host. Any may be nil.
type Callbacks struct {
	OnScore func(score int)
	OnTime  func(remainingSeconds float64)
	OnEnd   func(finalScore int, stats Stats)
}

// Deps are the collaborators a controller is built from.
type Deps struct {
	Clock     frame.Clock
	Scheduler frame.Scheduler
	Assets    AssetPicker
	Rand      *rand.Rand
	Callbacks Callbacks
}

// Controller owns one run of the game.
type Controller struct {
	cfg    config.GameConfig
	clock  frame.Clock
	sched  frame.Scheduler
	picker AssetPicker
	rng    *rand.Rand
	cb     Callbacks

	effects *tween.Registry
	items   *pool.Pool[*FallingItem]
	popups  *pool.Pool[*ScorePopup]
	handles []pool.Handle

	bounceEase ease.TweenFunc
	spawnEase  ease.TweenFunc

	state     State
	started   bool
	ended     bool
	disposed  bool
	startAt   time.Duration
	lastSpawn time.Duration
	remaining time.Duration
	score     int
	stats     Stats
	life      Lifecycle

	fieldW, fieldH float64
	layout         config.LayoutConfig
	container      Container
	flashColor     color.RGBA

	tickReq frame.RequestID
	resize  resizeState

	snap *Frame
}

// New creates an idle controller. cfg is copied.
func New(cfg config.GameConfig, deps Deps) *Controller {
	if deps.Clock == nil {
		deps.Clock = frame.NewSystemClock()
	}
	if deps.Scheduler == nil {
		deps.Scheduler = frame.NewLoop(deps.Clock)
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9a3e))
	}
	cfg.ScoreFloor = max(cfg.ScoreFloor, 0)
	if cfg.ResizeRetryDelays != nil {
		cfg.ResizeRetryDelays = append([]time.Duration(nil), cfg.ResizeRetryDelays...)
	}

	c := &Controller{
		cfg:       cfg,
		clock:     deps.Clock,
		sched:     deps.Scheduler,
		picker:    deps.Assets,
		rng:       deps.Rand,
		cb:        deps.Callbacks,
		effects:   tween.NewRegistry(deps.Clock, deps.Scheduler, deps.Rand),
		items:     pool.New(func() *FallingItem { return &FallingItem{} }, cfg.MaxItems),
		popups:    pool.New(func() *ScorePopup { return &ScorePopup{} }, cfg.MaxPopups),
		remaining: cfg.Duration,
		layout:    cfg.Desktop,
		snap:      &Frame{},
	}
	c.bounceEase = lookupEase(cfg.Effects.BounceEasing, easing.OutBounce)
	c.spawnEase = lookupEase(cfg.Effects.SpawnEasing, easing.OutBack)
	c.container = Container{Width: c.layout.ContainerWidth, Height: c.layout.ContainerHeight, Scale: 1}
	c.snapshot()
	return c
}

func lookupEase(name string, fallback ease.TweenFunc) ease.TweenFunc {
	if fn, ok := easing.Lookup(name); ok {
		return fn
	}
	return fallback
}

// SetPlaying is the host's "should the simulation run" signal. true starts a
// run once per controller; repeated true signals are ignored. false while
// running aborts the run without reporting an end.
func (c *Controller) SetPlaying(playing bool) {
	if c.disposed {
		return
	}
	if !playing {
		if c.state == Running {
			c.stop()
			c.state = Ended
			c.snapshot()
		}
		return
	}
	if c.state != Idle || c.started {
		return
	}
	c.start()
}

func (c *Controller) start() {
	now := c.clock.Now()
	c.started = true
	c.state = Running
	c.startAt = now
	c.lastSpawn = now
	c.remaining = c.cfg.Duration
	c.score = 0
	c.stats = Stats{}

	// The effects driver is scheduled first so each frame's tick reads
	// values already advanced for that frame.
	c.effects.Start()
	c.tickReq = c.sched.Schedule(c.tick)

	c.reportScore()
	c.reportTime()
}

func (c *Controller) tick(now time.Duration) {
	c.tickReq = 0
	if c.disposed || c.state != Running {
		return
	}

	c.remaining = max(0, c.cfg.Duration-(now-c.startAt))
	c.reportTime()
	if c.remaining <= 0 {
		c.end()
		return
	}

	if now-c.lastSpawn > c.cfg.SpawnInterval {
		c.spawn()
		c.lastSpawn = now
	}

	c.container.Scale = c.effects.ValueOr(BounceKey, 1)

	c.handles = c.items.Active(c.handles[:0])
	for i := len(c.handles) - 1; i >= 0; i-- {
		h := c.handles[i]
		it, ok := c.items.Get(h)
		if !ok {
			continue
		}
		it.Y += it.Speed
		if Caught(it, c.container) {
			c.applyCatch(it, now)
			c.releaseItem(h, it)
			c.life.Caught++
			continue
		}
		if it.Y >= c.fieldH+c.cfg.OffFieldMargin {
			c.releaseItem(h, it)
			c.life.Missed++
			continue
		}
		c.animateItem(it)
	}

	c.advancePopups(now)
	c.snapshot()

	if c.state == Running && !c.disposed {
		c.tickReq = c.sched.Schedule(c.tick)
	}
}

func (c *Controller) spawn() {
	if c.fieldW <= 0 || c.fieldH <= 0 {
		return
	}
	category := Noise
	if c.rng.Float64() < c.cfg.RecyclableChance {
		category = Recyclable
	}
	name := ""
	if c.picker != nil {
		name = c.picker.PickRandom(category.AssetCategory())
	}

	if old, ok := c.items.Evictee(); ok {
		c.stopSpawnEffect(old.ID)
		c.life.Evicted++
	}
	h, it := c.items.Acquire()
	c.life.Spawned++

	size := c.cfg.ItemSize
	*it = FallingItem{
		ID:       h.ID,
		X:        c.rng.Float64() * max(0, c.fieldW-size),
		Y:        -size,
		Width:    size,
		Height:   size,
		Speed:    max(c.layout.FallSpeed, minFallSpeed),
		Category: category,
		Asset:    name,
		Scale:    1,
		Alpha:    1,
	}
	c.startSpawnEffect(it)
}

// minFallSpeed keeps descent strictly monotonic under a misconfigured layout.
const minFallSpeed = 0.1

// applyCatch scores a caught item and fires its effects.
func (c *Controller) applyCatch(it *FallingItem, now time.Duration) {
	c.stats.ItemsCaught++
	x := it.CenterX()

	switch it.Category {
	case Recyclable:
		c.score += c.cfg.ScorePerCorrect
		c.stats.CorrectCatches++
		c.addPopup(now, x, it.Y, c.cfg.ScorePerCorrect)
		c.effects.Create(BounceKey, c.cfg.Effects.BounceScale, 1, c.cfg.Effects.BounceDuration, c.bounceEase)
		c.effects.Burst(x, c.container.Y, c.cfg.Effects.BurstColor, c.cfg.Effects.BurstCount)
		c.flash(c.cfg.Effects.CorrectFlashColor, c.cfg.Effects.CorrectFlashAlpha, c.cfg.Effects.CorrectFlashDuration)
	case Noise:
		c.score = max(c.cfg.ScoreFloor, c.score-c.cfg.PenaltyPerWrong)
		c.stats.WrongCatches++
		c.addPopup(now, x, it.Y, -c.cfg.PenaltyPerWrong)
		c.effects.Shake(c.cfg.Effects.ShakeIntensity, c.cfg.Effects.ShakeDuration)
		c.flash(c.cfg.Effects.WrongFlashColor, c.cfg.Effects.WrongFlashAlpha, c.cfg.Effects.WrongFlashDuration)
	}
	c.reportScore()
}

func (c *Controller) releaseItem(h pool.Handle, it *FallingItem) {
	c.stopSpawnEffect(it.ID)
	c.items.Release(h)
}

// end moves a running game to Ended and reports it once.
func (c *Controller) end() {
	c.state = Ended
	c.stop()
	c.snapshot()
	if c.ended {
		return
	}
	c.ended = true
	if c.cb.OnEnd != nil {
		c.cb.OnEnd(c.score, c.stats)
	}
}

// stop cancels the pending tick and drops everything still in play.
func (c *Controller) stop() {
	if c.tickReq != 0 {
		c.sched.Cancel(c.tickReq)
		c.tickReq = 0
	}
	c.life.Cleared += c.items.Len()
	c.items.Clear()
	c.popups.Clear()
	c.effects.Stop()
	c.effects.Clear()
	c.container.Scale = 1
}

// Dispose tears the controller down: no tick, resize retry or effect frame
// stays scheduled, and later calls are ignored.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.cancelResize()
	c.stop()
	if c.state == Running {
		c.state = Ended
	}
	c.snapshot()
	c.disposed = true
}

// SetTargetX centers the container on x, in field coordinates, clamped so the
// container stays inside the field. Applied immediately.
func (c *Controller) SetTargetX(x float64) {
	if c.disposed || math.IsNaN(x) {
		return
	}
	c.container.X = c.clampContainerX(x - c.container.Width/2)
}

func (c *Controller) clampContainerX(x float64) float64 {
	return max(0, min(x, c.fieldW-c.container.Width))
}

func (c *Controller) reportScore() {
	if c.cb.OnScore != nil {
		c.cb.OnScore(c.score)
	}
}

func (c *Controller) reportTime() {
	if c.cb.OnTime != nil {
		c.cb.OnTime(c.remaining.Seconds())
	}
}

// State returns the run state.
func (c *Controller) State() State { return c.state }

// Score returns the current score.
func (c *Controller) Score() int { return c.score }

// Stats returns the catch counters.
func (c *Controller) Stats() Stats { return c.stats }

// Lifecycle returns the item lifecycle counters.
func (c *Controller) Lifecycle() Lifecycle { return c.life }

// Remaining returns the time left in the run.
func (c *Controller) Remaining() time.Duration { return c.remaining }

// Container returns the current container geometry.
func (c *Controller) Container() Container { return c.container }

// Field returns the measured field size; zero until the first real measurement.
func (c *Controller) Field() (w, h float64) { return c.fieldW, c.fieldH }

// Disposed reports whether Dispose was called.
func (c *Controller) Disposed() bool { return c.disposed }

// ActiveItems reports how many items are in play.
func (c *Controller) ActiveItems() int { return c.items.Len() }

// PoolStats reports slot usage of the item and popup pools.
func (c *Controller) PoolStats() (items, popups pool.Stats) {
	return c.items.Stats(), c.popups.Stats()
}
