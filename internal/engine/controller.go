// Package engine drives a skyraid game in real time. The Controller owns the
// run state machine (idle, running, over), the fixed-rate tick driver, the
// input buffer that producers write into, and the committed snapshot that
// renderers read.
package engine

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
	"github.com/vovakirdan/skyraid/internal/games/skyraid"
)

// Options configures a Controller.
type Options struct {
	Config config.Config

	// Rand overrides the spawn source. When nil a source seeded with Seed is
	// used, and a zero Seed picks one from the clock.
	Rand skyraid.Rand
	Seed int64

	Logger *log.Logger

	// OnCommit is called after every committed state change, outside the
	// controller lock. It runs on the tick goroutine and should return quickly.
	// It must not call Press(core.ActionStart) or Stop.
	OnCommit func(skyraid.Snapshot)

	// Manual disables the tick driver. Ticks then run only through Advance.
	Manual bool
}

// Controller runs one single-player game.
type Controller struct {
	life sync.Mutex // Serializes driver start and Stop
	mu   sync.Mutex // Guards game, phase, cause and closed

	game   *skyraid.Game
	phase  skyraid.Phase
	cause  skyraid.Cause
	closed bool

	input    *InputBuffer
	drv      *driver
	snap     atomic.Pointer[skyraid.Snapshot]
	logger   *log.Logger
	onCommit func(skyraid.Snapshot)
	manual   bool
	seed     int64
}

// NewController creates a controller in the idle phase.
func NewController(opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "skyraid",
		})
	}

	seed := opts.Seed
	rng := opts.Rand
	if rng == nil {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = skyraid.NewRand(seed)
	}

	c := &Controller{
		game:     skyraid.New(opts.Config, rng),
		phase:    skyraid.PhaseIdle,
		input:    NewInputBuffer(),
		logger:   logger,
		onCommit: opts.OnCommit,
		manual:   opts.Manual,
		seed:     seed,
	}
	c.drv = newDriver(opts.Config.Loop.TickInterval(), c.tick)

	c.mu.Lock()
	c.commitLocked()
	c.mu.Unlock()
	return c
}

// Seed returns the seed the spawn source was created with. When a custom
// source was supplied it is Options.Seed unchanged.
func (c *Controller) Seed() int64 {
	return c.seed
}

// Hold marks a control as held. Safe to call from any goroutine.
func (c *Controller) Hold(a core.Action) {
	c.input.Hold(a)
}

// Release clears a held control. Safe to call from any goroutine.
func (c *Controller) Release(a core.Action) {
	c.input.Release(a)
}

// Press records a one-shot action. Safe to call from any goroutine.
//
// ActionStart outside the running phase starts a fresh run immediately and
// enables the tick driver. While running it is queued, and the next tick
// resets the world instead of advancing it. Other actions are queued for the
// next tick.
func (c *Controller) Press(a core.Action) {
	if a != core.ActionStart {
		c.input.Press(a)
		return
	}

	c.life.Lock()
	defer c.life.Unlock()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.phase == skyraid.PhaseRunning {
		c.mu.Unlock()
		c.input.Press(a)
		return
	}
	c.input.Discard()
	snap := c.resetLocked()
	c.mu.Unlock()

	c.notify(snap)
	if !c.manual {
		c.logger.Debug("tick driver starting", "interval", c.drv.interval)
		c.drv.start()
	}
}

// Advance runs one tick synchronously and reports whether the run is still
// going. Outside the running phase it does nothing and returns false.
func (c *Controller) Advance() bool {
	return c.tick()
}

// Snapshot returns the last committed state. The result is a private copy.
func (c *Controller) Snapshot() skyraid.Snapshot {
	s := *c.snap.Load()
	s.State = s.State.Clone()
	return s
}

// Phase returns the current phase.
func (c *Controller) Phase() skyraid.Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Config returns the game configuration.
func (c *Controller) Config() config.Config {
	return c.game.Config()
}

// Stop halts the tick driver and rejects further starts. A tick already in
// flight completes and commits before Stop returns; none runs afterwards.
func (c *Controller) Stop() {
	c.life.Lock()
	defer c.life.Unlock()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	c.drv.halt()
	c.input.Reset()
	c.logger.Debug("tick driver stopped")
}

// Wait blocks until the current run's tick driver exits, either because the
// run ended or because of Stop. It returns immediately when no driver was
// started, and ctx.Err() if ctx is done first.
func (c *Controller) Wait(ctx context.Context) error {
	done := c.drv.wait()
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// tick is the update pipeline: drain input, step the game, commit.
func (c *Controller) tick() bool {
	c.mu.Lock()
	if c.closed || c.phase != skyraid.PhaseRunning {
		c.mu.Unlock()
		return false
	}

	in := c.input.Drain()
	if in.WasPressed(core.ActionStart) {
		snap := c.resetLocked()
		c.mu.Unlock()
		c.notify(snap)
		return true
	}

	result := c.game.Step(in)
	if result.Over() {
		c.phase = skyraid.PhaseOver
		c.cause = result.Cause
	}
	snap := c.commitLocked()
	c.mu.Unlock()

	if result.Over() {
		c.logger.Info("run over", "score", snap.Score, "ticks", snap.Tick, "cause", snap.Cause)
	}
	c.notify(snap)
	return !result.Over()
}

// resetLocked starts a fresh run and commits it. Caller holds mu.
func (c *Controller) resetLocked() skyraid.Snapshot {
	c.game.Reset()
	c.phase = skyraid.PhaseRunning
	c.cause = skyraid.CauseNone
	c.logger.Info("run started")
	return c.commitLocked()
}

// commitLocked publishes the current world as the snapshot. Caller holds mu.
func (c *Controller) commitLocked() skyraid.Snapshot {
	snap := &skyraid.Snapshot{
		State: c.game.State(),
		Phase: c.phase,
		Cause: c.cause,
	}
	c.snap.Store(snap)
	return *snap
}

func (c *Controller) notify(snap skyraid.Snapshot) {
	if c.onCommit == nil {
		return
	}
	snap.State = snap.State.Clone()
	c.onCommit(snap)
}
