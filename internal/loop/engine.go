// Package loop drives a simulation in real time: a single goroutine owns the
// Simulation, applies queued actions between ticks and publishes read-only
// snapshots for renderers.
package loop

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	gamecfg "github.com/tomz197/skyraid/internal/loop/config"
	"github.com/tomz197/skyraid/internal/sim"
)

const actionBuffer = 256

// EngineOptions configures an Engine.
type EngineOptions struct {
	Logger   *log.Logger   // Defaults to log.Default()
	Interval time.Duration // Tick cadence, defaults to config.TickTime
	Mute     func() bool   // Flips sound output, returns true when enabled. Optional.
}

// Engine runs one Simulation on its own goroutine.
type Engine struct {
	sim         *sim.Simulation
	scheduler   *Scheduler
	framePeriod time.Duration
	logger      *log.Logger
	actions     chan Action
	snapshot    atomic.Pointer[sim.Snapshot]
	done        chan struct{}
	phase       sim.Phase
	mute        func() bool
}

// NewEngine wraps s. The engine must be started with Run before actions take effect.
func NewEngine(s *sim.Simulation, opts EngineOptions) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = gamecfg.TickTime
	}

	e := &Engine{
		sim:         s,
		scheduler:   NewScheduler(interval),
		framePeriod: framePeriod(interval),
		logger:      logger,
		actions:     make(chan Action, actionBuffer),
		done:        make(chan struct{}),
		phase:       s.State().Phase,
		mute:        opts.Mute,
	}
	e.snapshot.Store(s.Snapshot())
	return e
}

// framePeriod is the ticker cadence for a tick interval. Frames arrive at the
// display rate (60 Hz for a 16 ms tick) so ticker jitter never lands a frame
// just under the scheduler threshold.
func framePeriod(interval time.Duration) time.Duration {
	return interval * gamecfg.ClientTargetFrameTime / gamecfg.TickTime
}

// Send queues an action. Never blocks: when the queue is full the action is dropped.
func (e *Engine) Send(a Action) bool {
	select {
	case e.actions <- a:
		return true
	default:
		e.logger.Debug("action dropped", "action", a.Kind)
		return false
	}
}

// Snapshot returns the latest published snapshot. Safe for concurrent use.
func (e *Engine) Snapshot() *sim.Snapshot {
	return e.snapshot.Load()
}

// Done is closed once Run has returned.
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

// Run processes actions and ticks until ctx is cancelled or a Quit action
// arrives. The tick timer only exists while the simulation is active; it is
// stopped whenever the simulation suspends and when Run returns.
func (e *Engine) Run(ctx context.Context) {
	defer close(e.done)

	var ticker *time.Ticker
	var tickCh <-chan time.Time
	stopTicker := func() {
		if ticker != nil {
			ticker.Stop()
			ticker = nil
			tickCh = nil
		}
	}
	defer stopTicker()

	for {
		switch active := e.sim.Active(); {
		case active && ticker == nil:
			e.scheduler.Reset()
			ticker = time.NewTicker(e.framePeriod)
			tickCh = ticker.C
			e.logger.Debug("ticking resumed", "phase", e.phase)
		case !active && ticker != nil:
			stopTicker()
			e.logger.Debug("ticking suspended", "phase", e.phase)
		}

		select {
		case <-ctx.Done():
			return
		case a := <-e.actions:
			if a.Kind == ActionQuit {
				e.logger.Info("quit requested", "score", e.sim.State().Score)
				return
			}
			e.handle(a)
		case now := <-tickCh:
			e.frame(now)
		}
	}
}

// handle applies one action and publishes the result.
func (e *Engine) handle(a Action) {
	if a.Kind == ActionToggleMute {
		if e.mute != nil {
			e.logger.Info("sound toggled", "enabled", e.mute())
		}
		return
	}
	if !a.apply(e.sim) {
		e.logger.Debug("action ignored", "action", a.Kind, "phase", e.sim.State().Phase)
		return
	}
	e.publish()
}

// frame runs one tick if the scheduler allows it.
func (e *Engine) frame(now time.Time) {
	if !e.scheduler.Frame(now) {
		return
	}
	e.sim.Tick()
	e.publish()
}

func (e *Engine) publish() {
	st := e.sim.State()
	if st.Phase != e.phase {
		e.logger.Info("phase changed", "from", e.phase, "to", st.Phase, "score", st.Score, "level", st.Level)
		e.phase = st.Phase
	}
	e.snapshot.Store(e.sim.Snapshot())
}
