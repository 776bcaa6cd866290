// Package countdown implements the remaining-time model of a single interval.
//
// The engine decrements whole seconds from measured elapsed time rather than
// counting callbacks, so ticks may arrive at any cadence. It owns at most one
// scheduled tick chain; every Start, Pause and Activate replaces or cancels
// it, and ticks from a replaced chain are ignored.
//
// An Engine is not safe for concurrent use. The owner serializes calls,
// including the ticks it receives through its TickFunc.
package countdown

import (
	"time"

	"intervaltimer/internal/core/clock"
	"intervaltimer/internal/core/model"
)

// TickFunc receives the ticks of a chain started by Start. chain identifies
// the chain so the receiver can pass it back to Tick.
type TickFunc func(chain uint64, now time.Time)

// Engine counts an interval down to 00:00.
type Engine struct {
	scheduler    clock.Scheduler
	tickInterval time.Duration
	onTick       TickFunc

	configuredMinutes int
	configuredSeconds int
	remainingMinutes  int
	remainingSeconds  int

	running  bool
	reported bool
	pending  time.Duration
	lastTick time.Time

	chain  uint64
	handle clock.Handle
}

// New creates an idle engine. If onTick is nil the engine feeds scheduled
// ticks straight back into Tick.
func New(scheduler clock.Scheduler, tickInterval time.Duration, onTick TickFunc) *Engine {
	if tickInterval <= 0 {
		tickInterval = clock.DefaultTickInterval
	}
	engine := &Engine{
		scheduler:    scheduler,
		tickInterval: tickInterval,
		onTick:       onTick,
	}
	if engine.onTick == nil {
		engine.onTick = func(chain uint64, now time.Time) {
			engine.Tick(chain, now)
		}
	}
	return engine
}

// Activate loads interval as both configured and remaining time and stops
// the engine. Safe to call at any time.
func (engine *Engine) Activate(interval model.Interval) {
	engine.cancelChain()
	minutes, seconds := model.SplitDuration(interval.Duration)
	engine.configuredMinutes = minutes
	engine.configuredSeconds = seconds
	engine.remainingMinutes = minutes
	engine.remainingSeconds = seconds
	engine.running = false
	engine.reported = false
	engine.pending = 0
}

// Start begins a tick chain. It reports false and does nothing if the
// engine is already running.
func (engine *Engine) Start() bool {
	if engine.running {
		return false
	}
	engine.cancelChain()
	engine.running = true
	engine.lastTick = engine.scheduler.Now()
	engine.chain++

	chain := engine.chain
	onTick := engine.onTick
	engine.handle = engine.scheduler.Every(engine.tickInterval, func(now time.Time) {
		onTick(chain, now)
	})
	return true
}

// Pause stops the tick chain, keeping remaining time. It reports whether the
// engine was running.
func (engine *Engine) Pause() bool {
	wasRunning := engine.running
	engine.cancelChain()
	engine.running = false
	return wasRunning
}

// Tick handles a scheduled tick. Ticks from a cancelled or replaced chain are
// ignored. It reports true exactly once per activation, on the tick that
// finds the interval at 00:00.
func (engine *Engine) Tick(chain uint64, now time.Time) bool {
	if !engine.running || chain != engine.chain {
		return false
	}
	elapsed := now.Sub(engine.lastTick)
	engine.lastTick = now
	return engine.Advance(elapsed)
}

// Advance adds elapsed running time. Each accumulated whole second removes
// one second from the remaining time, never going below 00:00. Like Tick it
// reports the 00:00 edge exactly once.
func (engine *Engine) Advance(elapsed time.Duration) bool {
	if !engine.running {
		return false
	}
	if elapsed > 0 {
		engine.pending += elapsed
	}
	for engine.pending >= time.Second && !engine.IsDone() {
		engine.decrement()
		engine.pending -= time.Second
	}
	if !engine.IsDone() {
		return false
	}
	engine.pending = 0
	if engine.reported {
		return false
	}
	engine.reported = true
	return true
}

// IsDone reports whether the remaining time is 00:00.
func (engine *Engine) IsDone() bool {
	return engine.remainingMinutes == 0 && engine.remainingSeconds == 0
}

// Completed reports whether the 00:00 edge has been reported since the last
// activation.
func (engine *Engine) Completed() bool {
	return engine.reported
}

// IsAtConfigured reports whether no time has been counted down yet.
func (engine *Engine) IsAtConfigured() bool {
	return engine.remainingMinutes == engine.configuredMinutes &&
		engine.remainingSeconds == engine.configuredSeconds
}

// Running reports whether a tick chain is live.
func (engine *Engine) Running() bool {
	return engine.running
}

// Remaining returns the live minutes and seconds.
func (engine *Engine) Remaining() (int, int) {
	return engine.remainingMinutes, engine.remainingSeconds
}

// Configured returns the nominal minutes and seconds of the interval.
func (engine *Engine) Configured() (int, int) {
	return engine.configuredMinutes, engine.configuredSeconds
}

// Chain returns the id of the most recent tick chain.
func (engine *Engine) Chain() uint64 {
	return engine.chain
}

func (engine *Engine) decrement() {
	if engine.remainingSeconds > 0 {
		engine.remainingSeconds--
		return
	}
	if engine.remainingMinutes > 0 {
		engine.remainingMinutes--
		engine.remainingSeconds = 59
	}
}

// cancelChain drops the live chain. Bumping chain makes any tick that was
// already queued for it a no-op.
func (engine *Engine) cancelChain() {
	if engine.handle != nil {
		engine.handle.Cancel()
		engine.handle = nil
	}
	engine.chain++
}
