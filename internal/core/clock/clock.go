// Package clock supplies the recurring tick source that drives a countdown.
//
// A Scheduler hands out at most one callback chain per Every call; the
// returned Handle cancels it. Callbacks receive a monotonic timestamp so the
// consumer can measure elapsed time itself instead of assuming each tick is a
// fixed amount of wall-clock time.
package clock

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultTickInterval is the cadence used when none is configured. It is
// finer than a second, like a frame callback.
const DefaultTickInterval = 100 * time.Millisecond

// Handle cancels a scheduled task. Cancel is idempotent.
type Handle interface {
	Cancel()
}

// Scheduler provides the current time and recurring callbacks.
type Scheduler interface {
	Now() time.Time
	Every(interval time.Duration, fn func(now time.Time)) Handle
}

// TickerOption configures a Ticker.
type TickerOption func(*Ticker)

// WithDispatch routes every callback through dispatch, e.g. to run it on a
// UI main thread.
func WithDispatch(dispatch func(func())) TickerOption {
	return func(ticker *Ticker) {
		ticker.dispatch = dispatch
	}
}

// Ticker is a Scheduler backed by time.Ticker goroutines.
type Ticker struct {
	dispatch func(func())
}

// NewTicker creates a real-time scheduler.
func NewTicker(opts ...TickerOption) *Ticker {
	ticker := &Ticker{
		dispatch: func(fn func()) { fn() },
	}
	for _, opt := range opts {
		opt(ticker)
	}
	return ticker
}

// Now returns the current time, including its monotonic reading.
func (ticker *Ticker) Now() time.Time {
	return time.Now()
}

// Every starts a goroutine invoking fn once per interval until cancelled.
func (ticker *Ticker) Every(interval time.Duration, fn func(now time.Time)) Handle {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	task := &tickerTask{stopCh: make(chan struct{})}
	go task.run(interval, ticker.dispatch, fn)
	return task
}

type tickerTask struct {
	stopCh  chan struct{}
	once    sync.Once
	stopped atomic.Bool
}

func (task *tickerTask) Cancel() {
	task.once.Do(func() {
		task.stopped.Store(true)
		close(task.stopCh)
	})
}

func (task *tickerTask) run(interval time.Duration, dispatch func(func()), fn func(time.Time)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-task.stopCh:
			return
		case <-ticker.C:
			// time.Ticker timestamps carry no monotonic reading.
			now := time.Now()
			dispatch(func() {
				if task.stopped.Load() {
					return
				}
				fn(now)
			})
		}
	}
}
