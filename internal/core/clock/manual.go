package clock

import (
	"sync"
	"time"
)

// Manual is a deterministic Scheduler for tests. Time only moves when
// Advance is called, and due callbacks run synchronously on the caller.
type Manual struct {
	mu    sync.Mutex
	now   time.Time
	tasks []*manualTask
}

type manualTask struct {
	owner     *Manual
	interval  time.Duration
	next      time.Time
	fn        func(time.Time)
	cancelled bool
}

// NewManual creates a manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the manual clock's current time.
func (manual *Manual) Now() time.Time {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return manual.now
}

// Every registers fn to run every interval of manual time.
func (manual *Manual) Every(interval time.Duration, fn func(now time.Time)) Handle {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	manual.mu.Lock()
	defer manual.mu.Unlock()
	task := &manualTask{
		owner:    manual,
		interval: interval,
		next:     manual.now.Add(interval),
		fn:       fn,
	}
	manual.tasks = append(manual.tasks, task)
	return task
}

// Advance moves time forward by d, firing every due callback in time order.
// Callbacks may schedule or cancel tasks.
func (manual *Manual) Advance(d time.Duration) {
	manual.mu.Lock()
	target := manual.now.Add(d)
	manual.mu.Unlock()

	for {
		manual.mu.Lock()
		task := manual.nextDueLocked(target)
		if task == nil {
			manual.now = target
			manual.mu.Unlock()
			return
		}
		manual.now = task.next
		task.next = task.next.Add(task.interval)
		now := manual.now
		manual.mu.Unlock()

		task.fn(now)
	}
}

// Live returns the number of tasks that have not been cancelled.
func (manual *Manual) Live() int {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	live := 0
	for _, task := range manual.tasks {
		if !task.cancelled {
			live++
		}
	}
	return live
}

func (manual *Manual) nextDueLocked(target time.Time) *manualTask {
	kept := manual.tasks[:0]
	var due *manualTask
	for _, task := range manual.tasks {
		if task.cancelled {
			continue
		}
		kept = append(kept, task)
		if task.next.After(target) {
			continue
		}
		if due == nil || task.next.Before(due.next) {
			due = task
		}
	}
	manual.tasks = kept
	return due
}

func (task *manualTask) Cancel() {
	task.owner.mu.Lock()
	defer task.owner.mu.Unlock()
	task.cancelled = true
}
