package timekeeper

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"intervaltimer/internal/core/catalog"
	"intervaltimer/internal/core/clock"
	"intervaltimer/internal/core/countdown"
	"intervaltimer/internal/core/model"
	"intervaltimer/internal/core/sequencer"
	"intervaltimer/internal/logx"
	"intervaltimer/internal/notify"
)

const notifyTimeout = 5 * time.Second

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
	// DefaultInterval is counted down while no template is selected.
	DefaultInterval model.Interval
	// InitialTemplate is selected on construction; the first catalog
	// template is used when it is empty or unknown.
	InitialTemplate string
}

// DefaultInterval is used when Config.DefaultInterval is empty.
var DefaultInterval = model.Interval{Name: "Timer", Duration: 5 * time.Minute}

// TimeKeeper is the state machine that runs the intervals of a template.
// Commands and ticks are serialized by mu; observers are notified through
// non-blocking event channels.
type TimeKeeper struct {
	mu        sync.Mutex
	options   Config
	catalog   *catalog.Catalog
	sequencer *sequencer.Sequencer
	engine    *countdown.Engine
	notifier  notify.Notifier
	log       logx.Logger
	fallback  model.Interval
	runID     string
	events    []chan Event
	closed    bool
}

type notification struct {
	title string
	body  string
}

// New creates a TimeKeeper over templates, driven by scheduler. The initial
// template's first interval is activated; the timer starts in PhaseInitial.
func New(templates *catalog.Catalog, scheduler clock.Scheduler, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = clock.DefaultTickInterval
	}
	fallback := options.DefaultInterval
	if fallback.Name == "" {
		fallback = DefaultInterval
	}

	keeper := &TimeKeeper{
		options:   options,
		catalog:   templates,
		sequencer: sequencer.New(templates),
		log:       logx.Nop(),
		fallback:  fallback,
	}
	keeper.engine = countdown.New(scheduler, options.TickInterval, keeper.handleTick)

	name := options.InitialTemplate
	if _, ok := templates.FindTemplate(name); !ok {
		if first, ok := templates.First(); ok {
			name = first.Name
		}
	}
	keeper.mu.Lock()
	keeper.selectLocked(name)
	keeper.mu.Unlock()
	return keeper
}

// SetNotifier injects the platform notification capability.
func (keeper *TimeKeeper) SetNotifier(notifier notify.Notifier) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.notifier = notifier
}

// SetLogger injects a logger.
func (keeper *TimeKeeper) SetLogger(log logx.Logger) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.log = log.With(logx.String("component", "timekeeper"))
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		close(ch)
		return ch
	}
	keeper.events = append(keeper.events, ch)
	return ch
}

// Close stops the countdown and closes observers. Commands after Close are
// ignored.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.closed = true
	keeper.engine.Pause()
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Snapshot returns the current observable state.
func (keeper *TimeKeeper) Snapshot() Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.snapshotLocked()
}

// PrimaryAction performs whatever the primary button currently offers:
// start, pause, resume or restart the template.
func (keeper *TimeKeeper) PrimaryAction() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return
	}

	switch phase := keeper.phaseLocked(); phase {
	case PhaseInitial:
		keeper.activateLocked(keeper.currentIntervalLocked())
		keeper.engine.Start()
		keeper.emitLocked(Event{Type: EventCountdownStarted})
	case PhaseRunning:
		keeper.engine.Pause()
		keeper.emitLocked(Event{Type: EventPaused})
	case PhasePaused:
		keeper.engine.Start()
		keeper.emitLocked(Event{Type: EventResumed})
	case PhaseTemplateDone:
		keeper.restartLocked()
	default:
		keeper.log.Debug("primary action ignored", logx.String("phase", string(phase)))
	}
}

// SelectTemplate switches to the named template and rewinds it. An unknown
// name returns model.ErrUnknownTemplate and changes nothing.
func (keeper *TimeKeeper) SelectTemplate(name string) error {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return nil
	}
	if _, ok := keeper.catalog.FindTemplate(name); !ok {
		return fmt.Errorf("select template: %w: %q", model.ErrUnknownTemplate, name)
	}
	keeper.engine.Pause()
	keeper.selectLocked(name)
	return nil
}

// Configure sets the interval counted down while no template is selected.
// Out-of-range seconds carry into minutes; negative values count as zero.
func (keeper *TimeKeeper) Configure(minutes, seconds int) {
	minutes = max(minutes, 0)
	seconds = max(seconds, 0)

	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.fallback.Duration = model.JoinDuration(minutes, seconds)
	if keeper.closed {
		return
	}
	if _, ok := keeper.sequencer.Selected(); !ok {
		keeper.engine.Pause()
		keeper.activateLocked(keeper.fallback)
	}
}

// RequestNotificationPermission asks the notifier for permission. The
// outcome is only logged; it never changes the timer state.
func (keeper *TimeKeeper) RequestNotificationPermission(ctx context.Context) {
	keeper.mu.Lock()
	notifier := keeper.notifier
	log := keeper.log
	keeper.mu.Unlock()

	if notifier == nil {
		log.Info("notifications are not available in this environment")
		return
	}

	permission, err := notifier.RequestPermission(ctx)
	if err != nil {
		log.Warn("notification permission request failed", logx.Err(err))
		return
	}
	switch permission {
	case notify.PermissionGranted:
		log.Info("notification permission granted")
	case notify.PermissionUnavailable:
		log.Info("notifications are not available in this environment")
	default:
		log.Info("unable to get permission to notify", logx.String("permission", string(permission)))
	}
}

func (keeper *TimeKeeper) handleTick(chain uint64, now time.Time) {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}

	beforeMinutes, beforeSeconds := keeper.engine.Remaining()
	done := keeper.engine.Tick(chain, now)
	minutes, seconds := keeper.engine.Remaining()
	if minutes != beforeMinutes || seconds != beforeSeconds {
		keeper.emitLocked(Event{Type: EventProgress, At: now})
	}

	var pending *notification
	if done {
		pending = keeper.completeIntervalLocked(now)
	}
	notifier := keeper.notifier
	log := keeper.log
	keeper.mu.Unlock()

	if pending != nil && notifier != nil {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := notifier.Notify(ctx, pending.title, pending.body); err != nil {
			log.Warn("notification failed", logx.String("title", pending.title), logx.Err(err))
		}
	}
}

// completeIntervalLocked moves past a finished interval: the next interval
// starts immediately, or the template stops in PhaseTemplateDone.
func (keeper *TimeKeeper) completeIntervalLocked(now time.Time) *notification {
	finished := keeper.currentIntervalLocked()
	keeper.log.Info("interval complete",
		logx.String("interval", finished.Name),
		logx.Duration("duration", finished.Duration))
	keeper.emitLocked(Event{Type: EventIntervalComplete, Interval: finished, At: now})

	pending := &notification{
		title: fmt.Sprintf("Time's up for %s!", finished.Name),
		body: fmt.Sprintf("Your time of %d minutes and %d seconds is up!",
			finished.Minutes(), finished.Seconds()),
	}

	if keeper.sequencer.HasNext() {
		next, err := keeper.sequencer.Advance()
		if err != nil {
			keeper.log.Error("advance interval", logx.Err(err))
			keeper.engine.Pause()
			return pending
		}
		keeper.activateLocked(next)
		keeper.engine.Start()
		keeper.emitLocked(Event{Type: EventCountdownStarted, At: now})
		return pending
	}

	keeper.engine.Pause()
	keeper.log.Info("template complete", logx.String("template", keeper.templateNameLocked()))
	keeper.emitLocked(Event{Type: EventTemplateDone, At: now})
	return pending
}

func (keeper *TimeKeeper) restartLocked() {
	template, ok := keeper.sequencer.Selected()
	if !ok {
		keeper.runID = uuid.NewString()
		keeper.activateLocked(keeper.fallback)
		return
	}
	keeper.selectLocked(template.Name)
}

// selectLocked selects a template known to exist, or the fallback interval
// when name is empty, and activates its first interval.
func (keeper *TimeKeeper) selectLocked(name string) {
	keeper.runID = uuid.NewString()
	if name == "" {
		keeper.activateLocked(keeper.fallback)
		return
	}
	first, err := keeper.sequencer.SelectTemplate(name)
	if err != nil {
		keeper.log.Error("select template", logx.Err(err))
		keeper.activateLocked(keeper.fallback)
		return
	}
	keeper.log.Debug("template selected", logx.String("template", name), logx.String("run", keeper.runID))
	keeper.activateLocked(first)
}

func (keeper *TimeKeeper) activateLocked(interval model.Interval) {
	keeper.engine.Activate(interval)
	keeper.emitLocked(Event{Type: EventReset})
}

func (keeper *TimeKeeper) currentIntervalLocked() model.Interval {
	if interval, ok := keeper.sequencer.CurrentInterval(); ok {
		return interval
	}
	return keeper.fallback
}

func (keeper *TimeKeeper) templateNameLocked() string {
	template, _ := keeper.sequencer.Selected()
	return template.Name
}

func (keeper *TimeKeeper) phaseLocked() Phase {
	switch {
	case keeper.engine.Running():
		return PhaseRunning
	case keeper.engine.Completed():
		if keeper.sequencer.HasNext() {
			return PhaseIntervalDone
		}
		return PhaseTemplateDone
	case keeper.engine.IsAtConfigured():
		return PhaseInitial
	default:
		return PhasePaused
	}
}

func (keeper *TimeKeeper) snapshotLocked() Snapshot {
	minutes, seconds := keeper.engine.Remaining()
	phase := keeper.phaseLocked()
	snapshot := Snapshot{
		Templates:     keeper.catalog.Names(),
		TemplateName:  keeper.templateNameLocked(),
		IntervalName:  keeper.currentIntervalLocked().Name,
		IntervalIndex: keeper.sequencer.Index(),
		IntervalCount: 1,
		Minutes:       minutes,
		Seconds:       seconds,
		Phase:         phase,
		HasNext:       keeper.sequencer.HasNext(),
		TemplateDone:  phase == PhaseTemplateDone,
	}
	if template, ok := keeper.sequencer.Selected(); ok {
		snapshot.IntervalCount = len(template.Intervals)
	}
	return snapshot
}

func (keeper *TimeKeeper) emitLocked(event Event) {
	if event.At.IsZero() {
		event.At = time.Now()
	}
	event.RunID = keeper.runID
	event.Snapshot = keeper.snapshotLocked()

	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
