package timekeeper

import (
	"fmt"
	"time"

	"intervaltimer/internal/core/model"
)

// Phase is the observable state of the timer, derived from the sequencer and
// countdown state.
type Phase string

const (
	PhaseInitial Phase = "initial"
	PhaseRunning Phase = "running"
	PhasePaused  Phase = "paused"
	// PhaseIntervalDone is transient: the next interval is activated within
	// the same tick.
	PhaseIntervalDone Phase = "interval_done"
	PhaseTemplateDone Phase = "template_done"
)

// ButtonLabel returns the primary button text for the phase.
func (phase Phase) ButtonLabel() string {
	switch phase {
	case PhaseInitial:
		return "Start"
	case PhaseRunning:
		return "Pause"
	case PhasePaused:
		return "Resume"
	case PhaseTemplateDone:
		return "Restart Template"
	default:
		return ""
	}
}

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventCountdownStarted EventType = "countdown-started"
	EventPaused           EventType = "timer-paused"
	EventResumed          EventType = "timer-resumed"
	EventReset            EventType = "timer-reset"
	EventIntervalComplete EventType = "interval-complete"
	EventTemplateDone     EventType = "template-done"
	EventProgress         EventType = "progress"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	// Interval is the completed interval for EventIntervalComplete.
	Interval model.Interval
	RunID    string
	At       time.Time
}

// Snapshot is everything a presentation layer needs to render the timer.
type Snapshot struct {
	Templates     []string
	TemplateName  string
	IntervalName  string
	IntervalIndex int
	IntervalCount int
	Minutes       int
	Seconds       int
	Phase         Phase
	HasNext       bool
	TemplateDone  bool
}

// ButtonLabel returns the primary button text.
func (snapshot Snapshot) ButtonLabel() string {
	return snapshot.Phase.ButtonLabel()
}

// MinutesText returns the remaining minutes as two digits.
func (snapshot Snapshot) MinutesText() string {
	return fmt.Sprintf("%02d", snapshot.Minutes)
}

// SecondsText returns the remaining seconds as two digits.
func (snapshot Snapshot) SecondsText() string {
	return fmt.Sprintf("%02d", snapshot.Seconds)
}

// Clock returns the remaining time as "MM:SS".
func (snapshot Snapshot) Clock() string {
	return model.FormatClock(snapshot.Minutes, snapshot.Seconds)
}
