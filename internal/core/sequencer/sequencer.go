// Package sequencer tracks which template is selected and which of its
// intervals is current.
package sequencer

import (
	"fmt"

	"intervaltimer/internal/core/model"
)

// TemplateSource resolves templates by name.
type TemplateSource interface {
	FindTemplate(name string) (model.Template, bool)
}

// Sequencer walks the intervals of the selected template. It never wraps:
// once the last interval is current, Advance fails until a template is
// selected again.
type Sequencer struct {
	source   TemplateSource
	selected model.Template
	index    int
	active   bool
}

// New creates a sequencer with no template selected.
func New(source TemplateSource) *Sequencer {
	return &Sequencer{source: source}
}

// SelectTemplate makes name the selected template and rewinds to its first
// interval. An unknown name leaves the sequencer unchanged.
func (sequencer *Sequencer) SelectTemplate(name string) (model.Interval, error) {
	template, ok := sequencer.source.FindTemplate(name)
	if !ok {
		return model.Interval{}, fmt.Errorf("%w: %q", model.ErrUnknownTemplate, name)
	}
	sequencer.selected = template
	sequencer.index = 0
	sequencer.active = true
	return template.Intervals[0], nil
}

// Selected returns the selected template.
func (sequencer *Sequencer) Selected() (model.Template, bool) {
	return sequencer.selected, sequencer.active
}

// CurrentInterval returns the interval at the current position.
func (sequencer *Sequencer) CurrentInterval() (model.Interval, bool) {
	if !sequencer.active {
		return model.Interval{}, false
	}
	return sequencer.selected.Intervals[sequencer.index], true
}

// Index returns the zero-based position within the selected template.
func (sequencer *Sequencer) Index() int {
	return sequencer.index
}

// HasNext reports whether another interval follows the current one.
func (sequencer *Sequencer) HasNext() bool {
	return sequencer.active && sequencer.index+1 < len(sequencer.selected.Intervals)
}

// Advance moves to the next interval and returns it.
func (sequencer *Sequencer) Advance() (model.Interval, error) {
	if !sequencer.HasNext() {
		return model.Interval{}, model.ErrNoMoreIntervals
	}
	sequencer.index++
	return sequencer.selected.Intervals[sequencer.index], nil
}
