package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intervaltimer/internal/core/model"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := Default()

	assert.Equal(t, []string{"52 / 17", "Pomodoro"}, catalog.Names())

	pomodoro, ok := catalog.FindTemplate("Pomodoro")
	require.True(t, ok)
	require.Len(t, pomodoro.Intervals, 2)
	assert.Equal(t, "Work for 25 minutes", pomodoro.Intervals[0].Name)
	assert.Equal(t, 25*time.Minute, pomodoro.Intervals[0].Duration)
	assert.Equal(t, 5*time.Minute, pomodoro.Intervals[1].Duration)

	first, ok := catalog.First()
	require.True(t, ok)
	assert.Equal(t, "52 / 17", first.Name)
}

func TestFindTemplateUnknown(t *testing.T) {
	_, ok := Default().FindTemplate("unknown")
	assert.False(t, ok)
}

func TestParseRejectsInvalidData(t *testing.T) {
	tests := []struct {
		name        string
		definitions []Definition
	}{
		{
			name:        "template without intervals",
			definitions: []Definition{{Name: "Empty"}},
		},
		{
			name: "duplicate names",
			definitions: []Definition{
				{Name: "A", Intervals: []IntervalDefinition{{Name: "x", Length: "1:00"}}},
				{Name: "A", Intervals: []IntervalDefinition{{Name: "y", Length: "2:00"}}},
			},
		},
		{
			name:        "bad length",
			definitions: []Definition{{Name: "A", Intervals: []IntervalDefinition{{Name: "x", Length: "ten"}}}},
		},
		{
			name:        "seconds out of range",
			definitions: []Definition{{Name: "A", Intervals: []IntervalDefinition{{Name: "x", Length: "1:75"}}}},
		},
		{
			name:        "negative minutes",
			definitions: []Definition{{Name: "A", Intervals: []IntervalDefinition{{Name: "x", Length: "-1:00"}}}},
		},
		{
			name:        "unnamed interval",
			definitions: []Definition{{Name: "A", Intervals: []IntervalDefinition{{Name: " ", Length: "1:00"}}}},
		},
		{
			name:        "unnamed template",
			definitions: []Definition{{Name: "", Intervals: []IntervalDefinition{{Name: "x", Length: "1:00"}}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := Parse(tt.definitions)
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidCatalog)
			assert.Nil(t, catalog)
		})
	}
}

func TestNewRejectsFractionalSeconds(t *testing.T) {
	_, err := New([]model.Template{{
		Name:      "A",
		Intervals: []model.Interval{{Name: "x", Duration: 1500 * time.Millisecond}},
	}})
	assert.ErrorIs(t, err, model.ErrInvalidCatalog)
}

func TestNewCopiesIntervals(t *testing.T) {
	intervals := []model.Interval{{Name: "Work", Duration: time.Minute}}
	catalog, err := New([]model.Template{{Name: "A", Intervals: intervals}})
	require.NoError(t, err)

	intervals[0].Name = "changed"

	template, ok := catalog.FindTemplate("A")
	require.True(t, ok)
	assert.Equal(t, "Work", template.Intervals[0].Name)
}

func TestZeroLengthIntervalIsAllowed(t *testing.T) {
	catalog, err := Parse([]Definition{{Name: "Quick", Intervals: []IntervalDefinition{{Name: "Now", Length: "0:00"}}}})
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.Len())
}
