package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{input: "25:00", want: 25 * time.Minute},
		{input: "5:00", want: 5 * time.Minute},
		{input: "00:08", want: 8 * time.Second},
		{input: " 1:30 ", want: 90 * time.Second},
		{input: "0:00", want: 0},
		{input: "120:59", want: 120*time.Minute + 59*time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseClockInvalid(t *testing.T) {
	for _, input := range []string{"", "25", "a:00", "1:60", "1:-1", "-2:00", "1:00:00"} {
		_, err := ParseClock(input)
		assert.ErrorIs(t, err, ErrInvalidDuration, "input %q", input)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "07:03", FormatClock(7, 3))
	assert.Equal(t, "00:00", FormatClock(0, 0))
	assert.Equal(t, "52:00", FormatDuration(52*time.Minute))
	assert.Equal(t, "125:09", FormatDuration(125*time.Minute+9*time.Second))
}

func TestIntervalSplit(t *testing.T) {
	interval := Interval{Name: "Work", Duration: 25*time.Minute + 7*time.Second}
	assert.Equal(t, 25, interval.Minutes())
	assert.Equal(t, 7, interval.Seconds())
	assert.Equal(t, interval.Duration, JoinDuration(interval.Minutes(), interval.Seconds()))
}
