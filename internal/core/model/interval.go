package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Interval is a named countdown segment of a template.
type Interval struct {
	Name     string
	Duration time.Duration
}

// Minutes returns the whole-minute part of the interval duration.
func (interval Interval) Minutes() int {
	minutes, _ := SplitDuration(interval.Duration)
	return minutes
}

// Seconds returns the seconds part (0-59) of the interval duration.
func (interval Interval) Seconds() int {
	_, seconds := SplitDuration(interval.Duration)
	return seconds
}

// Template is an ordered sequence of intervals selected as a unit.
type Template struct {
	Name      string
	Intervals []Interval
}

// SplitDuration splits a duration into whole minutes and seconds.
// Sub-second precision is truncated and negative durations clamp to zero.
func SplitDuration(duration time.Duration) (int, int) {
	if duration < 0 {
		duration = 0
	}
	total := int(duration / time.Second)
	return total / 60, total % 60
}

// JoinDuration is the inverse of SplitDuration.
func JoinDuration(minutes, seconds int) time.Duration {
	return time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second
}

// ParseClock parses an "m:ss" or "mm:ss" interval length.
func ParseClock(text string) (time.Duration, error) {
	value := strings.TrimSpace(text)
	minutesPart, secondsPart, found := strings.Cut(value, ":")
	if !found {
		return 0, fmt.Errorf("%w: %q is not m:ss", ErrInvalidDuration, text)
	}

	minutes, err := strconv.Atoi(minutesPart)
	if err != nil || minutes < 0 {
		return 0, fmt.Errorf("%w: bad minutes in %q", ErrInvalidDuration, text)
	}
	seconds, err := strconv.Atoi(secondsPart)
	if err != nil || seconds < 0 || seconds > 59 {
		return 0, fmt.Errorf("%w: bad seconds in %q", ErrInvalidDuration, text)
	}

	return JoinDuration(minutes, seconds), nil
}

// FormatClock renders minutes and seconds as zero-padded "MM:SS".
func FormatClock(minutes, seconds int) string {
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// FormatDuration renders a duration as zero-padded "MM:SS".
func FormatDuration(duration time.Duration) string {
	return FormatClock(SplitDuration(duration))
}
