package clock

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualFiresInOrder(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)
	manual := NewManual(start)

	var fired []time.Duration
	manual.Every(300*time.Millisecond, func(now time.Time) {
		fired = append(fired, now.Sub(start))
	})

	manual.Advance(time.Second)

	assert.Equal(t, []time.Duration{300 * time.Millisecond, 600 * time.Millisecond, 900 * time.Millisecond}, fired)
	assert.Equal(t, start.Add(time.Second), manual.Now())
}

func TestManualCancel(t *testing.T) {
	manual := NewManual(time.Unix(0, 0))

	calls := 0
	handle := manual.Every(100*time.Millisecond, func(time.Time) { calls++ })
	require.Equal(t, 1, manual.Live())

	manual.Advance(250 * time.Millisecond)
	handle.Cancel()
	handle.Cancel()
	manual.Advance(time.Second)

	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, manual.Live())
}

func TestManualCallbackCanReschedule(t *testing.T) {
	manual := NewManual(time.Unix(0, 0))

	var second int
	var first Handle
	first = manual.Every(100*time.Millisecond, func(time.Time) {
		first.Cancel()
		manual.Every(100*time.Millisecond, func(time.Time) { second++ })
	})

	manual.Advance(500 * time.Millisecond)

	assert.Equal(t, 4, second)
	assert.Equal(t, 1, manual.Live())
}

func TestTickerStopsAfterCancel(t *testing.T) {
	var calls atomic.Int32
	handle := NewTicker().Every(10*time.Millisecond, func(time.Time) {
		calls.Add(1)
	})

	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	handle.Cancel()

	time.Sleep(30 * time.Millisecond)
	settled := calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, calls.Load())
}

func TestTickerDispatch(t *testing.T) {
	var dispatched atomic.Int32
	ticker := NewTicker(WithDispatch(func(fn func()) {
		dispatched.Add(1)
		fn()
	}))

	handle := ticker.Every(5*time.Millisecond, func(time.Time) {})
	defer handle.Cancel()

	require.Eventually(t, func() bool { return dispatched.Load() > 0 }, time.Second, 5*time.Millisecond)
}
