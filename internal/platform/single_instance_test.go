package platform

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecondInstanceActivatesFirst(t *testing.T) {
	appName := fmt.Sprintf("IntervalTimerTest-%d", time.Now().UnixNano())

	guard, err := AcquireSingleInstance(appName)
	require.NoError(t, err)
	t.Cleanup(func() { _ = guard.Release() })

	activated := make(chan struct{}, 1)
	guard.Serve(func() { activated <- struct{}{} })

	_, err = AcquireSingleInstance(appName)
	require.ErrorIs(t, err, ErrAlreadyRunning)

	select {
	case <-activated:
	case <-time.After(2 * time.Second):
		t.Fatal("running instance was not activated")
	}
}

func TestReleaseAllowsReacquire(t *testing.T) {
	appName := fmt.Sprintf("IntervalTimerTest-%d", time.Now().UnixNano())

	guard, err := AcquireSingleInstance(appName)
	require.NoError(t, err)
	guard.Serve(nil)
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(appName)
	require.NoError(t, err)
	assert.Equal(t, guard.Address(), again.Address())
	require.NoError(t, again.Release())
}

func TestAddressForIsStable(t *testing.T) {
	assert.Equal(t, AddressFor("IntervalTimer"), AddressFor("IntervalTimer"))
	assert.NotEqual(t, AddressFor("IntervalTimer"), AddressFor("OtherApp"))
}
