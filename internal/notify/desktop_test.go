package notify

import (
	"context"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesktopRequiresPermission(t *testing.T) {
	app := test.NewTempApp(t)
	desktop := NewDesktop(app)

	err := desktop.Notify(context.Background(), "title", "body")
	assert.ErrorIs(t, err, ErrNotPermitted)

	permission, err := desktop.RequestPermission(context.Background())
	require.NoError(t, err)
	assert.Equal(t, PermissionGranted, permission)

	expected := fyne.NewNotification("Time's up for Work!", "Your time of 25 minutes and 0 seconds is up!")
	test.AssertNotificationSent(t, expected, func() {
		require.NoError(t, desktop.Notify(context.Background(), expected.Title, expected.Content))
	})
}

func TestDesktopPermissionOutcomes(t *testing.T) {
	permission, err := NewDesktop(nil).RequestPermission(context.Background())
	require.NoError(t, err)
	assert.Equal(t, PermissionUnavailable, permission)

	permission, err = NewDesktop(test.NewTempApp(t), WithDisabled(true)).RequestPermission(context.Background())
	require.NoError(t, err)
	assert.Equal(t, PermissionDenied, permission)
}

func TestDesktopRateLimit(t *testing.T) {
	desktop := NewDesktop(test.NewTempApp(t), WithRate(time.Hour, 2))
	_, err := desktop.RequestPermission(context.Background())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, desktop.Notify(ctx, "a", "1"))
	require.NoError(t, desktop.Notify(ctx, "b", "2"))
	assert.ErrorIs(t, desktop.Notify(ctx, "c", "3"), ErrRateLimited)
}

func TestDesktopSetDisabledRevokesPermission(t *testing.T) {
	desktop := NewDesktop(test.NewTempApp(t))
	ctx := context.Background()
	_, err := desktop.RequestPermission(ctx)
	require.NoError(t, err)

	desktop.SetDisabled(true)
	assert.ErrorIs(t, desktop.Notify(ctx, "a", "1"), ErrNotPermitted)

	desktop.SetDisabled(false)
	permission, err := desktop.RequestPermission(ctx)
	require.NoError(t, err)
	assert.Equal(t, PermissionGranted, permission)
	assert.NoError(t, desktop.Notify(ctx, "b", "2"))
}
