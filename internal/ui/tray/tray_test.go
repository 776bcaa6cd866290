package tray

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intervaltimer/internal/core/timekeeper"
)

type fakeHost struct {
	menu *fyne.Menu
}

func (host *fakeHost) SetSystemTrayMenu(menu *fyne.Menu) {
	host.menu = menu
}

func findItem(menu *fyne.Menu, label string) *fyne.MenuItem {
	for _, item := range menu.Items {
		if item.Label == label {
			return item
		}
	}
	return nil
}

func TestRenderUpdatesStatusAndPrimary(t *testing.T) {
	test.NewTempApp(t)
	host := &fakeHost{}
	manager := New(host, Callbacks{})
	require.NotNil(t, host.menu)

	manager.Render(timekeeper.Snapshot{
		IntervalName: "Work for 25 minutes",
		Minutes:      24,
		Seconds:      9,
		Phase:        timekeeper.PhaseRunning,
	})

	assert.Equal(t, "Work for 25 minutes 24:09", manager.Status())
	assert.Equal(t, "Pause", manager.PrimaryLabel())
	assert.NotNil(t, findItem(host.menu, "Pause"))
}

func TestMenuItemsInvokeCallbacks(t *testing.T) {
	test.NewTempApp(t)
	host := &fakeHost{}
	var primary, shown, quit int
	New(host, Callbacks{
		OnPrimaryAction: func() { primary++ },
		OnShow:          func() { shown++ },
		OnQuit:          func() { quit++ },
	})

	findItem(host.menu, "Start").Action()
	findItem(host.menu, "Show timer").Action()
	findItem(host.menu, "Quit").Action()
	findItem(host.menu, "Preferences").Action()

	assert.Equal(t, 1, primary)
	assert.Equal(t, 1, shown)
	assert.Equal(t, 1, quit)
}

func TestTransientPhaseDisablesPrimary(t *testing.T) {
	test.NewTempApp(t)
	manager := New(&fakeHost{}, Callbacks{})

	manager.Render(timekeeper.Snapshot{Phase: timekeeper.PhasePaused, IntervalName: "Pause"})
	manager.Render(timekeeper.Snapshot{Phase: timekeeper.PhaseIntervalDone, IntervalName: "Pause"})

	assert.True(t, manager.primaryItem.Disabled)
	assert.Equal(t, "Resume", manager.PrimaryLabel())
}
