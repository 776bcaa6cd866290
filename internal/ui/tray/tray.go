package tray

import (
	"fyne.io/fyne/v2"

	"intervaltimer/internal/core/timekeeper"
)

const menuTitle = "Interval Timer"

// MenuHost is the part of desktop.App the tray needs.
type MenuHost interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow          func()
	OnPrimaryAction func()
	OnPreferences   func()
	OnQuit          func()
}

// Manager mirrors the timer state in the system tray menu.
type Manager struct {
	host        MenuHost
	callbacks   Callbacks
	statusItem  *fyne.MenuItem
	primaryItem *fyne.MenuItem
	menu        *fyne.Menu
}

// New creates a tray manager and installs its menu on host.
func New(host MenuHost, callbacks Callbacks) *Manager {
	manager := &Manager{
		host:      host,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Timer: --:--", nil)
	manager.statusItem.Disabled = true

	manager.primaryItem = fyne.NewMenuItem("Start", func() {
		invoke(manager.callbacks.OnPrimaryAction)
	})

	manager.menu = fyne.NewMenu(menuTitle,
		manager.statusItem,
		manager.primaryItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Show timer", func() { invoke(manager.callbacks.OnShow) }),
		fyne.NewMenuItem("Preferences", func() { invoke(manager.callbacks.OnPreferences) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { invoke(manager.callbacks.OnQuit) }),
	)
	if host != nil {
		host.SetSystemTrayMenu(manager.menu)
	}
	return manager
}

// Render updates the status line and the primary action label.
// Call it on the fyne main thread.
func (manager *Manager) Render(snapshot timekeeper.Snapshot) {
	manager.statusItem.Label = snapshot.IntervalName + " " + snapshot.Clock()

	label := snapshot.ButtonLabel()
	manager.primaryItem.Disabled = label == ""
	if label != "" {
		manager.primaryItem.Label = label
	}
	manager.menu.Refresh()
}

// Status returns the current status line.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

// PrimaryLabel returns the current primary action label.
func (manager *Manager) PrimaryLabel() string {
	return manager.primaryItem.Label
}

func invoke(fn func()) {
	if fn != nil {
		fn()
	}
}
