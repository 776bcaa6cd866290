package preferences

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window        fyne.Window
	settings      Settings
	onSave        func(Settings)
	defaultMin    *widget.Entry
	defaultSec    *widget.Entry
	notifications *widget.Check
	logLevel      *widget.Select
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Interval Timer Settings")

	defaultMin := widget.NewEntry()
	defaultSec := widget.NewEntry()
	notifications := widget.NewCheck("Desktop notifications", nil)
	logLevel := widget.NewSelect([]string{"debug", "info", "warn", "error"}, nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Timer without template", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Count down"), defaultMin, widget.NewLabel("min"), defaultSec, widget.NewLabel("sec")),
		notifications,
		container.NewHBox(widget.NewLabel("Log level"), logLevel),
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 220))

	prefs := &Window{
		window:        window,
		onSave:        onSave,
		defaultMin:    defaultMin,
		defaultSec:    defaultSec,
		notifications: notifications,
		logLevel:      logLevel,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = window.Hide

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.defaultMin.SetText(fmt.Sprintf("%d", settings.DefaultMinutes))
	prefs.defaultSec.SetText(fmt.Sprintf("%d", settings.DefaultSeconds))
	prefs.notifications.SetChecked(settings.NotificationsEnabled)
	prefs.logLevel.SetSelected(settings.LogLevel)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if minutes, ok := parseNonNegativeInt(prefs.defaultMin.Text); ok {
		settings.DefaultMinutes = minutes
	}
	if seconds, ok := parseNonNegativeInt(prefs.defaultSec.Text); ok && seconds < 60 {
		settings.DefaultSeconds = seconds
	}
	settings.NotificationsEnabled = prefs.notifications.Checked
	if prefs.logLevel.Selected != "" {
		settings.LogLevel = prefs.logLevel.Selected
	}

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parseNonNegativeInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0, false
	}
	return parsed, true
}
