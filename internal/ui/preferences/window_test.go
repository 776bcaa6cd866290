package preferences

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAppliesEditedValues(t *testing.T) {
	app := test.NewTempApp(t)

	var saved *Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = &settings
	})

	prefs.defaultMin.SetText("2")
	prefs.defaultSec.SetText("15")
	prefs.notifications.SetChecked(false)
	prefs.logLevel.SetSelected("debug")
	prefs.handleSave()

	require.NotNil(t, saved)
	assert.Equal(t, 2, saved.DefaultMinutes)
	assert.Equal(t, 15, saved.DefaultSeconds)
	assert.False(t, saved.NotificationsEnabled)
	assert.Equal(t, "debug", saved.LogLevel)
	assert.Equal(t, DefaultSettings().Templates, saved.Templates)
}

func TestSaveIgnoresInvalidNumbers(t *testing.T) {
	app := test.NewTempApp(t)

	var saved Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) { saved = settings })

	prefs.defaultMin.SetText("-3")
	prefs.defaultSec.SetText("75")
	prefs.handleSave()

	assert.Equal(t, 5, saved.DefaultMinutes)
	assert.Equal(t, 0, saved.DefaultSeconds)
}
