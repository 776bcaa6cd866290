package preferences

import (
	"time"

	"intervaltimer/internal/core/catalog"
	"intervaltimer/internal/core/clock"
	"intervaltimer/internal/core/model"
	"intervaltimer/internal/core/timekeeper"
	"intervaltimer/internal/logx"
)

// Settings defines editable user preferences.
type Settings struct {
	LogLevel     string
	LogFile      string
	TickInterval time.Duration

	DefaultMinutes int
	DefaultSeconds int
	LastTemplate   string

	NotificationsEnabled bool

	Templates []catalog.Definition
}

// DefaultSettings returns default settings for the timer.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:             "info",
		TickInterval:         clock.DefaultTickInterval,
		DefaultMinutes:       5,
		DefaultSeconds:       0,
		NotificationsEnabled: true,
		Templates:            catalog.DefaultDefinitions(),
	}
}

// Catalog validates the configured templates.
func (settings Settings) Catalog() (*catalog.Catalog, error) {
	return catalog.Parse(settings.Templates)
}

// TimeKeeperConfig converts settings to a timekeeper.Config.
func (settings Settings) TimeKeeperConfig() timekeeper.Config {
	return timekeeper.Config{
		TickInterval: settings.TickInterval,
		DefaultInterval: model.Interval{
			Name:     timekeeper.DefaultInterval.Name,
			Duration: model.JoinDuration(settings.DefaultMinutes, settings.DefaultSeconds),
		},
		InitialTemplate: settings.LastTemplate,
	}
}

// LogConfig converts settings to a logx.Config.
func (settings Settings) LogConfig() logx.Config {
	return logx.Config{
		Level:    settings.LogLevel,
		Console:  true,
		FilePath: settings.LogFile,
	}
}
