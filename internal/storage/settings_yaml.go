package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"intervaltimer/internal/core/catalog"
	"intervaltimer/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlInterval struct {
	Name     string `yaml:"name"`
	Interval string `yaml:"interval"`
}

type yamlTemplate struct {
	Name      string         `yaml:"name"`
	Intervals []yamlInterval `yaml:"intervals"`
}

type yamlSettings struct {
	LogLevel              string         `yaml:"log_level,omitempty"`
	LogFile               string         `yaml:"log_file,omitempty"`
	TickIntervalMillis    int            `yaml:"tick_interval_ms,omitempty"`
	DefaultMinutes        *int           `yaml:"default_minutes,omitempty"`
	DefaultSeconds        *int           `yaml:"default_seconds,omitempty"`
	LastTemplate          string         `yaml:"last_template,omitempty"`
	NotificationsDisabled bool           `yaml:"notifications_disabled,omitempty"`
	Templates             []yamlTemplate `yaml:"templates,omitempty"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// LoadSettingsFile reads preferences from path. A template catalog in the
// file is validated here so bad data is rejected before any timer exists.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	if _, err := settings.Catalog(); err != nil {
		return preferences.DefaultSettings(), fmt.Errorf("load templates from %s: %w", configPath, err)
	}
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// SaveSettingsFile writes preferences to path, creating its directory.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	defaultMinutes := settings.DefaultMinutes
	defaultSeconds := settings.DefaultSeconds
	fileData := yamlSettings{
		LogLevel:              settings.LogLevel,
		LogFile:               settings.LogFile,
		TickIntervalMillis:    int(settings.TickInterval / time.Millisecond),
		DefaultMinutes:        &defaultMinutes,
		DefaultSeconds:        &defaultSeconds,
		LastTemplate:          settings.LastTemplate,
		NotificationsDisabled: !settings.NotificationsEnabled,
		Templates:             toYamlTemplates(settings.Templates),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// ResolveConfigPath returns the settings file location for appName.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.LogLevel != "" {
		settings.LogLevel = fileData.LogLevel
	}
	settings.LogFile = fileData.LogFile
	if fileData.TickIntervalMillis > 0 {
		settings.TickInterval = time.Duration(fileData.TickIntervalMillis) * time.Millisecond
	}
	if fileData.DefaultMinutes != nil && *fileData.DefaultMinutes >= 0 {
		settings.DefaultMinutes = *fileData.DefaultMinutes
	}
	if fileData.DefaultSeconds != nil && *fileData.DefaultSeconds >= 0 && *fileData.DefaultSeconds < 60 {
		settings.DefaultSeconds = *fileData.DefaultSeconds
	}
	settings.LastTemplate = fileData.LastTemplate
	settings.NotificationsEnabled = !fileData.NotificationsDisabled
	if len(fileData.Templates) > 0 {
		settings.Templates = fromYamlTemplates(fileData.Templates)
	}
}

func fromYamlTemplates(templates []yamlTemplate) []catalog.Definition {
	definitions := make([]catalog.Definition, 0, len(templates))
	for _, template := range templates {
		definition := catalog.Definition{Name: template.Name}
		for _, interval := range template.Intervals {
			definition.Intervals = append(definition.Intervals, catalog.IntervalDefinition{
				Name:   interval.Name,
				Length: interval.Interval,
			})
		}
		definitions = append(definitions, definition)
	}
	return definitions
}

func toYamlTemplates(definitions []catalog.Definition) []yamlTemplate {
	templates := make([]yamlTemplate, 0, len(definitions))
	for _, definition := range definitions {
		template := yamlTemplate{Name: definition.Name}
		for _, interval := range definition.Intervals {
			template.Intervals = append(template.Intervals, yamlInterval{
				Name:     interval.Name,
				Interval: interval.Length,
			})
		}
		templates = append(templates, template)
	}
	return templates
}
