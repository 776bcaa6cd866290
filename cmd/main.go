package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"

	"intervaltimer/internal/core/clock"
	"intervaltimer/internal/core/timekeeper"
	"intervaltimer/internal/logx"
	"intervaltimer/internal/notify"
	"intervaltimer/internal/platform"
	"intervaltimer/internal/storage"
	"intervaltimer/internal/ui/preferences"
	"intervaltimer/internal/ui/timerview"
	"intervaltimer/internal/ui/tray"
)

const (
	appName     = "IntervalTimer"
	appID       = "com.intervaltimer.app"
	eventBuffer = 64
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func run() error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			return nil
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	log, logCloser, err := logx.New(settings.LogConfig())
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closeQuietly(logCloser)

	templates, err := settings.Catalog()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(theme.HistoryIcon())

	keeper := timekeeper.New(templates, clock.NewTicker(clock.WithDispatch(fyne.Do)), settings.TimeKeeperConfig())
	keeper.SetLogger(log)
	notifier := notify.NewDesktop(fyneApp, notify.WithDisabled(!settings.NotificationsEnabled))
	keeper.SetNotifier(notifier)
	defer keeper.Close()

	saveSettings := func() {
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Warn("save settings failed", logx.Err(err))
		}
	}

	mainWindow := fyneApp.NewWindow("Interval Timer")
	view := timerview.New(keeper, log)
	view.SetOnTemplateSelected(func(name string) {
		settings.LastTemplate = name
		saveSettings()
	})
	mainWindow.SetContent(view.Content())
	mainWindow.Resize(fyne.NewSize(340, 300))

	showMain := func() {
		mainWindow.Show()
		mainWindow.RequestFocus()
	}

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		keeper.Configure(settings.DefaultMinutes, settings.DefaultSeconds)
		notifier.SetDisabled(!settings.NotificationsEnabled)
		saveSettings()
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:          showMain,
			OnPrimaryAction: keeper.PrimaryAction,
			OnPreferences:   prefsWindow.Show,
			OnQuit:          fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(theme.HistoryIcon())
		mainWindow.SetCloseIntercept(mainWindow.Hide)
	} else {
		log.Info("system tray unsupported on this platform")
	}

	render := func(snapshot timekeeper.Snapshot) {
		view.Render(snapshot)
		if trayManager != nil {
			trayManager.Render(snapshot)
		}
	}
	render(keeper.Snapshot())

	events := keeper.Subscribe(eventBuffer)
	go func() {
		for event := range events {
			snapshot := event.Snapshot
			fyne.Do(func() { render(snapshot) })
		}
	}()

	guard.Serve(func() { fyne.Do(showMain) })

	log.Info("interval timer started",
		logx.Int("templates", templates.Len()),
		logx.String("template", keeper.Snapshot().TemplateName),
	)
	mainWindow.Show()
	fyneApp.Run()
	return nil
}

func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
