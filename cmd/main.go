package main

import (
	"io"
	"log"
	"os"
	"runtime/debug"
	"time"

	"takebreak/internal/config"
	"takebreak/internal/core/model"
	"takebreak/internal/core/position"
	"takebreak/internal/core/timekeeper"
	"takebreak/internal/platform"
	"takebreak/internal/storage"
	"takebreak/internal/timeutil"
	"takebreak/internal/ui/overlay"
	"takebreak/internal/ui/timerwidget"
	"takebreak/internal/ui/tray"
	"takebreak/internal/ui/welcome"
	"takebreak/internal/wallpaper"
	"takebreak/resources"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const appName = "takebreak"

// application wires the timer core to the UI surfaces and owns the
// tick loop. The time keeper does no scheduling of its own.
type application struct {
	fyneApp    fyne.App
	desktopApp desktop.App
	config     config.Config
	settings   *storage.Settings
	keeper     *timekeeper.TimeKeeper
	policy     *timekeeper.Policy
	overlay    *overlay.Window
	widget     *timerwidget.Widget
	tray       *tray.Manager
	wallpapers *wallpaper.Manager
	hotkey     *platform.Hotkey
	anchor     position.Anchor
	stopTicks  chan struct{}
}

func main() {
	defer func() {
		if recovered := recover(); recovered != nil {
			log.Printf("panic: %v\n%s", recovered, debug.Stack())
			os.Exit(1)
		}
	}()

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	appConfig, err := config.Load(appName)
	if err != nil {
		log.Printf("warning: config load: %v", err)
	}
	if err := appConfig.EnsureDirs(); err != nil {
		log.Printf("warning: data dirs: %v", err)
	}
	setupLogging(appConfig)

	database, err := storage.Open(appConfig.SettingsDBPath())
	if err != nil {
		log.Printf("warning: settings database unavailable, keeping settings in memory: %v", err)
		database = nil
	} else {
		defer func() {
			_ = database.Close()
		}()
	}
	settings := storage.NewSettings(database)

	fyneApp := fyneapp.NewWithID("com.takebreak.app")
	fyneApp.SetIcon(resources.AppIcon())
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		log.Printf("system tray unsupported on this platform")
		return
	}

	timerConfig := model.DefaultTimerConfig()
	timerConfig.WorkDuration = time.Duration(settings.WorkDuration()) * time.Minute
	keeper := timekeeper.New(timerConfig, timekeeper.Config{})
	defer keeper.Close()

	app := &application{
		fyneApp:    fyneApp,
		desktopApp: desktopApp,
		config:     appConfig,
		settings:   settings,
		keeper:     keeper,
		policy:     timekeeper.NewPolicy(keeper),
		anchor:     position.BottomRight,
		stopTicks:  make(chan struct{}),
	}

	app.buildWallpapers()
	app.buildWindows()
	app.buildTray()
	app.registerHotkey()
	defer app.unregisterHotkey()

	events := keeper.Subscribe(8)
	go app.consumeEvents(events)
	go app.runTicks()
	defer close(app.stopTicks)

	if settings.IsFirstRun() {
		welcome.New(fyneApp, app.completeFirstRun, func() {
			log.Printf("first run cancelled")
			fyneApp.Quit()
		}).Show()
	} else {
		app.showIdleScreen()
	}

	fyneApp.Run()
}

func setupLogging(appConfig config.Config) {
	logFile, err := os.OpenFile(appConfig.LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("warning: log file: %v", err)
		return
	}
	log.SetOutput(io.MultiWriter(os.Stderr, logFile))
}

func (app *application) buildWallpapers() {
	remote := wallpaper.NewRemoteGetter(
		app.config.WallpaperURL,
		app.config.PreloadWidth,
		app.config.PreloadHeight,
		app.config.WallpaperCachePath(),
		app.config.FetchTimeout,
	)
	local := wallpaper.NewLocalGetter(app.config.WallpapersDir())
	app.wallpapers = wallpaper.NewManager(
		remote,
		local,
		app.config.WallpaperCachePath(),
		app.config.FetchTimeout,
		app.settings.UseOnlineWallpapers(),
	)
	app.wallpapers.SetOnLoaded(func(path string) {
		fyne.Do(func() {
			app.overlay.SetWallpaperPath(path)
		})
	})
}

func (app *application) buildWindows() {
	trayWindow := app.fyneApp.NewWindow("Take Break")
	trayWindow.SetContent(widget.NewLabel("Take Break is running in the system tray."))
	trayWindow.SetCloseIntercept(trayWindow.Hide)
	trayWindow.Hide()
	app.desktopApp.SetSystemTrayWindow(trayWindow)

	app.overlay = overlay.New(app.fyneApp, overlay.Config{
		MaxFocusLength: app.config.MaxFocusLength,
	})
	app.overlay.SetOnSubmit(app.startWork)
	app.overlay.SetOnCloseRequested(app.quit)
	app.overlay.SetWallpaperPath(app.wallpapers.Current())

	app.widget = timerwidget.New(app.fyneApp, app.config.RedThreshold)
}

func (app *application) buildTray() {
	app.tray = tray.New(app.desktopApp, tray.Callbacks{
		OnWorkModeChange: func(minutes int) {
			app.settings.SetWorkDuration(minutes)
			app.keeper.SetWorkDuration(time.Duration(minutes) * time.Minute)
			app.tray.SetWorkMode(minutes)
			log.Printf("work mode set to %d minutes, applies to the next session", minutes)
		},
		OnToggleAutostart:        app.toggleAutostart,
		OnToggleOnlineWallpapers: app.toggleOnlineWallpapers,
		OnMoveTimer:              app.cycleTimerPosition,
		OnQuit:                   app.quit,
	})
	app.desktopApp.SetSystemTrayIcon(resources.AppIcon())

	service := platform.NewService()
	app.tray.SetAutostart(service.IsAutostartEnabled(appName))
	app.tray.SetOnlineWallpapers(app.settings.UseOnlineWallpapers())
	app.tray.SetWorkMode(app.settings.WorkDuration())
	app.tray.SetStatus("resting")
}

func (app *application) registerHotkey() {
	combo := app.settings.MoveTimerHotkey()
	if combo == "" {
		combo = app.config.DefaultHotkey
	}
	binding, err := platform.RegisterHotkey(combo)
	if err != nil {
		log.Printf("warning: hotkey %q: %v", combo, err)
		app.tray.SetMoveTimerHotkey("")
		return
	}
	app.hotkey = binding
	app.settings.SetMoveTimerHotkey(combo)
	app.tray.SetMoveTimerHotkey(combo)

	go func() {
		for range binding.Keydown() {
			fyne.Do(app.cycleTimerPosition)
		}
	}()
}

func (app *application) unregisterHotkey() {
	if app.hotkey == nil {
		return
	}
	if err := app.hotkey.Unregister(); err != nil {
		log.Printf("warning: hotkey unregister: %v", err)
	}
}

// runTicks drives all timer transitions. Nothing else advances the
// time keeper.
func (app *application) runTicks() {
	ticker := time.NewTicker(app.config.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			app.keeper.Tick()
		case <-app.stopTicks:
			return
		}
	}
}

func (app *application) consumeEvents(events <-chan timekeeper.Event) {
	for event := range events {
		event := event
		fyne.Do(func() {
			app.handleEvent(event)
		})
	}
}

func (app *application) handleEvent(event timekeeper.Event) {
	switch event.Type {
	case timekeeper.EventWorkStarted:
		app.overlay.SetBlocking(false)
		app.overlay.Hide()
		app.widget.SetFocus(app.settings.Focus())
		app.widget.SetRemaining(event.Remaining)
		app.widget.Show()
		app.moveWidget()
		app.tray.SetInBreak(false)
		app.wallpapers.Preload()

	case timekeeper.EventBreakStarted:
		app.overlay.SetBlocking(true)
		app.overlay.SetWallpaperPath(app.wallpapers.Current())
		app.overlay.ShowBreak(model.BreakDurationMinutes)
		app.widget.Hide()
		app.tray.SetInBreak(true)
		app.tray.SetStatus("on a break")

	case timekeeper.EventBreakEnded:
		app.overlay.SetBlocking(false)
		app.showIdleScreen()
		app.tray.SetInBreak(false)
		app.tray.SetStatus("resting")

	case timekeeper.EventProgress:
		app.handleProgress(event)
	}
}

func (app *application) handleProgress(event timekeeper.Event) {
	switch event.State {
	case timekeeper.StateWork:
		app.widget.SetRemaining(event.Remaining)
		app.tray.SetStatus("working, break in " + timeutil.FormatClock(event.Remaining))
	case timekeeper.StateBreak:
		app.overlay.SetBreakRemaining(event.Remaining)
	case timekeeper.StateIdle:
		app.overlay.SetExtraRest(event.ExtraRest)
	}
}

func (app *application) showIdleScreen() {
	app.overlay.ShowInitial(app.settings.WorkDuration(), app.settings.Focus())
	if elapsed, resting := app.keeper.ExtraRestElapsed(); resting {
		app.overlay.SetExtraRest(elapsed)
	} else {
		app.overlay.HideExtraRest()
	}
}

func (app *application) startWork(focus string) {
	if !app.policy.CanStartWork() {
		log.Printf("warning: work start rejected during break")
		return
	}
	app.settings.SaveFocus(focus)
	duration := time.Duration(app.settings.WorkDuration()) * time.Minute
	if !app.keeper.StartWork(duration) {
		log.Printf("warning: work start rejected by timer")
	}
}

func (app *application) cycleTimerPosition() {
	app.anchor = position.Next(app.anchor)
	app.moveWidget()
	log.Printf("timer moved to %s", app.anchor)
}

func (app *application) moveWidget() {
	width, height, ok := platform.ScreenSize()
	if !ok {
		width, height = app.config.PreloadWidth, app.config.PreloadHeight
	}
	app.widget.MoveTo(app.anchor, width, height)
}

func (app *application) toggleAutostart(enabled bool) {
	service := platform.NewService()
	if enabled {
		execPath, err := os.Executable()
		if err != nil {
			log.Printf("warning: autostart: %v", err)
			return
		}
		if err := service.EnableAutostart(appName, execPath); err != nil {
			log.Printf("warning: autostart enable: %v", err)
		}
	} else {
		if err := service.DisableAutostart(appName); err != nil {
			log.Printf("warning: autostart disable: %v", err)
		}
	}
	app.tray.SetAutostart(service.IsAutostartEnabled(appName))
}

func (app *application) toggleOnlineWallpapers(enabled bool) {
	app.settings.SetUseOnlineWallpapers(enabled)
	app.wallpapers.SetUseOnline(enabled)
	app.tray.SetOnlineWallpapers(enabled)
}

func (app *application) completeFirstRun(choice welcome.Choice) {
	app.settings.SetWorkDuration(choice.WorkMinutes)
	app.settings.SetUseOnlineWallpapers(choice.UseOnlineWallpapers)
	app.wallpapers.SetUseOnline(choice.UseOnlineWallpapers)
	app.settings.MarkFirstRunComplete()
	app.keeper.SetWorkDuration(time.Duration(choice.WorkMinutes) * time.Minute)
	app.tray.SetWorkMode(choice.WorkMinutes)
	app.tray.SetOnlineWallpapers(choice.UseOnlineWallpapers)
	app.showIdleScreen()
}

func (app *application) quit() {
	if !app.policy.CanQuit() {
		log.Printf("warning: quit rejected during break")
		return
	}
	app.fyneApp.Quit()
}
