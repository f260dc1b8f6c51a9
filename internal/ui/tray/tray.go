package tray

import (
	"fmt"

	"takebreak/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnWorkModeChange         func(minutes int)
	OnToggleAutostart        func(enabled bool)
	OnToggleOnlineWallpapers func(enabled bool)
	OnMoveTimer              func()
	OnQuit                   func()
}

// Manager handles system tray state.
type Manager struct {
	app            desktop.App
	statusItem     *fyne.MenuItem
	modeItem       *fyne.MenuItem
	modeItems      map[int]*fyne.MenuItem
	autostartItem  *fyne.MenuItem
	wallpapersItem *fyne.MenuItem
	moveItem       *fyne.MenuItem
	quitItem       *fyne.MenuItem
	callbacks      Callbacks
	statusLabel    string
	inBreak        bool
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		modeItems: map[int]*fyne.MenuItem{},
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	manager.modeItem = fyne.NewMenuItem("Work mode", nil)
	modeChildren := make([]*fyne.MenuItem, 0, len(model.AvailableWorkModes))
	for _, minutes := range model.AvailableWorkModes {
		minutes := minutes
		item := fyne.NewMenuItem(fmt.Sprintf("%d minutes", minutes), func() {
			if manager.callbacks.OnWorkModeChange != nil {
				manager.callbacks.OnWorkModeChange(minutes)
			}
		})
		manager.modeItems[minutes] = item
		modeChildren = append(modeChildren, item)
	}
	manager.modeItem.ChildMenu = fyne.NewMenu("", modeChildren...)

	manager.autostartItem = fyne.NewMenuItem("Start with system", func() {
		if manager.callbacks.OnToggleAutostart != nil {
			manager.callbacks.OnToggleAutostart(!manager.autostartItem.Checked)
		}
	})

	manager.wallpapersItem = fyne.NewMenuItem("Online wallpapers", func() {
		if manager.callbacks.OnToggleOnlineWallpapers != nil {
			manager.callbacks.OnToggleOnlineWallpapers(!manager.wallpapersItem.Checked)
		}
	})

	manager.moveItem = fyne.NewMenuItem("Move timer", func() {
		if manager.callbacks.OnMoveTimer != nil {
			manager.callbacks.OnMoveTimer()
		}
	})

	manager.quitItem = fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})

	manager.refreshMenu()

	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

// SetWorkMode marks the active mode in the submenu.
func (manager *Manager) SetWorkMode(minutes int) {
	for mode, item := range manager.modeItems {
		item.Checked = mode == minutes
	}
	manager.refreshMenu()
}

// SetAutostart updates the autostart checkmark.
func (manager *Manager) SetAutostart(enabled bool) {
	manager.autostartItem.Checked = enabled
	manager.refreshMenu()
}

// SetOnlineWallpapers updates the wallpapers checkmark.
func (manager *Manager) SetOnlineWallpapers(enabled bool) {
	manager.wallpapersItem.Checked = enabled
	manager.refreshMenu()
}

// SetMoveTimerHotkey shows the hotkey next to the move action. Pass
// an empty combo when no hotkey could be registered.
func (manager *Manager) SetMoveTimerHotkey(combo string) {
	if combo == "" {
		manager.moveItem.Label = "Move timer"
	} else {
		manager.moveItem.Label = fmt.Sprintf("Move timer (%s)", combo)
	}
	manager.refreshMenu()
}

// SetInBreak disables quitting while a break is running. The quit
// handler re-checks the policy before acting.
func (manager *Manager) SetInBreak(inBreak bool) {
	manager.inBreak = inBreak
	manager.quitItem.Disabled = inBreak
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("Take Break",
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.modeItem,
		manager.autostartItem,
		manager.wallpapersItem,
		manager.moveItem,
		fyne.NewMenuItemSeparator(),
		manager.quitItem,
	))
}
