package overlay

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"takebreak/internal/timeutil"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Config defines overlay behavior.
type Config struct {
	MaxFocusLength int
}

// Window is the fullscreen surface shown between sessions and during
// breaks. While blocking it swallows escape and close requests; the
// orchestrator flips the blocking flag in lockstep with the break
// phase. All methods must be called on the Fyne UI thread.
type Window struct {
	app            fyne.App
	window         fyne.Window
	config         Config
	background     *canvas.Rectangle
	wallpaper      *canvas.Image
	tint           *canvas.Rectangle
	titleLabel     *canvas.Text
	subtitleLabel  *canvas.Text
	timerLabel     *canvas.Text
	extraRestLabel *canvas.Text
	focusEntry     *widget.Entry
	focusRow       *fyne.Container
	blocking       bool
	onSubmit       func(focus string)
	onClose        func()
}

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates the overlay window. It starts hidden.
func New(app fyne.App, config Config) *Window {
	window := app.NewWindow("Take Break")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)
	if config.MaxFocusLength <= 0 {
		config.MaxFocusLength = 50
	}

	background := canvas.NewRectangle(color.NRGBA{R: 16, G: 24, B: 38, A: 255})

	wallpaper := canvas.NewImageFromResource(nil)
	wallpaper.FillMode = canvas.ImageFillStretch
	wallpaper.Hide()

	tint := canvas.NewRectangle(color.NRGBA{R: 0, G: 0, B: 0, A: 110})

	titleLabel := canvas.NewText("Take Break", color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	titleLabel.Alignment = fyne.TextAlignCenter
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.TextSize = 34

	subtitleLabel := canvas.NewText("", color.NRGBA{R: 220, G: 226, B: 235, A: 255})
	subtitleLabel.Alignment = fyne.TextAlignCenter
	subtitleLabel.TextSize = 18

	timerLabel := canvas.NewText("", color.NRGBA{R: 232, G: 190, B: 66, A: 255})
	timerLabel.Alignment = fyne.TextAlignCenter
	timerLabel.TextStyle = fyne.TextStyle{Bold: true}
	timerLabel.TextSize = 48
	timerLabel.Hide()

	extraRestLabel := canvas.NewText("", color.NRGBA{R: 170, G: 220, B: 170, A: 255})
	extraRestLabel.Alignment = fyne.TextAlignCenter
	extraRestLabel.TextSize = 16
	extraRestLabel.Hide()

	focusEntry := widget.NewEntry()
	focusEntry.SetPlaceHolder("What will you focus on next session?")

	focusRow := container.NewGridWithColumns(3, widget.NewLabel(""), focusEntry, widget.NewLabel(""))

	content := container.NewVBox(
		titleLabel,
		subtitleLabel,
		timerLabel,
		focusRow,
		extraRestLabel,
	)
	root := container.NewStack(
		background,
		wallpaper,
		tint,
		container.NewCenter(content),
	)
	window.SetContent(root)

	overlay := &Window{
		app:            app,
		window:         window,
		config:         config,
		background:     background,
		wallpaper:      wallpaper,
		tint:           tint,
		titleLabel:     titleLabel,
		subtitleLabel:  subtitleLabel,
		timerLabel:     timerLabel,
		extraRestLabel: extraRestLabel,
		focusEntry:     focusEntry,
		focusRow:       focusRow,
	}

	focusEntry.OnChanged = func(text string) {
		if len([]rune(text)) > config.MaxFocusLength {
			focusEntry.SetText(string([]rune(text)[:config.MaxFocusLength]))
		}
	}
	focusEntry.OnSubmitted = func(string) {
		overlay.submit()
	}

	window.Canvas().SetOnTypedKey(func(event *fyne.KeyEvent) {
		switch event.Name {
		case fyne.KeyReturn, fyne.KeyEnter:
			overlay.submit()
		case fyne.KeyEscape:
			if overlay.blocking {
				log.Printf("warning: escape ignored during break")
			}
		}
	})

	window.SetCloseIntercept(func() {
		if overlay.blocking {
			log.Printf("warning: close request ignored during break")
			return
		}
		if overlay.onClose != nil {
			overlay.onClose()
		}
	})

	return overlay
}

// SetOnSubmit registers the work-start handler fired on Enter.
func (overlay *Window) SetOnSubmit(handler func(focus string)) {
	overlay.onSubmit = handler
}

// SetOnCloseRequested registers the handler for a permitted close.
func (overlay *Window) SetOnCloseRequested(handler func()) {
	overlay.onClose = handler
}

// ShowInitial presents the session-start screen with the focus input.
func (overlay *Window) ShowInitial(workMinutes int, previousFocus string) {
	overlay.titleLabel.Text = "Take Break"
	if previousFocus != "" {
		overlay.subtitleLabel.Text = fmt.Sprintf("Previous focus: %s. Press Enter to start %d minutes of work.", previousFocus, workMinutes)
	} else {
		overlay.subtitleLabel.Text = fmt.Sprintf("Press Enter to start %d minutes of work.", workMinutes)
	}
	overlay.timerLabel.Hide()
	overlay.focusEntry.SetText(previousFocus)
	overlay.focusRow.Show()
	overlay.refreshLabels()
	overlay.present()
	overlay.window.Canvas().Focus(overlay.focusEntry)
}

// ShowBreak presents the locked break screen.
func (overlay *Window) ShowBreak(breakMinutes int) {
	overlay.titleLabel.Text = "Time to rest"
	overlay.subtitleLabel.Text = fmt.Sprintf("The screen is yours again in %d minutes.", breakMinutes)
	overlay.timerLabel.Text = timeutil.FormatClock(time.Duration(breakMinutes) * time.Minute)
	overlay.timerLabel.Show()
	overlay.focusRow.Hide()
	overlay.extraRestLabel.Hide()
	overlay.refreshLabels()
	overlay.present()
	overlay.window.Canvas().Unfocus()
}

// SetBreakRemaining updates the countdown shown during a break.
func (overlay *Window) SetBreakRemaining(remaining time.Duration) {
	overlay.timerLabel.Text = timeutil.FormatClock(remaining)
	overlay.timerLabel.Refresh()
}

// SetExtraRest shows the elapsed voluntary rest on the idle screen.
func (overlay *Window) SetExtraRest(elapsed time.Duration) {
	overlay.extraRestLabel.Text = "Extra rest: " + timeutil.FormatExtraRest(elapsed)
	overlay.extraRestLabel.Show()
	overlay.extraRestLabel.Refresh()
}

// HideExtraRest hides the voluntary rest display.
func (overlay *Window) HideExtraRest() {
	overlay.extraRestLabel.Hide()
}

// SetBlocking mirrors the break phase into the overlay's own guard,
// controlling escape and close handling.
func (overlay *Window) SetBlocking(blocking bool) {
	overlay.blocking = blocking
}

// IsBlocking reports the overlay's current guard state.
func (overlay *Window) IsBlocking() bool {
	return overlay.blocking
}

// FocusText returns the current focus input contents.
func (overlay *Window) FocusText() string {
	return overlay.focusEntry.Text
}

// SetWallpaperPath swaps the background image. An empty path falls
// back to the solid-color background.
func (overlay *Window) SetWallpaperPath(path string) {
	if path == "" {
		overlay.wallpaper.Hide()
		return
	}
	overlay.wallpaper.File = path
	overlay.wallpaper.Resource = nil
	overlay.wallpaper.Show()
	overlay.wallpaper.Refresh()
}

// Hide removes the overlay from the screen.
func (overlay *Window) Hide() {
	overlay.window.Hide()
}

func (overlay *Window) submit() {
	if overlay.blocking {
		log.Printf("warning: work-start keypress ignored during break")
		return
	}
	if overlay.onSubmit != nil {
		overlay.onSubmit(overlay.focusEntry.Text)
	}
}

// present shows the window fullscreen and takes focus, covering the
// taskbar so the block cannot be clicked around.
func (overlay *Window) present() {
	overlay.window.SetFullScreen(true)
	overlay.window.Show()
	overlay.window.RequestFocus()
}

func (overlay *Window) refreshLabels() {
	overlay.titleLabel.Refresh()
	overlay.subtitleLabel.Refresh()
	overlay.timerLabel.Refresh()
	overlay.extraRestLabel.Refresh()
}
