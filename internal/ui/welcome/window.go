package welcome

import (
	"takebreak/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Choice is the first-run configuration the user picked.
type Choice struct {
	WorkMinutes         int
	UseOnlineWallpapers bool
}

// Window handles the first-run setup UI. Closing it without starting
// counts as cancelling.
type Window struct {
	window     fyne.Window
	modeRadio  *widget.RadioGroup
	wallpapers *widget.Check
	onStart    func(Choice)
	onCancel   func()
	started    bool
}

const (
	pomodoroOption = "Pomodoro — 25 minute sessions"
	standardOption = "Standard — 45 minute sessions"
)

// New creates the first-run window.
func New(app fyne.App, onStart func(Choice), onCancel func()) *Window {
	window := app.NewWindow("Welcome to Take Break")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	intro := widget.NewLabel("Take Break alternates work sessions with locked breaks.\nPick how long a work session should be; you can change it later from the tray.")
	intro.Wrapping = fyne.TextWrapWord

	modeRadio := widget.NewRadioGroup([]string{pomodoroOption, standardOption}, nil)
	modeRadio.SetSelected(standardOption)

	wallpapers := widget.NewCheck("Download break wallpapers from the internet", nil)
	wallpapers.SetChecked(true)

	startButton := widget.NewButton("Start", nil)
	startButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton("Quit", nil)
	buttons := container.NewHBox(startButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, container.NewVBox(
		intro,
		widget.NewSeparator(),
		modeRadio,
		wallpapers,
	))
	window.SetContent(content)
	window.Resize(fyne.NewSize(440, 300))

	welcome := &Window{
		window:     window,
		modeRadio:  modeRadio,
		wallpapers: wallpapers,
		onStart:    onStart,
		onCancel:   onCancel,
	}

	startButton.OnTapped = welcome.handleStart
	cancelButton.OnTapped = welcome.handleCancel
	window.SetCloseIntercept(welcome.handleCancel)

	return welcome
}

// Show displays the first-run window.
func (welcome *Window) Show() {
	welcome.window.Show()
	welcome.window.RequestFocus()
}

func (welcome *Window) handleStart() {
	welcome.started = true
	choice := Choice{
		WorkMinutes:         model.StandardModeMinutes,
		UseOnlineWallpapers: welcome.wallpapers.Checked,
	}
	if welcome.modeRadio.Selected == pomodoroOption {
		choice.WorkMinutes = model.PomodoroModeMinutes
	}
	welcome.window.Hide()
	if welcome.onStart != nil {
		welcome.onStart(choice)
	}
}

func (welcome *Window) handleCancel() {
	if welcome.started {
		welcome.window.Hide()
		return
	}
	welcome.window.Hide()
	if welcome.onCancel != nil {
		welcome.onCancel()
	}
}
