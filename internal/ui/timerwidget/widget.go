package timerwidget

import (
	"image/color"
	"time"

	"takebreak/internal/core/position"
	"takebreak/internal/timeutil"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// Fixed widget footprint used for anchor math. Fyne reports canvas
// size lazily, so the layout is pinned instead of measured.
const (
	Width  = 200
	Height = 72
)

var (
	normalColor = color.NRGBA{R: 235, G: 238, B: 245, A: 255}
	urgentColor = color.NRGBA{R: 235, G: 80, B: 70, A: 255}
	focusColor  = color.NRGBA{R: 180, G: 190, B: 205, A: 255}
)

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// Widget is the small always-on-top countdown shown during work.
// All methods must be called on the Fyne UI thread.
type Widget struct {
	window       fyne.Window
	timeText     *canvas.Text
	focusText    *canvas.Text
	redThreshold time.Duration
}

// New creates the floating timer widget. It starts hidden.
func New(app fyne.App, redThreshold time.Duration) *Widget {
	window := app.NewWindow("takebreak timer")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		window = driver.CreateSplashWindow()
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(color.NRGBA{R: 20, G: 26, B: 38, A: 230})

	timeText := canvas.NewText("00:00", normalColor)
	timeText.Alignment = fyne.TextAlignCenter
	timeText.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timeText.TextSize = 30

	focusText := canvas.NewText("", focusColor)
	focusText.Alignment = fyne.TextAlignCenter
	focusText.TextSize = 13

	window.SetContent(container.NewStack(
		background,
		container.NewCenter(container.NewVBox(timeText, focusText)),
	))
	window.Resize(fyne.NewSize(Width, Height))
	window.SetFixedSize(true)

	return &Widget{
		window:       window,
		timeText:     timeText,
		focusText:    focusText,
		redThreshold: redThreshold,
	}
}

// SetRemaining updates the countdown text, switching to the urgent
// color once the session is nearly over.
func (widget *Widget) SetRemaining(remaining time.Duration) {
	widget.timeText.Text = timeutil.FormatClock(remaining)
	if remaining <= widget.redThreshold {
		widget.timeText.Color = urgentColor
	} else {
		widget.timeText.Color = normalColor
	}
	widget.timeText.Refresh()
}

// SetFocus shows the session focus under the countdown.
func (widget *Widget) SetFocus(focus string) {
	widget.focusText.Text = focus
	widget.focusText.Refresh()
}

// MoveTo places the widget at one of the screen anchors. Fyne has no
// portable window-move call, so placement goes through the native
// path where one exists and is a logged no-op elsewhere.
func (widget *Widget) MoveTo(anchor position.Anchor, screenWidth, screenHeight int) {
	point := position.Calculate(anchor, screenWidth, screenHeight, Width, Height)
	moveNative(widget.window, point)
}

// Show displays the widget.
func (widget *Widget) Show() {
	widget.window.Show()
}

// Hide removes the widget from the screen.
func (widget *Widget) Hide() {
	widget.window.Hide()
}
