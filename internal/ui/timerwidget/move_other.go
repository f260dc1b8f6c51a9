//go:build !windows

package timerwidget

import (
	"log"
	"sync"

	"takebreak/internal/core/position"

	"fyne.io/fyne/v2"
)

var moveWarnOnce sync.Once

func moveNative(window fyne.Window, point position.Point) {
	// Wayland/X11 window managers own placement; there is no portable
	// move call, so repositioning is a no-op outside Windows.
	moveWarnOnce.Do(func() {
		log.Printf("warning: window repositioning is not supported on this platform")
	})
	_ = point
}
