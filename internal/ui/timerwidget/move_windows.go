//go:build windows

package timerwidget

import (
	"syscall"

	"takebreak/internal/core/position"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
)

const (
	hwndTopMost uintptr = ^uintptr(1) + 1 // HWND_TOPMOST (-1)

	swpNoSize     = 0x0001
	swpNoActivate = 0x0010
	swpShowWindow = 0x0040
)

var (
	user32DLL        = syscall.NewLazyDLL("user32.dll")
	procSetWindowPos = user32DLL.NewProc("SetWindowPos")
)

func moveNative(window fyne.Window, point position.Point) {
	nativeWindow, ok := window.(driver.NativeWindow)
	if !ok {
		return
	}

	nativeWindow.RunNative(func(context any) {
		var hwnd uintptr
		switch value := context.(type) {
		case driver.WindowsWindowContext:
			hwnd = value.HWND
		case *driver.WindowsWindowContext:
			hwnd = value.HWND
		default:
			return
		}
		if hwnd == 0 {
			return
		}

		procSetWindowPos.Call(
			hwnd,
			hwndTopMost,
			uintptr(uint32(int32(point.X))),
			uintptr(uint32(int32(point.Y))),
			0,
			0,
			swpNoSize|swpNoActivate|swpShowWindow,
		)
	})
}
