//go:build windows

package platform

import "syscall"

const (
	smCxScreen = 0
	smCyScreen = 1
)

var (
	screenUser32DLL      = syscall.NewLazyDLL("user32.dll")
	procGetSystemMetrics = screenUser32DLL.NewProc("GetSystemMetrics")
)

// ScreenSize returns the primary display resolution in pixels.
func ScreenSize() (int, int, bool) {
	width, _, _ := procGetSystemMetrics.Call(smCxScreen)
	height, _, _ := procGetSystemMetrics.Call(smCyScreen)
	if width == 0 || height == 0 {
		return 0, 0, false
	}
	return int(width), int(height), true
}
