//go:build windows

package platform

import "golang.design/x/hotkey"

var modifierNames = map[string]hotkey.Modifier{
	"ctrl":  hotkey.ModCtrl,
	"shift": hotkey.ModShift,
	"alt":   hotkey.ModAlt,
	"super": hotkey.ModWin,
	"win":   hotkey.ModWin,
}
