//go:build linux

package platform

import "golang.design/x/hotkey"

// X11 maps "alt" to Mod1 and the super key to Mod4.
var modifierNames = map[string]hotkey.Modifier{
	"ctrl":  hotkey.ModCtrl,
	"shift": hotkey.ModShift,
	"alt":   hotkey.Mod1,
	"super": hotkey.Mod4,
	"win":   hotkey.Mod4,
}
