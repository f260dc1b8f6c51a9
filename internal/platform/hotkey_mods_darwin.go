//go:build darwin

package platform

import "golang.design/x/hotkey"

var modifierNames = map[string]hotkey.Modifier{
	"ctrl":   hotkey.ModCtrl,
	"shift":  hotkey.ModShift,
	"alt":    hotkey.ModOption,
	"option": hotkey.ModOption,
	"cmd":    hotkey.ModCmd,
	"super":  hotkey.ModCmd,
}
