package platform

import (
	"fmt"
	"strings"

	"golang.design/x/hotkey"
)

// Hotkey is a registered global key combination. Keydown events are
// delivered regardless of which window has focus; the binding must be
// released with Unregister before the process exits.
type Hotkey struct {
	combo string
	hk    *hotkey.Hotkey
}

// RegisterHotkey parses a combination like "ctrl+alt+t" and registers
// it system-wide.
func RegisterHotkey(combo string) (*Hotkey, error) {
	modifiers, key, err := parseHotkey(combo)
	if err != nil {
		return nil, err
	}

	hk := hotkey.New(modifiers, key)
	if err := hk.Register(); err != nil {
		return nil, fmt.Errorf("register hotkey %q: %w", combo, err)
	}
	return &Hotkey{combo: combo, hk: hk}, nil
}

// Keydown returns the channel delivering press events.
func (binding *Hotkey) Keydown() <-chan hotkey.Event {
	return binding.hk.Keydown()
}

// Combo returns the registered combination string.
func (binding *Hotkey) Combo() string {
	return binding.combo
}

// Unregister releases the system-wide binding.
func (binding *Hotkey) Unregister() error {
	if binding == nil || binding.hk == nil {
		return nil
	}
	if err := binding.hk.Unregister(); err != nil {
		return fmt.Errorf("unregister hotkey %q: %w", binding.combo, err)
	}
	return nil
}

// parseHotkey splits a "+"-separated combination into modifiers and a
// final key. The last token must be a letter or digit; every preceding
// token must be a known modifier name.
func parseHotkey(combo string) ([]hotkey.Modifier, hotkey.Key, error) {
	tokens := strings.Split(strings.ToLower(strings.TrimSpace(combo)), "+")
	if len(tokens) < 2 {
		return nil, 0, fmt.Errorf("parse hotkey %q: need at least one modifier and a key", combo)
	}

	var modifiers []hotkey.Modifier
	for _, token := range tokens[:len(tokens)-1] {
		modifier, ok := modifierNames[strings.TrimSpace(token)]
		if !ok {
			return nil, 0, fmt.Errorf("parse hotkey %q: unknown modifier %q", combo, token)
		}
		modifiers = append(modifiers, modifier)
	}

	keyToken := strings.TrimSpace(tokens[len(tokens)-1])
	key, ok := keyNames[keyToken]
	if !ok {
		return nil, 0, fmt.Errorf("parse hotkey %q: unknown key %q", combo, keyToken)
	}
	return modifiers, key, nil
}

var keyNames = map[string]hotkey.Key{
	"a": hotkey.KeyA, "b": hotkey.KeyB, "c": hotkey.KeyC, "d": hotkey.KeyD,
	"e": hotkey.KeyE, "f": hotkey.KeyF, "g": hotkey.KeyG, "h": hotkey.KeyH,
	"i": hotkey.KeyI, "j": hotkey.KeyJ, "k": hotkey.KeyK, "l": hotkey.KeyL,
	"m": hotkey.KeyM, "n": hotkey.KeyN, "o": hotkey.KeyO, "p": hotkey.KeyP,
	"q": hotkey.KeyQ, "r": hotkey.KeyR, "s": hotkey.KeyS, "t": hotkey.KeyT,
	"u": hotkey.KeyU, "v": hotkey.KeyV, "w": hotkey.KeyW, "x": hotkey.KeyX,
	"y": hotkey.KeyY, "z": hotkey.KeyZ,
	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3,
	"4": hotkey.Key4, "5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7,
	"8": hotkey.Key8, "9": hotkey.Key9,
}
