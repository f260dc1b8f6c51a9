package platform

import "testing"

func TestParseHotkey(t *testing.T) {
	modifiers, key, err := parseHotkey("ctrl+alt+t")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(modifiers) != 2 {
		t.Fatalf("modifier count = %d, want 2", len(modifiers))
	}
	if key != keyNames["t"] {
		t.Fatalf("key = %v, want t", key)
	}
}

func TestParseHotkeyNormalizesCaseAndSpace(t *testing.T) {
	if _, _, err := parseHotkey("  Ctrl + Shift + M  "); err != nil {
		t.Fatalf("parse: %v", err)
	}
}

func TestParseHotkeyRejectsInvalid(t *testing.T) {
	cases := []string{
		"",
		"t",
		"ctrl+alt",
		"ctrl+foo+t",
		"hyper+t",
		"ctrl+escape",
	}
	for _, combo := range cases {
		if _, _, err := parseHotkey(combo); err == nil {
			t.Errorf("parseHotkey(%q) succeeded, want error", combo)
		}
	}
}
