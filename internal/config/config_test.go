package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func isolateConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)
	return dir
}

func TestLoadReturnsDefaultsWhenFileMissing(t *testing.T) {
	isolateConfigDir(t)

	cfg, err := Load("TakeBreakTest")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.FetchTimeout != 5*time.Second {
		t.Errorf("fetch timeout = %v", cfg.FetchTimeout)
	}
	if cfg.TickInterval != time.Second {
		t.Errorf("tick interval = %v", cfg.TickInterval)
	}
	if cfg.DefaultHotkey != "ctrl+alt+t" {
		t.Errorf("hotkey = %q", cfg.DefaultHotkey)
	}
	if cfg.MaxFocusLength != 50 {
		t.Errorf("max focus length = %d", cfg.MaxFocusLength)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	isolateConfigDir(t)

	cfg := Default("TakeBreakTest")
	cfg.WallpaperURL = "https://example.test/%d/%d"
	cfg.FetchTimeout = 9 * time.Second
	cfg.TickInterval = 250 * time.Millisecond
	cfg.DefaultHotkey = "ctrl+shift+m"
	cfg.PreloadWidth = 2560
	cfg.PreloadHeight = 1440

	if err := Save("TakeBreakTest", cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load("TakeBreakTest")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.WallpaperURL != cfg.WallpaperURL {
		t.Errorf("wallpaper url = %q", loaded.WallpaperURL)
	}
	if loaded.FetchTimeout != cfg.FetchTimeout {
		t.Errorf("fetch timeout = %v", loaded.FetchTimeout)
	}
	if loaded.TickInterval != cfg.TickInterval {
		t.Errorf("tick interval = %v", loaded.TickInterval)
	}
	if loaded.DefaultHotkey != cfg.DefaultHotkey {
		t.Errorf("hotkey = %q", loaded.DefaultHotkey)
	}
	if loaded.PreloadWidth != 2560 || loaded.PreloadHeight != 1440 {
		t.Errorf("preload size = %dx%d", loaded.PreloadWidth, loaded.PreloadHeight)
	}
}

func TestEnsureDirsCreatesLayout(t *testing.T) {
	cfg := Default("TakeBreakTest")
	cfg.DataDir = filepath.Join(t.TempDir(), "app_data")

	if err := cfg.EnsureDirs(); err != nil {
		t.Fatalf("ensure dirs: %v", err)
	}
	for _, path := range []string{
		filepath.Dir(cfg.SettingsDBPath()),
		filepath.Dir(cfg.WallpaperCachePath()),
		cfg.WallpapersDir(),
		filepath.Dir(cfg.LogPath()),
	} {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			t.Errorf("missing dir %s: %v", path, err)
		}
	}
}
