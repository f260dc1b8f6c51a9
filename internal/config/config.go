package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = "config.yaml"

// Config holds static application configuration. User-mutable settings
// (focus, work mode, toggles) live in the settings database instead.
type Config struct {
	DataDir            string
	WallpaperURL       string
	FetchTimeout       time.Duration
	TickInterval       time.Duration
	DefaultHotkey      string
	MaxFocusLength     int
	RedThreshold       time.Duration
	PreloadWidth       int
	PreloadHeight      int
}

type yamlConfig struct {
	DataDir             string `yaml:"data_dir"`
	WallpaperURL        string `yaml:"wallpaper_url"`
	FetchTimeoutSeconds int    `yaml:"fetch_timeout_seconds"`
	TickIntervalMillis  int    `yaml:"tick_interval_ms"`
	DefaultHotkey       string `yaml:"move_timer_hotkey"`
	MaxFocusLength      int    `yaml:"max_focus_length"`
	RedThresholdSeconds int    `yaml:"red_threshold_seconds"`
	PreloadWidth        int    `yaml:"preload_width"`
	PreloadHeight       int    `yaml:"preload_height"`
}

// Default returns the built-in configuration rooted at the OS config dir.
func Default(appName string) Config {
	dataDir := "app_data"
	if configDir, err := os.UserConfigDir(); err == nil && configDir != "" {
		dataDir = filepath.Join(configDir, appName)
	}
	return Config{
		DataDir:        dataDir,
		WallpaperURL:   "https://picsum.photos/%d/%d",
		FetchTimeout:   5 * time.Second,
		TickInterval:   time.Second,
		DefaultHotkey:  "ctrl+alt+t",
		MaxFocusLength: 50,
		RedThreshold:   60 * time.Second,
		PreloadWidth:   1920,
		PreloadHeight:  1080,
	}
}

// Load reads the config file under the app config dir, returning
// defaults when the file does not exist.
func Load(appName string) (Config, error) {
	config := Default(appName)
	path := filepath.Join(config.DataDir, configFileName)

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("read config file: %w", err)
	}

	var fileData yamlConfig
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return config, fmt.Errorf("parse config yaml: %w", err)
	}

	applyYamlConfig(&config, fileData)
	return config, nil
}

// Save writes the configuration to its YAML file.
func Save(appName string, config Config) error {
	path := filepath.Join(config.DataDir, configFileName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlConfig{
		DataDir:             config.DataDir,
		WallpaperURL:        config.WallpaperURL,
		FetchTimeoutSeconds: int(config.FetchTimeout / time.Second),
		TickIntervalMillis:  int(config.TickInterval / time.Millisecond),
		DefaultHotkey:       config.DefaultHotkey,
		MaxFocusLength:      config.MaxFocusLength,
		RedThresholdSeconds: int(config.RedThreshold / time.Second),
		PreloadWidth:        config.PreloadWidth,
		PreloadHeight:       config.PreloadHeight,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal config yaml: %w", err)
	}
	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// SettingsDBPath returns the settings database location.
func (config Config) SettingsDBPath() string {
	return filepath.Join(config.DataDir, "settings", "settings.db")
}

// WallpaperCachePath returns the cached remote wallpaper location.
func (config Config) WallpaperCachePath() string {
	return filepath.Join(config.DataDir, "cache", "wallpaper_cache.jpg")
}

// WallpapersDir returns the local wallpaper pool directory.
func (config Config) WallpapersDir() string {
	return filepath.Join(config.DataDir, "wallpapers")
}

// LogPath returns the application log file location.
func (config Config) LogPath() string {
	return filepath.Join(config.DataDir, "logs", "takebreak.log")
}

// EnsureDirs creates the application data directories.
func (config Config) EnsureDirs() error {
	dirs := []string{
		filepath.Dir(config.SettingsDBPath()),
		filepath.Dir(config.WallpaperCachePath()),
		config.WallpapersDir(),
		filepath.Dir(config.LogPath()),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir %s: %w", dir, err)
		}
	}
	return nil
}

func applyYamlConfig(config *Config, fileData yamlConfig) {
	if fileData.DataDir != "" {
		config.DataDir = fileData.DataDir
	}
	if fileData.WallpaperURL != "" {
		config.WallpaperURL = fileData.WallpaperURL
	}
	if fileData.FetchTimeoutSeconds > 0 {
		config.FetchTimeout = time.Duration(fileData.FetchTimeoutSeconds) * time.Second
	}
	if fileData.TickIntervalMillis > 0 {
		config.TickInterval = time.Duration(fileData.TickIntervalMillis) * time.Millisecond
	}
	if fileData.DefaultHotkey != "" {
		config.DefaultHotkey = fileData.DefaultHotkey
	}
	if fileData.MaxFocusLength > 0 {
		config.MaxFocusLength = fileData.MaxFocusLength
	}
	if fileData.RedThresholdSeconds > 0 {
		config.RedThreshold = time.Duration(fileData.RedThresholdSeconds) * time.Second
	}
	if fileData.PreloadWidth > 0 {
		config.PreloadWidth = fileData.PreloadWidth
	}
	if fileData.PreloadHeight > 0 {
		config.PreloadHeight = fileData.PreloadHeight
	}
}
