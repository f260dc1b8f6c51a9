package storage

import (
	"log"
	"strconv"
	"sync"

	"takebreak/internal/core/model"
)

// Persisted setting keys. Absent keys fall back to hardcoded defaults;
// there is no schema versioning.
const (
	keyFocus               = "focus"
	keyFirstRunComplete    = "first_run_complete"
	keyUseOnlineWallpapers = "use_online_wallpapers"
	keyWorkDuration        = "work_duration"
	keyMoveTimerHotkey     = "move_timer_hotkey"
)

// Settings provides typed access to persisted user settings. When the
// database is unavailable the session runs on an in-memory map, so a
// disk failure degrades persistence but never crashes the app.
type Settings struct {
	mu    sync.Mutex
	db    *DB
	cache map[string]string
}

// NewSettings wraps the given store. A nil db means memory-only mode.
func NewSettings(db *DB) *Settings {
	return &Settings{
		db:    db,
		cache: make(map[string]string),
	}
}

// Focus returns the saved focus text. An empty saved string is returned
// as "", distinct from a never-saved focus which also yields "".
func (settings *Settings) Focus() string {
	value, _ := settings.get(keyFocus)
	return value
}

// SaveFocus persists the focus text, including the empty string.
func (settings *Settings) SaveFocus(focus string) {
	settings.set(keyFocus, focus)
}

// IsFirstRun reports whether the welcome flow has not completed yet.
func (settings *Settings) IsFirstRun() bool {
	return !settings.getBool(keyFirstRunComplete, false)
}

// MarkFirstRunComplete records that the welcome flow finished.
func (settings *Settings) MarkFirstRunComplete() {
	settings.set(keyFirstRunComplete, "true")
}

// UseOnlineWallpapers reports whether remote wallpapers are enabled.
// Defaults to true.
func (settings *Settings) UseOnlineWallpapers() bool {
	return settings.getBool(keyUseOnlineWallpapers, true)
}

// SetUseOnlineWallpapers persists the online wallpapers toggle.
func (settings *Settings) SetUseOnlineWallpapers(enabled bool) {
	settings.set(keyUseOnlineWallpapers, strconv.FormatBool(enabled))
}

// WorkDuration returns the configured work duration in minutes. Values
// outside the allowed modes are corrected to the default.
func (settings *Settings) WorkDuration() int {
	value, found := settings.get(keyWorkDuration)
	if !found {
		return model.DefaultWorkDurationMinutes
	}
	minutes, err := strconv.Atoi(value)
	if err != nil || !model.IsAllowedWorkMode(minutes) {
		log.Printf("warning: stored work duration %q invalid, using default %d", value, model.DefaultWorkDurationMinutes)
		return model.DefaultWorkDurationMinutes
	}
	return minutes
}

// SetWorkDuration persists the work duration. Durations outside the
// allowed set are corrected to the default and logged.
func (settings *Settings) SetWorkDuration(minutes int) {
	if !model.IsAllowedWorkMode(minutes) {
		log.Printf("warning: invalid work duration %d, using default %d", minutes, model.DefaultWorkDurationMinutes)
		minutes = model.DefaultWorkDurationMinutes
	}
	settings.set(keyWorkDuration, strconv.Itoa(minutes))
}

// MoveTimerHotkey returns the saved hotkey, or "" when unset.
func (settings *Settings) MoveTimerHotkey() string {
	value, _ := settings.get(keyMoveTimerHotkey)
	return value
}

// SetMoveTimerHotkey persists the move-timer hotkey.
func (settings *Settings) SetMoveTimerHotkey(hotkey string) {
	settings.set(keyMoveTimerHotkey, hotkey)
}

func (settings *Settings) get(key string) (string, bool) {
	settings.mu.Lock()
	defer settings.mu.Unlock()

	if settings.db != nil {
		value, found, err := settings.db.Get(key)
		if err == nil {
			if found {
				settings.cache[key] = value
			}
			return value, found
		}
		log.Printf("error: settings read failed, using in-memory value: %v", err)
	}

	value, found := settings.cache[key]
	return value, found
}

func (settings *Settings) set(key, value string) {
	settings.mu.Lock()
	defer settings.mu.Unlock()

	settings.cache[key] = value
	if settings.db == nil {
		return
	}
	if err := settings.db.Set(key, value); err != nil {
		log.Printf("error: settings write failed, value kept in memory: %v", err)
	}
}

func (settings *Settings) getBool(key string, fallback bool) bool {
	value, found := settings.get(key)
	if !found {
		return fallback
	}
	return value == "true"
}
