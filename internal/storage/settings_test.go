package storage

import (
	"path/filepath"
	"testing"

	"takebreak/internal/core/model"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "settings.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGetAbsentKey(t *testing.T) {
	db := openTestDB(t)
	value, found, err := db.Get("missing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found || value != "" {
		t.Fatalf("absent key returned %q, %v", value, found)
	}
}

func TestSetOverwritesValue(t *testing.T) {
	db := openTestDB(t)
	if err := db.Set("work_duration", "25"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := db.Set("work_duration", "45"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	value, found, err := db.Get("work_duration")
	if err != nil || !found || value != "45" {
		t.Fatalf("got %q, %v, %v; want 45, true, nil", value, found, err)
	}
}

func TestEmptyFocusIsDistinctFromAbsent(t *testing.T) {
	settings := NewSettings(openTestDB(t))

	settings.SaveFocus("ship the report")
	if got := settings.Focus(); got != "ship the report" {
		t.Fatalf("focus = %q", got)
	}

	settings.SaveFocus("")
	value, found := settings.get("focus")
	if !found {
		t.Fatalf("empty focus stored as absent key")
	}
	if value != "" {
		t.Fatalf("empty focus stored as %q", value)
	}
}

func TestWorkDurationValidation(t *testing.T) {
	settings := NewSettings(openTestDB(t))

	if got := settings.WorkDuration(); got != model.DefaultWorkDurationMinutes {
		t.Fatalf("default duration = %d, want %d", got, model.DefaultWorkDurationMinutes)
	}

	settings.SetWorkDuration(25)
	if got := settings.WorkDuration(); got != 25 {
		t.Fatalf("duration = %d, want 25", got)
	}

	// Outside the allowed set: corrected to the default.
	settings.SetWorkDuration(100)
	if got := settings.WorkDuration(); got != 45 {
		t.Fatalf("invalid duration stored as %d, want 45", got)
	}
}

func TestWorkDurationCorruptValue(t *testing.T) {
	db := openTestDB(t)
	settings := NewSettings(db)
	if err := db.Set("work_duration", "soon"); err != nil {
		t.Fatalf("seed corrupt value: %v", err)
	}
	if got := settings.WorkDuration(); got != model.DefaultWorkDurationMinutes {
		t.Fatalf("corrupt duration read as %d", got)
	}
}

func TestFirstRunFlow(t *testing.T) {
	settings := NewSettings(openTestDB(t))
	if !settings.IsFirstRun() {
		t.Fatalf("fresh store should report first run")
	}
	settings.MarkFirstRunComplete()
	if settings.IsFirstRun() {
		t.Fatalf("first run still reported after completion")
	}
}

func TestDefaultsWithoutStoredValues(t *testing.T) {
	settings := NewSettings(openTestDB(t))
	if !settings.UseOnlineWallpapers() {
		t.Fatalf("online wallpapers should default to enabled")
	}
	if got := settings.MoveTimerHotkey(); got != "" {
		t.Fatalf("hotkey default = %q, want empty", got)
	}
}

func TestMemoryOnlyFallback(t *testing.T) {
	// Simulates the persistence-unavailable session: no database at all.
	settings := NewSettings(nil)

	settings.SaveFocus("offline focus")
	settings.SetWorkDuration(25)
	settings.SetUseOnlineWallpapers(false)

	if got := settings.Focus(); got != "offline focus" {
		t.Fatalf("memory focus = %q", got)
	}
	if got := settings.WorkDuration(); got != 25 {
		t.Fatalf("memory duration = %d", got)
	}
	if settings.UseOnlineWallpapers() {
		t.Fatalf("memory toggle lost")
	}
}

func TestSettingsSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	settings := NewSettings(db)
	settings.SetWorkDuration(25)
	settings.SaveFocus("persisted")
	settings.SetMoveTimerHotkey("ctrl+alt+t")
	db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()
	settings = NewSettings(db)

	if got := settings.WorkDuration(); got != 25 {
		t.Fatalf("duration after reopen = %d", got)
	}
	if got := settings.Focus(); got != "persisted" {
		t.Fatalf("focus after reopen = %q", got)
	}
	if got := settings.MoveTimerHotkey(); got != "ctrl+alt+t" {
		t.Fatalf("hotkey after reopen = %q", got)
	}
}
