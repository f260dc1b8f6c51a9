package wallpaper

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalFetchEmptyDir(t *testing.T) {
	getter := NewLocalGetter(t.TempDir())
	if _, err := getter.Fetch(context.Background()); !errors.Is(err, ErrNoWallpaper) {
		t.Fatalf("err = %v, want ErrNoWallpaper", err)
	}
}

func TestLocalFetchMissingDir(t *testing.T) {
	getter := NewLocalGetter(filepath.Join(t.TempDir(), "absent"))
	if _, err := getter.Fetch(context.Background()); err == nil {
		t.Fatalf("expected error for missing dir")
	}
}

func TestLocalFetchIgnoresNonImages(t *testing.T) {
	dir := t.TempDir()
	mustWrite := func(name string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	mustWrite("notes.txt")
	mustWrite("backup.db")
	mustWrite("forest.JPG")

	path, err := getter(dir).Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if filepath.Base(path) != "forest.JPG" {
		t.Fatalf("picked %q, want forest.JPG", path)
	}
}

func TestLocalFetchPicksFromPool(t *testing.T) {
	dir := t.TempDir()
	names := map[string]bool{"a.jpg": true, "b.png": true, "c.jpeg": true}
	for name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	for i := 0; i < 20; i++ {
		path, err := getter(dir).Fetch(context.Background())
		if err != nil {
			t.Fatalf("fetch: %v", err)
		}
		if !names[filepath.Base(path)] {
			t.Fatalf("picked unexpected file %q", path)
		}
	}
}

func getter(dir string) *LocalGetter {
	return NewLocalGetter(dir)
}
