package wallpaper

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

// LocalGetter picks a random wallpaper from a directory on disk.
type LocalGetter struct {
	dir string
}

// NewLocalGetter creates a getter over the given wallpaper pool dir.
func NewLocalGetter(dir string) *LocalGetter {
	return &LocalGetter{dir: dir}
}

// Fetch returns a random *.jpg / *.png file from the pool.
func (getter *LocalGetter) Fetch(ctx context.Context) (string, error) {
	entries, err := os.ReadDir(getter.dir)
	if err != nil {
		return "", fmt.Errorf("read wallpapers dir %s: %w", getter.dir, err)
	}

	var wallpapers []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".jpg", ".jpeg", ".png":
			wallpapers = append(wallpapers, filepath.Join(getter.dir, entry.Name()))
		}
	}
	if len(wallpapers) == 0 {
		return "", ErrNoWallpaper
	}
	return wallpapers[rand.Intn(len(wallpapers))], nil
}
