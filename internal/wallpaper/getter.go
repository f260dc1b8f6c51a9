package wallpaper

import (
	"context"
	"errors"
)

// ErrNoWallpaper indicates no wallpaper could be produced by a getter.
var ErrNoWallpaper = errors.New("no wallpaper available")

// Getter produces a path to a wallpaper image file.
type Getter interface {
	Fetch(ctx context.Context) (string, error)
}
