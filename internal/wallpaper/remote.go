package wallpaper

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"time"
)

// RemoteGetter downloads a random wallpaper from an image-placeholder
// endpoint and caches it on disk. The fetch is best-effort: any failure
// is reported as an error and the caller falls back elsewhere.
type RemoteGetter struct {
	urlTemplate string
	width       int
	height      int
	cachePath   string
	client      *http.Client
}

// NewRemoteGetter creates a getter for the given endpoint template
// (expects two %d placeholders for width and height).
func NewRemoteGetter(urlTemplate string, width, height int, cachePath string, timeout time.Duration) *RemoteGetter {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &RemoteGetter{
		urlTemplate: urlTemplate,
		width:       width,
		height:      height,
		cachePath:   cachePath,
		client:      &http.Client{Timeout: timeout},
	}
}

// CachePath returns where the last successful download was stored.
func (getter *RemoteGetter) CachePath() string {
	return getter.cachePath
}

// Fetch downloads a wallpaper, validates the payload is a decodable
// image and writes it to the cache file before returning its path.
func (getter *RemoteGetter) Fetch(ctx context.Context) (string, error) {
	url := fmt.Sprintf(getter.urlTemplate, getter.width, getter.height)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build wallpaper request: %w", err)
	}

	response, err := getter.client.Do(request)
	if err != nil {
		return "", fmt.Errorf("fetch wallpaper from %s: %w", url, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return "", fmt.Errorf("fetch wallpaper from %s: status %d", url, response.StatusCode)
	}

	payload, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("read wallpaper payload: %w", err)
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(payload)); err != nil {
		return "", fmt.Errorf("malformed wallpaper payload: %w", err)
	}

	if err := os.WriteFile(getter.cachePath, payload, 0o644); err != nil {
		return "", fmt.Errorf("write wallpaper cache: %w", err)
	}
	return getter.cachePath, nil
}
