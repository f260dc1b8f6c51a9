package wallpaper

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 30, G: 60, B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestRemoteFetchSavesCache(t *testing.T) {
	payload := pngBytes(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/1920/1080" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write(payload)
	}))
	defer server.Close()

	cachePath := filepath.Join(t.TempDir(), "wallpaper_cache.jpg")
	getter := NewRemoteGetter(server.URL+"/%d/%d", 1920, 1080, cachePath, time.Second)

	path, err := getter.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if path != cachePath {
		t.Fatalf("path = %q, want cache path", path)
	}
	cached, err := os.ReadFile(cachePath)
	if err != nil {
		t.Fatalf("read cache: %v", err)
	}
	if !bytes.Equal(cached, payload) {
		t.Fatalf("cache content differs from payload")
	}
}

func TestRemoteFetchNon2xxFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	getter := NewRemoteGetter(server.URL+"/%d/%d", 800, 600, filepath.Join(t.TempDir(), "c.jpg"), time.Second)
	if _, err := getter.Fetch(context.Background()); err == nil {
		t.Fatalf("expected error on 503")
	}
}

func TestRemoteFetchMalformedPayloadFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not an image</html>"))
	}))
	defer server.Close()

	cachePath := filepath.Join(t.TempDir(), "c.jpg")
	getter := NewRemoteGetter(server.URL+"/%d/%d", 800, 600, cachePath, time.Second)
	if _, err := getter.Fetch(context.Background()); err == nil {
		t.Fatalf("expected error on malformed payload")
	}
	if _, err := os.Stat(cachePath); err == nil {
		t.Fatalf("malformed payload must not be cached")
	}
}

func TestRemoteFetchTimeoutFails(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	getter := NewRemoteGetter(server.URL+"/%d/%d", 800, 600, filepath.Join(t.TempDir(), "c.jpg"), 50*time.Millisecond)
	if _, err := getter.Fetch(context.Background()); err == nil {
		t.Fatalf("expected timeout error")
	}
}
