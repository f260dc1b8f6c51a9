package wallpaper

import (
	"context"
	"log"
	"os"
	"sync"
	"time"
)

// Manager owns wallpaper selection for the overlay. Preloads run on a
// background goroutine so a slow network can never stall the tick loop;
// only one preload is in flight at a time. Results are delivered
// through the OnLoaded callback, which fires off the UI thread - the
// caller is responsible for marshaling onto it.
type Manager struct {
	mu        sync.Mutex
	remote    Getter
	local     Getter
	cachePath string
	timeout   time.Duration
	useOnline bool
	inflight  bool
	current   string
	onLoaded  func(path string)
}

// NewManager creates a wallpaper manager and seeds the current
// wallpaper from the cache file or the local pool.
func NewManager(remote, local Getter, cachePath string, timeout time.Duration, useOnline bool) *Manager {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	manager := &Manager{
		remote:    remote,
		local:     local,
		cachePath: cachePath,
		timeout:   timeout,
		useOnline: useOnline,
	}
	manager.current = manager.initialWallpaper()
	return manager
}

// SetOnLoaded registers the delivery callback for finished preloads.
func (manager *Manager) SetOnLoaded(handler func(path string)) {
	manager.mu.Lock()
	manager.onLoaded = handler
	manager.mu.Unlock()
}

// SetUseOnline toggles remote fetching.
func (manager *Manager) SetUseOnline(useOnline bool) {
	manager.mu.Lock()
	manager.useOnline = useOnline
	manager.mu.Unlock()
}

// Current returns the path of the active wallpaper, or "" when none is
// available and the overlay should paint its solid fallback.
func (manager *Manager) Current() string {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	return manager.current
}

// Preload starts a background wallpaper fetch. It returns immediately;
// if a preload is already in flight the call is dropped.
func (manager *Manager) Preload() {
	manager.mu.Lock()
	if manager.inflight {
		manager.mu.Unlock()
		return
	}
	manager.inflight = true
	useOnline := manager.useOnline
	manager.mu.Unlock()

	go manager.fetch(useOnline)
}

func (manager *Manager) fetch(useOnline bool) {
	ctx, cancel := context.WithTimeout(context.Background(), manager.timeout)
	defer cancel()

	path := manager.resolve(ctx, useOnline)

	manager.mu.Lock()
	manager.inflight = false
	manager.current = path
	handler := manager.onLoaded
	manager.mu.Unlock()

	if handler != nil {
		handler(path)
	}
}

// resolve walks the fallback chain: remote, then disk cache, then the
// local pool. An empty result means solid-color background.
func (manager *Manager) resolve(ctx context.Context, useOnline bool) string {
	if useOnline && manager.remote != nil {
		path, err := manager.remote.Fetch(ctx)
		if err == nil {
			return path
		}
		log.Printf("warning: remote wallpaper fetch failed: %v", err)
		if fileExists(manager.cachePath) {
			return manager.cachePath
		}
	}

	if manager.local != nil {
		path, err := manager.local.Fetch(ctx)
		if err == nil {
			return path
		}
		log.Printf("warning: local wallpaper unavailable: %v", err)
	}
	return ""
}

func (manager *Manager) initialWallpaper() string {
	if manager.useOnline && fileExists(manager.cachePath) {
		return manager.cachePath
	}
	if manager.local != nil {
		if path, err := manager.local.Fetch(context.Background()); err == nil {
			return path
		}
	}
	return ""
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
