//go:build !windows

package platform

// ScreenSize reports the primary display resolution. No portable
// query exists outside Windows; callers fall back to configuration.
func ScreenSize() (int, int, bool) {
	return 0, 0, false
}
