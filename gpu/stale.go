package gpu

import "strings"

// IsSurfaceStale reports whether err is a transient surface acquisition
// failure, i.e. the surface no longer matches the window and needs to be
// reconfigured before the acquisition is tried again. The binding only
// exposes the wgpu surface status as message text.
func IsSurfaceStale(err error) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "outdated") ||
		strings.Contains(msg, "lost") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "timed out")
}
