//go:build windows || js || plan9

package queryengine

// isForeground always reports true on platforms without POSIX process
// groups: there's no job-control "stopped in background" state to guard
// against.
var isForeground = func(fd uintptr) bool {
	return true
}
