//go:build !windows && !js && !plan9 && !linux && !darwin

package ttyio

// ttyName has no portable implementation on this platform; returning ""
// simply makes the caller fall back to opening /dev/tty directly, which is
// the common path anyway.
func ttyName(int) string {
	return ""
}
