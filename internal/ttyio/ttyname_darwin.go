//go:build darwin

package ttyio

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// ttyName resolves the path of the device fd is open on via fcntl(F_GETPATH).
// Returns "" if it can't be resolved, in which case the caller falls back
// to opening /dev/tty directly.
func ttyName(fd int) string {
	buf := make([]byte, unix.PathMax)
	_, _, errno := unix.Syscall(unix.SYS_FCNTL, uintptr(fd), uintptr(unix.F_GETPATH), uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return ""
	}
	n := 0
	for n < len(buf) && buf[n] != 0 {
		n++
	}
	return string(buf[:n])
}
