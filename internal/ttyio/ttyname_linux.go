//go:build linux

package ttyio

import (
	"fmt"
	"os"
)

// ttyName resolves the path of the device fd is open on, via the
// /proc/self/fd symlink. Returns "" if it can't be resolved, in which case
// the caller falls back to opening /dev/tty directly.
func ttyName(fd int) string {
	link := fmt.Sprintf("/proc/self/fd/%d", fd)
	name, err := os.Readlink(link)
	if err != nil {
		return ""
	}
	return name
}
