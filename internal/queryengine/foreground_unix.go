//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package queryengine

import "github.com/go-termtheme/termtheme/internal/ttyio"

var isForeground = func(fd uintptr) bool {
	return ttyio.IsForeground(int(fd))
}
