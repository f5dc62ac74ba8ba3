//go:build windows

package timedreader

import (
	"time"

	"github.com/go-termtheme/termtheme/internal/termpoll"
	"golang.org/x/sys/windows"
)

func waitReadable(fd uintptr, timeout time.Duration) error {
	return termpoll.WaitReadable(windows.Handle(fd), timeout)
}
