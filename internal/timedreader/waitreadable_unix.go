//go:build !windows && !js && !plan9

package timedreader

import (
	"time"

	"github.com/go-termtheme/termtheme/internal/termpoll"
)

func waitReadable(fd uintptr, timeout time.Duration) error {
	return termpoll.WaitReadable(int(fd), timeout)
}
