//go:build windows

package termpoll

import (
	"time"

	"golang.org/x/sys/windows"
)

// WaitReadable blocks until handle signals readiness or timeout elapses,
// using WaitForSingleObject on the console input handle.
func WaitReadable(handle windows.Handle, timeout time.Duration) error {
	if timeout <= 0 {
		return ErrTimeout
	}

	ms := uint32(timeout / time.Millisecond)
	if ms == 0 {
		ms = 1
	}

	event, err := windows.WaitForSingleObject(handle, ms)
	if err != nil {
		return err
	}
	switch event {
	case windows.WAIT_OBJECT_0:
		return nil
	case uint32(windows.WAIT_TIMEOUT):
		return ErrTimeout
	default:
		return ErrTimeout
	}
}
