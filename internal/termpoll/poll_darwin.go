//go:build darwin

package termpoll

import (
	"time"

	"golang.org/x/sys/unix"
)

// WaitReadable blocks until fd has data available to read or timeout
// elapses. macOS's kqueue cannot register /dev/tty, so this uses pselect
// instead of poll, per the platform's documented limitation.
func WaitReadable(fd int, timeout time.Duration) error {
	if timeout <= 0 {
		return ErrTimeout
	}

	// unix.FdSet.Bits on darwin is [32]int32 — 32-bit words, unlike
	// Linux's 64-bit []int64 — so the index/bit split must divide by 32.
	fdIndex := fd / 32
	fdBit := uint(fd % 32)

	ts := unix.NsecToTimespec(timeout.Nanoseconds())
	for {
		// pselect mutates the fd_set in place, so it must be rebuilt on
		// every retry.
		var readFDs unix.FdSet
		readFDs.Bits[fdIndex] = 1 << fdBit

		n, err := unix.Pselect(fd+1, &readFDs, nil, nil, &ts, nil)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrTimeout
		}
		return nil
	}
}
