//go:build linux || freebsd || netbsd || openbsd || dragonfly

package termpoll

import (
	"time"

	"golang.org/x/sys/unix"
)

// WaitReadable blocks until fd has data available to read, timeout
// elapses, or an error occurs. It uses poll(2), registering only POLLIN.
func WaitReadable(fd int, timeout time.Duration) error {
	if timeout <= 0 {
		return ErrTimeout
	}

	ms := int(timeout / time.Millisecond)
	if ms <= 0 {
		ms = 1
	}

	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(fds, ms)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrTimeout
		}
		if fds[0].Revents&(unix.POLLIN|unix.POLLHUP|unix.POLLERR) == 0 {
			return ErrTimeout
		}
		return nil
	}
}
