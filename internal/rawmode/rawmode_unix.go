//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package rawmode

import "golang.org/x/sys/unix"

// unixGuard is a Guard over a POSIX termios state. saved is nil when the
// terminal was already raw on Enter, making Restore a no-op.
type unixGuard struct {
	fd    int
	saved *unix.Termios
}

// Enter clears ICANON and ECHO on fd — and only those flags — saving the
// prior state so Restore can undo exactly this change. If the terminal is
// already in that state, no saved state is recorded.
func Enter(fdPtr uintptr) (Guard, error) {
	fd := int(fdPtr)
	cur, err := getTermios(fd)
	if err != nil {
		return nil, err
	}

	if cur.Lflag&(unix.ICANON|unix.ECHO) == 0 {
		return &unixGuard{fd: fd, saved: nil}, nil
	}

	saved := *cur
	next := *cur
	next.Lflag &^= unix.ICANON | unix.ECHO

	if err := setTermios(fd, &next); err != nil {
		return nil, err
	}
	return &unixGuard{fd: fd, saved: &saved}, nil
}

func (g *unixGuard) Restore() {
	if g.saved == nil {
		return
	}
	_ = setTermios(g.fd, g.saved)
}
