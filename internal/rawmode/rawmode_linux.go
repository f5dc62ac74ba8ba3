//go:build linux

package rawmode

import "golang.org/x/sys/unix"

func getTermios(fd int) (*unix.Termios, error) {
	return unix.IoctlGetTermios(fd, unix.TCGETS)
}

// setTermios applies t using TCSADRAIN semantics: wait for pending output
// to drain, then switch.
func setTermios(fd int, t *unix.Termios) error {
	return unix.IoctlSetTermios(fd, unix.TCSETSW, t)
}
