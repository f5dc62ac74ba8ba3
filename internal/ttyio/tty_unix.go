//go:build !windows && !js && !plan9

package ttyio

import (
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Open locates a bidirectional handle to the controlling terminal.
//
// Probing order: stderr, stdout, stdin, then /dev/tty. For each standard
// stream that is itself a terminal opened read-write, the handle reuses
// its file descriptor without taking ownership. Otherwise the code falls
// through to re-opening the device by name, and ultimately to /dev/tty.
func Open() (*Handle, error) {
	candidates := []*os.File{os.Stderr, os.Stdout, os.Stdin}
	for _, f := range candidates {
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		if isReadWrite(fd) {
			return newHandle(f, int(f.Fd()), false)
		}
		if name := ttyName(fd); name != "" {
			if dev, err := os.OpenFile(name, os.O_RDWR, 0); err == nil {
				return newHandle(dev, int(dev.Fd()), true)
			}
		}
	}

	dev, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	return newHandle(dev, int(dev.Fd()), true)
}

func newHandle(f *os.File, fd int, owned bool) (*Handle, error) {
	h := &Handle{rw: f, fd: uintptr(fd), writeFd: uintptr(fd), owned: owned}
	h.sameAsStdin = sameDevice(fd, int(os.Stdin.Fd()))
	h.sameAsStdout = sameDevice(fd, int(os.Stdout.Fd()))
	h.sameAsStderr = sameDevice(fd, int(os.Stderr.Fd()))
	return h, nil
}

// isReadWrite reports whether fd was opened with both read and write
// access, by inspecting the access mode bits returned by fcntl(F_GETFL).
func isReadWrite(fd int) bool {
	flags, err := unix.FcntlInt(uintptr(fd), unix.F_GETFL, 0)
	if err != nil {
		return false
	}
	return flags&unix.O_ACCMODE == unix.O_RDWR
}

// sameDevice reports whether fd and other refer to the same underlying
// device, short-circuiting on identical descriptors before falling back to
// comparing (st_dev, st_ino) via fstat.
func sameDevice(fd, other int) bool {
	if fd == other {
		return true
	}
	var a, b unix.Stat_t
	if err := unix.Fstat(fd, &a); err != nil {
		return false
	}
	if err := unix.Fstat(other, &b); err != nil {
		return false
	}
	return a.Dev == b.Dev && a.Ino == b.Ino
}

// IsForeground reports whether fd's controlling terminal considers the
// calling process group the foreground process group. Terminals answer
// queries immediately only when we're in the foreground; callers may use
// this to avoid stalling behind a job-control stop.
func IsForeground(fd int) bool {
	pgrp, err := unix.IoctlGetInt(fd, unix.TIOCGPGRP)
	if err != nil {
		return true
	}
	return pgrp == unix.Getpgrp()
}
