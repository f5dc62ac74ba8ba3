// Package rawmode implements a scoped guard for putting a terminal into
// raw (non-canonical, non-echoing) mode with guaranteed restoration.
//
// Only the flags that control echo and canonical line buffering are
// cleared; on POSIX every other mode bit is left exactly as the caller's
// shell set it, so e.g. signal generation (^C, ^Z) and output
// post-processing are unaffected. On Windows, Enter additionally enables
// virtual-terminal input on an input handle, and processed output plus
// virtual-terminal processing on an output handle.
package rawmode

import "errors"

// ErrMSYSPipe is returned when a descriptor is backed by an MSYS/Cygwin
// pty emulation layer rather than a real console. Those pipes don't
// support raw-mode manipulation at all (on POSIX this condition never
// arises; only the Windows Enter implementation ever returns it).
var ErrMSYSPipe = errors.New("rawmode: msys/cygwin pseudo-console is unsupported")

// Guard restores the terminal's prior mode when released. A zero Guard
// (returned when the terminal was already raw) makes Restore a no-op.
type Guard interface {
	// Restore unconditionally writes back the terminal's original mode,
	// ignoring any error — the caller has nothing useful to do with a
	// failed restore, and returning one would tempt callers to skip it
	// on an otherwise-successful code path.
	Restore()
}

// fdPair is the minimal surface EnterHandle needs: a read-side descriptor
// and a write-side descriptor, which are equal on every platform except
// Windows (separate console input/output handles).
type fdPair interface {
	Fd() uintptr
	WriteFd() uintptr
}

// multiGuard restores a set of guards in reverse acquisition order.
type multiGuard struct {
	guards []Guard
}

func (g *multiGuard) Restore() {
	for i := len(g.guards) - 1; i >= 0; i-- {
		g.guards[i].Restore()
	}
}

// EnterHandle puts h's read side into raw mode and, only when its write
// side is a distinct descriptor (Windows' separate console input/output
// handles), puts that side into raw mode too — mirroring the original
// implementation's independent set_raw_mode_if_necessary calls on conin
// and conout. On platforms with a single fd per terminal this reduces to
// one Enter call.
func EnterHandle(h fdPair) (Guard, error) {
	inFd, outFd := h.Fd(), h.WriteFd()

	inGuard, err := Enter(inFd)
	if err != nil {
		return nil, err
	}
	if outFd == inFd {
		return inGuard, nil
	}

	outGuard, err := Enter(outFd)
	if err != nil {
		inGuard.Restore()
		return nil, err
	}
	return &multiGuard{guards: []Guard{inGuard, outGuard}}, nil
}
