//go:build windows

package ttyio

import (
	"os"

	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

// conioHandle bundles the separate console input/output handles Windows
// requires into a single bidirectional stream: reads go to the console
// input buffer, writes go to the console output buffer.
type conioHandle struct {
	in, out             *os.File
	ownIn, ownOut        bool
}

func (c *conioHandle) Read(p []byte) (int, error)  { return c.in.Read(p) }
func (c *conioHandle) Write(p []byte) (int, error) { return c.out.Write(p) }
func (c *conioHandle) Close() error {
	var err error
	if c.ownIn {
		err = c.in.Close()
	}
	if c.ownOut {
		if oerr := c.out.Close(); err == nil {
			err = oerr
		}
	}
	return err
}

// Open locates bidirectional access to the console. Input: stdin if it's
// a console, else CONIN$. Output: stderr if it's a console, else stdout,
// else CONOUT$.
func Open() (*Handle, error) {
	in, ownIn, err := openConsoleInput()
	if err != nil {
		return nil, err
	}
	out, ownOut, err := openConsoleOutput()
	if err != nil {
		if ownIn {
			_ = in.Close()
		}
		return nil, err
	}

	c := &conioHandle{in: in, out: out, ownIn: ownIn, ownOut: ownOut}
	// fd (read/poll side) is the input console handle; writeFd (the
	// handle raw-mode also has to touch) is the output console handle.
	h := &Handle{rw: c, fd: uintptr(in.Fd()), writeFd: uintptr(out.Fd()), owned: ownIn || ownOut}
	h.sameAsStdin = sameHandle(windows.Handle(in.Fd()), windows.Handle(os.Stdin.Fd()))
	h.sameAsStdout = sameHandle(windows.Handle(out.Fd()), windows.Handle(os.Stdout.Fd()))
	h.sameAsStderr = sameHandle(windows.Handle(out.Fd()), windows.Handle(os.Stderr.Fd()))
	return h, nil
}

func openConsoleInput() (*os.File, bool, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return os.Stdin, false, nil
	}
	f, err := os.OpenFile("CONIN$", os.O_RDWR, 0)
	if err != nil {
		return nil, false, err
	}
	return f, true, nil
}

func openConsoleOutput() (*os.File, bool, error) {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return os.Stderr, false, nil
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return os.Stdout, false, nil
	}
	f, err := os.OpenFile("CONOUT$", os.O_RDWR, 0)
	if err != nil {
		return nil, false, err
	}
	return f, true, nil
}

// sameHandle reports whether a and b refer to the same underlying kernel
// object, via the CompareObjectHandles API.
func sameHandle(a, b windows.Handle) bool {
	if a == b {
		return true
	}
	err := windows.CompareObjectHandles(a, b)
	return err == nil
}
