package queryengine

import (
	"os"

	"golang.org/x/term"
)

func checkPreconditions(opts Options) error {
	if opts.RequireStdoutTTY && !term.IsTerminal(int(os.Stdout.Fd())) {
		return notATerminalError()
	}
	if opts.ProhibitStdoutPipe && isNamedPipe(os.Stdout) {
		return notATerminalError()
	}
	if opts.RequireForeground && !isForeground(os.Stdout.Fd()) {
		return notATerminalError()
	}
	return nil
}

func isNamedPipe(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeNamedPipe != 0
}
