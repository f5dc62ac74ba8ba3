//go:build windows

package rawmode

import (
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

type winGuard struct {
	handle  windows.Handle
	saved   uint32
	isInput bool
}

// Enter clears ENABLE_ECHO_INPUT and ENABLE_LINE_INPUT on an input handle
// (or, on an output handle, leaves echo/line-editing alone and instead
// enables virtual-terminal processing), saving the prior mode for Restore.
func Enter(fdPtr uintptr) (Guard, error) {
	h := windows.Handle(fdPtr)

	if isMSYSPipe(h) {
		return nil, ErrMSYSPipe
	}

	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return nil, err
	}

	next := mode
	isInput := mode&windows.ENABLE_LINE_INPUT != 0 || mode&windows.ENABLE_ECHO_INPUT != 0 || !isOutputMode(mode)

	if isInput {
		next &^= windows.ENABLE_ECHO_INPUT | windows.ENABLE_LINE_INPUT
		next |= windows.ENABLE_VIRTUAL_TERMINAL_INPUT
	} else {
		next |= windows.ENABLE_PROCESSED_OUTPUT | windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
	}

	if next == mode {
		return &winGuard{handle: h, saved: mode, isInput: isInput}, nil
	}

	if err := windows.SetConsoleMode(h, next); err != nil {
		return nil, err
	}
	return &winGuard{handle: h, saved: mode, isInput: isInput}, nil
}

func (g *winGuard) Restore() {
	_ = windows.SetConsoleMode(g.handle, g.saved)
}

// isOutputMode is a heuristic: output-only mode flags never appear on an
// input handle and vice versa, so their presence disambiguates which kind
// of handle we were handed when ENABLE_LINE_INPUT/ENABLE_ECHO_INPUT are
// both already clear.
func isOutputMode(mode uint32) bool {
	return mode&(windows.ENABLE_PROCESSED_OUTPUT|windows.ENABLE_WRAP_AT_EOL_OUTPUT) != 0
}

// isMSYSPipe reports whether h is backed by an MSYS/Cygwin named pipe
// rather than a real console, by inspecting the pipe's name for the
// \msys-*-pty*-* or \cygwin-*-pty*-* pattern those emulators use.
func isMSYSPipe(h windows.Handle) bool {
	if fileType, _ := windows.GetFileType(h); fileType != windows.FILE_TYPE_PIPE {
		return false
	}

	const bufSize = 1024
	var raw [bufSize]byte
	// best-effort: any failure here just means we can't tell, so fall
	// through to "not an MSYS pipe" and let the real console-mode calls
	// fail on their own if this guess was wrong.
	if err := windows.GetFileInformationByHandleEx(
		h,
		windows.FileNameInfo,
		&raw[0],
		bufSize,
	); err != nil {
		return false
	}

	nameInfo := (*windows.FILE_NAME_INFO)(unsafe.Pointer(&raw[0]))
	nameLen := int(nameInfo.FileNameLength) / 2
	if nameLen <= 0 || nameLen > (bufSize-unsafe.Sizeof(*nameInfo))/2 {
		return false
	}
	u16 := unsafe.Slice(&nameInfo.FileName[0], nameLen)
	name := strings.ToLower(windows.UTF16ToString(u16))

	return (strings.Contains(name, "msys-") || strings.Contains(name, "cygwin-")) &&
		strings.Contains(name, "-pty")
}
