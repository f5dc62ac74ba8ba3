//go:build js || plan9

package rawmode

import "errors"

// ErrUnsupportedPlatform is returned by Enter on platforms with no raw-mode
// support compiled in.
var ErrUnsupportedPlatform = errors.New("rawmode: no raw mode support on this platform")

func Enter(uintptr) (Guard, error) {
	return nil, ErrUnsupportedPlatform
}
