//go:build js || plan9

package timedreader

import (
	"errors"
	"time"
)

var errUnsupportedPlatform = errors.New("timedreader: no terminal support on this platform")

func waitReadable(uintptr, time.Duration) error {
	return errUnsupportedPlatform
}
