// Package termpoll waits for a terminal file descriptor to become
// readable, with a caller-supplied deadline, on every platform this
// module supports.
package termpoll

import "errors"

// ErrTimeout is returned when the deadline elapses before the descriptor
// becomes readable. A zero or already-elapsed timeout returns this
// immediately without making any syscall.
var ErrTimeout = errors.New("termpoll: timed out waiting for readable data")
