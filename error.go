package termtheme

import (
	"errors"
	"time"

	"github.com/go-termtheme/termtheme/internal/queryengine"
)

// ErrorKind is the closed set of ways a query can fail.
type ErrorKind int

const (
	// Io wraps an OS error; fatal to the call.
	Io ErrorKind = iota
	// Parse carries the raw reply bytes that failed to match the
	// expected framing or the X11 color grammar.
	Parse
	// Timeout carries the configured timeout that elapsed before a
	// complete reply was parsed.
	Timeout
	// NotATerminal is emitted only when an optional precondition demanded
	// a TTY on a specific stream and that stream was redirected.
	NotATerminal
	// UnsupportedTerminal is emitted when the quirks registry says so,
	// when the DA1-first heuristic fires, when the platform has no
	// terminal support compiled in, or when stdin is an MSYS/Cygwin pipe.
	UnsupportedTerminal
)

func (k ErrorKind) String() string {
	switch k {
	case Io:
		return "io"
	case Parse:
		return "parse"
	case Timeout:
		return "timeout"
	case NotATerminal:
		return "not a terminal"
	case UnsupportedTerminal:
		return "unsupported terminal"
	default:
		return "unknown"
	}
}

// Error is a tagged union over the closed set of failure modes a query
// can produce. Exactly one of the auxiliary fields is meaningful,
// selected by Kind.
type Error struct {
	Kind    ErrorKind
	Timeout time.Duration
	Raw     []byte
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case Io:
		return "termtheme: io error: " + e.Err.Error()
	case Parse:
		return "termtheme: could not parse terminal response"
	case Timeout:
		return "termtheme: timed out waiting for terminal response"
	case NotATerminal:
		return "termtheme: stdout is not a terminal"
	case UnsupportedTerminal:
		return "termtheme: terminal does not support color queries"
	default:
		return "termtheme: unknown error"
	}
}

func (e *Error) Unwrap() error { return e.Err }

func wrapError(err error) *Error {
	var qerr *queryengine.Error
	if !errors.As(err, &qerr) {
		return &Error{Kind: Io, Err: err}
	}
	kind := ErrorKind(qerr.Kind)
	return &Error{Kind: kind, Timeout: qerr.Timeout, Raw: qerr.Raw, Err: qerr.Err}
}
