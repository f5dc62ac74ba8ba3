// Package quirks derives terminal-specific query policy from the
// environment: whether a terminal is known to not support OSC 10/11, and
// which string terminator to emit.
package quirks

import (
	"os"
	"runtime"
	"strings"
	"sync"
	"unicode/utf8"
)

// Quirks is a small closed set of terminal policy decisions derived once
// from $TERM.
type Quirks int

const (
	// None means no quirk applies; the terminal is assumed to support
	// OSC 10/11 queries.
	None Quirks = iota
	// Unsupported means the terminal is known not to answer OSC 10/11
	// queries reliably (or at all), so queries should short-circuit
	// before any I/O.
	Unsupported
)

// ST is the canonical OSC string terminator, ESC \.
const ST = "\x1b\\"

// BEL is the alternate OSC terminator some terminals (notably
// rxvt-unicode) use instead of ST.
const BEL = "\x07"

var (
	once   sync.Once
	cached Quirks
)

// FromEnv derives the Quirks value for the current process from $TERM,
// memoizing the result so repeated calls (even after a later os.Setenv)
// remain consistent within the process.
func FromEnv() Quirks {
	once.Do(func() {
		cached = fromEnvEager()
	})
	return cached
}

func fromEnvEager() Quirks {
	term, ok := os.LookupEnv("TERM")
	switch {
	case ok && !utf8.ValidString(term):
		return Unsupported
	case !ok:
		if runtime.GOOS == "windows" {
			return None
		}
		return Unsupported
	case term == "dumb":
		return Unsupported
	case term == "screen" || strings.HasPrefix(term, "screen."):
		// GNU Screen relays OSC queries to the underlying terminal and
		// replies to DA1 before relaying the OSC reply back, which breaks
		// the DA1-arrives-first heuristic used to detect unsupported
		// terminals. Hard-excluded rather than risk either always
		// stalling on the timeout or leaking extra replies to the screen.
		return Unsupported
	default:
		return None
	}
}

// IsKnownUnsupported reports whether q indicates the terminal should not
// be queried at all.
func (q Quirks) IsKnownUnsupported() bool {
	return q == Unsupported
}

// StringTerminator returns the terminator to append to an outgoing OSC
// query. Released terminal-colorsaurus sends BEL unconditionally: quite a
// few rxvt-unicode users run with $TERM set to something other than
// "rxvt-unicode" (e.g. "xterm" or "screen"), so a per-TERM special case
// misses them; accepting/emitting BEL uniformly sidesteps that.
func (q Quirks) StringTerminator() string {
	return BEL
}
