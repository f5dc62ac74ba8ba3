// Package queryengine drives the OSC 10/11 + DA1 wire protocol against
// the controlling terminal: it owns raw-mode acquisition, the DA1-first
// unsupported-terminal heuristic, and response parsing.
package queryengine

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"time"

	"github.com/go-termtheme/termtheme/internal/colormath"
	"github.com/go-termtheme/termtheme/internal/quirks"
	"github.com/go-termtheme/termtheme/internal/rawmode"
	"github.com/go-termtheme/termtheme/internal/termpoll"
	"github.com/go-termtheme/termtheme/internal/timedreader"
	"github.com/go-termtheme/termtheme/internal/ttyio"
)

const (
	queryFG  = "\x1b]10;?"
	queryBG  = "\x1b]11;?"
	da1      = "\x1b[c"
	fgPrefix = "\x1b]10;"
	bgPrefix = "\x1b]11;"
)

// readerBufferSize matches the upstream implementation's choice: OSC
// replies are short, rarely more than twenty-some bytes.
const readerBufferSize = 32

// openHandle is a seam tests substitute to drive the engine against an
// in-process pseudo-terminal instead of the real controlling terminal.
var openHandle = ttyio.Open

// quirksFromEnv is a seam tests substitute to exercise the
// known-unsupported short-circuit without fighting quirks.FromEnv's
// process-wide memoization.
var quirksFromEnv = quirks.FromEnv

// query runs the full engine algorithm shared by every public entry
// point: quirks short-circuit, handle + lock + raw-mode acquisition,
// writing the query (plus a trailing DA1 probe), reading the response(s),
// and draining the DA1 reply before returning.
func query[T any](opts Options, write func(w io.Writer, terminator string) error, read func(r *bufio.Reader) (T, error)) (T, error) {
	var zero T

	q := quirksFromEnv()
	if q.IsKnownUnsupported() {
		return zero, unsupportedError()
	}

	handle, err := openHandle()
	if err != nil {
		if errors.Is(err, ttyio.ErrUnsupportedPlatform) {
			return zero, unsupportedError()
		}
		return zero, ioError(err)
	}
	defer handle.Close()

	unlock := handle.Lock()
	defer unlock()

	guard, err := rawmode.EnterHandle(handle)
	if err != nil {
		if errors.Is(err, rawmode.ErrMSYSPipe) {
			return zero, unsupportedError()
		}
		return zero, ioError(err)
	}
	defer guard.Restore()

	if err := write(handle, q.StringTerminator()); err != nil {
		return zero, ioError(err)
	}
	if _, err := io.WriteString(handle, da1); err != nil {
		return zero, ioError(err)
	}

	timeout := opts.timeout()
	reader := bufio.NewReaderSize(timedreader.New(handle, timeout), readerBufferSize)

	result, err := read(reader)
	if err != nil {
		return zero, mapReadError(err, timeout)
	}

	// Errors draining the DA1 reply don't affect the result already
	// parsed; ignored per the engine's error-handling design.
	_ = drainDA1(reader, true)

	return result, nil
}

func mapReadError(err error, timeout time.Duration) *Error {
	var qerr *Error
	if errors.As(err, &qerr) {
		return qerr
	}
	if errors.Is(err, termpoll.ErrTimeout) {
		return timeoutError(timeout)
	}
	return ioError(err)
}

func writeQuery(w io.Writer, q string, terminator string) error {
	if _, err := io.WriteString(w, q); err != nil {
		return err
	}
	_, err := io.WriteString(w, terminator)
	return err
}

func parseResponse(raw []byte, prefix string) (colormath.Color, error) {
	if !bytes.HasPrefix(raw, []byte(prefix)) {
		return colormath.Color{}, parseError(raw)
	}
	body := raw[len(prefix):]

	switch {
	case bytes.HasSuffix(body, []byte(quirks.ST)):
		body = body[:len(body)-len(quirks.ST)]
	case bytes.HasSuffix(body, []byte(quirks.BEL)):
		body = body[:len(body)-len(quirks.BEL)]
	default:
		return colormath.Color{}, parseError(raw)
	}

	c, err := colormath.Parse(body)
	if err != nil {
		return colormath.Color{}, parseError(raw)
	}
	return c, nil
}

// Foreground queries the terminal's foreground (text) color.
func Foreground(opts Options) (colormath.Color, error) {
	if err := checkPreconditions(opts); err != nil {
		return colormath.Color{}, err
	}
	raw, err := query(opts,
		func(w io.Writer, term string) error { return writeQuery(w, queryFG, term) },
		readColorResponse,
	)
	if err != nil {
		return colormath.Color{}, err
	}
	return parseResponse(raw, fgPrefix)
}

// Background queries the terminal's background color.
func Background(opts Options) (colormath.Color, error) {
	if err := checkPreconditions(opts); err != nil {
		return colormath.Color{}, err
	}
	raw, err := query(opts,
		func(w io.Writer, term string) error { return writeQuery(w, queryBG, term) },
		readColorResponse,
	)
	if err != nil {
		return colormath.Color{}, err
	}
	return parseResponse(raw, bgPrefix)
}

// Palette holds both halves of a terminal's color scheme, queried
// together in a single raw-mode session.
type Palette struct {
	Foreground colormath.Color
	Background colormath.Color
}

type paletteRaw struct {
	fg, bg []byte
}

// ColorPalette queries both foreground and background in one raw-mode
// session, issuing OSC 10 and OSC 11 before a single trailing DA1 probe.
// If the DA1-first heuristic fires on the foreground reply, the whole
// call fails as UnsupportedTerminal without attempting the background
// read — a partial palette is never returned.
func ColorPalette(opts Options) (Palette, error) {
	if err := checkPreconditions(opts); err != nil {
		return Palette{}, err
	}

	raw, err := query(opts,
		func(w io.Writer, term string) error {
			if err := writeQuery(w, queryFG, term); err != nil {
				return err
			}
			return writeQuery(w, queryBG, term)
		},
		func(r *bufio.Reader) (paletteRaw, error) {
			fg, err := readColorResponse(r)
			if err != nil {
				return paletteRaw{}, err
			}
			bg, err := readColorResponse(r)
			if err != nil {
				return paletteRaw{}, err
			}
			return paletteRaw{fg: fg, bg: bg}, nil
		},
	)
	if err != nil {
		return Palette{}, err
	}

	fg, err := parseResponse(raw.fg, fgPrefix)
	if err != nil {
		return Palette{}, err
	}
	bg, err := parseResponse(raw.bg, bgPrefix)
	if err != nil {
		return Palette{}, err
	}
	return Palette{Foreground: fg, Background: bg}, nil
}
