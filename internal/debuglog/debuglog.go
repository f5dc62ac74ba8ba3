// Package debuglog is a file-backed diagnostic logger for the engine and
// CLI. It buffers everything written before a destination file is
// configured, so early startup diagnostics from before flag parsing are
// never lost, and discards silently once told to (or after a failed
// SetFile) rather than erroring out of a color query.
package debuglog

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

type sink struct {
	mu      sync.Mutex
	file    *os.File
	buffer  []byte
	discard bool
}

func (s *sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.discard {
		return len(p), nil
	}
	if s.file == nil {
		s.buffer = append(s.buffer, p...)
		return len(p), nil
	}
	return s.file.Write(p)
}

var globalSink = &sink{}

var logger = log.NewWithOptions(globalSink, log.Options{
	ReportTimestamp: true,
	Prefix:          "termtheme",
})

// SetFile directs subsequent log output to path, flushing anything
// buffered before this call. An empty path switches to discard mode,
// dropping the buffer and all future writes. A failure to open path also
// falls back to discard mode, so a broken log destination never turns
// into a failed query.
func SetFile(path string) error {
	globalSink.mu.Lock()
	defer globalSink.mu.Unlock()

	if globalSink.file != nil {
		_ = globalSink.file.Close()
		globalSink.file = nil
	}

	if path == "" {
		globalSink.discard = true
		globalSink.buffer = nil
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		globalSink.discard = true
		globalSink.buffer = nil
		return err
	}

	globalSink.discard = false
	if len(globalSink.buffer) > 0 {
		_, _ = f.Write(globalSink.buffer)
		globalSink.buffer = nil
	}
	globalSink.file = f
	return nil
}

// Printf logs a formatted message at info level.
func Printf(format string, args ...any) {
	logger.Infof(format, args...)
}

// Println logs args at info level, space-separated.
func Println(args ...any) {
	logger.Info(fmt.Sprint(args...))
}

// Close releases the current log file, if any.
func Close() error {
	globalSink.mu.Lock()
	defer globalSink.mu.Unlock()

	if globalSink.file == nil {
		return nil
	}
	err := globalSink.file.Close()
	globalSink.file = nil
	return err
}
