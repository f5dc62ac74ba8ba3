package debuglog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetSink(t *testing.T) {
	t.Helper()

	globalSink.mu.Lock()
	prevFile := globalSink.file
	prevBuffer := append([]byte(nil), globalSink.buffer...)
	prevDiscard := globalSink.discard
	globalSink.file = nil
	globalSink.buffer = nil
	globalSink.discard = false
	globalSink.mu.Unlock()

	t.Cleanup(func() {
		globalSink.mu.Lock()
		if globalSink.file != nil {
			_ = globalSink.file.Close()
		}
		globalSink.file = prevFile
		globalSink.buffer = prevBuffer
		globalSink.discard = prevDiscard
		globalSink.mu.Unlock()
	})
}

func TestWriteBuffersWithoutFile(t *testing.T) {
	resetSink(t)

	n, err := globalSink.Write([]byte("test message"))
	require.NoError(t, err)
	assert.Equal(t, len("test message"), n)

	globalSink.mu.Lock()
	buf := append([]byte(nil), globalSink.buffer...)
	globalSink.mu.Unlock()
	assert.True(t, bytes.Equal(buf, []byte("test message")))
}

func TestWriteGoesToFileOnceSet(t *testing.T) {
	resetSink(t)

	logFile := filepath.Join(t.TempDir(), "test.log")
	require.NoError(t, SetFile(logFile))

	_, err := globalSink.Write([]byte("file message"))
	require.NoError(t, err)

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "file message")
}

func TestWriteDiscardedWhenInDiscardMode(t *testing.T) {
	resetSink(t)

	globalSink.mu.Lock()
	globalSink.discard = true
	globalSink.mu.Unlock()

	n, err := globalSink.Write([]byte("discarded message"))
	require.NoError(t, err)
	assert.Equal(t, len("discarded message"), n)

	globalSink.mu.Lock()
	bufLen := len(globalSink.buffer)
	globalSink.mu.Unlock()
	assert.Zero(t, bufLen)
}

func TestConcurrentWritesAreSafe(t *testing.T) {
	resetSink(t)

	logFile := filepath.Join(t.TempDir(), "concurrent.log")
	require.NoError(t, SetFile(logFile))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				_, _ = globalSink.Write([]byte("line\n"))
			}
		}(i)
	}
	wg.Wait()

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.NotEmpty(t, content)
}

func TestSetFileEmptyPathDiscards(t *testing.T) {
	resetSink(t)

	globalSink.mu.Lock()
	globalSink.buffer = []byte("buffered data")
	globalSink.mu.Unlock()

	require.NoError(t, SetFile(""))

	globalSink.mu.Lock()
	discard := globalSink.discard
	bufLen := len(globalSink.buffer)
	file := globalSink.file
	globalSink.mu.Unlock()

	assert.True(t, discard)
	assert.Zero(t, bufLen)
	assert.Nil(t, file)
}

func TestSetFileFlushesBufferedData(t *testing.T) {
	resetSink(t)

	globalSink.mu.Lock()
	globalSink.buffer = []byte("buffered message")
	globalSink.mu.Unlock()

	logFile := filepath.Join(t.TempDir(), "new.log")
	require.NoError(t, SetFile(logFile))

	globalSink.mu.Lock()
	bufLen := len(globalSink.buffer)
	file := globalSink.file
	globalSink.mu.Unlock()

	assert.Zero(t, bufLen)
	assert.NotNil(t, file)

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "buffered message")
}

func TestSetFileFailureDiscardsLogs(t *testing.T) {
	resetSink(t)

	unwritableDir := t.TempDir()
	require.NoError(t, os.Chmod(unwritableDir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(unwritableDir, 0o700) })

	logPath := filepath.Join(unwritableDir, "debug.log")
	require.Error(t, SetFile(logPath))

	globalSink.mu.Lock()
	discard := globalSink.discard
	globalSink.mu.Unlock()
	assert.True(t, discard)

	Printf("should be discarded")

	globalSink.mu.Lock()
	bufLen := len(globalSink.buffer)
	globalSink.mu.Unlock()
	assert.Zero(t, bufLen)
}

func TestPrintlnWritesToFile(t *testing.T) {
	resetSink(t)

	logFile := filepath.Join(t.TempDir(), "println.log")
	require.NoError(t, SetFile(logFile))

	Println("file message", 456)

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "file message")
}

func TestCloseIsIdempotent(t *testing.T) {
	resetSink(t)

	logFile := filepath.Join(t.TempDir(), "close.log")
	require.NoError(t, SetFile(logFile))

	require.NoError(t, Close())
	require.NoError(t, Close())

	globalSink.mu.Lock()
	file := globalSink.file
	globalSink.mu.Unlock()
	assert.Nil(t, file)
}
