//go:build !windows && !js && !plan9

package timedreader

import (
	"os"
	"testing"
	"time"

	"github.com/go-termtheme/termtheme/internal/termpoll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fdSource struct{ *os.File }

func TestReaderSharesDeadlineAcrossReads(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	reader := New(fdSource{r}, 60*time.Millisecond)

	go func() {
		time.Sleep(10 * time.Millisecond)
		_, _ = w.Write([]byte("a"))
		time.Sleep(80 * time.Millisecond)
		_, _ = w.Write([]byte("b"))
	}()

	var buf [1]byte
	n, err := reader.Read(buf[:])
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// the second read's remaining budget should already be exhausted by
	// the time the delayed second byte arrives, since the deadline is
	// shared rather than reset per call.
	_, err = reader.Read(buf[:])
	assert.ErrorIs(t, err, termpoll.ErrTimeout)
}

func TestReaderClockStartsOnFirstRead(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	reader := New(fdSource{r}, 50*time.Millisecond)
	time.Sleep(100 * time.Millisecond)

	_, _ = w.Write([]byte("x"))
	var buf [1]byte
	n, err := reader.Read(buf[:])
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
