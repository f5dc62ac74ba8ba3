package main

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T, fn func(stdout, stderr *os.File)) (stdout, stderr string) {
	t.Helper()

	outR, outW, err := os.Pipe()
	require.NoError(t, err)
	errR, errW, err := os.Pipe()
	require.NoError(t, err)

	fn(outW, errW)
	outW.Close()
	errW.Close()

	outBytes, err := io.ReadAll(outR)
	require.NoError(t, err)
	errBytes, err := io.ReadAll(errR)
	require.NoError(t, err)
	return string(outBytes), string(errBytes)
}

func TestRunHelpExitsZero(t *testing.T) {
	_, stderr := captureOutput(t, func(stdout, stderrF *os.File) {
		code := run([]string{"-h"}, stdout, stderrF)
		assert.Equal(t, 0, code)
	})
	assert.Contains(t, stderr, "Usage:")
}

func TestRunUnknownFlagExitsNonZero(t *testing.T) {
	captureOutput(t, func(stdout, stderrF *os.File) {
		code := run([]string{"--nonexistent"}, stdout, stderrF)
		assert.Equal(t, 2, code)
	})
}

func TestRunWithoutForceFailsWhenStdoutNotATerminal(t *testing.T) {
	_, stderr := captureOutput(t, func(stdout, stderrF *os.File) {
		code := run([]string{}, stdout, stderrF)
		assert.Equal(t, 1, code)
	})
	assert.NotEmpty(t, stderr)
}
