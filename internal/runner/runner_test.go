package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses /bin/sh")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestStream_RelaysLinesAndSucceeds(t *testing.T) {
	requireShell(t)
	var buf bytes.Buffer

	res, err := Exec{}.Stream(context.Background(), &buf, "sh", "-c", "echo one; echo two 1>&2; echo; echo three")
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, 3, res.Lines)

	out := buf.String()
	assert.Contains(t, out, "  one")
	assert.Contains(t, out, "  two")
	assert.Contains(t, out, "  three")
	assert.Less(t, strings.Index(out, "one"), strings.Index(out, "three"))
}

func TestStream_VeryLongLineDoesNotStall(t *testing.T) {
	requireShell(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	var buf bytes.Buffer

	res, err := Exec{}.Stream(ctx, &buf, "sh", "-c",
		"head -c 3000000 /dev/zero | tr '\\0' a; echo; echo tail-line")
	require.NoError(t, err)
	require.NoError(t, ctx.Err(), "stream must return once the process exits")
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, 2, res.Lines)
	assert.Contains(t, buf.String(), strings.Repeat("a", 1024))
	assert.Contains(t, buf.String(), "  tail-line")
}

type failingReader struct {
	data string
	read bool
}

func (f *failingReader) Read(p []byte) (int, error) {
	if f.read {
		return 0, errors.New("pipe broken")
	}
	f.read = true
	return copy(p, f.data), nil
}

func TestRelay_ReportsReadError(t *testing.T) {
	var buf bytes.Buffer
	var res Result

	err := relay(&buf, &failingReader{data: "first\nsecond"}, &res)

	assert.EqualError(t, err, "pipe broken")
	assert.Equal(t, 2, res.Lines)
	assert.Contains(t, buf.String(), "  second")
}

func TestStream_NonZeroExit(t *testing.T) {
	requireShell(t)
	var buf bytes.Buffer

	res, err := Exec{}.Stream(context.Background(), &buf, "sh", "-c", "echo failing; exit 3")
	require.Error(t, err)
	assert.Equal(t, 3, res.ExitCode)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.Code)
	assert.Contains(t, buf.String(), "failing")
}

func TestStream_MissingBinary(t *testing.T) {
	var buf bytes.Buffer

	res, err := Exec{}.Stream(context.Background(), &buf, "pccare-definitely-not-a-command")
	assert.Error(t, err)
	assert.Equal(t, -1, res.ExitCode)
}

func TestOutput_IncludesOutputInError(t *testing.T) {
	requireShell(t)

	_, err := Exec{}.Output(context.Background(), "sh", "-c", "echo already exists; exit 1")
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, "already exists", exitErr.Output)
	assert.Contains(t, err.Error(), "exit code 1")
}

func TestCleanLine(t *testing.T) {
	assert.Equal(t, "Verification 100% complete.", cleanLine("V\x00e\x00r\x00ification 100% complete.\r"))
	assert.Equal(t, "", cleanLine("\x00\r\n"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc...", truncate("abcdef", 3))
	// "é" is two bytes; cutting in the middle backs off to a valid boundary.
	assert.Equal(t, "a...", truncate("aé", 2))
}
