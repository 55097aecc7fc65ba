package ui

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpinner_StopJoinsRedrawGoroutine(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "Working...")

	s.Start()
	assert.True(t, s.Running())
	time.Sleep(250 * time.Millisecond)
	s.Stop()

	assert.False(t, s.Running())
	out := buf.String()
	assert.Contains(t, out, "Working... |")

	// No redraw happens once Stop has returned.
	time.Sleep(250 * time.Millisecond)
	assert.Equal(t, out, buf.String())
}

func TestSpinner_StartStopIdempotent(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "x")

	s.Stop()
	s.Start()
	s.Start()
	s.Stop()
	s.Stop()
	assert.False(t, s.Running())
}

func TestSpinner_ConcurrentStop(t *testing.T) {
	for i := 0; i < 50; i++ {
		var buf bytes.Buffer
		s := NewSpinner(&buf, "x")
		s.Start()

		var wg sync.WaitGroup
		for j := 0; j < 8; j++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.Stop()
			}()
		}
		wg.Wait()

		assert.False(t, s.Running())
		assert.Equal(t, 1, strings.Count(buf.String(), "\r"+strings.Repeat(" ", 6)+"\r"))
	}
}

func TestWithSpinner_StopsOnPanic(t *testing.T) {
	var buf bytes.Buffer

	func() {
		defer func() { _ = recover() }()
		WithSpinner(&buf, "Deleting cache...", func() { panic("boom") })
	}()

	out := buf.String()
	time.Sleep(250 * time.Millisecond)
	assert.Equal(t, out, buf.String())
}

func TestWithSpinner_RunsFunction(t *testing.T) {
	var buf bytes.Buffer
	called := false

	WithSpinner(&buf, "Scanning for temp files...", func() { called = true })

	assert.True(t, called)
	assert.Contains(t, buf.String(), "Scanning for temp files...")
}
