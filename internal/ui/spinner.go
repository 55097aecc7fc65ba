package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// Spinner draws an animated progress indicator on its own goroutine while
// a long-running operation is in flight. The caller must not write to the
// same writer between Start and Stop.
type Spinner struct {
	w        io.Writer
	message  string
	frames   []string
	interval time.Duration

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}
}

// NewSpinner creates a spinner using the classic "| / - \" frames.
func NewSpinner(w io.Writer, message string) *Spinner {
	line := spinner.Line
	return &Spinner{
		w:        w,
		message:  message,
		frames:   line.Frames,
		interval: line.FPS,
	}
}

// Start begins redrawing. Calling Start on a running spinner does nothing.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.spin(s.stop, s.done)
}

// Stop signals the redraw goroutine and blocks until it has exited, then
// blanks the line. No frame is drawn after Stop returns.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	// Concurrent callers share one close and all wait for the same exit.
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
	done := s.done
	s.mu.Unlock()

	<-done

	s.mu.Lock()
	last := s.running
	s.running = false
	s.mu.Unlock()

	if last {
		fmt.Fprint(s.w, "\r"+strings.Repeat(" ", len(s.message)+5)+"\r")
	}
}

// Running reports whether the redraw goroutine is alive.
func (s *Spinner) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Spinner) spin(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		frame := s.frames[i%len(s.frames)]
		fmt.Fprint(s.w, "\r"+InfoStyle.Render(s.message+" "+frame))

		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}

// WithSpinner runs fn with a spinner showing message. The spinner is
// stopped and joined on every exit path, including a panic in fn.
func WithSpinner(w io.Writer, message string, fn func()) {
	s := NewSpinner(w, message)
	s.Start()
	defer s.Stop()
	fn()
}
