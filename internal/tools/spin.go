package tools

import (
	"io"
	"time"

	"github.com/lakshaymaurya-felt/pccare/internal/ui"
)

// spinFor runs fn under a spinner that stays up for at least atLeast, so fast
// steps still show feedback.
func spinFor(atLeast time.Duration) func(io.Writer, string, func()) {
	return func(w io.Writer, message string, fn func()) {
		ui.WithSpinner(w, message, func() {
			start := time.Now()
			fn()
			if rest := atLeast - time.Since(start); rest > 0 {
				time.Sleep(rest)
			}
		})
	}
}

func noSpin(_ io.Writer, _ string, fn func()) { fn() }
