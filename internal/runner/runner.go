package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/lakshaymaurya-felt/pccare/internal/ui"
)

// maxErrorOutput caps how much command output is folded into an error.
const maxErrorOutput = 200

// Result describes a finished command.
type Result struct {
	ExitCode int
	Lines    int
}

// ExitError reports a command that ran but exited non-zero.
type ExitError struct {
	Command string
	Code    int
	Output  string
}

func (e *ExitError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("%s failed (exit code %d): %s", e.Command, e.Code, e.Output)
	}
	return fmt.Sprintf("%s failed (exit code %d)", e.Command, e.Code)
}

// Commander runs external commands. Tools depend on this interface so tests
// can substitute a fake.
type Commander interface {
	Stream(ctx context.Context, w io.Writer, name string, args ...string) (Result, error)
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// Exec is the Commander backed by os/exec.
type Exec struct{}

// Stream runs name with args, relaying merged stdout/stderr to w one line at
// a time as it is produced. It blocks until the process exits. A non-zero
// exit is returned as *ExitError alongside the populated Result.
func (Exec) Stream(ctx context.Context, w io.Writer, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Result{ExitCode: -1}, fmt.Errorf("pipe %s: %w", name, err)
	}
	// Share the pipe so stderr interleaves with stdout in arrival order.
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		return Result{ExitCode: -1}, fmt.Errorf("start %s: %w", name, err)
	}

	var res Result
	readErr := relay(w, stdout, &res)

	// All reads are done; Wait closes the pipe.
	waitErr := cmd.Wait()
	res.ExitCode = cmd.ProcessState.ExitCode()
	if waitErr != nil {
		return res, describe(commandLine(name, args), waitErr, nil)
	}
	if readErr != nil {
		return res, fmt.Errorf("read output of %s: %w", name, readErr)
	}
	return res, nil
}

// relay copies r to w one line at a time. Lines have no length limit. On a
// read error the rest of r is discarded so the child never blocks on a
// full pipe.
func relay(w io.Writer, r io.Reader, res *Result) error {
	br := bufio.NewReader(r)
	for {
		raw, err := br.ReadString('\n')
		if line := cleanLine(raw); line != "" {
			res.Lines++
			fmt.Fprintln(w, "  "+ui.DimStyle.Render(line))
		}
		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		_, _ = io.Copy(io.Discard, r)
		return err
	}
}

// Output runs a short command and returns its combined output.
func (Exec) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return out, describe(commandLine(name, args), err, out)
	}
	return out, nil
}

// describe wraps an exec error with contextual information.
func describe(command string, err error, output []byte) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s interrupted: %w", command, err)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{
			Command: command,
			Code:    exitErr.ExitCode(),
			Output:  truncate(cleanLine(string(output)), maxErrorOutput),
		}
	}

	return fmt.Errorf("%s: %w", command, err)
}

// cleanLine strips carriage returns and NUL bytes. Some Windows tools (sfc)
// write UTF-16LE to pipes, which shows up as NUL-interleaved ASCII.
func cleanLine(s string) string {
	s = strings.ReplaceAll(s, "\x00", "")
	s = strings.ReplaceAll(s, "\r", "")
	return strings.TrimSpace(s)
}

// truncate shortens s to at most n bytes on a valid UTF-8 boundary.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	s = s[:n]
	for len(s) > 0 && !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s + "..."
}

func commandLine(name string, args []string) string {
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}
