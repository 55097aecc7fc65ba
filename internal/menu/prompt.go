package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lakshaymaurya-felt/pccare/internal/ui"
)

// Prompt reads single lines of user input.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompt wraps r and w.
func NewPrompt(r io.Reader, w io.Writer) *Prompt {
	return &Prompt{in: bufio.NewReader(r), out: w}
}

// Ask prints label and returns the next line, trimmed and lowercased.
// A final line without a newline is still returned; io.EOF is returned
// only when nothing was read.
func (p *Prompt) Ask(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return normalize(line), nil
		}
		return "", err
	}
	return normalize(line), nil
}

// Confirm asks question with a (y/n) suffix until the answer is "y" or "n".
// There is no retry limit.
func (p *Prompt) Confirm(question string) (bool, error) {
	for {
		answer, err := p.Ask(ui.PromptStyle.Render(question+" (y/n):") + " ")
		if err != nil {
			return false, err
		}
		yes, err := ParseYesNo(answer)
		if err == nil {
			return yes, nil
		}
		fmt.Fprintln(p.out, ui.ErrorStyle.Render("Invalid input. Please enter 'y' or 'n'."))
	}
}

// Pause waits for Enter.
func (p *Prompt) Pause(label string) error {
	_, err := p.Ask("\n" + ui.DimStyle.Render(label))
	return err
}

// ParseYesNo accepts exactly "y" or "n" after trimming and lowercasing.
func ParseYesNo(s string) (bool, error) {
	switch normalize(s) {
	case "y":
		return true, nil
	case "n":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInputInvalid, s)
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
