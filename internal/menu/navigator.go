package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lakshaymaurya-felt/pccare/internal/logging"
	"github.com/lakshaymaurya-felt/pccare/internal/ui"
)

// Navigator drives the render/read/dispatch loop over a menu tree.
type Navigator struct {
	prompt       *Prompt
	out          io.Writer
	logger       *slog.Logger
	header       func(io.Writer)
	clear        func(io.Writer)
	invalidPause time.Duration
	sleep        func(time.Duration)
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger sets the debug logger.
func WithLogger(l *slog.Logger) Option {
	return func(n *Navigator) { n.logger = l }
}

// WithHeader sets the banner drawn above every menu.
func WithHeader(fn func(io.Writer)) Option {
	return func(n *Navigator) { n.header = fn }
}

// WithClearScreen sets the screen-clearing function. Nil disables clearing.
func WithClearScreen(fn func(io.Writer)) Option {
	return func(n *Navigator) { n.clear = fn }
}

// WithInvalidPause sets how long "Invalid choice." stays visible.
func WithInvalidPause(d time.Duration) Option {
	return func(n *Navigator) { n.invalidPause = d }
}

// NewNavigator reads choices from in and renders to out.
func NewNavigator(in io.Reader, out io.Writer, opts ...Option) *Navigator {
	n := &Navigator{
		prompt:       NewPrompt(in, out),
		out:          out,
		logger:       logging.NewNop(),
		header:       func(io.Writer) {},
		clear:        func(io.Writer) {},
		invalidPause: time.Second,
		sleep:        time.Sleep,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.clear == nil {
		n.clear = func(io.Writer) {}
	}
	if n.header == nil {
		n.header = func(io.Writer) {}
	}
	return n
}

// Prompt exposes the navigator's input reader.
func (n *Navigator) Prompt() *Prompt {
	return n.prompt
}

// Run validates root, then shows it until its exit key is chosen. End of
// input also ends the session and is not reported as an error; a cancelled
// ctx is.
func (n *Navigator) Run(ctx context.Context, root *Menu) error {
	if err := Validate(root); err != nil {
		return err
	}
	err := n.loop(ctx, root, 0)
	if errors.Is(err, io.EOF) {
		n.logger.Debug("input closed, leaving menu")
		return nil
	}
	return err
}

func (n *Navigator) loop(ctx context.Context, m *Menu, depth int) error {
	leave := reservedKey(depth)
	n.logger.Debug("enter menu", "menu", m.Name, "depth", depth)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n.render(m, depth)

		choice, err := n.prompt.Ask("Select an option: ")
		if err != nil {
			return err
		}
		if choice == leave {
			n.logger.Debug("leave menu", "menu", m.Name)
			return nil
		}

		entry, ok := m.Lookup(choice)
		if !ok {
			n.invalid(choice)
			continue
		}

		switch e := entry.(type) {
		case *Menu:
			if err := n.loop(ctx, e, depth+1); err != nil {
				return err
			}
		case *Action:
			if err := n.runAction(ctx, e, depth); err != nil {
				return err
			}
		}
	}
}

func (n *Navigator) render(m *Menu, depth int) {
	n.clear(n.out)
	n.header(n.out)

	fmt.Fprintln(n.out, "  "+ui.SectionTitle(m.Name))
	for _, it := range m.Items {
		fmt.Fprintf(n.out, "  %s %s\n", entryStyle(it.Entry).Render(it.Key+"."), it.Entry.Title())
	}

	if depth == 0 {
		fmt.Fprintf(n.out, "\n  %s Exit\n", ui.SubmenuStyle.Render(ExitKey+"."))
	} else {
		fmt.Fprintf(n.out, "\n  %s Return to Previous Menu\n", ui.SubmenuStyle.Render(strings.ToUpper(BackKey)+"."))
	}
	fmt.Fprintln(n.out, ui.Rule())
}

// runAction invokes a and reports its outcome. A declined confirmation
// returns straight to the menu; a completed action waits for Enter.
func (n *Navigator) runAction(ctx context.Context, a *Action, depth int) error {
	fmt.Fprintln(n.out)
	fmt.Fprintln(n.out, ui.SectionTitle(a.Name))

	outcome, err := a.Invoke(ctx, n.prompt, n.out)
	if err != nil {
		fmt.Fprintln(n.out, "  "+ui.Info(outcome.Message))
		if errors.Is(err, ErrDeclined) {
			n.logger.Debug("action declined", "action", a.Name)
			return nil
		}
		return err
	}

	if outcome.Succeeded {
		fmt.Fprintln(n.out, "  "+ui.Success(outcome.Message))
		n.logger.Debug("action succeeded", "action", a.Name)
	} else {
		fmt.Fprintln(n.out, "  "+ui.Failure(outcome.Message))
		n.logger.Debug("action failed", "action", a.Name, "error", outcome.Err())
	}

	return n.prompt.Pause(pauseLabel(depth))
}

func pauseLabel(depth int) string {
	if depth == 0 {
		return "Press Enter to return to the main menu..."
	}
	return "Press Enter to continue..."
}

func (n *Navigator) invalid(choice string) {
	n.logger.Debug("invalid choice", "input", choice, "error", ErrInputInvalid)
	fmt.Fprintln(n.out, ui.ErrorStyle.Render("Invalid choice."))
	if n.invalidPause > 0 {
		n.sleep(n.invalidPause)
	}
}

func entryStyle(e Entry) lipgloss.Style {
	switch v := e.(type) {
	case *Menu:
		return ui.SubmenuStyle
	case *Action:
		switch {
		case v.Destructive:
			return ui.DestructiveStyle
		case v.LongRunning:
			return ui.LongRunningStyle
		}
	}
	return ui.ActionStyle
}
