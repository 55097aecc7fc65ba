// Package app wires the privilege check, the tool tree and the menu
// navigator into the interactive PC CARE session.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lakshaymaurya-felt/pccare/internal/config"
	"github.com/lakshaymaurya-felt/pccare/internal/elevate"
	"github.com/lakshaymaurya-felt/pccare/internal/menu"
	"github.com/lakshaymaurya-felt/pccare/internal/monitor"
	"github.com/lakshaymaurya-felt/pccare/internal/tools"
	"github.com/lakshaymaurya-felt/pccare/internal/ui"
)

// ErrRelaunched means an elevated copy was requested and this process
// should exit without showing the menu.
var ErrRelaunched = errors.New("relaunched with administrator privileges")

const goodbye = "Exiting PC CARE. Keep your system healthy! ✨"

// App is one interactive session.
type App struct {
	in       io.Reader
	out      io.Writer
	cfg      config.Config
	logger   *slog.Logger
	elevator elevate.Elevator

	// tools overrides collaborators of the tool tree; zero fields use the
	// real system.
	tools tools.Deps
}

// Option configures an App.
type Option func(*App)

// WithElevator replaces the privilege facility.
func WithElevator(e elevate.Elevator) Option {
	return func(a *App) { a.elevator = e }
}

// WithTools replaces the tool collaborators.
func WithTools(d tools.Deps) Option {
	return func(a *App) { a.tools = d }
}

// New creates an App reading from in and writing to out.
func New(in io.Reader, out io.Writer, cfg config.Config, logger *slog.Logger, opts ...Option) *App {
	a := &App{
		in:       in,
		out:      out,
		cfg:      cfg,
		logger:   logger,
		elevator: elevate.System{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run performs the privilege pre-check, then shows the main menu until
// the user exits. It returns ErrRelaunched when an elevated copy was
// requested; the menu is not shown in that case.
func (a *App) Run(ctx context.Context) error {
	if a.elevator.Required() && !a.elevator.IsElevated() {
		return a.relaunch()
	}

	nav := menu.NewNavigator(a.in, a.out,
		menu.WithLogger(a.logger),
		menu.WithHeader(ui.PrintHeader),
		menu.WithClearScreen(a.clearScreen()),
		menu.WithInvalidPause(a.cfg.UI.InvalidPause),
	)

	root := tools.BuildTree(a.toolDeps())
	a.logger.Debug("menu ready", "root", root.Name, "items", len(root.Items))

	if err := nav.Run(ctx, root); err != nil {
		return err
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, ui.TitleStyle.Render(goodbye))
	return nil
}

func (a *App) relaunch() error {
	fmt.Fprintln(a.out, ui.InfoStyle.Render("Requesting administrator privileges..."))
	a.logger.Debug("process not elevated, relaunching")

	if err := a.elevator.Relaunch(); err != nil {
		a.logger.Debug("relaunch failed", "error", err)
		fmt.Fprintln(a.out, ui.ErrorStyle.Render(
			fmt.Sprintf("Failed to elevate privileges: %v. Please run as administrator.", err)))
		_ = menu.NewPrompt(a.in, a.out).Pause("Press Enter to exit...")
	}
	return ErrRelaunched
}

func (a *App) clearScreen() func(io.Writer) {
	if !a.cfg.UI.ClearScreen {
		return nil
	}
	return ui.ClearScreen
}

func (a *App) toolDeps() tools.Deps {
	d := a.tools
	d.Config = a.cfg
	if d.Logger == nil {
		d.Logger = a.logger
	}
	if d.Monitor == nil {
		in := a.in
		d.Monitor = func(ctx context.Context, out io.Writer) error {
			return monitor.Run(ctx, in, out, monitor.SystemSampler, time.Second)
		}
	}
	return d
}
