package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrInputInvalid marks input that matched no accepted token.
	ErrInputInvalid = errors.New("invalid input")

	// ErrDeclined is returned when the user answers "n" to a confirmation.
	ErrDeclined = errors.New("confirmation declined")

	// ErrActionFailed wraps collaborator failures reported by an action.
	ErrActionFailed = errors.New("action failed")
)

// Entry is a selectable element of a Menu: either *Action or *Menu.
type Entry interface {
	// Title is the label shown next to the selection key.
	Title() string

	entry()
}

// Outcome is the result of running an action.
type Outcome struct {
	Succeeded bool
	Message   string
}

// Succeed builds a successful outcome.
func Succeed(format string, args ...any) Outcome {
	return Outcome{Succeeded: true, Message: fmt.Sprintf(format, args...)}
}

// Fail builds a failed outcome.
func Fail(format string, args ...any) Outcome {
	return Outcome{Message: fmt.Sprintf(format, args...)}
}

// Err returns nil for a successful outcome and an ErrActionFailed-wrapped
// error otherwise.
func (o Outcome) Err() error {
	if o.Succeeded {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrActionFailed, o.Message)
}

// RunFunc performs an action's side effect. Progress may be written to out.
// It must report failures through the returned Outcome.
type RunFunc func(ctx context.Context, out io.Writer) Outcome

// Action is a named leaf unit of work.
type Action struct {
	Name        string
	Description string

	// LongRunning actions (SFC) are confirmed before they start.
	LongRunning bool

	// Destructive actions remove user data and are always confirmed.
	Destructive bool

	// Guarded forces a confirmation for actions that are neither
	// long-running nor destructive but still irreversible.
	Guarded bool

	// Precheck, if set, runs before any prompt. A non-nil error ends the
	// action with a failed outcome and no prompt is shown.
	Precheck func() error

	Run RunFunc
}

// Title implements Entry.
func (a *Action) Title() string { return a.Name }

func (*Action) entry() {}

// NeedsConfirmation reports whether the action is gated by a y/n prompt.
func (a *Action) NeedsConfirmation() bool {
	return a.LongRunning || a.Destructive || a.Guarded
}

// Confirm shows the action's name and description and asks y/n until a
// valid answer is given.
func (a *Action) Confirm(p *Prompt) (bool, error) {
	return p.Confirm(fmt.Sprintf("Run '%s'? (%s)", a.Name, a.Description))
}

// Execute runs the action and normalizes the result. A panic in Run is
// recovered into a failed outcome.
func (a *Action) Execute(ctx context.Context, out io.Writer) (outcome Outcome) {
	if a.Run == nil {
		return Fail("%s is not available", a.Name)
	}
	defer func() {
		if r := recover(); r != nil {
			outcome = Fail("%s crashed: %v", a.Name, r)
		}
	}()
	return a.Run(ctx, out)
}

// Invoke runs the full contract: precheck, optional confirmation, execute.
// The returned error is ErrDeclined when the user says no, or an input
// error (io.EOF) when the prompt could not be answered. In both cases the
// action did not run.
func (a *Action) Invoke(ctx context.Context, p *Prompt, out io.Writer) (Outcome, error) {
	if a.Precheck != nil {
		if err := a.Precheck(); err != nil {
			return Fail("%v", err), nil
		}
	}

	if a.NeedsConfirmation() {
		ok, err := a.Confirm(p)
		if err != nil {
			return Outcome{Message: a.Name + " cancelled."}, err
		}
		if !ok {
			return Outcome{Message: a.Name + " cancelled."}, ErrDeclined
		}
	}

	return a.Execute(ctx, out), nil
}

// Item binds a selection key to an entry.
type Item struct {
	Key   string
	Entry Entry
}

// Menu is a named, ordered collection of items.
type Menu struct {
	Name  string
	Items []Item
}

// New creates a menu.
func New(name string, items ...Item) *Menu {
	return &Menu{Name: name, Items: items}
}

// Title implements Entry.
func (m *Menu) Title() string { return m.Name }

func (*Menu) entry() {}

// Lookup finds the entry for a normalized key.
func (m *Menu) Lookup(key string) (Entry, bool) {
	key = normalize(key)
	for _, it := range m.Items {
		if normalize(it.Key) == key {
			return it.Entry, true
		}
	}
	return nil, false
}
