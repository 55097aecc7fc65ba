package menu

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingAction returns an action whose Run increments *calls.
func countingAction(name string, calls *int, outcome Outcome) *Action {
	return &Action{
		Name:        name,
		Description: name + " description",
		Run: func(ctx context.Context, out io.Writer) Outcome {
			*calls++
			return outcome
		},
	}
}

func newTestNavigator(input string, out *bytes.Buffer) (*Navigator, *[]time.Duration) {
	var slept []time.Duration
	n := NewNavigator(strings.NewReader(input), out)
	n.sleep = func(d time.Duration) { slept = append(slept, d) }
	return n, &slept
}

func TestNavigator_DeclinedConfirmationNeverExecutes(t *testing.T) {
	calls := 0
	actionX := countingAction("ActionX", &calls, Succeed("ActionX done"))
	actionX.Destructive = true

	menuA := New("MenuA", Item{Key: "a", Entry: actionX})
	root := New("Main Menu", Item{Key: "1", Entry: menuA})
	require.NoError(t, Validate(root))

	var out bytes.Buffer
	nav, _ := newTestNavigator("1\na\nn\nm\n0\n", &out)

	err := nav.Run(context.Background(), root)
	require.NoError(t, err)

	text := out.String()
	assert.Equal(t, 0, calls, "execute must not run after a declined confirmation")
	assert.Equal(t, 1, strings.Count(text, "Run 'ActionX'?"))
	assert.Equal(t, 2, strings.Count(text, "--- MenuA ---"))
	assert.Equal(t, 2, strings.Count(text, "--- Main Menu ---"))
	assert.Contains(t, text, "ActionX cancelled.")
	assert.NotContains(t, text, "ActionX done")
	assert.NotContains(t, text, "✔")
}

func TestNavigator_ConfirmedActionRunsAndPauses(t *testing.T) {
	calls := 0
	action := countingAction("Scan", &calls, Succeed("Scan completed successfully."))
	action.LongRunning = true
	root := New("Main Menu", Item{Key: "a", Entry: action})

	var out bytes.Buffer
	nav, _ := newTestNavigator("a\nx\ny\n\n0\n", &out)

	require.NoError(t, nav.Run(context.Background(), root))

	text := out.String()
	assert.Equal(t, 1, calls)
	assert.Contains(t, text, "Invalid input. Please enter 'y' or 'n'.")
	assert.Contains(t, text, "✔ Scan completed successfully.")
	assert.Contains(t, text, "Press Enter to return to the main menu...")
	assert.NotContains(t, text, "Press Enter to continue...")
}

func TestNavigator_UnconfirmedActionRunsDirectly(t *testing.T) {
	calls := 0
	action := countingAction("Flush DNS Cache", &calls, Fail("ipconfig failed (exit code 1)"))
	root := New("Main Menu", Item{Key: "c", Entry: action})

	var out bytes.Buffer
	nav, _ := newTestNavigator("C\n\n0\n", &out)

	require.NoError(t, nav.Run(context.Background(), root))

	assert.Equal(t, 1, calls)
	assert.NotContains(t, out.String(), "(y/n)")
	assert.Contains(t, out.String(), "✖ ipconfig failed (exit code 1)")
}

func TestNavigator_InvalidChoiceRedisplaysSameMenu(t *testing.T) {
	calls := 0
	action := countingAction("Clean Temp Files", &calls, Succeed("ok"))
	root := New("Main Menu", Item{Key: "1", Entry: New("General Cleaning", Item{Key: "a", Entry: action})})

	var out bytes.Buffer
	nav, slept := newTestNavigator("9\n\n  \nm\n0\n", &out)

	require.NoError(t, nav.Run(context.Background(), root))

	text := out.String()
	// "9", "", "  " and "m" (not valid at the root) are all invalid.
	assert.Equal(t, 4, strings.Count(text, "Invalid choice."))
	assert.Equal(t, 5, strings.Count(text, "--- Main Menu ---"))
	assert.Equal(t, []time.Duration{time.Second, time.Second, time.Second, time.Second}, *slept)
	assert.Equal(t, 0, calls)
	assert.Equal(t, "Clean Temp Files", action.Name)
}

func TestNavigator_NestedExitKeyIsInvalid(t *testing.T) {
	root := New("Main Menu", Item{Key: "1", Entry: New("Sub")})

	var out bytes.Buffer
	nav, _ := newTestNavigator("1\n0\nm\n0\n", &out)
	nav.invalidPause = 0

	require.NoError(t, nav.Run(context.Background(), root))
	assert.Equal(t, 1, strings.Count(out.String(), "Invalid choice."))
	assert.Contains(t, out.String(), "M. Return to Previous Menu")
	assert.Contains(t, out.String(), "0. Exit")
}

func TestNavigator_EndOfInputStopsCleanly(t *testing.T) {
	calls := 0
	action := countingAction("Reset", &calls, Succeed("done"))
	action.Destructive = true
	root := New("Main Menu", Item{Key: "1", Entry: New("Sub", Item{Key: "a", Entry: action})})

	for _, input := range []string{"", "1\n", "1\na\n", "1\na\nq"} {
		var out bytes.Buffer
		nav, _ := newTestNavigator(input, &out)
		nav.invalidPause = 0
		assert.NoError(t, nav.Run(context.Background(), root), "input %q", input)
	}
	assert.Equal(t, 0, calls)
}

func TestNavigator_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	nav, _ := newTestNavigator("0\n", &out)

	err := nav.Run(ctx, New("Main Menu"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNavigator_HeaderAndClearCalledPerRender(t *testing.T) {
	headers, clears := 0, 0
	var out bytes.Buffer
	nav := NewNavigator(strings.NewReader("1\nm\n0\n"), &out,
		WithHeader(func(io.Writer) { headers++ }),
		WithClearScreen(func(io.Writer) { clears++ }),
	)

	require.NoError(t, nav.Run(context.Background(), New("Main Menu", Item{Key: "1", Entry: New("Sub")})))
	assert.Equal(t, 3, headers)
	assert.Equal(t, 3, clears)
}

func TestNavigator_PrecheckFailureSkipsPrompt(t *testing.T) {
	calls := 0
	action := countingAction("Helldivers 2: Reset Config", &calls, Succeed("deleted"))
	action.Destructive = true
	action.Precheck = func() error { return errors.New("user config not found") }

	var out bytes.Buffer
	nav, _ := newTestNavigator("b\n\n0\n", &out)

	require.NoError(t, nav.Run(context.Background(), New("Main Menu", Item{Key: "b", Entry: action})))
	assert.Equal(t, 0, calls)
	assert.NotContains(t, out.String(), "(y/n)")
	assert.Contains(t, out.String(), "✖ user config not found")
}

func TestNavigator_NestedActionPauseLabel(t *testing.T) {
	calls := 0
	root := New("Main Menu", Item{Key: "1", Entry: New("General Cleaning",
		Item{Key: "a", Entry: countingAction("Clean Temp Files", &calls, Succeed("freed"))},
	)})

	var out bytes.Buffer
	nav, _ := newTestNavigator("1\na\n\nm\n0\n", &out)

	require.NoError(t, nav.Run(context.Background(), root))
	assert.Equal(t, 1, calls)
	assert.Contains(t, out.String(), "Press Enter to continue...")
	assert.NotContains(t, out.String(), "return to the main menu")
}

func TestNavigator_RejectsMalformedTree(t *testing.T) {
	root := New("Main Menu", Item{Key: "1", Entry: nil})

	var out bytes.Buffer
	nav, _ := newTestNavigator("1\n0\n", &out)

	err := nav.Run(context.Background(), root)
	require.Error(t, err)
	assert.Empty(t, out.String(), "nothing is rendered for an invalid tree")

	err = nav.Run(context.Background(), nil)
	assert.Error(t, err)
}
