package tools

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/lakshaymaurya-felt/pccare/internal/core"
	"github.com/lakshaymaurya-felt/pccare/internal/menu"
	"github.com/lakshaymaurya-felt/pccare/internal/runner"
)

// ultimatePerformanceGUID is the built-in template for the Ultimate
// Performance power scheme.
const ultimatePerformanceGUID = "e9a42b02-d5df-448d-aa00-03f14749eb61"

// streamed runs a command with live output and turns its exit status into
// an outcome.
func streamed(d Deps, title, name string, args ...string) menu.RunFunc {
	return func(ctx context.Context, out io.Writer) menu.Outcome {
		_, err := d.Commands.Stream(ctx, out, name, args...)
		if err == nil {
			return menu.Succeed("%s completed successfully.", title)
		}

		d.Logger.Debug("command failed", "command", name, "error", err)
		var exitErr *runner.ExitError
		if errors.As(err, &exitErr) {
			return menu.Fail("%s finished with errors (code %d).", title, exitErr.Code)
		}
		return menu.Fail("An error occurred: %v", err)
	}
}

func sfcScan(d Deps) *menu.Action {
	const name = "Scan System Files (SFC)"
	return &menu.Action{
		Name:        name,
		Description: "Scans and repairs protected system files",
		LongRunning: true,
		Run:         streamed(d, name, "sfc", "/scannow"),
	}
}

func flushDNS(d Deps) *menu.Action {
	const name = "Flush DNS Cache"
	return &menu.Action{
		Name:        name,
		Description: "Clears the local DNS resolver cache",
		Run:         streamed(d, name, "ipconfig", "/flushdns"),
	}
}

func ultimatePerformance(d Deps) *menu.Action {
	return &menu.Action{
		Name:        "Enable Ultimate Performance",
		Description: "Activates the high-performance power plan",
		Precheck: func() error {
			v, ok := d.WindowsVersion()
			if ok && !v.AtLeastBuild(core.BuildWindows10April2018) {
				return fmt.Errorf("Ultimate Performance needs Windows 10 build %d or later (found %s).",
					core.BuildWindows10April2018, v)
			}
			return nil
		},
		Run: func(ctx context.Context, _ io.Writer) menu.Outcome {
			for _, args := range [][]string{
				{"/duplicatescheme", ultimatePerformanceGUID},
				{"/setactive", ultimatePerformanceGUID},
			} {
				if _, err := d.Commands.Output(ctx, "powercfg", args...); err != nil {
					d.Logger.Debug("powercfg failed", "args", args, "error", err)
					return menu.Fail("Could not enable the power plan. It may already exist.")
				}
			}
			return menu.Succeed("Ultimate Performance power plan enabled and set as active.")
		},
	}
}
