package tools

import (
	"context"
	"errors"
	"io"

	"github.com/lakshaymaurya-felt/pccare/internal/menu"
	"github.com/lakshaymaurya-felt/pccare/internal/monitor"
	"github.com/lakshaymaurya-felt/pccare/internal/sysinfo"
)

func systemReport(d Deps) *menu.Action {
	return &menu.Action{
		Name:        "System Information Report",
		Description: "Displays a detailed report of your hardware",
		Run: func(ctx context.Context, out io.Writer) menu.Outcome {
			var r sysinfo.Report
			d.Spin(out, "Gathering system data...", func() {
				r = d.Collect(ctx)
			})
			sysinfo.Render(out, r)
			return menu.Succeed("System information collected.")
		},
	}
}

func liveMonitor(d Deps) *menu.Action {
	return &menu.Action{
		Name:        "Live System Monitor",
		Description: "Shows CPU and memory load in real time",
		Run: func(ctx context.Context, out io.Writer) menu.Outcome {
			err := d.Monitor(ctx, out)
			switch {
			case errors.Is(err, monitor.ErrNotTerminal):
				return menu.Fail("The live monitor needs an interactive terminal.")
			case err != nil:
				return menu.Fail("Live monitor failed: %v", err)
			}
			return menu.Succeed("Live monitor closed.")
		},
	}
}
