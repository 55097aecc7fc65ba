// Package tools defines the concrete maintenance actions and assembles
// them into the menu tree shown by the application.
package tools

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/lakshaymaurya-felt/pccare/internal/clean"
	"github.com/lakshaymaurya-felt/pccare/internal/config"
	"github.com/lakshaymaurya-felt/pccare/internal/core"
	"github.com/lakshaymaurya-felt/pccare/internal/menu"
	"github.com/lakshaymaurya-felt/pccare/internal/runner"
	"github.com/lakshaymaurya-felt/pccare/internal/sysinfo"
)

// Deps are the collaborators the actions call into. Zero fields are
// replaced with the real system implementations by BuildTree.
type Deps struct {
	Config   config.Config
	Logger   *slog.Logger
	Commands runner.Commander

	// TempDirs lists the directories emptied by Clean Temp Files.
	TempDirs func() []string

	QueryRecycleBin func() (clean.RecycleBinInfo, error)
	EmptyRecycleBin func() error

	WindowsVersion func() (core.WindowsVersion, bool)

	Collect func(ctx context.Context) sysinfo.Report

	// Monitor runs the live dashboard on out until the user quits.
	Monitor func(ctx context.Context, out io.Writer) error

	// Spin wraps a slow step with a progress indicator.
	Spin func(w io.Writer, message string, fn func())
}

func (d Deps) withDefaults() Deps {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Commands == nil {
		d.Commands = runner.Exec{}
	}
	if d.TempDirs == nil {
		extra := d.Config.Paths.ExtraTempDirs
		d.TempDirs = func() []string { return config.TempDirs(extra) }
	}
	if d.QueryRecycleBin == nil {
		d.QueryRecycleBin = clean.QueryRecycleBin
	}
	if d.EmptyRecycleBin == nil {
		d.EmptyRecycleBin = clean.EmptyRecycleBin
	}
	if d.WindowsVersion == nil {
		d.WindowsVersion = core.CurrentWindowsVersion
	}
	if d.Collect == nil {
		d.Collect = sysinfo.Collect
	}
	if d.Monitor == nil {
		d.Monitor = func(context.Context, io.Writer) error { return core.ErrUnsupported }
	}
	if d.Spin == nil {
		d.Spin = spinFor(250 * time.Millisecond)
	}
	return d
}

// BuildTree returns the root menu. It panics if the tree is malformed,
// which can only happen through a programming error.
func BuildTree(d Deps) *menu.Menu {
	d = d.withDefaults()

	return menu.MustValidate(menu.New("Main Menu",
		menu.Item{Key: "1", Entry: menu.New("General Cleaning",
			menu.Item{Key: "a", Entry: cleanTempFiles(d)},
			menu.Item{Key: "b", Entry: emptyRecycleBin(d)},
		)},
		menu.Item{Key: "2", Entry: menu.New("System Repair & Optimization",
			menu.Item{Key: "a", Entry: sfcScan(d)},
			menu.Item{Key: "b", Entry: ultimatePerformance(d)},
			menu.Item{Key: "c", Entry: flushDNS(d)},
		)},
		menu.Item{Key: "3", Entry: menu.New("Game Specific Fixes",
			menu.Item{Key: "1", Entry: menu.New("Helldivers 2",
				menu.Item{Key: "a", Entry: helldiversCache(d)},
				menu.Item{Key: "b", Entry: helldiversConfig(d)},
			)},
		)},
		menu.Item{Key: "4", Entry: systemReport(d)},
		menu.Item{Key: "5", Entry: liveMonitor(d)},
	))
}
