package tools

import (
	"context"
	"errors"
	"io"

	"github.com/lakshaymaurya-felt/pccare/internal/clean"
	"github.com/lakshaymaurya-felt/pccare/internal/core"
	"github.com/lakshaymaurya-felt/pccare/internal/menu"
)

func cleanTempFiles(d Deps) *menu.Action {
	return &menu.Action{
		Name:        "Clean Temp Files",
		Description: "Deletes temporary files from system and user directories.",
		Run: func(_ context.Context, out io.Writer) menu.Outcome {
			var res clean.Result
			d.Spin(out, "Scanning for temp files...", func() {
				res = clean.CleanDirs(d.TempDirs(), d.Logger)
			})
			d.Logger.Debug("temp cleanup finished",
				"freed", res.Freed, "removed", res.Removed, "skipped", res.Skipped())
			return menu.Succeed("Freed approximately %s of space (%d items skipped).",
				core.FormatMB(res.Freed), res.Skipped())
		},
	}
}

func emptyRecycleBin(d Deps) *menu.Action {
	return &menu.Action{
		Name:        "Empty Recycle Bin",
		Description: "Permanently deletes everything in the Recycle Bin on all drives",
		Guarded:     true,
		Run: func(_ context.Context, out io.Writer) menu.Outcome {
			info, err := d.QueryRecycleBin()
			if errors.Is(err, core.ErrUnsupported) {
				return menu.Fail("Emptying the Recycle Bin is not supported on this platform.")
			}
			if err != nil {
				d.Logger.Debug("recycle bin query failed", "error", err)
			} else if info.Items == 0 {
				return menu.Succeed("Recycle Bin is already empty.")
			}

			d.Spin(out, "Emptying Recycle Bin...", func() {
				err = d.EmptyRecycleBin()
			})
			if err != nil {
				return menu.Fail("Could not empty the Recycle Bin: %v", err)
			}
			if info.Items > 0 {
				return menu.Succeed("Recycle Bin emptied (%d items, %s freed).",
					info.Items, core.FormatSize(info.Size))
			}
			return menu.Succeed("Recycle Bin emptied.")
		},
	}
}
