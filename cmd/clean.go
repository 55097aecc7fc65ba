package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/pccare/internal/clean"
	"github.com/lakshaymaurya-felt/pccare/internal/config"
	"github.com/lakshaymaurya-felt/pccare/internal/core"
	"github.com/lakshaymaurya-felt/pccare/internal/ui"
)

var cleanRecycleBin bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean temp files without the menu",
	Long:  "Empty the user and system temp directories, and optionally the Recycle Bin, then exit.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		var res clean.Result
		ui.WithSpinner(out, "Scanning for temp files...", func() {
			res = clean.CleanDirs(config.TempDirs(cfg.Paths.ExtraTempDirs), logger)
		})
		fmt.Fprintln(out, ui.Success(fmt.Sprintf("Freed approximately %s of space (%d items skipped).",
			core.FormatMB(res.Freed), res.Skipped())))
		for _, f := range res.Failures {
			logger.Debug("skipped", "path", f.Path, "error", f.Err)
		}

		if !cleanRecycleBin {
			return nil
		}
		if err := clean.EmptyRecycleBin(); err != nil {
			if errors.Is(err, core.ErrUnsupported) {
				fmt.Fprintln(out, ui.Info("Recycle Bin is not available on this platform."))
				return nil
			}
			return fmt.Errorf("empty recycle bin: %w", err)
		}
		fmt.Fprintln(out, ui.Success("Recycle Bin emptied."))
		return nil
	},
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanRecycleBin, "recycle-bin", false, "Also empty the Recycle Bin")
}
