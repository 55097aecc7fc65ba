package tools

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/lakshaymaurya-felt/pccare/internal/config"
	"github.com/lakshaymaurya-felt/pccare/internal/core"
	"github.com/lakshaymaurya-felt/pccare/internal/menu"
)

// ─── Helldivers 2 ────────────────────────────────────────────────────────────

func requireExists(path, what string) func() error {
	return func() error {
		if !core.Exists(path) {
			return fmt.Errorf("%s not found at %s.", what, path)
		}
		return nil
	}
}

func helldiversCache(d Deps) *menu.Action {
	path := config.HelldiversShaderCache(config.HelldiversDir(d.Config.Paths.HelldiversDir))
	return &menu.Action{
		Name:        "Helldivers 2: Clear Cache",
		Description: "Can resolve stuttering by deleting the shader cache",
		Guarded:     true,
		Precheck:    requireExists(path, "Shader cache"),
		Run: func(_ context.Context, out io.Writer) menu.Outcome {
			var (
				freed int64
				err   error
			)
			d.Spin(out, "Deleting cache...", func() {
				freed, err = core.SafeDelete(path, false)
			})
			if err != nil {
				return menu.Fail("Could not clear the shader cache: %v", err)
			}
			return menu.Succeed("Helldivers 2 shader cache cleared (%s freed).", core.FormatSize(freed))
		},
	}
}

func helldiversConfig(d Deps) *menu.Action {
	path := config.HelldiversUserConfig(config.HelldiversDir(d.Config.Paths.HelldiversDir))
	return &menu.Action{
		Name:        "Helldivers 2: Reset Config",
		Description: "Resets all in-game settings to default",
		Destructive: true,
		Precheck:    requireExists(path, "User config"),
		Run: func(_ context.Context, out io.Writer) menu.Outcome {
			var err error
			d.Spin(out, "Deleting config...", func() {
				_, err = core.RemoveFile(path)
			})
			if errors.Is(err, core.ErrNotFound) {
				return menu.Fail("User config not found at %s.", path)
			}
			if err != nil {
				return menu.Fail("Could not delete the user config: %v", err)
			}
			return menu.Succeed("User config deleted. The game will create a new one on launch.")
		},
	}
}
