package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/pccare/internal/app"
	"github.com/lakshaymaurya-felt/pccare/internal/config"
	"github.com/lakshaymaurya-felt/pccare/internal/logging"
)

var (
	// Global flags
	debug      bool
	configPath string

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "pccare",
	Short: "Clean, repair and optimize your Windows PC",
	Long: `PC CARE - Computer Assistance & Repair Engine.

An interactive maintenance menu for gamers and power users: clean temp
files, run System File Checker, flush DNS, enable the Ultimate Performance
power plan, fix Helldivers 2 cache and config, and inspect your hardware.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		a := app.New(cmd.InOrStdin(), cmd.OutOrStdout(), cfg, logger)
		if err := a.Run(cmd.Context()); err != nil {
			if errors.Is(err, app.ErrRelaunched) {
				return nil
			}
			return err
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default %APPDATA%\\pccare\\config.toml)")

	// Register all subcommands
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(monitorCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration and builds the stderr logger. --debug
// overrides the configured level.
func setup() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, nil, err
	}

	level := slog.LevelDebug
	if !debug {
		if level, err = logging.ParseLevel(cfg.Log.Level); err != nil {
			return config.Config{}, nil, err
		}
	}
	logger := logging.New(level)
	logger.Debug("configuration loaded", "path", configPath, "level", level)
	return cfg, logger, nil
}
