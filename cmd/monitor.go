package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/pccare/internal/monitor"
)

var monitorRefresh int

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Monitor system load",
	Long:  "Real-time dashboard with CPU and memory usage. Press q to quit.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if monitorRefresh < 1 {
			return fmt.Errorf("invalid --refresh %d: must be at least 1", monitorRefresh)
		}
		if _, _, err := setup(); err != nil {
			return err
		}
		return monitor.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(),
			monitor.SystemSampler, time.Duration(monitorRefresh)*time.Second)
	},
}

func init() {
	monitorCmd.Flags().IntVar(&monitorRefresh, "refresh", 1, "Refresh interval in seconds")
}
