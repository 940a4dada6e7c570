package cmd

import (
	"fmt"

	"github.com/rdavid/cbase/base"
	"github.com/rdavid/cbase/internal/errors"
	"github.com/spf13/cobra"
)

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the current local time",
	Long: `Print the current local time in a humanized layout:

  Mon Feb 17 13:22:05 2020

The layout can be overridden with --layout (Go reference-time notation) or
through the time_layout config setting.`,
	Example: `  cbase now
  cbase now --layout "2006-01-02 15:04:05"`,
	Args: cobra.NoArgs,
	RunE: runNow,
}

var (
	nowLayout   string
	nowCapacity int
)

func init() {
	nowCmd.Flags().StringVarP(&nowLayout, "layout", "l", "", "time layout in Go reference-time notation (default from config)")
	nowCmd.Flags().IntVarP(&nowCapacity, "capacity", "c", 0, "timestamp buffer capacity in bytes (default from config)")
}

func runNow(cmd *cobra.Command, args []string) error {
	logger := GetLogger()
	cfg := GetConfig()

	layout := nowLayout
	if layout == "" {
		layout = cfg.TimeLayout
	}
	capacity := nowCapacity
	if capacity <= 0 {
		capacity = cfg.Capacity
	}

	buf := make([]byte, capacity)
	text := base.TimestampText(buf, layout)
	if text == base.TimestampError {
		logger.WithBuffer(capacity).Failure("timestamp formatting failed", "layout", layout)
		return errors.NewTimeError(fmt.Sprintf("timestamp does not fit a buffer of %d bytes", capacity))
	}

	logger.Time("formatted timestamp", "layout", layout, "bytes", len(text))
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
