package cmd

import (
	"fmt"
	"strconv"

	"github.com/rdavid/cbase/base"
	"github.com/rdavid/cbase/internal/errors"
	"github.com/spf13/cobra"
)

var errnoCmd = &cobra.Command{
	Use:   "errno <code>",
	Short: "Describe a platform error code",
	Long: `Describe a platform error code in human-readable form.

Codes the platform cannot describe are reported as "unknown error <code>";
the command always produces some text.`,
	Example: `  cbase errno 2
  cbase errno -- -1`,
	Args: cobra.ExactArgs(1),
	RunE: runErrno,
}

var errnoCapacity int

func init() {
	errnoCmd.Flags().IntVarP(&errnoCapacity, "capacity", "c", 0, "description buffer capacity in bytes (default from config)")
}

func runErrno(cmd *cobra.Command, args []string) error {
	logger := GetLogger()
	cfg := GetConfig()

	code, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.WrapValidationError(fmt.Sprintf("error code must be an integer, got %q", args[0]), err)
	}

	capacity := errnoCapacity
	if capacity <= 0 {
		capacity = cfg.Capacity
	}

	buf := make([]byte, capacity)
	text := base.ErrorText(code, buf)
	logger.Lookup("described error code", "code", code, "capacity", capacity)
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
