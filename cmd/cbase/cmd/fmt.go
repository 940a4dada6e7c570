package cmd

import (
	"fmt"
	"strconv"

	"github.com/rdavid/cbase/base"
	"github.com/rdavid/cbase/internal/errors"
	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <format> [args...]",
	Short: "Format text through a bounded buffer",
	Long: `Format text through a fixed-capacity buffer.

The formatted result is printed only when it fits the buffer completely,
terminator included; otherwise the command fails and nothing is printed.
Arguments are coerced to integers, floats or booleans where they parse as
such, and passed as strings otherwise.`,
	Example: `  cbase fmt "%d-%d" 1 22
  cbase fmt --capacity 16 "%s: %v" status true`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

var fmtCapacity int

func init() {
	fmtCmd.Flags().IntVarP(&fmtCapacity, "capacity", "c", 0, "buffer capacity in bytes, including the terminator (default from config)")
}

func runFmt(cmd *cobra.Command, args []string) error {
	logger := GetLogger()
	cfg := GetConfig()

	capacity := fmtCapacity
	if capacity <= 0 {
		capacity = cfg.Capacity
	}

	format := args[0]
	buf := make([]byte, capacity)
	n := base.PrintToString(buf, format, coerceArgs(args[1:])...)
	if n < 0 {
		logger.WithBuffer(capacity).Failure("bounded format failed", "format", format)
		return errors.NewFormatError(fmt.Sprintf("output of %q does not fit a buffer of %d bytes", format, capacity))
	}

	logger.Format("bounded format succeeded", "bytes", n, "capacity", capacity)
	fmt.Fprintln(cmd.OutOrStdout(), string(buf[:n]))
	return nil
}

// coerceArgs maps shell words onto the value kinds the format verbs expect.
func coerceArgs(words []string) []any {
	out := make([]any, 0, len(words))
	for _, w := range words {
		switch {
		case w == "true" || w == "false":
			out = append(out, w == "true")
		default:
			if i, err := strconv.ParseInt(w, 10, 64); err == nil {
				out = append(out, i)
				continue
			}
			if f, err := strconv.ParseFloat(w, 64); err == nil {
				out = append(out, f)
				continue
			}
			out = append(out, w)
		}
	}
	return out
}
