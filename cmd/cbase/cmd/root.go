package cmd

import (
	"fmt"
	"os"

	"github.com/rdavid/cbase/internal/config"
	"github.com/rdavid/cbase/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *logging.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cbase",
	Short: "Bounded Formatting Utilities",
	Long: `cbase exposes a small set of buffer-safe formatting helpers: a bounded
formatted writer with all-or-nothing truncation semantics, a portable
"describe this error code" lookup, and a humanized timestamp printer.

Every subcommand writes through a fixed-capacity buffer, so output either
fits completely or the command fails; partial output is never produced.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load configuration
		var err error
		cfg, err = config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Override config with command line flags
		if cmd.Flags().Changed("verbose") {
			verbose, _ := cmd.Flags().GetBool("verbose")
			cfg.Verbose = verbose
		}

		// Set log level based on verbose flag
		logLevel := cfg.LogLevel
		if cfg.Verbose {
			logLevel = "debug"
		}

		// Initialize logger
		logger = logging.New(logLevel, cfg.LogFormat, os.Stderr)

		return nil
	},
	Version: getVersion(),
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cbase.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	// Add subcommands
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(errnoCmd)
	rootCmd.AddCommand(nowCmd)
	rootCmd.AddCommand(configCmd)
}

// Set at build time
var version = "dev"

func getVersion() string {
	return version
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	return cfg
}

// GetLogger returns the configured logger
func GetLogger() *logging.Logger {
	return logger
}
