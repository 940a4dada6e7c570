package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rdavid/cbase/internal/config"
	"github.com/rdavid/cbase/internal/errors"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Manage cbase configuration files.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize a new configuration file",
	Long: `Initialize a new configuration file with default values.

If no path is specified, the config will be created at ~/.cbase.yaml`,
	Example: `  # Create config in home directory
  cbase config init

  # Create config at specific path
  cbase config init ./my-config.yaml`,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration values.`,
	RunE:  runConfigShow,
}

var configExampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Show example configuration",
	Long:  `Display an example configuration file with all available options.`,
	RunE:  runConfigExample,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configExampleCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	logger := GetLogger()

	var configPath string
	if len(args) > 0 {
		configPath = args[0]
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return errors.WrapConfigError("failed to get home directory", err)
		}
		configPath = filepath.Join(home, ".cbase.yaml")
	}

	// Check if file already exists
	if _, err := os.Stat(configPath); err == nil {
		return errors.NewConfigError(fmt.Sprintf("configuration file already exists: %s", configPath))
	}

	// Create default config
	cfg := config.DefaultConfig()

	// Save to file
	if err := cfg.SaveConfig(configPath); err != nil {
		return errors.WrapConfigError("failed to create configuration file", err)
	}

	logger.Success("Configuration file created", "path", configPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created at: %s\n", configPath)
	fmt.Fprintln(cmd.OutOrStdout(), "You can now edit this file to customize your settings.")

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Current Configuration:")
	fmt.Fprintf(out, "  Verbose: %t\n", cfg.Verbose)
	fmt.Fprintf(out, "  Capacity: %d\n", cfg.Capacity)
	fmt.Fprintf(out, "  Time Layout: %s\n", cfg.TimeLayout)
	fmt.Fprintf(out, "  Log Level: %s\n", cfg.LogLevel)
	fmt.Fprintf(out, "  Log Format: %s\n", cfg.LogFormat)
	fmt.Fprintf(out, "  Output Dir Permissions: %04o\n", cfg.OutputDirPermissions)
	fmt.Fprintf(out, "  Output File Permissions: %04o\n", cfg.OutputFilePermissions)

	return nil
}

func runConfigExample(cmd *cobra.Command, args []string) error {
	fmt.Fprint(cmd.OutOrStdout(), config.GenerateExampleConfig())
	return nil
}
