package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/DevSymphony/symlint/internal/config"
	"github.com/DevSymphony/symlint/internal/logger"
)

var (
	// verbose is a global flag for verbose output
	verbose    bool
	logLevel   string
	logJSON    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "symlint",
	Short: "symlint - pluggable text linter",
	Long: `symlint lints text files with rules, filter rules and processor plugins
configured in .symlintrc.yml.

Commands:
  - init:     create a configuration file from the built-in modules
  - describe: show the resolved configuration and file extensions
  - list:     show the registered modules`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := logLevel
		if verbose {
			level = "debug"
		}
		if err := logger.Setup(logger.Config{Level: level, JSON: logJSON, Output: cmd.ErrOrStderr()}); err != nil {
			return err
		}
		log.Debug("logger configured", "level", level, "json", logJSON)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output (same as --log-level debug)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "write logs as JSON")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default $"+config.EnvConfigPath+" or "+config.DefaultFileName+")")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(listCmd)
}

// resolvedConfigPath returns --config when set, else the default location.
func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}
