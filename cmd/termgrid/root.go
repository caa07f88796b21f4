package main

import (
	"github.com/spf13/cobra"

	"github.com/jbickler/termgrid/internal/config"
	"github.com/jbickler/termgrid/internal/logger"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "termgrid",
		Short:         "termgrid demonstrates themed terminal widgets",
		Long:          "termgrid is a showcase for a theme-aware terminal widget library:\na validated text input and a sortable, selectable, paginated data grid.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newShowcaseCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig resolves the configuration from the flag or defaults.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	if flags.configPath == "" {
		return config.DefaultConfig(), nil
	}
	return config.ParseConfig(flags.configPath)
}

// newLogger builds the application logger from configuration and flags.
func newLogger(cfg *config.Config, flags *rootFlags) (*logger.Logger, error) {
	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, HumanReadable: true})
}
