// Package cli provides the edt command-line interface: format
// conversion, validation, documentation browsing and the MCP server.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// Execute creates and runs the root command.
func Execute() error {
	return newRootCommand().Execute()
}

func newRootCommand() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:           "edt",
		Short:         "Extended data type tools",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to edt.yaml config file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("docs-dir", "", "Source directory for documentation commands")

	var cfg *Config
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		loaded, err := loadConfig(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		cfg = loaded
		slog.SetDefault(newLogger(cfg.LogLevel))
		return nil
	}

	// cfg is populated by PersistentPreRunE before any RunE fires.
	getConfig := func() *Config {
		if cfg == nil {
			return &Config{DocsDir: ".", LogLevel: "info", SearchLimit: 10}
		}
		return cfg
	}

	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newFormatCommand())
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newDocsCommand(getConfig))
	rootCmd.AddCommand(newMCPCommand(getConfig))

	return rootCmd
}
