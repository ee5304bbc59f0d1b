// Package cli implements the routemock command-line interface.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/routemock/routemock/pkg/logging"
)

var (
	logLevel   string
	jsonOutput bool
	logger     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "routemock",
	Short:         "Compile and evaluate mock route matchers",
	Long:          "routemock compiles declarative route specifications into per-criterion\npredicates and evaluates observed calls against them.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.New(logging.Config{
			Level:  logging.ParseLevel(logLevel),
			Format: logging.FormatText,
		})
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
}
