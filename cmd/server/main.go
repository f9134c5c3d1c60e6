package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ferti/config"
	"ferti/pkg/logging"
)

var (
	cfg    config.AppConfig
	logger *zap.Logger

	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "ferti",
	Short: "Fertilizer advisor and irrigation planner",
	Long: `ferti recommends a fertilizer for a field reading, explains how much to apply
and when, and builds a simple irrigation schedule.

Run without a subcommand to start the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		var err error
		logger, err = logging.New(cfg.LogLevel, cfg.LogFormat)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override LOG_LEVEL (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(adviseCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(weatherCmd)
	rootCmd.AddCommand(checkModelsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
