package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mkarlsen/crimedash/internal/config"
	"github.com/mkarlsen/crimedash/internal/logging"
)

// cfg is loaded once before any command runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "crimedash",
	Short:         "Interactive dashboard over pre-aggregated FBI crime statistics",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load .env file if it exists (Overload overwrites existing env vars)
		if err := godotenv.Overload(); err != nil {
			slog.Info("no .env file found, using environment variables")
		} else {
			slog.Info("loaded .env file (overwriting existing env vars)")
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
		return nil
	},
}

func main() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
