package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/normative-io/smech-nace-mapping/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "smechgen",
	Short: "Generate sector mapping source files",
	Long:  "Converts the curated SMECH/NACE/BCC sector spreadsheets into generated data modules for the benchmark and Business Carbon Calculator frontends.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
