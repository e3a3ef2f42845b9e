package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cropadvisor/config"
	"cropadvisor/pkg/logging"
)

// app is what every subcommand shares once flags are parsed.
type app struct {
	cfg config.AppConfig
	log *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{log: zap.NewNop()}
	var (
		verbose       bool
		catalogSource string
		dbPath        string
	)

	cmd := &cobra.Command{
		Use:   "cropadvisor",
		Short: "Crop recommendations from a soil report and a pincode",
		Long: `cropadvisor scores the crops grown in a farmer's region against a soil
reading and prints the best matches.

Examples:
  cropadvisor recommend --name Ravi --land-area 2.5 --pincode 110001 --ph 6.5 --nitrogen 180
  cropadvisor recommend --name Ravi --land-area 2.5 --pincode 110001 --report card.xlsx --format json
  cropadvisor catalog validate --catalog-source files`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.cfg = config.Load()
			if catalogSource != "" {
				a.cfg.CatalogSource = catalogSource
			}
			if dbPath != "" {
				a.cfg.DBPath = dbPath
			}
			level := "warn"
			if verbose {
				level = "debug"
			}
			a.log = logging.New(level, a.cfg.LogFormat)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&catalogSource, "catalog-source", "", "Catalog source: builtin, sqlite or files (default from CATALOG_SOURCE)")
	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite catalog path (default from DB_PATH)")

	cmd.AddCommand(newRecommendCommand(a))
	cmd.AddCommand(newCatalogCommand(a))
	return cmd
}

func execute() error {
	return newRootCommand().Execute()
}
