package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osokolowskii/fm-algorithm/internal/catalog"
	"github.com/osokolowskii/fm-algorithm/internal/contracts"
	"github.com/osokolowskii/fm-algorithm/internal/league"
	"github.com/osokolowskii/fm-algorithm/internal/strength"
	"github.com/osokolowskii/fm-algorithm/internal/transfer"
	"github.com/osokolowskii/fm-algorithm/pkg/config"
	"github.com/osokolowskii/fm-algorithm/pkg/logger"
)

var (
	// Global flags
	env     string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fmscout",
	Short: "Role strength scoring and transfer target search",
	Long: `fmscout scores exported squads against the role catalog,
ranks every player of a league per role and searches the rankings
for transfer targets.

Usage:
  go run ./cmd/fmscout [command]

Examples:
  go run ./cmd/fmscout strength --league raw_files/ekstraklasa
  go run ./cmd/fmscout rank --league raw_files/ekstraklasa
  go run ./cmd/fmscout targets --position "D (L)" --role fbd --max-value 500000
  go run ./cmd/fmscout compare teams Lech Legia`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment (development|staging|production)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// app bundles what every command needs
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	catalog *catalog.Catalog
}

// bootstrap loads configuration, logging and the role catalog
func bootstrap(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("env") {
		cfg.Env = env
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	log := logger.New(cfg)

	cat, err := catalog.LoadFiles(cfg.Catalog.RolesFile, cfg.Catalog.PositionsFile)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	log.WithFields(map[string]interface{}{
		"roles":     len(cat.Roles()),
		"positions": len(cat.Positions()),
	}).Debug("Catalog loaded")

	return &app{cfg: cfg, log: log, catalog: cat}, nil
}

// ranker wires the calculator and ranker from configuration
func (a *app) ranker(evaluateAll bool) contracts.LeagueRanker {
	calc := strength.NewCalculator(a.catalog, a.log)
	return league.NewRanker(a.catalog, calc, league.Config{
		PositiveOnly:         a.cfg.Ranking.PositiveOnly,
		EvaluateAllPositions: evaluateAll || a.cfg.Ranking.EvaluateAllPositions,
		Workers:              a.cfg.Ranking.Workers,
	}, a.log)
}

// finder returns the transfer search engine
func (a *app) finder() contracts.TargetFinder {
	return transfer.NewEngine(a.log)
}
