// quortextt is the command-line front end for the Quortex tile engine.
//
// Usage:
//
//	quortextt tiles                  - Show the four tile types and their paths
//	quortextt replay <file|dir>...   - Run scenario files and check their verdicts
//	quortextt selfplay               - Let the random bot play complete games
//	quortextt config init            - Write the default config file
//
// Global flags:
//
//	--config <path>     - Config file (default: search XDG config dirs)
//	--log-level <lvl>   - Override log.level from the config
//	--seed <value>      - RNG seed for reproducible games (0 = from config or time)
//	--workers <n>       - Parallel legality checks (0 = from config)
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/anicolao/quortextt/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagSeed     uint64
	flagWorkers  int

	cfg    config.Config
	logger *log.Logger
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quortextt",
	Short: "Quortex - hex tile placement engine",
	Long: `quortextt drives the Quortex rules engine from the terminal.

Players lay hexagonal path tiles on a shared board, each trying to run a
flow from their own edge to the opposite one. A placement is only legal
if every player can still finish.

Available commands:
  tiles     - Show the tile types
  replay    - Check scenario files against the legality rules
  selfplay  - Run bot-vs-bot games
  config    - Manage the config file

Examples:
  quortextt tiles --rotations
  quortextt replay scenarios/
  quortextt selfplay --games 10 --seed 42
  quortextt config init`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, else time based)")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "Parallel legality checks (0 = from config)")

	// Add subcommands
	rootCmd.AddCommand(tilesCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(selfplayCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads the config, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagSeed != 0 {
		cfg.SelfPlay.Seed = flagSeed
	}
	if flagWorkers > 0 {
		cfg.Engine.Workers = flagWorkers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          cfg.Log.Prefix,
		Level:           level,
	})
	return nil
}
