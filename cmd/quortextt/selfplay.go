package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/anicolao/quortextt/internal/bot"
	"github.com/anicolao/quortextt/internal/session"
)

var (
	flagGames    int
	flagMaxTurns int
	flagShow     bool
)

var selfplayCmd = &cobra.Command{
	Use:   "selfplay",
	Short: "Run bot-vs-bot games",
	Long: `Seats the random bot in every chair and plays games to the end, or
until --max-turns placements have been made. Each game is hosted in its
own session, so every move passes through the same checks a player's
move would. Game i uses seed+i, so a run can be reproduced exactly.`,
	RunE: runSelfPlay,
}

func init() {
	selfplayCmd.Flags().IntVarP(&flagGames, "games", "n", 0, "Number of games (0 = from config)")
	selfplayCmd.Flags().IntVar(&flagMaxTurns, "max-turns", -1, "Placement limit per game (0 = none, -1 = from config)")
	selfplayCmd.Flags().BoolVar(&flagShow, "show", false, "Print the final board of each game")
}

func runSelfPlay(cmd *cobra.Command, args []string) error {
	games := cfg.SelfPlay.Games
	if flagGames > 0 {
		games = flagGames
	}
	maxTurns := cfg.SelfPlay.MaxTurns
	if flagMaxTurns >= 0 {
		maxTurns = flagMaxTurns
	}
	seed := cfg.SelfPlay.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("starting selfplay", "games", games, "players", cfg.Game.Players, "seed", seed, "workers", cfg.Engine.Workers)

	ctx := cmd.Context()
	wins := make(map[int]int)
	for i := 0; i < games; i++ {
		gameSeed := seed + uint64(i)
		s, err := session.New(cfg.Settings(), session.Options{Seed: gameSeed, Logger: logger})
		if err != nil {
			return err
		}
		b := bot.NewRandom(rand.New(rand.NewPCG(gameSeed, gameSeed+1)), cfg.Engine.Workers)

		start := time.Now()
		sum, err := bot.SelfPlay(ctx, s, b, maxTurns)
		if err != nil {
			return fmt.Errorf("game %d (seed %d): %w", i, gameSeed, err)
		}
		for _, w := range sum.Winners {
			wins[w]++
		}
		logger.Debug("game finished", "session", s.ID(), "elapsed", time.Since(start))

		if flagShow {
			final := sum.Game.Board()
			fmt.Print(renderBoard(final))
			fmt.Println(renderLegend(final))
		}
		line := fmt.Sprintf("game %-3d seed %-20d %3d turns  %s", i, gameSeed, sum.Turns, sum.Reason)
		if len(sum.Winners) > 0 {
			line += fmt.Sprintf(" %v", sum.Winners)
		}
		fmt.Println(line)
	}

	if games > 1 {
		fmt.Println()
		for p := 0; p < cfg.Game.Players; p++ {
			fmt.Printf("  %s  %d wins\n", playerStyle(p).Render(fmt.Sprintf("player %d", p)), wins[p])
		}
	}
	return nil
}
