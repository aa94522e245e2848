package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anicolao/quortextt/internal/scenario"
)

var flagQuiet bool

var replayCmd = &cobra.Command{
	Use:   "replay <scenario.yaml|dir>...",
	Short: "Check scenario files against the legality rules",
	Long: `Builds each scenario's position, applies its probe move and compares
the verdict (legal, illegal or win) with the one the file expects.
Directories are searched recursively for .yaml and .yml files.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only print the verdict lines")
}

func runReplay(cmd *cobra.Command, args []string) error {
	var scenarios []scenario.Scenario
	for _, arg := range args {
		loaded, err := loadScenarios(arg)
		if err != nil {
			return err
		}
		scenarios = append(scenarios, loaded...)
	}

	failed := 0
	for _, s := range scenarios {
		res, err := s.Run()
		if err != nil {
			logger.Error("scenario setup failed", "id", s.ID, "file", s.FilePath, "err", err)
			failed++
			continue
		}

		if !flagQuiet {
			fmt.Println(titleStyle.Render(s.ID + ": " + s.Name))
			if s.Description != "" {
				fmt.Println(legendStyle.Render(s.Description))
			}
			b := res.Game.Board()
			fmt.Print(renderBoard(b))
			fmt.Println(renderLegend(b))
		}

		status := okStyle.Render("ok  ")
		if err := s.Compare(res); err != nil {
			status = failStyle.Render("FAIL")
			logger.Warn("verdict mismatch", "id", s.ID, "err", err)
			failed++
		}
		line := fmt.Sprintf("%s %-24s %s", status, s.ID, res.Verdict())
		if res.Blocked >= 0 {
			line += fmt.Sprintf(" (blocks player %d)", res.Blocked)
		}
		if len(res.Winners) > 0 {
			line += fmt.Sprintf(" (winners %v)", res.Winners)
		}
		fmt.Println(line)
		if !flagQuiet {
			fmt.Println()
		}
	}

	logger.Info("replay finished", "scenarios", len(scenarios), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(scenarios))
	}
	return nil
}

func loadScenarios(path string) ([]scenario.Scenario, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return scenario.NewLoader(path).LoadAll()
	}
	s, err := scenario.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return []scenario.Scenario{s}, nil
}
