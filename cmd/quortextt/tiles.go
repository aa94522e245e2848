package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anicolao/quortextt/internal/hex"
)

var flagRotations bool

var tilesCmd = &cobra.Command{
	Use:   "tiles",
	Short: "Show the four tile types",
	Long: `Lists each tile type with the three paths it joins. With --rotations
every one of the six orientations is shown.`,
	Run: runTiles,
}

func init() {
	tilesCmd.Flags().BoolVar(&flagRotations, "rotations", false, "Show all six rotations")
}

func runTiles(cmd *cobra.Command, args []string) {
	rotations := 1
	if flagRotations {
		rotations = hex.NumDirections
	}

	fmt.Printf("  %-12s  %-3s  %s\n", "Type", "Rot", "Paths")
	fmt.Printf("  %-12s  %-3s  %s\n", "----", "---", "-----")
	for _, t := range hex.TileTypes {
		for r := 0; r < rotations; r++ {
			pt := hex.NewPlacedTile(t, hex.NewRotation(r))
			conns := pt.Connections()
			fmt.Printf("  %-12s  %-3d  %s  %s  %s\n", t, r, conns[0], conns[1], conns[2])
		}
	}
}
