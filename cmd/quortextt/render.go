package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anicolao/quortextt/internal/board"
	"github.com/anicolao/quortextt/internal/hex"
)

var (
	playerStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
		lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	}
	tileStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	legendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

func playerStyle(p int) lipgloss.Style {
	return playerStyles[p%len(playerStyles)]
}

// renderBoard draws the board north side up. Placed tiles show their sharp
// count, colored by the first player whose flow passes through them.
func renderBoard(b *board.Board) string {
	var sb strings.Builder
	for row := board.Size - 1; row >= 0; row-- {
		sb.WriteString(strings.Repeat(" ", board.Size-row))
		for col := 0; col < board.Size; col++ {
			p := hex.P(row, col)
			t := b.Tile(p)
			switch t.Kind {
			case board.NotOnBoard:
				sb.WriteString("  ")
			case board.Empty:
				sb.WriteString(emptyStyle.Render(".") + " ")
			case board.Placed:
				cell := strconv.Itoa(t.Placed.Type.Sharps())
				if owner, ok := flowOwner(b, p); ok {
					cell = playerStyle(owner).Render(cell)
				} else {
					cell = tileStyle.Render(cell)
				}
				sb.WriteString(cell + " ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func flowOwner(b *board.Board, p hex.Pos) (int, bool) {
	for _, d := range hex.Directions {
		if player, ok := b.FlowAt(p, d); ok {
			return player, true
		}
	}
	return 0, false
}

// renderLegend names each seated player in their color.
func renderLegend(b *board.Board) string {
	parts := make([]string, 0, b.NumPlayers())
	for _, p := range b.Players() {
		start, _ := b.StartSide(p)
		parts = append(parts, playerStyle(p).Render("player "+strconv.Itoa(p))+legendStyle.Render(" from side "+strconv.Itoa(int(start))))
	}
	return strings.Join(parts, "  ")
}
