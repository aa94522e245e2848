package game

import "fmt"

// ViewerKind distinguishes who is looking at a game.
type ViewerKind uint8

const (
	PlayerViewer ViewerKind = iota
	SpectatorViewer
	AdminViewer
)

// Viewer is the perspective a history is read and written from.
// Player is only meaningful for PlayerViewer.
type Viewer struct {
	Kind   ViewerKind
	Player int
}

// AsPlayer returns the viewer for one seated player.
func AsPlayer(p int) Viewer { return Viewer{Kind: PlayerViewer, Player: p} }

// Spectator returns a viewer who sees public actions and may not act.
func Spectator() Viewer { return Viewer{Kind: SpectatorViewer} }

// Admin returns a viewer who sees and may perform everything.
func Admin() Viewer { return Viewer{Kind: AdminViewer} }

func (v Viewer) String() string {
	switch v.Kind {
	case PlayerViewer:
		return fmt.Sprintf("player %d", v.Player)
	case SpectatorViewer:
		return "spectator"
	default:
		return "admin"
	}
}
