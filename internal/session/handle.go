package session

import "github.com/anicolao/quortextt/internal/game"

// Handle is one viewer's connection to a session.
type Handle struct {
	session *Session
	viewer  game.Viewer
}

func (h *Handle) Viewer() game.Viewer { return h.viewer }

// ActionsFrom returns the actions visible to the viewer, skipping the first
// index of them.
func (h *Handle) ActionsFrom(index int) []game.Action {
	h.session.mu.Lock()
	visible := h.session.game.ActionsForViewer(h.viewer)
	h.session.mu.Unlock()

	if index < 0 {
		index = 0
	}
	if index >= len(visible) {
		return nil
	}
	return visible[index:]
}

// History returns every action visible to the viewer.
func (h *Handle) History() []game.Action {
	return h.ActionsFrom(0)
}

// Submit applies a on the viewer's behalf and then performs any automatic
// draws and reveals that follow from it.
func (h *Handle) Submit(a game.Action) error {
	return h.session.submit(h.viewer, a)
}
