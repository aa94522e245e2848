package legality

import (
	"github.com/anicolao/quortextt/internal/board"
	"github.com/anicolao/quortextt/internal/hex"
)

// step is one hex of a potential path: the flow enters through entry and
// leaves through exit.
type step struct {
	pos   hex.Pos
	entry hex.Direction
	exit  hex.Direction
}

// edgeKey names an inter-hex edge independent of the side it is seen from.
// Boundary edges pair the cell with the off-board position across them.
type edgeKey struct {
	a, b hex.Pos
}

func keyOf(p hex.Pos, d hex.Direction) edgeKey {
	q := p.Step(d)
	if q.Less(p) {
		p, q = q, p
	}
	return edgeKey{a: p, b: q}
}

// claims records the resources reserved by the paths already found.
type claims struct {
	edges   map[edgeKey]bool
	demands map[hex.Pos][]hex.Connection
}

func newClaims() *claims {
	return &claims{
		edges:   make(map[edgeKey]bool),
		demands: make(map[hex.Pos][]hex.Connection),
	}
}

func (c *claims) edgeTaken(p hex.Pos, d hex.Direction) bool {
	return c.edges[keyOf(p, d)]
}

// accepts reports whether the empty cell at p can still route entry to exit
// alongside everything demanded of it so far.
func (c *claims) accepts(p hex.Pos, entry, exit hex.Direction) bool {
	want := hex.Connect(entry, exit)
	existing := c.demands[p]
	for _, d := range existing {
		if d == want {
			return true
		}
	}
	all := make([]hex.Connection, 0, len(existing)+1)
	all = append(all, existing...)
	all = append(all, want)
	return Satisfiable(all...)
}

func (c *claims) claimPath(b *board.Board, path []step) {
	for _, s := range path {
		c.edges[keyOf(s.pos, s.entry)] = true
		c.edges[keyOf(s.pos, s.exit)] = true
		if !b.Tile(s.pos).IsEmpty() {
			continue
		}
		want := hex.Connect(s.entry, s.exit)
		dup := false
		for _, d := range c.demands[s.pos] {
			if d == want {
				dup = true
				break
			}
		}
		if !dup {
			c.demands[s.pos] = append(c.demands[s.pos], want)
		}
	}
}

// node is a search state: the flow stands in pos having entered through entry.
type node struct {
	pos    hex.Pos
	entry  hex.Direction
	parent int
}

type slotKey struct {
	pos hex.Pos
	dir hex.Direction
}

// findPotentialPath runs a breadth-first search from the player's start
// slots to any goal slot, respecting the resources already claimed.
// A path never visits the same hex twice.
func findPotentialPath(b *board.Board, player int, c *claims) ([]step, bool) {
	start, ok := b.StartSide(player)
	if !ok {
		return nil, false
	}
	goal := start.Add(3)

	goalSlots := make(map[slotKey]bool)
	for _, s := range b.EdgesOnBoardEdge(goal) {
		goalSlots[slotKey{s.Pos, s.Dir}] = true
	}

	// Each inter-hex edge is expanded at most once per search.
	var nodes []node
	visited := make(map[edgeKey]bool)
	push := func(n node) {
		k := keyOf(n.pos, n.entry)
		if visited[k] {
			return
		}
		visited[k] = true
		nodes = append(nodes, n)
	}

	for _, s := range b.EdgesOnBoardEdge(start) {
		if c.edgeTaken(s.Pos, s.Dir) {
			continue
		}
		push(node{pos: s.Pos, entry: s.Dir, parent: -1})
	}

	for head := 0; head < len(nodes); head++ {
		n := nodes[head]
		tile := b.Tile(n.pos)

		for _, exit := range candidateExits(tile, n.entry) {
			if tile.IsEmpty() && !c.accepts(n.pos, n.entry, exit) {
				continue
			}
			if c.edgeTaken(n.pos, exit) {
				continue
			}
			if goalSlots[slotKey{n.pos, exit}] {
				return tracePath(nodes, head, exit), true
			}
			next, ok := b.Neighbor(n.pos, exit)
			if !ok || onPath(nodes, head, next) {
				continue
			}
			push(node{pos: next, entry: exit.Reversed(), parent: head})
		}
	}
	return nil, false
}

// candidateExits lists where a flow entering through entry may leave: the
// one forced exit of a placed tile, or any other edge of an empty cell.
func candidateExits(t board.Tile, entry hex.Direction) []hex.Direction {
	if t.Kind == board.Placed {
		return []hex.Direction{t.Placed.ExitFromEntrance(entry)}
	}
	exits := make([]hex.Direction, 0, hex.NumDirections-1)
	for _, d := range hex.Directions {
		if d != entry {
			exits = append(exits, d)
		}
	}
	return exits
}

func onPath(nodes []node, i int, p hex.Pos) bool {
	for ; i >= 0; i = nodes[i].parent {
		if nodes[i].pos == p {
			return true
		}
	}
	return false
}

// tracePath rebuilds the path ending at nodes[i], which leaves through exit.
func tracePath(nodes []node, i int, exit hex.Direction) []step {
	var rev []step
	for ; i >= 0; i = nodes[i].parent {
		n := nodes[i]
		rev = append(rev, step{pos: n.pos, entry: n.entry, exit: exit})
		exit = n.entry.Reversed()
	}
	path := make([]step, len(rev))
	for i, s := range rev {
		path[len(rev)-1-i] = s
	}
	return path
}
