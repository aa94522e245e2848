// Package session shares one game between several viewers. The session owns
// the game; viewers reach it through handles that filter what they see and
// what they may do.
package session

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/anicolao/quortextt/internal/game"
)

// Options configures a new session.
type Options struct {
	// Seed drives player order and tile draws. Zero seeds from the clock.
	Seed uint64

	// KeepOrder skips the initial player order shuffle.
	KeepOrder bool

	Logger *log.Logger
}

// Update tells subscribers the history has grown to Actions entries.
type Update struct {
	Actions int
}

type subscriber struct {
	ch        chan Update
	done      chan struct{}
	closeOnce sync.Once
}

func (s *subscriber) close() {
	s.closeOnce.Do(func() {
		close(s.ch)
		close(s.done)
	})
}

// Session is safe for concurrent use.
type Session struct {
	id     string
	logger *log.Logger

	mu   sync.Mutex
	game *game.Game
	rng  *rand.Rand
	subs map[*subscriber]struct{}
}

// New creates a game, shuffles the player order and performs the opening
// draws and reveal.
func New(settings game.Settings, opts Options) (*Session, error) {
	g, err := game.New(settings)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	if !opts.KeepOrder {
		if err := g.ApplyAction(game.RandomizePlayerOrder(rng.Perm(settings.Players))); err != nil {
			return nil, fmt.Errorf("session: %w", err)
		}
	}
	if err := g.DoAutomaticActions(rng); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Session{
		id:     uuid.NewString(),
		logger: logger,
		game:   g,
		rng:    rng,
		subs:   make(map[*subscriber]struct{}),
	}
	s.logger.Debug("session created", "session", s.id, "players", settings.Players, "order", g.PlayerOrder())
	return s, nil
}

// ID returns the unique session identifier.
func (s *Session) ID() string { return s.id }

// Snapshot returns an independent copy of the game.
func (s *Session) Snapshot() *game.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Clone()
}

// Handle returns a view of the session for v.
func (s *Session) Handle(v game.Viewer) *Handle {
	return &Handle{session: s, viewer: v}
}

// Subscribe registers for history updates. The channel is closed when ctx
// ends, when the returned func is called, or when the subscriber falls
// behind.
func (s *Session) Subscribe(ctx context.Context) (<-chan Update, func()) {
	sub := &subscriber{ch: make(chan Update, 1), done: make(chan struct{})}

	s.mu.Lock()
	s.subs[sub] = struct{}{}
	s.mu.Unlock()

	unsub := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[sub]; ok {
			delete(s.subs, sub)
			sub.close()
		}
	}
	go func() {
		select {
		case <-ctx.Done():
			unsub()
		case <-sub.done:
		}
	}()
	return sub.ch, unsub
}

func (s *Session) submit(v game.Viewer, a game.Action) error {
	if !a.Performable(v) {
		s.logger.Warn("action refused", "session", s.id, "viewer", v, "action", a)
		return fmt.Errorf("session: %s may not %s: %w", v, a.Kind, game.ErrNotPerformable)
	}

	s.mu.Lock()
	if err := s.game.ApplyAction(a); err != nil {
		s.mu.Unlock()
		s.logger.Info("action rejected", "session", s.id, "viewer", v, "action", a, "error", err)
		return err
	}
	if err := s.game.DoAutomaticActions(s.rng); err != nil {
		s.logger.Error("automatic actions failed", "session", s.id, "error", err)
	}
	dropped := s.broadcastLocked(Update{Actions: s.game.HistoryLen()})
	s.mu.Unlock()

	s.logger.Debug("action applied", "session", s.id, "viewer", v, "action", a)
	if dropped > 0 {
		s.logger.Debug("dropped slow subscribers", "session", s.id, "count", dropped)
	}
	return nil
}

// broadcastLocked fans out without blocking; slow subscribers are dropped.
// Channels are only closed with s.mu held, so a send never races a close.
func (s *Session) broadcastLocked(u Update) int {
	dropped := 0
	for sub := range s.subs {
		select {
		case sub.ch <- u:
		default:
			delete(s.subs, sub)
			sub.close()
			dropped++
		}
	}
	return dropped
}
