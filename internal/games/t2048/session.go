// Package t2048 implements the rules of a 2048 variant with undo and a tile swap power.
//
// The package is pure game logic: a Session turns direction, undo and swap
// commands into Frames for a renderer. It does no input mapping, drawing or
// timing of its own.
package t2048

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// BestScoreStore persists the best score across sessions.
type BestScoreStore interface {
	BestScore() (int, error)
	SaveBestScore(score int) error
}

// Observer receives every Frame a session reports.
type Observer func(Frame)

// Option configures a Session.
type Option func(*Session)

// WithSeed seeds the random source used for spawning.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithStore sets the best score store.
func WithStore(store BestScoreStore) Option {
	return func(s *Session) {
		s.store = store
	}
}

// WithObserver registers a callback for reported frames.
func WithObserver(fn Observer) Option {
	return func(s *Session) {
		s.observer = fn
	}
}

// WithLogger sets the logger. Sessions are silent by default.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithDeferredSettle makes Move stop in PhaseResolving after committing the
// slide. The caller finishes the turn with Settle, typically once its slide
// animation has played.
func WithDeferredSettle() Option {
	return func(s *Session) {
		s.deferred = true
	}
}

// Session is one game of 2048. It is not safe for concurrent use.
type Session struct {
	cfg      Config
	rng      *rand.Rand
	spawner  *Spawner
	store    BestScoreStore
	observer Observer
	logger   *log.Logger
	deferred bool

	gameID    uuid.UUID
	grid      *Grid
	ids       IDAllocator
	score     int
	best      int
	moves     int
	undosLeft int
	swapsLeft int
	prev      *Snapshot
	phase     Phase
	gameOver  bool
	swap      swapState
	lastMoves []TileMove
}

// NewSession validates cfg, loads the best score and starts a new game.
func NewSession(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:   cfg,
		phase: PhaseIdle,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	s.spawner = NewSpawner(s.rng, cfg.NewTileProbability)

	if s.store != nil {
		best, err := s.store.BestScore()
		if err != nil {
			s.logger.Warn("could not read best score", "error", err)
		} else {
			s.best = best
		}
	}

	s.NewGame()
	return s, nil
}

// NewGame discards the current game and starts a fresh one with two tiles.
// The best score is kept.
func (s *Session) NewGame() Frame {
	s.gameID = uuid.New()
	s.grid = NewGrid(s.cfg.GridSize)
	s.ids.Reset()
	s.score = 0
	s.moves = 0
	s.undosLeft = s.cfg.MaxUndoMoves
	s.swapsLeft = s.cfg.InitialSwapBudget
	s.prev = nil
	s.phase = PhaseIdle
	s.swap.clear()
	s.lastMoves = nil

	// Spawn initial tiles (2 tiles)
	s.spawner.Spawn(s.grid, &s.ids)
	s.spawner.Spawn(s.grid, &s.ids)
	s.gameOver = IsTerminal(s.grid)

	s.logger.Debug("new game", "game", s.gameID, "size", s.cfg.GridSize)
	return s.report(EventNewGame)
}

// Move slides the grid in dir.
//
// A move that changes nothing returns the current frame with EventNone and
// leaves every counter, the score and the undo snapshot untouched. A move
// issued while the session is resolving is rejected with ErrUnavailable.
func (s *Session) Move(dir Direction) (Frame, error) {
	if s.phase == PhaseResolving {
		return s.Current(), fmt.Errorf("%w: move while resolving", ErrUnavailable)
	}

	snap := s.snapshot()
	res := Slide(s.grid, dir)
	if !res.Changed {
		return s.Current(), nil
	}

	s.prev = &snap
	s.grid = res.Grid
	s.score += res.Score
	s.moves++
	s.lastMoves = res.Moves
	s.swap.clear()
	s.phase = PhaseResolving

	s.logger.Debug("move", "dir", dir, "gained", res.Score, "score", s.score)

	if s.deferred {
		return s.report(EventMove), nil
	}
	s.settle()
	return s.report(EventMove), nil
}

// Settle completes a move committed under WithDeferredSettle: it spawns a
// tile, checks for game over and releases the resolving latch.
func (s *Session) Settle() (Frame, error) {
	if s.phase != PhaseResolving {
		return s.Current(), fmt.Errorf("%w: nothing to settle", ErrUnavailable)
	}
	s.settle()
	return s.report(EventSettle), nil
}

func (s *Session) settle() {
	s.spawner.Spawn(s.grid, &s.ids)
	s.updateBest()
	s.checkGameOver()
	s.phase = PhaseIdle
}

// Undo restores the state from before the last move or swap.
// Only one step can be undone; the snapshot is consumed.
func (s *Session) Undo() (Frame, error) {
	if !s.CanUndo() {
		return s.Current(), fmt.Errorf("%w: undo", ErrUnavailable)
	}

	s.grid = s.prev.Grid.Clone()
	s.score = s.prev.Score
	s.ids.Restore(s.prev.LastID)
	s.prev = nil
	s.moves--
	s.undosLeft--
	s.swap.clear()
	s.lastMoves = nil
	s.gameOver = IsTerminal(s.grid)

	s.logger.Debug("undo", "score", s.score, "undos_left", s.undosLeft)
	return s.report(EventUndo), nil
}

// CanUndo reports whether Undo would be accepted.
func (s *Session) CanUndo() bool {
	return s.phase == PhaseIdle && s.prev != nil && s.moves > 0 && s.undosLeft > 0
}

// updateBest raises and persists the best score when the score exceeds it.
func (s *Session) updateBest() {
	if s.score <= s.best {
		return
	}
	s.best = s.score
	if s.store == nil {
		return
	}
	if err := s.store.SaveBestScore(s.best); err != nil {
		s.logger.Warn("could not save best score", "error", err)
	}
}

func (s *Session) checkGameOver() {
	over := IsTerminal(s.grid)
	if over && !s.gameOver {
		s.logger.Info("game over", "game", s.gameID, "score", s.score, "moves", s.moves, "max_tile", s.grid.MaxTile())
	}
	s.gameOver = over
}

// report builds the frame for ev, consumes the one-shot tile flags and
// notifies the observer.
func (s *Session) report(ev Event) Frame {
	f := s.frame(ev)
	s.grid.clearFlags()
	s.lastMoves = nil
	if s.observer != nil {
		s.observer(f)
	}
	return f
}

// Current returns the current state without reporting it.
func (s *Session) Current() Frame {
	return s.frame(EventNone)
}

// Grid returns a copy of the current grid.
func (s *Session) Grid() *Grid {
	return s.grid.Clone()
}

// Config returns the rules the session was created with.
func (s *Session) Config() Config {
	return s.cfg
}

// GameID returns the identifier of the current game.
func (s *Session) GameID() uuid.UUID {
	return s.gameID
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Best returns the best score known to this session.
func (s *Session) Best() int {
	return s.best
}

// MoveCount returns the number of accepted moves and swaps.
func (s *Session) MoveCount() int {
	return s.moves
}

// UndosLeft returns the remaining undo budget.
func (s *Session) UndosLeft() int {
	return s.undosLeft
}

// SwapsLeft returns the remaining swap budget.
func (s *Session) SwapsLeft() int {
	return s.swapsLeft
}

// Phase returns the latch state.
func (s *Session) Phase() Phase {
	return s.phase
}

// GameOver reports whether no legal move remains.
func (s *Session) GameOver() bool {
	return s.gameOver
}
