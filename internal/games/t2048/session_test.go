package t2048

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory BestScoreStore.
type fakeStore struct {
	best    int
	readErr error
	saved   []int
}

func (f *fakeStore) BestScore() (int, error) {
	return f.best, f.readErr
}

func (f *fakeStore) SaveBestScore(score int) error {
	f.best = score
	f.saved = append(f.saved, score)
	return nil
}

// newTestSession creates a seeded session and replaces its board with values.
// Tile IDs are assigned row by row starting at 1.
func newTestSession(t *testing.T, cfg Config, values [][]int, opts ...Option) *Session {
	t.Helper()
	s, err := NewSession(cfg, append([]Option{WithSeed(42)}, opts...)...)
	require.NoError(t, err)

	if values != nil {
		s.ids.Reset()
		s.grid = GridFromValues(values, &s.ids)
		s.gameOver = IsTerminal(s.grid)
	}
	return s
}

// terminalValues has no empty cell and no equal neighbours.
var terminalValues = [][]int{
	{2, 4, 8, 16},
	{32, 64, 128, 256},
	{512, 1024, 2048, 4096},
	{8192, 16384, 32768, 65536},
}

func TestNewSession(t *testing.T) {
	var first Frame
	s, err := NewSession(DefaultConfig(), WithSeed(1), WithObserver(func(f Frame) {
		if first.Event == EventNone {
			first = f
		}
	}))
	require.NoError(t, err)

	assert.Equal(t, EventNewGame, first.Event)
	require.Len(t, first.Tiles, 2)
	for _, tile := range first.Tiles {
		assert.True(t, tile.IsNew, "initial tiles are reported as new")
		assert.Contains(t, []int{2, 4}, tile.Value)
	}

	f := s.Current()
	assert.Equal(t, 4, f.Size)
	assert.Equal(t, 0, f.Score)
	assert.Equal(t, 0, f.MoveCount)
	assert.Equal(t, 5, f.UndosLeft)
	assert.Equal(t, 3, f.SwapsLeft)
	assert.Equal(t, PhaseIdle, f.Phase)
	assert.False(t, f.GameOver)
	for _, tile := range f.Tiles {
		assert.False(t, tile.IsNew, "flags are cleared once reported")
	}
}

func TestNewSessionInvalidConfig(t *testing.T) {
	for _, cfg := range []Config{
		{GridSize: 1, NewTileProbability: 0.9},
		{GridSize: 4, NewTileProbability: 1.5},
		{GridSize: 4, NewTileProbability: 0.9, MaxUndoMoves: -1},
		{GridSize: 4, NewTileProbability: 0.9, InitialSwapBudget: -1},
	} {
		_, err := NewSession(cfg)
		assert.ErrorIs(t, err, ErrInvalidConfig, "config %+v", cfg)
	}
}

func TestSameSeedSameGame(t *testing.T) {
	a, err := NewSession(DefaultConfig(), WithSeed(12345))
	require.NoError(t, err)
	b, err := NewSession(DefaultConfig(), WithSeed(12345))
	require.NoError(t, err)

	assert.Equal(t, a.Grid().Values(), b.Grid().Values())
	assert.NotEqual(t, a.GameID(), b.GameID())
}

func TestMoveNoChange(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), rowGrid([]int{2, 4, 0, 0}))
	calls := 0
	s.observer = func(Frame) { calls++ }

	f, err := s.Move(DirLeft)
	require.NoError(t, err)

	assert.Equal(t, EventNone, f.Event)
	assert.Equal(t, 0, s.MoveCount())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 2, s.grid.TileCount(), "no spawn on a no-op move")
	assert.Nil(t, s.prev, "no snapshot retained")
	assert.Zero(t, calls, "no-op moves are not reported")
}

func TestMoveMergesAndSpawns(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), rowGrid([]int{2, 2, 2, 2}))

	f, err := s.Move(DirLeft)
	require.NoError(t, err)

	assert.Equal(t, EventMove, f.Event)
	assert.Equal(t, 8, f.Score)
	assert.Equal(t, 1, f.MoveCount)
	assert.Equal(t, PhaseIdle, f.Phase)
	assert.Len(t, f.Tiles, 3, "two merged tiles and one spawned tile")
	assert.Len(t, f.Moves, 4)

	left, ok := f.Tile(1)
	require.True(t, ok)
	assert.Equal(t, TileView{ID: 1, Value: 4, Row: 0, Col: 0, Merged: true}, left)
	right, ok := f.Tile(3)
	require.True(t, ok)
	assert.Equal(t, TileView{ID: 3, Value: 4, Row: 0, Col: 1, Merged: true}, right)

	spawned, ok := f.Tile(5)
	require.True(t, ok, "spawned tile gets the next ID")
	assert.True(t, spawned.IsNew)

	for _, tile := range s.Current().Tiles {
		assert.False(t, tile.IsNew || tile.Merged, "flags valid for one frame only")
	}
}

func TestDeferredSettle(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), rowGrid([]int{2, 2, 0, 0}), WithDeferredSettle())

	f, err := s.Move(DirLeft)
	require.NoError(t, err)
	assert.Equal(t, PhaseResolving, f.Phase)
	assert.Len(t, f.Tiles, 1, "spawn waits for Settle")

	_, err = s.Move(DirRight)
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = s.Undo()
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = s.Swap(1, 2)
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = s.ToggleSwapMode()
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 1, s.MoveCount(), "rejected commands change nothing")

	f, err = s.Settle()
	require.NoError(t, err)
	assert.Equal(t, EventSettle, f.Event)
	assert.Equal(t, PhaseIdle, f.Phase)
	assert.Len(t, f.Tiles, 2)

	_, err = s.Settle()
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestUndoRestoresState(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), [][]int{
		{2, 2, 4, 0},
		{0, 4, 0, 0},
		{0, 0, 0, 8},
		{0, 0, 0, 0},
	})
	beforeGrid := s.grid.Clone()
	beforeScore := s.Score()
	beforeID := s.ids.Last()

	_, err := s.Move(DirLeft)
	require.NoError(t, err)
	require.Equal(t, 1, s.MoveCount())
	require.NotEqual(t, beforeID, s.ids.Last())

	f, err := s.Undo()
	require.NoError(t, err)

	assert.Equal(t, EventUndo, f.Event)
	assert.Equal(t, beforeGrid, s.grid)
	assert.Equal(t, beforeScore, s.Score())
	assert.Equal(t, beforeID, s.ids.Last())
	assert.Equal(t, 0, s.MoveCount())
	assert.Equal(t, 4, s.UndosLeft())

	// No chaining, no redo
	_, err = s.Undo()
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.False(t, s.CanUndo())
}

func TestUndoUnavailable(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), nil)
	_, err := s.Undo()
	assert.ErrorIs(t, err, ErrUnavailable, "nothing to undo at game start")

	cfg := DefaultConfig()
	cfg.MaxUndoMoves = 1
	s = newTestSession(t, cfg, rowGrid([]int{2, 0, 0, 0}))

	_, err = s.Move(DirRight)
	require.NoError(t, err)
	_, err = s.Undo()
	require.NoError(t, err)

	_, err = s.Move(DirRight)
	require.NoError(t, err)
	_, err = s.Undo()
	assert.ErrorIs(t, err, ErrUnavailable, "undo budget exhausted")
	assert.Equal(t, 1, s.MoveCount())
}

func TestNoOpMoveKeepsPreviousSnapshot(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), rowGrid([]int{0, 0, 0, 2}))

	_, err := s.Move(DirLeft)
	require.NoError(t, err)
	snap := s.prev

	// Find a direction that changes nothing and make sure it keeps the snapshot
	for _, dir := range Directions {
		if !CanMove(s.grid, dir) {
			_, err = s.Move(dir)
			require.NoError(t, err)
			assert.Same(t, snap, s.prev)
		}
	}
}

func TestMoveCountsOnlyAcceptedCommands(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitialSwapBudget = 0
	s := newTestSession(t, cfg, rowGrid([]int{2, 4, 0, 0}))

	_, _ = s.Move(DirLeft)  // no change
	_, _ = s.Swap(1, 2)     // no budget
	_, _ = s.Undo()         // nothing to undo
	_, _ = s.Move(DirRight) // accepted
	_, _ = s.Move(DirRight) // no change unless the spawn landed left of the tiles

	assert.GreaterOrEqual(t, s.MoveCount(), 1)
	assert.LessOrEqual(t, s.MoveCount(), 2)
}

func TestGameOverAfterSpawn(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), [][]int{
		{2, 2, 8, 16},
		{32, 64, 128, 256},
		{4, 8, 16, 32},
		{64, 128, 256, 512},
	})
	require.False(t, s.GameOver())

	f, err := s.Move(DirLeft)
	require.NoError(t, err)

	assert.Equal(t, 4, f.Score)
	assert.True(t, f.GameOver, "spawn into the last cell ends the game")
	for _, dir := range Directions {
		assert.False(t, CanMove(s.grid, dir), "direction %v", dir)
	}
}

func TestTerminalBoardRejectsAllMoves(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), terminalValues)
	require.True(t, s.GameOver())

	for _, dir := range Directions {
		f, err := s.Move(dir)
		require.NoError(t, err)
		assert.Equal(t, EventNone, f.Event)
	}
	assert.Equal(t, 0, s.MoveCount())
}

func TestSwapWithoutBudget(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitialSwapBudget = 0
	s := newTestSession(t, cfg, rowGrid([]int{2, 4, 0, 0}))
	before := s.grid.Clone()

	_, err := s.Swap(1, 2)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, before, s.grid)
	assert.Equal(t, 0, s.MoveCount())

	_, err = s.ToggleSwapMode()
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSwap(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), rowGrid([]int{2, 4, 0, 8}))

	f, err := s.Swap(1, 3)
	require.NoError(t, err)

	assert.Equal(t, EventSwap, f.Event)
	assert.Equal(t, [][]int{{8, 4, 0, 2}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}, f.Values())
	assert.Equal(t, 2, f.SwapsLeft)
	assert.Equal(t, 1, f.MoveCount)
	assert.Len(t, f.Tiles, 3, "swaps never spawn")

	moved, _ := f.Tile(1)
	assert.Equal(t, 3, moved.Col, "identity travels with the tile")

	// Swaps take part in undo; the budget is not refunded
	_, err = s.Undo()
	require.NoError(t, err)
	assert.Equal(t, rowGrid([]int{2, 4, 0, 8}), s.grid.Values())
	assert.Equal(t, 2, s.SwapsLeft())
	assert.Equal(t, 0, s.MoveCount())
}

func TestSwapInvalidSelection(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), rowGrid([]int{2, 4, 0, 0}))

	_, err := s.Swap(1, 99)
	assert.ErrorIs(t, err, ErrInvalidSelection)

	f, err := s.Swap(2, 2)
	require.NoError(t, err, "same tile is a deselect")
	assert.Equal(t, EventSelect, f.Event)

	assert.Equal(t, 3, s.SwapsLeft())
	assert.Equal(t, 0, s.MoveCount())
	assert.Nil(t, s.prev)
}

func TestSelectSwapTwoPhase(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), rowGrid([]int{2, 4, 0, 0}))

	_, err := s.SelectSwap(1)
	assert.ErrorIs(t, err, ErrUnavailable, "selection requires swap mode")

	f, err := s.ToggleSwapMode()
	require.NoError(t, err)
	assert.True(t, f.SwapMode)

	_, err = s.SelectSwap(42)
	assert.ErrorIs(t, err, ErrInvalidSelection)

	f, err = s.SelectSwap(1)
	require.NoError(t, err)
	assert.Equal(t, TileID(1), f.Selected)

	f, err = s.SelectSwap(1)
	require.NoError(t, err)
	assert.Equal(t, TileID(0), f.Selected, "selecting again deselects")

	_, err = s.SelectSwap(1)
	require.NoError(t, err)
	f, err = s.SelectSwap(2)
	require.NoError(t, err)

	assert.Equal(t, EventSwap, f.Event)
	assert.Equal(t, []int{4, 2, 0, 0}, f.Values()[0])
	assert.False(t, f.SwapMode, "swap mode ends after a swap")
	assert.Equal(t, TileID(0), f.Selected)
}

func TestMoveClearsSwapSelection(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), rowGrid([]int{0, 2, 0, 4}))

	_, err := s.ToggleSwapMode()
	require.NoError(t, err)
	_, err = s.SelectSwap(1)
	require.NoError(t, err)

	f, err := s.Move(DirLeft)
	require.NoError(t, err)
	assert.False(t, f.SwapMode)
	assert.Equal(t, TileID(0), f.Selected)
}

func TestBestScorePersistence(t *testing.T) {
	store := &fakeStore{best: 10}
	s := newTestSession(t, DefaultConfig(), rowGrid([]int{8, 8, 0, 0}), WithStore(store))
	assert.Equal(t, 10, s.Best())

	f, err := s.Move(DirLeft)
	require.NoError(t, err)

	assert.Equal(t, 16, f.Best)
	assert.Equal(t, []int{16}, store.saved)

	// Undo never lowers the best score
	_, err = s.Undo()
	require.NoError(t, err)
	assert.Equal(t, 16, s.Best())

	// New game keeps it
	s.NewGame()
	assert.Equal(t, 16, s.Best())
}

func TestBestScoreReadError(t *testing.T) {
	store := &fakeStore{best: 99, readErr: errors.New("boom")}
	s, err := NewSession(DefaultConfig(), WithStore(store))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Best())
}

func TestNewGameResets(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), rowGrid([]int{2, 2, 4, 4}))
	_, err := s.Move(DirLeft)
	require.NoError(t, err)
	_, err = s.Swap(1, 3)
	require.NoError(t, err)
	oldGame := s.GameID()

	f := s.NewGame()

	assert.Equal(t, EventNewGame, f.Event)
	assert.NotEqual(t, oldGame, f.GameID)
	assert.Equal(t, 0, f.Score)
	assert.Equal(t, 0, f.MoveCount)
	assert.Equal(t, 5, f.UndosLeft)
	assert.Equal(t, 3, f.SwapsLeft)
	assert.Len(t, f.Tiles, 2)
	assert.Equal(t, TileID(2), s.ids.Last(), "allocator restarts on a new game")
	assert.False(t, s.CanUndo())
}
