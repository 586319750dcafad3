package t2048

import "github.com/google/uuid"

// Phase is the session's re-entrancy latch.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseResolving Phase = "resolving"
)

// Event names the command a Frame reports.
type Event string

const (
	EventNone     Event = ""
	EventNewGame  Event = "new_game"
	EventMove     Event = "move"
	EventSettle   Event = "settle"
	EventUndo     Event = "undo"
	EventSwap     Event = "swap"
	EventSwapMode Event = "swap_mode"
	EventSelect   Event = "select"
)

// Snapshot is the state retained for a single undo.
type Snapshot struct {
	Grid   *Grid
	Score  int
	LastID TileID
}

// TileView is a tile as reported to the renderer.
type TileView struct {
	ID     TileID
	Value  int
	Row    int
	Col    int
	IsNew  bool
	Merged bool
}

// Frame is the full state delta emitted after every accepted command.
// IsNew and Merged on tiles are valid for this frame only.
type Frame struct {
	Event     Event
	GameID    uuid.UUID
	Size      int
	Tiles     []TileView // Row-major
	Moves     []TileMove // Tile movements of the move or swap this frame reports
	Score     int
	Best      int
	MaxTile   int
	MoveCount int
	UndosLeft int
	SwapsLeft int
	SwapMode  bool
	Selected  TileID // Pending swap selection, 0 if none
	Phase     Phase
	GameOver  bool
}

// Tile returns the view of the tile with the given ID.
func (f Frame) Tile(id TileID) (TileView, bool) {
	for _, t := range f.Tiles {
		if t.ID == id {
			return t, true
		}
	}
	return TileView{}, false
}

// Values returns the frame's tiles as a value matrix, 0 for empty cells.
func (f Frame) Values() [][]int {
	rows := make([][]int, f.Size)
	for r := range rows {
		rows[r] = make([]int, f.Size)
	}
	for _, t := range f.Tiles {
		rows[t.Row][t.Col] = t.Value
	}
	return rows
}

// snapshot captures the state needed to undo the next mutating command.
func (s *Session) snapshot() Snapshot {
	return Snapshot{
		Grid:   s.grid.Clone(),
		Score:  s.score,
		LastID: s.ids.Last(),
	}
}

// frame builds the state delta for the current state.
func (s *Session) frame(ev Event) Frame {
	f := Frame{
		Event:     ev,
		GameID:    s.gameID,
		Size:      s.grid.Size(),
		Moves:     s.lastMoves,
		Score:     s.score,
		Best:      s.best,
		MaxTile:   s.grid.MaxTile(),
		MoveCount: s.moves,
		UndosLeft: s.undosLeft,
		SwapsLeft: s.swapsLeft,
		SwapMode:  s.swap.active,
		Selected:  s.swap.selected,
		Phase:     s.phase,
		GameOver:  s.gameOver,
	}

	size := s.grid.Size()
	for i, t := range s.grid.cells {
		if t.Empty() {
			continue
		}
		f.Tiles = append(f.Tiles, TileView{
			ID:     t.ID,
			Value:  t.Value,
			Row:    i / size,
			Col:    i % size,
			IsNew:  t.IsNew,
			Merged: t.Merged,
		})
	}
	return f
}
