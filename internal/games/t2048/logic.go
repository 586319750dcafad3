package t2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all four directions.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// TileMove records where a tile went during a move.
// Both tiles of a merge get a record pointing at the merge cell; the
// surviving one is the record whose ID is still on the grid.
type TileMove struct {
	ID     TileID
	From   Pos
	To     Pos
	Value  int  // Value before the move
	Merged bool // Took part in a merge
}

// MoveResult is the outcome of applying a direction to a grid.
type MoveResult struct {
	Grid    *Grid
	Score   int  // Sum of merge products
	Changed bool // At least one tile moved or merged
	Moves   []TileMove
}

// lineCells returns the cells of line k ordered from the edge the tiles are
// pushed toward. Every direction reuses compactLine through this view.
func lineCells(dir Direction, size, k int) []Pos {
	cells := make([]Pos, size)
	for i := range size {
		switch dir {
		case DirLeft:
			cells[i] = Pos{Row: k, Col: i}
		case DirRight:
			cells[i] = Pos{Row: k, Col: size - 1 - i}
		case DirUp:
			cells[i] = Pos{Row: i, Col: k}
		case DirDown:
			cells[i] = Pos{Row: size - 1 - i, Col: k}
		}
	}
	return cells
}

// compactLine merges a compaction sequence toward index 0.
// dest[i] is the output index that input tile i ends up in.
// A tile produced by a merge does not merge again in the same pass.
func compactLine(seq []Tile) (out []Tile, dest []int, score int) {
	dest = make([]int, len(seq))
	for i := 0; i < len(seq); i++ {
		t := seq[i]
		if i+1 < len(seq) && seq[i+1].Value == t.Value {
			// Merge: the leading tile keeps its identity
			v := t.Value * 2
			out = append(out, Tile{ID: t.ID, Value: v, Merged: true})
			dest[i] = len(out) - 1
			dest[i+1] = len(out) - 1
			score += v
			i++
			continue
		}
		out = append(out, Tile{ID: t.ID, Value: t.Value})
		dest[i] = len(out) - 1
	}
	return out, dest, score
}

// Slide applies a move in the given direction without touching g.
// Returns the new grid, the score gained and whether anything changed.
func Slide(g *Grid, dir Direction) MoveResult {
	if !dir.Valid() {
		return MoveResult{Grid: g.Clone()}
	}

	size := g.Size()
	res := MoveResult{Grid: NewGrid(size)}

	for k := range size {
		cells := lineCells(dir, size, k)

		var seq []Tile
		var from []Pos
		for _, p := range cells {
			if t := g.tile(p); !t.Empty() {
				seq = append(seq, t)
				from = append(from, p)
			}
		}
		if len(seq) == 0 {
			continue
		}

		out, dest, score := compactLine(seq)
		res.Score += score

		for i, t := range out {
			res.Grid.put(cells[i], t)
		}

		// Track every input tile by identity, not by value
		for i, t := range seq {
			to := cells[dest[i]]
			merged := out[dest[i]].Merged
			if merged || to != from[i] {
				res.Changed = true
			}
			res.Moves = append(res.Moves, TileMove{
				ID:     t.ID,
				From:   from[i],
				To:     to,
				Value:  t.Value,
				Merged: merged,
			})
		}
	}

	return res
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(g *Grid) bool {
	for _, t := range g.cells {
		if t.Empty() {
			return true
		}
	}
	return false
}

// HasPossibleMerge returns true if any orthogonally adjacent tiles hold equal values.
func HasPossibleMerge(g *Grid) bool {
	size := g.Size()
	for r := range size {
		for c := range size {
			val := g.tile(Pos{Row: r, Col: c}).Value
			if val == 0 {
				continue
			}
			// Check right neighbor
			if c < size-1 && g.tile(Pos{Row: r, Col: c + 1}).Value == val {
				return true
			}
			// Check bottom neighbor
			if r < size-1 && g.tile(Pos{Row: r + 1, Col: c}).Value == val {
				return true
			}
		}
	}
	return false
}

// IsTerminal reports whether no move can change the grid:
// no empty cell and no adjacent equal pair.
func IsTerminal(g *Grid) bool {
	return !HasEmptyCell(g) && !HasPossibleMerge(g)
}

// CanMove reports whether moving in dir would change the grid.
func CanMove(g *Grid, dir Direction) bool {
	return Slide(g, dir).Changed
}
