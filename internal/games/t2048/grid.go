package t2048

import "fmt"

// DefaultGridSize is the classic board dimension.
const DefaultGridSize = 4

// Pos addresses a grid cell.
type Pos struct {
	Row int
	Col int
}

// Grid is a square matrix of cells, each empty or holding one tile.
type Grid struct {
	size  int
	cells []Tile // row-major
}

// NewGrid creates an empty size×size grid.
func NewGrid(size int) *Grid {
	return &Grid{
		size:  size,
		cells: make([]Tile, size*size),
	}
}

// Size returns the grid dimension N.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether p addresses a cell of this grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.size && p.Col >= 0 && p.Col < g.size
}

func (g *Grid) index(p Pos) (int, error) {
	if !g.InBounds(p) {
		return 0, fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, p.Row, p.Col, g.size, g.size)
	}
	return p.Row*g.size + p.Col, nil
}

// At returns the tile at p. An empty cell yields the zero Tile.
func (g *Grid) At(p Pos) (Tile, error) {
	i, err := g.index(p)
	if err != nil {
		return Tile{}, err
	}
	return g.cells[i], nil
}

// Set places t at p, replacing whatever was there.
func (g *Grid) Set(p Pos, t Tile) error {
	i, err := g.index(p)
	if err != nil {
		return err
	}
	g.cells[i] = t
	return nil
}

// Clear empties the cell at p.
func (g *Grid) Clear(p Pos) error {
	return g.Set(p, Tile{})
}

// tile and put are the unchecked accessors used internally once bounds are known.
func (g *Grid) tile(p Pos) Tile {
	return g.cells[p.Row*g.size+p.Col]
}

func (g *Grid) put(p Pos, t Tile) {
	g.cells[p.Row*g.size+p.Col] = t
}

// EmptyPositions returns all empty cells in row-major order.
func (g *Grid) EmptyPositions() []Pos {
	var empty []Pos
	for i, t := range g.cells {
		if t.Empty() {
			empty = append(empty, Pos{Row: i / g.size, Col: i % g.size})
		}
	}
	return empty
}

// TileCount returns the number of occupied cells.
func (g *Grid) TileCount() int {
	n := 0
	for _, t := range g.cells {
		if !t.Empty() {
			n++
		}
	}
	return n
}

// Find returns the position of the tile with the given ID.
func (g *Grid) Find(id TileID) (Pos, bool) {
	for i, t := range g.cells {
		if !t.Empty() && t.ID == id {
			return Pos{Row: i / g.size, Col: i % g.size}, true
		}
	}
	return Pos{}, false
}

// Sum returns the total value of all tiles.
func (g *Grid) Sum() int {
	total := 0
	for _, t := range g.cells {
		total += t.Value
	}
	return total
}

// MaxTile returns the highest tile value on the grid.
func (g *Grid) MaxTile() int {
	maxVal := 0
	for _, t := range g.cells {
		if t.Value > maxVal {
			maxVal = t.Value
		}
	}
	return maxVal
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		size:  g.size,
		cells: make([]Tile, len(g.cells)),
	}
	copy(c.cells, g.cells)
	return c
}

// Values returns the tile values as a matrix, 0 for empty cells.
func (g *Grid) Values() [][]int {
	rows := make([][]int, g.size)
	for r := range g.size {
		rows[r] = make([]int, g.size)
		for c := range g.size {
			rows[r][c] = g.tile(Pos{Row: r, Col: c}).Value
		}
	}
	return rows
}

// clearFlags drops the one-shot renderer annotations from every tile.
func (g *Grid) clearFlags() {
	for i := range g.cells {
		g.cells[i].IsNew = false
		g.cells[i].Merged = false
	}
}

// GridFromValues builds a grid from a value matrix, allocating IDs row by row.
// Zero entries are empty cells. Used by tests and tooling to set up positions.
func GridFromValues(values [][]int, ids *IDAllocator) *Grid {
	g := NewGrid(len(values))
	for r, row := range values {
		for c, v := range row {
			if v == 0 || c >= g.size {
				continue
			}
			g.put(Pos{Row: r, Col: c}, Tile{ID: ids.Next(), Value: v})
		}
	}
	return g
}
