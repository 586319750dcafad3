package t2048

// TileID identifies a tile for its whole lifetime. IDs are never reused within a game.
type TileID int

// Tile is one numbered piece on the grid. The zero Tile is an empty cell.
type Tile struct {
	ID    TileID
	Value int

	// IsNew and Merged are annotations for the renderer. They are set by the
	// spawner and the move engine and cleared once they have been reported.
	IsNew  bool
	Merged bool
}

// Empty reports whether t represents an empty cell.
func (t Tile) Empty() bool {
	return t.Value == 0
}

// IDAllocator hands out strictly increasing tile IDs, starting at 1.
type IDAllocator struct {
	last TileID
}

// Next returns a new ID greater than every ID issued before.
func (a *IDAllocator) Next() TileID {
	a.last++
	return a.last
}

// Last returns the most recently issued ID (0 if none).
func (a *IDAllocator) Last() TileID {
	return a.last
}

// Restore rewinds the allocator to a counter value taken from a snapshot.
func (a *IDAllocator) Restore(last TileID) {
	a.last = last
}

// Reset returns the allocator to its initial state. Only used for a new game.
func (a *IDAllocator) Reset() {
	a.last = 0
}
