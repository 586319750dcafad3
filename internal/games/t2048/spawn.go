package t2048

import "math/rand"

// DefaultNewTileProbability is the chance a spawned tile is a 2 rather than a 4.
const DefaultNewTileProbability = 0.9

// Spawner places new tiles on random empty cells.
type Spawner struct {
	rng   *rand.Rand
	prob2 float64
}

// NewSpawner creates a spawner drawing from rng.
// prob2 is the probability of spawning a 2 (otherwise a 4).
func NewSpawner(rng *rand.Rand, prob2 float64) *Spawner {
	return &Spawner{rng: rng, prob2: prob2}
}

// Spawn puts a new tile on a uniformly chosen empty cell.
// It does nothing and returns false when the grid is full.
func (s *Spawner) Spawn(g *Grid, ids *IDAllocator) (Tile, Pos, bool) {
	empty := g.EmptyPositions()
	if len(empty) == 0 {
		return Tile{}, Pos{}, false
	}

	p := empty[s.rng.Intn(len(empty))]

	value := 4
	if s.rng.Float64() < s.prob2 {
		value = 2
	}

	t := Tile{ID: ids.Next(), Value: value, IsNew: true}
	g.put(p, t)
	return t, p, true
}
