package tui

import (
	"time"

	"github.com/vovakirdan/swap2048/internal/core"
	"github.com/vovakirdan/swap2048/internal/games/t2048"
)

// popTicks is how long a freshly spawned tile stays highlighted.
const popTicks = 6

// tileAnimation is one tile sliding between two cells.
type tileAnimation struct {
	ID     t2048.TileID
	Value  int
	From   t2048.Pos
	To     t2048.Pos
	Merged bool
}

// slideAnimation plays the tile moves of one committed move or swap.
type slideAnimation struct {
	tiles []tileAnimation
	ticks int
	total int
}

// newSlideAnimation builds an animation lasting d at tickRate ticks per second.
// It returns nil when there is nothing to animate.
func newSlideAnimation(moves []t2048.TileMove, d time.Duration, tickRate int) *slideAnimation {
	if len(moves) == 0 || d <= 0 {
		return nil
	}
	total := int(d * time.Duration(tickRate) / time.Second)
	if total < 1 {
		total = 1
	}

	a := &slideAnimation{total: total}
	for _, m := range moves {
		a.tiles = append(a.tiles, tileAnimation{
			ID:     m.ID,
			Value:  m.Value,
			From:   m.From,
			To:     m.To,
			Merged: m.Merged,
		})
	}
	return a
}

// step advances the animation by one tick and reports whether it is still running.
func (a *slideAnimation) step() bool {
	if a.ticks < a.total {
		a.ticks++
	}
	return a.ticks < a.total
}

// animates reports whether the tile with id is part of the animation.
func (a *slideAnimation) animates(id t2048.TileID) bool {
	for _, t := range a.tiles {
		if t.ID == id {
			return true
		}
	}
	return false
}

// progress returns the eased completion in [0, 1].
func (a *slideAnimation) progress() float64 {
	return easeOutQuad(float64(a.ticks) / float64(a.total))
}

// position returns the fractional cell a tile occupies at progress t.
func (ta tileAnimation) position(t float64) (row, col float64) {
	row = core.Lerp(float64(ta.From.Row), float64(ta.To.Row), t)
	col = core.Lerp(float64(ta.From.Col), float64(ta.To.Col), t)
	return row, col
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}
