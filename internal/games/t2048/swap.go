package t2048

import "fmt"

// swapState tracks the two-phase tile selection.
type swapState struct {
	active   bool
	selected TileID
}

func (w *swapState) clear() {
	w.active = false
	w.selected = 0
}

// ToggleSwapMode turns tile selection on or off. Turning it on requires a
// remaining swap and an idle session.
func (s *Session) ToggleSwapMode() (Frame, error) {
	if s.phase == PhaseResolving {
		return s.Current(), fmt.Errorf("%w: swap mode while resolving", ErrUnavailable)
	}
	if !s.swap.active && s.swapsLeft <= 0 {
		return s.Current(), fmt.Errorf("%w: no swaps left", ErrUnavailable)
	}

	s.swap.active = !s.swap.active
	s.swap.selected = 0
	return s.report(EventSwapMode), nil
}

// SelectSwap is the two-phase swap command. The first call selects a tile,
// selecting the same tile again deselects it, and selecting a second tile
// exchanges the two.
func (s *Session) SelectSwap(id TileID) (Frame, error) {
	if !s.swap.active || s.phase == PhaseResolving {
		return s.Current(), fmt.Errorf("%w: select outside swap mode", ErrUnavailable)
	}
	if _, ok := s.grid.Find(id); !ok {
		return s.Current(), fmt.Errorf("%w: tile %d", ErrInvalidSelection, id)
	}

	switch s.swap.selected {
	case 0:
		s.swap.selected = id
		return s.report(EventSelect), nil
	case id:
		s.swap.selected = 0
		return s.report(EventSelect), nil
	default:
		return s.Swap(s.swap.selected, id)
	}
}

// Swap exchanges the positions of two tiles. Values and IDs travel with the
// tiles. A swap counts as a move and can be undone, but never spawns.
// Swapping a tile with itself only clears the pending selection.
func (s *Session) Swap(a, b TileID) (Frame, error) {
	if s.phase == PhaseResolving {
		return s.Current(), fmt.Errorf("%w: swap while resolving", ErrUnavailable)
	}
	if s.swapsLeft <= 0 {
		return s.Current(), fmt.Errorf("%w: no swaps left", ErrUnavailable)
	}
	if a == b {
		s.swap.selected = 0
		return s.report(EventSelect), nil
	}

	pa, ok := s.grid.Find(a)
	if !ok {
		return s.Current(), fmt.Errorf("%w: tile %d", ErrInvalidSelection, a)
	}
	pb, ok := s.grid.Find(b)
	if !ok {
		return s.Current(), fmt.Errorf("%w: tile %d", ErrInvalidSelection, b)
	}

	snap := s.snapshot()
	s.prev = &snap

	ta, tb := s.grid.tile(pa), s.grid.tile(pb)
	s.grid.put(pa, tb)
	s.grid.put(pb, ta)

	s.swapsLeft--
	s.moves++
	s.swap.clear()
	s.lastMoves = []TileMove{
		{ID: ta.ID, From: pa, To: pb, Value: ta.Value},
		{ID: tb.ID, From: pb, To: pa, Value: tb.Value},
	}
	s.checkGameOver()

	s.logger.Debug("swap", "a", a, "b", b, "swaps_left", s.swapsLeft)
	return s.report(EventSwap), nil
}
