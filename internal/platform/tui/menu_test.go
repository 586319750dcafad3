package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/swap2048/internal/config"
	"github.com/vovakirdan/swap2048/internal/core"
	"github.com/vovakirdan/swap2048/internal/storage"
)

func TestMenuListsPresets(t *testing.T) {
	m := NewMenuModel(config.DefaultConfig(), 4096, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	if len(m.items) != len(config.Presets) {
		t.Fatalf("Menu has %d items, expected %d", len(m.items), len(config.Presets))
	}

	view := m.View()
	for _, p := range config.Presets {
		if !strings.Contains(view, string(p)) {
			t.Errorf("Menu view missing preset %q", p)
		}
	}
	if !strings.Contains(view, "Best: 4096") {
		t.Error("Menu view missing best score")
	}
	if !strings.Contains(view, "6×6") {
		t.Error("Menu view missing the big board details")
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(config.DefaultConfig(), 0, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Selecting should quit the menu program")
	}

	mm := next.(MenuModel)
	if mm.Selected() == nil || mm.Selected().Preset != config.Presets[1] {
		t.Errorf("Selected = %+v, expected %q", mm.Selected(), config.Presets[1])
	}
}

func TestMenuCursorBounds(t *testing.T) {
	var m tea.Model = NewMenuModel(config.DefaultConfig(), 0, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if c := m.(MenuModel).cursor; c != 0 {
		t.Errorf("cursor = %d after up at top, expected 0", c)
	}
	for range 10 {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if c := m.(MenuModel).cursor; c != len(config.Presets)-1 {
		t.Errorf("cursor = %d, expected last item", c)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(config.DefaultConfig(), 0, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("Tab should open the scoreboard")
	}

	next, _ = m.Update(runeKey('q'))
	if !next.(MenuModel).IsQuitting() {
		t.Error("q should quit")
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	if cfg := next.(MenuModel).Config(); cfg.ScreenW != 100 || cfg.ScreenH != 50 {
		t.Errorf("Config() = %+v after resize", cfg)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q, expected %q", got, "  ab")
	}
	if got := centerText("too long", 4); got != "too long" {
		t.Errorf("centerText() = %q", got)
	}
}

type fakeScores struct {
	scores []storage.ScoreEntry
	games  []storage.GameRecord
	err    error
}

func (f fakeScores) TopScores(int) ([]storage.ScoreEntry, error) {
	return f.scores, f.err
}

func (f fakeScores) RecentGames(int) ([]storage.GameRecord, error) {
	return f.games, f.err
}

func TestScoreboardViews(t *testing.T) {
	at := time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)
	src := fakeScores{
		scores: []storage.ScoreEntry{{Score: 900, CreatedAt: at}, {Score: 300, CreatedAt: at}},
		games:  []storage.GameRecord{{Score: 900, MaxTile: 128, Moves: 77, GridSize: 4, CreatedAt: at}},
	}

	m := NewScoreboardModel(src, 900, 80, 24)
	if len(m.rows) != 2 || m.rows[0][0] != "#1" || m.rows[0][1] != "900" {
		t.Errorf("Top score rows = %v", m.rows)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != viewRecentGames {
		t.Fatalf("view = %v, expected recent games", m.view)
	}
	if len(m.rows) != 1 || m.rows[0][2] != "128" || m.rows[0][4] != "4×4" {
		t.Errorf("Recent game rows = %v", m.rows)
	}
	if !strings.Contains(m.View(), "Recent games") {
		t.Error("View should name the recent games view")
	}
}

func TestScoreboardEmptyAndErrors(t *testing.T) {
	m := NewScoreboardModel(nil, 0, 80, 24)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("Nil source should show the empty message")
	}

	m = NewScoreboardModel(fakeScores{err: errors.New("locked")}, 0, 80, 24)
	if !strings.Contains(m.View(), "locked") {
		t.Error("Load errors should be shown")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 0, 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}

	next, _ = m.Update(runeKey('q'))
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}
