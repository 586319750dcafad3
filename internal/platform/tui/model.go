package tui

import (
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/swap2048/internal/config"
	"github.com/vovakirdan/swap2048/internal/core"
	"github.com/vovakirdan/swap2048/internal/games/t2048"
	"github.com/vovakirdan/swap2048/internal/storage"
)

// Recorder stores finished games.
type Recorder interface {
	RecordGame(rec storage.GameRecord) error
}

// Options configures a game Model.
type Options struct {
	Runtime   core.RuntimeConfig
	Animation config.AnimationConfig
	Recorder  Recorder // Optional
	Logger    *log.Logger
}

// Model is the Bubble Tea model for a 2048 session.
// The session must be created with t2048.WithDeferredSettle.
type Model struct {
	session   *t2048.Session
	frame     t2048.Frame
	screen    *core.Screen
	opts      Options
	keys      KeyMap
	help      help.Model
	anim      *slideAnimation
	highlight map[t2048.TileID]bool
	merged    map[t2048.TileID]bool // Merges of the move waiting to settle
	pop       int
	cursor    t2048.Pos
	message   string
	gen       int // Bumped whenever a pending settle becomes stale
	ticking   bool
	quitting  bool
}

// NewModel creates a new Bubble Tea model driving session.
func NewModel(session *t2048.Session, opts Options) Model {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		session: session,
		frame:   session.Current(),
		screen:  core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 0)),
		opts:    opts,
		keys:    DefaultKeyMap(),
		help:    h,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case SettleMsg:
		return m.handleSettle(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action != core.ActionNone {
		m.message = ""
	}

	switch action {
	case core.ActionQuit:
		m.record()
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case core.ActionNewGame:
		m.record()
		m.gen++
		m.anim = nil
		m.highlight = nil
		m.frame = m.session.NewGame()
		m.opts.Logger.Info("new game", "id", m.frame.GameID)
		return m, nil

	case core.ActionUndo:
		return m.apply(m.session.Undo())

	case core.ActionSwapMode:
		f, err := m.session.ToggleSwapMode()
		if err == nil && f.SwapMode {
			m.cursor = t2048.Pos{}
		}
		return m.apply(f, err)

	case core.ActionConfirm:
		if !m.frame.SwapMode {
			return m, nil
		}
		return m.selectAtCursor()
	}

	if !action.IsDirection() {
		return m, nil
	}
	if m.frame.SwapMode {
		m.moveCursor(action)
		return m, nil
	}
	return m.move(directionFor(action))
}

// move slides the board and schedules the settle.
func (m Model) move(dir t2048.Direction) (tea.Model, tea.Cmd) {
	f, err := m.session.Move(dir)
	if err != nil {
		return m.apply(f, err)
	}
	if f.Event == t2048.EventNone {
		return m, nil // Nothing moved
	}

	m.frame = f
	m.highlight = nil
	m.merged = make(map[t2048.TileID]bool)
	for _, t := range f.Tiles {
		if t.Merged {
			m.merged[t.ID] = true
		}
	}

	m.gen++
	cmds := []tea.Cmd{settleCmd(m.opts.Animation.SettleDelay(), m.gen)}
	if m.opts.Animation.Enabled {
		m.anim = newSlideAnimation(f.Moves, m.opts.Animation.Slide, m.opts.Runtime.TickRate)
		cmds = append(cmds, m.startTicking())
	}
	return m, tea.Batch(cmds...)
}

// handleSettle finishes a deferred move: the new tile appears.
func (m Model) handleSettle(msg SettleMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.session.Phase() != t2048.PhaseResolving {
		return m, nil
	}

	f, err := m.session.Settle()
	if err != nil {
		m.opts.Logger.Warn("settle failed", "error", err)
		return m, nil
	}
	m.frame = f
	m.anim = nil

	m.highlight = m.merged
	if m.highlight == nil {
		m.highlight = make(map[t2048.TileID]bool)
	}
	for _, t := range f.Tiles {
		if t.IsNew {
			m.highlight[t.ID] = true
		}
	}
	m.merged = nil
	m.pop = popTicks

	if f.GameOver {
		m.opts.Logger.Info("game over", "id", f.GameID, "score", f.Score, "max_tile", f.MaxTile)
		m.record()
	}
	return m, m.startTicking()
}

// handleTick advances animations.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	running := false
	if m.anim != nil {
		// The last slide frame stays up until the settle arrives.
		if m.anim.step() {
			running = true
		}
	}
	if m.pop > 0 {
		m.pop--
		if m.pop == 0 {
			m.highlight = nil
		} else {
			running = true
		}
	}

	if !running {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// startTicking starts the tick loop unless one is already running.
func (m *Model) startTicking() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return tickCmd(m.opts.Runtime.TickRate)
}

// apply shows a frame from an undo or swap command, or the rejection.
func (m Model) apply(f t2048.Frame, err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.message = rejection(err)
		return m, nil
	}

	m.frame = f
	m.highlight = nil
	if f.Event == t2048.EventUndo {
		m.gen++
		m.anim = nil
	}
	if f.Event == t2048.EventSwap && m.opts.Animation.Enabled {
		m.anim = newSlideAnimation(f.Moves, m.opts.Animation.Slide, m.opts.Runtime.TickRate)
		return m, m.startTicking()
	}
	return m, nil
}

// selectAtCursor picks the tile under the swap cursor.
func (m Model) selectAtCursor() (tea.Model, tea.Cmd) {
	for _, t := range m.frame.Tiles {
		if t.Row == m.cursor.Row && t.Col == m.cursor.Col {
			return m.apply(m.session.SelectSwap(t.ID))
		}
	}
	m.message = "No tile there"
	return m, nil
}

// moveCursor moves the swap cursor, clamped to the board.
func (m *Model) moveCursor(a core.Action) {
	last := m.frame.Size - 1
	switch a {
	case core.ActionUp:
		m.cursor.Row = core.Clamp(m.cursor.Row-1, 0, last)
	case core.ActionDown:
		m.cursor.Row = core.Clamp(m.cursor.Row+1, 0, last)
	case core.ActionLeft:
		m.cursor.Col = core.Clamp(m.cursor.Col-1, 0, last)
	case core.ActionRight:
		m.cursor.Col = core.Clamp(m.cursor.Col+1, 0, last)
	}
}

// record stores the current game if it has any moves.
// Recording is best-effort; the game continues regardless.
func (m Model) record() {
	f := m.session.Current()
	if m.opts.Recorder == nil || f.MoveCount == 0 {
		return
	}
	rec := storage.GameRecord{
		ID:       f.GameID.String(),
		GridSize: f.Size,
		Score:    f.Score,
		Moves:    f.MoveCount,
		MaxTile:  f.MaxTile,
	}
	if err := m.opts.Recorder.RecordGame(rec); err != nil {
		m.opts.Logger.Warn("could not record game", "id", rec.ID, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawGame(m.screen, boardView{
		Frame:     m.frame,
		Anim:      m.anim,
		Highlight: m.highlight,
		Cursor:    m.cursor,
		Message:   m.message,
	})

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Frame returns the last frame the model displayed.
func (m Model) Frame() t2048.Frame {
	return m.frame
}

// directionFor maps an arrow action to a slide direction.
func directionFor(a core.Action) t2048.Direction {
	switch a {
	case core.ActionUp:
		return t2048.DirUp
	case core.ActionDown:
		return t2048.DirDown
	case core.ActionLeft:
		return t2048.DirLeft
	default:
		return t2048.DirRight
	}
}

// rejection turns a session error into a status line.
func rejection(err error) string {
	switch {
	case errors.Is(err, t2048.ErrInvalidSelection):
		return "Pick a tile on the board"
	case errors.Is(err, t2048.ErrUnavailable):
		return "Not available right now"
	default:
		return err.Error()
	}
}

// Run starts the Bubble Tea program for session.
func Run(session *t2048.Session, opts Options) error {
	p := tea.NewProgram(
		NewModel(session, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
