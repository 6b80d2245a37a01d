package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/milyin/tui2048/internal/field"
	"github.com/milyin/tui2048/internal/game"
	"github.com/milyin/tui2048/internal/storage"
)

// Model is the Bubble Tea model for a game session. It only reads the
// board matrix and score and drives the game through swipe, undo, and
// restart; all rules live below it.
type Model struct {
	cfg       game.Config
	game      *game.Game
	store     *storage.Store
	keys      KeyMap
	help      help.Model
	width     int
	height    int
	best      int
	startedAt time.Time
	saved     bool
	quitting  bool
}

// NewModel creates a model for a fresh game.
func NewModel(cfg game.Config, store *storage.Store) Model {
	m := Model{
		cfg:       cfg,
		game:      game.New(cfg),
		store:     store,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		startedAt: time.Now(),
	}
	m.refreshBest()
	return m
}

// refreshBest pulls the stored high score for the HUD.
func (m *Model) refreshBest() {
	if m.store == nil {
		return
	}
	if best, err := m.store.HighScore(); err == nil {
		m.best = best
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveIfOver()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Restart):
		m.saveIfOver()
		m.game = game.New(m.cfg)
		m.startedAt = time.Now()
		m.saved = false
		m.refreshBest()

	case key.Matches(msg, m.keys.Undo):
		m.game.Undo()

	case key.Matches(msg, m.keys.Up):
		m.swipe(field.SideUp)
	case key.Matches(msg, m.keys.Down):
		m.swipe(field.SideDown)
	case key.Matches(msg, m.keys.Left):
		m.swipe(field.SideLeft)
	case key.Matches(msg, m.keys.Right):
		m.swipe(field.SideRight)
	}

	return m, nil
}

// swipe forwards a move and persists the result once the game ends.
func (m *Model) swipe(side field.Side) {
	if m.game.Over() {
		return
	}
	m.game.Swipe(side)
	m.saveIfOver()
}

// saveIfOver records the finished game exactly once.
func (m *Model) saveIfOver() {
	if m.saved || m.store == nil || !m.game.Over() || m.game.Moves() == 0 {
		return
	}

	//nolint:errcheck // Best-effort save, the session continues regardless
	m.store.SaveGame(storage.GameRecord{
		Score:    int(m.game.DisplayScore()),
		BestTile: int(m.game.MaxTile() * 2),
		Moves:    m.game.Moves(),
		Duration: int(time.Since(m.startedAt).Seconds()),
	})
	m.saved = true
	m.refreshBest()
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		titleStyle.Render("2048"),
		renderHUD(m.game, m.best),
		renderBoard(m.game),
	}

	if m.game.Over() {
		sections = append(sections, overStyle.Render("Game over!"))
	}
	sections = append(sections, m.help.View(m.keys))

	view := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(cfg game.Config, store *storage.Store) error {
	p := tea.NewProgram(NewModel(cfg, store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
