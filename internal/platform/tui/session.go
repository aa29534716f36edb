package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quickmaths/internal/core"
	"github.com/vovakirdan/quickmaths/internal/registry"
)

// SessionModel manages the full flow: menu -> game -> menu.
// It is the top-level model for local play and for SSH sessions.
type SessionModel struct {
	config   core.RuntimeConfig
	opts     Options
	logger   *log.Logger
	menu     MenuModel
	game     *Model
	quitting bool
}

// NewSessionModel creates a session. A non-empty gameID skips the menu.
func NewSessionModel(cfg core.RuntimeConfig, opts Options, logger *log.Logger, gameID string) (SessionModel, error) {
	m := SessionModel{
		config: cfg,
		opts:   opts,
		logger: logger,
		menu:   NewMenuModel(cfg.ScreenW, cfg.ScreenH),
	}
	if gameID != "" {
		if err := m.start(gameID); err != nil {
			return m, err
		}
	}
	return m, nil
}

func (m *SessionModel) start(gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	if m.logger != nil {
		m.logger.Debug("starting game", "id", gameID)
	}
	gm := NewModel(game, m.config, m.opts)
	m.game = &gm
	return nil
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.game != nil {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		if err := m.start(selected.GameID); err != nil {
			// Shouldn't happen since the menu only shows registered games
			m.menu = NewMenuModel(m.config.ScreenW, m.config.ScreenH)
			return m, nil
		}
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.menu = NewMenuModel(m.config.ScreenW, m.config.ScreenH)
		// The pending tick arrives at the menu and is dropped there.
		return m, m.menu.Init()
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.menu.View()
}

// InGame reports whether a game is running.
func (m SessionModel) InGame() bool {
	return m.game != nil
}

// Run starts a local Bubble Tea program. An empty gameID opens the menu.
func Run(gameID string, cfg core.RuntimeConfig, opts Options, logger *log.Logger) error {
	model, err := NewSessionModel(cfg, opts, logger, gameID)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Track the pointer for aiming
	)

	_, err = p.Run()
	return err
}
