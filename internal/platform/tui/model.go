package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/quickmaths/internal/core"
	"github.com/vovakirdan/quickmaths/internal/registry"
)

// maxFrameDelta caps the time fed into one step after the terminal stalls
// (suspend, slow SSH link) so entities cannot tunnel through each other.
const maxFrameDelta = 250 * time.Millisecond

// statusDuration is how long a footer status message stays visible.
const statusDuration = 2 * time.Second

// CellAspect is the height of a terminal cell divided by its width.
const CellAspect = 2.0

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Hex(core.ColorGray)))

// Options tweak a frame driver.
type Options struct {
	// AllowCopy enables copying frames to the local clipboard. Off for SSH
	// sessions, where the clipboard would be the server's.
	AllowCopy bool

	// HoldWindow overrides DefaultHoldWindow.
	HoldWindow time.Duration
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keys       KeyMap
	help       help.Model
	held       *HeldKeys
	inputFrame core.InputFrame
	gameState  core.GameState
	loop       uint64
	last       time.Time
	status     string
	statusEnd  time.Time
	quitting   bool
	backToMenu bool
}

// NewModel creates a model and resets the game to fit the terminal.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.CellAspect == 0 {
		cfg.CellAspect = CellAspect
	}

	h := help.New()
	h.Width = cfg.ScreenW

	w, gh := cfg.ScreenW, gameHeight(cfg.ScreenH)
	cfg.ScreenH = gh
	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(w, gh),
		config:     cfg,
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       h,
		held:       NewHeldKeys(opts.HoldWindow),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		loop:       nextLoop(),
	}
}

// gameHeight leaves one row for the footer.
func gameHeight(h int) int {
	return max(h-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.At)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := m.now()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Copy):
		m.copyFrame(now)
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.gameState.Paused || m.gameState.PlayerDead {
			m.backToMenu = true
		}
		return m, nil
	case key.Matches(msg, m.keys.Pause):
		m.inputFrame.Set(core.ActionPause)
		m.held.Reset()
		return m, nil
	case key.Matches(msg, m.keys.Shoot):
		m.inputFrame.Click(m.inputFrame.Cursor)
		return m, nil
	}

	if a := m.keys.Movement(msg); a != core.ActionNone {
		m.held.Press(a, now)
	}
	return m, nil
}

// handleMouse tracks the pointer in cell space. The cursor sits at the
// centre of the hovered cell.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	at := core.V(float64(msg.X)+0.5, float64(msg.Y)+0.5)
	m.inputFrame.Cursor = at
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.Click(at)
	}
	return m, nil
}

// handleResize refits the game without resetting it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	gh := gameHeight(msg.Height)
	m.config.ScreenW = msg.Width
	m.config.ScreenH = gh
	m.screen.Resize(msg.Width, gh)
	m.game.Resize(msg.Width, gh)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick steps the game by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.last.IsZero() {
		dt = min(max(now.Sub(m.last), 0), maxFrameDelta)
	}
	m.last = now

	m.held.Apply(&m.inputFrame, now)
	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate, m.loop)
}

func (m Model) now() time.Time {
	if m.last.IsZero() {
		return time.Now()
	}
	return m.last
}

// copyFrame puts the current frame on the clipboard as plain text.
func (m *Model) copyFrame(now time.Time) {
	if !m.opts.AllowCopy {
		m.setStatus("copy is unavailable in this session", now)
		return
	}
	m.game.Render(m.screen)
	if err := clipboard.WriteAll(m.screen.String()); err != nil {
		m.setStatus("copy failed: "+err.Error(), now)
		return
	}
	m.setStatus("frame copied to clipboard", now)
}

func (m *Model) setStatus(s string, now time.Time) {
	m.status = s
	m.statusEnd = now.Add(statusDuration)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.status != "" && m.now().Before(m.statusEnd) {
		footer = m.status
	}
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}
