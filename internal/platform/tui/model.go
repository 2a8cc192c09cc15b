// Package tui runs games in the terminal with Bubble Tea. It owns the tick
// loop, maps keys to game actions and turns screen buffers into styled
// output.
package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-xonix/internal/core"
	"github.com/vovakirdan/tui-xonix/internal/registry"
)

// TickMsg drives one simulation step.
type TickMsg time.Time

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(max(1, tickRate)), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// footerHeight is the number of rows reserved below the game for key help.
const footerHeight = 1

var helpBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("6")).
	Padding(1, 2)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game          registry.Game
	screen        *core.Screen
	config        core.RuntimeConfig
	keys          KeyMap
	help          help.Model
	logger        *log.Logger
	inputFrame    core.InputFrame
	gameState     core.GameState
	showHelp      bool
	pausedForHelp bool
	quitting      bool
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger that receives game events.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithKeyMap overrides the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ...Option) Model {
	m := Model{
		game:       game,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     log.New(io.Discard),
		inputFrame: core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	gc := m.gameConfig()
	m.screen = core.NewScreen(gc.ScreenW, gc.ScreenH)
	m.help.Width = cfg.ScreenW
	return m
}

// gameConfig is the runtime config handed to the game: the terminal minus
// the help footer.
func (m Model) gameConfig() core.RuntimeConfig {
	gc := m.config
	gc.ScreenH = max(0, gc.ScreenH-footerHeight)
	return gc
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		return m.toggleHelp(), nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if m.showHelp {
		// Any other key closes the help screen.
		return m.toggleHelp(), nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// toggleHelp opens or closes the full help screen, pausing the game while
// it is shown.
func (m Model) toggleHelp() Model {
	m.showHelp = !m.showHelp
	m.help.ShowAll = m.showHelp

	switch {
	case m.showHelp && !m.gameState.Paused && !m.gameState.GameOver:
		m.inputFrame.Set(core.ActionPause)
		m.pausedForHelp = true
	case !m.showHelp && m.pausedForHelp:
		m.inputFrame.Set(core.ActionPause)
		m.pausedForHelp = false
	}
	return m
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	gc := m.gameConfig()
	m.screen.Resize(gc.ScreenW, gc.ScreenH)

	// The playfield is sized from the screen, so a resize starts a new round.
	if !m.gameState.GameOver {
		m.game.Reset(gc)
		m.gameState = m.game.State()
		m.pausedForHelp = false
		if m.showHelp {
			m.inputFrame.Set(core.ActionPause)
			m.pausedForHelp = true
		}
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame.Clone())
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, e := range result.Events {
		m.logger.Debug("game event", "game", m.game.ID(), "event", e)
	}
	if m.gameState.GameOver && !wasOver {
		m.logger.Info("round over",
			"game", m.game.ID(),
			"score", m.gameState.Score,
			"progress", m.gameState.Progress,
			"won", m.gameState.Won,
		)
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showHelp {
		box := helpBoxStyle.Render(m.help.View(m.keys))
		return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, box)
	}

	m.game.Render(m.screen)
	return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
