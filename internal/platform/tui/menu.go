package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-xonix/internal/config"
	"github.com/vovakirdan/tui-xonix/internal/core"
	"github.com/vovakirdan/tui-xonix/internal/registry"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	menuSubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuItemStyle     = lipgloss.NewStyle()
	menuCursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

var presetBlurbs = map[config.DifficultyPreset]string{
	config.DifficultyEasy:   "60% target, no clock",
	config.DifficultyNormal: "75% target, 5 minutes",
	config.DifficultyHard:   "85% target, 3 minutes",
	config.DifficultyFixed:  "use the config file as is",
}

// Selection holds the user's choice from the mode selector.
type Selection struct {
	GameID     string
	Difficulty config.DifficultyPreset
}

// ModeSelectorModel lets users choose a game mode and a difficulty preset.
type ModeSelectorModel struct {
	modes        []registry.GameInfo
	presets      []config.DifficultyPreset
	cursor       int
	presetCursor int
	inPresets    bool
	width        int
	height       int
	keys         MenuKeyMap
	help         help.Model
	selection    Selection
	choosing     bool
	quitting     bool
}

// NewModeSelectorModel creates a selector over the registered games.
func NewModeSelectorModel(width, height int) ModeSelectorModel {
	presets := config.Presets()
	return ModeSelectorModel{
		modes:        registry.List(),
		presets:      presets,
		presetCursor: defaultPresetIndex(presets),
		width:        width,
		height:       height,
		keys:         DefaultMenuKeyMap(),
		help:         help.New(),
		choosing:     true,
	}
}

func defaultPresetIndex(presets []config.DifficultyPreset) int {
	for i, p := range presets {
		if p == config.DifficultyNormal {
			return i
		}
	}
	return 0
}

// Init initializes the model.
func (m ModeSelectorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ModeSelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m ModeSelectorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inPresets {
		return m.handlePresetKey(msg)
	}
	return m.handleModeKey(msg)
}

func (m ModeSelectorModel) handleModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.modes)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if len(m.modes) == 0 {
			return m, nil
		}
		m.inPresets = true
	case key.Matches(msg, m.keys.Back):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m ModeSelectorModel) handlePresetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.presetCursor > 0 {
			m.presetCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.presetCursor < len(m.presets)-1 {
			m.presetCursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.choosing = false
		m.selection = Selection{
			GameID:     m.modes[m.cursor].ID,
			Difficulty: m.presets[m.presetCursor],
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.inPresets = false
	}
	return m, nil
}

// View renders the current selection step.
func (m ModeSelectorModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("X O N I X"), m.width))
	b.WriteString("\n\n")

	if m.inPresets {
		b.WriteString(centerText(menuSubtitleStyle.Render("Select difficulty:"), m.width))
		b.WriteString("\n\n")
		for i, p := range m.presets {
			b.WriteString(centerText(m.item(i == m.presetCursor, string(p), presetBlurbs[p]), m.width))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(centerText(menuSubtitleStyle.Render("Select game mode:"), m.width))
		b.WriteString("\n\n")
		for i, info := range m.modes {
			b.WriteString(centerText(m.item(i == m.cursor, info.Title, ""), m.width))
			b.WriteString("\n")
		}
		if len(m.modes) > 0 && m.modes[m.cursor].Description != "" {
			b.WriteString("\n")
			b.WriteString(centerText(menuSubtitleStyle.Render(m.modes[m.cursor].Description), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	return b.String()
}

func (m ModeSelectorModel) item(selected bool, label, blurb string) string {
	cursor, style := "  ", menuItemStyle
	if selected {
		cursor, style = "> ", menuCursorStyle
	}
	line := style.Render(cursor + label)
	if blurb != "" {
		line += "  " + menuSubtitleStyle.Render(blurb)
	}
	return line
}

// Selected returns the selection, or nil if still choosing.
func (m ModeSelectorModel) Selected() *Selection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if the user left the selector.
func (m ModeSelectorModel) IsQuitting() bool {
	return m.quitting
}

// centerText pads text so it is centred within width. Styled text is
// measured by its visible width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunModeSelector runs the mode and difficulty selector. It returns nil when
// the user quits without choosing.
func RunModeSelector(cfg core.RuntimeConfig) (*Selection, error) {
	model := NewModeSelectorModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(ModeSelectorModel)
	if !ok || m.IsQuitting() {
		return nil, nil
	}
	return m.Selected(), nil
}
