package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-village/internal/config"
	"github.com/vovakirdan/snake-village/internal/registry"
)

// SettingsKeyMap defines the key bindings for the settings screen.
type SettingsKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SettingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k SettingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Back, k.Quit},
	}
}

// DefaultSettingsKeyMap returns default key bindings.
func DefaultSettingsKeyMap() SettingsKeyMap {
	return SettingsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "prev option"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "next option"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("left/h", "prev value"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d", "enter", " "),
			key.WithHelp("right/enter", "next value"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "save & back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type settingsRow int

const (
	rowDifficulty settingsRow = iota
	rowTheme
	rowSound
	rowParticles
	settingsRowCount
)

// SettingsModel edits difficulty, theme, sound and particle effects.
type SettingsModel struct {
	settings config.Settings
	themes   []registry.ThemeInfo
	cursor   settingsRow
	keys     SettingsKeyMap
	help     help.Model
	width    int
	height   int
	changed  bool
	done     bool
	quitting bool
}

// NewSettingsModel creates the settings screen for the current settings.
func NewSettingsModel(settings config.Settings, width, height int) SettingsModel {
	h := help.New()
	h.Width = width
	return SettingsModel{
		settings: settings,
		themes:   registry.List(),
		keys:     DefaultSettingsKeyMap(),
		help:     h,
		width:    width,
		height:   height,
	}
}

// Init initializes the model.
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
		case key.Matches(msg, m.keys.Back):
			m.done = true
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < settingsRowCount-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Left):
			m.cycle(-1)
		case key.Matches(msg, m.keys.Right):
			m.cycle(1)
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// cycle moves the value of the selected row by delta.
func (m *SettingsModel) cycle(delta int) {
	switch m.cursor {
	case rowDifficulty:
		i := indexOf(len(config.Difficulties), func(i int) bool {
			return config.Difficulties[i] == m.settings.Difficulty
		})
		m.settings.Difficulty = config.Difficulties[wrapIndex(i+delta, len(config.Difficulties))]
	case rowTheme:
		if len(m.themes) == 0 {
			return
		}
		i := indexOf(len(m.themes), func(i int) bool {
			return m.themes[i].ID == m.settings.Theme
		})
		m.settings.Theme = m.themes[wrapIndex(i+delta, len(m.themes))].ID
	case rowSound:
		m.settings.SoundEnabled = !m.settings.SoundEnabled
	case rowParticles:
		m.settings.ParticleEffects = !m.settings.ParticleEffects
	}
	m.changed = true
}

func indexOf(n int, match func(int) bool) int {
	for i := 0; i < n; i++ {
		if match(i) {
			return i
		}
	}
	return 0
}

func wrapIndex(i, n int) int {
	return ((i % n) + n) % n
}

// View renders the settings list.
func (m SettingsModel) View() string {
	onOff := func(v bool) string {
		if v {
			return "on"
		}
		return "off"
	}
	themeTitle := m.settings.Theme
	for _, t := range m.themes {
		if t.ID == m.settings.Theme {
			themeTitle = t.Title
		}
	}

	rows := []struct {
		label, value string
	}{
		{"Difficulty", string(m.settings.Difficulty)},
		{"Theme", themeTitle},
		{"Sound", onOff(m.settings.SoundEnabled)},
		{"Particles", onOff(m.settings.ParticleEffects)},
	}

	var list strings.Builder
	for i, r := range rows {
		line := fmt.Sprintf("  %-12s < %-10s >", r.label, r.value)
		if settingsRow(i) == m.cursor {
			line = selectedStyle.Render(fmt.Sprintf("> %-12s < %-10s >", r.label, r.value))
		}
		list.WriteString(line)
		if i < len(rows)-1 {
			list.WriteString("\n")
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2).
		Render(list.String())

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("SETTINGS"), m.width))
	b.WriteString("\n\n")
	for _, line := range strings.Split(box, "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

// Settings returns the edited settings.
func (m SettingsModel) Settings() config.Settings {
	return m.settings
}

// Changed reports whether any value was modified.
func (m SettingsModel) Changed() bool {
	return m.changed
}
