package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var aboutLines = []string{
	"Guide the snake around a wrapping village board.",
	"Eat food to grow and score level x 10 points.",
	"Every 5 foods the level rises: more obstacles,",
	"more villagers, more scenery. Villagers flee but never hurt.",
	"Avoid your own tail and the obstacles.",
	"",
	"Features",
	"  8 themes with their own palettes and props",
	"  4 difficulty presets",
	"  danger warnings near walls, obstacles and your body",
	"  sound cues and particle effects",
	"  high scores per difficulty",
	"",
	"Controls",
	"  arrows / wasd / hjkl   move",
	"  p / space             pause",
	"  m                     toggle sound",
	"  r                     restart after game over",
	"  esc                   menu",
	"  q                     quit",
}

// AboutModel shows the game description. Any key returns to the menu.
type AboutModel struct {
	width, height int
	done          bool
	quitting      bool
	keyMapper     *KeyMapper
}

// NewAboutModel creates the about screen.
func NewAboutModel(width, height int) AboutModel {
	return AboutModel{width: width, height: height, keyMapper: NewKeyMapper()}
}

// Init initializes the model.
func (m AboutModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m AboutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionQuit {
			m.quitting = true
			return m, nil
		}
		m.done = true
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

// View renders the about text.
func (m AboutModel) View() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2).
		Render(strings.Join(aboutLines, "\n"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("ABOUT"), m.width))
	b.WriteString("\n\n")
	for _, line := range strings.Split(box, "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("any key: back"), m.width))
	return b.String()
}
