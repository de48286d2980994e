package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-village/internal/config"
	"github.com/vovakirdan/snake-village/internal/storage"
)

const maxScores = 100

// scoreboardKeys are the scoreboard bindings. Up and down scroll the table,
// left and right switch difficulty.
type scoreboardKeys struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Prev, k.Next, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultScoreboardKeys = scoreboardKeys{
	Scroll: key.NewBinding(key.WithKeys("up", "k", "down", "j"), key.WithHelp("↑/↓", "scroll")),
	Next:   key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→", "next mode")),
	Prev:   key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev mode")),
	Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// scoreTab is one filter of the scoreboard. An empty difficulty shows all.
type scoreTab struct {
	Difficulty string
	Title      string
}

func scoreTabs() []scoreTab {
	tabs := []scoreTab{{Title: "All"}}
	for _, d := range config.Difficulties {
		tabs = append(tabs, scoreTab{
			Difficulty: string(d),
			Title:      strings.ToUpper(string(d[:1])) + string(d[1:]),
		})
	}
	return tabs
}

var (
	tabStyle       = dimStyle.Padding(0, 1)
	activeTabStyle = selectedStyle.Background(lipgloss.Color("57")).Padding(0, 1)
	boxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// ScoreboardModel lists the stored high scores, one difficulty at a time.
type ScoreboardModel struct {
	store  *storage.Store
	tabs   []scoreTab
	scores []storage.ScoreEntry
	table  table.Model
	help   help.Model

	tabCursor int
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel opens the scoreboard on difficulty (empty for all).
// A nil store shows an empty board.
func NewScoreboardModel(store *storage.Store, difficulty string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		tabs:   scoreTabs(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	for i, t := range m.tabs {
		if t.Difficulty == difficulty {
			m.tabCursor = i
		}
	}
	m.table = newScoreTable(height)
	m.loadScores()
	return m
}

func newScoreTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 7},
			{Title: "Lvl", Width: 4},
			{Title: "Mode", Width: 8},
			{Title: "Theme", Width: 11},
			{Title: "Date", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, height-9)),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Inherit(titleStyle).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true)
	styles.Selected = activeTabStyle.UnsetPadding()
	t.SetStyles(styles)
	return t
}

func (m *ScoreboardModel) loadScores() {
	m.scores = nil
	if m.store != nil {
		if scores, err := m.store.TopScores(m.tabs[m.tabCursor].Difficulty, maxScores); err == nil {
			m.scores = scores
		}
	}

	rows := make([]table.Row, 0, len(m.scores))
	for i, e := range m.scores {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(e.Score),
			strconv.Itoa(e.Level),
			e.Difficulty,
			e.Theme,
			e.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) moveTab(delta int) {
	m.tabCursor = wrapIndex(m.tabCursor+delta, len(m.tabs))
	m.loadScores()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		keys := defaultScoreboardKeys
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
		case key.Matches(msg, keys.Back):
			m.goingBack = true
		case key.Matches(msg, keys.Next):
			m.moveTab(1)
		case key.Matches(msg, keys.Prev):
			m.moveTab(-1)
		case key.Matches(msg, keys.Scroll):
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newScoreTable(m.height)
		m.loadScores()
	}
	return m, nil
}

func (m ScoreboardModel) View() string {
	tabs := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		style := tabStyle
		if i == m.tabCursor {
			style = activeTabStyle
		}
		tabs[i] = style.Render(t.Title)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(row) > m.width {
		row = "← " + activeTabStyle.Render(m.tabs[m.tabCursor].Title) + " →"
	}

	body := m.table.View()
	if len(m.scores) == 0 {
		body = dimStyle.Italic(true).Padding(1, 2).Render("No scores recorded yet.\nPlay a game to set a high score!")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		centerText(titleStyle.Render("HIGH SCORES"), m.width),
		"",
		centerText(row, m.width),
		"",
		boxStyle.Render(body),
		dimStyle.Render(m.help.View(defaultScoreboardKeys)),
	)
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
