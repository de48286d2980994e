package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-village/internal/audio"
	"github.com/vovakirdan/snake-village/internal/config"
	"github.com/vovakirdan/snake-village/internal/core"
)

func newTestApp(t *testing.T, deps Deps, start Screen) App {
	t.Helper()
	if deps.Config.Board.CellSize == 0 {
		deps.Config = config.DefaultSnakeConfig()
	}
	deps.Seed = 1
	return NewApp(deps, config.DefaultSettings(), 80, 24, start)
}

func send(t *testing.T, a App, msgs ...tea.Msg) (App, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = a.Update(msg)
		var ok bool
		a, ok = next.(App)
		if !ok {
			t.Fatalf("Update() returned %T, expected App", next)
		}
	}
	return a, cmd
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{keyUp, core.ActionUp, false},
		{keyRunes("w"), core.ActionUp, false},
		{keyRunes("k"), core.ActionUp, false},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{keyRunes("a"), core.ActionLeft, false},
		{keyRunes("l"), core.ActionRight, false},
		{keyEnter, core.ActionConfirm, false},
		{keyEsc, core.ActionBack, false},
		{keyRunes("p"), core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionPause, false},
		{keyRunes("r"), core.ActionRestart, false},
		{keyRunes("m"), core.ActionMute, false},
		{keyRunes("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{keyRunes("x"), core.ActionNone, false},
	}
	for _, tt := range tests {
		action, quit := km.MapKey(tt.msg)
		if action != tt.action || quit != tt.quit {
			t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
		}
	}
}

func TestAppStartsOnRequestedScreen(t *testing.T) {
	a := newTestApp(t, Deps{}, ScreenGame)
	if a.ActiveScreen() != ScreenGame {
		t.Fatalf("ActiveScreen() = %v, expected ScreenGame", a.ActiveScreen())
	}
	if a.Init() == nil {
		t.Error("Init() on the game screen should arm a tick")
	}

	a = newTestApp(t, Deps{}, ScreenMenu)
	if a.ActiveScreen() != ScreenMenu || a.Init() != nil {
		t.Error("Menu screen should start idle")
	}
}

func TestAppMenuToGameAndBack(t *testing.T) {
	a := newTestApp(t, Deps{}, ScreenMenu)

	a, cmd := send(t, a, keyEnter)
	if a.ActiveScreen() != ScreenGame {
		t.Fatalf("ActiveScreen() = %v, expected ScreenGame", a.ActiveScreen())
	}
	if cmd == nil {
		t.Error("Entering the game should arm a tick")
	}

	a, _ = send(t, a, keyEsc, keyEsc)
	if a.ActiveScreen() != ScreenMenu {
		t.Errorf("ActiveScreen() = %v after pause+back, expected ScreenMenu", a.ActiveScreen())
	}
}

func TestAppAboutScreen(t *testing.T) {
	a := newTestApp(t, Deps{}, ScreenMenu)

	a, _ = send(t, a, keyDown, keyDown, keyDown, keyEnter)
	if a.ActiveScreen() != ScreenAbout {
		t.Fatalf("ActiveScreen() = %v, expected ScreenAbout", a.ActiveScreen())
	}

	a, _ = send(t, a, keyRunes("x"))
	if a.ActiveScreen() != ScreenMenu {
		t.Errorf("Any key should return to the menu, got %v", a.ActiveScreen())
	}
}

func TestAppScoresScreenWithoutStore(t *testing.T) {
	a := newTestApp(t, Deps{}, ScreenMenu)

	a, _ = send(t, a, keyDown, keyDown, keyEnter)
	if a.ActiveScreen() != ScreenScores {
		t.Fatalf("ActiveScreen() = %v, expected ScreenScores", a.ActiveScreen())
	}
	if a.View() == "" {
		t.Error("Scoreboard should render without a store")
	}

	a, _ = send(t, a, keyEsc)
	if a.ActiveScreen() != ScreenMenu {
		t.Errorf("Esc should return to the menu, got %v", a.ActiveScreen())
	}
}

func TestAppSettingsPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	player := audio.NewNop(false)
	a := newTestApp(t, Deps{
		Audio:           player,
		SettingsPath:    path,
		PersistSettings: true,
	}, ScreenMenu)

	a, _ = send(t, a, keyDown, keyEnter)
	if a.ActiveScreen() != ScreenSettings {
		t.Fatalf("ActiveScreen() = %v, expected ScreenSettings", a.ActiveScreen())
	}

	// Difficulty medium -> hard, then sound on -> off.
	a, _ = send(t, a, keyRight, keyDown, keyDown, keyRight, keyEsc)
	if a.ActiveScreen() != ScreenMenu {
		t.Fatalf("ActiveScreen() = %v, expected ScreenMenu", a.ActiveScreen())
	}

	got := a.Settings()
	if got.Difficulty != config.DifficultyHard {
		t.Errorf("Difficulty = %q, expected hard", got.Difficulty)
	}
	if got.SoundEnabled {
		t.Error("Sound should be disabled")
	}
	if !player.Muted() {
		t.Error("Disabling sound should mute the player")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Settings file not written: %v", err)
	}
}

func TestAppSettingsInMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	a := newTestApp(t, Deps{SettingsPath: path}, ScreenSettings)

	a, _ = send(t, a, keyRight, keyEsc)
	if a.Settings().Difficulty != config.DifficultyHard {
		t.Errorf("Difficulty = %q, expected hard", a.Settings().Difficulty)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Settings should not be written when persistence is off")
	}
}

func TestAppQuit(t *testing.T) {
	a := newTestApp(t, Deps{}, ScreenMenu)

	a, cmd := send(t, a, keyRunes("q"))
	if cmd == nil {
		t.Error("Quit should return a command")
	}
	if a.View() != "" {
		t.Error("View() should be empty after quit")
	}
}

func TestSettingsCycleWraps(t *testing.T) {
	m := NewSettingsModel(config.DefaultSettings(), 80, 24)

	m.cycle(1)
	m.cycle(1)
	if m.Settings().Difficulty != config.DifficultyExtreme {
		t.Errorf("Difficulty = %q, expected extreme", m.Settings().Difficulty)
	}
	m.cycle(1)
	if m.Settings().Difficulty != config.DifficultyEasy {
		t.Errorf("Difficulty = %q after wrap, expected easy", m.Settings().Difficulty)
	}
	m.cycle(-1)
	if m.Settings().Difficulty != config.DifficultyExtreme {
		t.Errorf("Difficulty = %q after reverse wrap, expected extreme", m.Settings().Difficulty)
	}

	m.cursor = rowTheme
	before := m.Settings().Theme
	for range m.themes {
		m.cycle(1)
	}
	if m.Settings().Theme != before {
		t.Errorf("Theme = %q after a full cycle, expected %q", m.Settings().Theme, before)
	}
	if !m.Changed() {
		t.Error("Changed() should be true")
	}
}

func TestScoreboardTabs(t *testing.T) {
	m := NewScoreboardModel(nil, "extreme", 80, 24)
	if got := m.tabs[m.tabCursor].Difficulty; got != "extreme" {
		t.Fatalf("Initial tab = %q, expected extreme", got)
	}

	m.moveTab(1)
	if got := m.tabs[m.tabCursor].Title; got != "All" {
		t.Errorf("Tab after wrap = %q, expected All", got)
	}
	m.moveTab(-1)
	if got := m.tabs[m.tabCursor].Title; got != "Extreme" {
		t.Errorf("Tab after reverse wrap = %q, expected Extreme", got)
	}
	if len(m.tabs) != len(config.Difficulties)+1 {
		t.Errorf("len(tabs) = %d, expected %d", len(m.tabs), len(config.Difficulties)+1)
	}
}

func TestScoreboardKeysAndView(t *testing.T) {
	var model tea.Model = NewScoreboardModel(nil, "", 120, 30)

	model, _ = model.Update(keyRight)
	m := model.(ScoreboardModel)
	if got := m.tabs[m.tabCursor].Title; got != "Easy" {
		t.Errorf("Tab after right = %q, expected Easy", got)
	}
	view := m.View()
	for _, want := range []string{"HIGH SCORES", "All", "Easy", "Extreme", "No scores recorded yet."} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = model.(ScoreboardModel)
	if got := m.tabs[m.tabCursor].Title; got != "All" {
		t.Errorf("Tab after shift+tab = %q, expected All", got)
	}

	model, _ = model.Update(tea.WindowSizeMsg{Width: 20, Height: 20})
	if view := model.View(); !strings.Contains(view, "All") || strings.Contains(view, "Extreme") {
		t.Errorf("Narrow View() should show only the active tab, got:\n%s", view)
	}

	model, _ = model.Update(keyEsc)
	if !model.(ScoreboardModel).IsGoingBack() {
		t.Error("IsGoingBack() = false after esc")
	}
}
