package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-village/internal/config"
)

// Screen identifies the active view of an App.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenGame
	ScreenSettings
	ScreenScores
	ScreenAbout
)

// App manages the full session flow: menu -> game/settings/scores/about ->
// menu. It is the top-level model for local play and for SSH sessions.
type App struct {
	deps     Deps
	settings config.Settings
	width    int
	height   int
	screen   Screen
	quitting bool

	menu      MenuModel
	game      *GameModel
	settingsM SettingsModel
	scores    ScoreboardModel
	about     AboutModel
}

// NewApp creates an app showing the given screen first.
func NewApp(deps Deps, settings config.Settings, width, height int, start Screen) App {
	deps = deps.withDefaults()
	deps.Audio.SetMuted(!settings.SoundEnabled)

	a := App{
		deps:     deps,
		settings: settings,
		width:    width,
		height:   height,
		menu:     NewMenuModel(settings, width, height),
	}
	a.enter(start)
	return a
}

// enter switches to a screen, building its model.
func (a *App) enter(s Screen) tea.Cmd {
	a.screen = s
	switch s {
	case ScreenGame:
		g := NewGameModel(a.deps, a.settings, a.width, a.height)
		a.game = &g
		return g.Init()
	case ScreenSettings:
		a.settingsM = NewSettingsModel(a.settings, a.width, a.height)
	case ScreenScores:
		a.scores = NewScoreboardModel(a.deps.Store, string(a.settings.Difficulty), a.width, a.height)
	case ScreenAbout:
		a.about = NewAboutModel(a.width, a.height)
	default:
		a.screen = ScreenMenu
		a.game = nil
		a.menu = NewMenuModel(a.settings, a.width, a.height)
	}
	return nil
}

// Init initializes the app.
func (a App) Init() tea.Cmd {
	if a.screen == ScreenGame && a.game != nil {
		return a.game.Init()
	}
	return nil
}

// Update routes messages to the active screen.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = wsm.Width
		a.height = wsm.Height
	}

	switch a.screen {
	case ScreenGame:
		return a.updateGame(msg)
	case ScreenSettings:
		return a.updateSettings(msg)
	case ScreenScores:
		return a.updateScores(msg)
	case ScreenAbout:
		return a.updateAbout(msg)
	default:
		return a.updateMenu(msg)
	}
}

func (a App) quit() (tea.Model, tea.Cmd) {
	a.quitting = true
	a.deps.Audio.Close()
	return a, tea.Quit
}

// updateMenu handles updates when in menu mode.
func (a App) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := a.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		a.menu = menuModel
	}

	switch a.menu.Choice() {
	case MenuChoiceQuit:
		return a.quit()
	case MenuChoicePlay:
		cmd = a.enter(ScreenGame)
		return a, cmd
	case MenuChoiceSettings:
		cmd = a.enter(ScreenSettings)
		return a, cmd
	case MenuChoiceScores:
		cmd = a.enter(ScreenScores)
		return a, cmd
	case MenuChoiceAbout:
		cmd = a.enter(ScreenAbout)
		return a, cmd
	}
	return a, cmd
}

// updateGame handles updates when in game mode.
func (a App) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := a.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		a.game = &gameModel
	}

	if a.game.IsQuitting() {
		return a.quit()
	}
	if a.game.BackToMenu() {
		cmd = a.enter(ScreenMenu)
		return a, cmd
	}
	return a, cmd
}

// updateSettings applies and persists edited settings on exit.
func (a App) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := a.settingsM.Update(msg)
	if s, ok := newModel.(SettingsModel); ok {
		a.settingsM = s
	}

	if a.settingsM.quitting {
		return a.quit()
	}
	if !a.settingsM.done {
		return a, cmd
	}

	if a.settingsM.Changed() {
		a.settings = a.settingsM.Settings()
		a.deps.Audio.SetMuted(!a.settings.SoundEnabled)
		if a.deps.PersistSettings {
			if err := config.SaveSettings(a.deps.SettingsPath, a.settings); err != nil {
				a.deps.Logger.Warn("could not save settings", "error", err)
			}
		}
		a.deps.Logger.Debug("settings changed",
			"difficulty", a.settings.Difficulty,
			"theme", a.settings.Theme,
			"sound", a.settings.SoundEnabled,
			"particles", a.settings.ParticleEffects,
		)
	}
	cmd = a.enter(ScreenMenu)
	return a, cmd
}

func (a App) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := a.scores.Update(msg)
	if s, ok := newModel.(ScoreboardModel); ok {
		a.scores = s
	}

	if a.scores.IsQuitting() {
		return a.quit()
	}
	if a.scores.IsGoingBack() {
		cmd = a.enter(ScreenMenu)
		return a, cmd
	}
	return a, cmd
}

func (a App) updateAbout(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := a.about.Update(msg)
	if s, ok := newModel.(AboutModel); ok {
		a.about = s
	}

	if a.about.quitting {
		return a.quit()
	}
	if a.about.done {
		cmd = a.enter(ScreenMenu)
		return a, cmd
	}
	return a, cmd
}

// View renders the current screen.
func (a App) View() string {
	if a.quitting {
		return ""
	}

	switch a.screen {
	case ScreenGame:
		return a.game.View()
	case ScreenSettings:
		return a.settingsM.View()
	case ScreenScores:
		return a.scores.View()
	case ScreenAbout:
		return a.about.View()
	default:
		return a.menu.View()
	}
}

// Settings returns the settings as they stand (after any edits).
func (a App) Settings() config.Settings {
	return a.settings
}

// ActiveScreen returns the screen currently shown.
func (a App) ActiveScreen() Screen {
	return a.screen
}

// Run starts a local Bubble Tea program on the given screen.
func Run(deps Deps, settings config.Settings, width, height int, start Screen) error {
	p := tea.NewProgram(
		NewApp(deps, settings, width, height, start),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
