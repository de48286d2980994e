package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-village/internal/audio"
	"github.com/vovakirdan/snake-village/internal/config"
	"github.com/vovakirdan/snake-village/internal/platform/tui"
	"github.com/vovakirdan/snake-village/internal/registry"
	"github.com/vovakirdan/snake-village/internal/storage"
)

var (
	flagDifficulty string
	flagTheme      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start a game straight away, skipping the menu.

Controls:
  Arrows/WASD/HJKL  - Move
  P/Space           - Pause
  M                 - Toggle sound
  R                 - Restart (after game over)
  Esc               - Pause, then back to menu
  Q/Ctrl+C          - Quit

Difficulty options:
  easy     - 50ms slower than base speed
  medium   - base speed
  hard     - 50ms faster
  extreme  - 75ms faster

Examples:
  snake play
  snake play --difficulty hard
  snake play --theme space --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard, extreme")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Theme (see 'snake themes')")
}

func runPlay(_ *cobra.Command, _ []string) {
	runTUI(tui.ScreenGame)
}

// runTUI runs the local terminal UI starting at the given screen.
func runTUI(start tui.Screen) {
	logOut, closeLog := openLogFile()
	defer closeLog()
	logger := newLogger(logOut, "snake")

	cfg := loadConfig(logger)
	settings := cfg.Settings
	if flagDifficulty != "" {
		preset, ok := config.ParseDifficulty(flagDifficulty)
		if !ok {
			fail("unknown difficulty %q (easy, medium, hard, extreme)", flagDifficulty)
		}
		settings.Difficulty = preset
	}
	if flagTheme != "" {
		if !registry.Exists(flagTheme) {
			fail("unknown theme %q. Run 'snake themes' to see available themes.", flagTheme)
		}
		settings.Theme = flagTheme
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	player := audio.NewSpeaker(logger, !settings.SoundEnabled)
	deps := tui.Deps{
		Config:          cfg,
		Store:           store,
		Audio:           player,
		Logger:          logger,
		Seed:            flagSeed,
		SettingsPath:    flagConfig,
		PersistSettings: true,
	}

	width, height := terminalSize()
	runErr := tui.Run(deps, settings, width, height, start)

	if store != nil {
		store.Close()
	}
	player.Close()

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
