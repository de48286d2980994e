package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-village/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the main menu",
	Long: `Start Snake Village in interactive menu mode.

From the menu you can play, change settings (difficulty, theme, sound,
particles), browse high scores and read the about page. Settings changes
are saved to ~/.snake/config.yaml (or the --config file).

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  snake menu
  snake menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	runTUI(tui.ScreenMenu)
}
