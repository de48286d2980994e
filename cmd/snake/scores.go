package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-village/internal/config"
	"github.com/vovakirdan/snake-village/internal/platform/tui"
	"github.com/vovakirdan/snake-village/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresStats bool
	flagScoresClear bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the top high scores, for one difficulty or for all of them.

Examples:
  snake scores
  snake scores hard
  snake scores --stats
  snake scores --tui
  snake scores extreme --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show per-difficulty statistics")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the scores of the difficulty (or all)")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) {
	difficulty := ""
	if len(args) == 1 {
		preset, ok := config.ParseDifficulty(args[0])
		if !ok {
			fail("unknown difficulty %q (easy, medium, hard, extreme)", args[0])
		}
		difficulty = string(preset)
	}

	if flagScoresTUI {
		if difficulty != "" {
			flagDifficulty = difficulty
		}
		runTUI(tui.ScreenScores)
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(difficulty); err != nil {
			fail("clearing scores: %v", err)
		}
		fmt.Printf("Cleared scores for %s.\n", modeTitle(difficulty))
	case flagScoresStats:
		printStats(store)
	default:
		printScores(store, difficulty)
	}
}

func modeTitle(difficulty string) string {
	if difficulty == "" {
		return "all difficulties"
	}
	return difficulty
}

func printScores(store *storage.Store, difficulty string) {
	scores, err := store.TopScores(difficulty, flagScoresLimit)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", modeTitle(difficulty))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-7s  %-5s  %-8s  %-11s  %s\n", "Rank", "Score", "Level", "Mode", "Theme", "Date")
	fmt.Printf("  %-4s  %-7s  %-5s  %-8s  %-11s  %s\n", "----", "-----", "-----", "----", "-----", "----")

	for i, e := range scores {
		fmt.Printf("  %-4d  %-7d  %-5d  %-8s  %-11s  %s\n",
			i+1, e.Score, e.Level, e.Difficulty, e.Theme, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if high, err := store.HighScore(difficulty); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}

func printStats(store *storage.Store) {
	stats, err := store.GetStats()
	if err != nil {
		fail("retrieving stats: %v", err)
	}
	if len(stats) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	modes := make([]string, 0, len(stats))
	for m := range stats {
		modes = append(modes, m)
	}
	sort.Slice(modes, func(i, j int) bool {
		return difficultyRank(modes[i]) < difficultyRank(modes[j])
	})

	fmt.Printf("  %-8s  %-5s  %-6s  %-7s  %-9s  %s\n", "Mode", "Games", "Best", "Average", "Max Level", "Last Played")
	fmt.Printf("  %-8s  %-5s  %-6s  %-7s  %-9s  %s\n", "----", "-----", "----", "-------", "---------", "-----------")
	for _, m := range modes {
		s := stats[m]
		fmt.Printf("  %-8s  %-5d  %-6d  %-7.1f  %-9d  %s\n",
			s.Difficulty, s.GamesCount, s.HighScore, s.AvgScore, s.MaxLevel, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}

// difficultyRank orders presets from easy to extreme, unknown ones last.
func difficultyRank(d string) int {
	for i, p := range config.Difficulties {
		if string(p) == d {
			return i
		}
	}
	return len(config.Difficulties)
}
