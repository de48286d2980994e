package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-village/internal/registry"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List all available themes",
	Long:  `Shows every registered theme with its scenery. Themes are cosmetic only.`,
	Args:  cobra.NoArgs,
	Run:   runThemes,
}

func runThemes(_ *cobra.Command, _ []string) {
	infos := registry.List()

	if len(infos) == 0 {
		fmt.Println("No themes available.")
		return
	}

	fmt.Println("Available themes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, t := range infos {
		if len(t.ID) > maxIDLen {
			maxIDLen = len(t.ID)
		}
	}

	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "ID", "Title", "Scenery")
	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "--", "-----", "-------")

	for _, info := range infos {
		t, err := registry.Get(info.ID)
		if err != nil {
			continue
		}
		props := make([]string, 0, len(t.Props)+len(t.VillageProps))
		for _, p := range append(append([]string{}, t.Props...), t.VillageProps...) {
			props = append(props, fmt.Sprintf("%c %s", t.Glyph(p), p))
		}
		fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, t.ID, t.Title, strings.Join(props, ", "))
	}

	fmt.Println()
	fmt.Println("Run 'snake play --theme <id>' or pick one in Settings.")
}
