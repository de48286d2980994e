// Package registry provides a global registry of visual themes.
// Themes register themselves in init() functions, allowing configuration
// validation and the renderer to discover them without hardcoded lists.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/snake-village/internal/core"
)

// Palette holds the colours a theme uses for each board element.
type Palette struct {
	Background core.Color
	Snake      core.Color
	SnakeHead  core.Color
	Food       core.Color
	Obstacle   core.Color
	Villager   core.Color
	Border     core.Color
	Particle   core.Color
}

// Theme is a cosmetic skin. It has no gameplay effect.
type Theme struct {
	ID      string
	Title   string
	Palette Palette

	// Props are the decorative prop types available from level 1.
	Props []string
	// VillageProps are added to the pool once villages appear.
	VillageProps []string

	// Glyphs maps a prop type tag to the rune used to draw it.
	Glyphs map[string]rune
}

// PropTypes returns the prop pool for the given level.
// Village props join the pool from villageLevel onward.
func (t Theme) PropTypes(level, villageLevel int) []string {
	types := make([]string, 0, len(t.Props)+len(t.VillageProps))
	types = append(types, t.Props...)
	if level >= villageLevel {
		types = append(types, t.VillageProps...)
	}
	return types
}

// Glyph returns the rune for a prop type, or '?' for unknown tags.
func (t Theme) Glyph(propType string) rune {
	if r, ok := t.Glyphs[propType]; ok {
		return r
	}
	return '?'
}

// ThemeInfo contains metadata about a registered theme.
type ThemeInfo struct {
	ID    string
	Title string
}

var (
	themes = make(map[string]Theme)
	mu     sync.RWMutex
)

// Register adds a theme to the registry.
// Panics if a theme with the same ID is already registered.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := themes[t.ID]; exists {
		panic(fmt.Sprintf("registry: theme %q already registered", t.ID))
	}
	themes[t.ID] = t
}

// List returns information about all registered themes, sorted by ID.
func List() []ThemeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ThemeInfo, 0, len(themes))
	for id, t := range themes {
		result = append(result, ThemeInfo{ID: id, Title: t.Title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the theme with the given ID.
// Returns an error if the theme is not registered.
func Get(id string) (Theme, error) {
	mu.RLock()
	defer mu.RUnlock()

	t, ok := themes[id]
	if !ok {
		return Theme{}, fmt.Errorf("registry: unknown theme %q", id)
	}
	return t, nil
}

// Exists checks if a theme with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := themes[id]
	return ok
}
