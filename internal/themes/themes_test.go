package themes

import (
	"testing"

	"github.com/vovakirdan/snake-village/internal/registry"
)

func TestBuiltinThemesRegistered(t *testing.T) {
	expected := []string{"cyberpunk", "desert", "forest", "lava", "neon", "snow", "space", "underwater"}

	list := registry.List()
	if len(list) != len(expected) {
		t.Fatalf("List() returned %d themes, expected %d", len(list), len(expected))
	}
	for i, id := range expected {
		if list[i].ID != id {
			t.Errorf("List()[%d].ID = %q, expected %q", i, list[i].ID, id)
		}
	}
	if !registry.Exists(Default) {
		t.Errorf("default theme %q is not registered", Default)
	}
}

func TestEveryPropHasGlyph(t *testing.T) {
	for _, info := range registry.List() {
		theme, err := registry.Get(info.ID)
		if err != nil {
			t.Fatalf("Get(%q) failed: %v", info.ID, err)
		}
		for _, prop := range theme.PropTypes(99, 3) {
			if theme.Glyph(prop) == '?' {
				t.Errorf("theme %q has no glyph for prop %q", info.ID, prop)
			}
		}
		if theme.Palette.Snake == "" || theme.Palette.Food == "" {
			t.Errorf("theme %q has an incomplete palette", info.ID)
		}
	}
}
