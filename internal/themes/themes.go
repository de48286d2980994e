// Package themes registers the built-in visual themes. Import it for its
// side effects.
package themes

import (
	"github.com/vovakirdan/snake-village/internal/registry"
)

// Default is the theme used when none (or an unknown one) is configured.
const Default = "forest"

func init() {
	for _, t := range builtin {
		registry.Register(t)
	}
}

var builtin = []registry.Theme{
	{
		ID:    "forest",
		Title: "Forest",
		Palette: registry.Palette{
			Background: "#232931", Snake: "#4ecca3", SnakeHead: "#2e8b57", Food: "#ff6b6b",
			Obstacle: "#a0522d", Villager: "#ffd700", Border: "#4ecca3", Particle: "#4ecca3",
		},
		Props:        []string{"tree", "bush", "rock", "flower"},
		VillageProps: []string{"house", "well", "fence"},
		Glyphs: map[string]rune{
			"tree": '♣', "bush": '"', "rock": '•', "flower": '✿',
			"house": '⌂', "well": 'o', "fence": '‡',
		},
	},
	{
		ID:    "desert",
		Title: "Desert",
		Palette: registry.Palette{
			Background: "#e6ccb2", Snake: "#e67e22", SnakeHead: "#d35400", Food: "#3498db",
			Obstacle: "#7f5539", Villager: "#f4d03f", Border: "#d35400", Particle: "#e67e22",
		},
		Props:        []string{"cactus", "bone", "dune", "skull"},
		VillageProps: []string{"tent", "oasis", "camel"},
		Glyphs: map[string]rune{
			"cactus": '†', "bone": '~', "dune": '∩', "skull": '☠',
			"tent": '▲', "oasis": '≈', "camel": 'ო',
		},
	},
	{
		ID:    "snow",
		Title: "Snow",
		Palette: registry.Palette{
			Background: "#ecf0f1", Snake: "#3498db", SnakeHead: "#2980b9", Food: "#e74c3c",
			Obstacle: "#7f8c8d", Villager: "#bdc3c7", Border: "#3498db", Particle: "#3498db",
		},
		Props:        []string{"pine", "snowman", "ice", "crystal"},
		VillageProps: []string{"cabin", "igloo", "sled"},
		Glyphs: map[string]rune{
			"pine": '♠', "snowman": '☃', "ice": '░', "crystal": '❄',
			"cabin": '⌂', "igloo": '◠', "sled": '═',
		},
	},
	{
		ID:    "neon",
		Title: "Neon",
		Palette: registry.Palette{
			Background: "#000000", Snake: "#39ff14", SnakeHead: "#00ff00", Food: "#ff00ff",
			Obstacle: "#4b0082", Villager: "#00ffff", Border: "#ff00ff", Particle: "#39ff14",
		},
		Props:        []string{"neonSign", "arcade", "lightPost", "hologram"},
		VillageProps: []string{"nightclub", "casino", "hotel"},
		Glyphs: map[string]rune{
			"neonSign": '▣', "arcade": '▤', "lightPost": '¦', "hologram": '◇',
			"nightclub": '♫', "casino": '$', "hotel": 'H',
		},
	},
	{
		ID:    "cyberpunk",
		Title: "Cyberpunk",
		Palette: registry.Palette{
			Background: "#0d0221", Snake: "#ff00ff", SnakeHead: "#d600d6", Food: "#00ffff",
			Obstacle: "#ff6b35", Villager: "#fffc31", Border: "#ff00ff", Particle: "#00ffff",
		},
		Props:        []string{"server", "drone", "terminal", "robot"},
		VillageProps: []string{"techBuilding", "antenna", "powerPlant"},
		Glyphs: map[string]rune{
			"server": '▥', "drone": '✈', "terminal": '▭', "robot": '☺',
			"techBuilding": '▓', "antenna": '╀', "powerPlant": '⚡',
		},
	},
	{
		ID:    "underwater",
		Title: "Underwater",
		Palette: registry.Palette{
			Background: "#0a2463", Snake: "#3e92cc", SnakeHead: "#2e78b7", Food: "#ff5a5f",
			Obstacle: "#5e503f", Villager: "#c6dabf", Border: "#3e92cc", Particle: "#3e92cc",
		},
		Props:        []string{"coral", "seaweed", "shell", "treasure"},
		VillageProps: []string{"shipwreck", "submarine", "ruins"},
		Glyphs: map[string]rune{
			"coral": '¥', "seaweed": '§', "shell": '@', "treasure": '¤',
			"shipwreck": '⚓', "submarine": '◒', "ruins": 'Π',
		},
	},
	{
		ID:    "lava",
		Title: "Lava",
		Palette: registry.Palette{
			Background: "#300313", Snake: "#ff6b35", SnakeHead: "#f03800", Food: "#ffe74c",
			Obstacle: "#6a0572", Villager: "#fffc31", Border: "#ff6b35", Particle: "#ff6b35",
		},
		Props:        []string{"volcano", "magma", "obsidian", "ember"},
		VillageProps: []string{"forge", "mine", "hut"},
		Glyphs: map[string]rune{
			"volcano": '▲', "magma": '≋', "obsidian": '◆', "ember": '°',
			"forge": '♨', "mine": 'Ω', "hut": '⌂',
		},
	},
	{
		ID:    "space",
		Title: "Space",
		Palette: registry.Palette{
			Background: "#0a0a23", Snake: "#7400b8", SnakeHead: "#5e00a3", Food: "#80ffdb",
			Obstacle: "#6930c3", Villager: "#48bfe3", Border: "#7400b8", Particle: "#80ffdb",
		},
		Props:        []string{"asteroid", "satellite", "comet", "planet"},
		VillageProps: []string{"spaceStation", "observatory", "rocket"},
		Glyphs: map[string]rune{
			"asteroid": '○', "satellite": '⊕', "comet": '☄', "planet": '◎',
			"spaceStation": '╬', "observatory": '◓', "rocket": '↑',
		},
	},
}
