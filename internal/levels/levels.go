// Package levels defines the built-in levels. Importing it registers them.
package levels

import (
	"github.com/vovakirdan/skydive/internal/game"
	"github.com/vovakirdan/skydive/internal/registry"
)

// Background layer ids understood by the renderers.
const (
	BackgroundSky    = "sky"
	BackgroundStorm  = "storm"
	BackgroundSunset = "sunset"
)

// OpenSky is the gentle first level: kites and balloons, plenty of coins.
func OpenSky() game.Level {
	return game.Level{
		Name:         "open-sky",
		Title:        "Open Sky",
		Background:   BackgroundSky,
		Obstacles:    []game.Kind{game.KindKite, game.KindBalloon, game.KindKite},
		Collectibles: []game.Kind{game.KindCoin, game.KindCoin, game.KindMultiplier},
		Backgrounds:  []game.Kind{game.KindCloud},
	}
}

// StormFront adds hang gliders and chasing divers.
func StormFront() game.Level {
	return game.Level{
		Name:          "storm-front",
		Title:         "Storm Front",
		Background:    BackgroundStorm,
		InitialOffset: 12,
		Obstacles:     []game.Kind{game.KindKite, game.KindHangGlider, game.KindChaserDiver},
		Collectibles:  []game.Kind{game.KindCoin, game.KindMultiplier},
		Backgrounds:   []game.Kind{game.KindCloud},
	}
}

// SunsetDrop is balloon-heavy and rich in multipliers, with the odd glider.
func SunsetDrop() game.Level {
	return game.Level{
		Name:          "sunset-drop",
		Title:         "Sunset Drop",
		Background:    BackgroundSunset,
		InitialOffset: 30,
		Obstacles:     []game.Kind{game.KindBalloon, game.KindBalloon, game.KindHangGlider},
		Collectibles:  []game.Kind{game.KindMultiplier, game.KindCoin},
		Backgrounds:   []game.Kind{game.KindCloud},
	}
}

func init() {
	registry.Register("open-sky", OpenSky)
	registry.Register("storm-front", StormFront)
	registry.Register("sunset-drop", SunsetDrop)
}
