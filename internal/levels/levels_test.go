package levels

import (
	"testing"

	"github.com/vovakirdan/skydive/internal/config"
	"github.com/vovakirdan/skydive/internal/game"
	"github.com/vovakirdan/skydive/internal/registry"
)

func TestBuiltinLevelsRegistered(t *testing.T) {
	for _, name := range []string{"open-sky", "storm-front", "sunset-drop"} {
		if !registry.Exists(name) {
			t.Errorf("level %q not registered", name)
		}
	}
	if !registry.Exists(config.DefaultLevel) {
		t.Errorf("default level %q not registered", config.DefaultLevel)
	}
}

func TestBuiltinLevelsValid(t *testing.T) {
	for _, l := range []game.Level{OpenSky(), StormFront(), SunsetDrop()} {
		if err := l.Validate(); err != nil {
			t.Errorf("%s: %v", l.Name, err)
		}
		if len(l.Obstacles) == 0 || len(l.Collectibles) == 0 || len(l.Backgrounds) == 0 {
			t.Errorf("%s: every pool should be populated", l.Name)
		}
	}
}

func TestOpenSkyIsNotLethal(t *testing.T) {
	for _, k := range OpenSky().Obstacles {
		if k.Lethal() {
			t.Errorf("open-sky lists lethal obstacle %s", k)
		}
	}
}

func TestBuiltinLevelsRunHeadless(t *testing.T) {
	for _, info := range registry.List() {
		t.Run(info.Name, func(t *testing.T) {
			lm := game.NewLevelManager()
			if err := registry.Populate(lm, info.Name); err != nil {
				t.Fatalf("Populate: %v", err)
			}
			level := lm.MustCurrent()

			m, err := game.NewManager(game.DefaultConfig(), lm, game.Bounds{Width: 80, Height: 24}, game.WithSeed(7))
			if err != nil {
				t.Fatalf("NewManager: %v", err)
			}
			m.Start()
			for range 60 * 30 {
				m.UpdateAll(1.0 / 60)
				for _, e := range m.Objects() {
					if !level.Has(e.Kind) {
						t.Fatalf("%s spawned in %s", e.Kind, info.Name)
					}
				}
			}
		})
	}
}
