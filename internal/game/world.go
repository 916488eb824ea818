// Package game contains the skydive simulation: entities, the player,
// levels, spawning, session state and the manager that ticks them all.
// Rendering and audio are reached only through the interfaces in collab.go.
package game

import (
	"github.com/vovakirdan/skydive/internal/core"
	"github.com/vovakirdan/skydive/internal/systems"
)

// Bounds is the visible playfield in world units (one unit per terminal cell).
type Bounds struct {
	Width  float32
	Height float32
}

// BoundsFromConfig converts screen dimensions to world bounds.
func BoundsFromConfig(cfg core.RuntimeConfig) Bounds {
	return Bounds{Width: float32(cfg.ScreenW), Height: float32(cfg.ScreenH)}
}

// Rect returns the playfield as a rectangle at the origin.
func (b Bounds) Rect() core.Rect {
	return core.NewRect(0, 0, b.Width, b.Height)
}

// WorldConfig holds scrolling and entity motion tuning.
type WorldConfig struct {
	FallSpeed       float32 `yaml:"fall_speed"`       // units per second at game speed 1
	SpawnY          float32 `yaml:"spawn_y"`          // spawn height, above the top edge
	BackgroundCount int     `yaml:"background_count"` // background objects per run
	LoopScreens     float32 `yaml:"loop_screens"`     // background loop height in screens
	CloudDrift      float32 `yaml:"cloud_drift"`      // max horizontal drift of clouds
	ChaseSpeed      float32 `yaml:"chase_speed"`      // chaser diver steering speed
	GlideSpeed      float32 `yaml:"glide_speed"`      // hang glider horizontal speed
	EffectTTL       float32 `yaml:"effect_ttl"`       // particle effect lifetime in seconds
}

// PlayerConfig holds player steering and hitbox tuning.
type PlayerConfig struct {
	Width        float32      `yaml:"width"`
	Height       float32      `yaml:"height"`
	StartY       float32      `yaml:"start_y"`       // fraction of screen height
	SteerSpeed   float32      `yaml:"steer_speed"`   // units per second at speed 1
	MinSpeed     float32      `yaml:"min_speed"`     // floor after hits
	MaxSpeed     float32      `yaml:"max_speed"`     // ceiling after boosts
	Recovery     float32      `yaml:"recovery"`      // speed regained per second
	DiveDuration float32      `yaml:"dive_duration"` // seconds a hold-dive lasts
	Hitboxes     HitboxConfig `yaml:"hitboxes"`
}

// HitboxConfig holds hitbox dimensions per player state.
type HitboxConfig struct {
	Normal core.Vector2 `yaml:"normal"`
	Slowed core.Vector2 `yaml:"slowed"`
	Fast   core.Vector2 `yaml:"fast"`
}

// Config is the complete simulation tuning.
type Config struct {
	World      WorldConfig              `yaml:"world"`
	Player     PlayerConfig             `yaml:"player"`
	Speed      systems.SpeedConfig      `yaml:"speed"`
	Score      systems.ScoreConfig      `yaml:"score"`
	Difficulty systems.DifficultyConfig `yaml:"difficulty"`
}

// DefaultConfig returns the standard tuning for an 80x24 terminal.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			FallSpeed:       8,
			SpawnY:          -4,
			BackgroundCount: 10,
			LoopScreens:     5,
			CloudDrift:      3,
			ChaseSpeed:      6,
			GlideSpeed:      10,
			EffectTTL:       0.4,
		},
		Player: PlayerConfig{
			Width:        3,
			Height:       2,
			StartY:       0.45,
			SteerSpeed:   30,
			MinSpeed:     0.25,
			MaxSpeed:     2,
			Recovery:     0.25,
			DiveDuration: 0.6,
			Hitboxes: HitboxConfig{
				Normal: core.Vec(3, 2),
				Slowed: core.Vec(3, 3),
				Fast:   core.Vec(1, 2),
			},
		},
		Speed: systems.SpeedConfig{
			Initial: 1.0,
			Min:     0.5,
			Max:     3.0,
			Rate:    0.02,
			MinRate: 0.01,
		},
		Score: systems.DefaultScoreConfig(),
		Difficulty: systems.DifficultyConfig{
			Enabled:           true,
			BaseSpawnInterval: DefaultSpawnInterval,
			PenaltyWeight:     1.5,
			Sensitivity:       0.1,
			EvaluationPeriod:  0,
		},
	}
}
