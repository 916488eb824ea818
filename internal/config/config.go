// Package config provides YAML-based tuning for skydive sessions and the
// difficulty presets selectable from the command line.
package config

import "github.com/vovakirdan/skydive/internal/game"

// SkydiveConfig contains all tunable settings for a session.
type SkydiveConfig struct {
	game.Config `yaml:",inline"`

	Audio AudioConfig `yaml:"audio"`
	Level string      `yaml:"level"` // level selected when none is given on the command line
}

// AudioConfig defines the sound mix.
type AudioConfig struct {
	SFXVolume   float64 `yaml:"sfx_volume"`   // 0.0 - 1.0
	MusicVolume float64 `yaml:"music_volume"` // 0.0 - 1.0
	Muted       bool    `yaml:"muted"`
}
