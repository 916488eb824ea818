package config

import (
	_ "embed"

	"github.com/vovakirdan/skydive/internal/game"
)

//go:embed defaults/skydive.yaml
var defaultSkydiveYAML []byte

// DefaultLevel is the level a session starts on when nothing else is chosen.
const DefaultLevel = "open-sky"

// DefaultSkydiveConfig returns the default configuration.
func DefaultSkydiveConfig() SkydiveConfig {
	return SkydiveConfig{
		Config: game.DefaultConfig(),
		Audio: AudioConfig{
			SFXVolume:   0.8,
			MusicVolume: 0.5,
		},
		Level: DefaultLevel,
	}
}
