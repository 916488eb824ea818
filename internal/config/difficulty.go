package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in the order they are offered.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(name))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// IsFixedPreset returns true if the preset disables adaptive difficulty.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *SkydiveConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	// Adjust pacing based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.BaseSpawnInterval *= 1.25
		cfg.Difficulty.Sensitivity *= 0.5
		cfg.Speed.Rate *= 0.5
		cfg.Player.MinSpeed = max(cfg.Player.MinSpeed, 0.5)
	case DifficultyHard:
		cfg.Difficulty.BaseSpawnInterval *= 0.75
		cfg.Difficulty.Sensitivity *= 1.5
		cfg.Speed.Rate *= 1.5
		cfg.Speed.Initial = min(cfg.Speed.Initial*1.25, cfg.Speed.Max)
	}
}
