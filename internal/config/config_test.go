package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseSkydive(defaultSkydiveYAML)
	if err != nil {
		t.Fatalf("parse embedded defaults: %v", err)
	}
	if want := DefaultSkydiveConfig(); !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded defaults drifted:\n got %+v\nwant %+v", cfg, want)
	}
}

func TestLoadSkydiveCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("level: storm-front\nspeed:\n  max: 4.5\naudio:\n  muted: true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSkydive(path)
	if err != nil {
		t.Fatalf("LoadSkydive: %v", err)
	}

	if cfg.Level != "storm-front" {
		t.Errorf("Level = %q, want storm-front", cfg.Level)
	}
	if cfg.Speed.Max != 4.5 {
		t.Errorf("Speed.Max = %v, want 4.5", cfg.Speed.Max)
	}
	if !cfg.Audio.Muted {
		t.Error("Audio.Muted = false, want true")
	}

	def := DefaultSkydiveConfig()
	if cfg.Speed.Initial != def.Speed.Initial || cfg.World != def.World {
		t.Error("keys missing from the file should keep their defaults")
	}
}

func TestLoadSkydiveErrors(t *testing.T) {
	if _, err := LoadSkydive(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("speed: [not, a, map]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSkydive(bad); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"HARD", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultSkydiveConfig()

	fixed := DefaultSkydiveConfig()
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed preset should disable adaptive difficulty")
	}

	normal := DefaultSkydiveConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, base) {
		t.Error("normal preset should not change the config")
	}

	easy := DefaultSkydiveConfig()
	ApplyPreset(&easy, DifficultyEasy)
	hard := DefaultSkydiveConfig()
	ApplyPreset(&hard, DifficultyHard)

	if !(easy.Difficulty.BaseSpawnInterval > base.Difficulty.BaseSpawnInterval &&
		base.Difficulty.BaseSpawnInterval > hard.Difficulty.BaseSpawnInterval) {
		t.Errorf("spawn interval ordering: easy %v, normal %v, hard %v",
			easy.Difficulty.BaseSpawnInterval, base.Difficulty.BaseSpawnInterval, hard.Difficulty.BaseSpawnInterval)
	}
	if hard.Speed.Initial > hard.Speed.Max {
		t.Errorf("hard initial speed %v exceeds max %v", hard.Speed.Initial, hard.Speed.Max)
	}
	if !easy.Difficulty.Enabled || !hard.Difficulty.Enabled {
		t.Error("adaptive presets should keep difficulty enabled")
	}
}
