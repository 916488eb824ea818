// Package systems holds the per-run gameplay controllers: pacing, scoring,
// adaptive difficulty and persisted lifetime statistics. None of them know
// about entities or rendering; the game manager wires them together.
package systems

import "github.com/vovakirdan/skydive/internal/core"

// SpeedConfig holds the construction parameters for a SpeedManager.
type SpeedConfig struct {
	Initial float32 `yaml:"initial"`  // starting game speed
	Min     float32 `yaml:"min"`      // starting floor
	Max     float32 `yaml:"max"`      // hard ceiling
	Rate    float32 `yaml:"rate"`     // speed gained per second
	MinRate float32 `yaml:"min_rate"` // floor gained per second
}

// SpeedManager controls global game speed. Speed ramps up over time, and so
// does the floor it can be knocked back to by penalties.
type SpeedManager struct {
	cfg        SpeedConfig
	gameSpeed  float32
	currentMin float32
}

// NewSpeedManager creates a speed manager at its initial speed.
func NewSpeedManager(cfg SpeedConfig) *SpeedManager {
	s := &SpeedManager{cfg: cfg}
	s.Reset()
	return s
}

// Update advances the speed ramp by dt seconds.
func (s *SpeedManager) Update(dt float32) {
	s.currentMin = min(s.currentMin+s.cfg.MinRate*dt, s.cfg.Max)
	s.gameSpeed = core.Clamp(s.gameSpeed+s.cfg.Rate*dt, s.currentMin, s.cfg.Max)
}

// ApplySlowdown reduces speed, never below the current floor.
func (s *SpeedManager) ApplySlowdown(amount float32) {
	s.gameSpeed = max(s.gameSpeed-amount, s.currentMin)
}

// ApplySpeedup increases speed, never above the ceiling.
func (s *SpeedManager) ApplySpeedup(amount float32) {
	s.gameSpeed = min(s.gameSpeed+amount, s.cfg.Max)
}

// Reset restores the construction values.
func (s *SpeedManager) Reset() {
	s.gameSpeed = s.cfg.Initial
	s.currentMin = s.cfg.Min
}

// GameSpeed returns the current speed multiplier.
func (s *SpeedManager) GameSpeed() float32 {
	return s.gameSpeed
}

// CurrentMinSpeed returns the current floor.
func (s *SpeedManager) CurrentMinSpeed() float32 {
	return s.currentMin
}

// MaxSpeed returns the ceiling.
func (s *SpeedManager) MaxSpeed() float32 {
	return s.cfg.Max
}
