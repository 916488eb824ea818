package systems

import (
	"math"

	"github.com/vovakirdan/skydive/internal/core"
)

// ScoreConfig holds the scoring and combo tuning.
type ScoreConfig struct {
	BaseMultiplier  float32 `yaml:"base_multiplier"`
	MinMultiplier   float32 `yaml:"min_multiplier"`
	MaxMultiplier   float32 `yaml:"max_multiplier"`
	StreakThreshold int     `yaml:"streak_threshold"` // pickups before the combo starts growing
	StreakStep      float32 `yaml:"streak_step"`      // multiplier gained per pickup past the threshold
	AliveInterval   float32 `yaml:"alive_interval"`   // seconds between alive bonuses
	AliveBonus      int     `yaml:"alive_bonus"`      // base points per alive interval
	DecayRate       float32 `yaml:"decay_rate"`       // multiplier drift toward base per interval
}

// DefaultScoreConfig returns the standard scoring rules.
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		BaseMultiplier:  1.0,
		MinMultiplier:   0.5,
		MaxMultiplier:   5.0,
		StreakThreshold: 3,
		StreakStep:      0.25,
		AliveInterval:   0.5,
		AliveBonus:      1,
		DecayRate:       0.05,
	}
}

// RunSummary is a snapshot of a finished (or ongoing) run.
type RunSummary struct {
	Score                int
	MaxStreak            int
	CoinsCollected       int
	MultipliersCollected int
	ObstaclesHit         int
}

// ScoreManager tracks score, streak and combo multiplier for a single run.
// It does not persist anything; see StatsManager for lifetime totals.
type ScoreManager struct {
	cfg ScoreConfig

	score           int
	currentStreak   int
	maxStreak       int
	comboMultiplier float32
	elapsed         float32

	coinsCollected       int
	multipliersCollected int
	obstaclesHit         int
}

// NewScoreManager creates a score manager with an empty run.
func NewScoreManager(cfg ScoreConfig) *ScoreManager {
	if cfg.MinMultiplier > cfg.BaseMultiplier {
		cfg.MinMultiplier = cfg.BaseMultiplier
	}
	s := &ScoreManager{cfg: cfg}
	s.ResetScore()
	return s
}

// AddPoints awards base points scaled by the combo multiplier.
func (s *ScoreManager) AddPoints(base int) {
	s.score += int(math.Floor(float64(float32(base) * s.comboMultiplier)))
}

// IncrementStreak counts a successful pickup. Once the streak has reached the
// threshold, each further pickup grows the multiplier by one step.
func (s *ScoreManager) IncrementStreak() {
	s.currentStreak++
	if s.currentStreak > s.maxStreak {
		s.maxStreak = s.currentStreak
	}
	if s.cfg.StreakThreshold > 0 && s.currentStreak >= s.cfg.StreakThreshold {
		s.comboMultiplier = min(s.comboMultiplier+s.cfg.StreakStep, s.cfg.MaxMultiplier)
	}
}

// ApplyMultiplierBoost adds delta (possibly negative) to the multiplier.
func (s *ScoreManager) ApplyMultiplierBoost(delta float32) {
	s.comboMultiplier = core.Clamp(s.comboMultiplier+delta, s.cfg.MinMultiplier, s.cfg.MaxMultiplier)
}

// Update awards the alive bonus and decays the multiplier on a fixed cadence.
func (s *ScoreManager) Update(dt float32) {
	if s.cfg.AliveInterval <= 0 {
		return
	}
	s.elapsed += dt
	for s.elapsed >= s.cfg.AliveInterval {
		s.elapsed -= s.cfg.AliveInterval
		s.AddPoints(s.cfg.AliveBonus)
		s.decay()
	}
}

// decay moves the multiplier toward base without crossing it.
func (s *ScoreManager) decay() {
	base := s.cfg.BaseMultiplier
	switch {
	case s.comboMultiplier > base:
		s.comboMultiplier = max(s.comboMultiplier-s.cfg.DecayRate, base)
	case s.comboMultiplier < base:
		s.comboMultiplier = min(s.comboMultiplier+s.cfg.DecayRate, base)
	}
}

// ResetStreak zeroes the streak and restores the base multiplier.
func (s *ScoreManager) ResetStreak() {
	s.currentStreak = 0
	s.comboMultiplier = s.cfg.BaseMultiplier
}

// ResetScore clears the whole run.
func (s *ScoreManager) ResetScore() {
	s.ResetStreak()
	s.score = 0
	s.maxStreak = 0
	s.elapsed = 0
	s.coinsCollected = 0
	s.multipliersCollected = 0
	s.obstaclesHit = 0
}

// IncrementCoinsCollected counts a collected coin.
func (s *ScoreManager) IncrementCoinsCollected() {
	s.coinsCollected++
}

// IncrementMultipliersCollected counts a collected multiplier.
func (s *ScoreManager) IncrementMultipliersCollected() {
	s.multipliersCollected++
}

// IncrementObstaclesHit counts an obstacle hit.
func (s *ScoreManager) IncrementObstaclesHit() {
	s.obstaclesHit++
}

// Score returns the current score.
func (s *ScoreManager) Score() int {
	return s.score
}

// CurrentStreak returns the running pickup streak.
func (s *ScoreManager) CurrentStreak() int {
	return s.currentStreak
}

// MaxStreak returns the longest streak of the run.
func (s *ScoreManager) MaxStreak() int {
	return s.maxStreak
}

// ComboMultiplier returns the current score multiplier.
func (s *ScoreManager) ComboMultiplier() float32 {
	return s.comboMultiplier
}

// CoinsCollected returns the coins collected this run.
func (s *ScoreManager) CoinsCollected() int {
	return s.coinsCollected
}

// MultipliersCollected returns the multipliers collected this run.
func (s *ScoreManager) MultipliersCollected() int {
	return s.multipliersCollected
}

// ObstaclesHit returns the obstacles hit this run.
func (s *ScoreManager) ObstaclesHit() int {
	return s.obstaclesHit
}

// Summary returns the run totals.
func (s *ScoreManager) Summary() RunSummary {
	return RunSummary{
		Score:                s.score,
		MaxStreak:            s.maxStreak,
		CoinsCollected:       s.coinsCollected,
		MultipliersCollected: s.multipliersCollected,
		ObstaclesHit:         s.obstaclesHit,
	}
}
