package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestScoreManager() *ScoreManager {
	cfg := DefaultScoreConfig()
	cfg.BaseMultiplier = 1.0
	cfg.MaxMultiplier = 5.0
	cfg.StreakThreshold = 3
	return NewScoreManager(cfg)
}

func TestScoreManagerAddPointsUsesMultiplier(t *testing.T) {
	s := newTestScoreManager()

	s.AddPoints(10)
	assert.Equal(t, 10, s.Score())

	s.ApplyMultiplierBoost(1.0)
	s.AddPoints(10)
	assert.Equal(t, 30, s.Score())

	s.ApplyMultiplierBoost(-0.75) // 1.25
	s.AddPoints(3)                // floor(3.75)
	assert.Equal(t, 33, s.Score())
}

func TestScoreManagerStreakThreshold(t *testing.T) {
	s := newTestScoreManager()

	s.IncrementStreak()
	s.IncrementStreak()
	assert.Equal(t, 2, s.MaxStreak())
	assert.Equal(t, float32(1.0), s.ComboMultiplier())

	s.IncrementStreak()
	assert.Equal(t, 3, s.MaxStreak())
	assert.Equal(t, float32(1.25), s.ComboMultiplier())
}

func TestScoreManagerMultiplierCapped(t *testing.T) {
	s := newTestScoreManager()

	for range 30 {
		s.IncrementStreak()
	}
	assert.Equal(t, float32(5.0), s.ComboMultiplier())
	assert.Equal(t, 30, s.CurrentStreak())
}

func TestScoreManagerBoostClamps(t *testing.T) {
	s := newTestScoreManager()

	s.ApplyMultiplierBoost(3.0)
	assert.Equal(t, float32(4.0), s.ComboMultiplier())

	s.ApplyMultiplierBoost(2.0)
	assert.Equal(t, float32(5.0), s.ComboMultiplier())

	s.ApplyMultiplierBoost(-100)
	assert.Equal(t, float32(0.5), s.ComboMultiplier())
}

func TestScoreManagerUpdateAliveBonusAndDecay(t *testing.T) {
	s := newTestScoreManager()
	s.ApplyMultiplierBoost(1.0) // 2.0

	s.Update(0.25)
	assert.Equal(t, 0, s.Score(), "no bonus before the interval elapses")

	s.Update(0.25)
	assert.Equal(t, 2, s.Score(), "alive bonus scaled by 2.0")
	assert.InDelta(t, 1.95, s.ComboMultiplier(), 1e-5)
}

func TestScoreManagerDecayStopsAtBase(t *testing.T) {
	tests := []struct {
		name  string
		boost float32
	}{
		{"from above", 0.02},
		{"from below", -0.02},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestScoreManager()
			s.ApplyMultiplierBoost(tc.boost)

			s.Update(5)
			assert.Equal(t, float32(1.0), s.ComboMultiplier())
		})
	}
}

func TestScoreManagerResetStreak(t *testing.T) {
	s := newTestScoreManager()
	for range 5 {
		s.IncrementStreak()
	}

	s.ResetStreak()
	assert.Equal(t, 0, s.CurrentStreak())
	assert.Equal(t, 5, s.MaxStreak())
	assert.Equal(t, float32(1.0), s.ComboMultiplier())
}

func TestScoreManagerResetScore(t *testing.T) {
	s := newTestScoreManager()
	s.AddPoints(50)
	s.IncrementStreak()
	s.IncrementCoinsCollected()
	s.IncrementObstaclesHit()

	s.ResetScore()
	assert.Equal(t, RunSummary{}, s.Summary())
	assert.Equal(t, float32(1.0), s.ComboMultiplier())
}

func TestScoreManagerCounters(t *testing.T) {
	s := newTestScoreManager()
	for range 3 {
		s.IncrementCoinsCollected()
	}
	for range 2 {
		s.IncrementMultipliersCollected()
	}
	for range 4 {
		s.IncrementObstaclesHit()
	}

	assert.Equal(t, 3, s.CoinsCollected())
	assert.Equal(t, 2, s.MultipliersCollected())
	assert.Equal(t, 4, s.ObstaclesHit())
}
