package systems

import (
	"fmt"
	"sync"
)

// KeyValueStorage persists integer values by key across sessions.
type KeyValueStorage interface {
	GetInt(key string, def int) (int, error)
	PutInt(key string, value int) error
	Clear() error
}

// Storage keys for lifetime statistics.
const (
	KeyGamesPlayed          = "gamesPlayed"
	KeyTotalScore           = "totalScore"
	KeyHighestScore         = "highestScore"
	KeyLastScore            = "lastScore"
	KeyCoinsCollected       = "coinsCollected"
	KeyMultipliersCollected = "multipliersCollected"
	KeyObstaclesHit         = "obstaclesHit"
)

var statKeys = []string{
	KeyGamesPlayed,
	KeyTotalScore,
	KeyHighestScore,
	KeyLastScore,
	KeyObstaclesHit,
	KeyCoinsCollected,
	KeyMultipliersCollected,
}

// LifetimeStats is an aggregate view of every recorded run.
type LifetimeStats struct {
	GamesPlayed          int
	TotalScore           int
	HighestScore         int
	LastScore            int
	CoinsCollected       int
	MultipliersCollected int
	ObstaclesHit         int
}

// AverageScore returns the mean score per game, or 0 with no games.
func (s LifetimeStats) AverageScore() float32 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float32(s.TotalScore) / float32(s.GamesPlayed)
}

// StatsManager records finished runs into persistent storage.
// It is safe for concurrent use; RecordRun and ResetStats are serialized.
type StatsManager struct {
	mu    sync.Mutex
	store KeyValueStorage
}

// NewStatsManager creates a stats manager over the given storage.
func NewStatsManager(store KeyValueStorage) *StatsManager {
	return &StatsManager{store: store}
}

// RecordRun folds a finished run into the lifetime totals.
func (m *StatsManager) RecordRun(run RunSummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, err := m.Load()
	if err != nil {
		return err
	}

	writes := []struct {
		key   string
		value int
	}{
		{KeyGamesPlayed, cur.GamesPlayed + 1},
		{KeyTotalScore, cur.TotalScore + run.Score},
		{KeyHighestScore, max(cur.HighestScore, run.Score)},
		{KeyLastScore, run.Score},
		{KeyCoinsCollected, cur.CoinsCollected + run.CoinsCollected},
		{KeyMultipliersCollected, cur.MultipliersCollected + run.MultipliersCollected},
		{KeyObstaclesHit, cur.ObstaclesHit + run.ObstaclesHit},
	}
	for _, w := range writes {
		if err := m.store.PutInt(w.key, w.value); err != nil {
			return fmt.Errorf("stats: cannot store %s: %w", w.key, err)
		}
	}
	return nil
}

// Load reads all lifetime totals.
func (m *StatsManager) Load() (LifetimeStats, error) {
	var s LifetimeStats
	targets := map[string]*int{
		KeyGamesPlayed:          &s.GamesPlayed,
		KeyTotalScore:           &s.TotalScore,
		KeyHighestScore:         &s.HighestScore,
		KeyLastScore:            &s.LastScore,
		KeyCoinsCollected:       &s.CoinsCollected,
		KeyMultipliersCollected: &s.MultipliersCollected,
		KeyObstaclesHit:         &s.ObstaclesHit,
	}
	for key, dst := range targets {
		v, err := m.store.GetInt(key, 0)
		if err != nil {
			return LifetimeStats{}, fmt.Errorf("stats: cannot read %s: %w", key, err)
		}
		*dst = v
	}
	return s, nil
}

func (m *StatsManager) get(key string) int {
	v, err := m.store.GetInt(key, 0)
	if err != nil {
		return 0
	}
	return v
}

// The single-value getters report 0 when storage fails; use Load to see errors.

// GamesPlayed returns the number of recorded runs.
func (m *StatsManager) GamesPlayed() int {
	return m.get(KeyGamesPlayed)
}

// HighestScore returns the best score ever recorded.
func (m *StatsManager) HighestScore() int {
	return m.get(KeyHighestScore)
}

// TotalScore returns the sum of every recorded score.
func (m *StatsManager) TotalScore() int {
	return m.get(KeyTotalScore)
}

// LastScore returns the score of the most recent run.
func (m *StatsManager) LastScore() int {
	return m.get(KeyLastScore)
}

// CoinsCollected returns the lifetime coin count.
func (m *StatsManager) CoinsCollected() int {
	return m.get(KeyCoinsCollected)
}

// MultipliersCollected returns the lifetime multiplier pickup count.
func (m *StatsManager) MultipliersCollected() int {
	return m.get(KeyMultipliersCollected)
}

// ObstaclesHit returns the lifetime obstacle hit count.
func (m *StatsManager) ObstaclesHit() int {
	return m.get(KeyObstaclesHit)
}

// AverageScore returns the mean score per game, or 0 with no games.
func (m *StatsManager) AverageScore() float32 {
	games := m.GamesPlayed()
	if games == 0 {
		return 0
	}
	return float32(m.TotalScore()) / float32(games)
}

// ResetStats writes zero to every tracked key.
func (m *StatsManager) ResetStats() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range statKeys {
		if err := m.store.PutInt(key, 0); err != nil {
			return fmt.Errorf("stats: cannot reset %s: %w", key, err)
		}
	}
	return nil
}
