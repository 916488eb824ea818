package systems

import (
	"errors"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapStorage struct {
	values map[string]int
	puts   map[string]int
	fail   error
}

func newMapStorage(values map[string]int) *mapStorage {
	if values == nil {
		values = make(map[string]int)
	}
	return &mapStorage{values: values, puts: make(map[string]int)}
}

func (m *mapStorage) GetInt(key string, def int) (int, error) {
	if m.fail != nil {
		return 0, m.fail
	}
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return def, nil
}

func (m *mapStorage) PutInt(key string, value int) error {
	if m.fail != nil {
		return m.fail
	}
	m.values[key] = value
	m.puts[key] = value
	return nil
}

func (m *mapStorage) Clear() error {
	m.values = make(map[string]int)
	return nil
}

func TestStatsRecordRun(t *testing.T) {
	store := newMapStorage(map[string]int{
		KeyGamesPlayed:          2,
		KeyTotalScore:           150,
		KeyHighestScore:         80,
		KeyCoinsCollected:       10,
		KeyMultipliersCollected: 5,
		KeyObstaclesHit:         3,
	})
	stats := NewStatsManager(store)

	err := stats.RecordRun(RunSummary{Score: 100, CoinsCollected: 4, MultipliersCollected: 2, ObstaclesHit: 1})
	require.NoError(t, err)

	assert.Equal(t, map[string]int{
		KeyGamesPlayed:          3,
		KeyTotalScore:           250,
		KeyHighestScore:         100,
		KeyLastScore:            100,
		KeyCoinsCollected:       14,
		KeyMultipliersCollected: 7,
		KeyObstaclesHit:         4,
	}, store.puts)
}

// lockedStorage is goroutine-safe per call but yields mid-read so unsynchronized
// read-modify-write sequences interleave.
type lockedStorage struct {
	mu     sync.Mutex
	values map[string]int
}

func (l *lockedStorage) GetInt(key string, def int) (int, error) {
	l.mu.Lock()
	v, ok := l.values[key]
	l.mu.Unlock()
	runtime.Gosched()
	if !ok {
		return def, nil
	}
	return v, nil
}

func (l *lockedStorage) PutInt(key string, value int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.values[key] = value
	return nil
}

func (l *lockedStorage) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	clear(l.values)
	return nil
}

func TestStatsRecordRunConcurrent(t *testing.T) {
	const runs = 200
	stats := NewStatsManager(&lockedStorage{values: make(map[string]int)})

	var wg sync.WaitGroup
	for range runs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, stats.RecordRun(RunSummary{Score: 1, CoinsCollected: 2, ObstaclesHit: 1}))
		}()
	}
	wg.Wait()

	lt, err := stats.Load()
	require.NoError(t, err)
	assert.Equal(t, runs, lt.GamesPlayed)
	assert.Equal(t, runs, lt.TotalScore)
	assert.Equal(t, 2*runs, lt.CoinsCollected)
	assert.Equal(t, runs, lt.ObstaclesHit)
	assert.Equal(t, 1, lt.HighestScore)
}

func TestStatsRecordRunKeepsHigherBest(t *testing.T) {
	store := newMapStorage(map[string]int{KeyHighestScore: 500})
	stats := NewStatsManager(store)

	require.NoError(t, stats.RecordRun(RunSummary{Score: 20}))
	assert.Equal(t, 500, stats.HighestScore())
	assert.Equal(t, 20, stats.LastScore())
}

func TestStatsGetters(t *testing.T) {
	stats := NewStatsManager(newMapStorage(map[string]int{
		KeyGamesPlayed:          3,
		KeyHighestScore:         120,
		KeyTotalScore:           300,
		KeyLastScore:            75,
		KeyCoinsCollected:       20,
		KeyMultipliersCollected: 10,
		KeyObstaclesHit:         5,
	}))

	assert.Equal(t, 3, stats.GamesPlayed())
	assert.Equal(t, 120, stats.HighestScore())
	assert.Equal(t, 300, stats.TotalScore())
	assert.Equal(t, 75, stats.LastScore())
	assert.Equal(t, 20, stats.CoinsCollected())
	assert.Equal(t, 10, stats.MultipliersCollected())
	assert.Equal(t, 5, stats.ObstaclesHit())

	all, err := stats.Load()
	require.NoError(t, err)
	assert.Equal(t, float32(100), all.AverageScore())
}

func TestStatsAverageScore(t *testing.T) {
	tests := []struct {
		name     string
		games    int
		total    int
		expected float32
	}{
		{"four games", 4, 200, 50},
		{"no games", 0, 0, 0},
		{"no games with stale total", 0, 40, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stats := NewStatsManager(newMapStorage(map[string]int{
				KeyGamesPlayed: tc.games,
				KeyTotalScore:  tc.total,
			}))
			assert.Equal(t, tc.expected, stats.AverageScore())
		})
	}
}

func TestStatsResetStats(t *testing.T) {
	store := newMapStorage(map[string]int{KeyGamesPlayed: 9, KeyHighestScore: 1000})
	stats := NewStatsManager(store)

	require.NoError(t, stats.ResetStats())
	assert.Len(t, store.puts, 7)
	for key, v := range store.puts {
		assert.Zero(t, v, key)
	}
}

func TestStatsStorageFailure(t *testing.T) {
	store := newMapStorage(nil)
	store.fail = errors.New("disk full")
	stats := NewStatsManager(store)

	err := stats.RecordRun(RunSummary{Score: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.fail)
	assert.Equal(t, 0, stats.GamesPlayed())
}
