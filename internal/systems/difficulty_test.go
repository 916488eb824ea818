package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSpawner struct {
	intervals []float32
}

func (r *recordingSpawner) SetSpawnInterval(v float32) {
	r.intervals = append(r.intervals, v)
}

func (r *recordingSpawner) last() float32 {
	return r.intervals[len(r.intervals)-1]
}

type fixedPerformance struct {
	coins, multipliers, hits int
}

func (f *fixedPerformance) CoinsCollected() int       { return f.coins }
func (f *fixedPerformance) MultipliersCollected() int { return f.multipliers }
func (f *fixedPerformance) ObstaclesHit() int         { return f.hits }

func newTestDifficulty() (*DifficultyManager, *recordingSpawner, *fixedPerformance) {
	spawner := &recordingSpawner{}
	perf := &fixedPerformance{}
	cfg := DifficultyConfig{
		Enabled:           true,
		BaseSpawnInterval: 1.5,
		PenaltyWeight:     1.5,
		Sensitivity:       0.1,
	}
	return NewDifficultyManager(cfg, spawner, perf), spawner, perf
}

func TestDifficultyResetPushesBaseInterval(t *testing.T) {
	d, spawner, _ := newTestDifficulty()

	d.Reset()
	require.Len(t, spawner.intervals, 1)
	assert.Equal(t, float32(1.5), spawner.last())
}

func TestDifficultyImprovementShortensInterval(t *testing.T) {
	d, spawner, perf := newTestDifficulty()
	*perf = fixedPerformance{coins: 5, multipliers: 5, hits: 0}

	d.Update()

	// performance 10, delta 10, factor 0
	require.Len(t, spawner.intervals, 1)
	assert.InDelta(t, 0.0, spawner.last(), 1e-6)
}

func TestDifficultyWorseningLengthensInterval(t *testing.T) {
	d, spawner, perf := newTestDifficulty()
	*perf = fixedPerformance{coins: 5, multipliers: 5, hits: 0}
	d.Update()

	*perf = fixedPerformance{coins: 2, multipliers: 1, hits: 10}
	d.Update()

	// performance 3 - 15 = -12, delta -22, factor 3.2
	assert.InDelta(t, 4.8, spawner.last(), 1e-5)
	assert.InDelta(t, -12.0, d.PerformanceScore(), 1e-6)
}

func TestDifficultyUnchangedPerformanceKeepsBase(t *testing.T) {
	d, spawner, perf := newTestDifficulty()
	*perf = fixedPerformance{coins: 2}
	d.Update()
	d.Update()

	assert.InDelta(t, 1.5, spawner.last(), 1e-6)
}

func TestDifficultyTickCadence(t *testing.T) {
	spawner := &recordingSpawner{}
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:           true,
		BaseSpawnInterval: 1.5,
		PenaltyWeight:     1.5,
		Sensitivity:       0.1,
		EvaluationPeriod:  1.0,
	}, spawner, &fixedPerformance{})

	d.Tick(0.5)
	assert.Empty(t, spawner.intervals)

	d.Tick(0.5)
	assert.Len(t, spawner.intervals, 1)

	d.Tick(2.0)
	assert.Len(t, spawner.intervals, 3)
}

func TestDifficultyDisabled(t *testing.T) {
	d, spawner, perf := newTestDifficulty()
	d.cfg.Enabled = false
	*perf = fixedPerformance{coins: 10}

	d.Tick(1)
	d.Update()
	assert.Empty(t, spawner.intervals)

	d.Reset()
	assert.Equal(t, float32(1.5), spawner.last())
}
