package game

import (
	"math/rand"

	"github.com/vovakirdan/skydive/internal/core"
)

const (
	// MinimumSpawnInterval is the floor for the spawn interval in seconds.
	MinimumSpawnInterval float32 = 0.25
	// DefaultSpawnInterval is the interval before any difficulty adjustment.
	DefaultSpawnInterval float32 = 1.5
)

// Spawner emits obstacles and collectibles on a timer, drawing kinds from
// whichever level is current at the moment of each spawn.
type Spawner struct {
	levels   *LevelManager
	rng      *rand.Rand
	bounds   Bounds
	spawnY   float32
	timer    float32
	interval float32
}

// NewSpawner creates a spawner bound to a level manager.
func NewSpawner(levels *LevelManager, rng *rand.Rand, bounds Bounds, spawnY float32) *Spawner {
	return &Spawner{
		levels:   levels,
		rng:      rng,
		bounds:   bounds,
		spawnY:   spawnY,
		interval: DefaultSpawnInterval,
	}
}

// Update advances the timer and returns a new entity when one is due.
// A level with an empty pool for the chosen category skips that spawn.
func (s *Spawner) Update(dt float32) (*Entity, bool) {
	s.timer += dt
	if s.timer < s.interval {
		return nil, false
	}
	s.timer = 0

	level, err := s.levels.Current()
	if err != nil {
		return nil, false
	}

	pool := level.Collectibles
	if s.rng.Intn(2) == 0 {
		pool = level.Obstacles
	}
	if len(pool) == 0 {
		return nil, false
	}

	kind := pool[s.rng.Intn(len(pool))]
	return NewEntity(kind, s.spawnPosition(kind)), true
}

func (s *Spawner) spawnPosition(kind Kind) core.Vector2 {
	span := max(s.bounds.Width-kind.Size().X, 0)
	return core.Vec(s.rng.Float32()*span, s.spawnY)
}

// SetSpawnInterval sets the interval, floored at MinimumSpawnInterval.
func (s *Spawner) SetSpawnInterval(seconds float32) {
	s.interval = max(seconds, MinimumSpawnInterval)
}

// SpawnInterval returns the current interval in seconds.
func (s *Spawner) SpawnInterval() float32 {
	return s.interval
}

// SetBounds updates the horizontal spawn range.
func (s *Spawner) SetBounds(b Bounds) {
	s.bounds = b
}

// Reset zeroes the spawn timer. The interval is owned by the difficulty manager.
func (s *Spawner) Reset() {
	s.timer = 0
}
