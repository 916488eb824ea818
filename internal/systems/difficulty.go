package systems

// IntervalSetter receives spawn interval updates. The spawner clamps the value.
type IntervalSetter interface {
	SetSpawnInterval(seconds float32)
}

// PerformanceSource exposes the run counters difficulty is derived from.
type PerformanceSource interface {
	CoinsCollected() int
	MultipliersCollected() int
	ObstaclesHit() int
}

// DifficultyConfig holds the feedback controller tuning.
type DifficultyConfig struct {
	Enabled           bool    `yaml:"enabled"`
	BaseSpawnInterval float32 `yaml:"base_spawn_interval"`
	PenaltyWeight     float32 `yaml:"penalty_weight"`
	Sensitivity       float32 `yaml:"sensitivity"`
	EvaluationPeriod  float32 `yaml:"evaluation_period"` // seconds between evaluations, 0 = every tick
}

// DifficultyManager adjusts the spawn interval from the change in player
// performance since the last evaluation. Improving shortens the interval,
// worsening lengthens it. The factor is unbounded; only the spawner's floor
// limits it.
type DifficultyManager struct {
	cfg      DifficultyConfig
	spawner  IntervalSetter
	source   PerformanceSource
	snapshot float32
	elapsed  float32
	interval float32
}

// NewDifficultyManager creates a controller that reads source and drives spawner.
func NewDifficultyManager(cfg DifficultyConfig, spawner IntervalSetter, source PerformanceSource) *DifficultyManager {
	return &DifficultyManager{
		cfg:      cfg,
		spawner:  spawner,
		source:   source,
		interval: cfg.BaseSpawnInterval,
	}
}

// PerformanceScore returns pickups minus weighted obstacle hits.
func (d *DifficultyManager) PerformanceScore() float32 {
	good := float32(d.source.CoinsCollected() + d.source.MultipliersCollected())
	return good - float32(d.source.ObstaclesHit())*d.cfg.PenaltyWeight
}

// Update evaluates performance once and pushes a new interval to the spawner.
func (d *DifficultyManager) Update() {
	if !d.cfg.Enabled {
		return
	}
	performance := d.PerformanceScore()
	delta := performance - d.snapshot
	d.snapshot = performance

	factor := 1 - delta*d.cfg.Sensitivity
	d.interval = d.cfg.BaseSpawnInterval * factor
	d.spawner.SetSpawnInterval(d.interval)
}

// Tick accumulates frame time and calls Update every evaluation period.
func (d *DifficultyManager) Tick(dt float32) {
	if d.cfg.EvaluationPeriod <= 0 {
		d.Update()
		return
	}
	d.elapsed += dt
	for d.elapsed >= d.cfg.EvaluationPeriod {
		d.elapsed -= d.cfg.EvaluationPeriod
		d.Update()
	}
}

// Reset clears the snapshot and restores the base interval.
func (d *DifficultyManager) Reset() {
	d.snapshot = 0
	d.elapsed = 0
	d.interval = d.cfg.BaseSpawnInterval
	d.spawner.SetSpawnInterval(d.cfg.BaseSpawnInterval)
}

// LastInterval returns the most recent unclamped interval pushed to the spawner.
func (d *DifficultyManager) LastInterval() float32 {
	return d.interval
}
