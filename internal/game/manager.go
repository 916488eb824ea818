package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/aquilax/go-perlin"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skydive/internal/core"
	"github.com/vovakirdan/skydive/internal/systems"
)

// particle is a short-lived visual effect.
type particle struct {
	kind     ParticleKind
	position core.Vector2
	age      float32
	ttl      float32
}

// Option configures a Manager.
type Option func(*Manager)

// WithSeed fixes the RNG seed for deterministic runs.
func WithSeed(seed int64) Option {
	return func(m *Manager) { m.seed = seed }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithSound sets the sound manager.
func WithSound(s SoundManager) Option {
	return func(m *Manager) { m.sound = s }
}

// WithObserver sets the gameplay event observer.
func WithObserver(o Observer) Option {
	return func(m *Manager) { m.observer = o }
}

// Manager owns one session: the player, every entity and the subsystems
// that pace, score and populate the run. It is driven by a single goroutine
// calling UpdateAll and DrawAll.
type Manager struct {
	cfg    Config
	bounds Bounds
	seed   int64

	state      *State
	levels     *LevelManager
	speed      *systems.SpeedManager
	score      *systems.ScoreManager
	difficulty *systems.DifficultyManager
	spawner    *Spawner
	player     *Player

	objects    []*Entity
	background []*Entity
	effects    []particle

	rng      *rand.Rand
	noise    *perlin.Perlin
	scroll   float32
	runTime  float32
	sound    SoundManager
	observer Observer
	logger   *log.Logger
}

// NewManager creates a session over the given levels. It fails when no
// level is current.
func NewManager(cfg Config, levels *LevelManager, bounds Bounds, opts ...Option) (*Manager, error) {
	if _, err := levels.Current(); err != nil {
		return nil, err
	}

	m := &Manager{
		cfg:      cfg,
		bounds:   bounds,
		seed:     time.Now().UnixNano(),
		state:    &State{},
		levels:   levels,
		sound:    silentSound{},
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}

	m.rng = rand.New(rand.NewSource(m.seed))
	m.noise = perlin.NewPerlin(2, 2, 3, m.seed)
	m.speed = systems.NewSpeedManager(cfg.Speed)
	m.score = systems.NewScoreManager(cfg.Score)
	m.spawner = NewSpawner(levels, m.rng, bounds, cfg.World.SpawnY)
	m.difficulty = systems.NewDifficultyManager(cfg.Difficulty, m.spawner, m.score)
	m.player = NewPlayer(cfg.Player, bounds)

	m.Reset()
	return m, nil
}

// Start begins the dive.
func (m *Manager) Start() bool {
	if !m.state.Start() {
		return false
	}
	m.sound.PlayMusic(MusicDive, true)
	m.logger.Info("run started", "level", m.levelName(), "seed", m.seed)
	return true
}

// Restart resets the world and starts a new run immediately.
func (m *Manager) Restart() {
	m.Reset()
	m.Start()
}

// TogglePause pauses or resumes a running session.
func (m *Manager) TogglePause() bool {
	return m.state.TogglePause()
}

// HandleInput forwards steering input to the player while the world is live.
func (m *Manager) HandleInput(ev core.InputEvent) {
	if !m.state.Running() {
		return
	}
	m.player.HandleInput(ev)
}

// UpdateAll advances the world by dt seconds. Entities spawned during the
// tick are not moved until the next one.
func (m *Manager) UpdateAll(dt float32) {
	if !m.state.Running() {
		return
	}
	m.runTime += dt

	m.speed.Update(dt)
	m.difficulty.Tick(dt)
	m.score.Update(dt)

	active := len(m.objects)
	if e, ok := m.spawner.Update(dt); ok {
		m.prepareSpawn(e)
		m.objects = append(m.objects, e)
		m.observer.EntitySpawned(m.levelName(), e.Kind)
	}

	mv := m.motion(dt)
	for _, bg := range m.background {
		bg.update(mv)
	}
	if loop := mv.loopHeight; loop > 0 {
		m.scroll += mv.fall * dt
		for m.scroll >= loop {
			m.scroll -= loop
		}
	}

	m.player.Update(dt)
	mv.player = m.player.Center()
	for _, e := range m.objects[:active] {
		e.update(mv)
	}

	for _, e := range m.objects {
		e.RefreshHitbox()
	}
	m.checkCollisions()
	m.removeDeadObjects()
	m.updateEffects(dt)
}

func (m *Manager) motion(dt float32) motion {
	return motion{
		dt:         dt,
		fall:       m.cfg.World.FallSpeed * m.speed.GameSpeed(),
		bounds:     m.bounds,
		loopHeight: m.bounds.Height * m.cfg.World.LoopScreens,
		player:     m.player.Center(),
		noise:      m.noise.Noise2D,
		cfg:        m.cfg.World,
	}
}

func (m *Manager) prepareSpawn(e *Entity) {
	if e.Kind == KindHangGlider {
		e.Velocity.X = m.cfg.World.GlideSpeed
		if m.rng.Intn(2) == 0 {
			e.Velocity.X = -e.Velocity.X
		}
	}
}

func (m *Manager) checkCollisions() {
	hitbox := m.player.Hitbox()
	for _, e := range m.objects {
		if e.MarkedForRemoval || !e.Hitbox().Intersects(hitbox) {
			continue
		}
		switch e.Kind.Category() {
		case CategoryCollectible:
			m.onCollect(e)
		case CategoryObstacle:
			m.onCollision(e)
		}
		e.MarkedForRemoval = true
		m.observer.Collided(m.levelName(), e.Kind)

		if m.state.Snapshot().Over {
			break
		}
	}
}

func (m *Manager) onCollect(e *Entity) {
	spec := e.Kind.spec()
	switch e.Kind {
	case KindCoin:
		m.score.AddPoints(spec.points)
		m.score.IncrementStreak()
		m.score.IncrementCoinsCollected()
		m.sound.PlaySFX(SFXCoin)
	case KindMultiplier:
		m.score.ApplyMultiplierBoost(spec.multiplierBonus)
		m.score.IncrementStreak()
		m.score.IncrementMultipliersCollected()
		m.sound.PlaySFX(SFXMultiplier)
	}
	m.addEffect(ParticleSparkle, e.Center())
}

func (m *Manager) onCollision(e *Entity) {
	spec := e.Kind.spec()
	m.score.IncrementObstaclesHit()

	if spec.lethal {
		m.sound.PlaySFX(SFXCollision)
		m.sound.PlaySFX(SFXGameOver)
		m.sound.StopMusic()
		m.addEffect(ParticleBurst, m.player.Center())
		if m.state.End() {
			summary := m.score.Summary()
			m.logger.Info("run ended",
				"level", m.levelName(),
				"cause", e.Kind,
				"score", summary.Score,
				"seconds", m.runTime,
			)
			m.observer.RunEnded(m.levelName(), summary, m.runTime)
		}
		return
	}

	m.speed.ApplySlowdown(spec.slowPenalty)
	m.player.GoSlower(spec.slowPenalty)
	m.score.ResetStreak()
	m.score.ApplyMultiplierBoost(-spec.multiplierPenalty)
	m.sound.PlaySFX(SFXHit)
	m.addEffect(ParticleImpact, e.Center())
}

func (m *Manager) removeDeadObjects() {
	valid := m.objects[:0]
	for _, e := range m.objects {
		if e.MarkedForRemoval || e.Position.Y > m.bounds.Height {
			continue
		}
		valid = append(valid, e)
	}
	clear(m.objects[len(valid):])
	m.objects = valid
}

func (m *Manager) addEffect(kind ParticleKind, pos core.Vector2) {
	m.effects = append(m.effects, particle{kind: kind, position: pos, ttl: m.cfg.World.EffectTTL})
}

func (m *Manager) updateEffects(dt float32) {
	valid := m.effects[:0]
	for _, p := range m.effects {
		p.age += dt
		if p.age < p.ttl {
			valid = append(valid, p)
		}
	}
	m.effects = valid
}

// Reset clears the world and returns every subsystem to its initial values.
// The session goes back to not started.
func (m *Manager) Reset() {
	clear(m.objects)
	m.objects = m.objects[:0]
	m.effects = m.effects[:0]
	m.runTime = 0

	m.state.Reset()
	m.player.Reset(m.bounds)
	m.speed.Reset()
	m.difficulty.Reset()
	m.score.ResetScore()
	m.spawner.Reset()
	m.spawnBackground()
}

func (m *Manager) spawnBackground() {
	m.background = m.background[:0]
	level, err := m.levels.Current()
	if err != nil {
		return
	}
	m.scroll = level.InitialOffset
	if len(level.Backgrounds) == 0 {
		return
	}

	loop := m.bounds.Height * m.cfg.World.LoopScreens
	for range m.cfg.World.BackgroundCount {
		kind := level.Backgrounds[m.rng.Intn(len(level.Backgrounds))]
		x := m.rng.Float32() * max(m.bounds.Width-kind.Size().X, 0)
		y := m.bounds.Height - m.rng.Float32()*loop
		e := NewEntity(kind, core.Vec(x, y))
		e.phase = m.rng.Float32() * 100
		m.background = append(m.background, e)
	}
}

// SwitchLevel activates another level and resets the run.
func (m *Manager) SwitchLevel(name string) error {
	if err := m.levels.SwitchTo(name); err != nil {
		return err
	}
	m.logger.Debug("level switched", "level", name)
	m.Reset()
	return nil
}

// SetBounds resizes the playfield.
func (m *Manager) SetBounds(b Bounds) {
	m.bounds = b
	m.spawner.SetBounds(b)
	m.player.SetBounds(b)
}

// DrawAll renders the frame back to front: backdrop, background objects,
// world objects, player, particles, HUD and any overlay.
func (m *Manager) DrawAll(r Renderer) {
	r.ClearScreen()

	level, _ := m.levels.Current()
	r.DrawBackgroundLayer(BackgroundLayer{
		Name:   level.Background,
		Anchor: m.player.Center(),
		Offset: m.scroll,
	})
	for _, bg := range m.background {
		r.DrawGameObject(bg.Sprite())
	}
	for _, e := range m.objects {
		r.DrawGameObject(e.Sprite())
	}
	r.DrawGameObject(m.player.Sprite())
	for _, p := range m.effects {
		r.DrawParticleEffect(p.position, p.kind, p.age/p.ttl)
	}

	r.DrawUIElement(fmt.Sprintf("SCORE %d", m.score.Score()), core.Vec(1, 0))
	r.DrawUIElement(fmt.Sprintf("x%.2f", m.score.ComboMultiplier()), core.Vec(14, 0))
	r.DrawUIElement(fmt.Sprintf("STREAK %d", m.score.CurrentStreak()), core.Vec(22, 0))
	r.DrawUIElement(fmt.Sprintf("SPEED %.1f", m.speed.GameSpeed()), core.Vec(34, 0))
	r.DrawUIElement(level.Title, core.Vec(m.bounds.Width-float32(len(level.Title))-1, 0))

	snap := m.state.Snapshot()
	switch {
	case snap.Over:
		r.DrawMessageOverlay(fmt.Sprintf("GAME OVER\nscore %d  best streak %d\nR to dive again  Q to quit",
			m.score.Score(), m.score.MaxStreak()))
	case snap.Paused:
		r.DrawMessageOverlay("PAUSED\nP to resume")
	case !snap.Started:
		r.DrawMessageOverlay(fmt.Sprintf("SKYDIVE\n%s\nENTER to jump", level.Title))
	}

	r.Flush()
}

func (m *Manager) levelName() string {
	l, err := m.levels.Current()
	if err != nil {
		return ""
	}
	return l.Name
}

// State returns a snapshot of the lifecycle flags.
func (m *Manager) State() StateSnapshot {
	return m.state.Snapshot()
}

// Score returns the score manager.
func (m *Manager) Score() *systems.ScoreManager {
	return m.score
}

// Speed returns the speed manager.
func (m *Manager) Speed() *systems.SpeedManager {
	return m.speed
}

// Difficulty returns the difficulty manager.
func (m *Manager) Difficulty() *systems.DifficultyManager {
	return m.difficulty
}

// Spawner returns the spawner.
func (m *Manager) Spawner() *Spawner {
	return m.spawner
}

// Player returns the player.
func (m *Manager) Player() *Player {
	return m.player
}

// Bounds returns the world size.
func (m *Manager) Bounds() Bounds {
	return m.bounds
}

// RunTime returns the seconds simulated in the current run.
func (m *Manager) RunTime() float32 {
	return m.runTime
}

// Sound returns the sound manager.
func (m *Manager) Sound() SoundManager {
	return m.sound
}

// Level returns the current level.
func (m *Manager) Level() (Level, error) {
	return m.levels.Current()
}

// Objects returns the live world objects. The slice is owned by the manager.
func (m *Manager) Objects() []*Entity {
	return m.objects
}

// Background returns the live background objects.
func (m *Manager) Background() []*Entity {
	return m.background
}
