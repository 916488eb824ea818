package game

import (
	"github.com/vovakirdan/skydive/internal/core"
	"github.com/vovakirdan/skydive/internal/systems"
)

// Sprite is what a renderer needs to draw one object.
type Sprite struct {
	Name     string // kind name, or player_<state>
	Category Category
	Bounds   core.Rect
}

// BackgroundLayer describes the scrolling backdrop for one frame.
type BackgroundLayer struct {
	Name   string       // level background id
	Anchor core.Vector2 // player center
	Offset float32      // vertical scroll within the loop
}

// ParticleKind selects a particle effect.
type ParticleKind uint8

const (
	ParticleSparkle ParticleKind = iota // pickup
	ParticleImpact                      // non-lethal hit
	ParticleBurst                       // lethal hit
)

// Renderer draws a frame. Calls arrive in back-to-front order between
// ClearScreen and Flush.
type Renderer interface {
	ClearScreen()
	DrawBackgroundLayer(layer BackgroundLayer)
	DrawGameObject(s Sprite)
	DrawUIElement(label string, pos core.Vector2)
	DrawMessageOverlay(text string)
	DrawParticleEffect(pos core.Vector2, kind ParticleKind, progress float32)
	Flush()
}

// Sound effect and music names.
const (
	SFXCoin       = "coin"
	SFXMultiplier = "multiplier"
	SFXHit        = "hit"
	SFXCollision  = "collision"
	SFXGameOver   = "game_over"
	MusicDive     = "dive"
)

// SoundManager plays effects and music.
type SoundManager interface {
	PlaySFX(name string)
	PlayMusic(name string, loop bool)
	StopSFX()
	StopMusic()
	SFXVolume() float64
	SetSFXVolume(v float64)
	MusicVolume() float64
	SetMusicVolume(v float64)
	ToggleMute() bool
	Muted() bool
}

// Observer receives gameplay events, e.g. for metrics.
type Observer interface {
	EntitySpawned(level string, kind Kind)
	Collided(level string, kind Kind)
	RunEnded(level string, summary systems.RunSummary, seconds float32)
}

type silentSound struct{}

func (silentSound) PlaySFX(string) {}

func (silentSound) PlayMusic(string, bool) {}

func (silentSound) StopSFX() {}

func (silentSound) StopMusic() {}

func (silentSound) SFXVolume() float64 {
	return 0
}

func (silentSound) SetSFXVolume(float64) {}

func (silentSound) MusicVolume() float64 {
	return 0
}

func (silentSound) SetMusicVolume(float64) {}

func (silentSound) ToggleMute() bool {
	return true
}

func (silentSound) Muted() bool {
	return true
}

type nopObserver struct{}

func (nopObserver) EntitySpawned(string, Kind) {}

func (nopObserver) Collided(string, Kind) {}

func (nopObserver) RunEnded(string, systems.RunSummary, float32) {}
