// Package audio plays synthesized sound effects and music through the
// system speaker. Every sound is generated at runtime; there are no assets.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/skydive/internal/core"
	"github.com/vovakirdan/skydive/internal/game"
)

// Config holds the initial mix.
type Config struct {
	SFXVolume   float64
	MusicVolume float64
	Muted       bool
}

// Manager is a game.SoundManager backed by beep. Until Initialize succeeds
// it tracks volumes and mute state but produces no sound.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	sfx         *beep.Mixer
	sfxGain     *effects.Volume
	music       *beep.Ctrl
	musicGain   *effects.Volume
	musicName   string
	musicLoop   bool
	sfxVolume   float64
	musicVolume float64
	muted       bool
	initialized bool
	logger      *log.Logger
}

// NewManager creates a sound manager. It does not touch the audio device.
func NewManager(cfg Config, logger *log.Logger) *Manager {
	m := &Manager{
		mixer:       &beep.Mixer{},
		sfx:         &beep.Mixer{},
		sfxVolume:   core.Clamp(cfg.SFXVolume, 0, 1),
		musicVolume: core.Clamp(cfg.MusicVolume, 0, 1),
		muted:       cfg.Muted,
		logger:      logger,
	}
	m.sfxGain = newVolume(m.sfx, m.sfxVolume)
	m.mixer.Add(m.sfxGain)
	return m
}

// Initialize opens the speaker and starts the mixer.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	if m.logger != nil {
		m.logger.Debug("audio initialized", "rate", int(sampleRate))
	}
	return nil
}

// Cleanup stops all sounds.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	m.locked(func() {
		m.sfx.Clear()
		if m.music != nil {
			m.music.Paused = true
		}
	})
	speaker.Clear()
	m.initialized = false
}

// locked runs f under the speaker lock when the speaker is live.
func (m *Manager) locked(f func()) {
	if m.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	f()
}

// PlaySFX plays a one-shot effect over whatever is already sounding.
func (m *Manager) PlaySFX(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted {
		return
	}
	s := effect(name)
	if s == nil {
		return
	}
	m.locked(func() { m.sfx.Add(s) })
}

// PlayMusic replaces the current track.
func (m *Manager) PlayMusic(name string, loop bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.musicName, m.musicLoop = name, loop
	m.startMusic()
}

func (m *Manager) startMusic() {
	m.stopMusic()
	if !m.initialized || m.muted || m.musicName == "" {
		return
	}
	s := music(m.musicName, m.musicLoop)
	if s == nil {
		return
	}
	m.musicGain = newVolume(s, m.musicVolume)
	m.music = &beep.Ctrl{Streamer: m.musicGain}
	m.locked(func() { m.mixer.Add(m.music) })
}

// StopSFX cuts every playing effect.
func (m *Manager) StopSFX() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.locked(func() { m.sfx.Clear() })
}

// StopMusic stops the current track.
func (m *Manager) StopMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.musicName = ""
	m.stopMusic()
}

func (m *Manager) stopMusic() {
	if m.music == nil {
		return
	}
	m.locked(func() {
		m.music.Paused = true
		m.music.Streamer = nil
	})
	m.music = nil
	m.musicGain = nil
}

// SFXVolume returns the effect volume.
func (m *Manager) SFXVolume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sfxVolume
}

// SetSFXVolume sets the effect volume, clamped to [0, 1].
func (m *Manager) SetSFXVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sfxVolume = core.Clamp(v, 0, 1)
	m.locked(func() { applyGain(m.sfxGain, m.sfxVolume) })
}

// MusicVolume returns the music volume.
func (m *Manager) MusicVolume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.musicVolume
}

// SetMusicVolume sets the music volume, clamped to [0, 1].
func (m *Manager) SetMusicVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.musicVolume = core.Clamp(v, 0, 1)
	if m.musicGain != nil {
		m.locked(func() { applyGain(m.musicGain, m.musicVolume) })
	}
}

// ToggleMute flips mute and returns the new state. Muting silences
// everything; unmuting restarts the last requested track.
func (m *Manager) ToggleMute() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.muted = !m.muted
	if m.muted {
		m.locked(func() { m.sfx.Clear() })
		m.stopMusic()
	} else {
		m.startMusic()
	}
	return m.muted
}

// Muted reports whether audio is muted.
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

func applyGain(v *effects.Volume, vol float64) {
	g := newVolume(nil, vol)
	v.Volume, v.Silent = g.Volume, g.Silent
}

var _ game.SoundManager = (*Manager)(nil)
