package audio

import "github.com/vovakirdan/skydive/internal/game"

// Nop is a silent SoundManager for SSH sessions and headless runs. It
// remembers settings so the HUD can still show them.
type Nop struct {
	sfx, music float64
	muted      bool
}

// PlaySFX does nothing.
func (n *Nop) PlaySFX(string) {}

// PlayMusic does nothing.
func (n *Nop) PlayMusic(string, bool) {}

// StopSFX does nothing.
func (n *Nop) StopSFX() {}

// StopMusic does nothing.
func (n *Nop) StopMusic() {}

// SFXVolume returns the remembered effects volume.
func (n *Nop) SFXVolume() float64 {
	return n.sfx
}

// SetSFXVolume remembers the effects volume.
func (n *Nop) SetSFXVolume(v float64) {
	n.sfx = v
}

// MusicVolume returns the remembered music volume.
func (n *Nop) MusicVolume() float64 {
	return n.music
}

// SetMusicVolume remembers the music volume.
func (n *Nop) SetMusicVolume(v float64) {
	n.music = v
}

// Muted reports the mute flag.
func (n *Nop) Muted() bool {
	return n.muted
}

// ToggleMute flips and returns the mute flag.
func (n *Nop) ToggleMute() bool {
	n.muted = !n.muted
	return n.muted
}

var _ game.SoundManager = (*Nop)(nil)
