package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/skydive/internal/game"
)

// drain streams s to the end and returns the sample count, giving up at limit.
func drain(s beep.Streamer, limit int) int {
	buf := make([][2]float64, 512)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	return total
}

func TestManagerGracefulDegradation(t *testing.T) {
	m := NewManager(Config{SFXVolume: 1, MusicVolume: 1}, nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	m.PlaySFX(game.SFXCoin)
	m.PlaySFX("unknown")
	m.PlayMusic(game.MusicDive, true)
	m.StopSFX()
	m.StopMusic()
	m.ToggleMute()
	m.ToggleMute()
	m.Cleanup()
}

func TestManagerVolumesClamp(t *testing.T) {
	m := NewManager(Config{SFXVolume: 3, MusicVolume: -1}, nil)
	if m.SFXVolume() != 1 || m.MusicVolume() != 0 {
		t.Errorf("constructor did not clamp: sfx %v music %v", m.SFXVolume(), m.MusicVolume())
	}

	tests := []struct {
		in, want float64
	}{
		{0.4, 0.4},
		{-0.5, 0},
		{1.5, 1},
	}
	for _, tc := range tests {
		m.SetSFXVolume(tc.in)
		m.SetMusicVolume(tc.in)
		if m.SFXVolume() != tc.want {
			t.Errorf("SetSFXVolume(%v) -> %v, want %v", tc.in, m.SFXVolume(), tc.want)
		}
		if m.MusicVolume() != tc.want {
			t.Errorf("SetMusicVolume(%v) -> %v, want %v", tc.in, m.MusicVolume(), tc.want)
		}
	}
}

func TestManagerSilentGainAtZero(t *testing.T) {
	m := NewManager(Config{SFXVolume: 0.5}, nil)
	if m.sfxGain.Silent {
		t.Error("non-zero volume should not be silent")
	}
	m.SetSFXVolume(0)
	if !m.sfxGain.Silent {
		t.Error("zero volume should be silent")
	}
}

func TestManagerToggleMute(t *testing.T) {
	m := NewManager(Config{Muted: true}, nil)
	if !m.Muted() {
		t.Fatal("expected muted from config")
	}
	if m.ToggleMute() {
		t.Error("ToggleMute should unmute")
	}
	if m.Muted() {
		t.Error("Muted() should report false after unmuting")
	}
	if !m.ToggleMute() {
		t.Error("ToggleMute should mute again")
	}
}

func TestEffectsAreFinite(t *testing.T) {
	limit := sampleRate.N(5 * time.Second)
	for _, name := range []string{game.SFXCoin, game.SFXMultiplier, game.SFXHit, game.SFXCollision, game.SFXGameOver} {
		s := effect(name)
		if s == nil {
			t.Errorf("no effect for %q", name)
			continue
		}
		n := drain(s, limit)
		if n == 0 || n >= limit {
			t.Errorf("%s produced %d samples, want a short finite sound", name, n)
		}
	}

	if effect("nope") != nil {
		t.Error("unknown effect should be nil")
	}
}

func TestMusicLooping(t *testing.T) {
	limit := sampleRate.N(30 * time.Second)

	if n := drain(music(game.MusicDive, true), limit); n < limit {
		t.Errorf("looping music ended after %d samples", n)
	}

	want := sampleRate.N(600*time.Millisecond) * 8
	if n := drain(music(game.MusicDive, false), limit); n != want {
		t.Errorf("single pass produced %d samples, want %d", n, want)
	}

	if music("nope", true) != nil {
		t.Error("unknown track should be nil")
	}
}

func TestEnvelopeShape(t *testing.T) {
	d := 100 * time.Millisecond
	s := newEnvelope(newOscillator(0, d, WaveSquare, sampleRate), d, 10*time.Millisecond, 10*time.Millisecond, sampleRate)

	buf := make([][2]float64, sampleRate.N(d))
	n, _ := s.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d samples, want %d", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("attack should start silent, got %v", buf[0][0])
	}
	if mid := buf[len(buf)/2][0]; mid != 1 {
		t.Errorf("sustain should be full volume, got %v", mid)
	}
	if last := buf[len(buf)-1][0]; last <= 0 || last >= 0.1 {
		t.Errorf("release should fade out, got %v", last)
	}
}

func TestNop(t *testing.T) {
	var n Nop
	n.SetSFXVolume(0.3)
	n.SetMusicVolume(0.6)
	if n.SFXVolume() != 0.3 || n.MusicVolume() != 0.6 {
		t.Error("Nop should remember volumes")
	}
	if !n.ToggleMute() || !n.Muted() {
		t.Error("Nop should track mute")
	}
}
