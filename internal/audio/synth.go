package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/skydive/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave for a fixed number of samples.
// A negative duration never ends.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

func newOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) *oscillator {
	n := -1
	if duration >= 0 {
		n = rate.N(duration)
	}
	return &oscillator{
		freq:     freq,
		duration: n,
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.duration >= 0 && o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error {
	return nil
}

// envelope fades a finite stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; remaining < e.release {
			vol = max(float64(remaining)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error {
	return e.streamer.Err()
}

// tone is one enveloped note.
func tone(freq float64, d time.Duration, wave WaveType) beep.Streamer {
	osc := newOscillator(freq, d, wave, sampleRate)
	return newEnvelope(osc, d, 5*time.Millisecond, d/2, sampleRate)
}

// newVolume scales s by a linear gain. Zero and below is silent since
// math.Log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// effect builds the streamer for a named sound effect, or nil if unknown.
func effect(name string) beep.Streamer {
	switch name {
	case game.SFXCoin:
		// B5 then E6
		return beep.Seq(
			tone(987.77, 70*time.Millisecond, WaveSquare),
			tone(1318.51, 160*time.Millisecond, WaveSquare),
		)
	case game.SFXMultiplier:
		return beep.Seq(
			tone(659.25, 60*time.Millisecond, WaveSine),
			tone(830.61, 60*time.Millisecond, WaveSine),
			tone(987.77, 60*time.Millisecond, WaveSine),
			tone(1318.51, 140*time.Millisecond, WaveSine),
		)
	case game.SFXHit:
		return beep.Mix(
			tone(140, 180*time.Millisecond, WaveSaw),
			newVolume(tone(0, 120*time.Millisecond, WaveNoise), 0.4),
		)
	case game.SFXCollision:
		return newVolume(tone(0, 400*time.Millisecond, WaveNoise), 0.8)
	case game.SFXGameOver:
		return beep.Seq(
			tone(392.00, 200*time.Millisecond, WaveSquare),
			tone(311.13, 200*time.Millisecond, WaveSquare),
			tone(261.63, 500*time.Millisecond, WaveSquare),
		)
	default:
		return nil
	}
}

// windStreamer is the endless dive backdrop: filtered noise under a slow
// bass pulse at 100 BPM.
type windStreamer struct {
	rate   beep.SampleRate
	pos    int
	beat   int
	noise  *rand.Rand
	smooth float64
}

func newWindStreamer(rate beep.SampleRate) *windStreamer {
	return &windStreamer{
		rate:  rate,
		beat:  rate.N(600 * time.Millisecond),
		noise: rand.New(rand.NewSource(1)),
	}
}

func (w *windStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(w.pos) / float64(w.rate)
		beatPos := w.pos % w.beat

		// One-pole low-pass over white noise
		w.smooth += 0.02 * (w.noise.Float64()*2 - 1 - w.smooth)
		gust := 0.5 + 0.5*math.Sin(2*math.Pi*0.15*t)
		wind := w.smooth * (0.6 + 0.4*gust)

		env := 1.0 - float64(beatPos)/float64(w.beat)
		bass := 0.2 * env * math.Sin(2*math.Pi*55*t)

		sample := wind + bass
		samples[i][0] = sample
		samples[i][1] = sample
		w.pos++
	}
	return len(samples), true
}

func (w *windStreamer) Err() error {
	return nil
}

// music builds the streamer for a named track. A non-looping track plays
// for eight beats.
func music(name string, loop bool) beep.Streamer {
	if name != game.MusicDive {
		return nil
	}
	s := newWindStreamer(sampleRate)
	if loop {
		return s
	}
	return beep.Take(s.beat*8, s)
}
