// Package sound synthesizes short audio cues for flight events.
package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the output rate for every cue.
const SampleRate = beep.SampleRate(44100)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// oscillator produces a fixed-length tone.
type oscillator struct {
	freq     float64
	phase    float64
	position int
	length   int
	wave     Wave
	rate     beep.SampleRate
}

// NewOscillator returns a streamer that plays freq for duration.
func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		length: rate.N(duration),
		wave:   wave,
		rate:   rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a streamer in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if rest := e.total - e.position; len(samples) > rest {
		samples = samples[:rest]
	}
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			vol = math.Max(float64(e.total-e.position)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales s linearly. math.Log2(0) is -Inf, so zero is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is an enveloped oscillator.
func tone(freq float64, d, attack, release time.Duration, wave Wave) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, SampleRate), d, attack, release, SampleRate)
}

// Chime is a rising two-note sine for a ring flown through.
func Chime(vol float64) beep.Streamer {
	first := tone(783.99, 70*time.Millisecond, 5*time.Millisecond, 30*time.Millisecond, WaveSine)  // G5
	second := tone(1046.5, 140*time.Millisecond, 5*time.Millisecond, 90*time.Millisecond, WaveSine) // C6
	return withVolume(beep.Seq(first, second), vol)
}

// Buzz is a low saw for a crash.
func Buzz(vol float64) beep.Streamer {
	d := 350 * time.Millisecond
	low := tone(90, d, 5*time.Millisecond, 200*time.Millisecond, WaveSaw)
	grit := tone(135, d, 5*time.Millisecond, 200*time.Millisecond, WaveSquare)
	return withVolume(beep.Mix(withVolume(low, 0.7), withVolume(grit, 0.3)), vol)
}

// Tick is a short soft click for a ring passed outside the rim.
func Tick(vol float64) beep.Streamer {
	return withVolume(tone(1760, 25*time.Millisecond, time.Millisecond, 15*time.Millisecond, WaveSine), vol*0.4)
}
