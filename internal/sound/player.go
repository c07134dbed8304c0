package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/ringflight/internal/flight"
)

// Cue identifies a sound played in response to a flight event.
type Cue int

const (
	CueNone Cue = iota
	CueChime
	CueBuzz
	CueTick
)

func (c Cue) String() string {
	switch c {
	case CueChime:
		return "chime"
	case CueBuzz:
		return "buzz"
	case CueTick:
		return "tick"
	default:
		return "none"
	}
}

// CueFor maps a flight event to its cue.
func CueFor(e flight.Event) Cue {
	switch e.(type) {
	case flight.RingScoredEvent:
		return CueChime
	case flight.CrashedEvent:
		return CueBuzz
	case flight.RingMissedEvent:
		return CueTick
	default:
		return CueNone
	}
}

// Player mixes cues into the speaker. A Player that was never opened
// still mixes, which keeps it usable without an audio device.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	open   bool
	logger *log.Logger
}

// NewPlayer creates a player with the given volume in [0, 1].
func NewPlayer(volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger.WithPrefix("sound"),
	}
}

// Open initializes the speaker and starts playing the mixer.
func (p *Player) Open() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.open {
		return nil
	}

	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("sound: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.open = true
	p.logger.Debug("Speaker opened", "rate", int(SampleRate))
	return nil
}

// Close stops playback. Pending cues are dropped.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.open {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.mixer.Clear()
	p.open = false
}

// Play queues a cue.
func (p *Player) Play(c Cue) {
	var s beep.Streamer
	switch c {
	case CueChime:
		s = Chime(p.volume)
	case CueBuzz:
		s = Buzz(p.volume)
	case CueTick:
		s = Tick(p.volume)
	default:
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.open {
		speaker.Lock()
		defer speaker.Unlock()
	}
	p.mixer.Add(s)
}

// Handle plays the cues for a batch of events.
func (p *Player) Handle(events []flight.Event) {
	for _, e := range events {
		p.Play(CueFor(e))
	}
}

// Pending returns the number of cues still playing.
func (p *Player) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.open {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return p.mixer.Len()
}
