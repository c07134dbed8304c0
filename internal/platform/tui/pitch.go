package tui

// PitchLatch turns discrete key presses into a held pitch input.
// Terminals report presses and auto-repeats but no releases, so a press
// holds its direction for a fixed number of ticks and repeats refresh it.
type PitchLatch struct {
	hold      int
	value     float64
	remaining int
}

// NewPitchLatch creates a latch that holds each press for hold ticks.
// A hold below one still applies a press for a single tick.
func NewPitchLatch(hold int) PitchLatch {
	return PitchLatch{hold: max(hold, 1)}
}

// Press latches a pitch direction, replacing any held one.
func (l *PitchLatch) Press(pitch float64) {
	l.value = pitch
	l.remaining = l.hold
}

// Next returns the pitch for the coming tick and counts the hold down.
func (l *PitchLatch) Next() float64 {
	if l.remaining <= 0 {
		return 0
	}
	l.remaining--
	return l.value
}

// Release drops any held input.
func (l *PitchLatch) Release() {
	l.remaining = 0
}
