package flight

// Event is a state change emitted by the controller for the presentation layer.
type Event interface {
	flightEvent()
}

// StartedEvent is emitted when the craft launches from Idle.
type StartedEvent struct{}

func (StartedEvent) flightEvent() {}

// RingScoredEvent is emitted when the craft passes cleanly through a ring.
type RingScoredEvent struct {
	Ring     int
	Distance float64 // Planar distance from the ring center
	Score    int     // Score after the pass
}

func (RingScoredEvent) flightEvent() {}

// RingMissedEvent is emitted when the craft flies past outside a ring.
type RingMissedEvent struct {
	Ring     int
	Distance float64
}

func (RingMissedEvent) flightEvent() {}

// CrashedEvent is emitted when the craft clips a ring rim.
type CrashedEvent struct {
	Ring     int
	Distance float64
	Score    int // Final score
	Tick     uint64
}

func (CrashedEvent) flightEvent() {}

// RestartedEvent is emitted when the controller returns to Idle.
type RestartedEvent struct {
	From  State  // State the controller was in before restarting
	Score int    // Score of the abandoned flight
	Tick  uint64 // Ticks flown before restarting
}

func (RestartedEvent) flightEvent() {}
