package flight

import (
	"fmt"
	"math"
)

// State is the lifecycle state of a flight.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateCrashed
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateCrashed:
		return "Crashed"
	default:
		return "Unknown"
	}
}

// Settings configures a Controller.
type Settings struct {
	Field       FieldSpec
	Start       Vec3    // Craft position on every restart
	Speed       float64 // Forward distance per tick
	Sensitivity float64 // Vertical distance per tick at full pitch input
}

// Snapshot is a read-only view of the controller for rendering.
type Snapshot struct {
	State    State
	Score    int
	Craft    Vec3
	Pitch    float64
	Tick     uint64
	Rings    []Ring
	NextRing int // Index of the next ring ahead, -1 if none
}

// Controller drives the flight: it owns the ring field, the craft, the score
// and the lifecycle state. It is not safe for concurrent use; the frame
// scheduler calls it from one goroutine.
type Controller struct {
	settings Settings
	field    *RingField
	craft    Craft
	state    State
	score    int
	tick     uint64
	events   []Event
}

// NewController builds a controller in the Idle state.
func NewController(s Settings) (*Controller, error) {
	field, err := GenerateField(s.Field)
	if err != nil {
		return nil, err
	}
	if s.Speed < 0 || math.IsNaN(s.Speed) || math.IsInf(s.Speed, 0) {
		return nil, fmt.Errorf("flight: invalid speed %g", s.Speed)
	}
	if s.Sensitivity < 0 || math.IsNaN(s.Sensitivity) || math.IsInf(s.Sensitivity, 0) {
		return nil, fmt.Errorf("flight: invalid sensitivity %g", s.Sensitivity)
	}

	return &Controller{
		settings: s,
		field:    field,
		craft:    ResetCraft(s.Start),
		state:    StateIdle,
	}, nil
}

// Start launches the craft. Only valid from Idle; otherwise a no-op.
func (c *Controller) Start() {
	if c.state != StateIdle {
		return
	}
	c.state = StateRunning
	c.emit(StartedEvent{})
}

// Tick advances the simulation by one frame using pitchInput in [-1, 1].
// Values outside the range are clamped. No-op unless Running.
func (c *Controller) Tick(pitchInput float64) {
	if c.state != StateRunning {
		return
	}
	if math.IsNaN(pitchInput) {
		pitchInput = 0
	}
	pitchInput = math.Max(-1, math.Min(1, pitchInput))

	c.tick++
	c.craft = Advance(c.craft, c.settings.Speed, pitchInput*c.settings.Sensitivity)

	// Every ring crossed this tick is judged in index order so a fast craft
	// never skips a ring.
	pos := c.craft.Position
	for i := 0; i < c.field.Len(); i++ {
		ring := c.field.At(i)
		if !Crossed(pos, ring) {
			continue
		}

		d := PlanarDistance(pos, ring.Center)
		switch Evaluate(pos, ring) {
		case OutcomeScored:
			c.score++
			c.emit(RingScoredEvent{Ring: i, Distance: d, Score: c.score})
		case OutcomeMissed:
			c.emit(RingMissedEvent{Ring: i, Distance: d})
		case OutcomeCrashed:
			c.state = StateCrashed
			c.emit(CrashedEvent{Ring: i, Distance: d, Score: c.score, Tick: c.tick})
			return
		}
	}
}

// Restart returns to Idle from any state: craft at the start position,
// score zero, every ring unchecked.
func (c *Controller) Restart() {
	from, score, tick := c.state, c.score, c.tick
	c.craft = ResetCraft(c.settings.Start)
	c.score = 0
	c.tick = 0
	c.field.ResetChecks()
	c.state = StateIdle
	c.emit(RestartedEvent{From: from, Score: score, Tick: tick})
}

// State returns the lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Score returns the number of rings passed cleanly this flight.
func (c *Controller) Score() int {
	return c.score
}

// Craft returns the craft.
func (c *Controller) Craft() Craft {
	return c.craft
}

// Field returns the ring field. Callers must treat it as read-only.
func (c *Controller) Field() *RingField {
	return c.field
}

// Settings returns the settings the controller was built with.
func (c *Controller) Settings() Settings {
	return c.settings
}

// Snapshot returns a copy of the observable state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		State:    c.state,
		Score:    c.score,
		Craft:    c.craft.Position,
		Pitch:    c.craft.Pitch,
		Tick:     c.tick,
		Rings:    c.field.Rings(),
		NextRing: c.field.Next(c.craft.Position.Z),
	}
}

// Events drains the events produced since the previous call.
func (c *Controller) Events() []Event {
	out := c.events
	c.events = nil
	return out
}

func (c *Controller) emit(e Event) {
	c.events = append(c.events, e)
}
