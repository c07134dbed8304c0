// Package ringflight adapts the flight simulation to the arcade platform.
// The player pitches a craft up and down to thread it through a line of rings.
package ringflight

import (
	"github.com/vovakirdan/ringflight/internal/config"
	"github.com/vovakirdan/ringflight/internal/core"
	"github.com/vovakirdan/ringflight/internal/flight"
)

// Game implements registry.Game on top of a flight.Controller.
type Game struct {
	id       string
	title    string
	cfg      config.FlightConfig
	ctrl     *flight.Controller
	outcomes map[int]flight.Outcome // Judged rings of the current flight, for coloring
	pending  []flight.Event         // Events not yet drained by the platform
	best     int                    // Best score shown on the HUD
	lastRun  int                    // Score of the most recent finished flight
}

// New creates a game for the given course.
func New(id, title string, cfg config.FlightConfig) (*Game, error) {
	ctrl, err := flight.NewController(cfg.Settings())
	if err != nil {
		return nil, err
	}

	return &Game{
		id:       id,
		title:    title,
		cfg:      cfg,
		ctrl:     ctrl,
		outcomes: make(map[int]flight.Outcome),
	}, nil
}

// ID returns the course identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this course.
func (g *Game) Title() string {
	return g.title
}

// Reset returns the craft to the launch pad. The view adapts to the screen
// it is given at render time, so the runtime config is not kept.
func (g *Game) Reset(core.RuntimeConfig) {
	g.ctrl.Restart()
	g.collect()
}

// Step applies one tick of input. Restart is handled before launch so a
// single frame can carry both.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.ctrl.Restart()
	}
	if in.Has(core.ActionLaunch) {
		g.ctrl.Start()
	}

	g.ctrl.Tick(in.Pitch)
	g.collect()

	return core.StepResult{State: g.State()}
}

// collect drains controller events into the game's bookkeeping and the
// pending queue for the platform.
func (g *Game) collect() {
	for _, e := range g.ctrl.Events() {
		switch ev := e.(type) {
		case flight.RestartedEvent:
			clear(g.outcomes)
		case flight.RingScoredEvent:
			g.outcomes[ev.Ring] = flight.OutcomeScored
			g.best = max(g.best, ev.Score)
		case flight.RingMissedEvent:
			g.outcomes[ev.Ring] = flight.OutcomeMissed
		case flight.CrashedEvent:
			g.outcomes[ev.Ring] = flight.OutcomeCrashed
			g.lastRun = ev.Score
		}
		g.pending = append(g.pending, e)
	}
}

// Events drains events produced since the previous call.
func (g *Game) Events() []flight.Event {
	out := g.pending
	g.pending = nil
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.ctrl.State()
	return core.GameState{
		Score:    g.ctrl.Score(),
		Started:  st != flight.StateIdle,
		GameOver: st == flight.StateCrashed,
	}
}

// Flight returns the underlying simulation.
func (g *Game) Flight() *flight.Controller {
	return g.ctrl
}

// Best returns the best score shown on the HUD.
func (g *Game) Best() int {
	return g.best
}

// SetBest seeds the HUD best score, typically from the run journal.
// Scores flown afterwards still raise it.
func (g *Game) SetBest(score int) {
	g.best = score
}
