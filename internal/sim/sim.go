// Package sim flies a course without a terminal and reports the outcome of
// every ring.
package sim

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/vovakirdan/ringflight/internal/core"
	"github.com/vovakirdan/ringflight/internal/flight"
	"github.com/vovakirdan/ringflight/internal/registry"
)

// Pilot decides the pitch input for the next tick.
type Pilot interface {
	Pitch(snap flight.Snapshot, sensitivity float64) float64
}

// ConstantPilot holds the same pitch for the whole flight.
type ConstantPilot float64

// Pitch implements Pilot.
func (p ConstantPilot) Pitch(flight.Snapshot, float64) float64 {
	return float64(p)
}

// RingResult is the judged outcome of one ring.
type RingResult struct {
	Ring     flight.Ring
	Outcome  flight.Outcome // OutcomeNone if the flight ended first
	Distance float64
	Tick     uint64
}

// Result summarizes a simulated flight.
type Result struct {
	Course string
	Title  string
	Score  int
	Ticks  uint64
	State  flight.State
	Rings  []RingResult
}

// Run launches g and flies it with pilot until it crashes, every ring has
// been judged, or maxTicks ticks have passed.
func Run(g registry.Game, pilot Pilot, maxTicks uint64) Result {
	ctrl := g.Flight()
	g.Reset(core.DefaultConfig())

	rings := ctrl.Field().Rings()
	res := Result{
		Course: g.ID(),
		Title:  g.Title(),
		Rings:  make([]RingResult, len(rings)),
	}
	for i, r := range rings {
		res.Rings[i].Ring = r
	}

	launch := core.NewInputFrame()
	launch.Set(core.ActionLaunch)
	g.Step(launch)
	record(&res, g.Events(), ctrl.Snapshot().Tick)

	sensitivity := ctrl.Settings().Sensitivity
	for ctrl.State() == flight.StateRunning && ctrl.Field().Remaining() > 0 && ctrl.Snapshot().Tick < maxTicks {
		snap := ctrl.Snapshot()
		in := core.NewInputFrame()
		in.Pitch = pilot.Pitch(snap, sensitivity)
		g.Step(in)
		record(&res, g.Events(), snap.Tick+1)
	}

	snap := ctrl.Snapshot()
	res.Score = snap.Score
	res.Ticks = snap.Tick
	res.State = snap.State
	for i := range res.Rings {
		res.Rings[i].Ring.Checked = snap.Rings[i].Checked
	}
	return res
}

func record(res *Result, events []flight.Event, tick uint64) {
	for _, e := range events {
		switch ev := e.(type) {
		case flight.RingScoredEvent:
			res.Rings[ev.Ring].Outcome = flight.OutcomeScored
			res.Rings[ev.Ring].Distance = ev.Distance
			res.Rings[ev.Ring].Tick = tick
		case flight.RingMissedEvent:
			res.Rings[ev.Ring].Outcome = flight.OutcomeMissed
			res.Rings[ev.Ring].Distance = ev.Distance
			res.Rings[ev.Ring].Tick = tick
		case flight.CrashedEvent:
			res.Rings[ev.Ring].Outcome = flight.OutcomeCrashed
			res.Rings[ev.Ring].Distance = ev.Distance
			res.Rings[ev.Ring].Tick = ev.Tick
		}
	}
}

// Counts returns how many rings ended with each outcome.
func (r Result) Counts() map[flight.Outcome]int {
	counts := make(map[flight.Outcome]int)
	for _, rr := range r.Rings {
		counts[rr.Outcome]++
	}
	return counts
}

// Render writes the per-ring table and a summary footer to w.
func Render(w io.Writer, r Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.SetTitle(fmt.Sprintf("%s (%s)", r.Title, r.Course))
	t.AppendHeader(table.Row{"Ring", "Altitude", "Forward", "Outcome", "Distance", "Tick"})

	for _, rr := range r.Rings {
		outcome, dist, tick := "-", "", ""
		if rr.Outcome != flight.OutcomeNone {
			outcome = rr.Outcome.String()
			dist = fmt.Sprintf("%.2f", rr.Distance)
			tick = fmt.Sprintf("%d", rr.Tick)
		}
		t.AppendRow(table.Row{rr.Ring.Index, fmt.Sprintf("%.1f", rr.Ring.Center.Y),
			fmt.Sprintf("%.0f", rr.Ring.Center.Z), outcome, dist, tick})
	}

	counts := r.Counts()
	t.AppendFooter(table.Row{"", "", "Score", r.Score, fmt.Sprintf("missed %d", counts[flight.OutcomeMissed]),
		fmt.Sprintf("%d ticks, %s", r.Ticks, r.State)})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	t.Render()
}
