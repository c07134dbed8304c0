package flight

import "math"

// Autopilot steers toward the center of the next ring ahead.
// It is used by the headless simulator and the demo mode.
type Autopilot struct {
	// Offset is added to the target altitude; non-zero values deliberately
	// fly off-center, which is useful for exercising rim and miss outcomes.
	Offset float64
}

// Pitch returns the pitch input in [-1, 1] that brings the craft closest to
// the next ring's altitude this tick.
func (a Autopilot) Pitch(snap Snapshot, sensitivity float64) float64 {
	if snap.NextRing < 0 || snap.NextRing >= len(snap.Rings) || sensitivity <= 0 {
		return 0
	}

	target := snap.Rings[snap.NextRing].Center.Y + a.Offset
	// Positive pitch descends, so a craft above the target needs positive input.
	input := (snap.Craft.Y - target) / sensitivity
	return math.Max(-1, math.Min(1, input))
}
