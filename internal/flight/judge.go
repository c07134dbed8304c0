package flight

import "math"

// Outcome is the result of judging a ring pass.
type Outcome int

const (
	OutcomeNone    Outcome = iota // Ring was not eligible for judging
	OutcomeScored                 // Passed through the hole
	OutcomeCrashed                // Clipped the rim
	OutcomeMissed                 // Flew past outside the ring
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case OutcomeScored:
		return "Scored"
	case OutcomeCrashed:
		return "Crashed"
	case OutcomeMissed:
		return "Missed"
	default:
		return "Unknown"
	}
}

// PlanarDistance is the distance between a and b in the plane orthogonal
// to the forward axis.
func PlanarDistance(a, b Vec3) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Classify maps a planar distance onto an outcome.
// The collision zone is closed on both ends, so a distance equal to
// either radius is a crash.
func Classify(d, inner, outer float64) Outcome {
	switch {
	case d < inner:
		return OutcomeScored
	case d <= outer:
		return OutcomeCrashed
	default:
		return OutcomeMissed
	}
}

// Crossed reports whether ring is due for judging: unchecked and already
// behind the craft on the forward axis.
func Crossed(pos Vec3, ring *Ring) bool {
	return !ring.Checked && pos.Z < ring.Center.Z
}

// Evaluate judges the craft at pos against ring and marks the ring checked.
// Rings that are not due return OutcomeNone and are left untouched.
func Evaluate(pos Vec3, ring *Ring) Outcome {
	if !Crossed(pos, ring) {
		return OutcomeNone
	}

	ring.Checked = true
	d := PlanarDistance(pos, ring.Center)
	return Classify(d, ring.InnerRadius(), ring.OuterRadius())
}
