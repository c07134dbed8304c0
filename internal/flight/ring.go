// Package flight implements the ring-flight simulation: ring field generation,
// craft motion, ring pass judging and the game controller state machine.
// It has no terminal or rendering dependencies so it can be driven by any
// frame scheduler and tested in isolation.
package flight

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidField is returned when ring field parameters cannot produce valid rings.
var ErrInvalidField = errors.New("flight: invalid ring field")

// Vec3 is a point in world space.
// X is lateral, Y is vertical and Z is the forward axis; the craft flies toward -Z.
type Vec3 struct {
	X, Y, Z float64
}

// Ring is a torus-shaped obstacle. Geometry is fixed at creation,
// Checked is gameplay state owned by the field.
type Ring struct {
	Index       int
	Center      Vec3
	MajorRadius float64
	TubeRadius  float64
	Checked     bool // Set once the craft has passed the ring plane
}

// InnerRadius is the largest planar distance that still counts as a clean pass.
func (r Ring) InnerRadius() float64 {
	return r.MajorRadius - r.TubeRadius
}

// OuterRadius is the planar distance beyond which the craft misses the rim.
func (r Ring) OuterRadius() float64 {
	return r.MajorRadius + r.TubeRadius
}

// MaxRings bounds FieldSpec.Count.
const MaxRings = 100000

// FieldSpec describes the layout of a ring field.
type FieldSpec struct {
	Count       int
	Spacing     float64 // Forward distance between consecutive rings
	StartOffset float64 // Forward coordinate of ring 0
	AltitudeA   float64 // Altitude of even rings
	AltitudeB   float64 // Altitude of odd rings
	MajorRadius float64
	TubeRadius  float64
}

// Validate reports whether the spec can produce valid rings.
func (s FieldSpec) Validate() error {
	for name, v := range map[string]float64{
		"spacing":      s.Spacing,
		"start offset": s.StartOffset,
		"altitude a":   s.AltitudeA,
		"altitude b":   s.AltitudeB,
		"major radius": s.MajorRadius,
		"tube radius":  s.TubeRadius,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidField, name)
		}
	}

	switch {
	case s.Count < 0:
		return fmt.Errorf("%w: negative ring count %d", ErrInvalidField, s.Count)
	case s.Count > MaxRings:
		return fmt.Errorf("%w: ring count %d exceeds %d", ErrInvalidField, s.Count, MaxRings)
	case s.Spacing < 0:
		return fmt.Errorf("%w: negative spacing %g", ErrInvalidField, s.Spacing)
	case s.TubeRadius <= 0:
		return fmt.Errorf("%w: tube radius %g must be positive", ErrInvalidField, s.TubeRadius)
	case s.TubeRadius >= s.MajorRadius:
		return fmt.Errorf("%w: tube radius %g must be smaller than major radius %g",
			ErrInvalidField, s.TubeRadius, s.MajorRadius)
	}
	return nil
}

// RingField is the ordered sequence of rings the craft flies through.
type RingField struct {
	rings []Ring
}

// GenerateField builds a field from spec. Ring i sits at forward coordinate
// StartOffset - i*Spacing and alternates between the two altitudes by parity.
func GenerateField(spec FieldSpec) (*RingField, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	rings := make([]Ring, spec.Count)
	for i := range rings {
		alt := spec.AltitudeA
		if i%2 == 1 {
			alt = spec.AltitudeB
		}
		rings[i] = Ring{
			Index:       i,
			Center:      Vec3{X: 0, Y: alt, Z: spec.StartOffset - float64(i)*spec.Spacing},
			MajorRadius: spec.MajorRadius,
			TubeRadius:  spec.TubeRadius,
		}
	}

	return &RingField{rings: rings}, nil
}

// ResetChecks marks every ring as not yet passed.
func (f *RingField) ResetChecks() {
	for i := range f.rings {
		f.rings[i].Checked = false
	}
}

// Len returns the number of rings.
func (f *RingField) Len() int {
	return len(f.rings)
}

// At returns a pointer to ring i for in-place judging.
func (f *RingField) At(i int) *Ring {
	return &f.rings[i]
}

// Rings returns a copy of the rings for read-only consumers.
func (f *RingField) Rings() []Ring {
	out := make([]Ring, len(f.rings))
	copy(out, f.rings)
	return out
}

// Remaining returns how many rings have not been passed yet.
func (f *RingField) Remaining() int {
	n := 0
	for _, r := range f.rings {
		if !r.Checked {
			n++
		}
	}
	return n
}

// Next returns the index of the first unchecked ring still ahead of forward
// coordinate z, or -1 when there is none.
func (f *RingField) Next(z float64) int {
	for i, r := range f.rings {
		if !r.Checked && r.Center.Z <= z {
			return i
		}
	}
	return -1
}
