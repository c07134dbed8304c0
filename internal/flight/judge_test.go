package flight

import "testing"

func scenarioRing() Ring {
	return Ring{
		Index:       0,
		Center:      Vec3{X: 0, Y: 0, Z: -150},
		MajorRadius: 8,
		TubeRadius:  0.7,
	}
}

func TestEvaluateScenarios(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		expected Outcome
	}{
		{"clean pass at 5.0", 5.0, OutcomeScored},
		{"rim clip at 8.0", 8.0, OutcomeCrashed},
		{"wide miss at 9.0", 9.0, OutcomeMissed},
		{"dead center", 0, OutcomeScored},
		{"just inside inner", 7.29, OutcomeScored},
		{"just outside outer", 8.71, OutcomeMissed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ring := scenarioRing()
			pos := Vec3{X: 0, Y: tc.distance, Z: -151}

			got := Evaluate(pos, &ring)
			if got != tc.expected {
				t.Errorf("Evaluate() = %v, expected %v", got, tc.expected)
			}
			if !ring.Checked {
				t.Error("ring should be checked after evaluation")
			}
		})
	}
}

func TestEvaluateBelowRing(t *testing.T) {
	// Distance is symmetric: flying under the ring behaves like flying over it.
	ring := scenarioRing()
	if got := Evaluate(Vec3{Y: -9, Z: -151}, &ring); got != OutcomeMissed {
		t.Errorf("Evaluate() below ring = %v, expected Missed", got)
	}
}

func TestEvaluateUsesLateralAxis(t *testing.T) {
	ring := scenarioRing()
	// 3-4-5 triangle in the X/Y plane.
	if got := Evaluate(Vec3{X: 3, Y: 4, Z: -151}, &ring); got != OutcomeScored {
		t.Errorf("Evaluate() = %v, expected Scored", got)
	}
}

func TestEvaluatePreconditions(t *testing.T) {
	t.Run("not yet crossed", func(t *testing.T) {
		ring := scenarioRing()
		if got := Evaluate(Vec3{Z: -149}, &ring); got != OutcomeNone {
			t.Errorf("Evaluate() = %v, expected None", got)
		}
		if ring.Checked {
			t.Error("ring ahead of the craft must not be checked")
		}
	})

	t.Run("exactly on the plane", func(t *testing.T) {
		ring := scenarioRing()
		if got := Evaluate(Vec3{Z: -150}, &ring); got != OutcomeNone {
			t.Errorf("Evaluate() = %v, expected None", got)
		}
		if ring.Checked {
			t.Error("ring on the craft plane must not be checked")
		}
	})

	t.Run("already checked", func(t *testing.T) {
		ring := scenarioRing()
		ring.Checked = true
		if got := Evaluate(Vec3{Y: 8, Z: -151}, &ring); got != OutcomeNone {
			t.Errorf("Evaluate() = %v, expected None", got)
		}
	})
}

func TestEvaluateOnlyOnce(t *testing.T) {
	ring := scenarioRing()
	pos := Vec3{Y: 5, Z: -151}

	if got := Evaluate(pos, &ring); got != OutcomeScored {
		t.Fatalf("first Evaluate() = %v, expected Scored", got)
	}
	if got := Evaluate(pos, &ring); got != OutcomeNone {
		t.Errorf("second Evaluate() = %v, expected None", got)
	}
}

func TestClassifyBoundaries(t *testing.T) {
	const inner, outer = 7.3, 8.7

	tests := []struct {
		d        float64
		expected Outcome
	}{
		{inner, OutcomeCrashed},
		{outer, OutcomeCrashed},
		{(inner + outer) / 2, OutcomeCrashed},
		{inner - 1e-9, OutcomeScored},
		{outer + 1e-9, OutcomeMissed},
	}

	for _, tc := range tests {
		if got := Classify(tc.d, inner, outer); got != tc.expected {
			t.Errorf("Classify(%v) = %v, expected %v", tc.d, got, tc.expected)
		}
	}
}

func TestClassifyExhaustive(t *testing.T) {
	const inner, outer = 7.3, 8.7

	for i := 0; i <= 2000; i++ {
		d := float64(i) / 100
		got := Classify(d, inner, outer)

		var want Outcome
		switch {
		case d < inner:
			want = OutcomeScored
		case d > outer:
			want = OutcomeMissed
		default:
			want = OutcomeCrashed
		}
		if got != want {
			t.Fatalf("Classify(%v) = %v, expected %v", d, got, want)
		}
	}
}

func TestOutcomeString(t *testing.T) {
	if OutcomeScored.String() != "Scored" || OutcomeCrashed.String() != "Crashed" ||
		OutcomeMissed.String() != "Missed" || OutcomeNone.String() != "None" {
		t.Error("unexpected outcome names")
	}
	if Outcome(42).String() != "Unknown" {
		t.Error("unknown outcome should print as Unknown")
	}
}
