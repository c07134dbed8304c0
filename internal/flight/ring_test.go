package flight

import (
	"errors"
	"math"
	"testing"
)

func testFieldSpec() FieldSpec {
	return FieldSpec{
		Count:       6,
		Spacing:     150,
		StartOffset: -150,
		AltitudeA:   0,
		AltitudeB:   12,
		MajorRadius: 8,
		TubeRadius:  0.7,
	}
}

func TestGenerateFieldLayout(t *testing.T) {
	field, err := GenerateField(testFieldSpec())
	if err != nil {
		t.Fatalf("GenerateField() failed: %v", err)
	}

	if field.Len() != 6 {
		t.Fatalf("Len() = %d, expected 6", field.Len())
	}

	for i, r := range field.Rings() {
		if r.Index != i {
			t.Errorf("ring %d has index %d", i, r.Index)
		}
		wantZ := -150 - float64(i)*150
		if r.Center.Z != wantZ {
			t.Errorf("ring %d Z = %f, expected %f", i, r.Center.Z, wantZ)
		}
		wantY := 0.0
		if i%2 == 1 {
			wantY = 12
		}
		if r.Center.Y != wantY {
			t.Errorf("ring %d Y = %f, expected %f", i, r.Center.Y, wantY)
		}
		if r.Center.X != 0 {
			t.Errorf("ring %d X = %f, expected 0", i, r.Center.X)
		}
		if r.Checked {
			t.Errorf("ring %d should start unchecked", i)
		}
	}
}

func TestGenerateFieldDeterministic(t *testing.T) {
	a, err := GenerateField(testFieldSpec())
	if err != nil {
		t.Fatalf("GenerateField() failed: %v", err)
	}
	b, err := GenerateField(testFieldSpec())
	if err != nil {
		t.Fatalf("GenerateField() failed: %v", err)
	}

	ra, rb := a.Rings(), b.Rings()
	for i := range ra {
		if ra[i] != rb[i] {
			t.Errorf("ring %d differs between runs: %+v vs %+v", i, ra[i], rb[i])
		}
	}
}

func TestRingRadii(t *testing.T) {
	r := Ring{MajorRadius: 8, TubeRadius: 0.7}

	if math.Abs(r.InnerRadius()-7.3) > 1e-9 {
		t.Errorf("InnerRadius() = %f, expected 7.3", r.InnerRadius())
	}
	if math.Abs(r.OuterRadius()-8.7) > 1e-9 {
		t.Errorf("OuterRadius() = %f, expected 8.7", r.OuterRadius())
	}
}

func TestGenerateFieldRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FieldSpec)
	}{
		{"negative count", func(s *FieldSpec) { s.Count = -1 }},
		{"count over limit", func(s *FieldSpec) { s.Count = MaxRings + 1 }},
		{"huge count", func(s *FieldSpec) { s.Count = math.MaxInt }},
		{"negative spacing", func(s *FieldSpec) { s.Spacing = -10 }},
		{"tube equals major", func(s *FieldSpec) { s.TubeRadius = s.MajorRadius }},
		{"tube larger than major", func(s *FieldSpec) { s.TubeRadius = 9 }},
		{"zero tube", func(s *FieldSpec) { s.TubeRadius = 0 }},
		{"nan spacing", func(s *FieldSpec) { s.Spacing = math.NaN() }},
		{"infinite altitude", func(s *FieldSpec) { s.AltitudeB = math.Inf(1) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec := testFieldSpec()
			tc.mutate(&spec)

			field, err := GenerateField(spec)
			if err == nil {
				t.Fatal("GenerateField() should fail")
			}
			if !errors.Is(err, ErrInvalidField) {
				t.Errorf("error should wrap ErrInvalidField, got %v", err)
			}
			if field != nil {
				t.Error("no field should be returned on error")
			}
		})
	}
}

func TestGenerateFieldEmpty(t *testing.T) {
	spec := testFieldSpec()
	spec.Count = 0

	field, err := GenerateField(spec)
	if err != nil {
		t.Fatalf("zero rings should be valid: %v", err)
	}
	if field.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", field.Len())
	}
	if field.Next(0) != -1 {
		t.Error("Next() on an empty field should be -1")
	}
}

func TestResetChecks(t *testing.T) {
	field, err := GenerateField(testFieldSpec())
	if err != nil {
		t.Fatalf("GenerateField() failed: %v", err)
	}

	for i := 0; i < field.Len(); i += 2 {
		field.At(i).Checked = true
	}
	if field.Remaining() != 3 {
		t.Errorf("Remaining() = %d, expected 3", field.Remaining())
	}

	before := field.Rings()
	field.ResetChecks()

	for i, r := range field.Rings() {
		if r.Checked {
			t.Errorf("ring %d still checked after ResetChecks", i)
		}
		before[i].Checked = false
		if r != before[i] {
			t.Errorf("ring %d geometry changed by ResetChecks", i)
		}
	}
}

func TestRingsReturnsCopy(t *testing.T) {
	field, err := GenerateField(testFieldSpec())
	if err != nil {
		t.Fatalf("GenerateField() failed: %v", err)
	}

	rings := field.Rings()
	rings[0].Checked = true
	rings[0].Center.Y = 99

	if field.At(0).Checked || field.At(0).Center.Y == 99 {
		t.Error("mutating Rings() result should not affect the field")
	}
}

func TestFieldNext(t *testing.T) {
	field, err := GenerateField(testFieldSpec())
	if err != nil {
		t.Fatalf("GenerateField() failed: %v", err)
	}

	if got := field.Next(0); got != 0 {
		t.Errorf("Next(0) = %d, expected 0", got)
	}
	if got := field.Next(-200); got != 1 {
		t.Errorf("Next(-200) = %d, expected 1", got)
	}

	field.At(1).Checked = true
	if got := field.Next(-200); got != 2 {
		t.Errorf("Next(-200) with ring 1 checked = %d, expected 2", got)
	}
	if got := field.Next(-10000); got != -1 {
		t.Errorf("Next past the field = %d, expected -1", got)
	}
}
