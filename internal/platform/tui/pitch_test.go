package tui

import "testing"

func TestPitchLatchHolds(t *testing.T) {
	l := NewPitchLatch(3)
	l.Press(-1)

	for i := 0; i < 3; i++ {
		if got := l.Next(); got != -1 {
			t.Fatalf("tick %d: Next() = %f, expected -1", i, got)
		}
	}
	if got := l.Next(); got != 0 {
		t.Errorf("Next() after hold = %f, expected 0", got)
	}
}

func TestPitchLatchRepeatRefreshes(t *testing.T) {
	l := NewPitchLatch(2)
	l.Press(1)
	l.Next()
	l.Press(1) // Key repeat

	if l.Next() != 1 || l.Next() != 1 {
		t.Error("a repeat should restart the hold")
	}
	if l.Next() != 0 {
		t.Error("hold should expire after the repeat's ticks")
	}
}

func TestPitchLatchReversal(t *testing.T) {
	l := NewPitchLatch(5)
	l.Press(1)
	l.Next()
	l.Press(-1)

	if got := l.Next(); got != -1 {
		t.Errorf("Next() after reversal = %f, expected -1", got)
	}
}

func TestPitchLatchRelease(t *testing.T) {
	l := NewPitchLatch(5)
	l.Press(1)
	l.Release()

	if got := l.Next(); got != 0 {
		t.Errorf("Next() after Release = %f, expected 0", got)
	}
}

func TestPitchLatchMinimumHold(t *testing.T) {
	l := NewPitchLatch(0)
	l.Press(1)

	if got := l.Next(); got != 1 {
		t.Errorf("zero hold should still apply one tick, got %f", got)
	}
	if got := l.Next(); got != 0 {
		t.Errorf("Next() = %f, expected 0", got)
	}
}
