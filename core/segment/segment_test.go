package segment

import (
	"testing"
	"time"
)

// fakeClock returns a clock function and a step function that moves it.
func fakeClock() (func() time.Time, func(time.Duration)) {
	now := time.Unix(1000, 0)
	return func() time.Time { return now }, func(d time.Duration) { now = now.Add(d) }
}

func TestFirstTickActivatesIndexZero(t *testing.T) {
	s := NewScheduler(5)
	clock, _ := fakeClock()
	s.now = clock

	if s.Index() != -1 {
		t.Fatalf("expected uninitialized sentinel, got %d", s.Index())
	}
	switched := -1
	s.OnSwitch = func(i int) { switched = i }
	s.Tick()
	if s.Index() != 0 || switched != 0 {
		t.Fatalf("expected first tick to activate index 0, got index=%d switched=%d", s.Index(), switched)
	}
}

func TestRotationPeriodicity(t *testing.T) {
	s := NewScheduler(5)
	clock, step := fakeClock()
	s.now = clock
	s.Tick() // consume the sentinel

	for n := 1; n <= 23; n++ {
		step(DefaultDuration)
		s.Tick()
		if want := n % 5; s.Index() != want {
			t.Fatalf("after %d durations expected index %d, got %d", n, want, s.Index())
		}
	}
}

func TestNoAdvanceBeforeDuration(t *testing.T) {
	s := NewScheduler(5)
	clock, step := fakeClock()
	s.now = clock
	s.Tick()

	switches := 0
	s.OnSwitch = func(int) { switches++ }
	step(DefaultDuration - time.Millisecond)
	s.Tick()
	if s.Index() != 0 || switches != 0 {
		t.Fatalf("advanced early: index=%d switches=%d", s.Index(), switches)
	}
	step(time.Millisecond)
	s.Tick()
	if s.Index() != 1 || switches != 1 {
		t.Fatalf("expected advance at duration boundary: index=%d switches=%d", s.Index(), switches)
	}
}

func TestManualAdvance(t *testing.T) {
	s := NewScheduler(3)
	clock, step := fakeClock()
	s.now = clock

	// Manual advance from uninitialized lands on index 0.
	s.Advance()
	if s.Index() != 0 {
		t.Fatalf("expected manual advance from sentinel to land on 0, got %d", s.Index())
	}

	// Manual advance ignores elapsed time and wraps.
	step(time.Second)
	for want := 1; want <= 4; want++ {
		s.Advance()
		if s.Index() != want%3 {
			t.Fatalf("expected index %d, got %d", want%3, s.Index())
		}
	}
}

func TestManualAdvanceResetsSegmentClock(t *testing.T) {
	s := NewScheduler(2)
	clock, step := fakeClock()
	s.now = clock
	s.Tick()
	step(7 * time.Second)
	s.Advance()
	if got := s.LocalTime(); got != 0 {
		t.Fatalf("expected local time reset on advance, got %v", got)
	}
	step(3 * time.Second)
	if got := s.LocalTime(); got != 3 {
		t.Fatalf("expected local time 3s, got %v", got)
	}
}

func TestSetDuration(t *testing.T) {
	s := NewScheduler(2)
	clock, step := fakeClock()
	s.now = clock
	s.Tick()

	s.SetDuration(5 * time.Second)
	s.SetDuration(0)                // ignored
	s.SetDuration(-3 * time.Second) // ignored
	if s.Duration() != 5*time.Second {
		t.Fatalf("expected 5s duration, got %v", s.Duration())
	}
	step(5 * time.Second)
	s.Tick()
	if s.Index() != 1 {
		t.Fatalf("expected advance after shortened duration, got %d", s.Index())
	}
}

func TestZeroCountIsInert(t *testing.T) {
	s := NewScheduler(0)
	clock, _ := fakeClock()
	s.now = clock
	s.Tick()
	s.Advance()
	if s.Index() != -1 {
		t.Fatalf("expected scheduler with no visualizers to stay uninitialized, got %d", s.Index())
	}
}
