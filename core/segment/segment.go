// Package segment rotates the display through a fixed sequence of
// visualizers, one segment at a time.
package segment

import "time"

// DefaultDuration is the time budget of one segment before the display
// rotates on its own.
const DefaultDuration = 20 * time.Second

// uninitialized is the sentinel index consumed on the first Tick.
const uninitialized = -1

// Scheduler is a two-state machine: Uninitialized until the first Tick, then
// Active(index, start). It advances when the segment duration elapses or on
// an explicit Advance, and fires OnSwitch exactly once per transition so the
// owner can re-randomize parameters and refresh the overlay label before any
// rendering reads the new state.
type Scheduler struct {
	// Count is the number of visualizers in the rotation.
	Count int
	// OnSwitch is called with the new index on every transition.
	OnSwitch func(index int)

	now   func() time.Time
	index int
	start time.Time
	dur   time.Duration
}

func NewScheduler(count int) *Scheduler {
	return &Scheduler{
		Count: count,
		now:   time.Now,
		index: uninitialized,
		dur:   DefaultDuration,
	}
}

// Index returns the active visualizer index, or -1 before the first Tick.
func (s *Scheduler) Index() int { return s.index }

// Duration returns the current per-segment time budget.
func (s *Scheduler) Duration() time.Duration { return s.dur }

// SetDuration overrides the per-segment time budget. Non-positive values are
// ignored.
func (s *Scheduler) SetDuration(d time.Duration) {
	if d > 0 {
		s.dur = d
	}
}

// Tick performs the per-frame transition check. The first call activates
// index 0; afterwards the index advances whenever the elapsed segment time
// reaches the duration.
func (s *Scheduler) Tick() {
	if s.Count <= 0 {
		return
	}
	now := s.now()
	if s.index == uninitialized {
		s.switchTo(0, now)
		return
	}
	if now.Sub(s.start) >= s.dur {
		s.switchTo((s.index+1)%s.Count, now)
	}
}

// Advance moves to the next visualizer immediately, regardless of elapsed
// time. From the uninitialized state it activates index 0.
func (s *Scheduler) Advance() {
	if s.Count <= 0 {
		return
	}
	next := 0
	if s.index != uninitialized {
		next = (s.index + 1) % s.Count
	}
	s.switchTo(next, s.now())
}

// LocalTime returns seconds since the active segment began. Always >= 0;
// zero while uninitialized.
func (s *Scheduler) LocalTime() float64 {
	if s.index == uninitialized {
		return 0
	}
	d := s.now().Sub(s.start).Seconds()
	if d < 0 {
		return 0
	}
	return d
}

func (s *Scheduler) switchTo(index int, now time.Time) {
	s.index = index
	s.start = now
	if s.OnSwitch != nil {
		s.OnSwitch(index)
	}
}
