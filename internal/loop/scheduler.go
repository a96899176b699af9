package loop

import "time"

// Scheduler throttles frame callbacks to a fixed cadence. A frame is processed
// only if at least Interval has passed since the last processed frame; early
// frames are skipped without catching up.
type Scheduler struct {
	Interval time.Duration

	last    time.Time
	started bool
}

// NewScheduler creates a scheduler for the given cadence.
func NewScheduler(interval time.Duration) *Scheduler {
	return &Scheduler{Interval: interval}
}

// Frame reports whether the frame arriving at now should run a tick.
// The first frame after creation or Reset always runs.
func (s *Scheduler) Frame(now time.Time) bool {
	if s.started && now.Sub(s.last) < s.Interval {
		return false
	}
	s.last = now
	s.started = true
	return true
}

// Reset forgets the last processed frame.
func (s *Scheduler) Reset() {
	s.started = false
	s.last = time.Time{}
}
