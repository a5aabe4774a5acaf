package animations

import "time"

// Animation steps a frame index through a contiguous range of atlas cells on
// a repeating timer.
type Animation struct {
	First   int
	Last    int
	Period  time.Duration // time between frame steps
	elapsed time.Duration
	frame   int
	Looped  bool // set once the frame has wrapped from Last to First
}

// Update advances the timer by dt and reports whether the frame stepped.
// The frame steps at most once per call, however many periods dt spans;
// the leftover time is kept modulo Period.
func (a *Animation) Update(dt time.Duration) bool {
	if a.Period <= 0 {
		return false
	}
	a.elapsed += dt
	if a.elapsed < a.Period {
		return false
	}
	a.elapsed %= a.Period

	if a.frame >= a.Last {
		a.frame = a.First
		a.Looped = true
	} else {
		a.frame++
	}
	return true
}

func (a *Animation) Frame() int {
	return a.frame
}

// Elapsed returns the time accumulated towards the next step.
func (a *Animation) Elapsed() time.Duration {
	return a.elapsed
}

// SetFrame jumps to frame without touching the timer.
func (a *Animation) SetFrame(frame int) {
	a.frame = frame
}

func NewAnimation(first, last int, period time.Duration) *Animation {
	return &Animation{
		First:  first,
		Last:   last,
		Period: period,
		frame:  first,
	}
}
