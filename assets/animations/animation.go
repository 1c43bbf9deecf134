package animations

import "time"

// Animation cycles through a fixed number of frames, advancing at most once
// per Interval of simulated time. Several sequences may share one frame
// counter, so the counter lives with the caller.
type Animation struct {
	Length   int
	Interval time.Duration
}

// Advance returns the next frame index and its change time when more than
// Interval has passed since last. ok is false when the frame stays.
func (a Animation) Advance(frame int, last, now time.Duration) (next int, changed time.Duration, ok bool) {
	if a.Length <= 0 || now-last <= a.Interval {
		return frame, last, false
	}
	return (frame + 1) % a.Length, now, true
}

func NewAnimation(length int, interval time.Duration) Animation {
	return Animation{
		Length:   length,
		Interval: interval,
	}
}
