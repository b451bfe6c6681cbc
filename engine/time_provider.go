package engine

import "time"

// Clock is the time source for the frame loop and input hold inference
type Clock interface {
	Now() time.Time
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// FrameTimer measures the variable delta between frames
// Stalls longer than maxDelta (debugger, suspended terminal) are capped so the fixed loop does not spiral
type FrameTimer struct {
	clock    Clock
	last     time.Time
	maxDelta time.Duration
}

// NewFrameTimer starts measuring from the clock's current time
func NewFrameTimer(clock Clock, maxDelta time.Duration) *FrameTimer {
	return &FrameTimer{clock: clock, last: clock.Now(), maxDelta: maxDelta}
}

// Tick returns the time since the previous Tick, capped
func (ft *FrameTimer) Tick() time.Duration {
	now := ft.clock.Now()
	dt := now.Sub(ft.last)
	ft.last = now
	if dt < 0 {
		return 0
	}
	if ft.maxDelta > 0 && dt > ft.maxDelta {
		return ft.maxDelta
	}
	return dt
}
