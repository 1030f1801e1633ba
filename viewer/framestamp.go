package viewer

import "time"

// A snapshot of the viewer's time taken once per frame.
type FrameStamp struct {
	FrameNumber uint64

	// Seconds since the viewer was started. Never decreases between frames.
	ReferenceTime float64

	// Simulation time in seconds; tracks ReferenceTime unless overridden by
	// the caller of AdvanceTo.
	SimulationTime float64
}

// A source of reference time in seconds.
type Clock func() float64

// Get a clock that reports the wall time elapsed since the call.
func WallClock() Clock {
	start := time.Now()
	return func() float64 {
		return time.Since(start).Seconds()
	}
}
