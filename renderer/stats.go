package renderer

import (
	"fmt"
	"math"
)

// FrameTimingBuffer is a fixed-size window of frame times in seconds. It is
// created full of zeros; every Push evicts the oldest sample so its length
// never changes.
type FrameTimingBuffer struct {
	samples []float64

	// Index of the oldest sample; the next Push overwrites it.
	cursor int
}

// Create a zero-filled buffer holding capacity samples. Capacities below 1
// are raised to 1.
func NewFrameTimingBuffer(capacity int) *FrameTimingBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &FrameTimingBuffer{
		samples: make([]float64, capacity),
	}
}

// Insert a sample at the front and evict the sample at the back.
func (b *FrameTimingBuffer) Push(sample float64) {
	b.samples[b.cursor] = sample
	b.cursor = (b.cursor + 1) % len(b.samples)
}

// Get the number of samples; always equal to the buffer capacity.
func (b *FrameTimingBuffer) Len() int {
	return len(b.samples)
}

// Get a sample by age; index 0 is the most recent sample.
func (b *FrameTimingBuffer) At(index int) float64 {
	n := len(b.samples)
	return b.samples[((b.cursor-1-index)%n+n)%n]
}

// Get the arithmetic mean of all samples.
func (b *FrameTimingBuffer) Mean() float64 {
	var sum float64
	for _, s := range b.samples {
		sum += s
	}
	return sum / float64(len(b.samples))
}

// A periodic frame timing report.
type FrameReport struct {
	// The frame (counting from 1) that triggered the report.
	Frame uint64

	// Rolling average frame time in seconds.
	AvgFrameTime float64

	// Frames per second derived from AvgFrameTime.
	FPS float64
}

// Implements Stringer.
func (r FrameReport) String() string {
	return fmt.Sprintf("[Avg. Frame Time] %gs [FPS] %g", r.AvgFrameTime, r.FPS)
}

// Statistics collected over a frame pump run.
type RunStats struct {
	// Number of completed frames.
	Frames uint64

	// Emitted and skipped (degenerate) reports.
	Reports        int
	SkippedReports int

	LastReport FrameReport

	// Best and worst rolling averages seen.
	MinAvgFrameTime float64
	MaxAvgFrameTime float64

	// Reference time of the last frame.
	ElapsedTime float64
}

// Get the average FPS over the whole run.
func (s RunStats) OverallFPS() float64 {
	if s.ElapsedTime <= 0 {
		return 0
	}
	return float64(s.Frames) / s.ElapsedTime
}

func (s *RunStats) addReport(r FrameReport) {
	if s.Reports == 0 || r.AvgFrameTime < s.MinAvgFrameTime {
		s.MinAvgFrameTime = r.AvgFrameTime
	}
	if s.Reports == 0 || r.AvgFrameTime > s.MaxAvgFrameTime {
		s.MaxAvgFrameTime = r.AvgFrameTime
	}
	s.Reports++
	s.LastReport = r
}

func isDegenerate(avg float64) bool {
	return avg <= 0 || math.IsNaN(avg) || math.IsInf(avg, 0)
}
