package renderer

import (
	"context"

	"github.com/achilleasa/eglview/log"
)

var logger = log.New("renderer")

// FramePump drives the viewer one frame at a time and keeps a rolling
// average of frame times.
type FramePump struct {
	opts    Options
	timings *FrameTimingBuffer

	// Frames since the last report.
	counter uint32

	lastTime float64
	stats    RunStats
}

// Create a new frame pump.
func NewFramePump(opts Options) (*FramePump, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &FramePump{
		opts:    opts,
		timings: NewFrameTimingBuffer(int(opts.Samples)),
	}, nil
}

// Run frames until the viewer is done, ctx is cancelled or the frame limit
// is reached. Termination is only checked between frames. Cancellation is
// not treated as an error; errors from the rendering phase abort the run.
func (p *FramePump) Run(ctx context.Context, v Viewer) error {
	for !v.Done() {
		if ctx.Err() != nil {
			logger.Infof("frame pump cancelled after %d frames", p.stats.Frames)
			return nil
		}
		if p.opts.MaxFrames != 0 && p.stats.Frames >= p.opts.MaxFrames {
			logger.Infof("frame limit of %d reached", p.opts.MaxFrames)
			return nil
		}

		if err := p.Step(v); err != nil {
			return err
		}
	}

	logger.Infof("viewer done after %d frames", p.stats.Frames)
	return nil
}

// Run a single frame and update the timing statistics.
func (p *FramePump) Step(v Viewer) error {
	v.Advance()
	v.EventTraversal()
	v.UpdateTraversal()
	if err := v.RenderingTraversals(); err != nil {
		return err
	}

	p.record(v.FrameStamp().ReferenceTime)
	return nil
}

func (p *FramePump) record(t float64) {
	delta := t - p.lastTime
	if delta < 0 {
		delta = 0
	}
	p.timings.Push(delta)
	p.lastTime = t

	p.stats.Frames++
	p.stats.ElapsedTime = t

	p.counter++
	if p.counter <= p.opts.Samples {
		return
	}
	p.counter = 0

	avg := p.timings.Mean()
	if isDegenerate(avg) {
		p.stats.SkippedReports++
		logger.Warningf("skipping frame time report at frame %d; degenerate average frame time %g", p.stats.Frames, avg)
		return
	}

	report := FrameReport{
		Frame:        p.stats.Frames,
		AvgFrameTime: avg,
		FPS:          1.0 / avg,
	}
	p.stats.addReport(report)

	logger.Notice(report.String())
	if p.opts.OnReport != nil {
		p.opts.OnReport(report)
	}
}

// Get the frame time window.
func (p *FramePump) Timings() *FrameTimingBuffer {
	return p.timings
}

// Get the statistics for the frames run so far.
func (p *FramePump) Stats() RunStats {
	return p.stats
}
