package renderer

import "fmt"

const (
	// The default number of frame time samples used for the rolling average.
	DefaultSamples = 1000

	// The largest supported rolling window.
	MaxSamples = 1 << 20
)

// Invoked with each frame timing report.
type ReportFunc func(FrameReport)

type Options struct {
	// Size of the rolling frame time window. A report is emitted every
	// Samples+1 frames.
	Samples uint32

	// Stop after this many frames; 0 runs until the viewer is done.
	MaxFrames uint64

	// Optional report sink; reports are always logged.
	OnReport ReportFunc
}

// Get the default options.
func DefaultOptions() Options {
	return Options{
		Samples: DefaultSamples,
	}
}

// Validate options.
func (opts Options) Validate() error {
	if opts.Samples == 0 {
		return fmt.Errorf("%w: sample window must contain at least one sample", ErrInvalidOptions)
	}
	if opts.Samples > MaxSamples {
		return fmt.Errorf("%w: sample window of %d exceeds %d samples", ErrInvalidOptions, opts.Samples, MaxSamples)
	}
	return nil
}
