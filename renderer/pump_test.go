package renderer

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/achilleasa/eglview/viewer"
)

// A viewer replaying a scripted sequence of reference times.
type scriptedViewer struct {
	times  func(frame int) float64
	doneAt int

	frame  int
	phases []string
	stamp  viewer.FrameStamp
	err    error

	// Cleared if the phases of a frame run out of order.
	orderOK bool
}

func newScriptedViewer(times func(frame int) float64) *scriptedViewer {
	return &scriptedViewer{times: times, doneAt: -1, orderOK: true}
}

func (v *scriptedViewer) Done() bool {
	return v.doneAt >= 0 && v.frame >= v.doneAt
}

func (v *scriptedViewer) Advance() {
	v.phases = v.phases[:0]
	v.phases = append(v.phases, "advance")
	v.frame++
	v.stamp = viewer.FrameStamp{
		FrameNumber:   uint64(v.frame),
		ReferenceTime: v.times(v.frame),
	}
}

func (v *scriptedViewer) EventTraversal()  { v.phases = append(v.phases, "event") }
func (v *scriptedViewer) UpdateTraversal() { v.phases = append(v.phases, "update") }

func (v *scriptedViewer) RenderingTraversals() error {
	v.phases = append(v.phases, "render")
	exp := []string{"advance", "event", "update", "render"}
	for i := range exp {
		if v.phases[i] != exp[i] {
			v.orderOK = false
		}
	}
	return v.err
}

func (v *scriptedViewer) FrameStamp() viewer.FrameStamp {
	return v.stamp
}

// Frame n (counting from 1) is stamped at (n-1)*dt.
func constantRate(dt float64) func(int) float64 {
	return func(frame int) float64 {
		return float64(frame-1) * dt
	}
}

func TestFrameTimingBuffer(t *testing.T) {
	b := NewFrameTimingBuffer(3)
	if b.Len() != 3 || b.Mean() != 0 {
		t.Fatalf("expected a zero-filled buffer of 3 samples; got len %d mean %f", b.Len(), b.Mean())
	}

	type spec struct {
		push    float64
		expMean float64
		expHead float64
		expTail float64
	}
	specs := []spec{
		{3, 1, 3, 0},
		{6, 3, 6, 0},
		{9, 6, 9, 3},
		// 3 is evicted
		{12, 9, 12, 6},
	}

	for index, s := range specs {
		b.Push(s.push)
		if b.Len() != 3 {
			t.Fatalf("[spec %d] expected buffer length to stay 3; got %d", index, b.Len())
		}
		if b.Mean() != s.expMean {
			t.Fatalf("[spec %d] expected mean %f; got %f", index, s.expMean, b.Mean())
		}
		if b.At(0) != s.expHead || b.At(2) != s.expTail {
			t.Fatalf("[spec %d] expected front %f and back %f; got %f and %f", index, s.expHead, s.expTail, b.At(0), b.At(2))
		}
	}

	if NewFrameTimingBuffer(0).Len() != 1 {
		t.Fatal("expected capacity to be raised to 1")
	}
}

func TestFramePumpReportCadence(t *testing.T) {
	const samples = 10

	var reports []FrameReport
	opts := Options{
		Samples:   samples,
		MaxFrames: 4*(samples+1) + 3,
		OnReport:  func(r FrameReport) { reports = append(reports, r) },
	}
	pump, err := NewFramePump(opts)
	if err != nil {
		t.Fatal(err)
	}

	v := newScriptedViewer(constantRate(0.02))
	for frame := 1; frame <= int(opts.MaxFrames); frame++ {
		before := len(reports)
		if err := pump.Step(v); err != nil {
			t.Fatal(err)
		}
		if pump.Timings().Len() != samples {
			t.Fatalf("[frame %d] expected timing buffer size %d; got %d", frame, samples, pump.Timings().Len())
		}

		expReport := frame%(samples+1) == 0
		gotReport := len(reports) != before
		if expReport != gotReport {
			t.Fatalf("[frame %d] expected report: %t; got report: %t", frame, expReport, gotReport)
		}
	}

	if len(reports) != 4 {
		t.Fatalf("expected 4 reports; got %d", len(reports))
	}
	for index, r := range reports {
		if r.Frame != uint64((index+1)*(samples+1)) {
			t.Fatalf("[report %d] expected report at frame %d; got %d", index, (index+1)*(samples+1), r.Frame)
		}
		if math.Abs(r.AvgFrameTime-0.02) > 1e-9 || math.Abs(r.FPS-50) > 1e-6 {
			t.Fatalf("[report %d] expected avg 0.02s / 50 FPS; got %v", index, r)
		}
	}
	if !v.orderOK {
		t.Fatal("expected phases to run in advance/event/update/render order")
	}
}

func TestFramePumpSixtyFPS(t *testing.T) {
	var reports []FrameReport
	opts := DefaultOptions()
	opts.MaxFrames = DefaultSamples + 5
	opts.OnReport = func(r FrameReport) { reports = append(reports, r) }

	pump, err := NewFramePump(opts)
	if err != nil {
		t.Fatal(err)
	}

	// 0.0, 0.016, 0.033, 0.05, ...
	v := newScriptedViewer(func(frame int) float64 {
		return math.Floor(float64(frame-1)*1000.0/60.0) / 1000.0
	})
	if err = pump.Run(context.Background(), v); err != nil {
		t.Fatal(err)
	}

	if got := pump.Stats().Frames; got != DefaultSamples+5 {
		t.Fatalf("expected %d frames; got %d", DefaultSamples+5, got)
	}
	if len(reports) != 1 {
		t.Fatalf("expected a single report; got %d", len(reports))
	}
	r := reports[0]
	if r.Frame != DefaultSamples+1 {
		t.Fatalf("expected report at frame %d; got %d", DefaultSamples+1, r.Frame)
	}
	if math.Abs(r.AvgFrameTime-1.0/60.0) > 1e-4 {
		t.Fatalf("expected avg frame time ~0.0167s; got %f", r.AvgFrameTime)
	}
	if math.Abs(r.FPS-60) > 0.5 {
		t.Fatalf("expected ~60 FPS; got %f", r.FPS)
	}
}

func TestFramePumpDegenerateStamps(t *testing.T) {
	var reports []FrameReport
	pump, err := NewFramePump(Options{
		Samples:  4,
		OnReport: func(r FrameReport) { reports = append(reports, r) },
	})
	if err != nil {
		t.Fatal(err)
	}

	// A frozen clock yields zero deltas
	v := newScriptedViewer(func(int) float64 { return 0 })
	for i := 0; i < 10; i++ {
		if err := pump.Step(v); err != nil {
			t.Fatal(err)
		}
	}

	if len(reports) != 0 {
		t.Fatalf("expected degenerate reports to be skipped; got %v", reports)
	}
	if got := pump.Stats().SkippedReports; got != 2 {
		t.Fatalf("expected 2 skipped reports; got %d", got)
	}
}

func TestFramePumpNegativeDeltaIsClamped(t *testing.T) {
	pump, err := NewFramePump(Options{Samples: 2})
	if err != nil {
		t.Fatal(err)
	}

	times := []float64{1.0, 0.5}
	v := newScriptedViewer(func(frame int) float64 { return times[frame-1] })
	for range times {
		if err := pump.Step(v); err != nil {
			t.Fatal(err)
		}
	}

	if got := pump.Timings().At(0); got != 0 {
		t.Fatalf("expected negative delta to be clamped to 0; got %f", got)
	}
	if got := pump.Timings().At(1); got != 1.0 {
		t.Fatalf("expected first delta to be 1.0; got %f", got)
	}
}

func TestFramePumpTermination(t *testing.T) {
	pump, err := NewFramePump(Options{Samples: 5})
	if err != nil {
		t.Fatal(err)
	}

	v := newScriptedViewer(constantRate(0.01))
	v.doneAt = 7
	if err = pump.Run(context.Background(), v); err != nil {
		t.Fatal(err)
	}
	if got := pump.Stats().Frames; got != 7 {
		t.Fatalf("expected pump to stop after 7 frames; got %d", got)
	}

	// A cancelled context stops the pump before the next frame
	pump, _ = NewFramePump(Options{Samples: 5})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err = pump.Run(ctx, newScriptedViewer(constantRate(0.01))); err != nil {
		t.Fatalf("expected cancellation not to be an error; got %v", err)
	}
	if got := pump.Stats().Frames; got != 0 {
		t.Fatalf("expected no frames after cancellation; got %d", got)
	}
}

func TestFramePumpRenderError(t *testing.T) {
	pump, err := NewFramePump(Options{Samples: 5})
	if err != nil {
		t.Fatal(err)
	}

	renderErr := errors.New("render failed")
	v := newScriptedViewer(constantRate(0.01))
	v.err = renderErr
	if err = pump.Run(context.Background(), v); err != renderErr {
		t.Fatalf("expected render error; got %v", err)
	}
	if got := pump.Stats().Frames; got != 0 {
		t.Fatalf("expected failed frames not to be recorded; got %d", got)
	}
}

func TestFramePumpInvalidOptions(t *testing.T) {
	negative := -1

	type spec struct {
		samples uint32
		expErr  error
	}
	specs := []spec{
		{0, ErrInvalidOptions},
		{1, nil},
		{DefaultSamples, nil},
		{MaxSamples, nil},
		{MaxSamples + 1, ErrInvalidOptions},
		// A wrapped negative window must not allocate gigabytes of samples
		{uint32(negative), ErrInvalidOptions},
	}

	for index, s := range specs {
		pump, err := NewFramePump(Options{Samples: s.samples})
		if !errors.Is(err, s.expErr) {
			t.Fatalf("[spec %d] expected error %v; got %v", index, s.expErr, err)
		}
		if s.expErr == nil && pump.Timings().Len() != int(s.samples) {
			t.Fatalf("[spec %d] expected a window of %d samples; got %d", index, s.samples, pump.Timings().Len())
		}
	}
}

func TestRunStats(t *testing.T) {
	pump, err := NewFramePump(Options{Samples: 2})
	if err != nil {
		t.Fatal(err)
	}

	// Deltas: 0, 0.125, 0.125 | 0.25, 0.25, 0.25
	times := []float64{0, 0.125, 0.25, 0.5, 0.75, 1.0}
	v := newScriptedViewer(func(frame int) float64 { return times[frame-1] })
	for range times {
		if err := pump.Step(v); err != nil {
			t.Fatal(err)
		}
	}

	stats := pump.Stats()
	if stats.Reports != 2 {
		t.Fatalf("expected 2 reports; got %d", stats.Reports)
	}
	if stats.MinAvgFrameTime != 0.125 || stats.MaxAvgFrameTime != 0.25 {
		t.Fatalf("unexpected min/max averages %f/%f", stats.MinAvgFrameTime, stats.MaxAvgFrameTime)
	}
	if stats.OverallFPS() != 6 {
		t.Fatalf("unexpected overall FPS %f", stats.OverallFPS())
	}
	if got := stats.LastReport.String(); got != "[Avg. Frame Time] 0.25s [FPS] 4" {
		t.Fatalf("unexpected report text %q", got)
	}
}
