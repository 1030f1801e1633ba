package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/achilleasa/eglview/egl/libegl"
	"github.com/achilleasa/eglview/graphics"
	"github.com/achilleasa/eglview/renderer"
	"github.com/achilleasa/eglview/types"
	"github.com/achilleasa/eglview/viewer"
	"github.com/achilleasa/eglview/viewer/glscene"
	"github.com/urfave/cli"
)

// Rotation speed of the demo scene in radians per second.
const triangleSpeed float32 = 1.0

// Render the demo scene until interrupted and report frame times.
func View(ctx *cli.Context) error {
	setupLogging(ctx)

	flags, err := readUintFlags(ctx, "width", "height", "pbuffer-width", "pbuffer-height", "samples", "frames")
	if err != nil {
		return err
	}

	traits := graphics.DefaultTraits()
	traits.Width = flags["width"]
	traits.Height = flags["height"]
	traits.PbufferWidth = flags["pbuffer-width"]
	traits.PbufferHeight = flags["pbuffer-height"]

	opts := renderer.Options{
		Samples:   flags["samples"],
		MaxFrames: uint64(flags["frames"]),
	}

	clearColor, err := parseColor(ctx.String("clear-color"))
	if err != nil {
		return err
	}

	// GL contexts are bound to the thread that made them current.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	v := viewer.New()
	var pumpViewer renderer.Viewer = v

	var gc graphics.Context
	if ctx.Bool("window") {
		var destroy func()
		gc, pumpViewer, destroy, err = openNativeWindow(traits, v)
		if err != nil {
			return err
		}
		defer destroy()
	} else {
		hw, err := graphics.NewHeadlessWindow(libegl.New(), traits)
		if err != nil {
			return err
		}
		defer hw.Destroy()

		major, minor := hw.Version()
		logger.Noticef("[%s] rendering headless (EGL %d.%d, pbuffer %dx%d, viewport %dx%d)", v.ID, major, minor, traits.PbufferWidth, traits.PbufferHeight, traits.Width, traits.Height)
		gc = hw
	}

	camera := v.Camera()
	camera.SetGraphicsContext(gc)
	camera.SetViewport(viewer.Viewport{Width: traits.Width, Height: traits.Height})
	camera.ClearColor = clearColor

	capture := glscene.NewScreenCapture("capture-%05d.png")
	v.AddEventHandler(capture)
	camera.FinalDrawCallbacks = append(camera.FinalDrawCallbacks, capture.Callback)

	v.SetSceneData(glscene.NewRoot(glscene.NewSpinningTriangle(triangleSpeed)))
	if err = v.Realize(); err != nil {
		return err
	}

	pump, err := renderer.NewFramePump(opts)
	if err != nil {
		return err
	}

	runCtx, cancel := runContext(ctx.Duration("duration"))
	defer cancel()
	stopSignals := closeOnSignal(v)
	defer stopSignals()

	if err = pump.Run(runCtx, pumpViewer); err != nil {
		return err
	}

	if out := ctx.String("capture"); out != "" {
		if err = glscene.Capture(gc, out); err != nil {
			return err
		}
		logger.Noticef("wrote last frame to %s", out)
	}

	displayRunStats(v.ID, pump.Stats())
	return nil
}

func runContext(limit time.Duration) (context.Context, context.CancelFunc) {
	if limit <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), limit)
}

// Push a close request to the viewer when the process is interrupted. The
// returned function stops listening for signals.
func closeOnSignal(v *viewer.Viewer) func() {
	sigCh := make(chan os.Signal, 1)
	doneCh := make(chan struct{})
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigCh:
			logger.Noticef("received %s; stopping", sig)
			v.EventQueue().Push(viewer.Event{Type: viewer.CloseRequest})
		case <-doneCh:
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(doneCh)
	}
}

// Parse a comma-separated RGB or RGBA color.
func parseColor(val string) (types.Vec4, error) {
	color := types.Vec4{0, 0, 0, 1}
	parts := strings.Split(val, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color, fmt.Errorf("invalid color %q: expected r,g,b[,a]", val)
	}

	for i, part := range parts {
		c, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return color, fmt.Errorf("invalid color %q: %s", val, err.Error())
		}
		if c < 0 || c > 1 {
			return color, fmt.Errorf("invalid color %q: components must be in [0, 1]", val)
		}
		color[i] = float32(c)
	}
	return color, nil
}
