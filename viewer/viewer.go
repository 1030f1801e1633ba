// Package viewer implements a minimal scene viewer: a camera attached to a
// graphics context, a scene graph and the advance/event/update/render phases
// driven once per frame.
package viewer

import (
	"sync/atomic"

	"github.com/achilleasa/eglview/log"
	"github.com/google/uuid"
)

var logger = log.New("viewer")

// A single-view viewer.
type Viewer struct {
	// A unique id for this viewer run; used to tag log output.
	ID string

	camera   *Camera
	scene    Node
	events   EventQueue
	handlers []EventHandler

	clock    Clock
	stamp    FrameStamp
	done     atomic.Bool
	realized bool
}

// Create a viewer with a default camera and a wall clock.
func New() *Viewer {
	return &Viewer{
		ID:     uuid.New().String(),
		camera: NewCamera(30),
		clock:  WallClock(),
	}
}

func (v *Viewer) Camera() *Camera {
	return v.camera
}

// Set the root node of the scene.
func (v *Viewer) SetSceneData(n Node) {
	v.scene = n
}

func (v *Viewer) SceneData() Node {
	return v.scene
}

// Override the reference time source.
func (v *Viewer) SetClock(clock Clock) {
	v.clock = clock
}

// Register an event handler. Handlers run in registration order.
func (v *Viewer) AddEventHandler(h EventHandler) {
	v.handlers = append(v.handlers, h)
}

// Get the viewer's event queue.
func (v *Viewer) EventQueue() *EventQueue {
	return &v.events
}

// Check whether the viewer has been asked to stop.
func (v *Viewer) Done() bool {
	return v.done.Load()
}

// Flag the viewer as done. It is safe to call from any goroutine.
func (v *Viewer) SetDone(done bool) {
	v.done.Store(done)
}

// Get the stamp of the current frame.
func (v *Viewer) FrameStamp() FrameStamp {
	return v.stamp
}

// Realize the camera's graphics context.
func (v *Viewer) Realize() error {
	ctx := v.camera.GraphicsContext()
	if ctx == nil {
		return ErrNoGraphicsContext
	}
	if !ctx.IsValid() {
		return ErrInvalidContext
	}
	if !ctx.IsRealized() && !ctx.Realize() {
		return ErrRealizeFailed
	}

	v.realized = true
	logger.Infof("[%s] realized viewer (viewport %s, context %d)", v.ID, v.camera.Viewport(), ctx.State().ContextID)
	return nil
}

// Start a new frame using the clock as the simulation time.
func (v *Viewer) Advance() {
	v.AdvanceTo(-1)
}

// Start a new frame. A negative simTime makes the simulation time track the
// reference time.
func (v *Viewer) AdvanceTo(simTime float64) {
	refTime := v.clock()
	if refTime < v.stamp.ReferenceTime {
		refTime = v.stamp.ReferenceTime
	}

	v.stamp.FrameNumber++
	v.stamp.ReferenceTime = refTime
	if simTime < 0 {
		simTime = refTime
	}
	v.stamp.SimulationTime = simTime
}

// Dispatch pending events to the registered handlers. Unhandled close
// requests mark the viewer as done.
func (v *Viewer) EventTraversal() {
	for _, ev := range v.events.Drain() {
		handled := false
		for _, h := range v.handlers {
			if h.Handle(ev, v) {
				handled = true
				break
			}
		}

		if handled {
			continue
		}

		switch ev.Type {
		case CloseRequest:
			logger.Infof("[%s] close requested", v.ID)
			v.SetDone(true)
		case Resize:
			vp := v.camera.Viewport()
			vp.Width, vp.Height = ev.Width, ev.Height
			v.camera.SetViewport(vp)
		}
	}
}

// Update the scene graph for the current frame.
func (v *Viewer) UpdateTraversal() {
	v.camera.Update()
	if v.scene != nil {
		v.scene.Update(&v.stamp)
	}
}

// Make the camera's context current, draw the scene, run the final draw
// callbacks and swap buffers.
func (v *Viewer) RenderingTraversals() error {
	if !v.realized {
		return ErrNotRealized
	}
	if v.scene == nil {
		return ErrSceneNotDefined
	}

	ctx := v.camera.GraphicsContext()
	if !ctx.MakeCurrent() {
		return ErrMakeCurrentFailed
	}

	rc := &RenderContext{
		Camera: v.camera,
		State:  ctx.State(),
		Stamp:  v.stamp,
	}

	err := v.scene.Draw(rc)
	for _, cb := range v.camera.FinalDrawCallbacks {
		if err != nil {
			break
		}
		err = cb(rc)
	}

	ctx.SwapBuffers()
	ctx.Release()
	return err
}

// Run a single frame.
func (v *Viewer) Frame() error {
	v.Advance()
	v.EventTraversal()
	v.UpdateTraversal()
	return v.RenderingTraversals()
}
