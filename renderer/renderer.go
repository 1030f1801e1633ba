package renderer

import "github.com/achilleasa/eglview/viewer"

// Viewer is the set of per-frame operations the frame pump drives. It is
// satisfied by *viewer.Viewer.
type Viewer interface {
	// True once the viewer has been asked to stop.
	Done() bool

	// Start a new frame and take a new frame stamp.
	Advance()

	// Dispatch pending events.
	EventTraversal()

	// Update the scene for the current frame.
	UpdateTraversal()

	// Render the current frame. This is where the graphics context is
	// made current and buffers are swapped.
	RenderingTraversals() error

	// Get the stamp taken by the last Advance call.
	FrameStamp() viewer.FrameStamp
}
