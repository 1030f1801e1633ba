// Package graphics defines the render-target capability set consumed by the
// viewer and provides a headless, EGL pbuffer backed implementation of it.
package graphics

// Context is the set of lifecycle operations a viewer expects from a
// graphics window. Implementations may back it with a native window or with
// an off-screen surface.
type Context interface {
	// True if the context was successfully acquired.
	IsValid() bool

	// Realize the context; for native windows this maps the window.
	Realize() bool
	IsRealized() bool

	// Close any native window resources.
	Close()

	// Bind the context to the calling thread. All subsequent GL calls on
	// this thread target the context's surface.
	MakeCurrent() bool

	// Release the context from the calling thread.
	Release() bool

	// Present the back buffer.
	SwapBuffers()

	// Window manager hints.
	GrabFocus()
	GrabFocusIfPointerInWindow()
	RaiseWindow()

	// Get the render state attached to this context. It is nil for invalid
	// contexts.
	State() *State

	// Get the traits this context was created with.
	Traits() Traits

	// Get the dims of the surface rendered to. For headless contexts this
	// is the pbuffer size and not the viewport size.
	SurfaceSize() (width, height uint32)
}
