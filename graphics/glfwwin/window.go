//go:build glfw

package glfwwin

import (
	"fmt"
	"sync"

	"github.com/achilleasa/eglview/graphics"
	"github.com/achilleasa/eglview/log"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var (
	logger = log.New("glfwwin")

	initMu sync.Mutex
)

// Window is a native GLFW window. GLFW calls must be issued from the main
// thread; callers are expected to lock the OS thread before creating it.
// Only one window may exist at a time since Destroy terminates glfw.
type Window struct {
	window *glfw.Window
	traits graphics.Traits
	state  *graphics.State

	// Invoked when the user requests the window to close.
	OnClose func()

	// Invoked for printable key presses.
	OnKey func(key rune)
}

// Create a hidden window with a GL 2.1 context. The window is shown by
// Realize.
func New(traits graphics.Traits) (*Window, error) {
	if err := traits.Validate(); err != nil {
		return nil, err
	}

	initMu.Lock()
	defer initMu.Unlock()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: failed to initialize glfw: %s", graphics.ErrContextCreationFailed, err.Error())
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.RedBits, int(traits.RedBits))
	glfw.WindowHint(glfw.GreenBits, int(traits.GreenBits))
	glfw.WindowHint(glfw.BlueBits, int(traits.BlueBits))
	glfw.WindowHint(glfw.DepthBits, int(traits.DepthBits))

	glfwWin, err := glfw.CreateWindow(int(traits.Width), int(traits.Height), traits.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: could not create glfw window: %s", graphics.ErrContextCreationFailed, err.Error())
	}

	w := &Window{
		window: glfwWin,
		traits: traits,
	}
	w.state = graphics.NewState(w)
	glfwWin.SetCloseCallback(func(*glfw.Window) {
		if w.OnClose != nil {
			w.OnClose()
		}
	})
	glfwWin.SetCharCallback(func(_ *glfw.Window, char rune) {
		if w.OnKey != nil {
			w.OnKey(char)
		}
	})

	logger.Infof("created native context %d (%dx%d)", w.state.ContextID, traits.Width, traits.Height)
	return w, nil
}

// Process pending window events. Close requests are forwarded to OnClose.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Destroy the window and shut down glfw.
func (w *Window) Destroy() {
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
		glfw.Terminate()
	}
}

func (w *Window) IsValid() bool {
	return w.window != nil
}

func (w *Window) Realize() bool {
	if w.window == nil {
		return false
	}
	w.window.Show()
	return true
}

func (w *Window) IsRealized() bool {
	return w.window != nil && w.window.GetAttrib(glfw.Visible) == glfw.True
}

func (w *Window) Close() {
	if w.window != nil {
		w.window.Hide()
	}
}

func (w *Window) MakeCurrent() bool {
	if w.window == nil {
		return false
	}
	w.window.MakeContextCurrent()
	return true
}

func (w *Window) Release() bool {
	glfw.DetachCurrentContext()
	return true
}

func (w *Window) SwapBuffers() {
	if w.window != nil {
		w.window.SwapBuffers()
	}
}

func (w *Window) GrabFocus() {
	if w.window != nil {
		w.window.Focus()
	}
}

func (w *Window) GrabFocusIfPointerInWindow() {
	if w.window != nil && w.window.GetAttrib(glfw.Hovered) == glfw.True {
		w.window.Focus()
	}
}

func (w *Window) RaiseWindow() {
	if w.window != nil {
		w.window.Show()
		w.window.Focus()
	}
}

func (w *Window) State() *graphics.State {
	return w.state
}

func (w *Window) Traits() graphics.Traits {
	return w.traits
}

func (w *Window) SurfaceSize() (uint32, uint32) {
	if w.window == nil {
		return 0, 0
	}
	fbW, fbH := w.window.GetFramebufferSize()
	return uint32(fbW), uint32(fbH)
}
