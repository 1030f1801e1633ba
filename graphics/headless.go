package graphics

import (
	"fmt"

	"github.com/achilleasa/eglview/egl"
	"github.com/achilleasa/eglview/log"
)

var logger = log.New("graphics")

// HeadlessWindow is a graphics context backed by an EGL pbuffer surface. It
// presents itself to the viewer as an always-realized window that never
// needs a display server.
type HeadlessWindow struct {
	driver egl.Driver
	traits Traits

	// EGL handles; owned by the window for its entire lifetime.
	display egl.Display
	config  egl.Config
	surface egl.Surface
	context egl.Context

	// Display version reported by eglInitialize.
	major, minor int32

	state       *State
	initialized bool
	valid       bool
	current     bool
	destroyed   bool
}

// Create a headless window using the supplied EGL driver. Every acquisition
// step is checked; on failure any handles acquired so far are released and an
// error wrapping ErrContextCreationFailed is returned.
func NewHeadlessWindow(driver egl.Driver, traits Traits) (*HeadlessWindow, error) {
	if err := traits.Validate(); err != nil {
		return nil, err
	}

	w := &HeadlessWindow{
		driver: driver,
		traits: traits,
	}

	if err := w.init(); err != nil {
		w.Destroy()
		return nil, err
	}

	w.valid = true
	w.state = NewState(w)
	logger.Infof("created headless context %d (EGL %d.%d, pbuffer %dx%d)", w.state.ContextID, w.major, w.minor, traits.PbufferWidth, traits.PbufferHeight)
	return w, nil
}

func (w *HeadlessWindow) init() error {
	// 1. Connect to the default display
	w.display = w.driver.GetDisplay()
	if w.display == egl.NoDisplay {
		return w.stepError("eglGetDisplay")
	}

	var ok bool
	if w.major, w.minor, ok = w.driver.Initialize(w.display); !ok {
		return w.stepError("eglInitialize")
	}
	w.initialized = true

	// 2. Select exactly one config
	configs, ok := w.driver.ChooseConfig(w.display, ConfigAttribs(w.traits), 1)
	if !ok {
		return w.stepError("eglChooseConfig")
	}
	if len(configs) == 0 {
		return fmt.Errorf("%w: %w", ErrContextCreationFailed, ErrNoMatchingConfig)
	}
	w.config = configs[0]

	// 3. Create the off-screen surface
	w.surface = w.driver.CreatePbufferSurface(w.display, w.config, PbufferAttribs(w.traits))
	if w.surface == egl.NoSurface {
		return w.stepError("eglCreatePbufferSurface")
	}

	// 4. Bind the desktop GL api
	if !w.driver.BindAPI(egl.OpenGLAPI) {
		return w.stepError("eglBindAPI")
	}

	// 5. Create an unshared context
	w.context = w.driver.CreateContext(w.display, w.config, egl.NoContext, nil)
	if w.context == egl.NoContext {
		return w.stepError("eglCreateContext")
	}

	return nil
}

func (w *HeadlessWindow) stepError(step string) error {
	code := w.driver.GetError()
	return fmt.Errorf("%w: %s failed (error: %s; code %d)", ErrContextCreationFailed, step, egl.ErrorName(code), code)
}

// Get the config attributes matching the given traits.
func ConfigAttribs(traits Traits) egl.Attribs {
	return egl.NewAttribs(
		egl.SurfaceType, egl.PbufferBit,
		egl.BlueSize, traits.BlueBits,
		egl.GreenSize, traits.GreenBits,
		egl.RedSize, traits.RedBits,
		egl.DepthSize, traits.DepthBits,
		egl.RenderableType, egl.OpenGLBit,
	)
}

// Get the pbuffer surface attributes for the given traits.
func PbufferAttribs(traits Traits) egl.Attribs {
	return egl.NewAttribs(
		egl.Width, int32(traits.PbufferWidth),
		egl.Height, int32(traits.PbufferHeight),
	)
}

// Release the context and surface and terminate the display connection.
// Calling Destroy more than once has no effect.
func (w *HeadlessWindow) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	w.valid = false

	// A display that failed to initialize holds no resources.
	if w.display == egl.NoDisplay || !w.initialized {
		w.display = egl.NoDisplay
		return
	}

	if w.current {
		w.driver.MakeCurrent(w.display, egl.NoSurface, egl.NoSurface, egl.NoContext)
		w.current = false
	}
	if w.context != egl.NoContext {
		if !w.driver.DestroyContext(w.display, w.context) {
			logger.Warningf("could not destroy EGL context (error: %s)", egl.ErrorName(w.driver.GetError()))
		}
		w.context = egl.NoContext
	}
	if w.surface != egl.NoSurface {
		if !w.driver.DestroySurface(w.display, w.surface) {
			logger.Warningf("could not destroy EGL surface (error: %s)", egl.ErrorName(w.driver.GetError()))
		}
		w.surface = egl.NoSurface
	}

	w.driver.Terminate(w.display)
	w.display = egl.NoDisplay
	w.initialized = false
}

// Get the EGL version reported when the display was initialized.
func (w *HeadlessWindow) Version() (major, minor int32) {
	return w.major, w.minor
}

func (w *HeadlessWindow) IsValid() bool {
	return w.valid
}

// Headless contexts are realized at construction.
func (w *HeadlessWindow) Realize() bool {
	return w.valid
}

func (w *HeadlessWindow) IsRealized() bool {
	return w.valid
}

// There is no native window to close; the EGL handles are released by
// Destroy.
func (w *HeadlessWindow) Close() {}

// Bind the pbuffer surface and the context to the calling thread.
func (w *HeadlessWindow) MakeCurrent() bool {
	if !w.valid {
		return false
	}

	if !w.driver.MakeCurrent(w.display, w.surface, w.surface, w.context) {
		code := w.driver.GetError()
		logger.Errorf("eglMakeCurrent failed for context %d (error: %s; code %d)", w.state.ContextID, egl.ErrorName(code), code)
		return false
	}
	w.current = true
	return true
}

// The context stays bound; rendering always happens on the thread that
// drives the frame loop.
func (w *HeadlessWindow) Release() bool {
	return true
}

// The pbuffer is never presented. Rendered pixels are only available
// through an explicit readback.
func (w *HeadlessWindow) SwapBuffers() {}

func (w *HeadlessWindow) GrabFocus()                  {}
func (w *HeadlessWindow) GrabFocusIfPointerInWindow() {}
func (w *HeadlessWindow) RaiseWindow()                {}

func (w *HeadlessWindow) State() *State {
	return w.state
}

func (w *HeadlessWindow) Traits() Traits {
	return w.traits
}

func (w *HeadlessWindow) SurfaceSize() (uint32, uint32) {
	return w.traits.PbufferWidth, w.traits.PbufferHeight
}
