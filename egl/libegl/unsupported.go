//go:build !cgo || (!linux && !freebsd && !openbsd)

package libegl

import "github.com/achilleasa/eglview/egl"

type driver struct{}

// Create a driver that fails every call with EGL_NOT_INITIALIZED; used when
// the binary is built without cgo or for a platform without libEGL.
func New() egl.Driver {
	return driver{}
}

func (driver) GetDisplay() egl.Display                     { return egl.NoDisplay }
func (driver) Initialize(egl.Display) (int32, int32, bool) { return 0, 0, false }
func (driver) ChooseConfig(egl.Display, egl.Attribs, int) ([]egl.Config, bool) {
	return nil, false
}
func (driver) GetConfigAttrib(egl.Display, egl.Config, int32) (int32, bool) { return 0, false }
func (driver) CreatePbufferSurface(egl.Display, egl.Config, egl.Attribs) egl.Surface {
	return egl.NoSurface
}
func (driver) BindAPI(uint32) bool { return false }
func (driver) CreateContext(egl.Display, egl.Config, egl.Context, egl.Attribs) egl.Context {
	return egl.NoContext
}
func (driver) MakeCurrent(egl.Display, egl.Surface, egl.Surface, egl.Context) bool { return false }
func (driver) DestroySurface(egl.Display, egl.Surface) bool                       { return false }
func (driver) DestroyContext(egl.Display, egl.Context) bool                       { return false }
func (driver) Terminate(egl.Display) bool                                         { return false }
func (driver) QueryString(egl.Display, int32) string                              { return "" }
func (driver) GetError() int32                                                    { return egl.NotInitialized }
