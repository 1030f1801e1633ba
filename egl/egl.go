// Package egl describes the subset of the EGL platform API needed to create
// off-screen OpenGL contexts. The actual binding against the system library
// lives in the libegl sub-package; everything else in this module talks to
// EGL through the Driver interface.
package egl

// Opaque EGL handles. Some drivers hand out small integers instead of
// pointers so handles are never stored as Go pointers.
type (
	Display uintptr
	Config  uintptr
	Surface uintptr
	Context uintptr
)

// Sentinel handle values.
const (
	NoDisplay Display = 0
	NoConfig  Config  = 0
	NoSurface Surface = 0
	NoContext Context = 0
)

// Attribute names and values used when selecting configs and creating
// surfaces. Values match the EGL 1.4 headers.
const (
	BufferSize     int32 = 0x3020
	AlphaSize      int32 = 0x3021
	BlueSize       int32 = 0x3022
	GreenSize      int32 = 0x3023
	RedSize        int32 = 0x3024
	DepthSize      int32 = 0x3025
	StencilSize    int32 = 0x3026
	ConfigID       int32 = 0x3028
	Height         int32 = 0x3056
	Width          int32 = 0x3057
	SurfaceType    int32 = 0x3033
	RenderableType int32 = 0x3040
	None           int32 = 0x3038

	PbufferBit int32 = 0x0001
	WindowBit  int32 = 0x0004
	OpenGLBit  int32 = 0x0008

	OpenGLAPI   uint32 = 0x30A2
	OpenGLESAPI uint32 = 0x30A0
)

// Names accepted by Driver.QueryString.
const (
	Vendor     int32 = 0x3053
	Version    int32 = 0x3054
	Extensions int32 = 0x3055
	ClientAPIs int32 = 0x308D
)

// A None-terminated list of attribute name/value pairs.
type Attribs []int32

// Build an attribute list from name/value pairs and append the terminator.
func NewAttribs(pairs ...int32) Attribs {
	attrs := make(Attribs, 0, len(pairs)+1)
	attrs = append(attrs, pairs...)
	return append(attrs, None)
}

// Lookup the value of an attribute. The second return value is false if the
// attribute is not present.
func (a Attribs) Get(name int32) (int32, bool) {
	for i := 0; i+1 < len(a); i += 2 {
		if a[i] == None {
			break
		}
		if a[i] == name {
			return a[i+1], true
		}
	}
	return 0, false
}

// Driver exposes the EGL entry points. Methods returning a bool report
// EGL_TRUE/EGL_FALSE; on failure the cause is available through GetError.
type Driver interface {
	GetDisplay() Display
	Initialize(dpy Display) (major, minor int32, ok bool)
	ChooseConfig(dpy Display, attribs Attribs, maxConfigs int) ([]Config, bool)
	GetConfigAttrib(dpy Display, cfg Config, attr int32) (int32, bool)
	CreatePbufferSurface(dpy Display, cfg Config, attribs Attribs) Surface
	BindAPI(api uint32) bool
	CreateContext(dpy Display, cfg Config, share Context, attribs Attribs) Context
	MakeCurrent(dpy Display, draw, read Surface, ctx Context) bool
	DestroySurface(dpy Display, surf Surface) bool
	DestroyContext(dpy Display, ctx Context) bool
	Terminate(dpy Display) bool
	QueryString(dpy Display, name int32) string
	GetError() int32
}
