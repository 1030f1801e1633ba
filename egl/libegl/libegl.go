//go:build (linux || freebsd || openbsd) && cgo

// Package libegl binds the egl.Driver interface to the system libEGL.
package libegl

/*
#cgo LDFLAGS: -lEGL
#include <stdint.h>
#include <EGL/egl.h>

// cgo maps EGLDisplay and EGLConfig to uintptr. Surfaces and contexts are
// passed as uintptr_t too so that no handle ever round-trips through a Go
// pointer.

static EGLDisplay defaultDisplay(void) {
	return eglGetDisplay(EGL_DEFAULT_DISPLAY);
}

static uintptr_t createPbufferSurface(EGLDisplay dpy, EGLConfig cfg, const EGLint *attribs) {
	return (uintptr_t)eglCreatePbufferSurface(dpy, cfg, attribs);
}

static uintptr_t createContext(EGLDisplay dpy, EGLConfig cfg, uintptr_t share, const EGLint *attribs) {
	return (uintptr_t)eglCreateContext(dpy, cfg, (EGLContext)share, attribs);
}

static EGLBoolean makeCurrent(EGLDisplay dpy, uintptr_t draw, uintptr_t read, uintptr_t ctx) {
	return eglMakeCurrent(dpy, (EGLSurface)draw, (EGLSurface)read, (EGLContext)ctx);
}

static EGLBoolean destroySurface(EGLDisplay dpy, uintptr_t surf) {
	return eglDestroySurface(dpy, (EGLSurface)surf);
}

static EGLBoolean destroyContext(EGLDisplay dpy, uintptr_t ctx) {
	return eglDestroyContext(dpy, (EGLContext)ctx);
}
*/
import "C"

import (
	"unsafe"

	"github.com/achilleasa/eglview/egl"
)

type driver struct{}

// Create a driver backed by the system libEGL.
func New() egl.Driver {
	return driver{}
}

func (driver) GetDisplay() egl.Display {
	return egl.Display(C.defaultDisplay())
}

func (driver) Initialize(dpy egl.Display) (int32, int32, bool) {
	var major, minor C.EGLint
	ok := C.eglInitialize(C.EGLDisplay(dpy), &major, &minor) == C.EGL_TRUE
	return int32(major), int32(minor), ok
}

func (driver) ChooseConfig(dpy egl.Display, attribs egl.Attribs, maxConfigs int) ([]egl.Config, bool) {
	if maxConfigs <= 0 {
		return nil, true
	}

	cfgs := make([]C.EGLConfig, maxConfigs)
	var numConfigs C.EGLint
	ok := C.eglChooseConfig(C.EGLDisplay(dpy), attribPtr(attribs), &cfgs[0], C.EGLint(maxConfigs), &numConfigs) == C.EGL_TRUE
	if !ok {
		return nil, false
	}

	out := make([]egl.Config, int(numConfigs))
	for i := range out {
		out[i] = egl.Config(cfgs[i])
	}
	return out, true
}

func (driver) GetConfigAttrib(dpy egl.Display, cfg egl.Config, attr int32) (int32, bool) {
	var val C.EGLint
	ok := C.eglGetConfigAttrib(C.EGLDisplay(dpy), C.EGLConfig(cfg), C.EGLint(attr), &val) == C.EGL_TRUE
	return int32(val), ok
}

func (driver) CreatePbufferSurface(dpy egl.Display, cfg egl.Config, attribs egl.Attribs) egl.Surface {
	return egl.Surface(C.createPbufferSurface(C.EGLDisplay(dpy), C.EGLConfig(cfg), attribPtr(attribs)))
}

func (driver) BindAPI(api uint32) bool {
	return C.eglBindAPI(C.EGLenum(api)) == C.EGL_TRUE
}

func (driver) CreateContext(dpy egl.Display, cfg egl.Config, share egl.Context, attribs egl.Attribs) egl.Context {
	return egl.Context(C.createContext(C.EGLDisplay(dpy), C.EGLConfig(cfg), C.uintptr_t(share), attribPtr(attribs)))
}

func (driver) MakeCurrent(dpy egl.Display, draw, read egl.Surface, ctx egl.Context) bool {
	return C.makeCurrent(C.EGLDisplay(dpy), C.uintptr_t(draw), C.uintptr_t(read), C.uintptr_t(ctx)) == C.EGL_TRUE
}

func (driver) DestroySurface(dpy egl.Display, surf egl.Surface) bool {
	return C.destroySurface(C.EGLDisplay(dpy), C.uintptr_t(surf)) == C.EGL_TRUE
}

func (driver) DestroyContext(dpy egl.Display, ctx egl.Context) bool {
	return C.destroyContext(C.EGLDisplay(dpy), C.uintptr_t(ctx)) == C.EGL_TRUE
}

func (driver) Terminate(dpy egl.Display) bool {
	return C.eglTerminate(C.EGLDisplay(dpy)) == C.EGL_TRUE
}

func (driver) QueryString(dpy egl.Display, name int32) string {
	str := C.eglQueryString(C.EGLDisplay(dpy), C.EGLint(name))
	if str == nil {
		return ""
	}
	return C.GoString(str)
}

func (driver) GetError() int32 {
	return int32(C.eglGetError())
}

// Get a C pointer to a None-terminated attribute list; nil lists map to NULL.
func attribPtr(attribs egl.Attribs) *C.EGLint {
	if len(attribs) == 0 {
		return nil
	}
	return (*C.EGLint)(unsafe.Pointer(&attribs[0]))
}
