package egl

import "fmt"

// EGL error codes.
const (
	Success           int32 = 0x3000
	NotInitialized    int32 = 0x3001
	BadAccess         int32 = 0x3002
	BadAlloc          int32 = 0x3003
	BadAttribute      int32 = 0x3004
	BadConfig         int32 = 0x3005
	BadContext        int32 = 0x3006
	BadCurrentSurface int32 = 0x3007
	BadDisplay        int32 = 0x3008
	BadMatch          int32 = 0x3009
	BadNativePixmap   int32 = 0x300A
	BadNativeWindow   int32 = 0x300B
	BadParameter      int32 = 0x300C
	BadSurface        int32 = 0x300D
	ContextLost       int32 = 0x300E
)

var errorNames = map[int32]string{
	Success:           "EGL_SUCCESS",
	NotInitialized:    "EGL_NOT_INITIALIZED",
	BadAccess:         "EGL_BAD_ACCESS",
	BadAlloc:          "EGL_BAD_ALLOC",
	BadAttribute:      "EGL_BAD_ATTRIBUTE",
	BadConfig:         "EGL_BAD_CONFIG",
	BadContext:        "EGL_BAD_CONTEXT",
	BadCurrentSurface: "EGL_BAD_CURRENT_SURFACE",
	BadDisplay:        "EGL_BAD_DISPLAY",
	BadMatch:          "EGL_BAD_MATCH",
	BadNativePixmap:   "EGL_BAD_NATIVE_PIXMAP",
	BadNativeWindow:   "EGL_BAD_NATIVE_WINDOW",
	BadParameter:      "EGL_BAD_PARAMETER",
	BadSurface:        "EGL_BAD_SURFACE",
	ContextLost:       "EGL_CONTEXT_LOST",
}

// Get a printable name for an EGL error code.
func ErrorName(code int32) string {
	if name, ok := errorNames[code]; ok {
		return name
	}
	return fmt.Sprintf("unknown error 0x%04X", code)
}
