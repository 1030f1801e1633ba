//go:build !glfw

package cmd

import (
	"errors"

	"github.com/achilleasa/eglview/graphics"
	"github.com/achilleasa/eglview/renderer"
	"github.com/achilleasa/eglview/viewer"
)

var errNoNativeWindows = errors.New("eglview: native windows are not supported by this build (rebuild with -tags glfw)")

func openNativeWindow(graphics.Traits, *viewer.Viewer) (graphics.Context, renderer.Viewer, func(), error) {
	return nil, nil, nil, errNoNativeWindows
}
