//go:build glfw

package cmd

import (
	"github.com/achilleasa/eglview/graphics"
	"github.com/achilleasa/eglview/graphics/glfwwin"
	"github.com/achilleasa/eglview/renderer"
	"github.com/achilleasa/eglview/viewer"
)

// Wraps the viewer so that native window events are polled before each
// event traversal.
type pollingViewer struct {
	*viewer.Viewer
	poll func()
}

func (pv pollingViewer) EventTraversal() {
	pv.poll()
	pv.Viewer.EventTraversal()
}

// Open a native window whose close and key events feed the viewer's event
// queue. The returned function destroys the window.
func openNativeWindow(traits graphics.Traits, v *viewer.Viewer) (graphics.Context, renderer.Viewer, func(), error) {
	win, err := glfwwin.New(traits)
	if err != nil {
		return nil, nil, nil, err
	}

	win.OnClose = func() { v.EventQueue().Push(viewer.Event{Type: viewer.CloseRequest}) }
	win.OnKey = func(key rune) { v.EventQueue().Push(viewer.Event{Type: viewer.KeyPress, Key: key}) }
	return win, pollingViewer{Viewer: v, poll: win.PollEvents}, win.Destroy, nil
}
