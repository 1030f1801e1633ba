// Package glscene contains scene nodes that render with the legacy OpenGL 2.1
// pipeline and helpers for reading rendered pixels back from the current
// context.
package glscene

import (
	"fmt"

	"github.com/achilleasa/eglview/log"
	"github.com/achilleasa/eglview/viewer"
	"github.com/go-gl/gl/v2.1/gl"
)

var logger = log.New("glscene")

// Root prepares the current context for drawing: it loads the GL entry
// points the first time a context is seen, clears the surface and loads the
// camera matrices. Children are drawn afterwards.
type Root struct {
	*viewer.Group
}

// Create a root node with the given children.
func NewRoot(children ...viewer.Node) *Root {
	return &Root{Group: viewer.NewGroup(children...)}
}

func (r *Root) Draw(rc *viewer.RenderContext) error {
	if err := initGL(rc); err != nil {
		return err
	}

	// Render at the surface resolution; the camera viewport only affects
	// the projection.
	surfW, surfH := rc.State.Context.SurfaceSize()
	gl.Viewport(0, 0, int32(surfW), int32(surfH))

	cc := rc.Camera.ClearColor
	gl.ClearColor(cc[0], cc[1], cc[2], cc[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadTransposeMatrixf(&rc.Camera.ProjMat[0])
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadTransposeMatrixf(&rc.Camera.ViewMat[0])

	if err := r.Group.Draw(rc); err != nil {
		return err
	}
	return checkError("draw scene")
}

func initGL(rc *viewer.RenderContext) error {
	if rc.State.GLInitialized {
		return nil
	}

	if err := gl.Init(); err != nil {
		return fmt.Errorf("glscene: could not init opengl: %s", err.Error())
	}
	rc.State.GLInitialized = true

	logger.Infof(
		"context %d: %s (%s, GL %s)",
		rc.State.ContextID,
		gl.GoStr(gl.GetString(gl.RENDERER)),
		gl.GoStr(gl.GetString(gl.VENDOR)),
		gl.GoStr(gl.GetString(gl.VERSION)),
	)
	return nil
}

func checkError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("glscene: %s failed (gl error 0x%04X)", op, code)
	}
	return nil
}
