package viewer

import (
	"fmt"

	"github.com/achilleasa/eglview/graphics"
	"github.com/achilleasa/eglview/types"
)

// The region of the render target covered by the camera.
type Viewport struct {
	X, Y          int32
	Width, Height uint32
}

// Get the viewport aspect ratio.
func (vp Viewport) Aspect() float32 {
	if vp.Height == 0 {
		return 1
	}
	return float32(vp.Width) / float32(vp.Height)
}

func (vp Viewport) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", vp.Width, vp.Height, vp.X, vp.Y)
}

// A callback invoked after the scene has been drawn and before the buffers
// are swapped. The camera's context is current while it runs.
type DrawCallback func(rc *RenderContext) error

// The camera type controls the viewer projection and the graphics context
// the scene is rendered to.
type Camera struct {
	Position types.Vec3
	LookAt   types.Vec3
	Up       types.Vec3

	// Vertical field of view in degrees.
	FOV float32

	ViewMat types.Mat4
	ProjMat types.Mat4

	ClearColor types.Vec4

	// Callbacks run after drawing the scene; typically used for readback.
	FinalDrawCallbacks []DrawCallback

	viewport Viewport
	ctx      graphics.Context
}

// Create a camera looking down the negative Z axis.
func NewCamera(fov float32) *Camera {
	c := &Camera{
		Position:   types.XYZ(0, 0, 3),
		LookAt:     types.XYZ(0, 0, 0),
		Up:         types.XYZ(0, 1, 0),
		FOV:        fov,
		ViewMat:    types.Ident4(),
		ProjMat:    types.Ident4(),
		ClearColor: types.Vec4{0.2, 0.2, 0.4, 1.0},
	}
	c.Update()
	return c
}

// Set the viewport and update the projection matrix to match its aspect
// ratio. The viewport is independent of the context's surface size.
func (c *Camera) SetViewport(vp Viewport) {
	c.viewport = vp
	c.Update()
}

func (c *Camera) Viewport() Viewport {
	return c.viewport
}

// Attach the graphics context the camera renders to.
func (c *Camera) SetGraphicsContext(ctx graphics.Context) {
	c.ctx = ctx
}

func (c *Camera) GraphicsContext() graphics.Context {
	return c.ctx
}

// Recalculate the view and projection matrices.
func (c *Camera) Update() {
	c.ViewMat = types.LookAt4(c.Position, c.LookAt, c.Up)
	c.ProjMat = types.Perspective4(c.FOV, c.viewport.Aspect(), 0.1, 1000)
}
