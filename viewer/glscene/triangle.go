package glscene

import (
	"github.com/achilleasa/eglview/types"
	"github.com/achilleasa/eglview/viewer"
	"github.com/go-gl/gl/v2.1/gl"
)

// A colored triangle spinning around the Z axis.
type SpinningTriangle struct {
	// Rotation speed in radians per second of simulation time.
	Speed float32

	Vertices [3]types.Vec3
	Colors   [3]types.Vec3

	angle float32
}

// Create a unit triangle with red, green and blue corners.
func NewSpinningTriangle(speed float32) *SpinningTriangle {
	return &SpinningTriangle{
		Speed: speed,
		Vertices: [3]types.Vec3{
			{0, 0.8, 0},
			{-0.7, -0.4, 0},
			{0.7, -0.4, 0},
		},
		Colors: [3]types.Vec3{
			{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1},
		},
	}
}

func (t *SpinningTriangle) Update(stamp *viewer.FrameStamp) {
	t.angle = t.Speed * float32(stamp.SimulationTime)
}

func (t *SpinningTriangle) Draw(rc *viewer.RenderContext) error {
	modelView := rc.Camera.ViewMat.Mul4(types.RotateZ4(t.angle))

	gl.MatrixMode(gl.MODELVIEW)
	gl.PushMatrix()
	gl.LoadTransposeMatrixf(&modelView[0])

	gl.Begin(gl.TRIANGLES)
	for i := range t.Vertices {
		gl.Color3fv(&t.Colors[i][0])
		gl.Vertex3fv(&t.Vertices[i][0])
	}
	gl.End()

	gl.PopMatrix()
	return nil
}
