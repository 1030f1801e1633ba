package types

import (
	"math"

	"golang.org/x/image/math/f32"
)

// A 4x4 matrix in row major order.
type Mat4 f32.Mat4

// Get the identity matrix.
func Ident4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Build a perspective projection matrix. The fov is specified in degrees.
func Perspective4(fovY, aspect, near, far float32) Mat4 {
	f := float32(1.0 / math.Tan(float64(fovY)*math.Pi/360.0))
	nf := 1.0 / (near - far)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, 2 * far * near * nf,
		0, 0, -1, 0,
	}
}

// Build a view matrix for an eye looking at center.
func LookAt4(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up.Normalize()).Normalize()
	u := s.Cross(f)
	return Mat4{
		s[0], s[1], s[2], -s.Dot(eye),
		u[0], u[1], u[2], -u.Dot(eye),
		-f[0], -f[1], -f[2], f.Dot(eye),
		0, 0, 0, 1,
	}
}

// Build a rotation matrix around the Z axis. The angle is specified in
// radians.
func RotateZ4(angle float32) Mat4 {
	sin, cos := math.Sincos(float64(angle))
	s, c := float32(sin), float32(cos)
	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Multiply with another matrix.
func (m Mat4) Mul4(m2 Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * m2[k*4+col]
			}
			out[row*4+col] = sum
		}
	}
	return out
}

// Transform a point (w = 1) and apply the perspective divide.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	x := m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3]
	y := m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7]
	z := m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11]
	w := m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]
	if w != 0 && w != 1 {
		return Vec3{x / w, y / w, z / w}
	}
	return Vec3{x, y, z}
}
