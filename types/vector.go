package types

import (
	"math"

	"golang.org/x/image/math/f32"
)

const floatCmpEpsilon = 1e-6

type Vec3 f32.Vec3
type Vec4 f32.Vec4

// Define a 3 component vector.
func XYZ(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Subtract a vector.
func (v Vec3) Sub(v2 Vec3) Vec3 {
	return Vec3{v[0] - v2[0], v[1] - v2[1], v[2] - v2[2]}
}

// Get vector length.
func (v Vec3) Len() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Normalize vector. Zero-length vectors are returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < floatCmpEpsilon {
		return v
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// Calculate dot product of 2 vectors
func (v Vec3) Dot(v2 Vec3) float32 {
	return v[0]*v2[0] + v[1]*v2[1] + v[2]*v2[2]
}

// Calculate cross product of 2 vectors.
func (v Vec3) Cross(v2 Vec3) Vec3 {
	return Vec3{v[1]*v2[2] - v[2]*v2[1], v[2]*v2[0] - v[0]*v2[2], v[0]*v2[1] - v[1]*v2[0]}
}
