package math

import "github.com/chewxy/math32"

// Vec4 is a homogeneous 4-component vector.
type Vec4 struct {
	X, Y, Z, W float32
}

// Point returns the homogeneous point (x, y, z, 1).
func Point(x, y, z float32) Vec4 {
	return Vec4{x, y, z, 1}
}

// XYZ drops the w component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// ApproxEqual reports whether every component of v is within eps of other.
func (v Vec4) ApproxEqual(other Vec4, eps float32) bool {
	return v.XYZ().ApproxEqual(other.XYZ(), eps) && math32.Abs(v.W-other.W) <= eps
}
