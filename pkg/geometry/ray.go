// Package geometry provides ray casting, area and transform routines over
// triangle meshes.
package geometry

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/meshconv/pkg/math"
)

// Epsilon is the tolerance used by the ray/triangle test. A ray whose
// direction is within Epsilon of the triangle plane counts as parallel, and
// hits must lie farther than Epsilon and nearer than 1/Epsilon along the ray.
const Epsilon = 1e-7

// Ray represents a ray in 3D space with origin and direction.
// The direction does not need to be normalized.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectTriangle tests the ray against a triangle with the
// Möller–Trumbore algorithm and returns the hit point.
func (r Ray) IntersectTriangle(tri [3]math.Vec3) (math.Vec3, bool) {
	edge1 := tri[1].Sub(tri[0])
	edge2 := tri[2].Sub(tri[0])

	h := r.Direction.Cross(edge2)
	a := edge1.Dot(h)
	// Comparisons are written as acceptances so a NaN coordinate never hits.
	if !(math32.Abs(a) >= Epsilon) {
		return math.Vec3{}, false // Ray parallel to triangle plane
	}

	f := 1 / a
	s := r.Origin.Sub(tri[0])
	u := f * s.Dot(h)
	if !(u >= 0 && u <= 1) {
		return math.Vec3{}, false
	}

	q := s.Cross(edge1)
	v := f * r.Direction.Dot(q)
	if !(v >= 0 && u+v <= 1) {
		return math.Vec3{}, false
	}

	// The line meets the triangle; only the forward half-line counts.
	t := f * edge2.Dot(q)
	if t > Epsilon && t < 1/Epsilon {
		return r.At(t), true
	}
	return math.Vec3{}, false
}
