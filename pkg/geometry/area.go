package geometry

import (
	"github.com/Faultbox/meshconv/pkg/math"
	"github.com/Faultbox/meshconv/pkg/mesh"
)

// TriangleArea returns the area of a triangle.
func TriangleArea(tri [3]math.Vec3) float32 {
	ab := tri[1].Sub(tri[0])
	ac := tri[2].Sub(tri[0])
	return ab.Cross(ac).Length() / 2
}

// SurfaceArea returns the summed area of all faces of m.
func SurfaceArea(m *mesh.Model) float32 {
	return areaRange(m, 0, len(m.Faces))
}

func areaRange(m *mesh.Model, from, to int) float32 {
	var area float32
	for i := from; i < to; i++ {
		area += TriangleArea(m.Triangle(i))
	}
	return area
}
