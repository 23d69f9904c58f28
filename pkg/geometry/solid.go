package geometry

import (
	"github.com/Faultbox/meshconv/pkg/math"
	"github.com/Faultbox/meshconv/pkg/mesh"
)

// insideDirection is the fixed ray direction used by IsPointInside.
var insideDirection = math.Splat(1)

// IntersectionCount returns how many faces of m the ray hits.
func IntersectionCount(m *mesh.Model, r Ray) int {
	return countRange(m, r, 0, len(m.Faces))
}

func countRange(m *mesh.Model, r Ray, from, to int) int {
	n := 0
	for i := from; i < to; i++ {
		if _, hit := r.IntersectTriangle(m.Triangle(i)); hit {
			n++
		}
	}
	return n
}

// IsPointInside reports whether p lies inside m using the even/odd rule: a
// ray cast from p along (1, 1, 1) crosses a closed surface an odd number of
// times exactly when p is inside.
//
// The result is only meaningful for closed, non-self-intersecting meshes.
// Rays that graze an edge or vertex may be counted twice or not at all.
func IsPointInside(m *mesh.Model, p math.Vec3) bool {
	return IntersectionCount(m, Ray{Origin: p, Direction: insideDirection})%2 != 0
}
