package geometry

import (
	"errors"

	"github.com/Faultbox/meshconv/pkg/math"
	"github.com/Faultbox/meshconv/pkg/mesh"
)

// ErrSingularTransform is returned by Transform for a matrix without an
// inverse, since normals cannot be carried through it.
var ErrSingularTransform = errors.New("transform matrix is singular")

// Transform applies t to m in place. Positions are multiplied by t as
// homogeneous points, so translations and projections apply. Normals are
// multiplied by the inverse-transpose of t so they stay perpendicular to the
// transformed surface; they are not renormalized.
//
// A singular t leaves m unchanged and returns ErrSingularTransform.
func Transform(m *mesh.Model, t math.Mat4) error {
	normalMatrix, ok := t.InverseTranspose()
	if !ok {
		return ErrSingularTransform
	}

	for i, p := range m.Positions {
		m.Positions[i] = t.MulVec4(p)
	}
	for i, n := range m.Normals {
		m.Normals[i] = normalMatrix.MulDirection(n)
	}
	return nil
}
