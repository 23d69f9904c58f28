package formats

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/meshconv/pkg/mesh"
)

// Face errors.
var (
	ErrTooFewVertices   = errors.New("face needs at least 3 vertices")
	ErrTooManySlashes   = errors.New("face vertex has more than 2 slashes")
	ErrInvalidIndex     = errors.New("face index is not an integer")
	ErrMissingPosition  = errors.New("face vertex has no position index")
	ErrInconsistentFace = errors.New("face vertices disagree on texture/normal presence")
	ErrIndexOutOfRange  = errors.New("face index out of range")
)

// rawRef holds the position/texture/normal fields of a face vertex as
// written in the file. 0 means the field was empty.
type rawRef [3]int

// processFace parses one face line, resolves its indices against the arrays
// as they are right now and appends its triangle fan to the model. On error
// the offending vertex token is returned alongside.
func (d *objDecoder) processFace(text string) (string, error) {
	tokens := strings.Fields(text)
	if len(tokens) < 3 {
		return "", fmt.Errorf("%w: got %d", ErrTooFewVertices, len(tokens))
	}

	raws := make([]rawRef, len(tokens))
	for i, tok := range tokens {
		raw, err := parseFaceVertex(tok)
		if err != nil {
			return tok, err
		}
		raws[i] = raw
	}

	hasTexture := raws[0][1] != 0
	hasNormal := raws[0][2] != 0
	for i, raw := range raws {
		if raw[0] == 0 {
			return tokens[i], ErrMissingPosition
		}
		if (raw[1] != 0) != hasTexture || (raw[2] != 0) != hasNormal {
			return tokens[i], ErrInconsistentFace
		}
	}

	refs := make([]mesh.VertexRef, len(raws))
	for i, raw := range raws {
		ref, err := d.resolve(raw)
		if err != nil {
			return tokens[i], err
		}
		refs[i] = ref
	}

	for i := 1; i < len(refs)-1; i++ {
		d.model.Faces = append(d.model.Faces, mesh.Face{refs[0], refs[i], refs[i+1]})
		d.faceLines = append(d.faceLines, d.line)
	}
	return "", nil
}

// parseFaceVertex splits a "p/t/n" token. Empty fields stay 0.
func parseFaceVertex(tok string) (rawRef, error) {
	var raw rawRef

	parts := strings.Split(tok, "/")
	if len(parts) > 3 {
		return raw, ErrTooManySlashes
	}
	for i, part := range parts {
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return raw, fmt.Errorf("%w: %q", ErrInvalidIndex, part)
		}
		raw[i] = v
	}
	return raw, nil
}

// resolve turns 1-based or negative (relative) file indices into
// zero-based model indices.
func (d *objDecoder) resolve(raw rawRef) (mesh.VertexRef, error) {
	var ref mesh.VertexRef
	var err error

	if ref.Position, err = resolveIndex(raw[0], len(d.model.Positions)); err != nil {
		return ref, err
	}
	if ref.Texture, err = resolveIndex(raw[1], len(d.model.TexCoords)); err != nil {
		return ref, err
	}
	if ref.Normal, err = resolveIndex(raw[2], len(d.model.Normals)); err != nil {
		return ref, err
	}
	return ref, nil
}

// resolveIndex maps a file index to a zero-based one. 0 (missing) becomes
// mesh.Absent; negative values count back from the current array length,
// -1 being the last element.
func resolveIndex(raw, length int) (int, error) {
	idx := raw - 1
	switch {
	case idx == -1:
		return mesh.Absent, nil
	case idx < -1:
		idx = length + idx + 1
		if idx < 0 {
			return 0, fmt.Errorf("%w: %d with %d elements defined", ErrIndexOutOfRange, raw, length)
		}
	}
	return idx, nil
}

// checkReferences verifies that every stored index points into its array.
// Forward references are legal in the file as long as the element is
// defined by the end of it.
func (d *objDecoder) checkReferences() error {
	m := d.model
	for i, face := range m.Faces {
		for _, ref := range face {
			var err error
			switch {
			case ref.Position >= len(m.Positions):
				err = fmt.Errorf("%w: position %d of %d", ErrIndexOutOfRange, ref.Position+1, len(m.Positions))
			case ref.Texture >= len(m.TexCoords):
				err = fmt.Errorf("%w: texture %d of %d", ErrIndexOutOfRange, ref.Texture+1, len(m.TexCoords))
			case ref.Normal >= len(m.Normals):
				err = fmt.Errorf("%w: normal %d of %d", ErrIndexOutOfRange, ref.Normal+1, len(m.Normals))
			}
			if err != nil {
				return &ParseError{Line: d.faceLines[i], Label: "f", Token: ref.String(), Err: err}
			}
		}
	}
	return nil
}
