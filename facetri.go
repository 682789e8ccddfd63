// Triangulation of single polygonal mesh faces for Go.
//
// A face is an ordered list of indices into a vertex table. It may be
// non-convex, may lie on any plane in 3D, and may contain collinear or repeated
// vertices. The face is split into triangles by inserting diagonals, so the
// result uses only the face's own vertices.
//
// The functions here cover the common case of faces and vertices held in plain
// slices. See the advanced package for strided and field buffers, and for the
// individual steps.
package facetri

import (
	"github.com/osuushi/facetri/advanced"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

type Point = advanced.Vec3[float64]
type Point32 = advanced.Vec3[float32]
type Option = advanced.Option

var (
	ErrInvalidBuffer   = advanced.ErrInvalidBuffer
	ErrOutOfRange      = advanced.ErrOutOfRange
	ErrDegenerateInput = advanced.ErrDegenerateInput
)

var (
	WithLogger    = advanced.WithLogger
	WithTolerance = advanced.WithTolerance
)

// Triangulate a face, which may be non-convex. The result holds three
// polygon-local indices per triangle (index i is face[i]), wound the same way
// as the face. A nil face means the vertices themselves, in order. Nil verts
// give ErrInvalidBuffer.
//
// When the face is too degenerate to triangulate properly, as with
// self-intersecting faces, the full triangle table is still returned, along
// with an error wrapping ErrDegenerateInput.
func Triangulate[T constraints.Float](face []int, verts []advanced.Vec3[T], opts ...Option) ([]int, error) {
	return triangulate(advanced.FindDiagonals[T], face, verts, opts)
}

// TriangulateConvex is like Triangulate, but for faces known to be convex. It
// gives better shaped triangles, and its result is meaningless for a face that
// is not convex.
func TriangulateConvex[T constraints.Float](face []int, verts []advanced.Vec3[T], opts ...Option) ([]int, error) {
	return triangulate(advanced.BestConvexDiagonals[T], face, verts, opts)
}

type diagonalFinder[T constraints.Float] func(advanced.BufferProxy[int], advanced.BufferProxy[advanced.Vec3[T]], ...advanced.Option) ([]int, error)

func triangulate[T constraints.Float](find diagonalFinder[T], face []int, verts []advanced.Vec3[T], opts []Option) (result []int, err error) {
	defer func() {
		recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	diag, err := find(advanced.NewBufferProxy(face), advanced.NewBufferProxy(verts), opts...)
	if err != nil {
		return nil, err
	}

	deg := len(verts)
	if face != nil {
		deg = len(face)
	}
	found := len(diag) / 2
	tri, err := advanced.GetTriangles(deg, diag)
	if err != nil {
		return nil, err
	}
	if found < deg-3 {
		return tri, errors.Wrapf(ErrDegenerateInput, "found %d of %d diagonals", found, deg-3)
	}
	return tri, nil
}

// Map polygon-local triangle indices back to the mesh vertex indices in face.
func MeshTriangles(face []int, tri []int) ([]int, error) {
	result := make([]int, len(tri))
	for i, v := range tri {
		if v < 0 || v >= len(face) {
			return nil, errors.Wrapf(ErrOutOfRange, "triangle index %d is %d, face has %d vertices", i, v, len(face))
		}
		result[i] = face[v]
	}
	return result, nil
}
