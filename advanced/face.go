package advanced

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r2"
	"github.com/osuushi/facetri/internal/geom"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"golang.org/x/exp/constraints"
)

// A face resolved to polygon-local 2D coordinates. Index i of points is polygon
// vertex i, whatever mesh vertex it came from.
type projectedFace struct {
	points []r2.Point
	// Absolute area tolerance, scaled to the size of the face.
	areaTolerance float64
}

func (f *projectedFace) degree() int {
	return len(f.points)
}

// Number of vertices in the face: the face buffer's length, or the whole vertex
// buffer when there is no face buffer.
func faceDegree[T constraints.Float](face BufferProxy[int], verts BufferProxy[Vec3[T]]) int {
	if face.IsValid() {
		return face.Count()
	}
	return verts.Count()
}

func facePosition[T constraints.Float](face BufferProxy[int], verts BufferProxy[Vec3[T]], i int) (Vec3[T], error) {
	index := i
	if face.IsValid() {
		var err error
		index, err = face.At(i)
		if err != nil {
			return Vec3[T]{}, err
		}
	}
	v, err := verts.At(index)
	if err != nil {
		return Vec3[T]{}, errors.Wrapf(err, "face vertex %d", i)
	}
	return v, nil
}

// Look up the face's positions and flatten them onto the face's plane. The
// plane basis is chosen so the projected polygon always winds counterclockwise.
func projectFace[T constraints.Float](face BufferProxy[int], verts BufferProxy[Vec3[T]], tolerance float64) (*projectedFace, error) {
	if !verts.IsValid() {
		return nil, errors.Wrap(ErrInvalidBuffer, "vertex buffer")
	}
	deg := faceDegree(face, verts)
	if deg < 3 {
		return nil, errors.Wrapf(ErrDegenerateInput, "face degree %d", deg)
	}

	positions := make([]mgl64.Vec3, deg)
	for i := range positions {
		v, err := facePosition(face, verts, i)
		if err != nil {
			return nil, err
		}
		positions[i] = v.mgl()
	}

	u, v := planeBasis(newellNormal(positions))
	origin := positions[0]
	points := make([]r2.Point, deg)
	for i, p := range positions {
		d := p.Sub(origin)
		points[i] = r2.Point{X: d.Dot(u), Y: d.Dot(v)}
	}

	extent := geom.Extent(points)
	return &projectedFace{
		points:        points,
		areaTolerance: tolerance * extent * extent,
	}, nil
}

// Newell's method: robust for non-planar and non-convex faces. The length is
// twice the projected area, so it is zero for collinear faces.
func newellNormal(positions []mgl64.Vec3) mgl64.Vec3 {
	var n mgl64.Vec3
	for i, p := range positions {
		q := positions[geom.CircularIndex(i+1, len(positions))]
		n[0] += (p[1] - q[1]) * (p[2] + q[2])
		n[1] += (p[2] - q[2]) * (p[0] + q[0])
		n[2] += (p[0] - q[0]) * (p[1] + q[1])
	}
	return n
}

// Orthonormal u, v with u x v along n. A degenerate normal falls back to the XY
// plane.
func planeBasis(n mgl64.Vec3) (u, v mgl64.Vec3) {
	length := n.Len()
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}
	}
	n = n.Mul(1 / length)

	// Project the axis least aligned with the normal onto the plane.
	axis := mgl64.Vec3{1, 0, 0}
	ax, ay, az := math.Abs(n[0]), math.Abs(n[1]), math.Abs(n[2])
	if ay < ax && ay <= az {
		axis = mgl64.Vec3{0, 1, 0}
	} else if az < ax && az < ay {
		axis = mgl64.Vec3{0, 0, 1}
	}
	u = axis.Sub(n.Mul(axis.Dot(n))).Normalize()
	v = n.Cross(u)
	return u, v
}

// ValidateFace reports every problem with a face at once: a missing vertex
// buffer, too few vertices, indices outside the vertex buffer and repeated
// consecutive indices. The triangulators tolerate repeated indices, so this is
// for callers that want to reject such faces up front.
func ValidateFace[T constraints.Float](face BufferProxy[int], verts BufferProxy[Vec3[T]]) error {
	if !verts.IsValid() {
		return errors.Wrap(ErrInvalidBuffer, "vertex buffer")
	}
	deg := faceDegree(face, verts)
	var err error
	if deg < 3 {
		err = multierr.Append(err, errors.Wrapf(ErrDegenerateInput, "face degree %d", deg))
	}
	if !face.IsValid() {
		return err
	}
	for i := 0; i < deg; i++ {
		index := face.MustAt(i)
		if index < 0 || index >= verts.Count() {
			err = multierr.Append(err, errors.Wrapf(ErrOutOfRange, "face vertex %d references vertex %d of %d", i, index, verts.Count()))
		}
		if deg > 1 && index == face.MustAt(geom.CircularIndex(i+1, deg)) {
			err = multierr.Append(err, errors.Wrapf(ErrDegenerateInput, "face vertices %d and %d repeat vertex %d", i, geom.CircularIndex(i+1, deg), index))
		}
	}
	return err
}
