package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Predicates here work on the 2D projection of a face. Every face handed to
// the triangulators is projected so that it winds counterclockwise, so a
// positive cross product always means "turns left", which for a polygon corner
// means convex.

// Twice the signed area of the triangle abc. Positive when abc winds
// counterclockwise.
func Cross(a, b, c r2.Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// Sign of Cross(a, b, c), treating anything within tol of zero as collinear.
func Orientation(a, b, c r2.Point, tol float64) int {
	cross := Cross(a, b, c)
	if cross > tol {
		return 1
	}
	if cross < -tol {
		return -1
	}
	return 0
}

// Unsigned angle between two vectors, in radians.
func Angle(u, v r2.Point) float64 {
	return math.Atan2(math.Abs(u.Cross(v)), u.Dot(v))
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Do the segments ab and cd cross at a single point interior to both? Touching
// at an endpoint and collinear overlap do not count.
func SegmentsCross(a, b, c, d r2.Point, tol float64) bool {
	o1 := Orientation(a, b, c, tol)
	o2 := Orientation(a, b, d, tol)
	o3 := Orientation(c, d, a, tol)
	o4 := Orientation(c, d, b, tol)
	return o1*o2 < 0 && o3*o4 < 0
}

// Does p lie on the segment ab, strictly between its endpoints?
func OnOpenSegment(p, a, b r2.Point, tol float64) bool {
	if Orientation(a, b, p, tol) != 0 {
		return false
	}
	ab := b.Sub(a)
	t := p.Sub(a).Dot(ab)
	return t > 0 && t < ab.Dot(ab)
}

// Closed containment test for a counterclockwise triangle. Points within tol of
// an edge count as inside.
func InTriangle(p, a, b, c r2.Point, tol float64) bool {
	return Cross(a, b, p) >= -tol && Cross(b, c, p) >= -tol && Cross(c, a, p) >= -tol
}

// Does the ray from a towards b start into the interior of a counterclockwise
// polygon, given that prev and next are a's neighbours?
func InCone(a, b, prev, next r2.Point, tol float64) bool {
	if Orientation(prev, a, next, tol) >= 0 {
		// Convex corner: b must lie strictly left of a->next and strictly left of
		// prev->a.
		return Orientation(a, next, b, tol) > 0 && Orientation(prev, a, b, tol) > 0
	}
	// Reflex corner: b is inside unless it lies in the (convex) exterior wedge.
	return !(Orientation(a, next, b, tol) <= 0 && Orientation(prev, a, b, tol) <= 0)
}

// Even-odd rule point-in-polygon.
func ContainsEvenOdd(polygon []r2.Point, p r2.Point) bool {
	return CrossingCount(polygon, p)%2 == 1
}

// Crossing count helper for even odd rule. Counts edges crossing the
// horizontal ray to the right of p.
func CrossingCount(polygon []r2.Point, p r2.Point) int {
	crossingCount := 0
	for i, vertex := range polygon {
		nextVertex := polygon[CircularIndex(i+1, len(polygon))]
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

// Shoelace signed area; positive for counterclockwise polygons.
func SignedArea(polygon []r2.Point) float64 {
	var sum float64
	for i, vertex := range polygon {
		sum += vertex.Cross(polygon[CircularIndex(i+1, len(polygon))])
	}
	return sum / 2
}

// Largest side of the bounding box. Used to scale tolerances to the input.
func Extent(points []r2.Point) float64 {
	if len(points) == 0 {
		return 0
	}
	size := r2.RectFromPoints(points...).Size()
	return math.Max(size.X, size.Y)
}

type Stack[T any] []T

func (s *Stack[T]) Push(v T) {
	*s = append(*s, v)
}

func (s *Stack[T]) Pop() T {
	var zero T
	if len(*s) == 0 {
		return zero
	}
	v := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return v
}

func (s *Stack[T]) Peek() T {
	var zero T
	if len(*s) == 0 {
		return zero
	}
	return (*s)[len(*s)-1]
}

func (s *Stack[T]) Empty() bool {
	return len(*s) == 0
}
