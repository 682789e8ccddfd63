package advanced

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/osuushi/facetri/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-6

// Helper to check that a set of diagonals triangulates a counterclockwise
// polygon in the XY plane. The rules are:
// 1. There are exactly deg-3 diagonals.
// 2. No diagonal is a polygon edge, crosses a polygon edge, or leaves the polygon.
// 3. No two diagonals cross.
// 4. GetTriangles yields deg-2 triangles with distinct in-range indices.
// 5. Every triangle is counterclockwise, with non-negative area.
// 6. The sum of the areas of all triangles is equal to the area of the polygon.
func assertValidTriangulation(t *testing.T, s shape, diag []int) {
	t.Helper()
	points := make([]r2.Point, len(s))
	for i, p := range s {
		points[i] = r2.Point{X: p.X, Y: p.Y}
	}
	deg := len(points)
	require.Positive(t, geom.SignedArea(points), "polygon is not counterclockwise")
	require.Len(t, diag, 2*(deg-3), "wrong number of diagonals")

	for d := 0; d < len(diag); d += 2 {
		a, b := diag[d], diag[d+1]
		require.True(t, a >= 0 && a < deg && b >= 0 && b < deg, "diagonal (%d,%d) out of range", a, b)
		require.False(t, geom.CircularIndex(a-b, deg) <= 1 || geom.CircularIndex(b-a, deg) <= 1, "diagonal (%d,%d) is an edge", a, b)
		assert.True(t, geom.ContainsEvenOdd(points, points[a].Add(points[b]).Mul(0.5)), "diagonal (%d,%d) leaves the polygon", a, b)
		for i := range points {
			j := geom.CircularIndex(i+1, deg)
			assert.False(t, geom.SegmentsCross(points[a], points[b], points[i], points[j], 0), "diagonal (%d,%d) crosses edge (%d,%d)", a, b, i, j)
		}
		for e := d + 2; e < len(diag); e += 2 {
			c, f := diag[e], diag[e+1]
			assert.False(t, geom.SegmentsCross(points[a], points[b], points[c], points[f], 0), "diagonal (%d,%d) crosses diagonal (%d,%d)", a, b, c, f)
		}
	}

	tri, err := GetTriangles(deg, append([]int(nil), diag...))
	require.NoError(t, err)
	require.Len(t, tri, 3*(deg-2))

	var triangleArea float64
	for i := 0; i < len(tri); i += 3 {
		a, b, c := tri[i], tri[i+1], tri[i+2]
		require.True(t, a != b && b != c && a != c, "triangle %d repeats a vertex: %v", i/3, tri[i:i+3])
		area := geom.Cross(points[a], points[b], points[c]) / 2
		assert.GreaterOrEqual(t, area, -epsilon, "triangle %v is clockwise", tri[i:i+3])
		triangleArea += area
	}
	assert.InDelta(t, geom.SignedArea(points), triangleArea, epsilon, "sum of the triangle areas must equal the polygon area")
}

// Sum of triangle areas, in the XY plane.
func trianglesArea(s shape, tri []int) float64 {
	var sum float64
	for i := 0; i < len(tri); i += 3 {
		a, b, c := s[tri[i]], s[tri[i+1]], s[tri[i+2]]
		sum += ((b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)) / 2
	}
	return sum
}
