package advanced

import (
	"math"
	"math/rand"
	"os"
	"sort"
	"testing"

	"github.com/osuushi/facetri/polyio"
	"github.com/stretchr/testify/require"
)

// Shapes used across the tests. All of them lie in the XY plane and wind
// counterclockwise unless stated otherwise.

type shape []Vec3[float64]

// Load the first polygon of an SVG fixture from polyio's testdata, reversed if
// needed so it winds counterclockwise.
func loadFixture(t *testing.T, name string) shape {
	f, err := os.Open("../polyio/testdata/" + name + ".svg")
	require.NoError(t, err)
	defer f.Close()
	polygons, err := polyio.ReadSVG(f)
	require.NoError(t, err)
	require.NotEmpty(t, polygons)

	var result shape
	for _, p := range polygons[0] {
		result = append(result, FromR3(p))
	}
	if shapeArea(result) < 0 {
		result = result.reverse()
	}
	return result
}

func (s shape) reverse() shape {
	reversed := make(shape, len(s))
	for i, p := range s {
		reversed[len(s)-1-i] = p
	}
	return reversed
}

func (s shape) buffer() BufferProxy[Vec3[float64]] {
	return NewBufferProxy([]Vec3[float64](s))
}

func regularPolygon(n int, radius float64) shape {
	var points shape
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, Vec3[float64]{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return points
}

// Points at random angles on an ellipse, sorted so the polygon is convex.
func randomConvexPolygon(rng *rand.Rand, n int) shape {
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = rng.Float64() * 2 * math.Pi
	}
	sort.Float64s(angles)
	var points shape
	for _, angle := range angles {
		points = append(points, Vec3[float64]{X: 3 * math.Cos(angle), Y: math.Sin(angle)})
	}
	return points
}

func unitSquare() shape {
	return shape{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
}

// A pentagon with a deep notch in its top edge. Vertex 3 is reflex.
//
//	4   2
//	|\ /|
//	| 3 |
//	0---1
func arrow() shape {
	return shape{{0, 0, 0}, {10, 0, 0}, {6, 10, 0}, {5, 1, 0}, {4, 10, 0}}
}

func simpleStar() shape {
	var points shape
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Vec3[float64]{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return points
}

// A thick spiral band making two full turns: out along the outer edge, back
// along the inner edge.
func spiral() shape {
	const steps = 40
	const turns = 2
	var outer, inner shape
	for i := 0; i <= steps; i++ {
		theta := turns * 2 * math.Pi * float64(i) / steps
		r := 1 + theta/math.Pi
		outer = append(outer, Vec3[float64]{X: (r + 1) * math.Cos(theta), Y: (r + 1) * math.Sin(theta)})
		inner = append(inner, Vec3[float64]{X: r * math.Cos(theta), Y: r * math.Sin(theta)})
	}
	return append(outer, inner.reverse()...)
}

// Signed area in the XY plane
func shapeArea(s shape) float64 {
	var sum float64
	for i, p := range s {
		q := s[(i+1)%len(s)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}
