package advanced

import (
	"math"

	"github.com/osuushi/facetri/internal/geom"
	"golang.org/x/exp/constraints"
)

// BestConvexDiagonals uses a triangulation scheme optimized for convex
// polygons to find a set of diagonals for the face, creating a triangulation
// for the polygon it forms. The face buffer is optional: if it is invalid, the
// face is assumed to be vertices 0, 1, 2, ... of verts.
//
// The face is split in half recursively. Of the diagonals joining opposite
// vertices of a sub-polygon, the one making the widest smallest angle with the
// neighbouring edges wins, which keeps triangles well shaped and recursion
// shallow. The result always holds (deg-3)*2 indices. Convexity is not checked:
// a non-convex face gets a complete set of diagonals that may leave the face.
func BestConvexDiagonals[T constraints.Float](face BufferProxy[int], verts BufferProxy[Vec3[T]], opts ...Option) ([]int, error) {
	cfg := newConfig(opts)
	f, err := projectFace(face, verts, cfg.tolerance)
	if err != nil {
		return nil, err
	}
	deg := f.degree()
	diag := make([]int, 0, (deg-3)*2)

	var work geom.Stack[[]int]
	work.Push(identityLoop(deg))
	for !work.Empty() {
		loop := work.Pop()
		if len(loop) <= 3 {
			continue
		}
		a, b := f.bestBalancedSplit(loop)
		diag = append(diag, loop[a], loop[b])
		lower, upper := splitLoop(loop, a, b)
		work.Push(lower)
		work.Push(upper)
	}
	return diag, nil
}

// Positions a < b in loop of the best diagonal between opposite vertices.
func (f *projectedFace) bestBalancedSplit(loop []int) (int, int) {
	k := len(loop)
	bestA, bestB := 0, k/2
	bestScore := math.Inf(-1)
	for i := 0; i < k; i++ {
		j := (i + k/2) % k
		a, b := i, j
		if a > b {
			a, b = b, a
		}
		score := math.Min(f.splitAngle(loop, a, b), f.splitAngle(loop, b, a))
		if score > bestScore {
			bestA, bestB, bestScore = a, b, score
		}
	}
	return bestA, bestB
}

// Smallest angle the diagonal from position i to position j makes with the
// loop edges at i.
func (f *projectedFace) splitAngle(loop []int, i, j int) float64 {
	k := len(loop)
	p := f.points[loop[i]]
	d := f.points[loop[j]].Sub(p)
	prev := f.points[loop[geom.CircularIndex(i-1, k)]].Sub(p)
	next := f.points[loop[geom.CircularIndex(i+1, k)]].Sub(p)
	return math.Min(geom.Angle(d, prev), geom.Angle(d, next))
}

func identityLoop(deg int) []int {
	loop := make([]int, deg)
	for i := range loop {
		loop[i] = i
	}
	return loop
}

// Cut loop along the diagonal between positions a < b. Both halves keep the
// loop's cyclic order and share the diagonal's endpoints.
func splitLoop(loop []int, a, b int) (lower, upper []int) {
	lower = append([]int(nil), loop[a:b+1]...)
	upper = make([]int, 0, len(loop)-(b-a)+1)
	upper = append(upper, loop[b:]...)
	upper = append(upper, loop[:a+1]...)
	return lower, upper
}
