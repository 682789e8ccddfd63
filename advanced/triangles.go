package advanced

import "github.com/pkg/errors"

// GetTriangles fills in the full triangulation of a face of degree deg from its
// diagonals. The result holds (deg-2)*3 polygon-local indices, three per
// triangle, each triangle wound the same way as the face.
//
// diag is sorted in place with SortPolygonDiagonals. The walk keeps a "next"
// chain over the boundary: each diagonal (a, b) closes off the vertices between
// a and b that are still on the chain, which are fanned from a, and then a is
// linked straight to b. Because nested diagonals sort first, a complete
// diagonal set closes exactly one triangle per diagonal.
//
// An incomplete diagonal set still yields deg-2 triangles: whatever part of the
// face was left undivided is fanned. Diagonals that are really edges, or that
// cross a diagonal processed earlier, are skipped.
func GetTriangles(deg int, diag []int) ([]int, error) {
	if deg < 3 {
		return nil, errors.Wrapf(ErrDegenerateInput, "face degree %d", deg)
	}
	tri := make([]int, 0, (deg-2)*3)
	if deg == 3 {
		return append(tri, 0, 1, 2), nil
	}

	dnum := len(diag) &^ 1
	for i, v := range diag[:dnum] {
		if v < 0 || v >= deg {
			return nil, errors.Wrapf(ErrOutOfRange, "diagonal %d endpoint %d in face of degree %d", i/2, v, deg)
		}
	}
	SortPolygonDiagonals(diag)

	// next[deg-1] == deg marks the end of the chain.
	next := make([]int, deg)
	for i := range next {
		next[i] = i + 1
	}

	for d := 0; d < dnum; d += 2 {
		a, b := diag[d], diag[d+1]
		if b-a < 2 || (a == 0 && b == deg-1) {
			continue
		}
		if next[a] < 0 || !chainReaches(next, a, b) {
			continue
		}
		tri = appendFan(tri, next, a, b)
		next[a] = b
	}
	tri = appendFan(tri, next, 0, deg-1)

	if len(tri) != (deg-2)*3 {
		fatalf("emitted %d triangles for a face of degree %d", len(tri)/3, deg)
	}
	return tri, nil
}

// Is b still on the chain after a? a must be on the chain. Chain links always
// increase, so this stops as soon as it passes b.
func chainReaches(next []int, a, b int) bool {
	v := a
	for v < b {
		v = next[v]
	}
	return v == b
}

// Fan the chain from a to last into triangles around a. The vertices in between
// leave the chain and are marked with -1.
func appendFan(tri []int, next []int, a, last int) []int {
	for v := next[a]; v != last; {
		n := next[v]
		tri = append(tri, a, v, n)
		next[v] = -1
		v = n
	}
	return tri
}
