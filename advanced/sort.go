package advanced

import "sort"

// Diagonals are passed around as flat int slices, two polygon-local vertex
// indices per diagonal, the layout the host's mesh code uses.

// SortPolygonDiagonals orders diagonals by increasing last index, then by
// decreasing first index. Each pair is first reordered so its smaller index
// comes first. Such an ordered list for a 9-gon might be
// (1,3),(0,3),(0,4),(5,7),(4,7),(4,8), which lets GetTriangles convert it in a
// single linear pass.
//
// The sort is in place. A trailing odd element is left untouched.
func SortPolygonDiagonals(diag []int) {
	pairs := diagonalPairs(diag[:len(diag)&^1])
	for i := 0; i < pairs.Len(); i++ {
		if pairs[2*i] > pairs[2*i+1] {
			pairs[2*i], pairs[2*i+1] = pairs[2*i+1], pairs[2*i]
		}
	}
	sort.Sort(pairs)
}

// Order two canonical diagonals: negative if (a0,a1) sorts first.
func compareDiagonals(a0, a1, b0, b1 int) int {
	if a1 != b1 {
		return a1 - b1
	}
	return b0 - a0
}

type diagonalPairs []int

func (p diagonalPairs) Len() int {
	return len(p) / 2
}

func (p diagonalPairs) Less(i, j int) bool {
	return compareDiagonals(p[2*i], p[2*i+1], p[2*j], p[2*j+1]) < 0
}

func (p diagonalPairs) Swap(i, j int) {
	p[2*i], p[2*j] = p[2*j], p[2*i]
	p[2*i+1], p[2*j+1] = p[2*j+1], p[2*i+1]
}
