package advanced

import (
	"github.com/golang/geo/r2"
	"github.com/osuushi/facetri/dbg"
	"github.com/osuushi/facetri/internal/geom"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/constraints"
)

// FindDiagonals finds diagonals for the face, creating a triangulation for the
// polygon it forms. Unlike BestConvexDiagonals it handles concave faces, and it
// tolerates collinear and coincident vertices. The face buffer is optional, as
// for BestConvexDiagonals.
//
// The face is clipped one ear at a time. When no proper ear exists (which only
// happens with degenerate geometry) any interior diagonal is searched for
// exhaustively and the two halves are triangulated separately; failing that, a
// zero-area corner is clipped. A sub-polygon for which none of these work, as
// can happen with self-intersecting faces, is left undivided.
//
// The result holds at most (deg-3)*2 indices. Fewer means the triangulation is
// incomplete; that is not reported as an error, so callers that care must
// compare the length themselves.
func FindDiagonals[T constraints.Float](face BufferProxy[int], verts BufferProxy[Vec3[T]], opts ...Option) ([]int, error) {
	cfg := newConfig(opts)
	f, err := projectFace(face, verts, cfg.tolerance)
	if err != nil {
		return nil, err
	}
	finder := &earClipper{projectedFace: f, logger: cfg.logger}
	return finder.run(), nil
}

type earClipper struct {
	*projectedFace
	logger *zap.Logger
	diag   []int
}

// A sub-polygon still to be triangulated, as polygon-local vertex indices in
// boundary order.
type subPolygon struct {
	loop []int
}

func (c *earClipper) run() []int {
	deg := c.degree()
	c.diag = make([]int, 0, (deg-3)*2)

	var work geom.Stack[*subPolygon]
	work.Push(&subPolygon{identityLoop(deg)})
	for !work.Empty() {
		for _, part := range c.clip(work.Pop()) {
			work.Push(part)
		}
	}

	if len(c.diag) > (deg-3)*2 {
		fatalf("found %d diagonals for a face of degree %d", len(c.diag)/2, deg)
	}
	return c.diag
}

// Clip ears off sub until it is a triangle. Returns the halves to carry on with
// if it had to be split instead.
func (c *earClipper) clip(sub *subPolygon) []*subPolygon {
	cursor := 0
	for len(sub.loop) > 3 {
		if i, ok := c.findEar(sub.loop, cursor, false); ok {
			sub.loop, cursor = c.clipEar(sub.loop, i)
			continue
		}

		if a, b, ok := c.findSplit(sub.loop); ok {
			c.log(zapcore.DebugLevel, "no ear, splitting", sub, zap.Int("a", sub.loop[a]), zap.Int("b", sub.loop[b]))
			c.diag = append(c.diag, sub.loop[a], sub.loop[b])
			lower, upper := splitLoop(sub.loop, a, b)
			return []*subPolygon{{lower}, {upper}}
		}

		if i, ok := c.findEar(sub.loop, cursor, true); ok {
			c.log(zapcore.DebugLevel, "no ear or split, clipping degenerate corner", sub, zap.Int("vertex", sub.loop[i]))
			sub.loop, cursor = c.clipEar(sub.loop, i)
			continue
		}

		c.log(zapcore.WarnLevel, "sub-polygon could not be triangulated", sub, zap.Ints("vertices", sub.loop))
		return nil
	}
	return nil
}

// Sub-polygons get readable names so their fate can be followed through the
// log.
func (c *earClipper) log(level zapcore.Level, msg string, sub *subPolygon, fields ...zap.Field) {
	if ce := c.logger.Check(level, msg); ce != nil {
		fields = append(fields, zap.String("subPolygon", dbg.Name(sub)), zap.Int("size", len(sub.loop)))
		ce.Write(fields...)
	}
}

// Record the diagonal cutting off the ear at position i, and remove it. The
// returned cursor is where the next ear search should begin.
func (c *earClipper) clipEar(loop []int, i int) ([]int, int) {
	k := len(loop)
	c.diag = append(c.diag, loop[geom.CircularIndex(i-1, k)], loop[geom.CircularIndex(i+1, k)])
	loop = append(loop[:i], loop[i+1:]...)
	return loop, geom.CircularIndex(i-1, len(loop))
}

// Find an ear, scanning from position start. A relaxed search accepts only
// zero-area corners, which a strict search never does.
func (c *earClipper) findEar(loop []int, start int, relaxed bool) (int, bool) {
	k := len(loop)
	for n := 0; n < k; n++ {
		i := geom.CircularIndex(start+n, k)
		if c.isEar(loop, i, relaxed) {
			return i, true
		}
	}
	return 0, false
}

func (c *earClipper) isEar(loop []int, i int, relaxed bool) bool {
	k := len(loop)
	prev := loop[geom.CircularIndex(i-1, k)]
	cur := loop[i]
	next := loop[geom.CircularIndex(i+1, k)]
	a, b, d := c.points[prev], c.points[cur], c.points[next]

	orientation := geom.Orientation(a, b, d, c.areaTolerance)
	if relaxed {
		if orientation != 0 {
			return false
		}
	} else {
		if orientation <= 0 {
			return false
		}
		for _, v := range loop {
			if v == prev || v == cur || v == next {
				continue
			}
			p := c.points[v]
			if c.coincident(p, a) || c.coincident(p, b) || c.coincident(p, d) {
				continue
			}
			if geom.InTriangle(p, a, b, d, c.areaTolerance) {
				return false
			}
		}
	}
	return !c.crossesLoop(loop, prev, next)
}

// Find positions a < b of an interior diagonal of loop.
func (c *earClipper) findSplit(loop []int) (int, int, bool) {
	k := len(loop)
	var polygon []r2.Point
	for a := 0; a < k; a++ {
		for b := a + 2; b < k; b++ {
			if a == 0 && b == k-1 {
				continue
			}
			if !c.isInteriorDiagonal(loop, a, b) {
				continue
			}
			if polygon == nil {
				polygon = make([]r2.Point, k)
				for i, v := range loop {
					polygon[i] = c.points[v]
				}
			}
			if geom.ContainsEvenOdd(polygon, polygon[a].Add(polygon[b]).Mul(0.5)) {
				return a, b, true
			}
		}
	}
	return 0, 0, false
}

func (c *earClipper) isInteriorDiagonal(loop []int, a, b int) bool {
	k := len(loop)
	pa, pb := c.points[loop[a]], c.points[loop[b]]
	if c.coincident(pa, pb) {
		return false
	}
	prev := c.points[loop[geom.CircularIndex(a-1, k)]]
	next := c.points[loop[geom.CircularIndex(a+1, k)]]
	if !geom.InCone(pa, pb, prev, next, c.areaTolerance) {
		return false
	}
	for i, v := range loop {
		if i == a || i == b {
			continue
		}
		if geom.OnOpenSegment(c.points[v], pa, pb, c.areaTolerance) {
			return false
		}
	}
	return !c.crossesLoop(loop, loop[a], loop[b])
}

// Does the segment between vertices u and v properly cross any edge of loop?
func (c *earClipper) crossesLoop(loop []int, u, v int) bool {
	pu, pv := c.points[u], c.points[v]
	for i, s := range loop {
		e := loop[geom.CircularIndex(i+1, len(loop))]
		if s == u || s == v || e == u || e == v {
			continue
		}
		if geom.SegmentsCross(pu, pv, c.points[s], c.points[e], c.areaTolerance) {
			return true
		}
	}
	return false
}

func (c *earClipper) coincident(p, q r2.Point) bool {
	d := p.Sub(q)
	return d.Dot(d) <= c.areaTolerance
}
