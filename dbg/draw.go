package dbg

import (
	"image"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r3"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Padding around the shape so edges on the boundary aren't clipped
const drawPadding = 20

// Render a triangulated polygon, looking down the Z axis. tri holds three
// polygon-local indices per triangle. Triangles wound against the polygon
// itself (in XY) are filled red so bad triangulations stand out, whichever way
// the input winds.
func DrawTriangulation(polygon []r3.Vector, tri []int, scale float64) image.Image {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range polygon {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if len(polygon) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	var area float64
	for i, p := range polygon {
		q := polygon[(i+1)%len(polygon)]
		area += p.X*q.Y - q.X*p.Y
	}

	c.SetLineWidth(1)
	for i := 0; i+2 < len(tri); i += 3 {
		a, b, d := polygon[tri[i]], polygon[tri[i+1]], polygon[tri[i+2]]
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.LineTo(d.X, d.Y)
		c.ClosePath()
		if ((b.X-a.X)*(d.Y-a.Y)-(b.Y-a.Y)*(d.X-a.X))*area < 0 {
			c.SetRGBA(1, 0.2, 0.2, 0.6)
		} else {
			c.SetRGBA(0, 0.5, 0, 0.6)
		}
		c.FillPreserve()
		c.SetRGB(0.6, 0.6, 0.6)
		c.Stroke()
	}

	c.SetLineWidth(2)
	if len(polygon) > 0 {
		c.MoveTo(polygon[0].X, polygon[0].Y)
		for _, p := range polygon[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
	}
	c.SetRGB(0, 1, 1)
	c.Stroke()

	return c.Image()
}

func SavePNG(path string, img image.Image) error {
	return gg.SavePNG(path, img)
}

// Print a saved PNG to an iTerm-compatible terminal.
func Cat(path string, out *os.File) {
	imgcat.CatFile(path, out)
}
