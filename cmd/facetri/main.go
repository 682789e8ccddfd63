package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/facetri"
	"github.com/osuushi/facetri/advanced"
	"github.com/osuushi/facetri/dbg"
	"github.com/osuushi/facetri/polyio"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Triangulate polygons read from a file (or stdin) and print the triangles,
// one "a b c" line each, as indices into the polygon's points.
//
// Text input is newline separated points in the form "x y" or "x y z", with
// each polygon separated by an extra newline. YAML and SVG are also accepted.
func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "facetri:", err)
		os.Exit(1)
	}
}

type options struct {
	file      string
	format    string
	strategy  string
	png       string
	imgcat    bool
	scale     float64
	tolerance float64
	verbose   bool
	noColor   bool
}

func parseArgs(args []string) (*options, error) {
	opts := &options{}
	app := kingpin.New("facetri", "Triangulate polygonal faces.")
	app.Arg("file", "Polygon file. Reads stdin when omitted.").StringVar(&opts.file)
	app.Flag("format", "Input format. Guessed from the file extension by default.").Short('f').EnumVar(&opts.format, polyio.Formats...)
	app.Flag("strategy", "Diagonal finder to use.").Short('s').Default("general").EnumVar(&opts.strategy, "general", "convex")
	app.Flag("png", "Render the triangulation to a PNG file.").StringVar(&opts.png)
	app.Flag("imgcat", "Show the rendered PNG in the terminal.").BoolVar(&opts.imgcat)
	app.Flag("scale", "Pixels per unit when rendering.").Default("20").Float64Var(&opts.scale)
	app.Flag("tolerance", "Relative tolerance for collinearity tests.").Default(fmt.Sprint(advanced.DefaultTolerance)).Float64Var(&opts.tolerance)
	app.Flag("verbose", "Log how each polygon is triangulated.").Short('v').BoolVar(&opts.verbose)
	app.Flag("no-color", "Disable colored output.").BoolVar(&opts.noColor)
	if _, err := app.Parse(args); err != nil {
		return nil, err
	}
	if opts.imgcat && opts.png == "" {
		return nil, errors.New("--imgcat needs --png")
	}
	return opts, nil
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if opts.verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return errors.Wrap(err, "creating logger")
		}
		defer logger.Sync() //nolint:errcheck
	}

	polygons, err := readPolygons(opts, stdin)
	if err != nil {
		return err
	}
	logger.Debug("read polygons", zap.Int("count", len(polygons)), zap.String("strategy", opts.strategy))

	au := aurora.NewAurora(!opts.noColor)
	for n, polygon := range polygons {
		verts := make([]facetri.Point, len(polygon))
		for i, p := range polygon {
			verts[i] = advanced.FromR3(p)
		}
		// Validation problems are only warnings: the triangulators cope with most
		// of them.
		for _, problem := range multierr.Errors(advanced.ValidateFace(advanced.BufferProxy[int]{}, advanced.NewBufferProxy(verts))) {
			fmt.Fprintln(stdout, au.Yellow(fmt.Sprintf("polygon %d: warning: %v", n, problem)))
		}

		tri, err := triangulate(opts, verts, logger.With(zap.Int("polygon", n)))
		switch {
		case err == nil:
			fmt.Fprintln(stdout, au.Green(fmt.Sprintf("polygon %d: %d triangles", n, len(tri)/3)))
		case errors.Is(err, advanced.ErrDegenerateInput) && tri != nil:
			fmt.Fprintln(stdout, au.Red(fmt.Sprintf("polygon %d: %d triangles, incomplete: %v", n, len(tri)/3, err)))
		default:
			fmt.Fprintln(stdout, au.Yellow(fmt.Sprintf("polygon %d skipped: %v", n, err)))
			continue
		}
		for i := 0; i < len(tri); i += 3 {
			fmt.Fprintf(stdout, "%d %d %d\n", tri[i], tri[i+1], tri[i+2])
		}

		if opts.png != "" {
			path := pngPath(opts.png, n, len(polygons))
			if err := dbg.SavePNG(path, dbg.DrawTriangulation(polygon, tri, opts.scale)); err != nil {
				return errors.Wrapf(err, "polygon %d", n)
			}
			if f, ok := stdout.(*os.File); ok && opts.imgcat {
				dbg.Cat(path, f)
			}
		}
	}
	return nil
}

func readPolygons(opts *options, stdin io.Reader) ([]polyio.Polygon, error) {
	in := stdin
	format := polyio.Format(opts.format)
	if opts.file != "" {
		f, err := os.Open(opts.file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
		if format == "" {
			format = polyio.FormatForPath(opts.file)
		}
	}
	if format == "" {
		format = polyio.Text
	}
	polygons, err := polyio.Read(format, in)
	return polygons, errors.Wrapf(err, "reading %s", format)
}

func triangulate(opts *options, verts []facetri.Point, logger *zap.Logger) ([]int, error) {
	find := facetri.Triangulate[float64]
	if opts.strategy == "convex" {
		find = facetri.TriangulateConvex[float64]
	}
	return find(nil, verts, facetri.WithLogger(logger), facetri.WithTolerance(opts.tolerance))
}

// With several polygons, each gets its own numbered image.
func pngPath(path string, n, count int) string {
	if count <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), n, ext)
}
