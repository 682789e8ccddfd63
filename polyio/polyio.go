// Package polyio reads polygons from the simple formats the facetri tool
// accepts: whitespace separated text, YAML and SVG.
//
// Points are r3 vectors. Formats without a Z coordinate leave it at zero, so
// those polygons lie in the XY plane.
package polyio

import (
	"bufio"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Polygon []r3.Vector

type Format string

const (
	Text Format = "text"
	YAML Format = "yaml"
	SVG  Format = "svg"
)

var Formats = []string{string(Text), string(YAML), string(SVG)}

// Guess the format from a file name. Anything unrecognised is text.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	case ".svg":
		return SVG
	}
	return Text
}

func Read(format Format, r io.Reader) ([]Polygon, error) {
	switch format {
	case Text:
		return ReadText(r)
	case YAML:
		return ReadYAML(r)
	case SVG:
		return ReadSVG(r)
	}
	return nil, errors.Errorf("unknown format %q", format)
}

// Input should be newline separated points in the form "x y" or "x y z", with
// each polygon separated by an extra newline. Lines starting with # are
// ignored.
func ReadText(r io.Reader) ([]Polygon, error) {
	polygons := []Polygon{}
	var points Polygon
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = nil
			}
			continue
		}

		point, err := parsePoint(strings.Fields(line))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading polygons")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	return polygons, nil
}

func parsePoint(fields []string) (r3.Vector, error) {
	if len(fields) != 2 && len(fields) != 3 {
		return r3.Vector{}, errors.Errorf("expected 2 or 3 coordinates, got %d", len(fields))
	}
	var coords [3]float64
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return r3.Vector{}, errors.Wrapf(err, "coordinate %d", i)
		}
		coords[i] = v
	}
	return r3.Vector{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

type yamlDocument struct {
	Polygons []struct {
		Points [][]float64 `yaml:"points"`
	} `yaml:"polygons"`
}

// Expects a document of the form
//
//	polygons:
//	  - points: [[0, 0], [1, 0], [1, 1, 0]]
func ReadYAML(r io.Reader) ([]Polygon, error) {
	var doc yamlDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return []Polygon{}, nil
		}
		return nil, errors.Wrap(err, "decoding yaml")
	}
	polygons := make([]Polygon, 0, len(doc.Polygons))
	for i, entry := range doc.Polygons {
		points := make(Polygon, 0, len(entry.Points))
		for j, coords := range entry.Points {
			if len(coords) != 2 && len(coords) != 3 {
				return nil, errors.Errorf("polygon %d point %d: expected 2 or 3 coordinates, got %d", i, j, len(coords))
			}
			p := r3.Vector{X: coords[0], Y: coords[1]}
			if len(coords) == 3 {
				p.Z = coords[2]
			}
			points = append(points, p)
		}
		polygons = append(polygons, points)
	}
	return polygons, nil
}

// This is not a full (or even correct) SVG reader. It collects the points of
// every <polygon> element, in document order. SVG's Y axis points down, so
// polygons that look counterclockwise on screen come out clockwise.
func ReadSVG(r io.Reader) ([]Polygon, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	polygons := []Polygon{}
	for i, polygonEl := range rootEl.FindAll("polygon") {
		// Points may be separated by commas, whitespace, or both
		fields := strings.FieldsFunc(polygonEl.Attributes["points"], func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
		if len(fields)%2 != 0 {
			return nil, errors.Errorf("polygon %d: odd number of coordinates", i)
		}
		points := make(Polygon, 0, len(fields)/2)
		for j := 0; j < len(fields); j += 2 {
			point, err := parsePoint(fields[j : j+2])
			if err != nil {
				return nil, errors.Wrapf(err, "polygon %d", i)
			}
			points = append(points, point)
		}
		polygons = append(polygons, points)
	}
	return polygons, nil
}
