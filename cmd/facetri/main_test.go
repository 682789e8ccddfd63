package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const squareText = "0 0\n1 0\n1 1\n0 1\n"

func runTool(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, run(append([]string{"--no-color"}, args...), strings.NewReader(stdin), &out))
	return out.String()
}

func TestRun(t *testing.T) {
	out := runTool(t, squareText)
	assert.Equal(t, "polygon 0: 2 triangles\n1 2 3\n0 1 3\n", out)
}

func TestRunConvex(t *testing.T) {
	out := runTool(t, squareText, "--strategy", "convex")
	assert.Equal(t, "polygon 0: 2 triangles\n0 1 2\n0 2 3\n", out)
}

func TestRunFile(t *testing.T) {
	out := runTool(t, "", "../../polyio/testdata/square.txt")
	assert.Equal(t, "polygon 0: 2 triangles\n1 2 3\n0 1 3\npolygon 1: 1 triangles\n0 1 2\n", out)

	out = runTool(t, "", "../../polyio/testdata/comb.svg")
	assert.Contains(t, out, "polygon 0: 14 triangles\n")
	assert.Contains(t, out, "polygon 1: 1 triangles\n")

	// The format flag wins over the extension
	out = runTool(t, squareText, "--format", "text")
	assert.Contains(t, out, "polygon 0: 2 triangles")
}

func TestRunDegenerate(t *testing.T) {
	out := runTool(t, "0 0\n1 1\n")
	assert.Contains(t, out, "polygon 0: warning: face degree 2: degenerate input")
	assert.Contains(t, out, "polygon 0 skipped")
}

func TestRunPNG(t *testing.T) {
	dir := t.TempDir()

	single := filepath.Join(dir, "square.png")
	runTool(t, squareText, "--png", single, "--scale", "50")
	assert.FileExists(t, single)

	several := filepath.Join(dir, "shapes.png")
	runTool(t, "", "--png", several, "../../polyio/testdata/shapes.yaml")
	assert.FileExists(t, filepath.Join(dir, "shapes-0.png"))
	assert.FileExists(t, filepath.Join(dir, "shapes-1.png"))
	_, err := os.Stat(several)
	assert.True(t, os.IsNotExist(err))
}

func TestRunVerbose(t *testing.T) {
	out := runTool(t, squareText, "--verbose")
	assert.Contains(t, out, "polygon 0: 2 triangles")
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run([]string{"no/such/file.txt"}, strings.NewReader(""), &out))
	assert.Error(t, run([]string{"--strategy", "fastest"}, strings.NewReader(""), &out))
	assert.Error(t, run([]string{"--imgcat"}, strings.NewReader(""), &out))
	assert.Error(t, run(nil, strings.NewReader("0 0\nnot a point\n"), &out))
}

func TestPNGPath(t *testing.T) {
	assert.Equal(t, "out.png", pngPath("out.png", 0, 1))
	assert.Equal(t, "dir/out-2.png", pngPath("dir/out.png", 2, 3))
}
