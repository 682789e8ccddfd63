package advanced

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"golang.org/x/exp/constraints"
)

// A vertex position. The triangulators are generic over the coordinate type,
// so single and double precision meshes share one implementation.
type Vec3[T constraints.Float] struct {
	X, Y, Z T
}

func (v Vec3[T]) mgl() mgl64.Vec3 {
	return mgl64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

func FromR3(v r3.Vector) Vec3[float64] {
	return Vec3[float64]{v.X, v.Y, v.Z}
}

func (v Vec3[T]) R3() r3.Vector {
	return r3.Vector{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

func FromMgl32(v mgl32.Vec3) Vec3[float32] {
	return Vec3[float32]{v[0], v[1], v[2]}
}

func FromMgl64(v mgl64.Vec3) Vec3[float64] {
	return Vec3[float64]{v[0], v[1], v[2]}
}

// Group a flat xyz array into positions. Any trailing partial triplet is
// dropped.
func Vec3sFromFlat[T constraints.Float](flat []T) []Vec3[T] {
	result := make([]Vec3[T], len(flat)/3)
	for i := range result {
		result[i] = Vec3[T]{flat[3*i], flat[3*i+1], flat[3*i+2]}
	}
	return result
}
