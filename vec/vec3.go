// Package vec implements a small 3D vector library for the distance-field
// and surface-nets pipeline. New functions added as needed.
package vec

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Vec3 is a point or direction in R^3. The core pipeline works in float64 so
// that the seven-region closest-point numerics meet the tolerances the
// pipeline is tested against; see geom.ClosestPointTriangle.
type Vec3 [3]float64

func Add(a, b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func Sub(a, b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func Dot(a, b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func Mul(a, b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func Scale(a Vec3, s float64) Vec3 {
	return Vec3{a[0] * s, a[1] * s, a[2] * s}
}

func Dot2(a Vec3) float64 {
	return a[0]*a[0] + a[1]*a[1] + a[2]*a[2]
}

func Length(a Vec3) float64 {
	return math.Sqrt(Dot2(a))
}

func Cross(a, b Vec3) Vec3 {
	return Vec3{a[1]*b[2] - a[2]*b[1], a[2]*b[0] - a[0]*b[2], a[0]*b[1] - a[1]*b[0]}
}

func Sign(a float64) float64 {
	if a > 0.0 {
		return 1.0
	}

	if a < 0.0 {
		return -1.0
	}

	return 0.0
}

// Normalize returns a unit vector pointing in the direction of a. The zero
// vector is returned unchanged (division by zero length is undefined per
// spec.md §4.4 and is the caller's responsibility to avoid).
func Normalize(a Vec3) Vec3 {
	l := Length(a)
	if l == 0 {
		return Vec3{}
	}
	return Vec3{a[0] / l, a[1] / l, a[2] / l}
}

func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v > hi {
		return hi
	}

	if v < lo {
		return lo
	}

	return v
}

func Saturate[T ~float32 | ~float64](v T) T {
	return Clamp(v, T(0.0), T(1.0))
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func Min3[T constraints.Ordered](a, b, c T) T {
	return Min(a, Min(b, c))
}

func Max3[T constraints.Ordered](a, b, c T) T {
	return Max(a, Max(b, c))
}

// MinComponents returns the element-wise minimum of a and b, used to grow an
// axis-aligned bounding box over a stream of points.
func MinComponents(a, b Vec3) Vec3 {
	return Vec3{Min(a[0], b[0]), Min(a[1], b[1]), Min(a[2], b[2])}
}

// MaxComponents returns the element-wise maximum of a and b.
func MaxComponents(a, b Vec3) Vec3 {
	return Vec3{Max(a[0], b[0]), Max(a[1], b[1]), Max(a[2], b[2])}
}
