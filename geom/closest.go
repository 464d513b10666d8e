// Package geom implements exact point-to-triangle and point-to-mesh
// closest-distance queries used to build the signed distance field.
//
// ClosestPointTriangle is Eberly's classical seven-region decomposition of
// the squared-distance quadratic over the triangle's parametric plane,
// ported from the closest-point routine this pipeline was distilled from
// (Point2TriangleDistance): B is the triangle's first vertex, E0 = V2-B and
// E1 = V3-B span the parametric plane, and the closest point on the closed
// triangle is Q = B + s*E0 + t*E1.
package geom

import (
	"math"

	"github.com/xernobyl/distnets/vec"
)

// Result is the outcome of a closest-point query against one triangle.
type Result struct {
	DistSq float64 // squared distance, clamped to >=0
	Dist   float64 // sqrt(DistSq)
	S, T   float64 // parametric coordinates of the closest point
}

// ClosestPointTriangle computes the closest point on the closed triangle
// (b, v2, v3) to p, via Q(s,t) = a*s^2 + 2*b*s*t + c*t^2 + 2*d*s + 2*e*t + f.
func ClosestPointTriangle(p, b, v2, v3 vec.Vec3) Result {
	edge0 := vec.Sub(v2, b) // E0 = V2 - B
	edge1 := vec.Sub(v3, b) // E1 = V3 - B
	diff := vec.Sub(b, p)   // B - P

	a := vec.Dot(edge0, edge0)
	bb := vec.Dot(edge0, edge1)
	c := vec.Dot(edge1, edge1)
	d := vec.Dot(edge0, diff)
	e := vec.Dot(edge1, diff)
	f := vec.Dot(diff, diff)

	delta := math.Abs(a*c - bb*bb)

	s := bb*e - c*d
	t := bb*d - a*e

	var sqrDistance float64

	if s+t <= delta {
		switch {
		case s < 0:
			switch {
			case t < 0:
				// region 4
				if d < 0 {
					t = 0
					if -d >= a {
						s = 1
						sqrDistance = a + 2*d + f
					} else {
						s = -d / a
						sqrDistance = d*s + f
					}
				} else {
					s = 0
					switch {
					case e >= 0:
						t = 0
						sqrDistance = f
					case -e >= c:
						t = 1
						sqrDistance = c + 2*e + f
					default:
						t = -e / c
						sqrDistance = e*t + f
					}
				}
			default:
				// region 3 (s=0 edge): F(t) = c*t^2 + 2*e*t + f
				s = 0
				switch {
				case e >= 0:
					t = 0
					sqrDistance = f
				case -e >= c:
					t = 1
					sqrDistance = c + 2*e + f
				default:
					t = -e / c
					sqrDistance = e*t + f
				}
			}
		case t < 0:
			// region 5 (t=0 edge): F(s) = a*s^2 + 2*d*s + f
			t = 0
			switch {
			case d >= 0:
				s = 0
				sqrDistance = f
			case -d >= a:
				s = 1
				sqrDistance = a + 2*d + f
			default:
				s = -d / a
				sqrDistance = d*s + f
			}
		default:
			// region 0: interior minimum
			invDet := 1 / delta
			s *= invDet
			t *= invDet
			sqrDistance = s*(a*s+bb*t+2*d) + t*(bb*s+c*t+2*e) + f
		}
	} else {
		var numer, denom float64

		switch {
		case s < 0:
			// region 2
			tmp0 := bb + d
			tmp1 := c + e
			if tmp1 > tmp0 {
				numer = tmp1 - tmp0
				denom = a - 2*bb + c
				if numer >= denom {
					s, t = 1, 0
					sqrDistance = a + 2*d + f
				} else {
					s = numer / denom
					t = 1 - s
					sqrDistance = s*(a*s+bb*t+2*d) + t*(bb*s+c*t+2*e) + f
				}
			} else {
				s = 0
				switch {
				case tmp1 <= 0:
					t = 1
					sqrDistance = c + 2*e + f
				case e >= 0:
					t = 0
					sqrDistance = f
				default:
					t = -e / c
					sqrDistance = e*t + f
				}
			}
		case t < 0:
			// region 6
			tmp0 := bb + e
			tmp1 := a + d
			if tmp1 > tmp0 {
				numer = tmp1 - tmp0
				denom = a - 2*bb + c
				if numer >= denom {
					t, s = 1, 0
					sqrDistance = c + 2*e + f
				} else {
					t = numer / denom
					s = 1 - t
					sqrDistance = s*(a*s+bb*t+2*d) + t*(bb*s+c*t+2*e) + f
				}
			} else {
				t = 0
				switch {
				case tmp1 <= 0:
					s = 1
					sqrDistance = a + 2*d + f
				case d >= 0:
					s = 0
					sqrDistance = f
				default:
					s = -d / a
					sqrDistance = d*s + f
				}
			}
		default:
			// region 1 (s+t=1 edge): F(s) = (a-2b+c)s^2 + 2(b-c+d-e)s + (c+2e+f)
			numer = c + e - bb - d
			if numer <= 0 {
				s, t = 0, 1
				sqrDistance = c + 2*e + f
			} else {
				denom = a - 2*bb + c
				if numer >= denom {
					s, t = 1, 0
					sqrDistance = a + 2*d + f
				} else {
					s = numer / denom
					t = 1 - s
					sqrDistance = s*(a*s+bb*t+2*d) + t*(bb*s+c*t+2*e) + f
				}
			}
		}
	}

	if sqrDistance < 0 {
		sqrDistance = 0
	}

	return Result{DistSq: sqrDistance, Dist: math.Sqrt(sqrDistance), S: s, T: t}
}

// OnTriangleBorder derives the onBorder output from where the closest point
// landed and the three vertices' boundary flags (spec.md §4.1): a corner
// inherits that vertex's flag, an edge requires both endpoints to be
// boundary vertices, and an interior point is never on the border.
func OnTriangleBorder(s, t float64, borderB, borderV2, borderV3 bool) bool {
	switch {
	case s == 0 && t == 0:
		return borderB
	case s == 1 && t == 0:
		return borderV2
	case s == 0 && t == 1:
		return borderV3
	case t == 0:
		return borderB && borderV2 // edge B-V2
	case s == 0:
		return borderB && borderV3 // edge B-V3
	case s+t == 1:
		return borderV2 && borderV3 // edge V2-V3
	default:
		return false
	}
}
