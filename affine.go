package bezier

import (
	"fmt"
	"math"
)

// === Affine Transformations ================================================

// AT is an affine transform, a matrix type used for transforming pairs.
type AT []float64 // a 3x3 matrix, flattened by rows

// Internal constructor. Clients implicitely use this as a starting point for
// transform combinations.
func newAT() AT {
	return make([]float64, 9)
}

func (m AT) get(row, col int) float64 {
	return m[row*3+col]
}

func (m AT) set(row, col int, value float64) {
	m[row*3+col] = value
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	m := newAT()
	m.set(0, 0, 1.0)
	m.set(1, 1, 1.0)
	m.set(2, 2, 1.0)
	return m
}

// Affine creates a general affine transform from its six coefficients:
//
//	x' = a·x + b·y + e
//	y' = c·x + d·y + f
func Affine(a, b, c, d, e, f float64) AT {
	m := Identity()
	m.set(0, 0, a)
	m.set(0, 1, b)
	m.set(1, 0, c)
	m.set(1, 1, d)
	m.set(0, 2, e)
	m.set(1, 2, f)
	return m
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Pair) AT {
	return Affine(1, 0, 0, 1, p.X(), p.Y())
}

// Scaling transform. Scale x by sx and y by sy.
func Scaling(sx, sy float64) AT {
	return Affine(sx, 0, 0, sy, 0, 0)
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	sin, cos := math.Sincos(theta)
	return Affine(cos, -sin, sin, cos, 0, 0)
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// Combine 2 affine transformation to a new one: m is applied first, then n.
// Returns a new transformation without changing the argument(s).
func (m AT) Combine(n AT) AT {
	o := newAT()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += n.get(row, k) * m.get(k, col)
			}
			o.set(row, col, sum)
		}
	}
	return o
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	x, y := p.F()
	return P(
		m.get(0, 0)*x+m.get(0, 1)*y+m.get(0, 2),
		m.get(1, 0)*x+m.get(1, 1)*y+m.get(1, 2),
	)
}

// TransformAll returns a new slice holding every pair of pts transformed by m.
func (m AT) TransformAll(pts []Pair) []Pair {
	out := make([]Pair, len(pts))
	for i, p := range pts {
		out[i] = m.Transform(p)
	}
	return out
}
