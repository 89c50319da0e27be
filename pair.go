package bezier

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = 0.01745329251

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// === Pair Data Type ========================================================

// Pair is a 2D-point in screen space. Pairs are values; a control point has
// no identity beyond its slot in a sequence.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// IsFinite is a predicate: are both coordinates neither NaN nor infinite?
func (p Pair) IsFinite() bool {
	return !cmplx.IsNaN(complex128(p)) && !cmplx.IsInf(complex128(p))
}

// Equal compares two pairs within Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Add returns p + q.
func (p Pair) Add(q Pair) Pair {
	return P(p.X()+q.X(), p.Y()+q.Y())
}

// Sub returns p − q.
func (p Pair) Sub(q Pair) Pair {
	return P(p.X()-q.X(), p.Y()-q.Y())
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return Translation(v).Transform(p)
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise).
func (p Pair) Rotated(theta float64) Pair {
	return Rotation(theta).Transform(p)
}

// Lerp linearly interpolates between a and b:
//
//	a + (b − a)·t
//
// Both axes are interpolated with the same t, which keeps curves built from
// repeated interpolation affinely invariant. For t = 0 the result is exactly a.
func Lerp(a, b Pair, t float64) Pair {
	ax, ay := a.F()
	bx, by := b.F()
	return P(ax+(bx-ax)*t, ay+(by-ay)*t)
}

// Chebyshev returns the larger of the axis distances between p and q.
func Chebyshev(p, q Pair) float64 {
	return math.Max(math.Abs(p.X()-q.X()), math.Abs(p.Y()-q.Y()))
}
