/*
Package polygon implements polygons and polylines of pairs: control polygons
of Bezier curves and rectangular viewports.

Geometric predicates (containment, bounding boxes, clipping) are delegated to
package polyclip.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/bezier"
	"github.com/npillmayer/schuko/tracing"
)

// L traces to the polygon tracer.
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// Polygon is an ordered sequence of knots. A cyclic polygon is closed, an open
// one is a polyline.
type Polygon struct {
	knots polyclip.Contour
	cycle bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder
// calls:
//
//	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()
func NullPolygon() *Polygon {
	return &Polygon{}
}

// FromPairs creates an open polygon with knots pts.
func FromPairs(pts []bezier.Pair) *Polygon {
	pg := &Polygon{knots: make(polyclip.Contour, 0, len(pts))}
	for _, p := range pts {
		pg.Knot(p)
	}
	return pg
}

// Box creates a closed axis-aligned rectangle from two opposite corners.
func Box(a, b bezier.Pair) *Polygon {
	x0, y0 := min(a.X(), b.X()), min(a.Y(), b.Y())
	x1, y1 := max(a.X(), b.X()), max(a.Y(), b.Y())
	return NullPolygon().Knot(bezier.P(x0, y0)).Knot(bezier.P(x1, y0)).
		Knot(bezier.P(x1, y1)).Knot(bezier.P(x0, y1)).Cycle()
}

// Knot appends a knot. Part of builder functionality.
func (pg *Polygon) Knot(p bezier.Pair) *Polygon {
	pg.knots.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// End leaves the polygon open. Part of builder functionality.
func (pg *Polygon) End() *Polygon {
	return pg
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.knots)
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// Pt returns knot i.
func (pg *Polygon) Pt(i int) bezier.Pair {
	k := pg.knots[i]
	return bezier.P(k.X, k.Y)
}

// Points returns the knots as a new slice of pairs.
func (pg *Polygon) Points() []bezier.Pair {
	pts := make([]bezier.Pair, len(pg.knots))
	for i, k := range pg.knots {
		pts[i] = bezier.P(k.X, k.Y)
	}
	return pts
}

// Contains is a predicate: is p inside the area enclosed by the polygon?
// Open polygons are treated as if they were closed.
func (pg *Polygon) Contains(p bezier.Pair) bool {
	if pg.N() < 3 {
		return false
	}
	return pg.knots.Contains(polyclip.Point{X: p.X(), Y: p.Y()})
}

// BoundingBox returns the lower-left and upper-right corner of the smallest
// axis-aligned rectangle containing all knots.
func (pg *Polygon) BoundingBox() (bezier.Pair, bezier.Pair) {
	if pg.N() == 0 {
		return bezier.Origin, bezier.Origin
	}
	bb := pg.knots.BoundingBox()
	return bezier.P(bb.Min.X, bb.Min.Y), bezier.P(bb.Max.X, bb.Max.Y)
}

// Overlaps is a predicate: do the bounding boxes of pg and other intersect?
func (pg *Polygon) Overlaps(other *Polygon) bool {
	if pg.N() == 0 || other.N() == 0 {
		return false
	}
	return pg.knots.BoundingBox().Overlaps(other.knots.BoundingBox())
}

// Intersection clips polygon a against polygon b and returns the contours of
// the common area. Both polygons are treated as closed.
func Intersection(a, b *Polygon) []*Polygon {
	subject := polyclip.Polygon{a.knots}
	clipping := polyclip.Polygon{b.knots}
	result := subject.Construct(polyclip.INTERSECTION, clipping)
	L().Debugf("intersection has %d contour(s)", len(result))
	pgs := make([]*Polygon, 0, len(result))
	for _, c := range result {
		pgs = append(pgs, &Polygon{knots: c, cycle: true})
	}
	return pgs
}

// AsString returns a polygon as a (debugging) string.
func AsString(pg *Polygon) string {
	var sb strings.Builder
	for i, k := range pg.knots {
		if i > 0 {
			sb.WriteString(" -- ")
		}
		fmt.Fprintf(&sb, "(%g,%g)", k.X, k.Y)
	}
	if pg.cycle {
		sb.WriteString(" -- cycle")
	}
	return sb.String()
}
