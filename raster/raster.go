/*
Package raster draws curve samples and control polygons onto an in-memory
image. It stands in for a window when running headless, e.g. to write
snapshots of replayed editing sessions.

Polylines are drawn as one straight segment between each pair of consecutive
samples. Each segment is filled as a quad of the stroke width, clipped to the
canvas. Curve samples may well lie off the canvas; they are not an error.
*/
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/npillmayer/bezier"
	"github.com/npillmayer/bezier/polygon"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/vector"
)

// tracer writes to trace with key 'raster'
func tracer() tracing.Trace {
	return tracing.Select("raster")
}

// Default colors: red curve, white control polygon on black.
var (
	Background = color.RGBA{0, 0, 0, 255}
	CurveColor = color.RGBA{255, 0, 0, 255}
	HullColor  = color.RGBA{255, 255, 255, 255}
)

// Canvas is an RGBA image plus a reusable rasterizer.
type Canvas struct {
	img    *image.RGBA
	r      *vector.Rasterizer
	bounds *polygon.Polygon
}

// New creates a canvas of w × h pixels.
func New(w, h int) *Canvas {
	return &Canvas{
		img:    image.NewRGBA(image.Rect(0, 0, w, h)),
		r:      vector.NewRasterizer(w, h),
		bounds: polygon.Box(bezier.Origin, bezier.P(float64(w), float64(h))),
	}
}

// Image returns the canvas image.
func (cv *Canvas) Image() *image.RGBA {
	return cv.img
}

// Clear fills the canvas with c.
func (cv *Canvas) Clear(c color.Color) {
	draw.Draw(cv.img, cv.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Segment draws a straight line from a to b of the given width.
func (cv *Canvas) Segment(a, b bezier.Pair, width float64, c color.Color) {
	d := b.Sub(a)
	l := math.Hypot(d.X(), d.Y())
	var n bezier.Pair
	if l == 0 {
		n = bezier.P(width/2, 0)
		d = bezier.P(0, width/2)
		a, b = a.Sub(d), b.Add(d)
	} else {
		n = bezier.P(-d.Y(), d.X()).Scaled(width / 2 / l)
	}
	quad := polygon.NullPolygon().Knot(a.Add(n)).Knot(b.Add(n)).
		Knot(b.Sub(n)).Knot(a.Sub(n)).Cycle()
	cv.fill(quad, c)
}

// fill rasterizes a closed polygon. Polygons reaching beyond the canvas are
// clipped first.
func (cv *Canvas) fill(pg *polygon.Polygon, c color.Color) {
	lo, hi := pg.BoundingBox()
	size := cv.img.Bounds().Size()
	if lo.X() >= 0 && lo.Y() >= 0 && hi.X() <= float64(size.X) && hi.Y() <= float64(size.Y) {
		cv.rasterize(pg, c)
		return
	}
	for _, part := range polygon.Intersection(pg, cv.bounds) {
		cv.rasterize(part, c)
	}
}

func (cv *Canvas) rasterize(pg *polygon.Polygon, c color.Color) {
	if pg.N() < 3 {
		return
	}
	size := cv.img.Bounds().Size()
	cv.r.Reset(size.X, size.Y)
	cv.moveTo(pg.Pt(0))
	for i := 1; i < pg.N(); i++ {
		cv.lineTo(pg.Pt(i))
	}
	cv.r.ClosePath()
	cv.r.Draw(cv.img, cv.img.Bounds(), image.NewUniform(c), image.Point{})
}

// clamped to the canvas, so tiny overshoots from clipping stay in bounds
func (cv *Canvas) xy(p bezier.Pair) (float32, float32) {
	size := cv.img.Bounds().Size()
	x := math.Min(math.Max(p.X(), 0), float64(size.X))
	y := math.Min(math.Max(p.Y(), 0), float64(size.Y))
	return float32(x), float32(y)
}

// Polyline draws straight segments between consecutive points of pts.
func (cv *Canvas) Polyline(pts []bezier.Pair, width float64, c color.Color) {
	for i := 1; i < len(pts); i++ {
		cv.Segment(pts[i-1], pts[i], width, c)
	}
	tracer().Debugf("drew polyline of %d points", len(pts))
}

// Marker draws a square outline of side size centered at p.
func (cv *Canvas) Marker(p bezier.Pair, size float64, c color.Color) {
	h := size / 2
	corners := []bezier.Pair{
		p.Add(bezier.P(-h, -h)), p.Add(bezier.P(h, -h)),
		p.Add(bezier.P(h, h)), p.Add(bezier.P(-h, h)), p.Add(bezier.P(-h, -h)),
	}
	cv.Polyline(corners, 1, c)
}

// WritePNG encodes the canvas as PNG to w.
func (cv *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, cv.img)
}

func (cv *Canvas) moveTo(p bezier.Pair) {
	cv.r.MoveTo(cv.xy(p))
}

func (cv *Canvas) lineTo(p bezier.Pair) {
	cv.r.LineTo(cv.xy(p))
}
