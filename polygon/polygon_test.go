package polygon

import (
	"testing"

	"github.com/npillmayer/bezier"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(bezier.P(0, 0)).Knot(bezier.P(1, 3)).Knot(bezier.P(3, 0)).Cycle()
	L().Infof("pg = %s", AsString(pg))
	if pg.N() != 3 {
		t.Fail()
	}
	assert.Equal(t, "(0,0) -- (1,3) -- (3,0) -- cycle", AsString(pg))
	assert.True(t, pg.IsCycle())
	assert.Equal(t, bezier.P(1, 3), pg.Pt(1))
}

func TestBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(bezier.P(0, 5), bezier.P(4, 1))
	L().Infof("box = %s", AsString(box))
	if box.N() != 4 {
		t.Fail()
	}
	lo, hi := box.BoundingBox()
	assert.Equal(t, bezier.P(0, 1), lo)
	assert.Equal(t, bezier.P(4, 5), hi)
}

func TestContains(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	viewport := Box(bezier.Origin, bezier.P(1280, 720))
	assert.True(t, viewport.Contains(bezier.P(640, 360)))
	assert.False(t, viewport.Contains(bezier.P(-3, 360)))
	assert.False(t, viewport.Contains(bezier.P(640, 900)))
	assert.False(t, FromPairs([]bezier.Pair{bezier.P(0, 0), bezier.P(9, 9)}).Contains(bezier.P(1, 1)))
}

func TestOverlaps(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	viewport := Box(bezier.Origin, bezier.P(100, 100))
	inside := FromPairs([]bezier.Pair{bezier.P(10, 10), bezier.P(50, 80), bezier.P(90, 20)})
	outside := FromPairs([]bezier.Pair{bezier.P(200, 10), bezier.P(250, 80), bezier.P(290, 20)})
	assert.True(t, inside.Overlaps(viewport))
	assert.False(t, outside.Overlaps(viewport))
	assert.False(t, NullPolygon().Overlaps(viewport))
}

func TestIntersection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Box(bezier.Origin, bezier.P(10, 10))
	b := Box(bezier.P(5, 5), bezier.P(20, 20))
	clipped := Intersection(a, b)
	if assert.Len(t, clipped, 1) {
		lo, hi := clipped[0].BoundingBox()
		assert.InDelta(t, 5.0, lo.X(), 1e-9)
		assert.InDelta(t, 5.0, lo.Y(), 1e-9)
		assert.InDelta(t, 10.0, hi.X(), 1e-9)
		assert.InDelta(t, 10.0, hi.Y(), 1e-9)
	}
	far := Box(bezier.P(50, 50), bezier.P(60, 60))
	assert.Empty(t, Intersection(a, far))
}

func TestOpenPolyline(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []bezier.Pair{bezier.P(0, 0), bezier.P(4, 2), bezier.P(8, 0)}
	pl := NullPolygon().Knot(pts[0]).Knot(pts[1]).Knot(pts[2]).End()
	assert.False(t, pl.IsCycle())
	assert.Equal(t, "(0,0) -- (4,2) -- (8,0)", AsString(pl))
	assert.Equal(t, pts, pl.Points())
	assert.Equal(t, pts, FromPairs(pts).Points())
}
