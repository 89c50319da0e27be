package interact

import (
	"testing"

	"github.com/npillmayer/bezier"
	"github.com/npillmayer/bezier/casteljau"
	"github.com/npillmayer/bezier/polygon"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func press(x, y float64) Input {
	return Input{X: x, Y: y, Pressed: true}
}

func release(x, y float64) Input {
	return Input{X: x, Y: y}
}

func newController(t *testing.T, pts ...bezier.Pair) *Controller {
	t.Helper()
	c, err := New(pts, 10)
	if err != nil {
		t.Fatalf("cannot create controller: %v", err)
	}
	return c
}

func TestConfigurationErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := New([]bezier.Pair{bezier.P(0, 0), bezier.P(1, 1)}, 10)
	assert.ErrorIs(t, err, casteljau.ErrTooFewControlPoints)
	_, err = New([]bezier.Pair{bezier.P(0, 0), bezier.P(1, 1), bezier.P(2, 0)}, 0)
	assert.ErrorIs(t, err, casteljau.ErrInvalidSteps)
}

func TestHit(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	q := bezier.P(100, 100)
	assert.True(t, Hit(bezier.P(129, 71), q, 30))
	assert.False(t, Hit(bezier.P(130, 100), q, 30), "threshold is exclusive")
	assert.False(t, Hit(bezier.P(100, 131), q, 30))
	assert.True(t, Hit(bezier.P(125, 125), q, 30), "metric is axis-wise, not Euclidean")
}

func TestGrabDragRelease(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := newController(t, bezier.P(0, 0), bezier.P(100, 100), bezier.P(200, 0))
	assert.Equal(t, Idle, c.State())
	c.Update(press(110, 95))
	i, ok := c.Grabbed()
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, Dragging, c.State())
	assert.Equal(t, bezier.P(110, 95), c.Points()[1])
	c.Update(press(300, 400))
	c.Update(press(320, 410))
	assert.Equal(t, bezier.P(320, 410), c.Points()[1])
	c.Update(release(500, 500))
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, bezier.P(320, 410), c.Points()[1], "release must not move the point")
	_, ok = c.Grabbed()
	assert.False(t, ok)
}

func TestGrabExclusivity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := newController(t, bezier.P(0, 0), bezier.P(100, 100), bezier.P(110, 110), bezier.P(400, 0))
	c.Update(press(105, 105))
	i, _ := c.Grabbed()
	assert.Equal(t, 1, i, "lowest index wins")
	for _, x := range []float64{110, 120, 200} {
		c.Update(press(x, x))
		assert.Equal(t, bezier.P(110, 110), c.Points()[2], "second point must stay put")
	}
	assert.Equal(t, bezier.P(200, 200), c.Points()[1])
}

func TestIdleMotionAndRelease(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []bezier.Pair{bezier.P(0, 0), bezier.P(100, 100), bezier.P(200, 0)}
	c := newController(t, pts...)
	c.Update(release(100, 100))
	c.Update(release(3, 4))
	c.Update(release(3, 4))
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, pts, c.Points())
	assert.Equal(t, bezier.P(3, 4), c.Pointer())
}

func TestPressMissesThenHeld(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []bezier.Pair{bezier.P(0, 0), bezier.P(100, 100), bezier.P(200, 0)}
	c := newController(t, pts...)
	c.Update(press(500, 500))
	assert.Equal(t, Idle, c.State())
	// sweeping over a point with the button held does not grab it
	c.Update(press(100, 100))
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, pts, c.Points())
	c.Update(release(100, 100))
	c.Update(press(100, 100))
	assert.Equal(t, Dragging, c.State())
}

func TestViewport(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := newController(t, bezier.P(5, 5), bezier.P(100, 100), bezier.P(200, 50))
	c.SetViewport(polygon.Box(bezier.Origin, bezier.P(640, 480)))
	c.Update(press(-10, 5))
	assert.Equal(t, Idle, c.State(), "presses outside the viewport never grab")
	c.Update(release(-10, 5))
	c.Update(press(10, 10))
	assert.Equal(t, Dragging, c.State())
	c.Update(press(-300, 900))
	assert.Equal(t, bezier.P(-300, 900), c.Points()[0], "dragging off-screen is allowed")
	assert.False(t, c.Offscreen())
}

func TestOffscreen(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := newController(t, bezier.P(700, 10), bezier.P(800, 100), bezier.P(900, 50))
	assert.False(t, c.Offscreen(), "no viewport, nothing is offscreen")
	c.SetViewport(polygon.Box(bezier.Origin, bezier.P(640, 480)))
	assert.True(t, c.Offscreen())
}

func TestHitRadius(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := newController(t, bezier.P(0, 0), bezier.P(100, 100), bezier.P(200, 0))
	assert.Equal(t, DefaultHitRadius, c.HitRadius())
	c.SetHitRadius(5)
	c.Update(press(110, 100))
	assert.Equal(t, Idle, c.State())
	c.Update(release(110, 100))
	assert.Equal(t, -1, c.Hovered())
	c.Update(release(103, 98))
	assert.Equal(t, 1, c.Hovered())
}

func TestFrame(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := newController(t, bezier.P(0, 0), bezier.P(100, 100), bezier.P(200, 0))
	samples := c.Frame(press(0, 0))
	assert.Len(t, samples, c.Steps())
	c.Frame(press(50, 60))
	samples = c.Frame(release(50, 60))
	assert.Equal(t, bezier.P(50, 60), samples[0], "curve starts at the moved first point")
	want := casteljau.Evaluate(c.Points(), c.Steps())
	for i := range want {
		assert.InDelta(t, want[i].X(), samples[i].X(), 1e-9)
		assert.InDelta(t, want[i].Y(), samples[i].Y(), 1e-9)
	}
	assert.Equal(t, 3, c.ControlPolygon().N())
	assert.Equal(t, 3, c.N())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "dragging", Dragging.String())
	assert.Equal(t, "State(7)", State(7).String())
}
