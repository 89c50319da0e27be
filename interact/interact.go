/*
Package interact implements mouse-driven editing of a Bezier control polygon.

A Controller owns the control points. Once per frame it is handed a snapshot
of the pointer (position and primary button) and moves control points
accordingly:

	Idle ──press on point i──▶ Dragging(i) ──release──▶ Idle
	                           │  ▲
	                           └──┘ held: point i follows the pointer

A press grabs a control point if the pointer is closer than the hit radius to
it on both axes. Grabbing is edge-triggered: only the frame in which the button
goes down can grab, so sweeping over points with the button held leaves them
alone. If several points qualify, the one with the lowest index
wins. Presses outside the viewport never grab; a grabbed point, however, may
be dragged off-screen.

After updating the points the controller evaluates the curve, so a render
loop only has to call Frame and draw the result.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package interact

import (
	"fmt"

	"github.com/npillmayer/bezier"
	"github.com/npillmayer/bezier/casteljau"
	"github.com/npillmayer/bezier/polygon"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'interact'
func tracer() tracing.Trace {
	return tracing.Select("interact")
}

// DefaultHitRadius is the default grab distance per axis, in pixels.
const DefaultHitRadius = 30.0

// Input is a polled snapshot of the pointer. Only the most recent snapshot
// counts; there is no event queue.
type Input struct {
	X, Y    float64
	Pressed bool // primary button
}

// At returns the pointer position.
func (in Input) At() bezier.Pair {
	return bezier.P(in.X, in.Y)
}

// State is the state of the grab/drag state machine.
type State int

// States of a Controller.
const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Hit is a predicate: is pointer p within radius r of control point q?
// Distance is measured per axis, both axes must be strictly below r.
func Hit(p, q bezier.Pair, r float64) bool {
	return bezier.Chebyshev(p, q) < r
}

// Controller owns a control polygon and the interaction state.
// It is meant to be used from a single render loop.
type Controller struct {
	points   []bezier.Pair
	grabbed  int // index into points, -1 when idle
	pointer  bezier.Pair
	pressed  bool // button state of the previous frame
	radius   float64
	viewport *polygon.Polygon
	eval     *casteljau.Evaluator
}

// New creates a controller for a copy of the control points pts. Curves will
// be sampled steps times.
//
// New returns an error if there are fewer than 3 control points or steps is
// not positive.
func New(pts []bezier.Pair, steps int) (*Controller, error) {
	ev, err := casteljau.NewEvaluator(len(pts), steps)
	if err != nil {
		return nil, err
	}
	c := &Controller{
		points:  make([]bezier.Pair, len(pts)),
		grabbed: -1,
		radius:  DefaultHitRadius,
		eval:    ev,
	}
	copy(c.points, pts)
	return c, nil
}

// SetHitRadius sets the grab distance per axis.
func (c *Controller) SetHitRadius(r float64) *Controller {
	c.radius = r
	return c
}

// SetViewport restricts grabbing to presses inside vp. A nil viewport is
// unbounded.
func (c *Controller) SetViewport(vp *polygon.Polygon) *Controller {
	c.viewport = vp
	return c
}

// Update advances the state machine by one input snapshot.
func (c *Controller) Update(in Input) {
	c.pointer = in.At()
	pressedNow := in.Pressed && !c.pressed
	c.pressed = in.Pressed
	switch {
	case !in.Pressed:
		if c.grabbed >= 0 {
			tracer().Infof("released control point %d at %s", c.grabbed, c.points[c.grabbed])
			c.grabbed = -1
		}
	case c.grabbed >= 0:
		c.points[c.grabbed] = c.pointer
	case pressedNow:
		if i := c.hit(); i >= 0 {
			tracer().Infof("grabbed control point %d at %s", i, c.points[i])
			c.grabbed = i
			c.points[i] = c.pointer
		}
	}
}

// hit returns the lowest index of a control point under the pointer, or -1.
func (c *Controller) hit() int {
	if c.viewport != nil && !c.viewport.Contains(c.pointer) {
		tracer().Debugf("pointer %s outside of viewport", c.pointer)
		return -1
	}
	for i, p := range c.points {
		if Hit(c.pointer, p, c.radius) {
			return i
		}
	}
	return -1
}

// Frame updates the control points from in and returns the curve samples for
// this frame. The samples are valid until the next call to Frame or Curve.
func (c *Controller) Frame(in Input) []bezier.Pair {
	c.Update(in)
	return c.Curve()
}

// Curve evaluates the curve for the current control points. The samples are
// valid until the next call to Frame or Curve.
func (c *Controller) Curve() []bezier.Pair {
	return c.eval.Evaluate(c.points)
}

// State returns the current state.
func (c *Controller) State() State {
	if c.grabbed >= 0 {
		return Dragging
	}
	return Idle
}

// Grabbed returns the index of the dragged control point, if any.
func (c *Controller) Grabbed() (int, bool) {
	return c.grabbed, c.grabbed >= 0
}

// Hovered returns the index of the control point a press would grab now,
// or -1.
func (c *Controller) Hovered() int {
	if c.grabbed >= 0 {
		return c.grabbed
	}
	return c.hit()
}

// Pointer returns the last observed pointer position.
func (c *Controller) Pointer() bezier.Pair {
	return c.pointer
}

// N returns the number of control points.
func (c *Controller) N() int {
	return len(c.points)
}

// Steps returns the number of curve samples per frame.
func (c *Controller) Steps() int {
	return c.eval.Steps()
}

// HitRadius returns the grab distance per axis.
func (c *Controller) HitRadius() float64 {
	return c.radius
}

// Points returns a copy of the control points.
func (c *Controller) Points() []bezier.Pair {
	pts := make([]bezier.Pair, len(c.points))
	copy(pts, c.points)
	return pts
}

// ControlPolygon returns the control points as an open polygon.
func (c *Controller) ControlPolygon() *polygon.Polygon {
	return polygon.FromPairs(c.points)
}

// Offscreen is a predicate: is the curve certainly invisible? A Bezier curve
// lies within the convex hull of its control points, so it is invisible if
// the hull's bounding box misses the viewport. Without a viewport nothing is
// offscreen.
func (c *Controller) Offscreen() bool {
	if c.viewport == nil {
		return false
	}
	return !c.ControlPolygon().Overlaps(c.viewport)
}
