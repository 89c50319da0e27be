/*
Package casteljau evaluates Bezier curves of arbitrary degree by de Casteljau's
construction.

A Bezier curve of degree N−1 is defined by a control polygon of N points. For
a parameter t, the curve point is found by interpolating each adjacent pair of
the polygon at t, which yields a polygon of N−1 points, and repeating this
until a single point remains.

Curves are sampled at a fixed density for rendering as a line strip. For
`steps` samples, sample i is taken at

	t = i/steps,  0 ≤ i < steps

i.e. at the left end of each step interval. The curve's terminal point at t = 1
is therefore never part of the samples; renderers usually close the gap by
drawing the control polygon.

Two flavours are provided: function Evaluate allocates a fresh sample buffer
on every call, while type Evaluator owns pre-sized buffers and is meant to be
called once per frame.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package casteljau

import (
	"errors"
	"fmt"

	"github.com/npillmayer/bezier"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'casteljau'
func tracer() tracing.Trace {
	return tracing.Select("casteljau")
}

// MinControlPoints is the minimum number of control points an Evaluator
// accepts. Two points would be a straight line, which needs no editor.
const MinControlPoints = 3

// MaxLevelSize caps the level buffer of an Evaluator, i.e. the product of
// control points and samples.
const MaxLevelSize = 1 << 24

var (
	// ErrTooFewControlPoints indicates an evaluator configured for fewer than
	// MinControlPoints control points.
	ErrTooFewControlPoints = errors.New("too few control points")
	// ErrInvalidSteps indicates a sample count below 1.
	ErrInvalidSteps = errors.New("sample count must be positive")
)

// Param returns the parameter value of sample i out of steps.
func Param(i, steps int) float64 {
	return float64(i) / float64(steps)
}

// At returns the point of the curve defined by ctrl at parameter t.
// It reduces a private copy of the control polygon one level at a time.
//
// At panics if ctrl has fewer than 2 points.
func At(ctrl []bezier.Pair, t float64) bezier.Pair {
	if len(ctrl) < 2 {
		panic(fmt.Sprintf("casteljau: curve needs at least 2 control points, have %d", len(ctrl)))
	}
	poly := make([]bezier.Pair, len(ctrl))
	copy(poly, ctrl)
	return reduce(poly, t)
}

// reduce collapses poly in place and returns the remaining point.
func reduce(poly []bezier.Pair, t float64) bezier.Pair {
	for n := len(poly) - 1; n > 0; n-- {
		for k := 0; k < n; k++ {
			poly[k] = bezier.Lerp(poly[k], poly[k+1], t)
		}
	}
	return poly[0]
}

// Evaluate samples the curve defined by ctrl at steps evenly spaced parameter
// values t = i/steps. The result is a new slice of exactly steps pairs.
//
// Evaluate panics if steps < 1 or ctrl has fewer than 2 points. Both are
// programming errors; callers validate their configuration up front.
func Evaluate(ctrl []bezier.Pair, steps int) []bezier.Pair {
	if steps < 1 {
		panic(fmt.Sprintf("casteljau: invalid sample count %d", steps))
	}
	if len(ctrl) < 2 {
		panic(fmt.Sprintf("casteljau: curve needs at least 2 control points, have %d", len(ctrl)))
	}
	samples := make([]bezier.Pair, steps)
	poly := make([]bezier.Pair, len(ctrl))
	for i := range samples {
		copy(poly, ctrl)
		samples[i] = reduce(poly, Param(i, steps))
	}
	return samples
}
