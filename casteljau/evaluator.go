package casteljau

import (
	"fmt"

	"github.com/npillmayer/bezier"
)

// Evaluator samples curves of a fixed number of control points at a fixed
// density. All buffers are allocated once by NewEvaluator; Evaluate does not
// allocate.
//
// The reduction runs for all samples at once: the level buffer holds one row
// of steps pairs per control point. Every row starts out as its control point,
// broadcast across all samples. Pass l interpolates rows k and k+1 into row k
// for k < N−l, each column with its own t. After N−1 passes row 0 holds the
// curve.
//
// An Evaluator is not safe for concurrent use.
type Evaluator struct {
	n       int
	steps   int
	ts      []float64     // parameter of sample i
	levels  []bezier.Pair // n rows of steps pairs
	samples []bezier.Pair // result, overwritten by each call to Evaluate
}

// NewEvaluator creates an evaluator for curves of n control points, sampled
// steps times. It returns an error wrapping ErrTooFewControlPoints or
// ErrInvalidSteps for unusable configurations, including n·steps above
// MaxLevelSize.
func NewEvaluator(n, steps int) (*Evaluator, error) {
	if n < MinControlPoints {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrTooFewControlPoints, MinControlPoints, n)
	}
	if steps < 1 {
		return nil, fmt.Errorf("%w: have %d", ErrInvalidSteps, steps)
	}
	if steps > MaxLevelSize/n {
		return nil, fmt.Errorf("%w: %d samples of %d control points exceed %d",
			ErrInvalidSteps, steps, n, MaxLevelSize)
	}
	ev := &Evaluator{
		n:       n,
		steps:   steps,
		ts:      make([]float64, steps),
		levels:  make([]bezier.Pair, n*steps),
		samples: make([]bezier.Pair, steps),
	}
	for i := range ev.ts {
		ev.ts[i] = Param(i, steps)
	}
	tracer().Debugf("evaluator for %d control points, %d samples", n, steps)
	return ev, nil
}

// N returns the number of control points the evaluator expects.
func (ev *Evaluator) N() int {
	return ev.n
}

// Steps returns the number of samples per curve.
func (ev *Evaluator) Steps() int {
	return ev.steps
}

func (ev *Evaluator) row(k int) []bezier.Pair {
	return ev.levels[k*ev.steps : (k+1)*ev.steps]
}

// Evaluate samples the curve for control polygon ctrl. The returned slice is
// owned by the evaluator and is overwritten by the next call; callers must
// consume it before evaluating again.
//
// Evaluate panics if len(ctrl) differs from N().
func (ev *Evaluator) Evaluate(ctrl []bezier.Pair) []bezier.Pair {
	if len(ctrl) != ev.n {
		panic(fmt.Sprintf("casteljau: evaluator expects %d control points, have %d", ev.n, len(ctrl)))
	}
	for k, c := range ctrl {
		r := ev.row(k)
		for i := range r {
			r[i] = c
		}
	}
	for l := 1; l < ev.n; l++ {
		for k := 0; k < ev.n-l; k++ {
			lo, hi := ev.row(k), ev.row(k+1)
			for i, t := range ev.ts {
				lo[i] = bezier.Lerp(lo[i], hi[i], t)
			}
		}
	}
	copy(ev.samples, ev.row(0))
	return ev.samples
}
