/*
Package replay drives an interaction controller from recorded pointer input,
without a window. A trace is a YAML document:

	frames:
	  - {x: 640, y: 360, pressed: true}
	  - {x: 700, y: 300, pressed: true}
	  - {x: 700, y: 300}

Each frame is one polled input snapshot, exactly as a render loop would
deliver it.
*/
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/bezier"
	"github.com/npillmayer/bezier/interact"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'replay'
func tracer() tracing.Trace {
	return tracing.Select("replay")
}

// ErrInvalidTrace is wrapped by errors reading a trace.
var ErrInvalidTrace = errors.New("invalid input trace")

// Frame is a recorded input snapshot.
type Frame struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Pressed bool    `yaml:"pressed"`
}

// Input converts a recorded frame to controller input.
func (f Frame) Input() interact.Input {
	return interact.Input{X: f.X, Y: f.Y, Pressed: f.Pressed}
}

// Trace is a sequence of recorded frames.
type Trace struct {
	Frames []Frame `yaml:"frames"`
}

// Load reads a trace from r.
func Load(r io.Reader) (*Trace, error) {
	tr := &Trace{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(tr); err != nil {
		if errors.Is(err, io.EOF) {
			return tr, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidTrace, err)
	}
	return tr, nil
}

// LoadFile reads a trace from the file at path.
func LoadFile(path string) (*Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tr, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tr, nil
}

// Drag appends frames that press at from, move in n equal steps to to, and
// release there.
func (tr *Trace) Drag(from, to bezier.Pair, n int) *Trace {
	tr.Frames = append(tr.Frames, Frame{X: from.X(), Y: from.Y(), Pressed: true})
	for i := 1; i <= n; i++ {
		p := bezier.Lerp(from, to, float64(i)/float64(n))
		tr.Frames = append(tr.Frames, Frame{X: p.X(), Y: p.Y(), Pressed: true})
	}
	tr.Frames = append(tr.Frames, Frame{X: to.X(), Y: to.Y()})
	return tr
}

// Run feeds every frame of tr to ctrl. After each frame, fn is called with the
// frame number and the curve samples of that frame. The samples are only
// valid during the call. fn may be nil.
func Run(ctrl *interact.Controller, tr *Trace, fn func(frame int, curve []bezier.Pair)) {
	for i, f := range tr.Frames {
		curve := ctrl.Frame(f.Input())
		tracer().Debugf("frame %d: %s, %s", i, ctrl.Pointer(), ctrl.State())
		if fn != nil {
			fn(i, curve)
		}
	}
	tracer().Infof("replayed %d frames", len(tr.Frames))
}
