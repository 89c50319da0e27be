/*
Package config holds the startup constants of the curve editor: viewport size,
control points, sample density and grab radius.

Configuration is read from YAML:

	width: 1280
	height: 720
	steps: 100
	hit_radius: 30
	points:
	  - [0, 0]
	  - [640, 360]
	  - [1280, 720]
	trace: info

Every value is optional. Without explicit points, `count` control points are
laid out between the upper-left and the lower-right corner of the viewport.
An invalid configuration is fatal: callers must not enter the render loop.
*/
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"

	"github.com/npillmayer/bezier"
	"github.com/npillmayer/bezier/casteljau"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'config'
func tracer() tracing.Trace {
	return tracing.Select("config")
}

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("invalid configuration")

// Defaults.
const (
	DefaultWidth     = 1280
	DefaultHeight    = 720
	DefaultSteps     = 100
	DefaultHitRadius = 30.0
	DefaultCount     = 4
	MaxPixels        = 1 << 26 // cap on width·height of the viewport
)

// Config is the startup configuration. It is fixed for the lifetime of a run.
type Config struct {
	Width     int          `yaml:"width"`
	Height    int          `yaml:"height"`
	Steps     int          `yaml:"steps"`
	HitRadius float64      `yaml:"hit_radius"`
	Count     int          `yaml:"count"`
	Points    [][2]float64 `yaml:"points"`
	Trace     string       `yaml:"trace"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Steps:     DefaultSteps,
		HitRadius: DefaultHitRadius,
		Count:     DefaultCount,
		Trace:     "error",
	}
}

// Load reads a YAML configuration from r. Missing values keep their defaults.
// The result is validated.
func Load(r io.Reader) (*Config, error) {
	conf := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(conf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// LoadFile reads the configuration from the YAML file at path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	conf, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tracer().Infof("configuration loaded from %s", path)
	return conf, nil
}

// N returns the number of control points.
func (conf *Config) N() int {
	if len(conf.Points) > 0 {
		return len(conf.Points)
	}
	return conf.Count
}

// Validate checks the configuration constants.
func (conf *Config) Validate() error {
	if conf.Width <= 0 || conf.Height <= 0 || conf.Width > MaxPixels/conf.Height {
		return fmt.Errorf("%w: viewport %dx%d", ErrInvalidConfig, conf.Width, conf.Height)
	}
	if conf.Steps <= 0 {
		return fmt.Errorf("%w: steps must be positive, have %d", ErrInvalidConfig, conf.Steps)
	}
	n := conf.N()
	if n < casteljau.MinControlPoints {
		return fmt.Errorf("%w: need at least %d control points, have %d",
			ErrInvalidConfig, casteljau.MinControlPoints, n)
	}
	if conf.Steps > casteljau.MaxLevelSize/n {
		return fmt.Errorf("%w: %d steps for %d control points exceed %d",
			ErrInvalidConfig, conf.Steps, n, casteljau.MaxLevelSize)
	}
	for i, p := range conf.Points {
		if !bezier.P(p[0], p[1]).IsFinite() {
			return fmt.Errorf("%w: control point %d is not finite", ErrInvalidConfig, i)
		}
	}
	if !(conf.HitRadius > 0) || math.IsInf(conf.HitRadius, 0) {
		return fmt.Errorf("%w: hit radius must be positive and finite, have %g", ErrInvalidConfig, conf.HitRadius)
	}
	if _, ok := traceLevels[conf.Trace]; !ok {
		return fmt.Errorf("%w: unknown trace level %q", ErrInvalidConfig, conf.Trace)
	}
	return nil
}

var traceLevels = map[string]tracing.TraceLevel{
	"":      tracing.LevelError,
	"error": tracing.LevelError,
	"info":  tracing.LevelInfo,
	"debug": tracing.LevelDebug,
}

// TraceLevel returns the configured trace level.
func (conf *Config) TraceLevel() tracing.TraceLevel {
	return traceLevels[conf.Trace]
}

// TraceKeys are the tracer keys used by the packages of this module.
var TraceKeys = []string{"casteljau", "interact", "polygon", "config", "replay", "raster"}

// ApplyTraceLevel sets the configured trace level for the tracers of this
// module and for any additional keys.
func (conf *Config) ApplyTraceLevel(keys ...string) {
	level := conf.TraceLevel()
	for _, key := range slices.Concat(TraceKeys, keys) {
		tracing.Select(key).SetTraceLevel(level)
	}
}

// ControlPoints returns the initial control polygon. Explicit points are
// returned as given. Otherwise the first point is at the upper-left corner
// and the last at the lower-right corner of the viewport; points in between
// advance evenly in x and alternate between the upper and lower quarter in y.
func (conf *Config) ControlPoints() []bezier.Pair {
	if len(conf.Points) > 0 {
		pts := make([]bezier.Pair, len(conf.Points))
		for i, p := range conf.Points {
			pts[i] = bezier.P(p[0], p[1])
		}
		return pts
	}
	n := conf.Count
	w, h := float64(conf.Width), float64(conf.Height)
	pts := make([]bezier.Pair, n)
	for i := range pts {
		x := w * float64(i) / float64(n-1)
		var y float64
		switch {
		case i == 0:
			y = 0
		case i == n-1:
			y = h
		case i%2 == 1:
			y = h / 4
		default:
			y = h * 3 / 4
		}
		pts[i] = bezier.P(x, y)
	}
	return pts
}
