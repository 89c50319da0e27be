/*
Command bezreplay replays a recorded editing session and writes the last frame
as a PNG image.

	bezreplay [-config bezier.yaml] -trace session.yaml -o frame.png

Without a trace, the initial curve is drawn.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/bezier"
	"github.com/npillmayer/bezier/config"
	"github.com/npillmayer/bezier/interact"
	"github.com/npillmayer/bezier/polygon"
	"github.com/npillmayer/bezier/raster"
	"github.com/npillmayer/bezier/replay"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("bezreplay")
}

func main() {
	confPath := flag.String("config", "", "YAML configuration file")
	tracePath := flag.String("trace", "", "YAML input trace")
	out := flag.String("o", "bezier.png", "output PNG file")
	flag.Parse()
	if err := run(*confPath, *tracePath, *out); err != nil {
		fmt.Fprintf(os.Stderr, "bezreplay: %v\n", err)
		os.Exit(1)
	}
}

func run(confPath, tracePath, out string) error {
	conf := config.Default()
	if confPath != "" {
		var err error
		if conf, err = config.LoadFile(confPath); err != nil {
			return err
		}
	}
	conf.ApplyTraceLevel("bezreplay")
	ctrl, err := interact.New(conf.ControlPoints(), conf.Steps)
	if err != nil {
		return err
	}
	w, h := float64(conf.Width), float64(conf.Height)
	ctrl.SetHitRadius(conf.HitRadius).SetViewport(polygon.Box(bezier.Origin, bezier.P(w, h)))
	tr := &replay.Trace{}
	if tracePath != "" {
		if tr, err = replay.LoadFile(tracePath); err != nil {
			return err
		}
	}
	cv := raster.New(conf.Width, conf.Height)
	curve := ctrl.Curve()
	replay.Run(ctrl, tr, func(_ int, c []bezier.Pair) {
		curve = c
	})
	draw(cv, ctrl, curve)
	if ctrl.Offscreen() {
		tracer().Infof("curve is outside of the viewport")
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := cv.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	tracer().Infof("wrote %s", out)
	return f.Close()
}

func draw(cv *raster.Canvas, ctrl *interact.Controller, curve []bezier.Pair) {
	cv.Clear(raster.Background)
	cv.Polyline(curve, 1, raster.CurveColor)
	pts := ctrl.Points()
	cv.Polyline(pts, 1, raster.HullColor)
	for _, p := range pts {
		cv.Marker(p, 2*ctrl.HitRadius(), raster.HullColor)
	}
}
