/*
Command bezedit opens a window showing a Bezier curve and its control polygon.
Control points are moved by dragging them with the left mouse button.

	bezedit [-config bezier.yaml]

Escape or closing the window quits.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/npillmayer/bezier"
	"github.com/npillmayer/bezier/config"
	"github.com/npillmayer/bezier/interact"
	"github.com/npillmayer/bezier/polygon"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("bezedit")
}

const usage = "Usage: drag a control point with the left mouse button to reshape the curve. Escape quits."

func main() {
	confPath := flag.String("config", "", "YAML configuration file")
	flag.Parse()
	conf := config.Default()
	if *confPath != "" {
		var err error
		if conf, err = config.LoadFile(*confPath); err != nil {
			fmt.Fprintf(os.Stderr, "bezedit: %v\n", err)
			os.Exit(1)
		}
	}
	conf.ApplyTraceLevel("bezedit")
	ctrl, err := interact.New(conf.ControlPoints(), conf.Steps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bezedit: %v\n", err)
		os.Exit(1)
	}
	viewport := polygon.Box(bezier.Origin, bezier.P(float64(conf.Width), float64(conf.Height)))
	ctrl.SetHitRadius(conf.HitRadius).SetViewport(viewport)
	fmt.Println(usage)
	ebiten.SetWindowSize(conf.Width, conf.Height)
	ebiten.SetWindowTitle(fmt.Sprintf("Bezier curve of degree %d", ctrl.N()-1))
	ebiten.SetVsyncEnabled(true)
	if err := ebiten.RunGame(newGame(ctrl, conf.Width, conf.Height)); err != nil {
		fmt.Fprintf(os.Stderr, "bezedit: %v\n", err)
		os.Exit(1)
	}
}
