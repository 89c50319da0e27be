package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/npillmayer/bezier"
	"github.com/npillmayer/bezier/interact"
)

var (
	background = color.RGBA{0, 0, 0, 255}
	curveColor = color.RGBA{255, 0, 0, 255}
	hullColor  = color.RGBA{255, 255, 255, 255}
	hoverColor = color.RGBA{255, 200, 0, 255}
)

// game adapts a controller to ebiten's frame loop. Update polls the input
// and evaluates the curve; Draw renders the samples of the same tick.
type game struct {
	ctrl  *interact.Controller
	w, h  int
	curve []bezier.Pair
	state interact.State
}

func newGame(ctrl *interact.Controller, w, h int) *game {
	return &game{ctrl: ctrl, w: w, h: h, curve: ctrl.Curve()}
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	x, y := ebiten.CursorPosition()
	in := interact.Input{
		X:       float64(x),
		Y:       float64(y),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
	g.curve = g.ctrl.Frame(in)
	if s := g.ctrl.State(); s != g.state {
		tracer().Debugf("%s -> %s", g.state, s)
		g.state = s
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	strokePolyline(screen, g.curve, curveColor)
	pts := g.ctrl.Points()
	strokePolyline(screen, pts, hullColor)
	r := float32(g.ctrl.HitRadius())
	hovered := g.ctrl.Hovered()
	for i, p := range pts {
		clr := hullColor
		if i == hovered {
			clr = hoverColor
		}
		vector.StrokeRect(screen, float32(p.X())-r, float32(p.Y())-r, 2*r, 2*r, 1, clr, false)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%d control points, %d samples, %s",
		g.ctrl.N(), g.ctrl.Steps(), g.state))
}

func (g *game) Layout(int, int) (int, int) {
	return g.w, g.h
}

func strokePolyline(dst *ebiten.Image, pts []bezier.Pair, clr color.Color) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(dst, float32(a.X()), float32(a.Y()), float32(b.X()), float32(b.Y()), 1, clr, false)
	}
}
