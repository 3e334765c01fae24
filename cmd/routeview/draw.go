package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"orthoroute/core"
)

// Canvas pixels per terminal cell. Cells are roughly twice as tall as they
// are wide, so the vertical scale is doubled to keep shapes proportioned.
const (
	cellW = 10.0
	cellH = 20.0
)

var (
	styleShape    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleRoute    = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

func worldToCell(p core.Point) (int, int) {
	return int(math.Round(p.X / cellW)), int(math.Round(p.Y / cellH))
}

func cellToWorld(x, y int) (float64, float64) {
	return float64(x) * cellW, float64(y) * cellH
}

func (v *viewer) draw() {
	v.screen.Clear()
	for _, route := range v.routes {
		v.drawRoute(route)
	}
	for i := range v.diagram.Shapes {
		style := styleShape
		if i == v.selected {
			style = styleSelected
		}
		v.drawShape(&v.diagram.Shapes[i], style)
	}
	v.drawStatus()
}

func (v *viewer) drawShape(s *core.Shape, style tcell.Style) {
	x0, y0 := worldToCell(core.Point{X: s.X, Y: s.Y})
	x1, y1 := worldToCell(core.Point{X: s.X + s.Width, Y: s.Y + s.Height})
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	v.screen.SetContent(x0, y0, '┌', nil, style)
	v.screen.SetContent(x1, y0, '┐', nil, style)
	v.screen.SetContent(x0, y1, '└', nil, style)
	v.screen.SetContent(x1, y1, '┘', nil, style)
	for x := x0 + 1; x < x1; x++ {
		v.screen.SetContent(x, y0, '─', nil, style)
		v.screen.SetContent(x, y1, '─', nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		v.screen.SetContent(x0, y, '│', nil, style)
		v.screen.SetContent(x1, y, '│', nil, style)
	}

	label := s.Label
	if label == "" {
		label = s.ID
	}
	if avail := x1 - x0 - 1; len(label) > avail && avail > 0 {
		label = label[:avail]
	}
	cx := (x0+x1)/2 - len(label)/2
	cy := (y0 + y1) / 2
	for i, r := range label {
		v.screen.SetContent(cx+i, cy, r, nil, style)
	}
}

func (v *viewer) drawRoute(route []core.Point) {
	for i := 0; i+1 < len(route); i++ {
		ax, ay := worldToCell(route[i])
		bx, by := worldToCell(route[i+1])
		v.drawSegment(ax, ay, bx, by)
	}
	if len(route) >= 2 {
		x, y := worldToCell(route[len(route)-1])
		v.screen.SetContent(x, y, arrowRune(route), nil, styleRoute)
	}
}

// drawSegment draws one axis-aligned run of the route.
func (v *viewer) drawSegment(ax, ay, bx, by int) {
	if ay == by {
		if bx < ax {
			ax, bx = bx, ax
		}
		for x := ax; x <= bx; x++ {
			v.screen.SetContent(x, ay, '─', nil, styleRoute)
		}
		return
	}
	if bx == ax {
		if by < ay {
			ay, by = by, ay
		}
		for y := ay; y <= by; y++ {
			v.screen.SetContent(ax, y, '│', nil, styleRoute)
		}
	}
}

func arrowRune(route []core.Point) rune {
	a, b := route[len(route)-2], route[len(route)-1]
	switch {
	case b.X > a.X:
		return '▶'
	case b.X < a.X:
		return '◀'
	case b.Y > a.Y:
		return '▼'
	default:
		return '▲'
	}
}

func (v *viewer) drawStatus() {
	_, h := v.screen.Size()
	line := fmt.Sprintf("arrows move  tab select  p export png  q quit  |  %s", v.router.Cache())
	if v.message != "" {
		line += "  |  " + v.message
	}
	for i, r := range line {
		v.screen.SetContent(i, h-1, r, nil, styleStatus)
	}
}
