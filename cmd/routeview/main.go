// Command routeview is an interactive viewer for the routing engine: it
// loads a diagram JSON, routes every connector, and renders the result on a
// terminal grid. Dragging shapes re-routes on every move, exercising the
// visibility-graph cache the same way an editor canvas would.
//
// Usage:
//
//	routeview [diagram.json]
//
// Keys: arrows move the selected shape, Tab cycles selection, p exports
// routeview.png, q or Esc quits. Shapes can also be dragged with the mouse.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"orthoroute/connections"
	"orthoroute/core"
	"orthoroute/export"
	"orthoroute/pathfinding"
	"orthoroute/shapes"
)

// moveStep is how far one arrow key press moves a shape, in canvas pixels.
const moveStep = 20

type viewer struct {
	screen   tcell.Screen
	diagram  *core.Diagram
	router   *connections.Router
	routes   map[string][]core.Point
	selected int
	dragging bool
	dragID   string
	message  string
}

func main() {
	diagram := demoDiagram()
	if len(os.Args) > 1 {
		d, err := loadDiagram(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "routeview: %v\n", err)
			os.Exit(1)
		}
		diagram = d
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "routeview: creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "routeview: initializing screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	defer screen.Fini()

	v := &viewer{
		screen:  screen,
		diagram: diagram,
		router:  connections.NewRouter(pathfinding.DefaultRoutingConfig()),
		routes:  make(map[string][]core.Point),
	}
	v.reroute()
	v.run()
}

func loadDiagram(path string) (*core.Diagram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d core.Diagram
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for i := range d.Shapes {
		s := &d.Shapes[i]
		if s.Width <= 0 || s.Height <= 0 {
			size := shapes.DefaultSize(s.Type)
			s.Width = size.Width
			s.Height = size.Height
		}
	}
	return &d, nil
}

// demoDiagram is shown when no file is given.
func demoDiagram() *core.Diagram {
	return &core.Diagram{
		Shapes: []core.Shape{
			{ID: "a", Type: shapes.TypeProcess, Label: "ingest", X: 0, Y: 0, Width: 160, Height: 80},
			{ID: "b", Type: shapes.TypeProcess, Label: "transform", X: 400, Y: 200, Width: 160, Height: 80},
			{ID: "c", Type: shapes.TypeDatastore, Label: "store", X: 0, Y: 400, Width: 140, Height: 80},
			{ID: "wall", Type: shapes.TypeNote, Label: "wall", X: 220, Y: 60, Width: 120, Height: 260},
		},
		Connectors: []core.Connector{
			{ID: "e1", From: "a", To: "b"},
			{ID: "e2", From: "b", To: "c"},
		},
	}
}

// reroute recomputes every connector route.
func (v *viewer) reroute() {
	for _, conn := range v.diagram.Connectors {
		route, _ := v.router.RouteConnector(v.diagram, conn)
		v.routes[conn.ID] = route
	}
}

func (v *viewer) run() {
	for {
		v.draw()
		v.screen.Show()

		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return
			}
		case *tcell.EventMouse:
			v.handleMouse(ev)
		}
	}
}

func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyTab:
		if len(v.diagram.Shapes) > 0 {
			v.selected = (v.selected + 1) % len(v.diagram.Shapes)
		}
	case tcell.KeyUp:
		v.moveSelected(0, -moveStep)
	case tcell.KeyDown:
		v.moveSelected(0, moveStep)
	case tcell.KeyLeft:
		v.moveSelected(-moveStep, 0)
	case tcell.KeyRight:
		v.moveSelected(moveStep, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'p':
			v.exportPNG()
		}
	}
	return false
}

func (v *viewer) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	wx, wy := cellToWorld(x, y)

	switch {
	case ev.Buttons()&tcell.Button1 != 0:
		if !v.dragging {
			for i := range v.diagram.Shapes {
				s := &v.diagram.Shapes[i]
				if s.Bounds().Contains(core.Point{X: wx, Y: wy}) {
					v.selected = i
					v.dragging = true
					v.dragID = s.ID
					break
				}
			}
		} else if s := v.diagram.ShapeByID(v.dragID); s != nil {
			s.X = wx - s.Width/2
			s.Y = wy - s.Height/2
			v.reroute()
		}
	default:
		v.dragging = false
	}
}

func (v *viewer) moveSelected(dx, dy float64) {
	if v.selected >= len(v.diagram.Shapes) {
		return
	}
	s := &v.diagram.Shapes[v.selected]
	s.X += dx
	s.Y += dy
	v.reroute()
}

func (v *viewer) exportPNG() {
	f, err := os.Create("routeview.png")
	if err != nil {
		v.message = fmt.Sprintf("export failed: %v", err)
		return
	}
	defer f.Close()
	if err := export.RenderPNG(v.diagram, v.router, f, export.DefaultPNGOptions()); err != nil {
		v.message = fmt.Sprintf("export failed: %v", err)
		return
	}
	v.message = "wrote routeview.png"
}
