// Package shapes maps shape type tags to their connection-point sets and
// default sizes, and models shape containment for obstacle exclusion.
package shapes

import (
	"orthoroute/core"
)

// Shape type tags known to the engine. Unknown tags fall back to the
// standard four mid-edge connection points.
const (
	TypeProcess   core.ShapeType = "process"
	TypeDecision  core.ShapeType = "decision"
	TypeDatastore core.ShapeType = "datastore"
	TypeActor     core.ShapeType = "actor"
	TypeLifeline  core.ShapeType = "lifeline"
	TypeContainer core.ShapeType = "container"
	TypeNote      core.ShapeType = "note"
)

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// shapeClass carries the per-variant payload: default size, whether the
// shape acts as a nesting container, and its connection-point generator.
type shapeClass struct {
	defaultSize Size
	isContainer bool
	points      func(height float64) []core.ConnectionPoint
}

var registry = map[core.ShapeType]shapeClass{
	TypeProcess:   {defaultSize: Size{160, 80}, points: standardPoints},
	TypeDecision:  {defaultSize: Size{120, 120}, points: standardPoints},
	TypeDatastore: {defaultSize: Size{140, 80}, points: standardPoints},
	TypeActor:     {defaultSize: Size{80, 100}, points: standardPoints},
	TypeNote:      {defaultSize: Size{140, 100}, points: standardPoints},
	TypeContainer: {defaultSize: Size{400, 300}, isContainer: true, points: standardPoints},
	TypeLifeline:  {defaultSize: Size{120, DefaultLifelineHeight}, points: lifelinePoints},
}

// DefaultSize returns the default size for a shape type.
func DefaultSize(t core.ShapeType) Size {
	if c, ok := registry[t]; ok {
		return c.defaultSize
	}
	return Size{160, 80}
}

// IsContainer reports whether shapes of this type nest other shapes.
func IsContainer(t core.ShapeType) bool {
	return registry[t].isContainer
}
