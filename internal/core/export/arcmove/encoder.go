// Package arcmove encodes axis keyframes as an Arc Move scene: sparse points
// plus Bézier control points per axis, in a namespaced XML document.
package arcmove

import (
	"math"

	"github.com/zeusync/moco/internal/core/axis"
	"github.com/zeusync/moco/internal/core/host"
)

const unitTolerance = 0.00001

// Axis is the encoder input for one axis.
type Axis struct {
	Label     string
	Component axis.ComponentKind
	// Keyframes are ordered by time; nil when the axis has no curve.
	Keyframes []host.Keyframe
}

type Point struct {
	X float64
	Y float64
}

type AxisDocument struct {
	Name string
	// Units is empty when no unit tag applies.
	Units         string
	Points        []Point
	ControlPoints []Point
}

type Document struct {
	EndFrame int
	Axes     []AxisDocument
}

// Encode builds the document for the axes over frameStart..frameEnd.
// Rotation values are emitted in degrees, lengths unscaled.
func Encode(axes []Axis, frameStart, frameEnd int, units host.UnitSettings) Document {
	doc := Document{
		EndFrame: frameEnd - frameStart,
		Axes:     make([]AxisDocument, 0, len(axes)),
	}
	for _, a := range axes {
		doc.Axes = append(doc.Axes, encodeAxis(a, units))
	}
	return doc
}

func encodeAxis(a Axis, units host.UnitSettings) AxisDocument {
	scale := func(v float64) float64 { return v }
	if a.Component.IsRotation() {
		scale = axis.Degrees
	}

	n := len(a.Keyframes)
	out := AxisDocument{
		Name:   a.Label,
		Units:  ResolveUnits(a.Component, units),
		Points: make([]Point, 0, n),
	}
	if n > 1 {
		out.ControlPoints = make([]Point, 0, 2*(n-1))
	}

	for _, k := range a.Keyframes {
		out.Points = append(out.Points, Point{X: k.Time, Y: scale(k.Value)})
	}
	// handles stay grouped per keyframe: left then right, skipping the
	// outer handle of the first and last keys
	for i, k := range a.Keyframes {
		if i > 0 {
			out.ControlPoints = append(out.ControlPoints, Point{X: k.Left.Time, Y: scale(k.Left.Value)})
		}
		if i < n-1 {
			out.ControlPoints = append(out.ControlPoints, Point{X: k.Right.Time, Y: scale(k.Right.Value)})
		}
	}
	return out
}

// ResolveUnits returns the unit tag for a component under the scene settings,
// or "" when none applies.
func ResolveUnits(kind axis.ComponentKind, units host.UnitSettings) string {
	if kind.IsRotation() {
		if units.Rotation == host.RotationDegrees {
			return "deg"
		}
		return ""
	}

	near := func(v float64) bool { return math.Abs(units.ScaleLength-v) < unitTolerance }
	switch units.System {
	case host.UnitSystemMetric:
		switch {
		case near(1):
			return "m"
		case near(0.01):
			return "cm"
		case near(0.001):
			return "mm"
		}
	case host.UnitSystemImperial:
		if near(1) {
			return "in"
		}
	}
	return ""
}
