// Package curves locates the animation curve behind each axis input field.
package curves

import (
	"github.com/zeusync/moco/internal/core/axis"
	"github.com/zeusync/moco/internal/core/host"
)

var _ axis.CurveSwapper = (*Accessor)(nil)

type key struct {
	index int
	class axis.Class
}

// Accessor keeps an explicit (axis index, component class) -> curve
// association over the host's curve set. Entries are filled on lookup,
// swapped when axes are reordered and dropped when a definition changes.
type Accessor struct {
	anim     host.Animation
	bindings map[key]host.Curve
}

func NewAccessor(anim host.Animation) *Accessor {
	return &Accessor{
		anim:     anim,
		bindings: make(map[key]host.Curve),
	}
}

// Find returns the curve driving the input field of axis index for kind.
func (a *Accessor) Find(index int, kind axis.ComponentKind) (host.Curve, bool) {
	k := key{index: index, class: kind.Class()}
	path := axis.CurvePath(index, k.class)

	if c, ok := a.bindings[k]; ok {
		if c.Path() == path {
			return c, true
		}
		delete(a.bindings, k)
	}

	if a.anim == nil {
		return nil, false
	}
	for _, c := range a.anim.Curves() {
		if c.Path() == path {
			a.bindings[k] = c
			return c, true
		}
	}
	return nil, false
}

// Keyframes returns the keys of the axis curve, or nil when it has none.
func (a *Accessor) Keyframes(index int, kind axis.ComponentKind) []host.Keyframe {
	c, ok := a.Find(index, kind)
	if !ok {
		return nil
	}
	return c.Keyframes()
}

// SwapAxes retargets every curve of slot first to slot second and back. Curves
// bound to any other slot are left alone.
func (a *Accessor) SwapAxes(first, second int) {
	if first == second {
		return
	}
	if a.anim != nil {
		for _, c := range a.anim.Curves() {
			if path, ok := swappedPath(c.Path(), first, second); ok {
				c.SetPath(path)
			}
		}
	}

	for _, class := range axis.Classes() {
		ka, kb := key{first, class}, key{second, class}
		ca, okA := a.bindings[ka]
		cb, okB := a.bindings[kb]
		delete(a.bindings, ka)
		delete(a.bindings, kb)
		if okA {
			a.bindings[kb] = ca
		}
		if okB {
			a.bindings[ka] = cb
		}
	}
}

func swappedPath(path string, first, second int) (string, bool) {
	for _, class := range axis.Classes() {
		switch path {
		case axis.CurvePath(first, class):
			return axis.CurvePath(second, class), true
		case axis.CurvePath(second, class):
			return axis.CurvePath(first, class), true
		}
	}
	return "", false
}

// Invalidate drops the association of one slot.
func (a *Accessor) Invalidate(index int) {
	for _, class := range axis.Classes() {
		delete(a.bindings, key{index, class})
	}
}

// Bound reports how many associations are cached.
func (a *Accessor) Bound() int { return len(a.bindings) }
