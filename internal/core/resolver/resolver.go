// Package resolver maps axis definitions onto live object transforms and
// onto the axis input fields.
package resolver

import (
	"github.com/zeusync/moco/internal/core/axis"
	"github.com/zeusync/moco/internal/core/host"
)

type Resolver struct {
	scene    host.Scene
	registry *axis.Registry
}

func New(scene host.Scene, registry *axis.Registry) *Resolver {
	return &Resolver{scene: scene, registry: registry}
}

// Object returns the scene object bound to axis i.
func (r *Resolver) Object(i int) (host.Object, axis.Definition, bool) {
	def, ok := r.registry.At(i)
	if !ok || !def.Bound() {
		return nil, def, false
	}
	obj, ok := r.scene.Object(def.Object)
	if !ok {
		return nil, def, false
	}
	return obj, def, true
}

// ObjectPosition reads the live transform component of axis i.
func (r *Resolver) ObjectPosition(i int) (float64, bool) {
	obj, def, ok := r.Object(i)
	if !ok {
		return 0, false
	}
	return def.Component.Get(obj.Location(), obj.Rotation()), true
}

// InputPosition reads the editable field of axis i: a length for location
// components, radians for rotation components.
func (r *Resolver) InputPosition(i int) (float64, bool) {
	_, def, ok := r.Object(i)
	if !ok {
		return 0, false
	}
	return r.registry.Input(i).Value(def.Component), true
}

// WriteObjectPosition stores value into the bound transform component of axis i.
func (r *Resolver) WriteObjectPosition(i int, value float64) bool {
	obj, def, ok := r.Object(i)
	if !ok {
		return false
	}
	loc, rot := obj.Location(), obj.Rotation()
	def.Component.Set(&loc, &rot, value)
	if def.Component.IsRotation() {
		obj.SetRotation(rot)
	} else {
		obj.SetLocation(loc)
	}
	return true
}

// Component reports the component kind of axis i.
func (r *Resolver) Component(i int) (axis.ComponentKind, bool) {
	def, ok := r.registry.At(i)
	return def.Component, ok
}

func (r *Resolver) Len() int { return r.registry.Len() }
