package axis

import (
	"github.com/zeusync/moco/internal/core/events/bus"
	"github.com/zeusync/moco/internal/core/guard"
)

// MaxAxes caps the number of axis definitions.
const MaxAxes = 36

const (
	EventInputChanged      = "axis.input.changed"
	EventDefinitionChanged = "axis.definition.changed"

	eventSource = "axis.registry"
)

// Definition binds one export channel to an object's transform component.
type Definition struct {
	Label     string
	Component ComponentKind
	// Object is the scene object name; empty means unbound.
	Object string
}

func (d Definition) Bound() bool { return d.Object != "" }

// Input is the editable "current position" of one axis slot.
type Input struct {
	Length   float64
	Rotation float64
}

// Value returns the field matching the component's storage class.
func (in Input) Value(kind ComponentKind) float64 {
	if kind.IsRotation() {
		return in.Rotation
	}
	return in.Length
}

// InputChange is the payload of EventInputChanged.
type InputChange struct {
	Index int
	Kind  ComponentKind
	Value float64
	Pass  guard.Pass
}

// DefinitionChange is the payload of EventDefinitionChanged.
type DefinitionChange struct {
	Index      int
	Definition Definition
	Pass       guard.Pass
}

// CurveSwapper retargets the curves of two axis slots onto each other.
type CurveSwapper interface {
	SwapAxes(a, b int)
}

// Registry is the ordered set of axis definitions plus the per-slot input
// fields. Slice order is export order.
type Registry struct {
	defs    []Definition
	inputs  [MaxAxes]Input
	bus     bus.EventBus
	swapper CurveSwapper
}

// NewRegistry builds an empty registry. Both collaborators may be nil.
func NewRegistry(b bus.EventBus, swapper CurveSwapper) *Registry {
	return &Registry{
		defs:    make([]Definition, 0, MaxAxes),
		bus:     b,
		swapper: swapper,
	}
}

func (r *Registry) Len() int { return len(r.defs) }

func (r *Registry) valid(i int) bool { return i >= 0 && i < len(r.defs) }

func (r *Registry) At(i int) (Definition, bool) {
	if !r.valid(i) {
		return Definition{}, false
	}
	return r.defs[i], true
}

// Definitions returns a copy in export order.
func (r *Registry) Definitions() []Definition {
	return append([]Definition(nil), r.defs...)
}

// Add appends a definition with the default component for its slot.
// At capacity it does nothing and reports false.
func (r *Registry) Add(pass guard.Pass) (int, bool) {
	if len(r.defs) >= MaxAxes {
		return -1, false
	}
	index := len(r.defs)
	r.defs = append(r.defs, Definition{Component: DefaultComponent(index)})
	r.publishDefinition(pass, index)
	return index, true
}

// Set replaces the definition at i.
func (r *Registry) Set(pass guard.Pass, i int, def Definition) bool {
	if !r.valid(i) || !def.Component.Valid() {
		return false
	}
	r.defs[i] = def
	r.publishDefinition(pass, i)
	return true
}

// Remove deletes definition i. Curves follow their axis: each later slot's
// curves move down one index and the removed slot's curves end up past the
// new end of the registry.
func (r *Registry) Remove(pass guard.Pass, i int) bool {
	if !r.valid(i) {
		return false
	}
	n := len(r.defs)
	for j := i; j < n; j++ {
		if j+1 < n {
			r.defs[j] = r.defs[j+1]
		}
		r.swapCurves(j, j+1)
	}
	r.defs = r.defs[:n-1]
	for j := i; j < len(r.defs); j++ {
		r.publishDefinition(pass, j)
	}
	return true
}

func (r *Registry) CanMoveUp(i int) bool { return i > 0 && r.valid(i) }

func (r *Registry) CanMoveDown(i int) bool { return i >= 0 && i < len(r.defs)-1 }

// MoveUp swaps axis i with i-1.
func (r *Registry) MoveUp(pass guard.Pass, i int) bool {
	if !r.CanMoveUp(i) {
		return false
	}
	r.swap(pass, i, i-1)
	return true
}

// MoveDown swaps axis i with i+1.
func (r *Registry) MoveDown(pass guard.Pass, i int) bool {
	if !r.CanMoveDown(i) {
		return false
	}
	r.swap(pass, i, i+1)
	return true
}

func (r *Registry) swap(pass guard.Pass, a, b int) {
	r.defs[a], r.defs[b] = r.defs[b], r.defs[a]
	r.swapCurves(a, b)
	r.publishDefinition(pass, a)
	r.publishDefinition(pass, b)
}

func (r *Registry) swapCurves(a, b int) {
	if r.swapper != nil {
		r.swapper.SwapAxes(a, b)
	}
}

// Input returns the editable fields of slot i. Slots past Len keep their
// values, the way unused host properties do.
func (r *Registry) Input(i int) Input {
	if i < 0 || i >= MaxAxes {
		return Input{}
	}
	return r.inputs[i]
}

// SetInput writes the field of the given storage kind and announces it.
func (r *Registry) SetInput(pass guard.Pass, i int, kind ComponentKind, value float64) bool {
	if i < 0 || i >= MaxAxes {
		return false
	}
	if kind.IsRotation() {
		r.inputs[i].Rotation = value
	} else {
		r.inputs[i].Length = value
	}
	if r.bus != nil {
		_ = r.bus.Publish(bus.NewEvent(EventInputChanged, eventSource, InputChange{
			Index: i,
			Kind:  kind,
			Value: value,
			Pass:  pass,
		}))
	}
	return true
}

// SetAnimated stores a value produced by curve evaluation. Animation writes do
// not announce themselves; the frame-change notification covers them.
func (r *Registry) SetAnimated(path string, value float64) {
	i, class, ok := ParseCurvePath(path)
	if !ok || i >= MaxAxes {
		return
	}
	if class == ClassRotation {
		r.inputs[i].Rotation = value
	} else {
		r.inputs[i].Length = value
	}
}

func (r *Registry) publishDefinition(pass guard.Pass, i int) {
	if r.bus == nil {
		return
	}
	_ = r.bus.Publish(bus.NewEvent(EventDefinitionChanged, eventSource, DefinitionChange{
		Index:      i,
		Definition: r.defs[i],
		Pass:       pass,
	}))
}
