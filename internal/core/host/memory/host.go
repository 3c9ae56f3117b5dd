// Package memory is a self-contained host: a small scene graph, Bézier
// curves and a timeline, enough to drive the export engine outside a 3-D
// application.
package memory

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/zeusync/moco/internal/core/events/bus"
	"github.com/zeusync/moco/internal/core/host"
	"github.com/zeusync/moco/internal/core/observability/log"
)

var _ host.Host = (*Host)(nil)

const eventSource = "host.memory"

// Object is an in-memory scene object. It counts transform writes.
type Object struct {
	name     string
	location r3.Vec
	rotation r3.Vec
	writes   int
}

func (o *Object) Name() string     { return o.name }
func (o *Object) Location() r3.Vec { return o.location }
func (o *Object) Rotation() r3.Vec { return o.rotation }
func (o *Object) Writes() int      { return o.writes }

func (o *Object) SetLocation(v r3.Vec) {
	o.location = v
	o.writes++
}

func (o *Object) SetRotation(v r3.Vec) {
	o.rotation = v
	o.writes++
}

type Host struct {
	objects map[string]*Object
	order   []string
	curves  []*Curve
	target  host.AnimationTarget

	frame, start, end int
	units             host.UnitSettings

	bus bus.EventBus
	log log.Log

	messages    []string
	evaluations int
}

// New creates an empty scene on frames 1..250 with metric meters and degrees.
func New(b bus.EventBus, l log.Log) *Host {
	return &Host{
		objects: make(map[string]*Object),
		frame:   1,
		start:   1,
		end:     250,
		units: host.UnitSettings{
			System:      host.UnitSystemMetric,
			ScaleLength: 1,
			Rotation:    host.RotationDegrees,
		},
		bus: b,
		log: l.Named("host"),
	}
}

// AddObject creates or replaces the named object.
func (h *Host) AddObject(name string, location, rotation r3.Vec) *Object {
	if _, exists := h.objects[name]; !exists {
		h.order = append(h.order, name)
	}
	obj := &Object{name: name, location: location, rotation: rotation}
	h.objects[name] = obj
	return obj
}

// AddCurve registers an animation curve.
func (h *Host) AddCurve(path string, keys ...host.Keyframe) *Curve {
	c := NewCurve(path, keys...)
	h.curves = append(h.curves, c)
	return c
}

func (h *Host) SetFrameRange(start, end int) {
	h.start, h.end = start, end
}

func (h *Host) SetUnits(u host.UnitSettings) {
	h.units = u
}

// Messages returns every status message reported so far.
func (h *Host) Messages() []string {
	return append([]string(nil), h.messages...)
}

// Evaluations counts forced scene updates.
func (h *Host) Evaluations() int { return h.evaluations }

func (h *Host) Object(name string) (host.Object, bool) {
	obj, ok := h.objects[name]
	if !ok {
		return nil, false
	}
	return obj, true
}

func (h *Host) ObjectNames() []string {
	return append([]string(nil), h.order...)
}

func (h *Host) Evaluate() {
	h.evaluations++
}

func (h *Host) Curves() []host.Curve {
	if len(h.curves) == 0 {
		return nil
	}
	out := make([]host.Curve, len(h.curves))
	for i, c := range h.curves {
		out[i] = c
	}
	return out
}

func (h *Host) BindTarget(target host.AnimationTarget) {
	h.target = target
}

func (h *Host) Frame() int { return h.frame }
func (h *Host) Start() int { return h.start }
func (h *Host) End() int   { return h.end }

func (h *Host) SetFrame(frame int) {
	h.frame = frame
	h.animate()
	if h.bus == nil {
		return
	}
	if err := h.bus.Publish(bus.NewEvent(host.EventFrameChanged, eventSource, host.FrameChange{Frame: frame})); err != nil {
		h.log.Warn("frame change handlers failed", log.Int("frame", frame), log.Error(err))
	}
}

func (h *Host) Step(delta int) {
	h.SetFrame(h.frame + delta)
}

func (h *Host) UnitSettings() host.UnitSettings { return h.units }

func (h *Host) Report(msg string) {
	h.messages = append(h.messages, msg)
	h.log.Info(msg)
}

func (h *Host) animate() {
	if h.target == nil {
		return
	}
	for _, c := range h.curves {
		h.target.SetAnimated(c.Path(), c.Evaluate(float64(h.frame)))
	}
}
