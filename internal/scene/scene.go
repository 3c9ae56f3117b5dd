// Package scene reads scene description files and builds an in-memory host
// plus the axis definitions from them.
package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/zeusync/moco/internal/core/axis"
	"github.com/zeusync/moco/internal/core/events/bus"
	"github.com/zeusync/moco/internal/core/host"
	"github.com/zeusync/moco/internal/core/host/memory"
	"github.com/zeusync/moco/internal/core/observability/log"
)

// File describes a scene in JSON or YAML.
type File struct {
	Frames  Frames   `json:"frames" yaml:"frames"`
	Units   Units    `json:"units" yaml:"units"`
	Objects []Object `json:"objects" yaml:"objects"`
	Axes    []Axis   `json:"axes" yaml:"axes"`
	Curves  []Curve  `json:"curves" yaml:"curves"`
}

type Frames struct {
	Start   int `json:"start" yaml:"start"`
	End     int `json:"end" yaml:"end"`
	Current int `json:"current,omitempty" yaml:"current,omitempty"`
}

type Units struct {
	System      string  `json:"system,omitempty" yaml:"system,omitempty"`
	ScaleLength float64 `json:"scale_length,omitempty" yaml:"scale_length,omitempty"`
	Rotation    string  `json:"rotation,omitempty" yaml:"rotation,omitempty"`
}

type Object struct {
	Name     string     `json:"name" yaml:"name"`
	Location [3]float64 `json:"location" yaml:"location"`
	// Rotation is Euler XYZ in radians.
	Rotation [3]float64 `json:"rotation" yaml:"rotation"`
}

type Axis struct {
	Label     string `json:"label" yaml:"label"`
	Component string `json:"component" yaml:"component"`
	Object    string `json:"object,omitempty" yaml:"object,omitempty"`
}

type Curve struct {
	Path      string     `json:"path" yaml:"path"`
	Keyframes []Keyframe `json:"keyframes" yaml:"keyframes"`
}

// Keyframe points are (frame, value) pairs.
type Keyframe struct {
	Co          [2]float64 `json:"co" yaml:"co"`
	HandleLeft  [2]float64 `json:"handle_left" yaml:"handle_left"`
	HandleRight [2]float64 `json:"handle_right" yaml:"handle_right"`
}

// LoadJSON loads a scene from a JSON reader.
func LoadJSON(r io.Reader) (*File, error) {
	var f File
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode scene json: %w", err)
	}
	return &f, nil
}

// LoadYAML loads a scene from a YAML reader.
func LoadYAML(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode scene yaml: %w", err)
	}
	return &f, nil
}

// LoadFile picks the decoder by extension; anything but .json is read as YAML.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return LoadJSON(fh)
	}
	return LoadYAML(fh)
}

// Definitions resolves the axis list against the scene objects.
func (f *File) Definitions() ([]axis.Definition, error) {
	names := make([]string, 0, len(f.Objects))
	known := make(map[string]struct{}, len(f.Objects))
	for _, o := range f.Objects {
		names = append(names, o.Name)
		known[o.Name] = struct{}{}
	}

	defs := make([]axis.Definition, 0, len(f.Axes))
	for i, a := range f.Axes {
		kind := axis.DefaultComponent(i)
		if a.Component != "" {
			var err error
			if kind, err = axis.ParseComponent(a.Component); err != nil {
				return nil, fmt.Errorf("axis %d: %w", i, err)
			}
		}
		if a.Object != "" {
			if _, ok := known[a.Object]; !ok {
				return nil, unknownObject(i, a.Object, names)
			}
		}
		defs = append(defs, axis.Definition{Label: a.Label, Component: kind, Object: a.Object})
	}
	return defs, nil
}

// Validate checks the parts of the file Build relies on.
func (f *File) Validate() error {
	seen := make(map[string]struct{}, len(f.Objects))
	for i, o := range f.Objects {
		if o.Name == "" {
			return fmt.Errorf("%w: object %d has no name", ErrInvalidScene, i)
		}
		if _, dup := seen[o.Name]; dup {
			return fmt.Errorf("%w: duplicate object %q", ErrInvalidScene, o.Name)
		}
		seen[o.Name] = struct{}{}
	}
	if f.Units.System != "" {
		switch host.UnitSystem(strings.ToUpper(f.Units.System)) {
		case host.UnitSystemNone, host.UnitSystemMetric, host.UnitSystemImperial:
		default:
			return fmt.Errorf("%w: unit system %q", ErrInvalidScene, f.Units.System)
		}
	}
	if f.Units.Rotation != "" {
		switch host.RotationUnit(strings.ToUpper(f.Units.Rotation)) {
		case host.RotationDegrees, host.RotationRadians:
		default:
			return fmt.Errorf("%w: rotation unit %q", ErrInvalidScene, f.Units.Rotation)
		}
	}
	for i, c := range f.Curves {
		if c.Path == "" {
			return fmt.Errorf("%w: curve %d has no path", ErrInvalidScene, i)
		}
	}
	return nil
}

// Build creates the host the file describes. Frame changes are announced on b.
func (f *File) Build(b bus.EventBus, l log.Log) (*memory.Host, []axis.Definition, error) {
	if err := f.Validate(); err != nil {
		return nil, nil, err
	}
	defs, err := f.Definitions()
	if err != nil {
		return nil, nil, err
	}

	h := memory.New(b, l)
	if f.Frames.Start != 0 || f.Frames.End != 0 {
		h.SetFrameRange(f.Frames.Start, f.Frames.End)
	}
	h.SetUnits(f.unitSettings(h.UnitSettings()))

	for _, o := range f.Objects {
		h.AddObject(o.Name, vec(o.Location), vec(o.Rotation))
	}
	for _, c := range f.Curves {
		keys := make([]host.Keyframe, len(c.Keyframes))
		for i, k := range c.Keyframes {
			keys[i] = host.Keyframe{
				Time:  k.Co[0],
				Value: k.Co[1],
				Left:  host.Handle{Time: k.HandleLeft[0], Value: k.HandleLeft[1]},
				Right: host.Handle{Time: k.HandleRight[0], Value: k.HandleRight[1]},
			}
		}
		h.AddCurve(c.Path, keys...)
		if _, _, ok := axis.ParseCurvePath(c.Path); !ok {
			l.Debug("curve does not drive an axis", log.String("path", c.Path))
		}
	}
	return h, defs, nil
}

// CurrentFrame is the frame the scene opens on.
func (f *File) CurrentFrame(h host.Timeline) int {
	if f.Frames.Current != 0 {
		return f.Frames.Current
	}
	return h.Start()
}

func (f *File) unitSettings(defaults host.UnitSettings) host.UnitSettings {
	u := defaults
	if f.Units.System != "" {
		u.System = host.UnitSystem(strings.ToUpper(f.Units.System))
	}
	if f.Units.ScaleLength != 0 {
		u.ScaleLength = f.Units.ScaleLength
	}
	if f.Units.Rotation != "" {
		u.Rotation = host.RotationUnit(strings.ToUpper(f.Units.Rotation))
	}
	return u
}

func vec(v [3]float64) r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}
