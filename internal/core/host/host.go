// Package host declares what the export engine needs from the 3-D application
// it runs inside: objects, animation curves, the timeline, unit settings,
// file persistence and a status line.
package host

import "gonum.org/v1/gonum/spatial/r3"

// EventFrameChanged is published on the session bus after the timeline moved
// and animated fields were evaluated for the new frame.
const EventFrameChanged = "timeline.frame.changed"

// FrameChange is the payload of EventFrameChanged.
type FrameChange struct {
	Frame int
}

// Object is a scene object with a location and an XYZ Euler rotation in radians.
type Object interface {
	Name() string
	Location() r3.Vec
	SetLocation(r3.Vec)
	Rotation() r3.Vec
	SetRotation(r3.Vec)
}

type Scene interface {
	Object(name string) (Object, bool)
	ObjectNames() []string
	// Evaluate forces a dependency update of the scene.
	Evaluate()
}

// Handle is a Bézier tangent handle in (frame, value) space.
type Handle struct {
	Time  float64
	Value float64
}

type Keyframe struct {
	Time  float64
	Value float64
	Left  Handle
	Right Handle
}

// Curve is an animation curve addressed by the property path it drives.
type Curve interface {
	Path() string
	SetPath(path string)
	// Keyframes are ordered by time.
	Keyframes() []Keyframe
}

// AnimationTarget receives evaluated curve values by path.
type AnimationTarget interface {
	SetAnimated(path string, value float64)
}

type Animation interface {
	// Curves returns nil when the scene carries no animation data.
	Curves() []Curve
	BindTarget(target AnimationTarget)
}

type Timeline interface {
	Frame() int
	Start() int
	End() int
	// SetFrame jumps to frame, evaluates animation and announces the change.
	SetFrame(frame int)
	Step(delta int)
}

type UnitSystem string

const (
	UnitSystemNone     UnitSystem = "NONE"
	UnitSystemMetric   UnitSystem = "METRIC"
	UnitSystemImperial UnitSystem = "IMPERIAL"
)

type RotationUnit string

const (
	RotationDegrees RotationUnit = "DEGREES"
	RotationRadians RotationUnit = "RADIANS"
)

type UnitSettings struct {
	System      UnitSystem
	ScaleLength float64
	Rotation    RotationUnit
}

type Units interface {
	UnitSettings() UnitSettings
}

// Storage persists export output relative to the project root.
type Storage interface {
	// Save returns the location the data was written to.
	Save(name string, data []byte) (string, error)
}

// Reporter shows a status message to the operator.
type Reporter interface {
	Report(msg string)
}

// Host bundles the collaborators a session runs against.
type Host interface {
	Scene
	Animation
	Timeline
	Units
	Reporter
}
