package axis

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// ComponentKind names the transform channel an axis drives.
type ComponentKind int

const (
	PosX ComponentKind = iota
	PosY
	PosZ
	RotX
	RotY
	RotZ

	componentCount = 6
)

var componentNames = [componentCount]string{"LX", "LY", "LZ", "RX", "RY", "RZ"}

func (k ComponentKind) Valid() bool { return k >= PosX && k <= RotZ }

func (k ComponentKind) String() string {
	if !k.Valid() {
		return "component(" + strconv.Itoa(int(k)) + ")"
	}
	return componentNames[k]
}

func (k ComponentKind) IsRotation() bool { return k >= RotX && k <= RotZ }

// Class groups the kind into length or rotation storage.
func (k ComponentKind) Class() Class {
	if k.IsRotation() {
		return ClassRotation
	}
	return ClassLength
}

// Slot is the vector index (0=X, 1=Y, 2=Z) inside location or rotation.
func (k ComponentKind) Slot() int {
	if k.IsRotation() {
		return int(k - RotX)
	}
	return int(k)
}

// Get reads the channel from a location / Euler rotation pair.
func (k ComponentKind) Get(location, rotation r3.Vec) float64 {
	v := location
	if k.IsRotation() {
		v = rotation
	}
	switch k.Slot() {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Set writes the channel into a location / Euler rotation pair.
func (k ComponentKind) Set(location, rotation *r3.Vec, value float64) {
	v := location
	if k.IsRotation() {
		v = rotation
	}
	switch k.Slot() {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		v.Z = value
	}
}

var pi = math.Pi

// radToDeg is the rounded float64 quotient 180/pi, not the exact constant.
var radToDeg = 180 / pi

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * radToDeg
}

// DefaultComponent cycles LX..RZ by slot index.
func DefaultComponent(index int) ComponentKind {
	return ComponentKind(index % componentCount)
}

// ParseComponent accepts short names (LX, ry), enum digits ("0".."5") and
// long names such as "X Location".
func ParseComponent(s string) (ComponentKind, error) {
	s = strings.TrimSpace(s)
	for i, name := range componentNames {
		if strings.EqualFold(s, name) {
			return ComponentKind(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil {
		if k := ComponentKind(n); k.Valid() {
			return k, nil
		}
	}
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 2 {
		var base ComponentKind
		switch fields[1] {
		case "location":
			base = PosX
		case "rotation":
			base = RotX
		default:
			return 0, fmt.Errorf("%w: %q", ErrUnknownComponent, s)
		}
		switch fields[0] {
		case "x":
			return base, nil
		case "y":
			return base + 1, nil
		case "z":
			return base + 2, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownComponent, s)
}

// Class is the storage class of a component: lengths or radians.
type Class int

const (
	ClassLength Class = iota
	ClassRotation
)

var classPrefixes = [...]string{
	ClassLength:   "moco_axis_setlength_",
	ClassRotation: "moco_axis_setrot_",
}

// Classes lists both classes in path-scan order.
func Classes() []Class { return []Class{ClassLength, ClassRotation} }

func (c Class) String() string {
	if c == ClassRotation {
		return "rotation"
	}
	return "length"
}

// CurvePath is the animation path of the input field for slot index.
func CurvePath(index int, class Class) string {
	return classPrefixes[class] + strconv.Itoa(index)
}

// ParseCurvePath is the inverse of CurvePath.
func ParseCurvePath(path string) (int, Class, bool) {
	for _, class := range Classes() {
		rest, ok := strings.CutPrefix(path, classPrefixes[class])
		if !ok {
			continue
		}
		index, err := strconv.Atoi(rest)
		if err != nil || index < 0 || strconv.Itoa(index) != rest {
			return 0, 0, false
		}
		return index, class, true
	}
	return 0, 0, false
}
