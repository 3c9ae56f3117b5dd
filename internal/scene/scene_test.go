package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/zeusync/moco/internal/core/axis"
	"github.com/zeusync/moco/internal/core/events/bus"
	"github.com/zeusync/moco/internal/core/host"
	"github.com/zeusync/moco/internal/core/observability/log"
)

const rigYAML = `
frames:
  start: 1
  end: 48
  current: 12
units:
  system: metric
  scale_length: 0.01
  rotation: degrees
objects:
  - name: Dolly
    location: [1, 2, 3]
    rotation: [0, 0, 0]
  - name: Head
    location: [0, 0, 0]
    rotation: [0, 0.5, 1.5]
axes:
  - label: Track
    component: LX
    object: Dolly
  - label: Pan
    component: Z Rotation
    object: Head
  - label: Spare
curves:
  - path: moco_axis_setlength_0
    keyframes:
      - co: [1, 0]
        handle_left: [0, 0]
        handle_right: [5, 0]
      - co: [48, 120]
        handle_left: [40, 120]
        handle_right: [56, 120]
`

func TestLoadYAMLAndBuild(t *testing.T) {
	f, err := LoadYAML(strings.NewReader(rigYAML))
	require.NoError(t, err)

	h, defs, err := f.Build(bus.New(), log.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []axis.Definition{
		{Label: "Track", Component: axis.PosX, Object: "Dolly"},
		{Label: "Pan", Component: axis.RotZ, Object: "Head"},
		{Label: "Spare", Component: axis.DefaultComponent(2)},
	}, defs)

	assert.Equal(t, 1, h.Start())
	assert.Equal(t, 48, h.End())
	assert.Equal(t, 12, f.CurrentFrame(h))
	assert.Equal(t, host.UnitSettings{
		System:      host.UnitSystemMetric,
		ScaleLength: 0.01,
		Rotation:    host.RotationDegrees,
	}, h.UnitSettings())
	assert.Equal(t, []string{"Dolly", "Head"}, h.ObjectNames())

	head, ok := h.Object("Head")
	require.True(t, ok)
	assert.Equal(t, r3.Vec{Y: 0.5, Z: 1.5}, head.Rotation())

	curves := h.Curves()
	require.Len(t, curves, 1)
	keys := curves[0].Keyframes()
	require.Len(t, keys, 2)
	assert.Equal(t, host.Keyframe{
		Time:  48,
		Value: 120,
		Left:  host.Handle{Time: 40, Value: 120},
		Right: host.Handle{Time: 56, Value: 120},
	}, keys[1])
}

func TestDefaults(t *testing.T) {
	f, err := LoadYAML(strings.NewReader("objects: []\n"))
	require.NoError(t, err)
	h, defs, err := f.Build(bus.New(), log.NewNop())
	require.NoError(t, err)

	assert.Empty(t, defs)
	assert.Equal(t, 1, h.Start())
	assert.Equal(t, 250, h.End())
	assert.Equal(t, 1, f.CurrentFrame(h))
	assert.Equal(t, host.UnitSystemMetric, h.UnitSettings().System)
	assert.Equal(t, 1.0, h.UnitSettings().ScaleLength)
}

func TestUnknownObjectSuggestsName(t *testing.T) {
	f := &File{
		Objects: []Object{{Name: "Dolly"}, {Name: "Head"}},
		Axes:    []Axis{{Label: "Track", Object: "dolyl"}},
	}
	_, err := f.Definitions()
	require.ErrorIs(t, err, ErrUnknownObject)
	assert.Contains(t, err.Error(), `did you mean "Dolly"`)

	f.Axes[0].Object = "Crane"
	_, err = f.Definitions()
	require.ErrorIs(t, err, ErrUnknownObject)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestSuggest(t *testing.T) {
	names := []string{"Camera", "Dolly", "Jib Arm"}
	assert.Equal(t, "Camera", Suggest("camra", names))
	assert.Equal(t, "Jib Arm", Suggest("JibArm", names))
	assert.Equal(t, "", Suggest("Turntable", names))
	assert.Equal(t, "", Suggest("x", nil))
}

func TestInvalidComponent(t *testing.T) {
	f := &File{Axes: []Axis{{Component: "W Location"}}}
	_, err := f.Definitions()
	assert.ErrorIs(t, err, axis.ErrUnknownComponent)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		file File
	}{
		{"unnamed object", File{Objects: []Object{{}}}},
		{"duplicate object", File{Objects: []Object{{Name: "A"}, {Name: "A"}}}},
		{"unit system", File{Units: Units{System: "cubits"}}},
		{"rotation unit", File{Units: Units{Rotation: "gradians"}}},
		{"curve path", File{Curves: []Curve{{}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.file.Validate(), ErrInvalidScene)
		})
	}
	assert.NoError(t, (&File{Units: Units{System: "Imperial", Rotation: "radians"}}).Validate())
}

func TestUnknownFieldsRejected(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("frames: {start: 1, end: 2}\ncamera: Main\n"))
	assert.Error(t, err)

	_, err = LoadJSON(strings.NewReader(`{"frames": {"start": 1}, "lights": []}`))
	assert.Error(t, err)
}

func TestLoadFileByExtension(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "rig.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"frames": {"start": 5, "end": 9}, "objects": [{"name": "A"}]}`), 0o644))
	yamlPath := filepath.Join(dir, "rig.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(rigYAML), 0o644))

	f, err := LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, Frames{Start: 5, End: 9}, f.Frames)

	f, err = LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Len(t, f.Axes, 3)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
