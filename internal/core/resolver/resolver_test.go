package resolver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/zeusync/moco/internal/core/axis"
	"github.com/zeusync/moco/internal/core/guard"
	"github.com/zeusync/moco/internal/core/host/memory"
	"github.com/zeusync/moco/internal/core/observability/log"
)

func setup(t *testing.T, defs ...axis.Definition) (*Resolver, *axis.Registry, *memory.Host) {
	t.Helper()
	h := memory.New(nil, log.NewNop())
	h.AddObject("Camera", r3.Vec{X: 1, Y: 2, Z: 3}, r3.Vec{X: 0.1, Y: 0.2, Z: math.Pi / 2})
	reg := axis.NewRegistry(nil, nil)
	for _, d := range defs {
		i, ok := reg.Add(guard.User())
		require.True(t, ok)
		require.True(t, reg.Set(guard.User(), i, d))
	}
	return New(h, reg), reg, h
}

func TestObjectPosition(t *testing.T) {
	r, _, _ := setup(t,
		axis.Definition{Label: "track", Component: axis.PosY, Object: "Camera"},
		axis.Definition{Label: "pan", Component: axis.RotZ, Object: "Camera"},
		axis.Definition{Label: "ghost", Component: axis.PosX, Object: "Missing"},
		axis.Definition{Label: "free", Component: axis.PosX},
	)

	v, ok := r.ObjectPosition(0)
	require.True(t, ok)
	assert.Equal(t, 2.0, v)

	v, ok = r.ObjectPosition(1)
	require.True(t, ok)
	assert.Equal(t, math.Pi/2, v)

	_, ok = r.ObjectPosition(2)
	assert.False(t, ok)
	_, ok = r.ObjectPosition(3)
	assert.False(t, ok)
	_, ok = r.ObjectPosition(9)
	assert.False(t, ok)
}

func TestInputPosition(t *testing.T) {
	r, reg, _ := setup(t,
		axis.Definition{Component: axis.PosZ, Object: "Camera"},
		axis.Definition{Component: axis.RotX, Object: "Camera"},
		axis.Definition{Component: axis.RotX},
	)
	reg.SetInput(guard.User(), 0, axis.PosZ, 4)
	reg.SetInput(guard.User(), 0, axis.RotX, 0.7)
	reg.SetInput(guard.User(), 1, axis.RotX, 0.5)

	v, ok := r.InputPosition(0)
	require.True(t, ok)
	assert.Equal(t, 4.0, v)

	v, ok = r.InputPosition(1)
	require.True(t, ok)
	assert.Equal(t, 0.5, v)

	_, ok = r.InputPosition(2)
	assert.False(t, ok)
}

func TestWriteObjectPosition(t *testing.T) {
	r, _, h := setup(t,
		axis.Definition{Component: axis.PosX, Object: "Camera"},
		axis.Definition{Component: axis.RotY, Object: "Camera"},
		axis.Definition{Component: axis.RotY},
	)

	require.True(t, r.WriteObjectPosition(0, 10))
	require.True(t, r.WriteObjectPosition(1, -1))
	assert.False(t, r.WriteObjectPosition(2, 5))

	obj, _ := h.Object("Camera")
	assert.Equal(t, r3.Vec{X: 10, Y: 2, Z: 3}, obj.Location())
	assert.Equal(t, r3.Vec{X: 0.1, Y: -1, Z: math.Pi / 2}, obj.Rotation())
	assert.Equal(t, 2, obj.(*memory.Object).Writes())
}
