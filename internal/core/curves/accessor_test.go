package curves

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/moco/internal/core/axis"
	"github.com/zeusync/moco/internal/core/host/memory"
	"github.com/zeusync/moco/internal/core/observability/log"
)

func newHost() *memory.Host {
	h := memory.New(nil, log.NewNop())
	h.AddCurve("location")
	h.AddCurve(axis.CurvePath(0, axis.ClassLength), memory.Key(1, 0, 3), memory.Key(4, 1, 3))
	h.AddCurve(axis.CurvePath(1, axis.ClassRotation), memory.Key(1, 0, 3), memory.Key(4, 1.5, 3), memory.Key(7, 0, 3))
	return h
}

func TestFind(t *testing.T) {
	a := NewAccessor(newHost())

	c, ok := a.Find(0, axis.PosY)
	require.True(t, ok)
	assert.Equal(t, axis.CurvePath(0, axis.ClassLength), c.Path())

	_, ok = a.Find(0, axis.RotX)
	assert.False(t, ok)

	assert.Len(t, a.Keyframes(1, axis.RotZ), 3)
	assert.Nil(t, a.Keyframes(2, axis.PosX))
	assert.Equal(t, 2, a.Bound())
}

func TestFindWithoutAnimation(t *testing.T) {
	a := NewAccessor(nil)
	_, ok := a.Find(0, axis.PosX)
	assert.False(t, ok)
	a.SwapAxes(0, 1)
}

func TestSwapAxesRenamesHostPaths(t *testing.T) {
	h := newHost()
	a := NewAccessor(h)
	_, _ = a.Find(0, axis.PosX)

	a.SwapAxes(0, 1)

	var paths []string
	for _, c := range h.Curves() {
		paths = append(paths, c.Path())
	}
	assert.Equal(t, []string{
		"location",
		axis.CurvePath(1, axis.ClassLength),
		axis.CurvePath(0, axis.ClassRotation),
	}, paths)

	assert.Len(t, a.Keyframes(1, axis.PosZ), 2)
	assert.Len(t, a.Keyframes(0, axis.RotX), 3)
	_, ok := a.Find(0, axis.PosX)
	assert.False(t, ok)
}

func TestSwapAxesIsSymmetric(t *testing.T) {
	h := newHost()
	a := NewAccessor(h)
	before := map[string]int{}
	for i, c := range h.Curves() {
		before[c.Path()] = i
	}

	a.SwapAxes(0, 1)
	a.SwapAxes(1, 0)

	for i, c := range h.Curves() {
		assert.Equal(t, i, before[c.Path()])
	}
}

func TestStaleBindingIsRevalidated(t *testing.T) {
	h := newHost()
	a := NewAccessor(h)
	c, ok := a.Find(0, axis.PosX)
	require.True(t, ok)

	// the host renamed the curve behind our back
	c.SetPath(axis.CurvePath(5, axis.ClassLength))
	_, ok = a.Find(0, axis.PosX)
	assert.False(t, ok)

	got, ok := a.Find(5, axis.PosX)
	require.True(t, ok)
	assert.Same(t, c, got)

	a.Invalidate(5)
	assert.Equal(t, 0, a.Bound())
}
