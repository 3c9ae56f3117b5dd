package rawmove

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/moco/internal/core/axis"
	"github.com/zeusync/moco/internal/core/host/memory"
	"github.com/zeusync/moco/internal/core/observability/log"
)

type countingTimer struct{ stops int }

func (c *countingTimer) Stop() { c.stops++ }

// frameSource reports the current frame for bound axes and nothing for the rest.
type frameSource struct {
	host  *memory.Host
	kinds []axis.ComponentKind
	bound []bool
}

func (f *frameSource) Len() int { return len(f.kinds) }

func (f *frameSource) InputPosition(i int) (float64, bool) {
	if !f.bound[i] {
		return 0, false
	}
	return float64(f.host.Frame()), true
}

func (f *frameSource) Component(i int) (axis.ComponentKind, bool) {
	if i >= len(f.kinds) {
		return 0, false
	}
	return f.kinds[i], true
}

func newSampler(start, end int, onFinish FinishFunc) (*Sampler, *memory.Host) {
	h := memory.New(nil, log.NewNop())
	h.SetFrameRange(start, end)
	src := &frameSource{
		host:  h,
		kinds: []axis.ComponentKind{axis.PosX, axis.RotZ, axis.PosY},
		bound: []bool{true, true, false},
	}
	return NewSampler(h, h, src, onFinish, log.NewNop()), h
}

func TestSamplerInclusiveRange(t *testing.T) {
	var got Table
	s, h := newSampler(1, 5, func(tb Table) error { got = tb; return nil })
	timer := &countingTimer{}

	h.SetFrame(40)
	require.NoError(t, s.Start(timer))
	assert.Equal(t, 1, h.Frame())
	assert.True(t, s.IsActive())

	ticks := 0
	for s.IsActive() {
		state, err := s.Tick()
		require.NoError(t, err)
		ticks++
		require.LessOrEqual(t, ticks, 5)
		if ticks < 5 {
			assert.Equal(t, StateSampling, state)
		}
	}

	assert.Equal(t, StateDone, s.State())
	require.Len(t, got.Rows, 5)
	for r, row := range got.Rows {
		require.Len(t, row, 3)
		assert.Equal(t, []float64{float64(r + 1), float64(r + 1), 0}, row)
	}
	assert.Equal(t, []axis.ComponentKind{axis.PosX, axis.RotZ, axis.PosY}, got.Components)
	assert.Equal(t, 5, h.Frame())
	assert.Equal(t, 5, h.Evaluations())
	assert.Equal(t, 1, timer.stops)
	assert.Equal(t, got, s.Table())
}

func TestSamplerIgnoresLateTicks(t *testing.T) {
	finishes := 0
	s, h := newSampler(3, 3, func(Table) error { finishes++; return nil })
	timer := &countingTimer{}
	require.NoError(t, s.Start(timer))

	state, err := s.Tick()
	require.NoError(t, err)
	assert.Equal(t, StateDone, state)

	for i := 0; i < 3; i++ {
		state, err = s.Tick()
		require.NoError(t, err)
		assert.Equal(t, StateDone, state)
	}
	assert.Equal(t, 1, finishes)
	assert.Equal(t, 1, timer.stops)
	assert.Equal(t, 1, h.Evaluations())
	assert.False(t, s.Cancel())
	assert.Equal(t, 1, timer.stops)
}

func TestSamplerCancel(t *testing.T) {
	finishes := 0
	s, _ := newSampler(1, 100, func(Table) error { finishes++; return nil })
	timer := &countingTimer{}
	require.NoError(t, s.Start(timer))
	_, _ = s.Tick()
	_, _ = s.Tick()

	assert.True(t, s.Cancel())
	assert.False(t, s.Cancel())
	assert.Equal(t, StateCancelled, s.State())
	assert.False(t, s.IsActive())

	state, err := s.Tick()
	require.NoError(t, err)
	assert.Equal(t, StateCancelled, state)
	assert.Equal(t, 0, finishes)
	assert.Equal(t, 1, timer.stops)
	assert.Empty(t, s.Table().Rows)
}

func TestSamplerRejectsSecondStart(t *testing.T) {
	s, _ := newSampler(1, 5, nil)
	require.NoError(t, s.Start(nil))
	assert.ErrorIs(t, s.Start(nil), ErrSamplerActive)

	s.Cancel()
	require.NoError(t, s.Start(nil))
}

func TestSamplerInvalidRange(t *testing.T) {
	s, _ := newSampler(10, 5, nil)
	assert.ErrorIs(t, s.Start(nil), ErrInvalidRange)
	assert.Equal(t, StateIdle, s.State())
}

func TestSamplerFinishError(t *testing.T) {
	boom := errors.New("disk full")
	s, _ := newSampler(1, 1, func(Table) error { return boom })
	timer := &countingTimer{}
	require.NoError(t, s.Start(timer))
	state, err := s.Tick()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, StateDone, state)
	assert.Equal(t, 1, timer.stops)
}

func TestSamplerZeroDegreeCameraAxis(t *testing.T) {
	h := memory.New(nil, log.NewNop())
	h.SetFrameRange(1, 5)
	src := &frameSource{host: h, kinds: []axis.ComponentKind{axis.RotX}, bound: []bool{false}}
	var got Table
	s := NewSampler(h, h, src, func(tb Table) error { got = tb; return nil }, log.NewNop())
	require.NoError(t, s.Start(nil))
	for s.IsActive() {
		_, err := s.Tick()
		require.NoError(t, err)
	}

	lines := strings.Split(strings.TrimSuffix(string(Format(got)), "\n"), "\n")
	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.Equal(t, "0.0         "+Separator, line)
	}
}
