// Package rawmove samples every axis once per frame into a dense table and
// renders it as a Raw Move text file.
package rawmove

import (
	"fmt"

	"github.com/zeusync/moco/internal/core/axis"
	"github.com/zeusync/moco/internal/core/host"
	"github.com/zeusync/moco/internal/core/observability/log"
)

type State uint8

const (
	StateIdle State = iota
	StateSampling
	StateDone
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSampling:
		return "sampling"
	case StateDone:
		return "done"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Timer is the tick source driving the sampler. It is stopped exactly once,
// when sampling finishes or is cancelled.
type Timer interface {
	Stop()
}

// Source exposes the axes being sampled.
type Source interface {
	Len() int
	InputPosition(i int) (float64, bool)
	Component(i int) (axis.ComponentKind, bool)
}

// Table holds one row per frame and one column per axis.
type Table struct {
	Components []axis.ComponentKind
	Rows       [][]float64
}

// FinishFunc receives the completed table.
type FinishFunc func(Table) error

type Sampler struct {
	timeline host.Timeline
	scene    host.Scene
	source   Source
	onFinish FinishFunc
	log      log.Log

	state      State
	frame, end int
	sampled    int
	components []axis.ComponentKind
	columns    [][]float64
	timer      Timer
	table      Table
}

func NewSampler(timeline host.Timeline, scene host.Scene, source Source, onFinish FinishFunc, l log.Log) *Sampler {
	return &Sampler{
		timeline: timeline,
		scene:    scene,
		source:   source,
		onFinish: onFinish,
		log:      l.Named("rawmove"),
	}
}

// Start rewinds the timeline to the range start and allocates one column per
// current axis.
func (s *Sampler) Start(timer Timer) error {
	if s.state == StateSampling {
		return ErrSamplerActive
	}
	start, end := s.timeline.Start(), s.timeline.End()
	if end < start {
		return fmt.Errorf("%w: %d..%d", ErrInvalidRange, start, end)
	}

	n := s.source.Len()
	s.components = make([]axis.ComponentKind, n)
	s.columns = make([][]float64, n)
	for i := range s.columns {
		s.components[i], _ = s.source.Component(i)
		s.columns[i] = make([]float64, 0, end-start+1)
	}
	s.table = Table{}
	s.timer = timer
	s.frame, s.end = start, end
	s.sampled = 0
	s.state = StateSampling

	s.timeline.SetFrame(start)
	s.log.Debug("sampling started", log.Int("start", start), log.Int("end", end), log.Int("axes", n))
	return nil
}

// Tick samples the current frame. Ticks outside Sampling are ignored so a
// timer firing late cannot extend a finished export.
func (s *Sampler) Tick() (State, error) {
	if s.state != StateSampling {
		return s.state, nil
	}

	s.scene.Evaluate()
	for i := range s.columns {
		v, ok := s.source.InputPosition(i)
		if !ok {
			v = 0
		}
		s.columns[i] = append(s.columns[i], v)
	}
	s.sampled++

	if s.frame >= s.end {
		return s.finish()
	}
	s.timeline.Step(1)
	s.frame++
	return s.state, nil
}

// Cancel aborts sampling without output.
func (s *Sampler) Cancel() bool {
	if s.state != StateSampling {
		return false
	}
	s.release()
	s.columns = nil
	s.state = StateCancelled
	s.log.Debug("sampling cancelled", log.Int("frame", s.frame))
	return true
}

func (s *Sampler) IsActive() bool { return s.state == StateSampling }

func (s *Sampler) State() State { return s.state }

// Table is the last completed table.
func (s *Sampler) Table() Table { return s.table }

func (s *Sampler) finish() (State, error) {
	s.release()
	s.state = StateDone

	rows := s.sampled
	table := Table{Components: s.components, Rows: make([][]float64, rows)}
	for r := range table.Rows {
		row := make([]float64, len(s.columns))
		for c := range s.columns {
			row[c] = s.columns[c][r]
		}
		table.Rows[r] = row
	}
	s.table = table
	s.columns = nil
	s.log.Debug("sampling finished", log.Int("rows", rows), log.Int("axes", len(s.components)))

	if s.onFinish == nil {
		return s.state, nil
	}
	if err := s.onFinish(table); err != nil {
		return s.state, fmt.Errorf("finish raw move: %w", err)
	}
	return s.state, nil
}

func (s *Sampler) release() {
	if s.timer == nil {
		return
	}
	s.timer.Stop()
	s.timer = nil
}
