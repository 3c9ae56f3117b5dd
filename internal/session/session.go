// Package session assembles one motion-control rig over a host: registry,
// curve accessor, resolver, synchronization controller and exporter, all
// talking over one event bus.
package session

import (
	"fmt"

	"github.com/zeusync/moco/internal/core/axis"
	"github.com/zeusync/moco/internal/core/curves"
	"github.com/zeusync/moco/internal/core/events/bus"
	"github.com/zeusync/moco/internal/core/export"
	"github.com/zeusync/moco/internal/core/guard"
	"github.com/zeusync/moco/internal/core/host"
	"github.com/zeusync/moco/internal/core/observability/log"
	"github.com/zeusync/moco/internal/core/resolver"
	"github.com/zeusync/moco/internal/core/syncctl"
)

type Session struct {
	Bus        bus.EventBus
	Host       host.Host
	Registry   *axis.Registry
	Curves     *curves.Accessor
	Resolver   *resolver.Resolver
	Controller *syncctl.Controller
	Exporter   *export.Exporter

	observer *busLogger
	log      log.Log
}

// New wires the components, binds the registry as animation target and
// attaches the controller.
func New(
	b bus.EventBus,
	h host.Host,
	registry *axis.Registry,
	accessor *curves.Accessor,
	res *resolver.Resolver,
	controller *syncctl.Controller,
	exporter *export.Exporter,
	l log.Log,
) (*Session, error) {
	h.BindTarget(registry)
	if err := controller.Attach(); err != nil {
		return nil, fmt.Errorf("attach controller: %w", err)
	}
	observer := newBusLogger(l)
	b.AddObserver(observer)
	return &Session{
		Bus:        b,
		Host:       h,
		Registry:   registry,
		Curves:     accessor,
		Resolver:   res,
		Controller: controller,
		Exporter:   exporter,
		observer:   observer,
		log:        l.Named("session"),
	}, nil
}

// Close detaches the controller, cancels any running export and logs the bus
// traffic seen during the session.
func (s *Session) Close() {
	s.Exporter.Cancel()
	s.Controller.Detach()
	s.Bus.RemoveObserver(s.observer)

	m := s.Bus.GetMetrics()
	s.log.Debug("session closed",
		log.Uint64("published", m.Published),
		log.Uint64("handlers", m.DeliveredHandlers),
		log.Uint64("errors", m.Errors),
	)
}

// Load fills an empty axis list with defs and pulls the current input values
// from the bound objects. Definitions past the capacity are dropped and
// reported as an error. An invalid definition rejects the whole list before
// any axis is added.
func (s *Session) Load(defs []axis.Definition) error {
	if s.Registry.Len() > 0 {
		return ErrAlreadyLoaded
	}
	for i, def := range defs {
		if !def.Component.Valid() {
			return fmt.Errorf("%w: axis %d component %d", axis.ErrUnknownComponent, i, def.Component)
		}
	}

	pass := guard.Begin("load")
	var err error
	for i, def := range defs {
		index, ok := s.Registry.Add(pass)
		if !ok {
			err = fmt.Errorf("%w: %d of %d definitions loaded", ErrTooManyAxes, i, len(defs))
			break
		}
		s.Registry.Set(pass, index, def)
	}

	s.Controller.RefreshInputsFromObjects()
	for _, name := range s.unresolved() {
		s.log.Warn("axis object not in scene", log.String("object", name))
	}
	s.log.Info("axes loaded", log.Int("axes", s.Registry.Len()))
	return err
}

func (s *Session) unresolved() []string {
	var missing []string
	for i := 0; i < s.Registry.Len(); i++ {
		def, _ := s.Registry.At(i)
		if !def.Bound() {
			continue
		}
		if _, _, ok := s.Resolver.Object(i); !ok {
			missing = append(missing, def.Object)
		}
	}
	return missing
}
