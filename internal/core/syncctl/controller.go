// Package syncctl keeps axis input fields and object transforms in step.
//
// Edits made by the operator flow field -> object. Frame changes flow
// field -> object for every axis at once, and axis reordering flows
// object -> field. Every write carries a guard.Pass; writes inside a held
// pass are never mirrored back, so no pass can feed itself.
package syncctl

import (
	"fmt"

	"github.com/zeusync/moco/internal/core/axis"
	"github.com/zeusync/moco/internal/core/curves"
	"github.com/zeusync/moco/internal/core/events/bus"
	"github.com/zeusync/moco/internal/core/guard"
	"github.com/zeusync/moco/internal/core/host"
	"github.com/zeusync/moco/internal/core/observability/log"
	"github.com/zeusync/moco/internal/core/resolver"
)

// Stats counts synchronization work since the controller was attached.
type Stats struct {
	ObjectWrites   uint64
	SuppressedEcho uint64
	FrameSyncs     uint64
	Refreshes      uint64
}

type Controller struct {
	registry *axis.Registry
	resolver *resolver.Resolver
	curves   *curves.Accessor
	scene    host.Scene
	bus      bus.EventBus
	log      log.Log

	subs  []bus.Subscription
	stats Stats
}

func New(
	registry *axis.Registry,
	res *resolver.Resolver,
	accessor *curves.Accessor,
	scene host.Scene,
	b bus.EventBus,
	l log.Log,
) *Controller {
	return &Controller{
		registry: registry,
		resolver: res,
		curves:   accessor,
		scene:    scene,
		bus:      b,
		log:      l.Named("sync"),
	}
}

// Attach subscribes the controller to field and frame notifications.
func (c *Controller) Attach() error {
	if len(c.subs) > 0 {
		return ErrAttached
	}
	handlers := []struct {
		event   string
		handler bus.EventHandler
	}{
		{axis.EventInputChanged, c.onInputChanged},
		{axis.EventDefinitionChanged, c.onDefinitionChanged},
		{host.EventFrameChanged, c.onFrameChanged},
	}
	for _, h := range handlers {
		sub, err := c.bus.Subscribe(h.event, h.handler)
		if err != nil {
			c.Detach()
			return fmt.Errorf("subscribe %s: %w", h.event, err)
		}
		c.subs = append(c.subs, sub)
	}
	return nil
}

// Detach cancels every subscription.
func (c *Controller) Detach() {
	for _, sub := range c.subs {
		_ = c.bus.Unsubscribe(sub)
	}
	c.subs = nil
}

func (c *Controller) Stats() Stats { return c.stats }

// EditInput is an operator edit of the current position of axis i.
func (c *Controller) EditInput(i int, value float64) bool {
	def, ok := c.registry.At(i)
	if !ok {
		return false
	}
	return c.registry.SetInput(guard.User(), i, def.Component, value)
}

// SetDefinition is an operator edit of the label, component or object of axis i.
func (c *Controller) SetDefinition(i int, def axis.Definition) bool {
	return c.registry.Set(guard.User(), i, def)
}

// SyncObjectsFromInputs writes every bound object from its input field, then
// re-evaluates the scene. This is what makes animated fields drive the rig
// during playback.
func (c *Controller) SyncObjectsFromInputs() {
	pass := guard.Begin("frame")
	written := 0
	for i := 0; i < c.registry.Len(); i++ {
		v, ok := c.resolver.InputPosition(i)
		if !ok {
			continue
		}
		if c.resolver.WriteObjectPosition(i, v) {
			c.stats.ObjectWrites++
			written++
		}
	}
	c.scene.Evaluate()
	c.stats.FrameSyncs++
	c.log.Debug("objects synced from inputs", log.String("pass", pass.ID()), log.Int("written", written))
}

// RefreshInputsFromObjects copies live transforms into the input fields.
func (c *Controller) RefreshInputsFromObjects() {
	c.refreshInputs(guard.Begin("refresh"))
}

func (c *Controller) refreshInputs(pass guard.Pass) {
	refreshed := 0
	for i := 0; i < c.registry.Len(); i++ {
		v, ok := c.resolver.ObjectPosition(i)
		if !ok {
			continue
		}
		def, _ := c.registry.At(i)
		c.registry.SetInput(pass, i, def.Component, v)
		refreshed++
	}
	c.stats.Refreshes++
	c.log.Debug("inputs refreshed from objects",
		log.String("pass", pass.ID()),
		log.String("origin", pass.Origin()),
		log.Int("refreshed", refreshed),
	)
}

func (c *Controller) onInputChanged(e bus.Event) error {
	change, ok := e.Data().(axis.InputChange)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnexpectedPayload, e.Data())
	}
	if change.Pass.Held() {
		c.stats.SuppressedEcho++
		return nil
	}
	v, ok := c.resolver.InputPosition(change.Index)
	if !ok {
		return nil
	}
	if c.resolver.WriteObjectPosition(change.Index, v) {
		c.stats.ObjectWrites++
	}
	return nil
}

func (c *Controller) onDefinitionChanged(e bus.Event) error {
	change, ok := e.Data().(axis.DefinitionChange)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnexpectedPayload, e.Data())
	}
	c.curves.Invalidate(change.Index)
	return nil
}

func (c *Controller) onFrameChanged(e bus.Event) error {
	if _, ok := e.Data().(host.FrameChange); !ok {
		return fmt.Errorf("%w: %T", ErrUnexpectedPayload, e.Data())
	}
	c.SyncObjectsFromInputs()
	return nil
}
