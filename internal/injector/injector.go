//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/moco/internal/core/axis"
	"github.com/zeusync/moco/internal/core/curves"
	"github.com/zeusync/moco/internal/core/events/bus"
	"github.com/zeusync/moco/internal/core/export"
	"github.com/zeusync/moco/internal/core/host"
	"github.com/zeusync/moco/internal/core/host/memory"
	"github.com/zeusync/moco/internal/core/observability/log"
	"github.com/zeusync/moco/internal/core/resolver"
	"github.com/zeusync/moco/internal/core/syncctl"
	"github.com/zeusync/moco/internal/session"
)

var sessionSet = wire.NewSet(
	curves.NewAccessor,
	axis.NewRegistry,
	resolver.New,
	syncctl.New,
	export.New,
	session.New,
	wire.Bind(new(axis.CurveSwapper), new(*curves.Accessor)),
	wire.Bind(new(host.Host), new(*memory.Host)),
	wire.Bind(new(host.Scene), new(*memory.Host)),
	wire.Bind(new(host.Animation), new(*memory.Host)),
)

func ProvideLogger(level log.Level) *log.Logger {
	wire.Build(log.New)
	return nil
}

// InitializeSession assembles a session over a loaded in-memory scene. b must
// be the bus the host announces frame changes on.
func InitializeSession(b bus.EventBus, h *memory.Host, storage host.Storage, l log.Log) (*session.Session, error) {
	wire.Build(sessionSet)
	return nil, nil
}
