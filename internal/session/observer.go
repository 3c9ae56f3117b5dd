package session

import (
	"time"

	"github.com/zeusync/moco/internal/core/events/bus"
	"github.com/zeusync/moco/internal/core/observability/log"
)

var _ bus.EventBusObserver = (*busLogger)(nil)

// busLogger traces bus traffic and surfaces failing handlers.
type busLogger struct {
	log log.Log
}

func newBusLogger(l log.Log) *busLogger {
	return &busLogger{log: l.Named("bus")}
}

func (o *busLogger) OnPublish(eventType string, event bus.Event) {
	o.log.Debug("event published", log.String("type", eventType), log.String("source", event.Source()))
}

func (o *busLogger) OnDelivered(eventType string, handlers int, err error, duration time.Duration) {
	if err != nil {
		o.log.Warn("event handlers failed",
			log.String("type", eventType),
			log.Int("handlers", handlers),
			log.Error(err),
		)
		return
	}
	o.log.Debug("event delivered",
		log.String("type", eventType),
		log.Int("handlers", handlers),
		log.Duration("took", duration),
	)
}
