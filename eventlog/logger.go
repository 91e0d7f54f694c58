// Package eventlog observes the event bus and logs every published event.
package eventlog

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/SphynxHF/Hello-World/event"
	"github.com/SphynxHF/Hello-World/helper/streams"
)

// A Logger is a long-lived subscriber that drains the event bus and writes
// one debug-level log line per event. It is best-effort observability: it
// never acts on events and its outcome never affects the main flow.
type Logger struct {
	bus event.Bus
	log zerolog.Logger
}

// New returns a Logger that drains bus into log.
func New(bus event.Bus, log zerolog.Logger) *Logger {
	if bus == nil {
		panic("eventlog: New: bus is nil")
	}
	return &Logger{bus: bus, log: log}
}

// Run subscribes to every event on the bus and logs events until ctx is
// canceled or the bus is closed. Cancellation is a clean shutdown and
// returns nil.
func (l *Logger) Run(ctx context.Context) error {
	events, errs, err := l.bus.Subscribe(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("subscribe: %w", err)
	}

	err = streams.Walk(ctx, func(evt event.Event) error {
		l.log.Debug().
			Str("event", evt.Name()).
			Stringer("id", evt.ID()).
			Time("time", evt.Time()).
			Interface("data", evt.Data()).
			Msg("event received")
		return nil
	}, events, errs)

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
