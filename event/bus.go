package event

import "context"

// Bus is the pub-sub client for Events.
type Bus interface {
	// Publish sends the given Events to subscribers whose subscription
	// matches the Event name. Publish must not block on slow subscribers;
	// implementations buffer published Events until they are consumed.
	Publish(ctx context.Context, events ...Event) error

	// Subscribe returns a channel of Events and a channel of asynchronous
	// errors. For every published Event evt where evt.Name() is one of names,
	// that Event is received from the returned Events channel. If no names
	// are provided, every published Event is received. When ctx is canceled,
	// both channels are closed by the implementing Bus.
	Subscribe(ctx context.Context, names ...string) (<-chan Event, <-chan error, error)
}
