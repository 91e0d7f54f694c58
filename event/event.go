package event

import (
	"time"

	"github.com/google/uuid"
)

// An Event is an immutable notification that something happened in the
// application. Events are published through a Bus and received by
// subscribers of Events with the same name.
//
// Example (publish):
//
//	var b event.Bus
//	evt := event.New("foo", someData{})
//	err := b.Publish(context.TODO(), evt)
//	// handle err
type Event interface {
	// ID returns the unique id of the Event.
	ID() uuid.UUID
	// Name returns the name of the Event.
	Name() string
	// Time returns the time of the Event.
	Time() time.Time
	// Data returns the Event payload.
	Data() any
}

// Option is an Event option.
type Option func(*evt)

type evt struct {
	id   uuid.UUID
	name string
	time time.Time
	data any
}

// New creates an Event with the given name and payload. A UUID is generated
// for the Event and its time is set to time.Now().
//
// Provide Options to override the generated values:
//
//	ID(uuid.UUID): Use a custom UUID
//	Time(time.Time): Use a custom Time
func New(name string, data any, opts ...Option) Event {
	e := evt{
		id:   uuid.New(),
		name: name,
		time: time.Now(),
		data: data,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// ID returns an Option that overrides the auto-generated UUID of an Event.
func ID(id uuid.UUID) Option {
	return func(e *evt) {
		e.id = id
	}
}

// Time returns an Option that overrides the auto-generated timestamp of an
// Event.
func Time(t time.Time) Option {
	return func(e *evt) {
		e.time = t
	}
}

// Equal compares events and determines if they're equal. It works exactly
// like a normal "==" comparison except for the Time field which is compared
// by calling a.Time().Equal(b.Time()) for the two Events a and b.
func Equal(events ...Event) bool {
	if len(events) < 2 {
		return true
	}
	first := events[0]
	for _, e := range events[1:] {
		if (e == nil) != (first == nil) {
			return false
		}
		if e == nil {
			continue
		}
		if !(e.ID() == first.ID() &&
			e.Name() == first.Name() &&
			e.Time().Equal(first.Time()) &&
			e.Data() == first.Data()) {
			return false
		}
	}
	return true
}

func (e evt) ID() uuid.UUID {
	return e.id
}

func (e evt) Name() string {
	return e.name
}

func (e evt) Time() time.Time {
	return e.time
}

func (e evt) Data() any {
	return e.data
}
