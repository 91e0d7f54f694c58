package eventbus

import (
	"context"
	"errors"
	"sync"

	"github.com/SphynxHF/Hello-World/event"
)

// ErrClosed is returned when publishing to or subscribing on a closed Bus.
var ErrClosed = errors.New("event bus is closed")

// Bus is an in-memory event.Bus. Published Events go into an unbounded FIFO
// buffer, so Publish never blocks on slow (or absent) subscribers. Buffered
// Events are held until at least one subscriber exists and are then fanned
// out to every subscriber whose subscription matches the Event name.
type Bus struct {
	mu      sync.Mutex
	backlog []event.Event

	// wake has a capacity of 1 and signals the worker that the backlog grew.
	wake chan struct{}

	subscribeQueue   chan subscribeJob
	unsubscribeQueue chan subscribeJob

	// recipients is owned by the worker goroutine.
	recipients []*recipient

	done      chan struct{}
	closeOnce sync.Once
}

type recipient struct {
	names    map[string]struct{} // nil means every event
	events   chan event.Event
	errs     chan error
	unsubbed chan struct{}
}

type subscribeJob struct {
	rcpt *recipient
	done chan struct{}
}

// New returns a new in-memory Bus. The Bus is safe for concurrent use and
// starts processing events immediately.
func New() *Bus {
	bus := &Bus{
		wake:             make(chan struct{}, 1),
		subscribeQueue:   make(chan subscribeJob),
		unsubscribeQueue: make(chan subscribeJob),
		done:             make(chan struct{}),
	}
	go bus.work()
	return bus
}

// Close shuts down the Bus. Subscriptions are closed and buffered Events
// that were never consumed are discarded. Calling Close multiple times has
// no additional effect.
func (bus *Bus) Close() {
	bus.closeOnce.Do(func() {
		close(bus.done)
	})
}

// Publish appends the given Events to the Bus buffer in order. It returns
// ctx.Err() if ctx is already canceled and ErrClosed if the Bus has been
// closed; otherwise it returns nil without waiting for consumers.
func (bus *Bus) Publish(ctx context.Context, events ...event.Event) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-bus.done:
		return ErrClosed
	default:
	}

	bus.mu.Lock()
	bus.backlog = append(bus.backlog, events...)
	bus.mu.Unlock()

	select {
	case bus.wake <- struct{}{}:
	default:
	}

	return nil
}

// Subscribe registers interest in Events with the given names, or in every
// Event if no names are provided. The returned channels are closed when ctx
// is canceled or the Bus is closed. The error channel is part of the
// event.Bus contract; the in-memory Bus never sends on it.
func (bus *Bus) Subscribe(ctx context.Context, names ...string) (<-chan event.Event, <-chan error, error) {
	rcpt := &recipient{
		events:   make(chan event.Event),
		errs:     make(chan error),
		unsubbed: make(chan struct{}),
	}
	if len(names) > 0 {
		rcpt.names = make(map[string]struct{}, len(names))
		for _, name := range names {
			rcpt.names[name] = struct{}{}
		}
	}

	job := subscribeJob{rcpt: rcpt, done: make(chan struct{})}

	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	case <-bus.done:
		return nil, nil, ErrClosed
	case bus.subscribeQueue <- job:
	}

	select {
	case <-bus.done:
		return nil, nil, ErrClosed
	case <-job.done:
	}

	go func() {
		select {
		case <-bus.done:
			// The worker closes the recipient channels on shutdown.
			return
		case <-ctx.Done():
		}
		close(rcpt.unsubbed)
		select {
		case <-bus.done:
		case bus.unsubscribeQueue <- subscribeJob{rcpt: rcpt, done: make(chan struct{})}:
		}
	}()

	return rcpt.events, rcpt.errs, nil
}

func (bus *Bus) work() {
	for {
		// Handle pending (un)subscriptions before delivering the next Event
		// so that subscribers aren't starved by a large backlog.
		select {
		case job := <-bus.subscribeQueue:
			bus.addRecipient(job)
			continue
		case job := <-bus.unsubscribeQueue:
			bus.removeRecipient(job)
			continue
		case <-bus.done:
			bus.closeRecipients()
			return
		default:
		}

		if evt, ok := bus.pop(); ok {
			bus.deliver(evt)
			continue
		}

		select {
		case <-bus.wake:
		case job := <-bus.subscribeQueue:
			bus.addRecipient(job)
		case job := <-bus.unsubscribeQueue:
			bus.removeRecipient(job)
		case <-bus.done:
			bus.closeRecipients()
			return
		}
	}
}

// pop removes and returns the oldest buffered Event. Events stay buffered
// while no subscriber exists.
func (bus *Bus) pop() (event.Event, bool) {
	if len(bus.recipients) == 0 {
		return nil, false
	}
	bus.mu.Lock()
	defer bus.mu.Unlock()
	if len(bus.backlog) == 0 {
		return nil, false
	}
	evt := bus.backlog[0]
	bus.backlog = bus.backlog[1:]
	return evt, true
}

func (bus *Bus) deliver(evt event.Event) {
	for _, rcpt := range bus.recipients {
		if !rcpt.matches(evt.Name()) {
			continue
		}
		select {
		case <-rcpt.unsubbed:
		case rcpt.events <- evt:
		case <-bus.done:
			return
		}
	}
}

func (bus *Bus) addRecipient(job subscribeJob) {
	bus.recipients = append(bus.recipients, job.rcpt)
	close(job.done)
}

func (bus *Bus) removeRecipient(job subscribeJob) {
	for i, rcpt := range bus.recipients {
		if rcpt == job.rcpt {
			close(rcpt.events)
			close(rcpt.errs)
			bus.recipients = append(bus.recipients[:i], bus.recipients[i+1:]...)
			break
		}
	}
	close(job.done)
}

func (bus *Bus) closeRecipients() {
	for _, rcpt := range bus.recipients {
		close(rcpt.events)
		close(rcpt.errs)
	}
	bus.recipients = nil
}

func (rcpt *recipient) matches(name string) bool {
	if rcpt.names == nil {
		return true
	}
	_, ok := rcpt.names[name]
	return ok
}
