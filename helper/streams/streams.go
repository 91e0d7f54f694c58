// Package streams provides helpers for working with channels of arbitrary
// values.
package streams

import (
	"context"
	"sync"
)

// New returns a channel of the provided variadic type and fills it with the
// provided elements. The channel is closed after all elements have been
// pushed into the channel.
func New[T any](in ...T) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		for _, v := range in {
			out <- v
		}
	}()
	return out
}

// Drain drains the given channel and returns its elements.
//
// Drain accepts optional error channels which will cause Drain to fail on
// any error. When Drain encounters an error, the already drained elements
// and the error are returned. Similarly, when ctx is canceled, the drained
// elements and ctx.Err() are returned.
func Drain[T any](ctx context.Context, in <-chan T, errs ...<-chan error) ([]T, error) {
	out := make([]T, 0, len(in))
	err := Walk(ctx, func(v T) error { out = append(out, v); return nil }, in, errs...)
	return out, err
}

// Walk receives from the given channel until it and all provided error
// channels are closed, ctx is canceled or any of the provided error
// channels receives an error. For every element e that is received from the
// input channel, walkFn(e) is called. Should ctx be canceled before the
// channels are closed, ctx.Err() is returned. Should an error be received
// from one of the error channels, that error is returned. Otherwise Walk
// returns nil.
func Walk[T any](
	ctx context.Context,
	walkFn func(T) error,
	in <-chan T,
	errs ...<-chan error,
) error {
	errChan, stop := FanIn(errs...)
	defer stop()

	for {
		if in == nil && errChan == nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case err, ok := <-errChan:
			if ok {
				return err
			}
			errChan = nil
		case el, ok := <-in:
			if !ok {
				in = nil
				break
			}
			if err := walkFn(el); err != nil {
				return err
			}
		}
	}
}

// FanIn returns a single receive-only channel from multiple receive-only
// channels. When the returned stop function is called or every input
// channel is closed, the returned channel is closed.
//
// If len(in) == 0, FanIn returns a closed channel.
//
// Multiple calls to stop have no effect.
func FanIn[T any](in ...<-chan T) (_ <-chan T, stop func()) {
	stopped := make(chan struct{})
	var once sync.Once
	stop = func() { once.Do(func() { close(stopped) }) }

	out := make(chan T)

	var wg sync.WaitGroup
	wg.Add(len(in))
	for _, in := range in {
		go func(in <-chan T) {
			defer wg.Done()
			for {
				select {
				case <-stopped:
					return
				case v, ok := <-in:
					if !ok {
						return
					}
					select {
					case <-stopped:
						return
					case out <- v:
					}
				}
			}
		}(in)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out, stop
}
