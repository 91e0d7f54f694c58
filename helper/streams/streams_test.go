package streams_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/SphynxHF/Hello-World/helper/streams"
)

func TestNew(t *testing.T) {
	ctx := context.Background()

	got, err := streams.Drain(ctx, streams.New(1, 2, 3))
	if err != nil {
		t.Fatalf("drain should not fail; got %#v", err)
	}

	if want := []int{1, 2, 3}; !cmp.Equal(want, got) {
		t.Errorf("drained wrong elements:\n%s", cmp.Diff(want, got))
	}
}

func TestDrain_error(t *testing.T) {
	ctx := context.Background()
	mockError := errors.New("mock error")

	errs := make(chan error, 1)
	errs <- mockError

	in := make(chan int)

	if _, err := streams.Drain(ctx, in, errs); !errors.Is(err, mockError) {
		t.Fatalf("drain should fail with %#v; got %#v", mockError, err)
	}
}

func TestDrain_canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := make(chan int)

	if _, err := streams.Drain(ctx, in); !errors.Is(err, context.Canceled) {
		t.Fatalf("drain should fail with %#v; got %#v", context.Canceled, err)
	}
}

func TestWalk(t *testing.T) {
	ctx := context.Background()

	var got []int
	err := streams.Walk(ctx, func(v int) error {
		got = append(got, v)
		return nil
	}, streams.New(1, 2, 3))
	if err != nil {
		t.Fatalf("walk should not fail; got %#v", err)
	}

	if want := []int{1, 2, 3}; !cmp.Equal(want, got) {
		t.Errorf("walked wrong elements:\n%s", cmp.Diff(want, got))
	}
}

func TestWalk_walkFnError(t *testing.T) {
	ctx := context.Background()
	mockError := errors.New("mock error")

	err := streams.Walk(ctx, func(int) error { return mockError }, streams.New(1, 2, 3))
	if !errors.Is(err, mockError) {
		t.Fatalf("walk should fail with %#v; got %#v", mockError, err)
	}
}

func TestFanIn(t *testing.T) {
	a := streams.New(1, 2)
	b := streams.New(3, 4)

	out, stop := streams.FanIn(a, b)
	defer stop()

	got, err := streams.Drain(context.Background(), out)
	if err != nil {
		t.Fatalf("drain should not fail; got %#v", err)
	}

	if len(got) != 4 {
		t.Errorf("fan-in should forward all %d elements; got %#v", 4, got)
	}
}

func TestFanIn_stop(t *testing.T) {
	in := make(chan int)

	out, stop := streams.FanIn(in)
	stop()
	stop() // must be idempotent

	select {
	case _, ok := <-out:
		if ok {
			t.Fatalf("stopped fan-in should not forward elements")
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("stop should close the fan-in channel")
	}
}

func TestFanIn_empty(t *testing.T) {
	out, stop := streams.FanIn[int]()
	defer stop()

	select {
	case _, ok := <-out:
		if ok {
			t.Fatalf("fan-in of no channels should be closed")
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("fan-in of no channels should be closed immediately")
	}
}
