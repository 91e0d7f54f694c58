package eventlog_test

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/SphynxHF/Hello-World/event"
	"github.com/SphynxHF/Hello-World/event/eventbus"
	"github.com/SphynxHF/Hello-World/eventlog"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestLogger(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	var out syncBuffer
	log := zerolog.New(&out).Level(zerolog.DebugLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- eventlog.New(bus, log).Run(ctx)
	}()

	// Give the logger time to subscribe before publishing.
	time.Sleep(50 * time.Millisecond)

	if err := bus.Publish(ctx, event.New("foo", "foo-data"), event.New("bar", "bar-data")); err != nil {
		t.Fatalf("publish should not fail; got %#v", err)
	}

	deadline := time.After(3 * time.Second)
	for {
		logged := out.String()
		if strings.Contains(logged, `"foo"`) && strings.Contains(logged, `"bar"`) {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("logger should log both events; got:\n%s", logged)
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("cancellation is a clean shutdown; got %#v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("logger should stop when ctx is canceled")
	}
}

func TestLogger_cancelWhileIdle(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	log := zerolog.New(&syncBuffer{}).Level(zerolog.DebugLevel)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- eventlog.New(bus, log).Run(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("cancellation is a clean shutdown; got %#v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("logger should stop when ctx is canceled")
	}
}

func TestLogger_busClosed(t *testing.T) {
	bus := eventbus.New()

	log := zerolog.New(&syncBuffer{}).Level(zerolog.DebugLevel)

	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		done <- eventlog.New(bus, log).Run(ctx)
	}()

	// Give the logger time to subscribe before closing the bus.
	time.Sleep(50 * time.Millisecond)
	bus.Close()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("a closed bus is a clean shutdown; got %#v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("logger should stop when the bus is closed")
	}
}
