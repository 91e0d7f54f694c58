// Package greeter implements the interactive greeting command.
package greeter

import (
	"context"
	"fmt"

	"github.com/SphynxHF/Hello-World/command"
	"github.com/SphynxHF/Hello-World/console"
	"github.com/SphynxHF/Hello-World/event"
	"github.com/SphynxHF/Hello-World/result"
)

// Placeholder is substituted for the name when input ends before a name was
// entered.
const Placeholder = "stranger"

// CommandName is the name under which the Greeter is registered.
const CommandName = "greet"

// A Greeter prompts the user for their name, publishes a NameEntered event
// and prints a greeting. It waits for a final Enter before it completes so
// the greeting stays visible in terminals that close with the process.
type Greeter struct {
	port console.Port
	bus  event.Bus
}

var _ command.Command = (*Greeter)(nil)

// New returns a Greeter that talks to the user over port and publishes its
// events on bus.
func New(port console.Port, bus event.Bus) *Greeter {
	if port == nil {
		panic("greeter: New: port is nil")
	}
	if bus == nil {
		panic("greeter: New: bus is nil")
	}
	return &Greeter{port: port, bus: bus}
}

// Name returns the Command name.
func (g *Greeter) Name() string {
	return CommandName
}

// Execute runs the greeting dialog. Every fault along the way, including
// cancellation during a blocking read, is captured in the returned Result;
// Execute never lets an error escape otherwise.
func (g *Greeter) Execute(ctx context.Context) result.Result[result.Void] {
	if err := g.run(ctx); err != nil {
		return result.Fail[result.Void](err)
	}
	return result.Done()
}

func (g *Greeter) run(ctx context.Context) error {
	if err := g.port.Print(ctx, "Enter your name: "); err != nil {
		return fmt.Errorf("prompt: %w", err)
	}

	name, ok, err := g.port.ReadLine(ctx)
	if err != nil {
		return fmt.Errorf("read name: %w", err)
	}
	if !ok {
		name = Placeholder
	}

	evt := event.New(NameEntered, NameEnteredData{Name: name})
	if err := g.bus.Publish(ctx, evt); err != nil {
		return fmt.Errorf("publish %q event: %w", NameEntered, err)
	}

	if err := g.port.Println(ctx, fmt.Sprintf("Hello, World! And hello, %s!", name)); err != nil {
		return fmt.Errorf("greet: %w", err)
	}

	if err := g.port.Println(ctx, "Press Enter to exit..."); err != nil {
		return fmt.Errorf("exit prompt: %w", err)
	}

	// End-of-input completes the gate just like an entered line.
	if _, _, err := g.port.ReadLine(ctx); err != nil {
		return fmt.Errorf("wait for enter: %w", err)
	}

	return nil
}
