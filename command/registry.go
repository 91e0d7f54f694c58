package command

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrUnregistered is returned when instantiating a Command which hasn't
	// been registered in a Registry.
	ErrUnregistered = errors.New("unregistered command")

	// ErrNoPrimary is returned when no Command has been registered as the
	// primary command.
	ErrNoPrimary = errors.New("no primary command registered")

	// ErrDuplicatePrimary is returned when more than one Command has been
	// registered as the primary command.
	ErrDuplicatePrimary = errors.New("multiple primary commands registered")
)

// A Registry is an explicit mapping from Command names to factory functions.
// It is populated during startup and read-only afterwards. Exactly one
// registered Command must be marked as the primary command for a Runner to
// execute it.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]func() Command
	primaries []string
}

// A RegisterOption configures the registration of a single Command.
type RegisterOption func(*registration)

type registration struct {
	primary bool
}

// Primary returns a RegisterOption that marks the registered Command as the
// primary command of the application.
func Primary() RegisterOption {
	return func(r *registration) {
		r.primary = true
	}
}

// NewRegistry returns a new, empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]func() Command),
	}
}

// Register registers a factory for Commands with the given name. Register
// panics if makeCommand is nil or if name has already been registered, as
// both are programmer errors in the startup wiring.
func (reg *Registry) Register(name string, makeCommand func() Command, opts ...RegisterOption) {
	if makeCommand == nil {
		panic(fmt.Sprintf("command: nil factory for %q command", name))
	}

	var cfg registration
	for _, opt := range opts {
		opt(&cfg)
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if _, ok := reg.factories[name]; ok {
		panic(fmt.Sprintf("command: %q command registered twice", name))
	}

	reg.factories[name] = makeCommand
	if cfg.primary {
		reg.primaries = append(reg.primaries, name)
	}
}

// New instantiates the Command with the given name.
func (reg *Registry) New(name string) (Command, error) {
	reg.mu.RLock()
	makeCommand, ok := reg.factories[name]
	reg.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w [name=%v]", ErrUnregistered, name)
	}
	return makeCommand(), nil
}

// Names returns the names of all registered Commands.
func (reg *Registry) Names() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	names := make([]string, 0, len(reg.factories))
	for name := range reg.factories {
		names = append(names, name)
	}
	return names
}

// Primary returns the factory of the single Command that was registered
// with the Primary option. It fails with ErrNoPrimary or
// ErrDuplicatePrimary if the cardinality check does not hold.
func (reg *Registry) Primary() (func() Command, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	switch len(reg.primaries) {
	case 0:
		return nil, ErrNoPrimary
	case 1:
		return reg.factories[reg.primaries[0]], nil
	default:
		return nil, fmt.Errorf("%w [names=%v]", ErrDuplicatePrimary, reg.primaries)
	}
}
