package command

import (
	"context"
	"fmt"

	"github.com/SphynxHF/Hello-World/console"
	"github.com/SphynxHF/Hello-World/result"
)

// Exit codes returned by Runner.Run.
const (
	ExitOK      = 0
	ExitFailure = 2
)

// A Runner locates the primary Command of a Registry and executes it.
type Runner struct {
	reg  *Registry
	port console.Port
}

// NewRunner returns a Runner that executes Commands from reg and reports
// failures on port.
func NewRunner(reg *Registry, port console.Port) *Runner {
	if reg == nil {
		panic("command: NewRunner: registry is nil")
	}
	if port == nil {
		panic("command: NewRunner: port is nil")
	}
	return &Runner{reg: reg, port: port}
}

// Run executes the primary Command and returns its exit code: ExitOK if the
// Command succeeded, ExitFailure if it reported a failure. A failure is
// additionally reported as a single diagnostic line on the Runner's port.
//
// A non-nil error means the Registry is misconfigured (ErrNoPrimary or
// ErrDuplicatePrimary); in that case no Command was executed and no I/O was
// performed.
func (r *Runner) Run(ctx context.Context) (int, error) {
	makeCommand, err := r.reg.Primary()
	if err != nil {
		return ExitOK, err
	}

	cmd := makeCommand()

	code := ExitOK
	cmd.Execute(ctx).Match(
		func(result.Void) {},
		func(execErr error) {
			// The diagnostic must reach the user even if the failure was a
			// cancellation, so the write doesn't use the canceled ctx.
			diagCtx := context.WithoutCancel(ctx)
			_ = r.port.Println(diagCtx, fmt.Sprintf("%s: %v", cmd.Name(), execErr))
			code = ExitFailure
		},
	)

	return code, nil
}
