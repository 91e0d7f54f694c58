// Package command provides the command registry and the runner that
// executes the primary command of the application.
package command

import (
	"context"

	"github.com/SphynxHF/Hello-World/result"
)

// A Command is a single executable operation of the application. Commands
// are registered in a Registry and executed by a Runner. The set of Command
// implementations is open; implementations convert every fault raised
// during execution into a failed Result instead of letting it escape.
type Command interface {
	// Name returns the Command name.
	Name() string

	// Execute runs the Command. Cancellation of ctx unwinds any suspended
	// operation and surfaces as a failed Result.
	Execute(ctx context.Context) result.Result[result.Void]
}
