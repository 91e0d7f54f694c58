// Package console abstracts line-based text input and output so that
// commands don't depend on a concrete I/O device.
package console

import "context"

// A Port is a line-oriented text device. All operations honor ctx and
// return ctx.Err() if ctx is canceled while they are waiting on the
// underlying device.
type Port interface {
	// Print writes s to the device, without a trailing newline.
	Print(ctx context.Context, s string) error

	// Println writes s to the device, followed by a newline.
	Println(ctx context.Context, s string) error

	// ReadLine reads the next line from the device, without the trailing
	// newline. At end-of-input, ReadLine returns ok == false and a nil
	// error.
	ReadLine(ctx context.Context) (line string, ok bool, err error)
}
