package command_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/SphynxHF/Hello-World/command"
	"github.com/SphynxHF/Hello-World/console"
	"github.com/SphynxHF/Hello-World/result"
)

func TestRunner_success(t *testing.T) {
	reg := command.NewRegistry()
	reg.Register("foo", newMockCommand("foo"), command.Primary())

	port := console.NewMemory()
	code, err := command.NewRunner(reg, port).Run(context.Background())

	if err != nil {
		t.Fatalf("run should not fail; got %#v", err)
	}

	if code != command.ExitOK {
		t.Errorf("exit code should be %d; got %d", command.ExitOK, code)
	}

	if out := port.Output(); out != "" {
		t.Errorf("a successful run should write no diagnostics; got %q", out)
	}
}

func TestRunner_failure(t *testing.T) {
	mockError := errors.New("mock error")

	reg := command.NewRegistry()
	reg.Register("foo", func() command.Command {
		return &mockCommand{name: "foo", res: result.Fail[result.Void](mockError)}
	}, command.Primary())

	port := console.NewMemory()
	code, err := command.NewRunner(reg, port).Run(context.Background())

	if err != nil {
		t.Fatalf("a command failure is not a runner error; got %#v", err)
	}

	if code != command.ExitFailure {
		t.Errorf("exit code should be %d; got %d", command.ExitFailure, code)
	}

	out := port.Output()
	if !strings.Contains(out, "foo") || !strings.Contains(out, mockError.Error()) {
		t.Errorf("diagnostic should name the command and the error; got %q", out)
	}
}

func TestRunner_noPrimary(t *testing.T) {
	reg := command.NewRegistry()
	reg.Register("foo", newMockCommand("foo"))

	port := console.NewMemory()
	_, err := command.NewRunner(reg, port).Run(context.Background())

	if !errors.Is(err, command.ErrNoPrimary) {
		t.Fatalf("run should fail with %#v; got %#v", command.ErrNoPrimary, err)
	}

	if out := port.Output(); out != "" {
		t.Errorf("a configuration error should abort before any I/O; got %q", out)
	}
}

func TestRunner_duplicatePrimary(t *testing.T) {
	reg := command.NewRegistry()
	reg.Register("foo", newMockCommand("foo"), command.Primary())
	reg.Register("bar", newMockCommand("bar"), command.Primary())

	port := console.NewMemory()
	_, err := command.NewRunner(reg, port).Run(context.Background())

	if !errors.Is(err, command.ErrDuplicatePrimary) {
		t.Fatalf("run should fail with %#v; got %#v", command.ErrDuplicatePrimary, err)
	}

	if out := port.Output(); out != "" {
		t.Errorf("a configuration error should abort before any I/O; got %q", out)
	}
}
