package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/logrusorgru/aurora"
)

// Main is the entrypoint for the CLI. Call Main from an actual main
// function.
func Main() {
	log.SetFlags(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code, err := New().Run(ctx)
	if err != nil {
		log.Println(aurora.Red(fmt.Sprintf("greet: %v", err)))
		os.Exit(ExitConfigError)
	}

	stop()
	os.Exit(code)
}
