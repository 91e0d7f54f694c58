package cli

import (
	"context"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/SphynxHF/Hello-World/command"
	"github.com/SphynxHF/Hello-World/console"
	"github.com/SphynxHF/Hello-World/event/eventbus"
	"github.com/SphynxHF/Hello-World/eventlog"
	"github.com/SphynxHF/Hello-World/greeter"
)

// ExitConfigError is the exit code for startup configuration errors, e.g. a
// missing or duplicate primary command. Distinct from command.ExitFailure,
// which reports a failure of the executed command itself.
const ExitConfigError = 3

// App is the CLI application.
type App struct {
	root *cobra.Command

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	debug    bool
	exitCode int
}

// Option configures an App.
type Option func(*App)

// WithInput returns an Option that overrides the input stream of the App.
// The default is os.Stdin.
func WithInput(r io.Reader) Option {
	return func(app *App) {
		app.in = r
	}
}

// WithOutput returns an Option that overrides the output stream of the App.
// The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(app *App) {
		app.out = w
	}
}

// WithErrOutput returns an Option that overrides the log stream of the App.
// The default is os.Stderr.
func WithErrOutput(w io.Writer) Option {
	return func(app *App) {
		app.errOut = w
	}
}

// New returns the CLI App.
func New(opts ...Option) *App {
	app := &App{
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	for _, opt := range opts {
		opt(app)
	}
	app.root = newRoot(app)
	return app
}

// Root returns the root command.
func (app *App) Root() *cobra.Command {
	return app.root
}

// Run runs the app and returns the process exit code. A non-nil error means
// the app could not be started (bad flags or a misconfigured command
// registry); callers should report it and exit with ExitConfigError.
func (app *App) Run(ctx context.Context) (int, error) {
	if err := app.root.ExecuteContext(ctx); err != nil {
		return 0, err
	}
	return app.exitCode, nil
}

func newRoot(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "greet",
		Short: "Interactive greeter",
		Long: heredoc.Doc(`
			greet asks for your name, prints a greeting and waits for Enter
			before exiting. Entered names are published as events on an
			in-process event bus; pass --debug to see them logged.
		`),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			code, err := app.run(cmd.Context())
			if err != nil {
				return err
			}
			app.exitCode = code
			return nil
		},
	}

	cmd.Flags().BoolVar(&app.debug, "debug", false, "Log published events to stderr")

	return cmd
}

func (app *App) run(ctx context.Context) (int, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	level := zerolog.InfoLevel
	if app.debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: app.errOut}).
		Level(level).
		With().Timestamp().
		Logger()

	bus := eventbus.New()
	defer bus.Close()

	port := console.NewStdio(app.in, app.out)

	reg := command.NewRegistry()
	reg.Register(greeter.CommandName, func() command.Command {
		return greeter.New(port, bus)
	}, command.Primary())

	grp, grpCtx := errgroup.WithContext(ctx)
	logger := eventlog.New(bus, log)
	grp.Go(func() error {
		return logger.Run(grpCtx)
	})

	code, err := command.NewRunner(reg, port).Run(ctx)

	// Shut down the background logger and join it before returning. Its
	// error is observability-only and never changes the exit code.
	cancel()
	if werr := grp.Wait(); werr != nil {
		log.Debug().Err(werr).Msg("event logger stopped")
	}

	if err != nil {
		return 0, err
	}
	return code, nil
}
