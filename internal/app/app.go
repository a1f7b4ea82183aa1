package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/redflags/internal/cli"
	"github.com/agbru/redflags/internal/config"
	apperrors "github.com/agbru/redflags/internal/errors"
	"github.com/agbru/redflags/internal/flags"
	"github.com/agbru/redflags/internal/logging"
	"github.com/agbru/redflags/internal/metrics"
	"github.com/agbru/redflags/internal/ui"
)

const tracerName = "github.com/agbru/redflags/internal/app"

// Application represents the redflags application instance.
type Application struct {
	Config    config.AppConfig
	Registry  *flags.Registry
	Logger    logging.Logger
	Metrics   *metrics.Metrics
	Tracer    trace.Tracer
	Stdin     io.Reader
	ErrWriter io.Writer

	now func() time.Time
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRegistry sets a custom indicator registry.
func WithRegistry(r *flags.Registry) AppOption {
	return func(a *Application) { a.Registry = r }
}

// WithLogger sets the application logger, bypassing --log-level.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithStdin sets the reader used when the input is "-".
func WithStdin(r io.Reader) AppOption {
	return func(a *Application) { a.Stdin = r }
}

// WithTracer sets the tracer used for evaluation spans.
func WithTracer(t trace.Tracer) AppOption {
	return func(a *Application) { a.Tracer = t }
}

// WithClock sets the time source used to stamp reports.
func WithClock(now func() time.Time) AppOption {
	return func(a *Application) { a.now = now }
}

// New creates a new Application instance by parsing command-line arguments.
// Configuration errors are reported on errWriter.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, Stdin: os.Stdin, now: time.Now}
	for _, opt := range opts {
		opt(app)
	}
	if app.Registry == nil {
		app.Registry = flags.NewDefaultRegistry(flags.ActiveAwardResolver{})
	}

	programName := "redflags"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Registry.List())
	if err != nil {
		if !IsHelpError(err) {
			cli.DisplayError(errWriter, err)
		}
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		logger, err := logging.NewLeveledLogger(errWriter, "redflags", cfg.LogLevel)
		if err != nil {
			return nil, apperrors.NewConfigError("%v", err)
		}
		app.Logger = logger
	}
	if app.Metrics == nil {
		app.Metrics = metrics.New()
	}
	if app.Tracer == nil {
		app.Tracer = otel.Tracer(tracerName)
	}
	return app, nil
}

// Run evaluates the configured indicator and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)

	code := a.runEvaluate(ctx, out)

	if a.Config.MetricsFile != "" {
		if err := a.Metrics.WriteTextfile(a.Config.MetricsFile); err != nil {
			a.Logger.Error("writing metrics file failed", err, logging.String("path", a.Config.MetricsFile))
			if code == apperrors.ExitSuccess {
				code = apperrors.ExitErrorGeneric
			}
		}
	}
	return code
}

// fail reports err and maps it to an exit code.
func (a *Application) fail(err error) int {
	cli.DisplayError(a.ErrWriter, err)
	return apperrors.ExitCode(err)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
