// Package app wires configuration, logging and the reconciler into the
// excalidraw-reconcile command tree.
package app

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/OP439/excalidraw/pkg/errors"
	"github.com/OP439/excalidraw/pkg/reconcile"
)

// App represents the excalidraw-reconcile application with its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config

	logger *zerolog.Logger
	// customLogger is set when the logger was injected and must survive
	// flag parsing.
	customLogger bool

	// registry collects reconciler metrics for the lifetime of the app.
	registry *prometheus.Registry

	// Standard streams, nil means the process streams.
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version:  version,
		commit:   commit,
		date:     date,
		builtBy:  builtBy,
		registry: prometheus.NewRegistry(),
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Registry returns the metrics registry.
func (a *App) Registry() *prometheus.Registry {
	return a.registry
}

// Reconciler creates a reconciler configured from the app settings.
func (a *App) Reconciler() (reconcile.Reconciler, error) {
	var opts []reconcile.Option
	if a.config.Metrics {
		opts = append(opts, reconcile.WithMetrics(a.registry))
	}

	r, err := reconcile.New(opts...)
	if err != nil {
		return nil, errors.NewConfigError("reconciler", "creating reconciler", err)
	}
	return r, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return &errors.ValidationError{Field: "config", Message: "cannot be nil"}
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger that replaces the configured one.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		if logger == nil {
			return &errors.ValidationError{Field: "logger", Message: "cannot be nil"}
		}
		a.logger = logger
		a.customLogger = true
		return nil
	}
}

// WithIO replaces the standard streams. Nil arguments keep the defaults.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(a *App) error {
		a.in = in
		a.out = out
		a.errOut = errOut
		return nil
	}
}
