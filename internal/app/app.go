// Package app implements the application layer for emorec.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/emorec/internal/adapters/detector"
	"go.trai.ch/emorec/internal/adapters/linear"
	"go.trai.ch/emorec/internal/adapters/telemetry"
	"go.trai.ch/emorec/internal/core/domain"
	"go.trai.ch/emorec/internal/core/ports"
	"go.trai.ch/emorec/internal/engine/corpus"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	features     ports.FeatureStore
	annotations  ports.AnnotationStore
	transcoder   ports.Transcoder
	store        ports.RecordStore
	hasher       ports.Hasher
	processors   *corpus.Registry

	stdout     io.Writer
	stderr     io.Writer
	configPath string
	outputMode string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	features ports.FeatureStore,
	annotations ports.AnnotationStore,
	transcoder ports.Transcoder,
	store ports.RecordStore,
	hasher ports.Hasher,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		features:     features,
		annotations:  annotations,
		transcoder:   transcoder,
		store:        store,
		hasher:       hasher,
		processors:   corpus.DefaultRegistry(),
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithOutput sets where results and progress are written.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithConfigPath makes the App read path instead of searching for emorec.yaml.
func (a *App) WithConfigPath(path string) *App {
	a.configPath = path
	return a
}

// WithOutputMode sets the progress output mode: auto, interactive or linear.
func (a *App) WithOutputMode(mode string) *App {
	a.outputMode = mode
	return a
}

// WithProcessors replaces the corpus processor registry.
func (a *App) WithProcessors(r *corpus.Registry) *App {
	a.processors = r
	return a
}

// GlobalOptions holds the settings shared by every command.
type GlobalOptions struct {
	// ConfigPath replaces emorec.yaml discovery when set.
	ConfigPath string
	// LogFormat is auto, pretty or json.
	LogFormat string
	// OutputMode is auto, interactive or linear.
	OutputMode string
}

// jsonSwitcher is implemented by loggers that can emit JSON.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// Configure applies the global options.
func (a *App) Configure(opts GlobalOptions) error {
	switch opts.LogFormat {
	case "", "auto", "pretty", "json":
	default:
		return zerr.With(domain.ErrInvalidOption, "log_format", opts.LogFormat)
	}
	switch opts.OutputMode {
	case "", "auto", "interactive", "tty", "linear", "ci":
	default:
		return zerr.With(domain.ErrInvalidOption, "output_mode", opts.OutputMode)
	}

	if l, ok := a.logger.(jsonSwitcher); ok {
		l.SetJSON(opts.LogFormat == "json")
	}
	a.configPath = opts.ConfigPath
	a.outputMode = opts.OutputMode
	return nil
}

func (a *App) loadConfig(path string) (*domain.Config, error) {
	if path == "" {
		path = a.configPath
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to get working directory")
	}
	cfg, err := a.configLoader.Load(cwd, path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// startProgress wires a renderer to a fresh tracer. The returned function
// flushes and detaches both.
func (a *App) startProgress(ctx context.Context) (ports.Tracer, func()) {
	mode := detector.ResolveMode(detector.DetectEnvironment(), a.outputMode)
	renderer := linear.NewRenderer(a.stdout, a.stderr, detector.Profile(mode))
	_ = renderer.Start(ctx)

	tracer, shutdown := telemetry.Setup("emorec", renderer)
	return tracer, func() {
		_ = shutdown(context.WithoutCancel(ctx))
		_ = renderer.Stop()
	}
}

// Clean removes the record store and any other emorec metadata.
func (a *App) Clean(_ context.Context) error {
	path := domain.DefaultEmorecPath()
	a.logger.Info(fmt.Sprintf("removing %s...", path))
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove metadata"), "path", path)
	}
	a.logger.Info(fmt.Sprintf("removed %s", path))
	return nil
}
