// Package app implements the application layer for fuse.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"go.trai.ch/fuse/internal/core/domain"
	"go.trai.ch/fuse/internal/core/ports"
	"go.trai.ch/fuse/internal/engine/dispatcher"
	"go.trai.ch/fuse/internal/engine/merger"
	"go.trai.ch/fuse/internal/ui/diff"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// MetricsWriter writes collected metrics in a text exposition format.
type MetricsWriter interface {
	WriteText(w io.Writer) error
}

type levelSetter interface {
	SetLevel(name string) error
}

type jsonSetter interface {
	SetJSON(enable bool)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	schemaLoader ports.SchemaLoader
	parser       ports.DocumentParser
	printer      ports.DocumentPrinter
	registry     ports.ListenerRegistry
	dispatcher   *dispatcher.Dispatcher
	logger       ports.Logger
	metrics      MetricsWriter

	mu         sync.Mutex
	loadedPath string
	loaded     bool
	drivers    map[bool]*merger.Driver
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	schemaLoader ports.SchemaLoader,
	parser ports.DocumentParser,
	printer ports.DocumentPrinter,
	registry ports.ListenerRegistry,
	disp *dispatcher.Dispatcher,
	log ports.Logger,
	metrics MetricsWriter,
) *App {
	return &App{
		configLoader: configLoader,
		schemaLoader: schemaLoader,
		parser:       parser,
		printer:      printer,
		registry:     registry,
		dispatcher:   disp,
		logger:       log,
		metrics:      metrics,
		drivers:      make(map[bool]*merger.Driver),
	}
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	ConfigPath   string
	Mutation     string
	ComponentIDs []string
}

// Resolve returns the mutation string satisfying every listed component of a configured mutation.
// The configuration is loaded on first use and kept for later calls with the same path,
// so repeated requests for the same documents are served from the dispatcher's cache.
func (a *App) Resolve(ctx context.Context, opts ResolveOptions) (string, error) {
	if err := a.load(opts.ConfigPath); err != nil {
		return "", err
	}

	mutation, err := a.dispatcher.CreateMutationString(ctx, opts.Mutation, opts.ComponentIDs)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve "+opts.Mutation), "mutation", opts.Mutation)
	}
	return mutation, nil
}

// load installs the configuration at path into the registry and dispatcher.
func (a *App) load(path string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.loaded && a.loadedPath == path {
		return nil
	}

	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if err := a.applyLogging(cfg); err != nil {
		return err
	}

	if cfg.SchemaPath == "" {
		return zerr.With(zerr.Wrap(domain.ErrSchemaNotConfigured, "set schema in "+path), "path", path)
	}
	schema, err := a.schemaLoader.Load(cfg.SchemaPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load schema")
	}

	if err := a.registry.Replace(cfg.Listeners); err != nil {
		return zerr.Wrap(err, "failed to register listeners")
	}
	a.dispatcher.Configure(schema, a.driver(cfg.DeclaredVariableTypes))

	a.logger.Debug(fmt.Sprintf("loaded %d mutations from %s", len(cfg.Listeners), path))
	a.loadedPath = path
	a.loaded = true
	return nil
}

// MergeOptions configuration for the Merge method.
type MergeOptions struct {
	// ConfigPath is optional when SchemaPath is set.
	ConfigPath string
	// SchemaPath overrides the configured schema.
	SchemaPath string
	// Files are the mutation documents to merge, in merge order.
	Files []string
}

// FileDiff is the line diff from one input document to the merged mutation.
type FileDiff struct {
	Path  string
	Lines []diff.Line
}

// MergeResult is the outcome of merging mutation files.
type MergeResult struct {
	Mutation string
	Diffs    []FileDiff
}

// Merge merges the mutation documents in opts.Files without consulting the cache.
func (a *App) Merge(ctx context.Context, opts MergeOptions) (*MergeResult, error) {
	if len(opts.Files) == 0 {
		return nil, domain.ErrNoMutationFiles
	}

	cfg, err := a.configLoader.Load(opts.ConfigPath)
	switch {
	case err == nil:
		if err := a.applyLogging(cfg); err != nil {
			return nil, err
		}
	case errors.Is(err, domain.ErrConfigNotFound) && opts.SchemaPath != "":
		cfg = &domain.Config{}
	default:
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	schemaPath := opts.SchemaPath
	if schemaPath == "" {
		schemaPath = cfg.SchemaPath
	}
	if schemaPath == "" {
		return nil, zerr.Wrap(domain.ErrSchemaNotConfigured, "pass --schema or set schema in the config file")
	}

	schema, err := a.schemaLoader.Load(schemaPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load schema")
	}

	texts, err := readFiles(ctx, opts.Files)
	if err != nil {
		return nil, err
	}

	set := domain.NewMutationStringSet(texts...)
	a.logger.Debug(fmt.Sprintf("merging %d distinct documents against %s", set.Len(), schemaPath))

	a.mu.Lock()
	driver := a.driver(cfg.DeclaredVariableTypes)
	a.mu.Unlock()

	merged, err := driver.MergeSet(set, schema)
	if err != nil {
		return nil, err
	}

	result := &MergeResult{Mutation: merged, Diffs: make([]FileDiff, len(opts.Files))}
	for i, path := range opts.Files {
		result.Diffs[i] = FileDiff{Path: path, Lines: diff.Lines(texts[i], merged)}
	}
	return result, nil
}

// readFiles reads paths concurrently and returns their contents in order.
func readFiles(ctx context.Context, paths []string) ([]string, error) {
	texts := make([]string, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
			if err != nil {
				return zerr.With(zerr.Wrap(domain.ErrMutationFileReadFailed, err.Error()), "path", path)
			}
			texts[i] = string(data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return texts, nil
}

// WriteMetrics writes the metrics collected so far to w.
func (a *App) WriteMetrics(w io.Writer) error {
	if a.metrics == nil {
		return nil
	}
	return a.metrics.WriteText(w)
}

// driver returns the merge driver for the given variable typing mode. Callers hold mu.
func (a *App) driver(declaredTypes bool) *merger.Driver {
	if d, ok := a.drivers[declaredTypes]; ok {
		return d
	}

	var opts []merger.Option
	if declaredTypes {
		opts = append(opts, merger.WithDeclaredVariableTypes())
	}
	d := merger.NewDriver(a.parser, a.printer, opts...)
	a.drivers[declaredTypes] = d
	return d
}

// applyLogging applies the configured log level and format when the logger supports them.
func (a *App) applyLogging(cfg *domain.Config) error {
	if ls, ok := a.logger.(levelSetter); ok {
		if err := ls.SetLevel(cfg.LogLevel); err != nil {
			return err
		}
	}
	if js, ok := a.logger.(jsonSetter); ok {
		js.SetJSON(cfg.LogJSON)
	}
	return nil
}
