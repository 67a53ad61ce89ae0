// Package config provides the configuration loader for fuse.
package config

import (
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/fuse/internal/core/domain"
	"go.trai.ch/fuse/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFilename is the config file looked up when no path is given.
	DefaultFilename = "fuse.yaml"
	// EnvPrefix prefixes every environment variable that overrides the file.
	EnvPrefix = "FUSE_"

	defaultLogLevel = "info"

	variableTypesNamed    = "named"
	variableTypesDeclared = "declared"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Loader implements ports.ConfigLoader using a YAML file and FUSE_* environment variables.
type Loader struct {
	Logger ports.Logger

	// Environment replaces the process environment when set.
	Environment map[string]string
}

// NewLoader creates a new configuration loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load reads the configuration from path and applies environment overrides.
// Relative schema and mutation file paths are resolved against the config file's directory.
func (l *Loader) Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigNotFound, path), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var fusefile Fusefile
	if err := yaml.Unmarshal(data, &fusefile); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	dir := filepath.Dir(path)
	cfg := &domain.Config{
		SchemaPath: resolvePath(dir, fusefile.Schema),
		LogLevel:   fusefile.Log.Level,
		LogJSON:    fusefile.Log.JSON,
	}

	overlay := envOverlay{
		Schema:        cfg.SchemaPath,
		LogLevel:      cfg.LogLevel,
		LogJSON:       cfg.LogJSON,
		VariableTypes: fusefile.VariableTypes,
	}
	if err := l.applyEnv(&overlay); err != nil {
		return nil, err
	}
	cfg.SchemaPath = overlay.Schema
	cfg.LogLevel = strings.ToLower(overlay.LogLevel)
	cfg.LogJSON = overlay.LogJSON

	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if !slices.Contains(logLevels, cfg.LogLevel) {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfigValue, "unknown log level"), "log_level", cfg.LogLevel)
	}

	switch overlay.VariableTypes {
	case "", variableTypesNamed:
	case variableTypesDeclared:
		cfg.DeclaredVariableTypes = true
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfigValue, "variable_types must be named or declared"),
			"variable_types", overlay.VariableTypes)
	}

	listeners, err := l.loadListeners(dir, fusefile.Listeners)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	cfg.Listeners = listeners

	return cfg, nil
}

func (l *Loader) applyEnv(overlay *envOverlay) error {
	opts := env.Options{Prefix: EnvPrefix, Environment: l.Environment}
	if err := env.ParseWithOptions(overlay, opts); err != nil {
		return zerr.Wrap(domain.ErrConfigEnvFailed, err.Error())
	}
	return nil
}

func (l *Loader) loadListeners(
	dir string,
	dtos map[string]map[string]ListenerDTO,
) (map[string][]domain.Listener, error) {
	listeners := make(map[string][]domain.Listener, len(dtos))
	for _, mutationName := range slices.Sorted(maps.Keys(dtos)) {
		byComponent := dtos[mutationName]
		for _, componentID := range slices.Sorted(maps.Keys(byComponent)) {
			document, err := l.loadDocument(dir, byComponent[componentID])
			if err != nil {
				err = zerr.With(err, "mutation", mutationName)
				return nil, zerr.With(err, "component", componentID)
			}
			listeners[mutationName] = append(listeners[mutationName], domain.Listener{
				ComponentID: componentID,
				Mutation:    document,
			})
		}
	}
	return listeners, nil
}

func (l *Loader) loadDocument(dir string, dto ListenerDTO) (string, error) {
	switch {
	case dto.Mutation != "" && dto.File != "":
		return "", zerr.Wrap(domain.ErrInvalidListener, "both mutation and file are set")
	case dto.Mutation != "":
		return dto.Mutation, nil
	case dto.File != "":
		path := resolvePath(dir, dto.File)
		l.Logger.Debug("reading mutation document " + path)
		data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
		if err != nil {
			return "", zerr.With(zerr.Wrap(domain.ErrMutationFileReadFailed, err.Error()), "file", path)
		}
		return string(data), nil
	default:
		return "", zerr.Wrap(domain.ErrInvalidListener, "neither mutation nor file is set")
	}
}

func resolvePath(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
