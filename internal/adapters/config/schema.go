package config

// Fusefile represents the structure of the fuse.yaml configuration file.
type Fusefile struct {
	Version       string                            `yaml:"version"`
	Schema        string                            `yaml:"schema"`
	VariableTypes string                            `yaml:"variable_types"`
	Log           LogDTO                            `yaml:"log"`
	Listeners     map[string]map[string]ListenerDTO `yaml:"listeners"`
}

// LogDTO represents the logging section of the configuration.
type LogDTO struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// ListenerDTO represents one component's listener for a mutation.
// Exactly one of Mutation and File is set.
type ListenerDTO struct {
	Mutation string `yaml:"mutation"`
	File     string `yaml:"file"`
}

// envOverlay holds the FUSE_* environment variables that override the file.
type envOverlay struct {
	Schema        string `env:"SCHEMA"`
	LogLevel      string `env:"LOG_LEVEL"`
	LogJSON       bool   `env:"LOG_JSON"`
	VariableTypes string `env:"VARIABLE_TYPES"`
}
