package domain

// Config is the resolved fuse configuration.
type Config struct {
	// SchemaPath is the schema file, SDL (.graphql/.graphqls/.gql) or introspection JSON.
	SchemaPath string
	// LogLevel is one of debug, info, warn or error.
	LogLevel string
	// LogJSON switches the logger to JSON output.
	LogJSON bool
	// DeclaredVariableTypes keeps list and non-null wrappers on synthesized variables.
	DeclaredVariableTypes bool
	// Listeners maps mutation names to their registered listeners.
	Listeners map[string][]Listener
}
