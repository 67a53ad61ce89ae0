package domain

import "go.trai.ch/zerr"

var (
	// ErrMergeConflict is returned when two documents invoke different root mutation fields.
	ErrMergeConflict = zerr.New("cannot merge two different mutations")

	// ErrInvalidArgument is returned when a variable needs a definition but the schema declares no such argument.
	ErrInvalidArgument = zerr.New("invalid argument")

	// ErrSchemaMismatch is returned when a selection or type has no match in the schema during descent.
	ErrSchemaMismatch = zerr.New("selection does not match schema")

	// ErrUnknownMutation is returned when no listeners are registered for a mutation name.
	ErrUnknownMutation = zerr.New("unknown mutation")

	// ErrUnknownComponent is returned when a component id has no listener for the requested mutation.
	ErrUnknownComponent = zerr.New("unknown component")

	// ErrNothingToMerge is returned when a merge is requested for an empty document set.
	ErrNothingToMerge = zerr.New("no mutation documents to merge")

	// ErrNoComponents is returned when a mutation string is requested for an empty component list.
	ErrNoComponents = zerr.New("no components to update")

	// ErrDocumentParseFailed is returned when a mutation document cannot be parsed.
	ErrDocumentParseFailed = zerr.New("failed to parse mutation document")

	// ErrMalformedDocument is returned when a document is not a single mutation with a single root field.
	ErrMalformedDocument = zerr.New("document must contain exactly one mutation with exactly one root field")

	// ErrUnsupportedSelection is returned when a document uses fragments.
	ErrUnsupportedSelection = zerr.New("fragments are not supported in mergeable mutations")

	// ErrSchemaReadFailed is returned when the schema file cannot be read.
	ErrSchemaReadFailed = zerr.New("failed to read schema file")

	// ErrSchemaParseFailed is returned when the schema file cannot be parsed.
	ErrSchemaParseFailed = zerr.New("failed to parse schema")

	// ErrConfigNotFound is returned when the config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigEnvFailed is returned when configuration environment variables are invalid.
	ErrConfigEnvFailed = zerr.New("failed to read configuration from environment")

	// ErrInvalidConfigValue is returned when a configuration value is outside its allowed set.
	ErrInvalidConfigValue = zerr.New("invalid configuration value")

	// ErrInvalidListener is returned when a configured listener has neither or both of mutation and file.
	ErrInvalidListener = zerr.New("listener must set exactly one of mutation or file")

	// ErrMutationFileReadFailed is returned when a mutation document file cannot be read.
	ErrMutationFileReadFailed = zerr.New("failed to read mutation file")

	// ErrNoMutationFiles is returned when the merge command is given no documents.
	ErrNoMutationFiles = zerr.New("no mutation files specified")

	// ErrSchemaNotConfigured is returned when neither the config nor the flags name a schema.
	ErrSchemaNotConfigured = zerr.New("no schema configured")
)
