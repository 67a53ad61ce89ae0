package gql

import (
	"encoding/json"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"go.trai.ch/fuse/internal/core/domain"
	"go.trai.ch/zerr"
)

// SchemaLoader implements ports.SchemaLoader.
// Files ending in .json are read as introspection results, anything else as SDL.
type SchemaLoader struct{}

// NewSchemaLoader creates a new SchemaLoader.
func NewSchemaLoader() *SchemaLoader {
	return &SchemaLoader{}
}

// Load reads the schema file at path.
func (l *SchemaLoader) Load(path string) (*domain.Schema, error) {
	//nolint:gosec // G304: path comes from the user's own configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrSchemaReadFailed, err.Error()), "path", path)
	}

	var schema *domain.Schema
	if strings.EqualFold(filepath.Ext(path), ".json") {
		schema, err = FromIntrospection(data)
	} else {
		schema, err = FromSDL(path, string(data))
	}
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return schema, nil
}

// FromSDL builds a schema from schema definition language text.
func FromSDL(name, sdl string) (*domain.Schema, error) {
	parsed, err := gqlparser.LoadSchema(&ast.Source{Name: name, Input: sdl})
	if err != nil {
		return nil, zerr.Wrap(domain.ErrSchemaParseFailed, err.Error())
	}

	mutationType := ""
	if parsed.Mutation != nil {
		mutationType = parsed.Mutation.Name
	}

	schema := domain.NewSchema(mutationType)
	for _, name := range slices.Sorted(maps.Keys(parsed.Types)) {
		def := parsed.Types[name]
		switch def.Kind {
		case ast.Object, ast.Interface, ast.InputObject:
		default:
			continue
		}

		t := &domain.TypeDescriptor{Name: def.Name}
		for _, f := range def.Fields {
			fd := &domain.FieldDescriptor{Name: f.Name, Type: convertType(f.Type)}
			for _, arg := range f.Arguments {
				fd.Args = append(fd.Args, domain.ArgumentDescriptor{Name: arg.Name, Type: convertType(arg.Type)})
			}
			t.Fields = append(t.Fields, fd)
		}
		schema.AddType(t)
	}
	return schema, nil
}

// introspectionResult accepts both a bare {"__schema": ...} payload and a
// full {"data": {"__schema": ...}} response.
type introspectionResult struct {
	Data   *introspectionData   `json:"data"`
	Schema *introspectionSchema `json:"__schema"`
}

type introspectionData struct {
	Schema *introspectionSchema `json:"__schema"`
}

type introspectionSchema struct {
	MutationType *struct {
		Name string `json:"name"`
	} `json:"mutationType"`
	Types []introspectionType `json:"types"`
}

type introspectionType struct {
	Kind        string               `json:"kind"`
	Name        string               `json:"name"`
	Fields      []introspectionField `json:"fields"`
	InputFields []introspectionField `json:"inputFields"`
}

type introspectionField struct {
	Name string               `json:"name"`
	Args []introspectionField `json:"args"`
	Type introspectionTypeRef `json:"type"`
}

type introspectionTypeRef struct {
	Kind   string                `json:"kind"`
	Name   string                `json:"name"`
	OfType *introspectionTypeRef `json:"ofType"`
}

// FromIntrospection builds a schema from the JSON result of an introspection query.
func FromIntrospection(data []byte) (*domain.Schema, error) {
	var result introspectionResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, zerr.Wrap(domain.ErrSchemaParseFailed, err.Error())
	}

	raw := result.Schema
	if raw == nil && result.Data != nil {
		raw = result.Data.Schema
	}
	if raw == nil {
		return nil, zerr.Wrap(domain.ErrSchemaParseFailed, "missing __schema")
	}

	mutationType := ""
	if raw.MutationType != nil {
		mutationType = raw.MutationType.Name
	}

	schema := domain.NewSchema(mutationType)
	for _, it := range raw.Types {
		fields := it.Fields
		if it.Kind == string(ast.InputObject) {
			fields = it.InputFields
		}

		t := &domain.TypeDescriptor{Name: it.Name}
		for _, f := range fields {
			fd := &domain.FieldDescriptor{Name: f.Name, Type: f.Type.toDomain()}
			for _, arg := range f.Args {
				fd.Args = append(fd.Args, domain.ArgumentDescriptor{Name: arg.Name, Type: arg.Type.toDomain()})
			}
			t.Fields = append(t.Fields, fd)
		}
		schema.AddType(t)
	}
	return schema, nil
}

func (r introspectionTypeRef) toDomain() domain.TypeRef {
	switch r.Kind {
	case "NON_NULL":
		if r.OfType == nil {
			return domain.TypeRef{}
		}
		inner := r.OfType.toDomain()
		inner.NonNull = true
		return inner
	case "LIST":
		ref := domain.TypeRef{}
		if r.OfType != nil {
			elem := r.OfType.toDomain()
			ref.Elem = &elem
		}
		return ref
	default:
		return domain.Named(r.Name)
	}
}
