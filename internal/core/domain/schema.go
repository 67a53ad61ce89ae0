package domain

// Schema is the read-only view of a GraphQL schema the merge engine needs.
type Schema struct {
	// MutationType is the name of the mutation root type, empty when the schema has none.
	MutationType string

	types map[string]*TypeDescriptor
	order []string
}

// NewSchema creates a Schema with the given mutation root type name and types.
// A later type with the same name replaces an earlier one.
func NewSchema(mutationType string, types ...*TypeDescriptor) *Schema {
	s := &Schema{
		MutationType: mutationType,
		types:        make(map[string]*TypeDescriptor, len(types)),
	}
	for _, t := range types {
		s.AddType(t)
	}
	return s
}

// AddType registers a type descriptor.
func (s *Schema) AddType(t *TypeDescriptor) {
	if _, exists := s.types[t.Name]; !exists {
		s.order = append(s.order, t.Name)
	}
	s.types[t.Name] = t
}

// Type returns the descriptor of the named type.
func (s *Schema) Type(name string) (*TypeDescriptor, bool) {
	t, ok := s.types[name]
	return t, ok
}

// MutationRoot returns the descriptor of the mutation root type.
func (s *Schema) MutationRoot() (*TypeDescriptor, bool) {
	if s.MutationType == "" {
		return nil, false
	}
	return s.Type(s.MutationType)
}

// Types returns all type descriptors in registration order.
func (s *Schema) Types() []*TypeDescriptor {
	res := make([]*TypeDescriptor, 0, len(s.order))
	for _, name := range s.order {
		res = append(res, s.types[name])
	}
	return res
}

// TypeDescriptor describes an object, interface or input object type.
// For input objects, Fields holds the input fields and Args is empty.
type TypeDescriptor struct {
	Name   string
	Fields []*FieldDescriptor
}

// Field returns the field with the given name.
func (t *TypeDescriptor) Field(name string) (*FieldDescriptor, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// FieldDescriptor describes a field, its return type and its arguments.
type FieldDescriptor struct {
	Name string
	Type TypeRef
	Args []ArgumentDescriptor
}

// Arg returns the argument with the given name.
func (f *FieldDescriptor) Arg(name string) (ArgumentDescriptor, bool) {
	for _, a := range f.Args {
		if a.Name == name {
			return a, true
		}
	}
	return ArgumentDescriptor{}, false
}

// ArgumentDescriptor describes a declared field argument.
type ArgumentDescriptor struct {
	Name string
	Type TypeRef
}
