package domain

// Document is a parsed mutation operation with exactly one root field.
type Document struct {
	// Name is the operation name, empty for anonymous operations.
	Name string
	// Variables are the operation's variable definitions in declaration order.
	Variables []VariableDefinition
	// Directives are the directives applied to the operation itself.
	Directives []Directive
	// Root is the mutation field invoked by the operation.
	Root *Field
}

// Field is a node of a document's selection tree.
//
// Merging folds a source tree into a target tree by appending to
// Selections and Arguments in place.
type Field struct {
	Alias      string
	Name       string
	Arguments  []Argument
	Directives []Directive
	Selections []*Field
}

// Selection returns the direct sub-selection with the given field name.
func (f *Field) Selection(name string) (*Field, bool) {
	for _, sel := range f.Selections {
		if sel.Name == name {
			return sel, true
		}
	}
	return nil, false
}

// Argument returns the argument with the given name.
func (f *Field) Argument(name string) (Argument, bool) {
	for _, arg := range f.Arguments {
		if arg.Name == name {
			return arg, true
		}
	}
	return Argument{}, false
}

// Walk calls fn for f and every field below it, depth first.
// It stops early and returns the first error fn returns.
func (f *Field) Walk(fn func(*Field) error) error {
	if err := fn(f); err != nil {
		return err
	}
	for _, sel := range f.Selections {
		if err := sel.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// Argument is a named argument applied to a field or directive.
type Argument struct {
	Name  string
	Value *Value
}

// Directive is a directive applied to an operation or field, e.g. @include(if: $flag).
type Directive struct {
	Name      string
	Arguments []Argument
}

// ValueKind identifies the syntactic kind of a Value.
type ValueKind int

const (
	// ValueVariable is a variable reference; Raw holds the name without "$".
	ValueVariable ValueKind = iota
	// ValueInt is an integer literal.
	ValueInt
	// ValueFloat is a float literal.
	ValueFloat
	// ValueString is a quoted string literal; Raw holds the unquoted text.
	ValueString
	// ValueBlockString is a block string literal; Raw holds the unquoted text.
	ValueBlockString
	// ValueBoolean is true or false.
	ValueBoolean
	// ValueNull is the null literal.
	ValueNull
	// ValueEnum is an enum literal.
	ValueEnum
	// ValueList is a list literal; Children hold the unnamed elements.
	ValueList
	// ValueObject is an input object literal; Children hold the named fields.
	ValueObject
)

// Value is an argument or default value.
type Value struct {
	Kind     ValueKind
	Raw      string
	Children []ChildValue
}

// ChildValue is a list element (Name is empty) or an input object field.
type ChildValue struct {
	Name  string
	Value *Value
}

// Variable returns a reference to the named variable.
func Variable(name string) *Value {
	return &Value{Kind: ValueVariable, Raw: name}
}

// IsVariable reports whether v is a variable reference.
func (v *Value) IsVariable() bool {
	return v != nil && v.Kind == ValueVariable
}

// VariableDefinition declares a named, typed operation variable.
type VariableDefinition struct {
	Name    string
	Type    TypeRef
	Default *Value
}

// TypeRef is a possibly wrapped reference to a named type.
// Exactly one of Name and Elem is set.
type TypeRef struct {
	Name    string
	Elem    *TypeRef
	NonNull bool
}

// Named returns a nullable reference to the named type.
func Named(name string) TypeRef {
	return TypeRef{Name: name}
}

// NamedType strips list and non-null wrappers and returns the innermost type name.
func (t TypeRef) NamedType() string {
	if t.Name != "" || t.Elem == nil {
		return t.Name
	}
	return t.Elem.NamedType()
}

// String renders the reference in GraphQL type syntax, e.g. "[ID!]!".
func (t TypeRef) String() string {
	suffix := ""
	if t.NonNull {
		suffix = "!"
	}
	if t.Elem != nil {
		return "[" + t.Elem.String() + "]" + suffix
	}
	return t.Name + suffix
}

// Clone returns a deep copy of f.
func (f *Field) Clone() *Field {
	if f == nil {
		return nil
	}
	c := &Field{
		Alias:      f.Alias,
		Name:       f.Name,
		Arguments:  cloneArguments(f.Arguments),
		Directives: cloneDirectives(f.Directives),
	}
	if f.Selections != nil {
		c.Selections = make([]*Field, len(f.Selections))
		for i, sel := range f.Selections {
			c.Selections[i] = sel.Clone()
		}
	}
	return c
}

// Clone returns a deep copy of v.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	c := &Value{Kind: v.Kind, Raw: v.Raw}
	if v.Children != nil {
		c.Children = make([]ChildValue, len(v.Children))
		for i, child := range v.Children {
			c.Children[i] = ChildValue{Name: child.Name, Value: child.Value.Clone()}
		}
	}
	return c
}

// Variables returns the names of all variables referenced by v, including nested ones.
func (v *Value) Variables() []string {
	if v == nil {
		return nil
	}
	if v.Kind == ValueVariable {
		return []string{v.Raw}
	}
	var names []string
	for _, child := range v.Children {
		names = append(names, child.Value.Variables()...)
	}
	return names
}

func cloneArguments(args []Argument) []Argument {
	if args == nil {
		return nil
	}
	res := make([]Argument, len(args))
	for i, arg := range args {
		res[i] = Argument{Name: arg.Name, Value: arg.Value.Clone()}
	}
	return res
}

func cloneDirectives(dirs []Directive) []Directive {
	if dirs == nil {
		return nil
	}
	res := make([]Directive, len(dirs))
	for i, dir := range dirs {
		res[i] = Directive{Name: dir.Name, Arguments: cloneArguments(dir.Arguments)}
	}
	return res
}
