// Package merger implements the schema-aware merge of mutation documents.
package merger

import (
	"fmt"

	"go.trai.ch/fuse/internal/core/domain"
	"go.trai.ch/zerr"
)

const typenameField = "__typename"

// builtinDirectiveArgs types the arguments of the directives every schema defines.
var builtinDirectiveArgs = map[string]map[string]domain.TypeRef{
	"include": {"if": {Name: "Boolean", NonNull: true}},
	"skip":    {"if": {Name: "Boolean", NonNull: true}},
}

// Option configures a Merger.
type Option func(*Merger)

// WithDeclaredVariableTypes makes synthesized variable definitions keep the list and
// non-null wrappers of the argument's declared type instead of the bare named type.
func WithDeclaredVariableTypes() Option {
	return func(m *Merger) {
		m.declaredTypes = true
	}
}

// Merger folds mutation document trees into one another, guided by a schema.
// A Merger holds no per-merge state and may be reused.
type Merger struct {
	schema        *domain.Schema
	declaredTypes bool
}

// New creates a Merger validating against schema.
func New(schema *domain.Schema, opts ...Option) *Merger {
	m := &Merger{schema: schema}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MergeDocuments merges docs into docs[0] and returns it.
//
// docs[0] is the base: it is mutated, its variable definitions seed the bag and its
// own variable-valued arguments are reconciled first. The remaining documents are
// folded in order and are not modified. On an argument name clash the value that
// was folded in first wins.
func (m *Merger) MergeDocuments(docs []*domain.Document) (*domain.Document, error) {
	if len(docs) == 0 {
		return nil, domain.ErrNothingToMerge
	}

	base := docs[0]
	if base.Root == nil {
		return nil, domain.ErrMalformedDocument
	}

	def, err := m.rootField(base.Root.Name)
	if err != nil {
		return nil, err
	}

	bag := domain.NewVariableBag(base.Variables...)
	if err := m.reconcileField(base.Root, bag, def); err != nil {
		return nil, err
	}

	for _, doc := range docs[1:] {
		if err := m.MergeInto(base, doc, bag); err != nil {
			return nil, err
		}
	}

	base.Variables = bag.Definitions()
	return base, nil
}

// MergeInto folds source into target.
//
// target's selection tree and bag are mutated; source is only read. Subtrees that
// target lacks are cloned from source, so later merges never alias source nodes.
// It fails with domain.ErrMergeConflict when the documents invoke different root fields.
func (m *Merger) MergeInto(target *domain.Document, source *domain.Document, bag *domain.VariableBag) error {
	if target.Root == nil || source.Root == nil {
		return domain.ErrMalformedDocument
	}

	if source.Root.Name != target.Root.Name {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrMergeConflict, fmt.Sprintf(
			"%s and %s invoke different root fields; make sure each mutation operation calls a single "+
				"mutation and that custom mutations do not call a separate mutation",
			source.Root.Name, target.Root.Name,
		)), "source_field", source.Root.Name), "target_field", target.Root.Name)
	}

	def, err := m.rootField(target.Root.Name)
	if err != nil {
		return err
	}

	return m.mergeField(target.Root, source.Root, bag, def)
}

// mergeField unions source into target. def describes the field both nodes invoke.
func (m *Merger) mergeField(
	target *domain.Field,
	source *domain.Field,
	bag *domain.VariableBag,
	def *domain.FieldDescriptor,
) error {
	if len(target.Selections) == 0 {
		// Nothing to union against: adopt the source selections wholesale.
		for _, sel := range source.Selections {
			if err := m.adopt(target, sel, bag, def); err != nil {
				return err
			}
		}
	} else if len(source.Selections) > 0 {
		parent, err := m.returnType(def)
		if err != nil {
			return err
		}

		for _, sel := range source.Selections {
			// A matched field keeps the target's directives; the source's are dropped
			// along with any variables only they reference.
			match, ok := target.Selection(sel.Name)
			if !ok {
				if err := m.adopt(target, sel, bag, def); err != nil {
					return err
				}
				continue
			}

			childDef, err := m.field(parent, sel.Name)
			if err != nil {
				return err
			}
			if err := m.mergeField(match, sel, bag, childDef); err != nil {
				return err
			}
		}
	}

	for _, arg := range source.Arguments {
		// TODO: alias clashing fields per component so each keeps its own argument values
		// and directives.
		if _, exists := target.Argument(arg.Name); exists {
			continue
		}
		if err := m.reconcileArgument(arg, bag, def); err != nil {
			return err
		}
		target.Arguments = append(target.Arguments, domain.Argument{Name: arg.Name, Value: arg.Value.Clone()})
	}

	return nil
}

// adopt appends a copy of sel to target after reconciling the variables it references.
func (m *Merger) adopt(target, sel *domain.Field, bag *domain.VariableBag, def *domain.FieldDescriptor) error {
	parent, err := m.returnType(def)
	if err != nil {
		return err
	}
	childDef, err := m.field(parent, sel.Name)
	if err != nil {
		return err
	}
	if err := m.reconcileField(sel, bag, childDef); err != nil {
		return err
	}
	target.Selections = append(target.Selections, sel.Clone())
	return nil
}

// reconcileField gives every variable referenced in field's subtree a bag entry.
func (m *Merger) reconcileField(field *domain.Field, bag *domain.VariableBag, def *domain.FieldDescriptor) error {
	for _, arg := range field.Arguments {
		if err := m.reconcileArgument(arg, bag, def); err != nil {
			return err
		}
	}
	if err := m.reconcileDirectives(field, bag); err != nil {
		return err
	}

	if len(field.Selections) == 0 {
		return nil
	}

	parent, err := m.returnType(def)
	if err != nil {
		return err
	}
	for _, sel := range field.Selections {
		childDef, err := m.field(parent, sel.Name)
		if err != nil {
			return err
		}
		if err := m.reconcileField(sel, bag, childDef); err != nil {
			return err
		}
	}
	return nil
}

func (m *Merger) reconcileDirectives(field *domain.Field, bag *domain.VariableBag) error {
	for _, dir := range field.Directives {
		for _, arg := range dir.Arguments {
			if len(arg.Value.Variables()) == 0 {
				continue
			}
			argType, ok := builtinDirectiveArgs[dir.Name][arg.Name]
			if !ok {
				return zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidArgument,
					"cannot type variables of directive @"+dir.Name),
					"directive", dir.Name), "argument", arg.Name)
			}
			if err := m.reconcileValue(arg.Value, argType, bag); err != nil {
				return err
			}
		}
	}
	return nil
}

// reconcileArgument adds a definition for every variable arg references that the bag lacks.
func (m *Merger) reconcileArgument(arg domain.Argument, bag *domain.VariableBag, def *domain.FieldDescriptor) error {
	if len(arg.Value.Variables()) == 0 {
		return nil
	}

	argDef, ok := def.Arg(arg.Name)
	if !ok {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidArgument, arg.Name),
			"field", def.Name), "argument", arg.Name)
	}
	return m.reconcileValue(arg.Value, argDef.Type, bag)
}

// reconcileValue walks v, whose expected type is t, and declares the variables it finds.
func (m *Merger) reconcileValue(v *domain.Value, t domain.TypeRef, bag *domain.VariableBag) error {
	switch v.Kind {
	case domain.ValueVariable:
		if !bag.Has(v.Raw) {
			bag.Add(domain.VariableDefinition{Name: v.Raw, Type: m.variableType(t)})
		}
	case domain.ValueList:
		elem := t
		if t.Elem != nil {
			elem = *t.Elem
		}
		for _, child := range v.Children {
			if err := m.reconcileValue(child.Value, elem, bag); err != nil {
				return err
			}
		}
	case domain.ValueObject:
		input, ok := m.schema.Type(t.NamedType())
		if !ok {
			return zerr.With(zerr.Wrap(domain.ErrSchemaMismatch, "unknown input type "+t.NamedType()),
				"type", t.NamedType())
		}
		for _, child := range v.Children {
			if len(child.Value.Variables()) == 0 {
				continue
			}
			fieldDef, ok := input.Field(child.Name)
			if !ok {
				return zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidArgument, child.Name),
					"type", input.Name), "argument", child.Name)
			}
			if err := m.reconcileValue(child.Value, fieldDef.Type, bag); err != nil {
				return err
			}
		}
	default:
	}
	return nil
}

func (m *Merger) variableType(t domain.TypeRef) domain.TypeRef {
	if m.declaredTypes {
		return t
	}
	return domain.Named(t.NamedType())
}

// rootField returns the mutation root type's field descriptor for name.
func (m *Merger) rootField(name string) (*domain.FieldDescriptor, error) {
	root, ok := m.schema.MutationRoot()
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrSchemaMismatch, "schema has no mutation type"),
			"type", m.schema.MutationType)
	}
	return m.field(root, name)
}

// returnType resolves the named type def returns, stripping list and non-null wrappers.
func (m *Merger) returnType(def *domain.FieldDescriptor) (*domain.TypeDescriptor, error) {
	name := def.Type.NamedType()
	t, ok := m.schema.Type(name)
	if !ok {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrSchemaMismatch, "unknown type "+name),
			"field", def.Name), "type", name)
	}
	return t, nil
}

// field looks up name on parent.
func (m *Merger) field(parent *domain.TypeDescriptor, name string) (*domain.FieldDescriptor, error) {
	if name == typenameField {
		return &domain.FieldDescriptor{Name: typenameField, Type: domain.TypeRef{Name: "String", NonNull: true}}, nil
	}
	def, ok := parent.Field(name)
	if !ok {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrSchemaMismatch,
			fmt.Sprintf("type %s has no field %s", parent.Name, name)),
			"type", parent.Name), "field", name)
	}
	return def, nil
}
