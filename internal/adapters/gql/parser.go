// Package gql converts between GraphQL text and the domain document and schema types.
package gql

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"go.trai.ch/fuse/internal/core/domain"
	"go.trai.ch/zerr"
)

// Parser implements ports.DocumentParser using gqlparser.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses text as a single mutation operation with a single root field.
func (p *Parser) Parse(text string) (*domain.Document, error) {
	query, err := parser.ParseQuery(&ast.Source{Name: "mutation", Input: text})
	if err != nil {
		return nil, zerr.Wrap(domain.ErrDocumentParseFailed, err.Error())
	}

	if len(query.Fragments) > 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedSelection, "fragment definition"),
			"fragment", query.Fragments[0].Name)
	}
	if len(query.Operations) != 1 {
		return nil, zerr.With(zerr.Wrap(domain.ErrMalformedDocument, "expected one operation"),
			"operations", len(query.Operations))
	}

	op := query.Operations[0]
	if op.Operation != ast.Mutation {
		return nil, zerr.With(zerr.Wrap(domain.ErrMalformedDocument, "expected a mutation"),
			"operation", string(op.Operation))
	}
	if len(op.SelectionSet) != 1 {
		return nil, zerr.With(zerr.Wrap(domain.ErrMalformedDocument, "expected one root field"),
			"root_fields", len(op.SelectionSet))
	}

	root, err := convertSelection(op.SelectionSet[0])
	if err != nil {
		return nil, err
	}

	return &domain.Document{
		Name:       op.Name,
		Variables:  convertVariableDefinitions(op.VariableDefinitions),
		Directives: convertDirectives(op.Directives),
		Root:       root,
	}, nil
}

func convertSelection(sel ast.Selection) (*domain.Field, error) {
	switch s := sel.(type) {
	case *ast.Field:
		return convertField(s)
	case *ast.FragmentSpread:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedSelection, "fragment spread"),
			"fragment", s.Name)
	case *ast.InlineFragment:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedSelection, "inline fragment"),
			"type_condition", s.TypeCondition)
	default:
		return nil, zerr.Wrap(domain.ErrUnsupportedSelection, "unknown selection")
	}
}

func convertField(f *ast.Field) (*domain.Field, error) {
	field := &domain.Field{
		Name:       f.Name,
		Arguments:  convertArguments(f.Arguments),
		Directives: convertDirectives(f.Directives),
	}
	if f.Alias != f.Name {
		field.Alias = f.Alias
	}

	for _, sel := range f.SelectionSet {
		child, err := convertSelection(sel)
		if err != nil {
			return nil, zerr.With(err, "parent", f.Name)
		}
		field.Selections = append(field.Selections, child)
	}
	return field, nil
}

func convertArguments(args ast.ArgumentList) []domain.Argument {
	if len(args) == 0 {
		return nil
	}
	res := make([]domain.Argument, 0, len(args))
	for _, arg := range args {
		res = append(res, domain.Argument{Name: arg.Name, Value: convertValue(arg.Value)})
	}
	return res
}

func convertDirectives(dirs ast.DirectiveList) []domain.Directive {
	if len(dirs) == 0 {
		return nil
	}
	res := make([]domain.Directive, 0, len(dirs))
	for _, dir := range dirs {
		res = append(res, domain.Directive{Name: dir.Name, Arguments: convertArguments(dir.Arguments)})
	}
	return res
}

func convertVariableDefinitions(defs ast.VariableDefinitionList) []domain.VariableDefinition {
	if len(defs) == 0 {
		return nil
	}
	res := make([]domain.VariableDefinition, 0, len(defs))
	for _, def := range defs {
		res = append(res, domain.VariableDefinition{
			Name:    def.Variable,
			Type:    convertType(def.Type),
			Default: convertValue(def.DefaultValue),
		})
	}
	return res
}

func convertType(t *ast.Type) domain.TypeRef {
	if t == nil {
		return domain.TypeRef{}
	}
	ref := domain.TypeRef{Name: t.NamedType, NonNull: t.NonNull}
	if t.Elem != nil {
		elem := convertType(t.Elem)
		ref.Elem = &elem
	}
	return ref
}

var valueKinds = map[ast.ValueKind]domain.ValueKind{
	ast.Variable:     domain.ValueVariable,
	ast.IntValue:     domain.ValueInt,
	ast.FloatValue:   domain.ValueFloat,
	ast.StringValue:  domain.ValueString,
	ast.BlockValue:   domain.ValueBlockString,
	ast.BooleanValue: domain.ValueBoolean,
	ast.NullValue:    domain.ValueNull,
	ast.EnumValue:    domain.ValueEnum,
	ast.ListValue:    domain.ValueList,
	ast.ObjectValue:  domain.ValueObject,
}

func convertValue(v *ast.Value) *domain.Value {
	if v == nil {
		return nil
	}
	value := &domain.Value{Kind: valueKinds[v.Kind], Raw: v.Raw}
	for _, child := range v.Children {
		value.Children = append(value.Children, domain.ChildValue{Name: child.Name, Value: convertValue(child.Value)})
	}
	return value
}
