package gql

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"go.trai.ch/fuse/internal/core/domain"
	"go.trai.ch/zerr"
)

const defaultIndent = "  "

// Printer implements ports.DocumentPrinter using the gqlparser formatter.
type Printer struct {
	indent string
}

// NewPrinter creates a Printer that indents nested selections with two spaces.
func NewPrinter() *Printer {
	return &Printer{indent: defaultIndent}
}

// Print renders doc as a mutation operation.
func (p *Printer) Print(doc *domain.Document) (string, error) {
	if doc == nil || doc.Root == nil {
		return "", zerr.Wrap(domain.ErrMalformedDocument, "nothing to print")
	}

	op := &ast.OperationDefinition{
		Operation:    ast.Mutation,
		Name:         doc.Name,
		Directives:   toASTDirectives(doc.Directives),
		SelectionSet: ast.SelectionSet{toASTField(doc.Root)},
	}
	for _, def := range doc.Variables {
		op.VariableDefinitions = append(op.VariableDefinitions, &ast.VariableDefinition{
			Variable:     def.Name,
			Type:         toASTType(def.Type),
			DefaultValue: toASTValue(def.Default),
		})
	}

	var sb strings.Builder
	formatter.NewFormatter(&sb, formatter.WithIndent(p.indent)).
		FormatQueryDocument(&ast.QueryDocument{Operations: ast.OperationList{op}})
	return sb.String(), nil
}

func toASTField(f *domain.Field) *ast.Field {
	field := &ast.Field{
		Alias:      f.Alias,
		Name:       f.Name,
		Arguments:  toASTArguments(f.Arguments),
		Directives: toASTDirectives(f.Directives),
	}
	if field.Alias == "" {
		field.Alias = f.Name
	}
	for _, sel := range f.Selections {
		field.SelectionSet = append(field.SelectionSet, toASTField(sel))
	}
	return field
}

func toASTArguments(args []domain.Argument) ast.ArgumentList {
	if len(args) == 0 {
		return nil
	}
	res := make(ast.ArgumentList, 0, len(args))
	for _, arg := range args {
		res = append(res, &ast.Argument{Name: arg.Name, Value: toASTValue(arg.Value)})
	}
	return res
}

func toASTDirectives(dirs []domain.Directive) ast.DirectiveList {
	if len(dirs) == 0 {
		return nil
	}
	res := make(ast.DirectiveList, 0, len(dirs))
	for _, dir := range dirs {
		res = append(res, &ast.Directive{Name: dir.Name, Arguments: toASTArguments(dir.Arguments)})
	}
	return res
}

func toASTType(t domain.TypeRef) *ast.Type {
	res := &ast.Type{NamedType: t.Name, NonNull: t.NonNull}
	if t.Elem != nil {
		res.Elem = toASTType(*t.Elem)
	}
	return res
}

var astValueKinds = map[domain.ValueKind]ast.ValueKind{
	domain.ValueVariable:    ast.Variable,
	domain.ValueInt:         ast.IntValue,
	domain.ValueFloat:       ast.FloatValue,
	domain.ValueString:      ast.StringValue,
	domain.ValueBlockString: ast.BlockValue,
	domain.ValueBoolean:     ast.BooleanValue,
	domain.ValueNull:        ast.NullValue,
	domain.ValueEnum:        ast.EnumValue,
	domain.ValueList:        ast.ListValue,
	domain.ValueObject:      ast.ObjectValue,
}

func toASTValue(v *domain.Value) *ast.Value {
	if v == nil {
		return nil
	}
	value := &ast.Value{Kind: astValueKinds[v.Kind], Raw: v.Raw}
	for _, child := range v.Children {
		value.Children = append(value.Children, &ast.ChildValue{Name: child.Name, Value: toASTValue(child.Value)})
	}
	return value
}
