package domain_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fuse/internal/core/domain"
)

func TestTypeRef(t *testing.T) {
	tests := []struct {
		name  string
		ref   domain.TypeRef
		str   string
		named string
	}{
		{name: "named", ref: domain.Named("ID"), str: "ID", named: "ID"},
		{name: "non-null", ref: domain.TypeRef{Name: "ID", NonNull: true}, str: "ID!", named: "ID"},
		{
			name:  "list of non-null",
			ref:   domain.TypeRef{Elem: &domain.TypeRef{Name: "String", NonNull: true}, NonNull: true},
			str:   "[String!]!",
			named: "String",
		},
		{
			name:  "nested list",
			ref:   domain.TypeRef{Elem: &domain.TypeRef{Elem: &domain.TypeRef{Name: "Int"}}},
			str:   "[[Int]]",
			named: "Int",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.str, tt.ref.String())
			assert.Equal(t, tt.named, tt.ref.NamedType())
		})
	}
}

func sampleField() *domain.Field {
	return &domain.Field{
		Name: "updateUser",
		Arguments: []domain.Argument{
			{Name: "id", Value: domain.Variable("id")},
			{Name: "input", Value: &domain.Value{Kind: domain.ValueObject, Children: []domain.ChildValue{
				{Name: "tags", Value: &domain.Value{Kind: domain.ValueList, Children: []domain.ChildValue{
					{Value: domain.Variable("tag")},
					{Value: &domain.Value{Kind: domain.ValueString, Raw: "fixed"}},
				}}},
			}}},
		},
		Directives: []domain.Directive{
			{Name: "include", Arguments: []domain.Argument{{Name: "if", Value: domain.Variable("flag")}}},
		},
		Selections: []*domain.Field{
			{Name: "name"},
			{Name: "avatar", Alias: "picture", Selections: []*domain.Field{{Name: "url"}}},
		},
	}
}

func TestField_Lookups(t *testing.T) {
	f := sampleField()

	sel, ok := f.Selection("avatar")
	require.True(t, ok)
	assert.Equal(t, "picture", sel.Alias)
	_, ok = f.Selection("email")
	assert.False(t, ok)

	arg, ok := f.Argument("id")
	require.True(t, ok)
	assert.True(t, arg.Value.IsVariable())
	_, ok = f.Argument("name")
	assert.False(t, ok)
}

func TestField_Clone(t *testing.T) {
	original := sampleField()
	clone := original.Clone()

	if diff := cmp.Diff(original, clone); diff != "" {
		t.Fatalf("clone differs (-original +clone):\n%s", diff)
	}

	clone.Selections[1].Selections = append(clone.Selections[1].Selections, &domain.Field{Name: "width"})
	clone.Arguments[1].Value.Children[0].Value.Children[0].Value.Raw = "other"
	clone.Directives[0].Name = "skip"

	assert.Len(t, original.Selections[1].Selections, 1)
	assert.Equal(t, "tag", original.Arguments[1].Value.Children[0].Value.Children[0].Value.Raw)
	assert.Equal(t, "include", original.Directives[0].Name)

	var missing *domain.Field
	assert.Nil(t, missing.Clone())
}

func TestValue_Variables(t *testing.T) {
	f := sampleField()

	assert.Equal(t, []string{"id"}, f.Arguments[0].Value.Variables())
	assert.Equal(t, []string{"tag"}, f.Arguments[1].Value.Variables())
	assert.Nil(t, (&domain.Value{Kind: domain.ValueInt, Raw: "1"}).Variables())

	var missing *domain.Value
	assert.Nil(t, missing.Variables())
	assert.False(t, missing.IsVariable())
}

func TestField_Walk(t *testing.T) {
	var names []string
	err := sampleField().Walk(func(f *domain.Field) error {
		names = append(names, f.Name)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"updateUser", "name", "avatar", "url"}, names)

	stop := errors.New("stop")
	var visited int
	err = sampleField().Walk(func(f *domain.Field) error {
		visited++
		if f.Name == "name" {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 2, visited)
}

func TestSchema(t *testing.T) {
	user := &domain.TypeDescriptor{Name: "User", Fields: []*domain.FieldDescriptor{{Name: "name", Type: domain.Named("String")}}}
	mutation := &domain.TypeDescriptor{Name: "Mutation", Fields: []*domain.FieldDescriptor{{
		Name: "updateUser",
		Type: domain.Named("User"),
		Args: []domain.ArgumentDescriptor{{Name: "id", Type: domain.TypeRef{Name: "ID", NonNull: true}}},
	}}}

	s := domain.NewSchema("Mutation", user, mutation)

	root, ok := s.MutationRoot()
	require.True(t, ok)
	field, ok := root.Field("updateUser")
	require.True(t, ok)
	arg, ok := field.Arg("id")
	require.True(t, ok)
	assert.Equal(t, "ID!", arg.Type.String())
	_, ok = field.Arg("name")
	assert.False(t, ok)

	s.AddType(&domain.TypeDescriptor{Name: "User"})
	assert.Len(t, s.Types(), 2)
	replaced, _ := s.Type("User")
	assert.Empty(t, replaced.Fields)

	_, ok = domain.NewSchema("").MutationRoot()
	assert.False(t, ok)
}
