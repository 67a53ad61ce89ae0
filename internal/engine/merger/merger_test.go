package merger_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fuse/internal/core/domain"
	"go.trai.ch/fuse/internal/engine/merger"
)

// testSchema mirrors:
//
//	type Mutation { updateUser(id: ID!, name: String, input: UserInput): User  deleteUser(id: ID!): User }
//	type User { id: ID!  name: String  avatar(size: Int!): Image  friends(first: Int): [User!]! }
//	type Image { url: String  width: Int }
//	input UserInput { name: String  tags: [String!] }
func testSchema() *domain.Schema {
	id := domain.TypeRef{Name: "ID", NonNull: true}
	return domain.NewSchema("Mutation",
		&domain.TypeDescriptor{Name: "Mutation", Fields: []*domain.FieldDescriptor{
			{Name: "updateUser", Type: domain.Named("User"), Args: []domain.ArgumentDescriptor{
				{Name: "id", Type: id},
				{Name: "name", Type: domain.Named("String")},
				{Name: "input", Type: domain.Named("UserInput")},
			}},
			{Name: "deleteUser", Type: domain.Named("User"), Args: []domain.ArgumentDescriptor{
				{Name: "id", Type: id},
			}},
		}},
		&domain.TypeDescriptor{Name: "User", Fields: []*domain.FieldDescriptor{
			{Name: "id", Type: id},
			{Name: "name", Type: domain.Named("String")},
			{Name: "avatar", Type: domain.Named("Image"), Args: []domain.ArgumentDescriptor{
				{Name: "size", Type: domain.TypeRef{Name: "Int", NonNull: true}},
			}},
			{Name: "friends", Type: domain.TypeRef{
				Elem:    &domain.TypeRef{Name: "User", NonNull: true},
				NonNull: true,
			}, Args: []domain.ArgumentDescriptor{
				{Name: "first", Type: domain.Named("Int")},
			}},
		}},
		&domain.TypeDescriptor{Name: "Image", Fields: []*domain.FieldDescriptor{
			{Name: "url", Type: domain.Named("String")},
			{Name: "width", Type: domain.Named("Int")},
		}},
		&domain.TypeDescriptor{Name: "UserInput", Fields: []*domain.FieldDescriptor{
			{Name: "name", Type: domain.Named("String")},
			{Name: "tags", Type: domain.TypeRef{Elem: &domain.TypeRef{Name: "String", NonNull: true}}},
		}},
	)
}

func field(name string, args []domain.Argument, sels ...*domain.Field) *domain.Field {
	return &domain.Field{Name: name, Arguments: args, Selections: sels}
}

func arg(name string, v *domain.Value) domain.Argument {
	return domain.Argument{Name: name, Value: v}
}

func str(s string) *domain.Value {
	return &domain.Value{Kind: domain.ValueString, Raw: s}
}

func doc(root *domain.Field, vars ...domain.VariableDefinition) *domain.Document {
	return &domain.Document{Variables: vars, Root: root}
}

func selectionNames(f *domain.Field) []string {
	names := make([]string, 0, len(f.Selections))
	for _, sel := range f.Selections {
		names = append(names, sel.Name)
	}
	return names
}

func variableNames(d *domain.Document) []string {
	names := make([]string, 0, len(d.Variables))
	for _, v := range d.Variables {
		names = append(names, v.Name)
	}
	return names
}

func TestMergeDocuments_DisjointSelectionsAreUnioned(t *testing.T) {
	t.Parallel()

	first := doc(field("updateUser", []domain.Argument{arg("id", str("1"))}, field("id", nil)))
	second := doc(field("updateUser", []domain.Argument{arg("id", str("1"))}, field("name", nil)))

	merged, err := merger.New(testSchema()).MergeDocuments([]*domain.Document{first, second})
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name"}, selectionNames(merged.Root))
	assert.Same(t, first, merged)
}

func TestMergeDocuments_NestedSelectionsAreUnioned(t *testing.T) {
	t.Parallel()

	size := []domain.Argument{arg("size", &domain.Value{Kind: domain.ValueInt, Raw: "64"})}
	first := doc(field("updateUser", nil, field("avatar", size, field("url", nil))))
	second := doc(field("updateUser", nil, field("avatar", size, field("width", nil)), field("id", nil)))

	merged, err := merger.New(testSchema()).MergeDocuments([]*domain.Document{first, second})
	require.NoError(t, err)

	require.Equal(t, []string{"avatar", "id"}, selectionNames(merged.Root))
	avatar, ok := merged.Root.Selection("avatar")
	require.True(t, ok)
	assert.Equal(t, []string{"url", "width"}, selectionNames(avatar))
}

func TestMergeDocuments_LeafTargetAdoptsSourceSelections(t *testing.T) {
	t.Parallel()

	first := doc(field("deleteUser", []domain.Argument{arg("id", str("1"))}))
	second := doc(field("deleteUser", nil, field("id", nil), field("__typename", nil)))

	merged, err := merger.New(testSchema()).MergeDocuments([]*domain.Document{first, second})
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "__typename"}, selectionNames(merged.Root))
}

func TestMergeDocuments_FirstArgumentValueWins(t *testing.T) {
	t.Parallel()

	first := doc(field("updateUser", []domain.Argument{arg("id", str("a"))}, field("id", nil)))
	second := doc(field("updateUser", []domain.Argument{
		arg("id", str("b")),
		arg("name", str("Ada")),
	}, field("id", nil)))

	merged, err := merger.New(testSchema()).MergeDocuments([]*domain.Document{first, second})
	require.NoError(t, err)

	id, ok := merged.Root.Argument("id")
	require.True(t, ok)
	assert.Equal(t, "a", id.Value.Raw)

	name, ok := merged.Root.Argument("name")
	require.True(t, ok)
	assert.Equal(t, "Ada", name.Value.Raw)
}

func TestMergeDocuments_VariableDeclaredOnlyWhenItsArgumentIsKept(t *testing.T) {
	t.Parallel()

	withVariable := func() *domain.Document {
		return doc(field("updateUser", []domain.Argument{arg("id", domain.Variable("a"))}, field("id", nil)))
	}
	withLiteral := func() *domain.Document {
		return doc(field("updateUser", []domain.Argument{arg("id", str("lit"))}, field("name", nil)))
	}

	t.Run("variable first", func(t *testing.T) {
		t.Parallel()

		merged, err := merger.New(testSchema()).MergeDocuments([]*domain.Document{withVariable(), withLiteral()})
		require.NoError(t, err)

		id, _ := merged.Root.Argument("id")
		assert.True(t, id.Value.IsVariable())
		require.Len(t, merged.Variables, 1)
		assert.Equal(t, "a", merged.Variables[0].Name)
		assert.Equal(t, "ID", merged.Variables[0].Type.String())
	})

	t.Run("literal first", func(t *testing.T) {
		t.Parallel()

		merged, err := merger.New(testSchema()).MergeDocuments([]*domain.Document{withLiteral(), withVariable()})
		require.NoError(t, err)

		id, _ := merged.Root.Argument("id")
		assert.Equal(t, "lit", id.Value.Raw)
		assert.Empty(t, merged.Variables)
	})
}

func TestMergeDocuments_VariablesAreUniqueByName(t *testing.T) {
	t.Parallel()

	first := doc(
		field("updateUser", []domain.Argument{arg("id", domain.Variable("id"))},
			field("avatar", []domain.Argument{arg("size", domain.Variable("size"))}, field("url", nil))),
		domain.VariableDefinition{Name: "id", Type: domain.TypeRef{Name: "ID", NonNull: true}},
	)
	second := doc(
		field("updateUser", []domain.Argument{
			arg("id", domain.Variable("other")),
			arg("name", domain.Variable("id")),
		}, field("avatar", []domain.Argument{arg("size", domain.Variable("small"))}, field("width", nil))),
	)

	merged, err := merger.New(testSchema()).MergeDocuments([]*domain.Document{first, second})
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "size"}, variableNames(merged))
	assert.Equal(t, "ID!", merged.Variables[0].Type.String())
	assert.Equal(t, "Int", merged.Variables[1].Type.String())
}

func TestMergeDocuments_AdoptedSubtreeVariablesAreDeclared(t *testing.T) {
	t.Parallel()

	first := doc(field("updateUser", nil, field("id", nil)))
	second := doc(field("updateUser", nil,
		field("friends", []domain.Argument{arg("first", domain.Variable("count"))},
			field("avatar", []domain.Argument{arg("size", domain.Variable("size"))}, field("url", nil)))))

	merged, err := merger.New(testSchema()).MergeDocuments([]*domain.Document{first, second})
	require.NoError(t, err)

	assert.Equal(t, []string{"count", "size"}, variableNames(merged))
}

func TestMergeDocuments_NestedInputVariables(t *testing.T) {
	t.Parallel()

	build := func() []*domain.Document {
		input := &domain.Value{Kind: domain.ValueObject, Children: []domain.ChildValue{
			{Name: "name", Value: str("Ada")},
			{Name: "tags", Value: &domain.Value{Kind: domain.ValueList, Children: []domain.ChildValue{
				{Value: domain.Variable("tag")},
			}}},
		}}
		return []*domain.Document{
			doc(field("updateUser", nil, field("id", nil))),
			doc(field("updateUser", []domain.Argument{arg("input", input)}, field("id", nil))),
		}
	}

	merged, err := merger.New(testSchema()).MergeDocuments(build())
	require.NoError(t, err)
	require.Len(t, merged.Variables, 1)
	assert.Equal(t, "String", merged.Variables[0].Type.String())

	merged, err = merger.New(testSchema(), merger.WithDeclaredVariableTypes()).MergeDocuments(build())
	require.NoError(t, err)
	require.Len(t, merged.Variables, 1)
	assert.Equal(t, "String!", merged.Variables[0].Type.String())
}

func TestMergeDocuments_DirectiveVariables(t *testing.T) {
	t.Parallel()

	name := field("name", nil)
	name.Directives = []domain.Directive{{
		Name:      "include",
		Arguments: []domain.Argument{arg("if", domain.Variable("withName"))},
	}}
	first := doc(field("updateUser", nil, field("id", nil)))
	second := doc(field("updateUser", nil, name))

	merged, err := merger.New(testSchema()).MergeDocuments([]*domain.Document{first, second})
	require.NoError(t, err)

	require.Len(t, merged.Variables, 1)
	assert.Equal(t, "withName", merged.Variables[0].Name)
	assert.Equal(t, "Boolean", merged.Variables[0].Type.String())
}

func TestMergeDocuments_MatchedFieldKeepsTargetDirectives(t *testing.T) {
	t.Parallel()

	name := field("name", nil)
	name.Directives = []domain.Directive{{
		Name:      "include",
		Arguments: []domain.Argument{arg("if", domain.Variable("show"))},
	}}
	first := doc(field("updateUser", nil, field("name", nil)))
	second := doc(field("updateUser", nil, name))

	merged, err := merger.New(testSchema()).MergeDocuments([]*domain.Document{first, second})
	require.NoError(t, err)

	require.Len(t, merged.Root.Selections, 1)
	assert.Empty(t, merged.Root.Selections[0].Directives)
	assert.Empty(t, merged.Variables)
}

func TestMergeDocuments_SourceIsNotModified(t *testing.T) {
	t.Parallel()

	first := doc(field("updateUser", nil, field("id", nil)))
	second := doc(field("updateUser", []domain.Argument{arg("name", domain.Variable("name"))},
		field("avatar", []domain.Argument{arg("size", domain.Variable("size"))}, field("url", nil))))
	snapshot := *second
	snapshot.Root = second.Root.Clone()

	merged, err := merger.New(testSchema()).MergeDocuments([]*domain.Document{first, second})
	require.NoError(t, err)

	if diff := cmp.Diff(&snapshot, second); diff != "" {
		t.Errorf("source document changed (-want +got):\n%s", diff)
	}

	// Later changes to the merged tree must not leak into the source.
	avatar, _ := merged.Root.Selection("avatar")
	avatar.Selections = append(avatar.Selections, field("width", nil))
	assert.Len(t, second.Root.Selections[0].Selections, 1)
}

func TestMergeDocuments_SingleDocumentIsReconciled(t *testing.T) {
	t.Parallel()

	only := doc(field("deleteUser", []domain.Argument{arg("id", domain.Variable("id"))}, field("id", nil)))

	merged, err := merger.New(testSchema()).MergeDocuments([]*domain.Document{only})
	require.NoError(t, err)

	assert.Equal(t, []string{"id"}, variableNames(merged))
}

func TestMergeDocuments_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		docs func() []*domain.Document
		want error
	}{
		{
			name: "no documents",
			docs: func() []*domain.Document { return nil },
			want: domain.ErrNothingToMerge,
		},
		{
			name: "different root fields",
			docs: func() []*domain.Document {
				return []*domain.Document{
					doc(field("updateUser", nil, field("id", nil))),
					doc(field("deleteUser", nil, field("id", nil))),
				}
			},
			want: domain.ErrMergeConflict,
		},
		{
			name: "unknown root field",
			docs: func() []*domain.Document {
				return []*domain.Document{doc(field("createPost", nil))}
			},
			want: domain.ErrSchemaMismatch,
		},
		{
			name: "unknown nested field",
			docs: func() []*domain.Document {
				return []*domain.Document{
					doc(field("updateUser", nil, field("id", nil))),
					doc(field("updateUser", nil, field("email", nil))),
				}
			},
			want: domain.ErrSchemaMismatch,
		},
		{
			name: "undeclared argument with variable",
			docs: func() []*domain.Document {
				return []*domain.Document{
					doc(field("updateUser", nil, field("id", nil))),
					doc(field("updateUser", []domain.Argument{arg("email", domain.Variable("email"))})),
				}
			},
			want: domain.ErrInvalidArgument,
		},
		{
			name: "undeclared directive with variable",
			docs: func() []*domain.Document {
				id := field("id", nil)
				id.Directives = []domain.Directive{{
					Name:      "cached",
					Arguments: []domain.Argument{arg("ttl", domain.Variable("ttl"))},
				}}
				return []*domain.Document{doc(field("updateUser", nil, id))}
			},
			want: domain.ErrInvalidArgument,
		},
		{
			name: "missing root",
			docs: func() []*domain.Document {
				return []*domain.Document{{}}
			},
			want: domain.ErrMalformedDocument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := merger.New(testSchema()).MergeDocuments(tt.docs())
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMergeInto_ConflictNamesBothFields(t *testing.T) {
	t.Parallel()

	target := doc(field("updateUser", nil, field("id", nil)))
	source := doc(field("deleteUser", nil, field("id", nil)))

	err := merger.New(testSchema()).MergeInto(target, source, domain.NewVariableBag())
	require.ErrorIs(t, err, domain.ErrMergeConflict)
	assert.Contains(t, err.Error(), "deleteUser and updateUser")
}

func TestMergeInto_SchemaWithoutMutationType(t *testing.T) {
	t.Parallel()

	target := doc(field("updateUser", nil))
	source := doc(field("updateUser", nil))

	err := merger.New(domain.NewSchema("")).MergeInto(target, source, domain.NewVariableBag())
	require.ErrorIs(t, err, domain.ErrSchemaMismatch)
}
