package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/fuse/internal/core/domain"
)

func TestVariableBag(t *testing.T) {
	bag := domain.NewVariableBag(
		domain.VariableDefinition{Name: "id", Type: domain.TypeRef{Name: "ID", NonNull: true}},
		domain.VariableDefinition{Name: "id", Type: domain.Named("String")},
	)

	assert.Equal(t, 1, bag.Len())
	def, ok := bag.Get("id")
	assert.True(t, ok)
	assert.Equal(t, "ID!", def.Type.String(), "first definition of a name wins")

	assert.True(t, bag.Add(domain.VariableDefinition{Name: "name", Type: domain.Named("String")}))
	assert.False(t, bag.Add(domain.VariableDefinition{Name: "name", Type: domain.Named("Int")}))
	assert.True(t, bag.Has("name"))
	assert.False(t, bag.Has("size"))

	defs := bag.Definitions()
	assert.Equal(t, []string{"id", "name"}, []string{defs[0].Name, defs[1].Name})

	defs[0].Name = "changed"
	assert.True(t, bag.Has("id"), "Definitions returns a copy")
}

func TestVariableBag_Empty(t *testing.T) {
	bag := domain.NewVariableBag()

	assert.Zero(t, bag.Len())
	assert.Nil(t, bag.Definitions())
	_, ok := bag.Get("id")
	assert.False(t, ok)
}
