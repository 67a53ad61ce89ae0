package merger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fuse/internal/core/domain"
	"go.trai.ch/fuse/internal/core/ports/mocks"
	"go.trai.ch/fuse/internal/engine/merger"
	"go.uber.org/mock/gomock"
)

func TestDriver_MergeSet(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	parser := mocks.NewMockDocumentParser(ctrl)
	printer := mocks.NewMockDocumentPrinter(ctrl)

	gomock.InOrder(
		parser.EXPECT().Parse("first").Return(doc(field("updateUser", nil, field("id", nil))), nil),
		parser.EXPECT().Parse("second").Return(doc(field("updateUser", nil, field("name", nil))), nil),
	)
	printer.EXPECT().Print(gomock.Any()).DoAndReturn(func(d *domain.Document) (string, error) {
		assert.Equal(t, []string{"id", "name"}, selectionNames(d.Root))
		return "merged", nil
	})

	driver := merger.NewDriver(parser, printer)
	out, err := driver.MergeSet(domain.NewMutationStringSet("first", "second", "first"), testSchema())
	require.NoError(t, err)
	assert.Equal(t, "merged", out)
}

func TestDriver_MergeSet_AppliesOptions(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	parser := mocks.NewMockDocumentParser(ctrl)
	printer := mocks.NewMockDocumentPrinter(ctrl)

	parser.EXPECT().Parse("only").Return(
		doc(field("deleteUser", []domain.Argument{arg("id", domain.Variable("id"))})), nil)
	printer.EXPECT().Print(gomock.Any()).DoAndReturn(func(d *domain.Document) (string, error) {
		require.Len(t, d.Variables, 1)
		assert.Equal(t, "ID!", d.Variables[0].Type.String())
		return "ok", nil
	})

	driver := merger.NewDriver(parser, printer, merger.WithDeclaredVariableTypes())
	_, err := driver.MergeSet(domain.NewMutationStringSet("only"), testSchema())
	require.NoError(t, err)
}

func TestDriver_MergeSet_Errors(t *testing.T) {
	t.Parallel()

	t.Run("empty set", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		driver := merger.NewDriver(mocks.NewMockDocumentParser(ctrl), mocks.NewMockDocumentPrinter(ctrl))

		_, err := driver.MergeSet(domain.NewMutationStringSet(), testSchema())
		require.ErrorIs(t, err, domain.ErrNothingToMerge)
	})

	t.Run("parse failure", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		parser := mocks.NewMockDocumentParser(ctrl)
		parser.EXPECT().Parse("bad").Return(nil, domain.ErrDocumentParseFailed)
		driver := merger.NewDriver(parser, mocks.NewMockDocumentPrinter(ctrl))

		_, err := driver.MergeSet(domain.NewMutationStringSet("bad"), testSchema())
		require.ErrorIs(t, err, domain.ErrDocumentParseFailed)
	})

	t.Run("print failure", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		parser := mocks.NewMockDocumentParser(ctrl)
		printer := mocks.NewMockDocumentPrinter(ctrl)
		printErr := errors.New("printer exploded")
		parser.EXPECT().Parse("m").Return(doc(field("deleteUser", nil)), nil)
		printer.EXPECT().Print(gomock.Any()).Return("", printErr)
		driver := merger.NewDriver(parser, printer)

		_, err := driver.MergeSet(domain.NewMutationStringSet("m"), testSchema())
		require.ErrorIs(t, err, printErr)
	})
}
