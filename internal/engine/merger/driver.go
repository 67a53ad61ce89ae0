package merger

import (
	"strconv"

	"go.trai.ch/fuse/internal/core/domain"
	"go.trai.ch/fuse/internal/core/ports"
	"go.trai.ch/zerr"
)

// Driver merges sets of mutation document strings into a single printed document.
type Driver struct {
	parser  ports.DocumentParser
	printer ports.DocumentPrinter
	opts    []Option
}

// NewDriver creates a Driver. opts are applied to every Merger it builds.
func NewDriver(parser ports.DocumentParser, printer ports.DocumentPrinter, opts ...Option) *Driver {
	return &Driver{
		parser:  parser,
		printer: printer,
		opts:    opts,
	}
}

// MergeSet parses every member of set, merges them against schema and prints the result.
// Members are merged in insertion order, so the first member is the base document.
func (d *Driver) MergeSet(set *domain.MutationStringSet, schema *domain.Schema) (string, error) {
	if set.Len() == 0 {
		return "", domain.ErrNothingToMerge
	}

	texts := set.Strings()
	docs := make([]*domain.Document, 0, len(texts))
	for i, text := range texts {
		doc, err := d.parser.Parse(text)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to read document "+strconv.Itoa(i)), "document_index", i)
		}
		docs = append(docs, doc)
	}

	merged, err := New(schema, d.opts...).MergeDocuments(docs)
	if err != nil {
		return "", err
	}

	out, err := d.printer.Print(merged)
	if err != nil {
		return "", zerr.Wrap(err, "failed to print merged mutation")
	}
	return out, nil
}
