package domain

import (
	"unique"

	"github.com/cespare/xxhash/v2"
)

// DocumentText is an interned mutation document string.
// Equal texts share one handle, so comparing two values never compares the text itself.
type DocumentText struct {
	h    unique.Handle[string]
	hash uint64
}

// InternDocument interns text and computes its hash once.
func InternDocument(text string) DocumentText {
	return DocumentText{h: unique.Make(text), hash: xxhash.Sum64String(text)}
}

// String returns the document text.
func (d DocumentText) String() string {
	var zero unique.Handle[string]
	if d.h == zero {
		return ""
	}
	return d.h.Value()
}

// Hash returns the xxhash of the document text.
func (d DocumentText) Hash() uint64 {
	return d.hash
}
