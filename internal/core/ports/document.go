// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/fuse/internal/core/domain"

// DocumentParser turns mutation document text into a domain tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=document.go -destination=mocks/mock_document.go -package=mocks
type DocumentParser interface {
	// Parse parses text into a document with exactly one mutation root field.
	// Every call returns a fresh tree the caller may mutate.
	Parse(text string) (*domain.Document, error)
}

// DocumentPrinter turns a domain tree back into document text.
type DocumentPrinter interface {
	// Print serializes doc. Parse(Print(doc)) yields a tree equal to doc.
	Print(doc *domain.Document) (string, error)
}
