// Package storage persists an ExpenseList as a single JSON document.
package storage

import "context"

// BlobStore is the backing document seen as one opaque blob. Implementations
// replace the whole document on every write.
type BlobStore interface {
	// Exists reports whether the document has been created.
	Exists(ctx context.Context) (bool, error)

	// ReadAll returns the full document content.
	ReadAll(ctx context.Context) ([]byte, error)

	// WriteAll replaces the document with data, creating it if missing.
	WriteAll(ctx context.Context, data []byte) error
}
