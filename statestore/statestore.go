// Package statestore provides the durable slot for the catalog's hidden-categories set. The catalog reads the slot
// once at initialization and writes it back on every visibility toggle; everything else about the catalog view is
// ephemeral.
package statestore

import "context"

// Store is a single string-keyed durable slot holding a list of category names. Implementations must treat an
// absent value as an empty list rather than an error.
type Store interface {
	// Load reads the stored category names. A missing or unreadable value yields an empty list.
	Load(ctx context.Context) ([]string, error)
	// Save replaces the stored category names.
	Save(ctx context.Context, categories []string) error
}
