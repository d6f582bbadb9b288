// Package blob stores raw content by opaque reference, independent of the
// metadata records that point at it.
package blob

import "context"

// Store is the byte-payload backend. References returned by Write are
// opaque to callers; renditions are written at caller-derived references
// via WriteRef so they can be located by convention.
type Store interface {
	// Write stores data under a freshly generated reference and returns it.
	// A concurrent reader never observes a partial write.
	Write(ctx context.Context, data []byte) (string, error)

	// WriteRef stores data under an explicit reference.
	WriteRef(ctx context.Context, ref string, data []byte) error

	// Read returns the content for ref, or common.ErrorNotFound.
	Read(ctx context.Context, ref string) ([]byte, error)

	// Ping reports whether the backend is usable.
	Ping(ctx context.Context) error
}
