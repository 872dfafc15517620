// Package storagepath maps uploaded object paths to catalog documents.
// The naming convention is "<collection>/<docId>/<fileName>" where the
// collection is one of the catalog collections.
package storagepath

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotCatalogPath = errors.New("object path is not under a catalog collection")
	ErrMissingID      = errors.New("object path has no document id")
)

// Ref identifies the catalog document an object belongs to.
type Ref struct {
	Collection string
	ID         string
}

func (r Ref) DocPath() string {
	return r.Collection + "/" + r.ID
}

// Parse derives the catalog document reference from an object path. Paths
// outside books/ or authors/, or without a document id segment, are
// rejected rather than silently mis-derived.
func Parse(name string) (Ref, error) {
	parts := strings.Split(name, "/")

	switch parts[0] {
	case "books", "authors":
	default:
		return Ref{}, fmt.Errorf("%w: %q", ErrNotCatalogPath, name)
	}

	if len(parts) < 2 || parts[1] == "" {
		return Ref{}, fmt.Errorf("%w: %q", ErrMissingID, name)
	}

	return Ref{Collection: parts[0], ID: parts[1]}, nil
}
