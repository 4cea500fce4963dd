// Package types defines the Catalog and Table interfaces, the entity types
// stored in a scratchbook (items, documents, websites), and the standard
// error values returned by every backend.
package types
