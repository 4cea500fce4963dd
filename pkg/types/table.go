package types

import (
	"errors"
	"strings"
)

// Filter is a map of filter keys to values passed to Table.Fetch.
// Recognized keys depend on the table; an unknown key is ignored and a
// value of the wrong type yields ErrInvalidFilter.
type Filter map[string]any

// Filter keys shared by all tables.
const (
	FilterLimit  = "limit"  // int, > 0 caps the result length
	FilterOffset = "offset" // int, rows skipped after ordering
)

// Filter keys specific to a single table.
const (
	FilterQuery   = "query"   // items: case-insensitive search term
	FilterCountry = "country" // websites: exact country match
)

// Table provides uniform CRUD operations for a single entity type.
// Get and Fetch return any; callers type-assert to the concrete entity struct.
type Table interface {
	// Get retrieves the entity with the given ID.
	// Returns ErrNotFound if no entity exists with that ID.
	Get(id string) (any, error)

	// Set creates or overwrites an entity. When id is empty a new UUID v7 is
	// generated. The whole record is replaced; there are no partial updates.
	// Returns the actual ID used (generated or provided).
	Set(id string, data any) (string, error)

	// Delete removes the entity with the given ID.
	// Returns ErrNotFound if no entity exists with that ID.
	Delete(id string) error

	// Fetch returns all entities matching the filter. A nil or empty filter
	// returns every entity in the table, newest first.
	Fetch(filter Filter) ([]any, error)
}

// Table operation errors.
var (
	ErrNotFound    = errors.New("entity not found")
	ErrInvalidID   = errors.New("invalid entity ID")
	ErrInvalidData = errors.New("invalid entity data")
)

// Entity validation errors.
var (
	ErrInvalidName    = errors.New("invalid name")
	ErrInvalidURL     = errors.New("invalid URL")
	ErrInvalidContent = errors.New("content is not a base64 encoded PDF")
	ErrInvalidFilter  = errors.New("invalid filter value type")
)

// ValidateID rejects IDs that cannot double as a file name component.
// Image files are named after item IDs, so an ID must not contain a path
// separator, a NUL byte or "..".
func ValidateID(id string) error {
	if id == "" || strings.ContainsAny(id, "/\\\x00") || strings.Contains(id, "..") {
		return ErrInvalidID
	}
	return nil
}
