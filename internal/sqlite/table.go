package sqlite

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

// timeLayout is fixed-width so that stored timestamps sort lexically in
// chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// newUUID generates a UUID v7 string, falling back to v4.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		// Rows written by hand or older tools may carry plain RFC 3339.
		t, err = time.Parse(time.RFC3339Nano, s)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing time %q: %w", s, err)
	}
	return t.UTC(), nil
}

// checkAttached must be called with b.mu held.
func (b *Backend) checkAttached() error {
	if !b.attached {
		return types.ErrCatalogDetached
	}
	return nil
}

// intFilter extracts an optional int value. Returns ErrInvalidFilter when
// the key is present with another type.
func intFilter(filter types.Filter, key string) (int, error) {
	v, ok := filter[key]
	if !ok {
		return 0, nil
	}
	n, ok := v.(int)
	if !ok {
		return 0, types.ErrInvalidFilter
	}
	return n, nil
}

// stringFilter extracts an optional string value.
func stringFilter(filter types.Filter, key string) (string, error) {
	v, ok := filter[key]
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", types.ErrInvalidFilter
	}
	return s, nil
}

// pageClause renders LIMIT/OFFSET for the limit and offset filter keys.
func pageClause(filter types.Filter) (string, error) {
	limit, err := intFilter(filter, types.FilterLimit)
	if err != nil {
		return "", err
	}
	offset, err := intFilter(filter, types.FilterOffset)
	if err != nil {
		return "", err
	}
	switch {
	case limit > 0 && offset > 0:
		return fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset), nil
	case limit > 0:
		return fmt.Sprintf(" LIMIT %d", limit), nil
	case offset > 0:
		// SQLite only accepts OFFSET after a LIMIT; -1 means no limit.
		return fmt.Sprintf(" LIMIT -1 OFFSET %d", offset), nil
	default:
		return "", nil
	}
}

// pageSlice applies the limit and offset filter keys to an in-memory result.
func pageSlice[T any](all []T, filter types.Filter) ([]T, error) {
	limit, err := intFilter(filter, types.FilterLimit)
	if err != nil {
		return nil, err
	}
	offset, err := intFilter(filter, types.FilterOffset)
	if err != nil {
		return nil, err
	}
	if offset > 0 {
		if offset >= len(all) {
			return all[:0], nil
		}
		all = all[offset:]
	}
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}
