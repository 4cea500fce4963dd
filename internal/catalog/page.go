package catalog

import (
	"strings"

	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

// DefaultPageSize is the grid page size when none is configured.
const DefaultPageSize = 24

// Page is one slice of a paginated result.
type Page struct {
	Items  []*types.Item `json:"items"`
	Number int           `json:"page"`
	Size   int           `json:"page_size"`
	Total  int           `json:"total"`
	Pages  int           `json:"pages"`
}

// Paginate returns page number (1-based) of items using a fixed size.
// A page below 1 is treated as 1, a size below 1 as DefaultPageSize. Pages
// past the end are empty but still report the totals.
func Paginate(items []*types.Item, number, size int) Page {
	if size < 1 {
		size = DefaultPageSize
	}
	if number < 1 {
		number = 1
	}
	p := Page{
		Items:  []*types.Item{},
		Number: number,
		Size:   size,
		Total:  len(items),
		Pages:  (len(items) + size - 1) / size,
	}
	start := (number - 1) * size
	if start >= len(items) {
		return p
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	p.Items = items[start:end]
	return p
}

// Browse filters items, orders search results by number then name, and
// returns the requested page. Without a query, or with a blank one, the
// input order is kept.
func Browse(items []*types.Item, f Filter, number, size int) Page {
	out := f.Apply(items)
	if strings.TrimSpace(f.Query) != "" {
		out = Search(out, f.Query)
	}
	return Paginate(out, number, size)
}
