// Package catalog holds the pure functions behind every catalog view:
// search matching, numeric ordering, filtering, pagination, collector
// normalization, and the statistics and map aggregations. All of them work
// on slices already loaded from the store and never touch storage.
package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

// searchFields returns the five fields a query term is matched against.
func searchFields(it *types.Item) [5]string {
	return [5]string{it.Name, it.Code, it.GameNumber, it.Country, it.Region}
}

// MatchesQuery reports whether q is a case-insensitive substring of the
// item's name, code, game number, country or region. An empty (or blank)
// query matches every item.
func MatchesQuery(it *types.Item, q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	for _, f := range searchFields(it) {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// NumberKey concatenates every ASCII digit in s and parses the result.
// Returns 0 when s has no digits or the number does not fit in an int64.
func NumberKey(s string) int64 {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// SortByNumber orders items in place by the number embedded in Code, then
// by Name ignoring case. The sort is stable.
func SortByNumber(items []*types.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		ni, nj := NumberKey(items[i].Code), NumberKey(items[j].Code)
		if ni != nj {
			return ni < nj
		}
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
}

// Search returns the items matching q, ordered by SortByNumber. The input
// slice is not modified.
func Search(items []*types.Item, q string) []*types.Item {
	out := make([]*types.Item, 0, len(items))
	for _, it := range items {
		if MatchesQuery(it, q) {
			out = append(out, it)
		}
	}
	SortByNumber(out)
	return out
}
