package catalog

import (
	"strings"

	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

// Filter is the set of independent predicates the collection views apply.
// A zero-valued field disables its predicate.
type Filter struct {
	Query     string `json:"q"`
	Continent string `json:"continent"`
	Country   string `json:"country"`
	Category  string `json:"category"`
	State     string `json:"state"`
	Collector string `json:"collector"`
	Flag      string `json:"flag"` // one of the types.Flag* values
}

// IsZero reports whether no predicate is active.
func (f Filter) IsZero() bool {
	return f == Filter{}
}

// Match reports whether it satisfies every active predicate.
func (f Filter) Match(it *types.Item) bool {
	if !MatchesQuery(it, f.Query) {
		return false
	}
	if !containsFold(it.Continent, f.Continent) ||
		!containsFold(it.Country, f.Country) ||
		!containsFold(it.Category, f.Category) ||
		!containsFold(it.State, f.State) ||
		!containsFold(it.Collector, f.Collector) {
		return false
	}
	if f.Flag != "" && !it.HasFlag(strings.ToLower(f.Flag)) {
		return false
	}
	return true
}

// Apply returns the items matching f, preserving input order.
func (f Filter) Apply(items []*types.Item) []*types.Item {
	if f.IsZero() {
		return items
	}
	out := make([]*types.Item, 0, len(items))
	for _, it := range items {
		if f.Match(it) {
			out = append(out, it)
		}
	}
	return out
}

// containsFold reports whether needle is a case-insensitive substring of
// haystack. An empty needle always matches.
func containsFold(haystack, needle string) bool {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
