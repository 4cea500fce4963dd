package catalog

import (
	"strings"

	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

// ComputeStats reduces items into aggregate counts. Grouping keys are the
// trimmed stored values; collectors are normalized first. Empty keys land
// in the types.UnknownKey bucket.
func ComputeStats(items []*types.Item) *types.Stats {
	s := &types.Stats{
		Continents: make(map[string]int),
		Countries:  make(map[string]int),
		States:     make(map[string]int),
		Categories: make(map[string]int),
		Collectors: make(map[string]int),
	}
	for _, it := range items {
		s.Total++
		if it.Rare {
			s.Rare++
		}
		if it.Promotional {
			s.Promotional++
		}
		if it.Series {
			s.Series++
		}
		if it.AIGenerated {
			s.AIGenerated++
		}
		s.Continents[bucket(it.Continent)]++
		s.Countries[bucket(it.Country)]++
		s.States[bucket(it.State)]++
		s.Categories[bucket(it.Category)]++
		s.Collectors[bucket(NormalizeCollector(it.Collector))]++
	}
	return s
}

func bucket(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return types.UnknownKey
	}
	return v
}
