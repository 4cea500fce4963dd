package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

func filterFixture() []*types.Item {
	return []*types.Item{
		{ItemID: "1", Name: "Pé de Meia", Country: "Portugal", Continent: "Europe", Category: "scratchcard", State: "MINT", Collector: "Jorge Mesquita", Rare: true},
		{ItemID: "2", Name: "Rasca Verão", Country: "Portugal", Continent: "Europe", Category: "scratchcard", State: "SC", Collector: "Fábio Pagni"},
		{ItemID: "3", Name: "Loteria Navidad", Country: "Espanha", Continent: "Europe", Category: "lottery", State: "MINT", Promotional: true},
		{ItemID: "4", Name: "Lucky 7", Country: "United States of America", Continent: "North America", Category: "scratchcard", State: "CS", Series: true, AIGenerated: true},
	}
}

func ids(items []*types.Item) []string {
	out := []string{}
	for _, it := range items {
		out = append(out, it.ItemID)
	}
	return out
}

func TestFilterApply(t *testing.T) {
	items := filterFixture()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"zero filter returns all", Filter{}, []string{"1", "2", "3", "4"}},
		{"query", Filter{Query: "rasca"}, []string{"2"}},
		{"continent", Filter{Continent: "europe"}, []string{"1", "2", "3"}},
		{"country substring", Filter{Country: "PORT"}, []string{"1", "2"}},
		{"category", Filter{Category: "Lottery"}, []string{"3"}},
		{"state", Filter{State: "mint"}, []string{"1", "3"}},
		{"collector", Filter{Collector: "pagni"}, []string{"2"}},
		{"flag rare", Filter{Flag: types.FlagRare}, []string{"1"}},
		{"flag upper case", Filter{Flag: "PROMOTIONAL"}, []string{"3"}},
		{"flag ai", Filter{Flag: types.FlagAI}, []string{"4"}},
		{"unknown flag matches nothing", Filter{Flag: "gold"}, []string{}},
		{"predicates combine", Filter{Country: "portugal", State: "SC"}, []string{"2"}},
		{"combined without match", Filter{Category: "lottery", Collector: "jorge"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(tt.filter.Apply(items)))
		})
	}
}

func TestPaginate(t *testing.T) {
	items := make([]*types.Item, 0, 50)
	for i := 0; i < 50; i++ {
		items = append(items, &types.Item{})
	}

	tests := []struct {
		name      string
		number    int
		size      int
		wantLen   int
		wantPages int
		wantNum   int
		wantSize  int
	}{
		{"first page", 1, 24, 24, 3, 1, 24},
		{"last partial page", 3, 24, 2, 3, 3, 24},
		{"past the end", 4, 24, 0, 3, 4, 24},
		{"page below one", 0, 24, 24, 3, 1, 24},
		{"default size", 1, 0, DefaultPageSize, 3, 1, DefaultPageSize},
		{"exact fit", 5, 10, 10, 5, 5, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(items, tt.number, tt.size)
			assert.Len(t, p.Items, tt.wantLen)
			assert.Equal(t, tt.wantPages, p.Pages)
			assert.Equal(t, tt.wantNum, p.Number)
			assert.Equal(t, tt.wantSize, p.Size)
			assert.Equal(t, 50, p.Total)
		})
	}

	t.Run("empty input", func(t *testing.T) {
		p := Paginate(nil, 1, 24)
		assert.NotNil(t, p.Items)
		assert.Empty(t, p.Items)
		assert.Equal(t, 0, p.Pages)
	})
}

func TestBrowse(t *testing.T) {
	items := []*types.Item{
		{ItemID: "a", Code: "PT-10", Name: "Sorte", Country: "Portugal"},
		{ItemID: "b", Code: "PT-2", Name: "sorte grande", Country: "Portugal"},
		{ItemID: "c", Code: "ES-2", Name: "Sorte", Country: "Espanha"},
		{ItemID: "d", Name: "Other", Country: "Portugal"},
	}

	p := Browse(items, Filter{Country: "portugal"}, 1, 2)
	assert.Equal(t, []string{"a", "b"}, ids(p.Items))
	assert.Equal(t, 3, p.Total)
	assert.Equal(t, 2, p.Pages)

	p = Browse(items, Filter{Query: "sorte"}, 1, 24)
	assert.Equal(t, []string{"c", "b", "a"}, ids(p.Items))

	p = Browse(items, Filter{Query: "   "}, 1, 24)
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(p.Items), "blank query keeps newest-first order")
}
