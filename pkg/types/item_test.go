package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemNormalize(t *testing.T) {
	it := &Item{
		Name:      "  Pé de Meia ",
		Code:      " PT-0042",
		Category:  " Scratchcard ",
		State:     "mint",
		Collector: "jorge ",
	}
	it.Normalize()

	assert.Equal(t, "Pé de Meia", it.Name)
	assert.Equal(t, "PT-0042", it.Code)
	assert.Equal(t, CategoryScratchcard, it.Category)
	assert.Equal(t, StateMint, it.State)
	assert.Equal(t, "jorge", it.Collector)
}

func TestItemHasFlag(t *testing.T) {
	it := &Item{Rare: true, AIGenerated: true}

	tests := []struct {
		flag string
		want bool
	}{
		{FlagRare, true},
		{FlagAI, true},
		{FlagPromotional, false},
		{FlagSeries, false},
		{"bogus", false},
	}
	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.want, it.HasFlag(tt.flag))
		})
	}
}

func TestItemRarity(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want string
	}{
		{name: "no flags", item: Item{}, want: ""},
		{name: "rare only", item: Item{Rare: true}, want: "rare"},
		{name: "series without name", item: Item{Series: true}, want: "series"},
		{
			name: "all flags with series name",
			item: Item{Rare: true, Promotional: true, Series: true, SeriesName: "Zodíaco"},
			want: "rare,promotional,series:Zodíaco",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.Rarity())
		})
	}
}

func TestItemValidate(t *testing.T) {
	it := &Item{Name: "  Sorte  ", State: "mint"}
	require.NoError(t, it.Validate())
	assert.Equal(t, "Sorte", it.Name)
	assert.Equal(t, "MINT", it.State)

	assert.ErrorIs(t, (&Item{Name: " "}).Validate(), ErrInvalidName)
	assert.ErrorIs(t, (&Item{ItemID: "../x", Name: "A"}).Validate(), ErrInvalidID)
	assert.NoError(t, (&Item{ItemID: "0192f0c1-7d2a-7c1e-9f00-1a2b3c4d5e6f", Name: "A"}).Validate())
}

func TestValidateID(t *testing.T) {
	for _, id := range []string{"", "..", "../victim", "a/b", `a\b`, "a\x00b"} {
		assert.ErrorIs(t, ValidateID(id), ErrInvalidID, id)
	}
	for _, id := range []string{"doomed", "item-1", "0192f0c1-7d2a-7c1e-9f00-1a2b3c4d5e6f", "a.b"} {
		assert.NoError(t, ValidateID(id), id)
	}
}
