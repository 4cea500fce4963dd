package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

func TestResolveCountry(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Espanha", "Spain"},
		{"ESPAÑA", "Spain"},
		{"spain", "Spain"},
		{"Alemanha", "Germany"},
		{"Deutschland", "Germany"},
		{"EUA", "United States of America"},
		{" Brasil ", "Brazil"},
		{"Atlantis", "Atlantis"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveCountry(tt.in))
		})
	}
}

func TestContinentOf(t *testing.T) {
	assert.Equal(t, ContinentEurope, ContinentOf("Itália"))
	assert.Equal(t, ContinentSouthAmerica, ContinentOf("Brazil"))
	assert.Equal(t, ContinentAfrica, ContinentOf("moçambique"))
	assert.Equal(t, "", ContinentOf("Atlantis"))
}

func TestCountryAliases(t *testing.T) {
	assert.Contains(t, CountryAliases("Spain"), "espanha")
	assert.Contains(t, CountryAliases("espanha"), "spagna")
	assert.Nil(t, CountryAliases("Atlantis"))
}

func TestAliasTableHasNoCollisions(t *testing.T) {
	seen := map[string]string{}
	for _, e := range countries {
		for _, k := range append([]string{e.Name}, e.Aliases...) {
			f := fold(k)
			if prev, ok := seen[f]; ok && prev != e.Name {
				t.Errorf("alias %q maps to both %s and %s", k, prev, e.Name)
			}
			seen[f] = e.Name
		}
	}
}

func TestMapCounts(t *testing.T) {
	items := []*types.Item{
		{Country: "Portugal"},
		{Country: "portugal"},
		{Country: "Espanha"},
		{Country: "España"},
		{Country: "Spain"},
		{Country: ""},
		{Country: "Atlantis"},
	}
	got := MapCounts(items)
	assert.Equal(t, map[string]int{
		"Portugal": 2,
		"Spain":    3,
		"Atlantis": 1,
	}, got)
}
