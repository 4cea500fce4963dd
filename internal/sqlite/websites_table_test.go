package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

func TestWebsitesTable_CRUD(t *testing.T) {
	b := setupBackend(t)
	tbl := mustTable(t, b, types.WebsitesTable)

	in := &types.Website{
		Name:     "Jogos Santa Casa",
		URL:      "https://www.jogossantacasa.pt",
		Country:  "Portugal",
		Category: "operator",
		Logo:     "data:image/png;base64,AAAA",
	}
	id, err := tbl.Set("", in)
	require.NoError(t, err)

	got, err := tbl.Get(id)
	require.NoError(t, err)
	assert.Equal(t, in, got.(*types.Website))

	in.Name = "Santa Casa"
	_, err = tbl.Set(id, in)
	require.NoError(t, err)
	got, err = tbl.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Santa Casa", got.(*types.Website).Name)

	require.NoError(t, tbl.Delete(id))
	assert.ErrorIs(t, tbl.Delete(id), types.ErrNotFound)
}

func TestWebsitesTable_SetValidation(t *testing.T) {
	b := setupBackend(t)
	tbl := mustTable(t, b, types.WebsitesTable)

	_, err := tbl.Set("", &types.Website{URL: "https://example.org"})
	assert.ErrorIs(t, err, types.ErrInvalidName)

	_, err = tbl.Set("", &types.Website{Name: "x", URL: "example.org"})
	assert.ErrorIs(t, err, types.ErrInvalidURL)
}

func TestWebsitesTable_FetchByCountry(t *testing.T) {
	b := setupBackend(t)
	tbl := mustTable(t, b, types.WebsitesTable)

	for _, w := range []*types.Website{
		{Name: "zeta", URL: "https://z.pt", Country: "Portugal"},
		{Name: "Alpha", URL: "https://a.es", Country: "Espanha"},
		{Name: "beta", URL: "https://b.pt", Country: "portugal"},
	} {
		_, err := tbl.Set("", w)
		require.NoError(t, err)
	}

	all, err := tbl.Fetch(nil)
	require.NoError(t, err)
	var names []string
	for _, e := range all {
		names = append(names, e.(*types.Website).Name)
	}
	assert.Equal(t, []string{"Alpha", "beta", "zeta"}, names)

	pt, err := tbl.Fetch(types.Filter{types.FilterCountry: "PORTUGAL"})
	require.NoError(t, err)
	assert.Len(t, pt, 2)

	_, err = tbl.Fetch(types.Filter{types.FilterCountry: 1})
	assert.ErrorIs(t, err, types.ErrInvalidFilter)
}
