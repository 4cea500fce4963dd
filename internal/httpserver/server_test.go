package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/scratchbook/internal/catalog"
	"github.com/mesh-intelligence/scratchbook/internal/httpserver/deps"
	"github.com/mesh-intelligence/scratchbook/internal/images"
	"github.com/mesh-intelligence/scratchbook/internal/sqlite"
	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

type fixture struct {
	handler http.Handler
	ids     map[string]string // item name -> id
	docID   string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	b := sqlite.NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	t.Cleanup(func() { b.Detach() })

	items, err := b.GetTable(types.ItemsTable)
	require.NoError(t, err)
	ids := map[string]string{}
	for _, it := range []*types.Item{
		{Code: "PT-3", Name: "Pé de Meia", Country: "Portugal", Continent: "Europe", Category: "scratchcard", State: "MINT", Rare: true},
		{Code: "PT-1", Name: "Rasca Verão", Country: "portugal", Continent: "Europe", Category: "scratchcard", State: "SC"},
		{Code: "ES-2", Name: "Navidad", Country: "Espanha", Continent: "Europe", Category: "lottery", State: "MINT"},
		{Code: "", Name: "Blank", Category: "other"},
	} {
		id, err := items.Set("", it)
		require.NoError(t, err)
		ids[it.Name] = id
	}

	docs, err := b.GetTable(types.DocumentsTable)
	require.NoError(t, err)
	doc := &types.Document{Title: "Catalog 2020", FileName: "cat.pdf"}
	require.NoError(t, doc.SetBytes([]byte("%PDF-1.4 body")))
	docID, err := docs.Set("", doc)
	require.NoError(t, err)

	sites, err := b.GetTable(types.WebsitesTable)
	require.NoError(t, err)
	for _, s := range []*types.Website{
		{Name: "Jogos Santa Casa", URL: "https://www.jogossantacasa.pt", Country: "Portugal"},
		{Name: "Loterías", URL: "https://www.loteriasyapuestas.es", Country: "Spain"},
	} {
		_, err := sites.Set("", s)
		require.NoError(t, err)
	}

	store := images.NewStore(dir)
	_, err = store.Save("abc", images.SideFront, []byte{0xFF, 0xD8, 0xFF, 0xE0})
	require.NoError(t, err)

	h := NewRouter(deps.Deps{
		Catalog:  b,
		Images:   store,
		PageSize: 2,
		Version:  "test",
		TimeNow:  func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) },
	})
	return fixture{handler: h, ids: ids, docID: docID}
}

func (f fixture) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func names(items []*types.Item) []string {
	out := []string{}
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestListItems(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name      string
		target    string
		want      []string
		wantTotal int
	}{
		{"first page newest first", "/api/items", []string{"Blank", "Navidad"}, 4},
		{"second page", "/api/items?page=2", []string{"Rasca Verão", "Pé de Meia"}, 4},
		{"search ordered by number", "/api/items?q=pt", []string{"Rasca Verão", "Pé de Meia"}, 2},
		{"country filter", "/api/items?country=PORTUGAL", []string{"Rasca Verão", "Pé de Meia"}, 2},
		{"flag filter", "/api/items?flag=rare", []string{"Pé de Meia"}, 1},
		{"state and category", "/api/items?state=mint&category=lottery", []string{"Navidad"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.get(t, tt.target)
			require.Equal(t, http.StatusOK, rec.Code)
			p := decode[catalog.Page](t, rec)
			assert.Equal(t, tt.want, names(p.Items))
			assert.Equal(t, tt.wantTotal, p.Total)
			assert.Equal(t, 2, p.Size)
		})
	}

	t.Run("bad page", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, f.get(t, "/api/items?page=x").Code)
	})
}

func TestRecentAndGetItem(t *testing.T) {
	f := newFixture(t)

	rec := f.get(t, "/api/items/recent?limit=2&offset=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Navidad", "Rasca Verão"}, names(decode[[]*types.Item](t, rec)))

	rec = f.get(t, "/api/items/"+f.ids["Navidad"])
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ES-2", decode[types.Item](t, rec).Code)

	assert.Equal(t, http.StatusNotFound, f.get(t, "/api/items/nope").Code)
	assert.Equal(t, http.StatusBadRequest, f.get(t, "/api/items/recent?limit=-1").Code)
}

func TestStatsAndMap(t *testing.T) {
	f := newFixture(t)

	rec := f.get(t, "/api/stats")
	require.Equal(t, http.StatusOK, rec.Code)
	s := decode[types.Stats](t, rec)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 1, s.Rare)
	assert.Equal(t, 3, s.Continents["Europe"])

	rec = f.get(t, "/api/map")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]int{"Portugal": 2, "Spain": 1}, decode[map[string]int](t, rec))
}

func TestDocumentsAndWebsites(t *testing.T) {
	f := newFixture(t)

	rec := f.get(t, "/api/documents")
	require.Equal(t, http.StatusOK, rec.Code)
	docs := decode[[]types.Document](t, rec)
	require.Len(t, docs, 1)
	assert.Equal(t, "Catalog 2020", docs[0].Title)
	assert.Empty(t, docs[0].Data)

	rec = f.get(t, "/api/documents/"+f.docID+"/file")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))

	rec = f.get(t, "/api/websites")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]types.Website](t, rec), 2)

	rec = f.get(t, "/api/websites?country=spain")
	require.Equal(t, http.StatusOK, rec.Code)
	sites := decode[[]types.Website](t, rec)
	require.Len(t, sites, 1)
	assert.Equal(t, "Loterías", sites[0].Name)
}

func TestExports(t *testing.T) {
	f := newFixture(t)

	rec := f.get(t, "/api/export.json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "scratchbook-20250102-030405.json")
	assert.Len(t, decode[[]types.Item](t, rec), 4)

	rec = f.get(t, "/api/export.csv")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "\uFEFFCódigo / Code;"))
	assert.Equal(t, 5, strings.Count(body, "\r\n"))
}

func TestImagesAndHealth(t *testing.T) {
	f := newFixture(t)

	rec := f.get(t, "/images/abc-front.jpg")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF, 0xE0}, rec.Body.Bytes())

	assert.Equal(t, http.StatusNotFound, f.get(t, "/images/missing.jpg").Code)
	assert.Equal(t, http.StatusNotFound, f.get(t, "/images/sub/abc-front.jpg").Code)

	rec = f.get(t, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestNew_ListenAddr(t *testing.T) {
	s := New("127.0.0.1:0", deps.Deps{})
	assert.Equal(t, "127.0.0.1:0", s.Addr())
	assert.Equal(t, DefaultListenAddr, New("", deps.Deps{}).Addr())
}
