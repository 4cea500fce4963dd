package handlers

import (
	"net/http"

	"github.com/mesh-intelligence/scratchbook/internal/catalog"
	"github.com/mesh-intelligence/scratchbook/internal/httpserver/deps"
	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

func Stats(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := d.Catalog.Stats()
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		writeJSON(w, http.StatusOK, s)
	}
}

// Map serves item counts per map country name.
func Map(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tbl, err := table(d, types.ItemsTable)
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		all, err := tbl.Fetch(nil)
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		writeJSON(w, http.StatusOK, catalog.MapCounts(types.ItemsOf(all)))
	}
}
