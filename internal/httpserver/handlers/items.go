package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mesh-intelligence/scratchbook/internal/catalog"
	"github.com/mesh-intelligence/scratchbook/internal/httpserver/deps"
	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

// ListItems serves the filtered, paginated collection grid.
func ListItems(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		f := catalog.Filter{
			Query:     q.Get("q"),
			Continent: q.Get("continent"),
			Country:   q.Get("country"),
			Category:  q.Get("category"),
			State:     q.Get("state"),
			Collector: q.Get("collector"),
			Flag:      q.Get("flag"),
		}
		page, err := queryInt(r, "page", 1)
		if err != nil {
			writeError(w, r, d, err)
			return
		}

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
		writeJSON(w, http.StatusOK, catalog.Browse(types.ItemsOf(all), f, page, d.PageSize))
	}
}

// RecentItems serves the newest items, honoring limit and offset.
func RecentItems(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryInt(r, "limit", 10)
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		offset, err := queryInt(r, "offset", 0)
		if err != nil {
			writeError(w, r, d, err)
			return
		}

		tbl, err := table(d, types.ItemsTable)
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		res, err := tbl.Fetch(types.Filter{types.FilterLimit: limit, types.FilterOffset: offset})
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		writeJSON(w, http.StatusOK, types.ItemsOf(res))
	}
}

func GetItem(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tbl, err := table(d, types.ItemsTable)
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		it, err := tbl.Get(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		writeJSON(w, http.StatusOK, it)
	}
}
