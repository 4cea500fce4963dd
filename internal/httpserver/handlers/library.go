package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mesh-intelligence/scratchbook/internal/httpserver/deps"
	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

// ListDocuments serves document metadata. PDF bytes are left out; they
// are fetched one at a time through DocumentFile.
func ListDocuments(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tbl, err := table(d, types.DocumentsTable)
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		res, err := tbl.Fetch(nil)
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		docs := make([]types.Document, 0, len(res))
		for _, e := range res {
			doc := *e.(*types.Document)
			doc.Data = ""
			docs = append(docs, doc)
		}
		writeJSON(w, http.StatusOK, docs)
	}
}

func DocumentFile(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tbl, err := table(d, types.DocumentsTable)
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		e, err := tbl.Get(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		doc := e.(*types.Document)
		raw, err := doc.Bytes()
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		name := strings.ReplaceAll(doc.FileName, `"`, "")
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `inline; filename="`+name+`"`)
		_, _ = w.Write(raw)
	}
}

// ListWebsites serves the link directory, optionally for one country.
func ListWebsites(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tbl, err := table(d, types.WebsitesTable)
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		var filter types.Filter
		if c := r.URL.Query().Get("country"); c != "" {
			filter = types.Filter{types.FilterCountry: c}
		}
		res, err := tbl.Fetch(filter)
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		out := make([]*types.Website, 0, len(res))
		for _, e := range res {
			out = append(out, e.(*types.Website))
		}
		writeJSON(w, http.StatusOK, out)
	}
}
