package handlers

import (
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"

	"github.com/mesh-intelligence/scratchbook/internal/httpserver/deps"
	"github.com/mesh-intelligence/scratchbook/internal/paths"
)

// Image serves a stored scan. Only plain file names directly inside the
// images directory are served.
func Image(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "*")
		if name == "" || name != path.Base(name) || name == ".." || name == "." {
			http.NotFound(w, r)
			return
		}
		p, err := d.Images.Path(path.Join(paths.ImagesDirName, name))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=86400")
		http.ServeFile(w, r, p)
	}
}
