package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/mesh-intelligence/scratchbook/internal/backup"
	"github.com/mesh-intelligence/scratchbook/internal/httpserver/deps"
	"github.com/mesh-intelligence/scratchbook/internal/logger"
	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

func ExportJSON(d deps.Deps) http.HandlerFunc {
	return exportHandler(d, "json", "application/json", backup.ExportJSON)
}

func ExportCSV(d deps.Deps) http.HandlerFunc {
	return exportHandler(d, "csv", "text/csv; charset=utf-8", backup.ExportCSV)
}

func exportHandler(d deps.Deps, format, contentType string, export func(io.Writer, []*types.Item) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tbl, err := table(d, types.ItemsTable)
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		items, err := backup.Items(tbl)
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		now := d.TimeNow
		if now == nil {
			now = time.Now
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+backup.FileName(format, now())+`"`)
		if err := export(w, items); err != nil {
			// Headers are already sent; all that is left is to log.
			d.Logger.Warn("export interrupted", logger.String("format", format), logger.Error(err))
		}
	}
}
