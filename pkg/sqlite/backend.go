// Package sqlite exposes the SQLite catalog backend to code outside this
// module while keeping the implementation internal.
package sqlite

import (
	"github.com/mesh-intelligence/scratchbook/internal/sqlite"
	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	catalog := sqlite.NewBackend()
//	err := catalog.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: dataDir,
//	})
//	defer catalog.Detach()
func NewBackend() types.Catalog {
	return sqlite.NewBackend()
}

// SchemaVersion is the schema version a freshly attached catalog reports.
var SchemaVersion = sqlite.SchemaVersion
