// Package sqlite implements the SQLite storage backend for scratchbook.
// A single database file in DataDir holds one table per collection; the
// schema is versioned with PRAGMA user_version and migrated on Attach.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/scratchbook/internal/catalog"
	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

// DBFileName is the database file created inside DataDir.
const DBFileName = "scratchbook.db"

// Compile-time interface check.
var _ types.Catalog = (*Backend)(nil)

// Backend implements the Catalog interface on top of an embedded SQLite
// database. Writers take the exclusive lock; concurrent writers are
// serialized and the last one wins.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	tables   map[string]types.Table
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{
		tables: make(map[string]types.Table),
	}
}

// GetTable returns a Table interface for the specified table name.
// Returns ErrTableNotFound if the table name is not recognized.
// Returns ErrCatalogDetached if the backend is not attached.
func (b *Backend) GetTable(name string) (types.Table, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrCatalogDetached
	}

	table, ok := b.tables[name]
	if !ok {
		return nil, types.ErrTableNotFound
	}
	return table, nil
}

// Attach opens (or creates) the database in config.DataDir and migrates it
// to the current schema version.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	dsn := filepath.Join(dataDir, DBFileName) +
		"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	// One connection: SQLite allows a single writer anyway, and it keeps
	// PRAGMA state consistent across statements.
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	config.DataDir = dataDir
	b.db = db
	b.config = config
	b.attached = true

	b.tables[types.ItemsTable] = &itemsTable{backend: b}
	b.tables[types.DocumentsTable] = &documentsTable{backend: b}
	b.tables[types.WebsitesTable] = &websitesTable{backend: b}

	return nil
}

// Detach closes the database. After Detach, all operations return
// ErrCatalogDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
		b.db = nil
	}

	b.attached = false
	b.tables = make(map[string]types.Table)

	return nil
}

// Stats scans the items table and aggregates it from scratch.
func (b *Backend) Stats() (*types.Stats, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrCatalogDetached
	}

	items, err := scanAllItems(b.db)
	if err != nil {
		return nil, fmt.Errorf("scanning items for stats: %w", err)
	}
	return catalog.ComputeStats(items), nil
}

// SchemaVersion reports the database's current user_version.
func (b *Backend) SchemaVersion() (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return 0, types.ErrCatalogDetached
	}
	return userVersion(b.db)
}

// DataDir returns the resolved data directory, or "" when detached.
func (b *Backend) DataDir() string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return ""
	}
	return b.config.DataDir
}
