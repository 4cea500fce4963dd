// This file implements the items table accessor for the SQLite backend.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/scratchbook/internal/catalog"
	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

// Compile-time interface check: itemsTable must implement Table.
var _ types.Table = (*itemsTable)(nil)

// itemsTable implements the Table interface for catalog items.
type itemsTable struct {
	backend *Backend
}

// itemColumns is the column order shared by every SELECT and INSERT below.
var itemColumns = []string{
	"id", "code", "front_image", "back_image", "name", "game_number",
	"country", "region", "continent", "category", "state",
	"release_date", "closing_date", "price", "printer", "emission_size",
	"collector", "notes", "series", "series_name", "rare", "promotional",
	"ai_generated", "created_at", "updated_at",
}

var (
	selectItems = "SELECT " + strings.Join(itemColumns, ", ") + " FROM items"
	upsertItem  = "INSERT OR REPLACE INTO items (" + strings.Join(itemColumns, ", ") +
		") VALUES (" + strings.TrimSuffix(strings.Repeat("?, ", len(itemColumns)), ", ") + ")"
)

// Get retrieves an item by ID.
func (t *itemsTable) Get(id string) (any, error) {
	if err := types.ValidateID(id); err != nil {
		return nil, err
	}
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if err := t.backend.checkAttached(); err != nil {
		return nil, err
	}

	it, err := scanItem(t.backend.db.QueryRow(selectItems+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting item %s: %w", id, err)
	}
	return it, nil
}

// Set writes the whole item, replacing any row with the same ID. An empty
// id creates a new item with a generated UUID v7. Zero timestamps are
// filled in: CreatedAt from the existing row (or now), UpdatedAt with now.
func (t *itemsTable) Set(id string, data any) (string, error) {
	it, ok := data.(*types.Item)
	if !ok {
		return "", types.ErrInvalidData
	}
	it.ItemID = id
	if err := it.Validate(); err != nil {
		return "", err
	}

	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if err := t.backend.checkAttached(); err != nil {
		return "", err
	}

	tx, err := t.backend.db.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := writeItem(tx, it, time.Now().UTC()); err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing item: %w", err)
	}
	return it.ItemID, nil
}

// Replace empties the table and writes items in a single transaction.
// Every item is validated before anything is deleted, and any failure
// leaves the table as it was. Returns the number of rows removed.
func (t *itemsTable) Replace(items []*types.Item) (int, error) {
	for i, it := range items {
		if it == nil {
			return 0, fmt.Errorf("item %d: %w", i, types.ErrInvalidData)
		}
		if err := it.Validate(); err != nil {
			return 0, fmt.Errorf("item %d (%s): %w", i, it.Name, err)
		}
	}

	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if err := t.backend.checkAttached(); err != nil {
		return 0, err
	}

	tx, err := t.backend.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM items")
	if err != nil {
		return 0, fmt.Errorf("clearing items: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clearing items: %w", err)
	}

	now := time.Now().UTC()
	for i, it := range items {
		if err := writeItem(tx, it, now); err != nil {
			return 0, fmt.Errorf("item %d (%s): %w", i, it.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing replace: %w", err)
	}
	return int(deleted), nil
}

// writeItem upserts a validated item inside tx, assigning an ID and
// timestamps where they are missing.
func writeItem(tx *sql.Tx, it *types.Item, now time.Time) error {
	if it.ItemID == "" {
		it.ItemID = newUUID()
	}
	if it.CreatedAt.IsZero() {
		var existing string
		err := tx.QueryRow("SELECT created_at FROM items WHERE id = ?", it.ItemID).Scan(&existing)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			it.CreatedAt = now
		case err != nil:
			return fmt.Errorf("reading item created_at: %w", err)
		default:
			if it.CreatedAt, err = parseTime(existing); err != nil {
				return err
			}
		}
	}
	if it.UpdatedAt.IsZero() {
		it.UpdatedAt = now
	}
	if _, err := tx.Exec(upsertItem, itemArgs(it)...); err != nil {
		return fmt.Errorf("persisting item: %w", err)
	}
	return nil
}

// Delete removes an item. Nothing references items, so nothing cascades.
func (t *itemsTable) Delete(id string) error {
	if err := types.ValidateID(id); err != nil {
		return err
	}
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if err := t.backend.checkAttached(); err != nil {
		return err
	}
	return deleteByID(t.backend.db, "items", id)
}

// Fetch returns items newest first, honoring limit and offset. With a
// non-empty query filter it instead scans the whole table, keeps the
// matching items, orders them by code number then name, and pages that.
func (t *itemsTable) Fetch(filter types.Filter) ([]any, error) {
	query, err := stringFilter(filter, types.FilterQuery)
	if err != nil {
		return nil, err
	}

	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if err := t.backend.checkAttached(); err != nil {
		return nil, err
	}

	var items []*types.Item
	if strings.TrimSpace(query) != "" {
		all, err := scanAllItems(t.backend.db)
		if err != nil {
			return nil, err
		}
		items, err = pageSlice(catalog.Search(all, query), filter)
		if err != nil {
			return nil, err
		}
	} else {
		page, err := pageClause(filter)
		if err != nil {
			return nil, err
		}
		items, err = queryItems(t.backend.db, selectItems+" ORDER BY created_at DESC, id DESC"+page)
		if err != nil {
			return nil, err
		}
	}

	results := make([]any, len(items))
	for i, it := range items {
		results[i] = it
	}
	return results, nil
}

// scanAllItems is the linear scan behind search and stats.
func scanAllItems(db *sql.DB) ([]*types.Item, error) {
	return queryItems(db, selectItems+" ORDER BY created_at DESC, id DESC")
}

func queryItems(db *sql.DB, query string, args ...any) ([]*types.Item, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	items := []*types.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*types.Item, error) {
	var it types.Item
	var createdAt, updatedAt string
	err := row.Scan(
		&it.ItemID, &it.Code, &it.FrontImage, &it.BackImage, &it.Name, &it.GameNumber,
		&it.Country, &it.Region, &it.Continent, &it.Category, &it.State,
		&it.ReleaseDate, &it.ClosingDate, &it.Price, &it.Printer, &it.EmissionSize,
		&it.Collector, &it.Notes, &it.Series, &it.SeriesName, &it.Rare, &it.Promotional,
		&it.AIGenerated, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if it.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if it.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &it, nil
}

func itemArgs(it *types.Item) []any {
	return []any{
		it.ItemID, it.Code, it.FrontImage, it.BackImage, it.Name, it.GameNumber,
		it.Country, it.Region, it.Continent, it.Category, it.State,
		it.ReleaseDate, it.ClosingDate, it.Price, it.Printer, it.EmissionSize,
		it.Collector, it.Notes, it.Series, it.SeriesName, it.Rare, it.Promotional,
		it.AIGenerated, formatTime(it.CreatedAt), formatTime(it.UpdatedAt),
	}
}

// deleteByID removes one row by primary key, reporting ErrNotFound when no
// row matched.
func deleteByID(db *sql.DB, table, id string) error {
	res, err := db.Exec("DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting from %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting from %s: %w", table, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}
