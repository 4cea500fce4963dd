// This file implements the websites table accessor for the SQLite backend.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

var _ types.Table = (*websitesTable)(nil)

// websitesTable stores external link bookmarks.
type websitesTable struct {
	backend *Backend
}

const selectWebsites = "SELECT id, name, url, country, category, logo, created_at FROM websites"

func (t *websitesTable) Get(id string) (any, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if err := t.backend.checkAttached(); err != nil {
		return nil, err
	}

	w, err := scanWebsite(t.backend.db.QueryRow(selectWebsites+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting website %s: %w", id, err)
	}
	return w, nil
}

// Set requires a name and an absolute http(s) URL.
func (t *websitesTable) Set(id string, data any) (string, error) {
	w, ok := data.(*types.Website)
	if !ok {
		return "", types.ErrInvalidData
	}
	w.Name = strings.TrimSpace(w.Name)
	w.URL = strings.TrimSpace(w.URL)
	w.Country = strings.TrimSpace(w.Country)
	if w.Name == "" {
		return "", types.ErrInvalidName
	}
	if err := w.ValidateURL(); err != nil {
		return "", err
	}

	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if err := t.backend.checkAttached(); err != nil {
		return "", err
	}

	if id == "" {
		id = newUUID()
	}
	w.WebsiteID = id
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now().UTC()
	}

	_, err := t.backend.db.Exec(
		"INSERT OR REPLACE INTO websites (id, name, url, country, category, logo, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		w.WebsiteID, w.Name, w.URL, w.Country, w.Category, w.Logo, formatTime(w.CreatedAt),
	)
	if err != nil {
		return "", fmt.Errorf("persisting website: %w", err)
	}
	return id, nil
}

func (t *websitesTable) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if err := t.backend.checkAttached(); err != nil {
		return err
	}
	return deleteByID(t.backend.db, "websites", id)
}

// Fetch returns websites ordered by name. The country filter matches
// case-insensitively on the whole value.
func (t *websitesTable) Fetch(filter types.Filter) ([]any, error) {
	country, err := stringFilter(filter, types.FilterCountry)
	if err != nil {
		return nil, err
	}
	page, err := pageClause(filter)
	if err != nil {
		return nil, err
	}

	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if err := t.backend.checkAttached(); err != nil {
		return nil, err
	}

	query := selectWebsites
	var args []any
	if country != "" {
		query += " WHERE lower(country) = lower(?)"
		args = append(args, strings.TrimSpace(country))
	}
	query += " ORDER BY name COLLATE NOCASE, id" + page

	rows, err := t.backend.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching websites: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		w, err := scanWebsite(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning website: %w", err)
		}
		results = append(results, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating websites: %w", err)
	}
	return results, nil
}

func scanWebsite(row rowScanner) (*types.Website, error) {
	var w types.Website
	var createdAt string
	if err := row.Scan(&w.WebsiteID, &w.Name, &w.URL, &w.Country, &w.Category, &w.Logo, &createdAt); err != nil {
		return nil, err
	}
	var err error
	if w.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &w, nil
}
