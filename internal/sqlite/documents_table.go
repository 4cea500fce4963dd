// This file implements the documents table accessor for the SQLite backend.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

var _ types.Table = (*documentsTable)(nil)

// documentsTable stores uploaded PDFs as base64 text.
type documentsTable struct {
	backend *Backend
}

const selectDocuments = "SELECT id, title, file_name, data, created_at FROM documents"

func (t *documentsTable) Get(id string) (any, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if err := t.backend.checkAttached(); err != nil {
		return nil, err
	}

	d, err := scanDocument(t.backend.db.QueryRow(selectDocuments+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting document %s: %w", id, err)
	}
	return d, nil
}

// Set requires a title and a Data field that decodes to a PDF.
func (t *documentsTable) Set(id string, data any) (string, error) {
	d, ok := data.(*types.Document)
	if !ok {
		return "", types.ErrInvalidData
	}
	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		return "", types.ErrInvalidName
	}
	if _, err := d.Bytes(); err != nil {
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
	d.DocumentID = id
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}

	_, err := t.backend.db.Exec(
		"INSERT OR REPLACE INTO documents (id, title, file_name, data, created_at) VALUES (?, ?, ?, ?, ?)",
		d.DocumentID, d.Title, d.FileName, d.Data, formatTime(d.CreatedAt),
	)
	if err != nil {
		return "", fmt.Errorf("persisting document: %w", err)
	}
	return id, nil
}

func (t *documentsTable) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if err := t.backend.checkAttached(); err != nil {
		return err
	}
	return deleteByID(t.backend.db, "documents", id)
}

// Fetch returns documents newest first, honoring limit and offset.
func (t *documentsTable) Fetch(filter types.Filter) ([]any, error) {
	page, err := pageClause(filter)
	if err != nil {
		return nil, err
	}

	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if err := t.backend.checkAttached(); err != nil {
		return nil, err
	}

	rows, err := t.backend.db.Query(selectDocuments + " ORDER BY created_at DESC, id DESC" + page)
	if err != nil {
		return nil, fmt.Errorf("fetching documents: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		results = append(results, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}
	return results, nil
}

func scanDocument(row rowScanner) (*types.Document, error) {
	var d types.Document
	var createdAt string
	if err := row.Scan(&d.DocumentID, &d.Title, &d.FileName, &d.Data, &createdAt); err != nil {
		return nil, err
	}
	var err error
	if d.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &d, nil
}
