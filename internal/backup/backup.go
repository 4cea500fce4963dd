// Package backup exports the catalog to JSON and CSV and restores it from
// a JSON export.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

// Restore modes.
const (
	ModeMerge   = "merge"
	ModeReplace = "replace"
)

// ErrUnknownMode is returned by Restore for a mode other than merge or
// replace.
var ErrUnknownMode = errors.New("unknown restore mode")

// Items reads every item from the items table, newest first.
func Items(table types.Table) ([]*types.Item, error) {
	entities, err := table.Fetch(nil)
	if err != nil {
		return nil, fmt.Errorf("fetching items: %w", err)
	}
	return types.ItemsOf(entities), nil
}

// ExportJSON writes items as an indented JSON array.
func ExportJSON(w io.Writer, items []*types.Item) error {
	if items == nil {
		items = []*types.Item{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("encoding items: %w", err)
	}
	return nil
}

// ImportJSON reads a JSON array produced by ExportJSON.
func ImportJSON(r io.Reader) ([]*types.Item, error) {
	var items []*types.Item
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("decoding items: %w", err)
	}
	for i, it := range items {
		if it == nil {
			return nil, fmt.Errorf("item %d: %w", i, types.ErrInvalidData)
		}
	}
	return items, nil
}

// Result summarizes a Restore.
type Result struct {
	Written int `json:"written"`
	Deleted int `json:"deleted"`
}

// replacer is implemented by tables that can swap their whole contents in
// one transaction.
type replacer interface {
	Replace(items []*types.Item) (int, error)
}

// Restore writes items to the table as full records. In merge mode items
// with an existing ID overwrite it and everything else is kept; in replace
// mode the table is emptied first. Items without an ID get a new one.
// Every item is validated before the table is touched, so a bad record
// aborts the restore without writing or deleting anything.
func Restore(table types.Table, items []*types.Item, mode string) (Result, error) {
	var res Result
	mode = strings.ToLower(strings.TrimSpace(mode))
	switch mode {
	case "", ModeMerge, ModeReplace:
	default:
		return res, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	for i, it := range items {
		if it == nil {
			return res, fmt.Errorf("item %d: %w", i, types.ErrInvalidData)
		}
		if err := it.Validate(); err != nil {
			return res, fmt.Errorf("item %d (%s): %w", i, it.Name, err)
		}
	}

	if mode == ModeReplace {
		if r, ok := table.(replacer); ok {
			deleted, err := r.Replace(items)
			if err != nil {
				return res, err
			}
			return Result{Written: len(items), Deleted: deleted}, nil
		}
		existing, err := Items(table)
		if err != nil {
			return res, err
		}
		for _, it := range existing {
			if err := table.Delete(it.ItemID); err != nil {
				return res, fmt.Errorf("deleting %s: %w", it.ItemID, err)
			}
			res.Deleted++
		}
	}

	for i, it := range items {
		if _, err := table.Set(it.ItemID, it); err != nil {
			return res, fmt.Errorf("item %d (%s): %w", i, it.Name, err)
		}
		res.Written++
	}
	return res, nil
}
