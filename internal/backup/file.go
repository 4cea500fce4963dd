package backup

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileName returns the default export file name for a format ("json" or
// "csv") at time t.
func FileName(format string, t time.Time) string {
	return fmt.Sprintf("scratchbook-%s.%s", t.UTC().Format("20060102-150405"), format)
}

// WriteFile atomically replaces path with whatever write produces: it
// writes a temp file in the same directory, syncs it, then renames it
// into place. On any error the temp file is removed and path is untouched.
func WriteFile(path string, write func(w *bufio.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".export-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}

	w := bufio.NewWriter(tmp)
	if err := write(w); err != nil {
		return fail(err)
	}
	if err := w.Flush(); err != nil {
		return fail(fmt.Errorf("flushing buffer: %w", err))
	}
	if err := tmp.Sync(); err != nil {
		return fail(fmt.Errorf("syncing temp file: %w", err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
