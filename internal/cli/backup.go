package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/scratchbook/internal/backup"
	"github.com/mesh-intelligence/scratchbook/internal/logger"
	"github.com/mesh-intelligence/scratchbook/internal/paths"
	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

func newExportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog to JSON or CSV",
	}
	cmd.AddCommand(
		newExportFormatCmd(a, "json", "Export every item as a JSON array (re-importable)", backup.ExportJSON),
		newExportFormatCmd(a, "csv", "Export a spreadsheet-friendly CSV", backup.ExportCSV),
	)
	return cmd
}

func newExportFormatCmd(a *app, format, short string, export func(io.Writer, []*types.Item) error) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   format,
		Short: short,
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := a.table(types.ItemsTable)
			if err != nil {
				return err
			}
			items, err := backup.Items(tbl)
			if err != nil {
				return err
			}
			if out == "-" {
				return export(cmd.OutOrStdout(), items)
			}
			path := out
			if path == "" {
				path = filepath.Join(paths.ExportsDir(a.dataDir), backup.FileName(format, time.Now()))
			}
			if err := backup.WriteFile(path, func(w *bufio.Writer) error { return export(w, items) }); err != nil {
				return err
			}
			a.log.Info("catalog exported",
				logger.String("format", format),
				logger.String("path", path),
				logger.Int("items", len(items)))
			return a.emit(cmd, map[string]any{"path": path, "items": len(items)}, func(w io.Writer) {
				fmt.Fprintf(w, "Exported %d items to %s\n", len(items), path)
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, - for stdout (default: <data-dir>/exports/)")
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "import <file.json>",
		Short: "Restore items from a JSON export",
		Long: `Import writes every item of a JSON export as a full record.

In merge mode (the default) items whose ID already exists are overwritten
and all other stored items are kept. In replace mode every stored item is
deleted first. Image files are not part of the export.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return userError(err)
				}
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()

			items, err := backup.ImportJSON(f)
			if err != nil {
				return userError(err)
			}
			tbl, err := a.table(types.ItemsTable)
			if err != nil {
				return err
			}
			res, err := backup.Restore(tbl, items, mode)
			if err != nil {
				return err
			}
			a.log.Info("catalog imported",
				logger.String("mode", mode),
				logger.Int("written", res.Written),
				logger.Int("deleted", res.Deleted))
			return a.emit(cmd, res, func(w io.Writer) {
				fmt.Fprintf(w, "Imported %d items", res.Written)
				if res.Deleted > 0 {
					fmt.Fprintf(w, " (replaced %d)", res.Deleted)
				}
				fmt.Fprintln(w)
			})
		},
	}
	cmd.Flags().StringVar(&mode, "mode", backup.ModeMerge, "merge or replace")
	return cmd
}
