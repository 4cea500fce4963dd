package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

func newDocCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc",
		Short: "Manage PDF documents",
	}
	cmd.AddCommand(newDocAddCmd(a), newDocGetCmd(a), newDocListCmd(a), newDocDeleteCmd(a))
	return cmd
}

func newDocAddCmd(a *app) *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "add <file.pdf>",
		Short: "Store a PDF document",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(args[0])
			if err != nil {
				return err
			}
			name := filepath.Base(args[0])
			if title == "" {
				title = strings.TrimSuffix(name, filepath.Ext(name))
			}
			doc := &types.Document{Title: title, FileName: name}
			if err := doc.SetBytes(raw); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			tbl, err := a.table(types.DocumentsTable)
			if err != nil {
				return err
			}
			if _, err := tbl.Set("", doc); err != nil {
				return err
			}
			doc.Data = ""
			return a.emit(cmd, doc, func(w io.Writer) {
				fmt.Fprintf(w, "Added document %s (%s)\n", doc.DocumentID, doc.Title)
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "document title (default: file name)")
	return cmd
}

func newDocGetCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Write a stored PDF to a file",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := a.table(types.DocumentsTable)
			if err != nil {
				return err
			}
			e, err := tbl.Get(args[0])
			if err != nil {
				return err
			}
			doc := e.(*types.Document)
			raw, err := doc.Bytes()
			if err != nil {
				return err
			}
			if out == "" {
				out = doc.FileName
			}
			if out == "" {
				return userError(errors.New("document has no file name; pass --out"))
			}
			if err := os.WriteFile(out, raw, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			return a.emit(cmd, map[string]string{"id": doc.DocumentID, "path": out}, func(w io.Writer) {
				fmt.Fprintf(w, "Wrote %s\n", out)
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default: original file name)")
	return cmd
}

func newDocListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List documents, newest first",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := a.table(types.DocumentsTable)
			if err != nil {
				return err
			}
			res, err := tbl.Fetch(nil)
			if err != nil {
				return err
			}
			docs := make([]types.Document, 0, len(res))
			for _, e := range res {
				d := *e.(*types.Document)
				d.Data = ""
				docs = append(docs, d)
			}
			return a.emit(cmd, docs, func(w io.Writer) {
				if len(docs) == 0 {
					fmt.Fprintln(w, "No documents.")
					return
				}
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tTITLE\tFILE\tADDED")
				for _, d := range docs {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.DocumentID, d.Title, d.FileName, d.CreatedAt.Format("2006-01-02"))
				}
				tw.Flush()
			})
		},
	}
}

func newDocDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a document",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := a.table(types.DocumentsTable)
			if err != nil {
				return err
			}
			if err := tbl.Delete(args[0]); err != nil {
				return err
			}
			return a.emit(cmd, map[string]string{"deleted": args[0]}, func(w io.Writer) {
				fmt.Fprintf(w, "Deleted document %s\n", args[0])
			})
		},
	}
}
