package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/scratchbook/internal/paths"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize scratchbook storage",
		Long:  "Create the configuration and data directories, then create or upgrade the catalog database.",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, dir := range []string{a.dataDir, paths.ImagesDir(a.dataDir), paths.ExportsDir(a.dataDir)} {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create %s: %w", dir, err)
				}
			}
			if _, err := a.open(); err != nil {
				return err
			}
			return a.emit(cmd, map[string]string{"data_dir": a.dataDir}, func(w io.Writer) {
				fmt.Fprintf(w, "Scratchbook initialized in %s\n", filepath.Clean(a.dataDir))
			})
		},
	}
}
