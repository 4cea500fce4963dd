package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/scratchbook/pkg/scratchbook"
)

const modulePath = "github.com/mesh-intelligence/scratchbook"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the scratchbook version",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "scratchbook v%s\nmodule: %s\n", scratchbook.Version, modulePath)
			return nil
		},
	}
}
