package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

func newSiteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "site",
		Short: "Manage the directory of lottery websites",
	}
	cmd.AddCommand(newSiteAddCmd(a), newSiteListCmd(a), newSiteDeleteCmd(a))
	return cmd
}

func newSiteAddCmd(a *app) *cobra.Command {
	var w types.Website
	cmd := &cobra.Command{
		Use:     "add --name <name> --url <url> [flags]",
		Short:   "Add a website",
		Example: `  scratchbook site add --name "Jogos Santa Casa" --url https://www.jogossantacasa.pt --country Portugal`,
		Args:    exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := a.table(types.WebsitesTable)
			if err != nil {
				return err
			}
			if _, err := tbl.Set("", &w); err != nil {
				return err
			}
			return a.emit(cmd, &w, func(out io.Writer) {
				fmt.Fprintf(out, "Added website %s (%s)\n", w.WebsiteID, w.Name)
			})
		},
	}
	cmd.Flags().StringVar(&w.Name, "name", "", "site name (required)")
	cmd.Flags().StringVar(&w.URL, "url", "", "http or https URL (required)")
	cmd.Flags().StringVar(&w.Country, "country", "", "country the site serves")
	cmd.Flags().StringVar(&w.Category, "category", "", "category, e.g. operator or collectors")
	cmd.Flags().StringVar(&w.Logo, "logo", "", "logo URL")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("url")
	return cmd
}

func newSiteListCmd(a *app) *cobra.Command {
	var country string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List websites by name",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := a.table(types.WebsitesTable)
			if err != nil {
				return err
			}
			var filter types.Filter
			if country != "" {
				filter = types.Filter{types.FilterCountry: country}
			}
			res, err := tbl.Fetch(filter)
			if err != nil {
				return err
			}
			sites := make([]*types.Website, 0, len(res))
			for _, e := range res {
				sites = append(sites, e.(*types.Website))
			}
			return a.emit(cmd, sites, func(out io.Writer) {
				if len(sites) == 0 {
					fmt.Fprintln(out, "No websites.")
					return
				}
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tCOUNTRY\tURL")
				for _, s := range sites {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.WebsiteID, s.Name, s.Country, s.URL)
				}
				tw.Flush()
			})
		},
	}
	cmd.Flags().StringVar(&country, "country", "", "only sites for this country")
	return cmd
}

func newSiteDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a website",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := a.table(types.WebsitesTable)
			if err != nil {
				return err
			}
			if err := tbl.Delete(args[0]); err != nil {
				return err
			}
			return a.emit(cmd, map[string]string{"deleted": args[0]}, func(w io.Writer) {
				fmt.Fprintf(w, "Deleted website %s\n", args[0])
			})
		},
	}
}
