package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

// emit writes v as indented JSON in --json mode, otherwise calls text.
func (a *app) emit(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal output: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}
	text(out)
	return nil
}

func printItems(w io.Writer, items []*types.Item) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No items.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCODE\tNAME\tCOUNTRY\tSTATE\tFLAGS")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", it.ItemID, it.Code, it.Name, it.Country, it.State, it.Rarity())
	}
	tw.Flush()
}

func printItem(w io.Writer, it *types.Item) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	rows := [][2]string{
		{"ID", it.ItemID},
		{"Code", it.Code},
		{"Name", it.Name},
		{"Game", it.GameNumber},
		{"Country", it.Country},
		{"Region", it.Region},
		{"Continent", it.Continent},
		{"Category", it.Category},
		{"State", it.State},
		{"Released", it.ReleaseDate},
		{"Closed", it.ClosingDate},
		{"Price", it.Price},
		{"Printer", it.Printer},
		{"Emission", it.EmissionSize},
		{"Collector", it.Collector},
		{"Flags", it.Rarity()},
		{"Front", it.FrontImage},
		{"Back", it.BackImage},
		{"Notes", it.Notes},
	}
	for _, r := range rows {
		if r[1] == "" {
			continue
		}
		fmt.Fprintf(tw, "%s:\t%s\n", r[0], r[1])
	}
	if it.AIGenerated {
		fmt.Fprintln(tw, "AI:\tyes")
	}
	tw.Flush()
}
