package cli

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/scratchbook/internal/catalog"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show collection statistics",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open()
			if err != nil {
				return err
			}
			s, err := c.Stats()
			if err != nil {
				return err
			}
			return a.emit(cmd, s, func(w io.Writer) {
				fmt.Fprintf(w, "Total: %d  Rare: %d  Promotional: %d  Series: %d  AI: %d\n",
					s.Total, s.Rare, s.Promotional, s.Series, s.AIGenerated)
				printCounts(w, "Continents", s.Continents)
				printCounts(w, "Countries", s.Countries)
				printCounts(w, "States", s.States)
				printCounts(w, "Categories", s.Categories)
				printCounts(w, "Collectors", s.Collectors)
			})
		},
	}
}

func newMapCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "map",
		Short: "Count items per country as shown on the world map",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.allItems()
			if err != nil {
				return err
			}
			counts := catalog.MapCounts(items)
			return a.emit(cmd, counts, func(w io.Writer) {
				printCounts(w, "Countries", counts)
			})
		},
	}
}

// printCounts prints a count table, largest first, ties by name.
func printCounts(w io.Writer, title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	fmt.Fprintf(w, "\n%s:\n", title)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, k := range keys {
		fmt.Fprintf(tw, "  %s\t%d\n", k, counts[k])
	}
	tw.Flush()
}
