package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/scratchbook/internal/catalog"
	"github.com/mesh-intelligence/scratchbook/internal/images"
	"github.com/mesh-intelligence/scratchbook/internal/intake"
	"github.com/mesh-intelligence/scratchbook/internal/logger"
	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

func newItemCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Add, edit and browse catalog items",
	}
	cmd.AddCommand(
		newItemAddCmd(a),
		newItemGetCmd(a),
		newItemEditCmd(a),
		newItemDeleteCmd(a),
		newItemListCmd(a),
		newItemRecentCmd(a),
		newItemSearchCmd(a),
	)
	return cmd
}

// flow builds the intake flow over the items table.
func (a *app) flow(analyzer intake.Analyzer) (*intake.Flow, error) {
	tbl, err := a.table(types.ItemsTable)
	if err != nil {
		return nil, err
	}
	opts := []intake.Option{
		intake.WithLogger(a.log),
		intake.WithTimeout(a.settings.AnalyzerTimeout),
		intake.WithImageLimits(a.settings.ImageMaxDim, a.settings.ImageQuality),
	}
	if analyzer != nil {
		opts = append(opts, intake.WithAnalyzer(analyzer))
	}
	return intake.NewFlow(tbl, images.NewStore(a.dataDir), opts...), nil
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, userError(err)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func newItemAddCmd(a *app) *cobra.Command {
	var front, back, analysis string
	cmd := &cobra.Command{
		Use:   "add --front <image> [flags]",
		Short: "Add an item from its scanned images",
		Long: `Add normalizes the scans, merges any suggested fields under the ones given
as flags, and stores the item.

Example:
  scratchbook item add --front pe-de-meia.jpg --name "Pé de Meia" --country Portugal
  scratchbook item add --front scan.png --back back.png --analysis scan.json`,
		Args: exactArgs(0),
	}
	fields := bindItemFields(cmd.Flags())
	cmd.Flags().StringVar(&front, "front", "", "front image file (required)")
	cmd.Flags().StringVar(&back, "back", "", "back image file")
	cmd.Flags().StringVar(&analysis, "analysis", "", "JSON file with suggested fields")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		frontData, err := readInput(front)
		if err != nil {
			return err
		}
		backData, err := readInput(back)
		if err != nil {
			return err
		}
		var analyzer intake.Analyzer
		if analysis != "" {
			analyzer = intake.FileAnalyzer{Path: analysis}
		}
		flow, err := a.flow(analyzer)
		if err != nil {
			return err
		}

		draft, err := flow.Prepare(cmd.Context(), intake.Upload{
			Front:  frontData,
			Back:   backData,
			Manual: fields.fill(),
		})
		if err != nil {
			return userError(err)
		}
		if _, err := flow.Commit(draft); err != nil {
			return err
		}
		return a.emit(cmd, draft.Item, func(w io.Writer) {
			fmt.Fprintf(w, "Added item %s (%s)\n", draft.Item.ItemID, draft.Item.Name)
		})
	}
	return cmd
}

func (a *app) getItem(id string) (*types.Item, error) {
	tbl, err := a.table(types.ItemsTable)
	if err != nil {
		return nil, err
	}
	e, err := tbl.Get(id)
	if err != nil {
		return nil, err
	}
	return e.(*types.Item), nil
}

func newItemGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one item",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := a.getItem(args[0])
			if err != nil {
				return err
			}
			return a.emit(cmd, it, func(w io.Writer) { printItem(w, it) })
		},
	}
}

func newItemEditCmd(a *app) *cobra.Command {
	var front, back string
	cmd := &cobra.Command{
		Use:   "edit <id> [flags]",
		Short: "Change fields or images of an item",
		Long: `Edit overwrites the whole record with the stored values plus the flags
given. Flags that are not given keep their stored value.

Example:
  scratchbook item edit 0190a7c2-... --state SC --rare
  scratchbook item edit 0190a7c2-... --back new-back.jpg`,
		Args: exactArgs(1),
	}
	fields := bindItemFields(cmd.Flags())
	cmd.Flags().StringVar(&front, "front", "", "replace the front image")
	cmd.Flags().StringVar(&back, "back", "", "replace the back image")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if !fields.changed() && front == "" && back == "" {
			return userError(errors.New("nothing to change"))
		}
		id := args[0]
		flow, err := a.flow(nil)
		if err != nil {
			return err
		}
		if front != "" || back != "" {
			if _, err := a.getItem(id); err != nil {
				return err
			}
		}
		store := images.NewStore(a.dataDir)
		refs := map[string]string{}
		for side, path := range map[string]string{images.SideFront: front, images.SideBack: back} {
			if path == "" {
				continue
			}
			raw, err := readInput(path)
			if err != nil {
				return err
			}
			norm, err := images.Normalize(raw, a.settings.ImageMaxDim, a.settings.ImageQuality)
			if err != nil {
				return userError(fmt.Errorf("%s image: %w", side, err))
			}
			if refs[side], err = store.Save(id, side, norm); err != nil {
				return err
			}
		}

		it, err := flow.Edit(id, func(it *types.Item) {
			fields.apply(it)
			if ref, ok := refs[images.SideFront]; ok {
				it.FrontImage = ref
			}
			if ref, ok := refs[images.SideBack]; ok {
				it.BackImage = ref
			}
		})
		if err != nil {
			return err
		}
		a.log.Info("item edited", logger.String("id", id))
		return a.emit(cmd, it, func(w io.Writer) {
			fmt.Fprintf(w, "Updated item %s\n", id)
		})
	}
	return cmd
}

func newItemDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an item and its images",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flow, err := a.flow(nil)
			if err != nil {
				return err
			}
			if err := flow.Delete(args[0]); err != nil {
				return err
			}
			return a.emit(cmd, map[string]string{"deleted": args[0]}, func(w io.Writer) {
				fmt.Fprintf(w, "Deleted item %s\n", args[0])
			})
		},
	}
}

// allItems reads every item, newest first.
func (a *app) allItems() ([]*types.Item, error) {
	tbl, err := a.table(types.ItemsTable)
	if err != nil {
		return nil, err
	}
	res, err := tbl.Fetch(nil)
	if err != nil {
		return nil, err
	}
	return types.ItemsOf(res), nil
}

func bindFilter(cmd *cobra.Command, f *catalog.Filter, page *int) {
	fs := cmd.Flags()
	fs.StringVar(&f.Continent, "continent", "", "continent contains")
	fs.StringVar(&f.Country, "country", "", "country contains")
	fs.StringVar(&f.Category, "category", "", "category contains")
	fs.StringVar(&f.State, "state", "", "state contains")
	fs.StringVar(&f.Collector, "collector", "", "collector contains")
	fs.StringVar(&f.Flag, "flag", "", "rare, promotional, series or ai")
	fs.IntVar(page, "page", 1, "page number")
}

func (a *app) browse(cmd *cobra.Command, f catalog.Filter, page int) error {
	if page < 1 {
		return userError(fmt.Errorf("page must be at least 1, got %d", page))
	}
	items, err := a.allItems()
	if err != nil {
		return err
	}
	p := catalog.Browse(items, f, page, a.settings.PageSize)
	return a.emit(cmd, p, func(w io.Writer) {
		printItems(w, p.Items)
		if p.Pages > 1 {
			fmt.Fprintf(w, "Page %d of %d (%d items)\n", p.Number, p.Pages, p.Total)
		}
	})
}

func newItemListCmd(a *app) *cobra.Command {
	var f catalog.Filter
	var page int
	cmd := &cobra.Command{
		Use:   "list [flags]",
		Short: "List items, newest first, with optional filters",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.browse(cmd, f, page)
		},
	}
	bindFilter(cmd, &f, &page)
	cmd.Flags().StringVarP(&f.Query, "query", "q", "", "search term")
	return cmd
}

func newItemSearchCmd(a *app) *cobra.Command {
	var f catalog.Filter
	var page int
	cmd := &cobra.Command{
		Use:   "search <term> [flags]",
		Short: "Search name, code, game number, country and region",
		Long: `Search matches the term case-insensitively against the name, code, game
number, country and region, and orders results by the number in the code,
then by name.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f.Query = args[0]
			return a.browse(cmd, f, page)
		},
	}
	bindFilter(cmd, &f, &page)
	return cmd
}

func newItemRecentCmd(a *app) *cobra.Command {
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the most recently added items",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := a.table(types.ItemsTable)
			if err != nil {
				return err
			}
			res, err := tbl.Fetch(types.Filter{types.FilterLimit: limit, types.FilterOffset: offset})
			if err != nil {
				return err
			}
			items := types.ItemsOf(res)
			return a.emit(cmd, items, func(w io.Writer) { printItems(w, items) })
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of items")
	cmd.Flags().IntVar(&offset, "offset", 0, "items to skip")
	return cmd
}
