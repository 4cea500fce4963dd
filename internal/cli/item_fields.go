package cli

import (
	"github.com/spf13/pflag"

	"github.com/mesh-intelligence/scratchbook/internal/catalog"
	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

// itemFields binds the editable item attributes to flags shared by
// "item add" and "item edit".
type itemFields struct {
	fs   *pflag.FlagSet
	item types.Item
}

func bindItemFields(fs *pflag.FlagSet) *itemFields {
	f := &itemFields{fs: fs}
	it := &f.item
	fs.StringVar(&it.Code, "code", "", "catalog code, e.g. PT-0042")
	fs.StringVar(&it.Name, "name", "", "item name")
	fs.StringVar(&it.GameNumber, "game", "", "game number")
	fs.StringVar(&it.Country, "country", "", "country")
	fs.StringVar(&it.Region, "region", "", "region or state within the country")
	fs.StringVar(&it.Continent, "continent", "", "continent (derived from country when empty)")
	fs.StringVar(&it.Category, "category", "", "scratchcard, lottery, bingo or other")
	fs.StringVar(&it.State, "state", "", "condition: MINT, SC, CS, AMOSTRA or VOID")
	fs.StringVar(&it.ReleaseDate, "release", "", "release date")
	fs.StringVar(&it.ClosingDate, "closing", "", "closing date")
	fs.StringVar(&it.Price, "price", "", "price as printed")
	fs.StringVar(&it.Printer, "printer", "", "printer")
	fs.StringVar(&it.EmissionSize, "emission", "", "emission size")
	fs.StringVar(&it.Collector, "collector", "", "collector who owns the item")
	fs.StringVar(&it.Notes, "notes", "", "free-form notes")
	fs.StringVar(&it.SeriesName, "series-name", "", "series name (implies --series)")
	fs.BoolVar(&it.Series, "series", false, "part of a series")
	fs.BoolVar(&it.Rare, "rare", false, "rare item")
	fs.BoolVar(&it.Promotional, "promotional", false, "promotional item")
	return f
}

// fill returns a new item from the flag values, for creation.
func (f *itemFields) fill() types.Item {
	it := f.item
	it.Collector = catalog.NormalizeCollector(it.Collector)
	if it.SeriesName != "" {
		it.Series = true
	}
	return it
}

// setters maps each field flag to the copy it performs from src onto it.
func setters(it *types.Item, src types.Item) map[string]func() {
	return map[string]func(){
		"code":        func() { it.Code = src.Code },
		"name":        func() { it.Name = src.Name },
		"game":        func() { it.GameNumber = src.GameNumber },
		"country":     func() { it.Country = src.Country },
		"region":      func() { it.Region = src.Region },
		"continent":   func() { it.Continent = src.Continent },
		"category":    func() { it.Category = src.Category },
		"state":       func() { it.State = src.State },
		"release":     func() { it.ReleaseDate = src.ReleaseDate },
		"closing":     func() { it.ClosingDate = src.ClosingDate },
		"price":       func() { it.Price = src.Price },
		"printer":     func() { it.Printer = src.Printer },
		"emission":    func() { it.EmissionSize = src.EmissionSize },
		"collector":   func() { it.Collector = catalog.NormalizeCollector(src.Collector) },
		"notes":       func() { it.Notes = src.Notes },
		"series":      func() { it.Series = src.Series },
		"series-name": func() { it.SeriesName, it.Series = src.SeriesName, src.SeriesName != "" || it.Series },
		"rare":        func() { it.Rare = src.Rare },
		"promotional": func() { it.Promotional = src.Promotional },
	}
}

// apply copies only the field flags set on the command line onto it.
// Flags are visited in name order, so --series-name wins over --series.
func (f *itemFields) apply(it *types.Item) {
	set := setters(it, f.item)
	f.fs.Visit(func(fl *pflag.Flag) {
		if fn, ok := set[fl.Name]; ok {
			fn()
		}
	})
}

// changed reports whether any field flag was given.
func (f *itemFields) changed() bool {
	set := setters(&types.Item{}, f.item)
	found := false
	f.fs.Visit(func(fl *pflag.Flag) {
		if _, ok := set[fl.Name]; ok {
			found = true
		}
	})
	return found
}
