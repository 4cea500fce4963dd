package backup

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

const bom = "\uFEFF"

// csvHeader is fixed so spreadsheets built on older exports keep working.
var csvHeader = []string{
	"Código / Code",
	"Nome / Name",
	"Jogo / Game",
	"País / Country",
	"Região / Region",
	"Continente / Continent",
	"Categoria / Category",
	"Estado / State",
	"Lançamento / Release",
	"Preço / Price",
	"Gráfica / Printer",
	"Emissão / Emission",
	"Colecionador / Collector",
	"Raridade / Rarity",
	"Criado / Created",
}

const csvDateLayout = "2006-01-02"

// ExportCSV writes a UTF-8 BOM followed by a semicolon separated table of
// items, one row per item, with CRLF line endings.
func ExportCSV(w io.Writer, items []*types.Item) error {
	if _, err := io.WriteString(w, bom); err != nil {
		return fmt.Errorf("writing bom: %w", err)
	}
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	cw.UseCRLF = true

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, it := range items {
		if err := cw.Write(csvRow(it)); err != nil {
			return fmt.Errorf("writing %s: %w", it.ItemID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(it *types.Item) []string {
	created := ""
	if !it.CreatedAt.IsZero() {
		created = it.CreatedAt.UTC().Format(csvDateLayout)
	}
	return []string{
		it.Code,
		it.Name,
		it.GameNumber,
		it.Country,
		it.Region,
		it.Continent,
		it.Category,
		it.State,
		it.ReleaseDate,
		it.Price,
		it.Printer,
		it.EmissionSize,
		it.Collector,
		it.Rarity(),
		created,
	}
}
