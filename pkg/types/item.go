// Item entity: one scratchcard or lottery ticket in the collection.
package types

import (
	"strings"
	"time"
)

// Known item categories. Other values are stored as given (lower-cased).
const (
	CategoryScratchcard = "scratchcard"
	CategoryLottery     = "lottery"
	CategoryBingo       = "bingo"
	CategoryOther       = "other"
)

// Known condition states. Other values are stored as given (upper-cased).
const (
	StateMint     = "MINT"
	StateScratch  = "SC"
	StateSpecimen = "CS"
	StateSample   = "AMOSTRA"
	StateVoid     = "VOID"
)

// Item flags used by filters and statistics.
const (
	FlagRare        = "rare"
	FlagPromotional = "promotional"
	FlagSeries      = "series"
	FlagAI          = "ai"
)

// Item is a catalog record. It is always written as a whole; the store
// keeps no partial-field history.
type Item struct {
	ItemID string `json:"id"`
	Code   string `json:"code"`

	// Image references relative to the data directory. BackImage is optional.
	FrontImage string `json:"front_image"`
	BackImage  string `json:"back_image,omitempty"`

	Name         string `json:"name"`
	GameNumber   string `json:"game_number"`
	Country      string `json:"country"`
	Region       string `json:"region"`
	Continent    string `json:"continent"`
	Category     string `json:"category"`
	State        string `json:"state"`
	ReleaseDate  string `json:"release_date"`
	ClosingDate  string `json:"closing_date"`
	Price        string `json:"price"`
	Printer      string `json:"printer"`
	EmissionSize string `json:"emission_size"`
	Collector    string `json:"collector"`
	Notes        string `json:"notes"`

	Series      bool   `json:"series"`
	SeriesName  string `json:"series_name"`
	Rare        bool   `json:"rare"`
	Promotional bool   `json:"promotional"`
	AIGenerated bool   `json:"ai_generated"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Normalize trims every text field, lower-cases Category and upper-cases
// State. It is applied by the store before every write.
func (it *Item) Normalize() {
	for _, f := range it.textFields() {
		*f = strings.TrimSpace(*f)
	}
	it.Category = strings.ToLower(it.Category)
	it.State = strings.ToUpper(it.State)
}

// Validate normalizes the item and checks what the store requires before a
// write: a non-empty name and, when set, a usable ID.
func (it *Item) Validate() error {
	it.Normalize()
	if it.Name == "" {
		return ErrInvalidName
	}
	if it.ItemID != "" {
		return ValidateID(it.ItemID)
	}
	return nil
}

// HasFlag reports whether the item carries the named flag. An unknown flag
// never matches.
func (it *Item) HasFlag(flag string) bool {
	switch flag {
	case FlagRare:
		return it.Rare
	case FlagPromotional:
		return it.Promotional
	case FlagSeries:
		return it.Series
	case FlagAI:
		return it.AIGenerated
	default:
		return false
	}
}

// Rarity returns a short label combining the rare, promotional and series
// flags, or "" when none is set.
func (it *Item) Rarity() string {
	var parts []string
	if it.Rare {
		parts = append(parts, FlagRare)
	}
	if it.Promotional {
		parts = append(parts, FlagPromotional)
	}
	if it.Series {
		if it.SeriesName != "" {
			parts = append(parts, FlagSeries+":"+it.SeriesName)
		} else {
			parts = append(parts, FlagSeries)
		}
	}
	return strings.Join(parts, ",")
}

func (it *Item) textFields() []*string {
	return []*string{
		&it.Code, &it.FrontImage, &it.BackImage, &it.Name, &it.GameNumber,
		&it.Country, &it.Region, &it.Continent, &it.Category, &it.State,
		&it.ReleaseDate, &it.ClosingDate, &it.Price, &it.Printer,
		&it.EmissionSize, &it.Collector, &it.Notes, &it.SeriesName,
	}
}

// ItemsOf converts the result of Table.Fetch on the items table into a
// typed slice. Entities of any other type are skipped.
func ItemsOf(entities []any) []*Item {
	out := make([]*Item, 0, len(entities))
	for _, e := range entities {
		if it, ok := e.(*Item); ok {
			out = append(out, it)
		}
	}
	return out
}
