package types

// UnknownKey is the bucket used for items with an empty grouping field.
const UnknownKey = "unknown"

// Stats holds aggregate counts over every item in the catalog.
type Stats struct {
	Total       int            `json:"total"`
	Rare        int            `json:"rare"`
	Promotional int            `json:"promotional"`
	Series      int            `json:"series"`
	AIGenerated int            `json:"ai_generated"`
	Continents  map[string]int `json:"continents"`
	Countries   map[string]int `json:"countries"`
	States      map[string]int `json:"states"`
	Categories  map[string]int `json:"categories"`
	Collectors  map[string]int `json:"collectors"`
}
