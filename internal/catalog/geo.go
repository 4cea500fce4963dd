package catalog

import (
	"sort"
	"strings"

	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

// Continent names as stored on items and shown on the map.
const (
	ContinentEurope       = "Europe"
	ContinentAfrica       = "Africa"
	ContinentAsia         = "Asia"
	ContinentNorthAmerica = "North America"
	ContinentSouthAmerica = "South America"
	ContinentOceania      = "Oceania"
)

// countryEntry ties a map display name to its continent and the spellings
// collectors actually type (Portuguese, Spanish, Italian, French, German).
type countryEntry struct {
	Name      string
	Continent string
	Aliases   []string
}

var countries = []countryEntry{
	{"Portugal", ContinentEurope, []string{"portugal", "portogallo"}},
	{"Spain", ContinentEurope, []string{"espanha", "espana", "spanien", "spagna", "espagne"}},
	{"France", ContinentEurope, []string{"franca", "francia", "frankreich"}},
	{"Italy", ContinentEurope, []string{"italia", "italie", "italien"}},
	{"Germany", ContinentEurope, []string{"alemanha", "alemania", "deutschland", "germania", "allemagne"}},
	{"United Kingdom", ContinentEurope, []string{"reino unido", "uk", "inglaterra", "regno unito", "royaume-uni", "grossbritannien"}},
	{"Ireland", ContinentEurope, []string{"irlanda", "irlande", "irland"}},
	{"Belgium", ContinentEurope, []string{"belgica", "belgio", "belgique", "belgien"}},
	{"Netherlands", ContinentEurope, []string{"holanda", "paises baixos", "paises bajos", "paesi bassi", "pays-bas", "niederlande"}},
	{"Switzerland", ContinentEurope, []string{"suica", "suiza", "svizzera", "suisse", "schweiz"}},
	{"Austria", ContinentEurope, []string{"austria", "autriche", "osterreich"}},
	{"Poland", ContinentEurope, []string{"polonia", "pologne", "polen"}},
	{"Czech Republic", ContinentEurope, []string{"republica checa", "chequia", "repubblica ceca", "tchequie", "tschechien"}},
	{"Greece", ContinentEurope, []string{"grecia", "grece", "griechenland"}},
	{"Sweden", ContinentEurope, []string{"suecia", "svezia", "suede", "schweden"}},
	{"Norway", ContinentEurope, []string{"noruega", "norvegia", "norvege", "norwegen"}},
	{"Denmark", ContinentEurope, []string{"dinamarca", "danimarca", "danemark"}},
	{"Finland", ContinentEurope, []string{"finlandia", "finlande", "finnland"}},
	{"Croatia", ContinentEurope, []string{"croacia", "croazia", "croatie", "kroatien"}},
	{"Slovenia", ContinentEurope, []string{"eslovenia", "slovenie", "slowenien"}},
	{"Romania", ContinentEurope, []string{"romenia", "rumania", "roumanie", "rumanien"}},
	{"Ukraine", ContinentEurope, []string{"ucrania", "ucraina"}},
	{"Turkey", ContinentAsia, []string{"turquia", "turchia", "turquie", "turkei"}},
	{"Morocco", ContinentAfrica, []string{"marrocos", "marruecos", "marocco", "maroc", "marokko"}},
	{"South Africa", ContinentAfrica, []string{"africa do sul", "sudafrica", "afrique du sud", "sudafrika"}},
	{"Angola", ContinentAfrica, []string{"angola"}},
	{"Mozambique", ContinentAfrica, []string{"mocambique", "mozambico"}},
	{"Cape Verde", ContinentAfrica, []string{"cabo verde", "capo verde", "cap-vert", "kap verde"}},
	{"United States of America", ContinentNorthAmerica, []string{"estados unidos", "eua", "usa", "stati uniti", "etats-unis", "vereinigte staaten"}},
	{"Canada", ContinentNorthAmerica, []string{"canada", "kanada"}},
	{"Mexico", ContinentNorthAmerica, []string{"mexico", "messico", "mexique", "mexiko"}},
	{"Brazil", ContinentSouthAmerica, []string{"brasil", "brasile", "bresil", "brasilien"}},
	{"Argentina", ContinentSouthAmerica, []string{"argentina", "argentine", "argentinien"}},
	{"Chile", ContinentSouthAmerica, []string{"chile", "cile", "chili"}},
	{"Japan", ContinentAsia, []string{"japao", "japon", "giappone"}},
	{"China", ContinentAsia, []string{"china", "cina", "chine"}},
	{"India", ContinentAsia, []string{"india", "inde", "indien"}},
	{"Australia", ContinentOceania, []string{"australia", "australie", "australien"}},
	{"New Zealand", ContinentOceania, []string{"nova zelandia", "nueva zelanda", "nuova zelanda", "nouvelle-zelande", "neuseeland"}},
}

// countryIndex maps every folded alias and display name to its entry.
var countryIndex = buildCountryIndex()

func buildCountryIndex() map[string]*countryEntry {
	idx := make(map[string]*countryEntry, len(countries)*4)
	for i := range countries {
		e := &countries[i]
		idx[fold(e.Name)] = e
		for _, a := range e.Aliases {
			idx[fold(a)] = e
		}
	}
	return idx
}

// ResolveCountry returns the map display name for a stored country value.
// Values with no alias entry come back trimmed but otherwise unchanged.
func ResolveCountry(stored string) string {
	stored = strings.TrimSpace(stored)
	if e, ok := countryIndex[fold(stored)]; ok {
		return e.Name
	}
	return stored
}

// ContinentOf returns the continent for a stored or display country name,
// or "" when the country is not in the alias table.
func ContinentOf(country string) string {
	if e, ok := countryIndex[fold(strings.TrimSpace(country))]; ok {
		return e.Continent
	}
	return ""
}

// CountryAliases returns the stored spellings that resolve to the same
// country as name, sorted. Returns nil for names outside the table.
func CountryAliases(name string) []string {
	e, ok := countryIndex[fold(strings.TrimSpace(name))]
	if !ok {
		return nil
	}
	out := append([]string(nil), e.Aliases...)
	sort.Strings(out)
	return out
}

// MapCounts counts items per map display name. Items with an empty
// country are left off the map.
func MapCounts(items []*types.Item) map[string]int {
	counts := make(map[string]int)
	for _, it := range items {
		name := ResolveCountry(it.Country)
		if name == "" {
			continue
		}
		counts[name]++
	}
	return counts
}
