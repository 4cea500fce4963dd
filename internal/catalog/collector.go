package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// canonicalCollector maps substring keys (lower-case, accent-free) to the
// display name every matching value collapses to.
type canonicalCollector struct {
	Name string
	Keys []string
}

// canonicalCollectors is checked in order; the first entry with a key
// contained in the folded input wins. No key of one entry may occur in
// another entry's Name, or normalization stops being idempotent.
var canonicalCollectors = []canonicalCollector{
	{Name: "Jorge Mesquita", Keys: []string{"jorge", "mesquita"}},
	{Name: "Fábio Pagni", Keys: []string{"fabio", "pagni"}},
	{Name: "Chloe Martin", Keys: []string{"chloe"}},
}

// fold lower-cases s and strips combining marks, so "Fábio" and "FABIO"
// both become "fabio". Compatibility forms such as ligatures are expanded.
func fold(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// NormalizeCollector maps free-text collector names onto one of the
// canonical collectors by substring match, first match wins. Anything else
// has its whitespace collapsed and is title-cased. Empty input stays empty.
// Normalizing an already normalized name returns it unchanged.
func NormalizeCollector(s string) string {
	s = strings.Join(strings.Fields(norm.NFKC.String(s)), " ")
	if s == "" {
		return ""
	}
	folded := fold(s)
	for _, c := range canonicalCollectors {
		for _, k := range c.Keys {
			if strings.Contains(folded, k) {
				return c.Name
			}
		}
	}
	return cases.Title(language.Und).String(s)
}
