package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCollector(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"jorge", "Jorge Mesquita"},
		{"J. MESQUITA", "Jorge Mesquita"},
		{"coleção do Jorge", "Jorge Mesquita"},
		{"fabio", "Fábio Pagni"},
		{"Fábio", "Fábio Pagni"},
		{"FÁBIO P.", "Fábio Pagni"},
		{"chloe", "Chloe Martin"},
		{"maria   do carmo", "Maria Do Carmo"},
		{"ANA", "Ana"},
		{"\ufb00abio", "Fábio Pagni"},
		{"\ufb01lipa", "Filipa"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCollector(tt.in))
		})
	}
}

func TestNormalizeCollectorIdempotent(t *testing.T) {
	inputs := []string{
		"jorge", "Fábio", "chloe", "maria do carmo", "O'NEILL", "  josé  luís ",
		"Jorge Mesquita", "Fábio Pagni", "Chloe Martin", "",
		"\ufb00abio", "\ufb01lipa", "ｊｏｒｇｅ",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			once := NormalizeCollector(in)
			assert.Equal(t, once, NormalizeCollector(once))
		})
	}
}

func TestCanonicalNamesAreFixedPoints(t *testing.T) {
	for _, c := range canonicalCollectors {
		assert.Equal(t, c.Name, NormalizeCollector(c.Name))
	}
}
