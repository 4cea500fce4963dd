// Package intake implements the two-step upload flow: capture and analyze
// the scans into a draft, then let the admin correct the draft and commit
// it to the catalog.
package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"reflect"
)

// Suggestion is the fixed field set an image analyzer may pre-fill. Any
// field can be empty.
type Suggestion struct {
	Name         string `json:"name"`
	GameNumber   string `json:"game_number"`
	Country      string `json:"country"`
	Region       string `json:"region"`
	Continent    string `json:"continent"`
	Category     string `json:"category"`
	State        string `json:"state"`
	ReleaseDate  string `json:"release_date"`
	Price        string `json:"price"`
	Printer      string `json:"printer"`
	EmissionSize string `json:"emission_size"`
}

// IsEmpty reports whether no field was suggested.
func (s *Suggestion) IsEmpty() bool {
	return s == nil || reflect.ValueOf(*s).IsZero()
}

// Analyzer turns one or two scans into a Suggestion. Implementations are
// called once per upload and never retried.
type Analyzer interface {
	Analyze(ctx context.Context, front, back []byte) (*Suggestion, error)
}

// NopAnalyzer suggests nothing; every field is left for manual entry.
type NopAnalyzer struct{}

func (NopAnalyzer) Analyze(context.Context, []byte, []byte) (*Suggestion, error) {
	return &Suggestion{}, nil
}

// FileAnalyzer returns a suggestion prepared ahead of time as a JSON file,
// e.g. by an external classifier run.
type FileAnalyzer struct {
	Path string
}

func (a FileAnalyzer) Analyze(ctx context.Context, _, _ []byte) (*Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return nil, fmt.Errorf("reading suggestion: %w", err)
	}
	var s Suggestion
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing suggestion: %w", err)
	}
	return &s, nil
}
