package intake

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/scratchbook/internal/catalog"
	"github.com/mesh-intelligence/scratchbook/internal/images"
	"github.com/mesh-intelligence/scratchbook/internal/logger"
	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

// DefaultAnalyzerTimeout bounds a single analyzer call.
const DefaultAnalyzerTimeout = 30 * time.Second

// ErrNoFrontImage is returned when an upload has no front scan.
var ErrNoFrontImage = errors.New("front image is required")

// Upload is the raw input of step one.
type Upload struct {
	Front  []byte
	Back   []byte     // optional
	Manual types.Item // fields typed by the admin; they win over suggestions
}

// Draft is the reviewed-but-unsaved result of step one.
type Draft struct {
	Item       *types.Item
	Front      []byte // normalized JPEG
	Back       []byte // normalized JPEG, nil when absent
	Suggestion *Suggestion
}

// Flow wires the analyzer, image store and items table together.
type Flow struct {
	items    types.Table
	images   *images.Store
	analyzer Analyzer
	log      logger.Logger
	timeout  time.Duration
	maxDim   int
	quality  int
}

// Option configures a Flow.
type Option func(*Flow)

// WithAnalyzer sets the analyzer consulted by Prepare. The default is NopAnalyzer.
func WithAnalyzer(a Analyzer) Option { return func(f *Flow) { f.analyzer = a } }

// WithLogger sets the logger for analyzer warnings and saved items.
func WithLogger(l logger.Logger) Option { return func(f *Flow) { f.log = l } }

// WithTimeout bounds a single analyzer call.
func WithTimeout(d time.Duration) Option { return func(f *Flow) { f.timeout = d } }

// WithImageLimits sets the maximum side in pixels and the JPEG quality used
// when normalizing scans. Zero keeps the images package defaults.
func WithImageLimits(maxDim, quality int) Option {
	return func(f *Flow) { f.maxDim, f.quality = maxDim, quality }
}

// NewFlow returns a Flow writing to the items table and image store.
func NewFlow(items types.Table, store *images.Store, opts ...Option) *Flow {
	f := &Flow{
		items:    items,
		images:   store,
		analyzer: NopAnalyzer{},
		log:      logger.NewNop(),
		timeout:  DefaultAnalyzerTimeout,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Prepare normalizes the scans, asks the analyzer for a suggestion and
// merges it under the manual fields. Analyzer failures are logged and
// treated as an empty suggestion; only bad images fail the step.
func (f *Flow) Prepare(ctx context.Context, up Upload) (*Draft, error) {
	if len(up.Front) == 0 {
		return nil, ErrNoFrontImage
	}
	front, err := images.Normalize(up.Front, f.maxDim, f.quality)
	if err != nil {
		return nil, fmt.Errorf("front image: %w", err)
	}
	var back []byte
	if len(up.Back) > 0 {
		if back, err = images.Normalize(up.Back, f.maxDim, f.quality); err != nil {
			return nil, fmt.Errorf("back image: %w", err)
		}
	}

	sug := f.analyze(ctx, front, back)

	item := up.Manual
	Merge(&item, sug)
	return &Draft{Item: &item, Front: front, Back: back, Suggestion: sug}, nil
}

func (f *Flow) analyze(ctx context.Context, front, back []byte) *Suggestion {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}
	sug, err := f.analyzer.Analyze(ctx, front, back)
	if err != nil {
		f.log.Warn("image analysis failed, continuing with manual entry",
			logger.Error(err),
			logger.Bool("has_back", back != nil))
		return &Suggestion{}
	}
	if sug == nil {
		return &Suggestion{}
	}
	return sug
}

// Merge copies suggested values into fields the admin left empty and
// marks the item AI-generated when anything was taken. A missing
// continent is derived from the country when the country is known.
func Merge(it *types.Item, s *Suggestion) {
	if !s.IsEmpty() {
		used := false
		fill := func(dst *string, v string) {
			if strings.TrimSpace(*dst) == "" && strings.TrimSpace(v) != "" {
				*dst = strings.TrimSpace(v)
				used = true
			}
		}
		fill(&it.Name, s.Name)
		fill(&it.GameNumber, s.GameNumber)
		fill(&it.Country, s.Country)
		fill(&it.Region, s.Region)
		fill(&it.Continent, s.Continent)
		fill(&it.Category, s.Category)
		fill(&it.State, s.State)
		fill(&it.ReleaseDate, s.ReleaseDate)
		fill(&it.Price, s.Price)
		fill(&it.Printer, s.Printer)
		fill(&it.EmissionSize, s.EmissionSize)
		if used {
			it.AIGenerated = true
		}
	}
	if strings.TrimSpace(it.Continent) == "" {
		it.Continent = catalog.ContinentOf(it.Country)
	}
}

// Commit stores the draft's images and writes the item. If the write fails
// the images are removed again.
func (f *Flow) Commit(d *Draft) (string, error) {
	if d == nil || d.Item == nil {
		return "", types.ErrInvalidData
	}
	if len(d.Front) == 0 {
		return "", ErrNoFrontImage
	}
	if strings.TrimSpace(d.Item.Name) == "" {
		return "", types.ErrInvalidName
	}

	id := d.Item.ItemID
	if id == "" {
		id = uuid.Must(uuid.NewV7()).String()
	}
	if err := types.ValidateID(id); err != nil {
		return "", err
	}

	ref, err := f.images.Save(id, images.SideFront, d.Front)
	if err != nil {
		return "", err
	}
	d.Item.FrontImage = ref
	if len(d.Back) > 0 {
		if ref, err = f.images.Save(id, images.SideBack, d.Back); err != nil {
			f.cleanup(id)
			return "", err
		}
		d.Item.BackImage = ref
	}

	if _, err := f.items.Set(id, d.Item); err != nil {
		f.cleanup(id)
		return "", fmt.Errorf("saving item: %w", err)
	}
	f.log.Info("item added",
		logger.String("id", id),
		logger.String("name", d.Item.Name),
		logger.Bool("ai_generated", d.Item.AIGenerated))
	return id, nil
}

// Edit loads an item, applies patch and writes the full record back.
func (f *Flow) Edit(id string, patch func(*types.Item)) (*types.Item, error) {
	e, err := f.items.Get(id)
	if err != nil {
		return nil, err
	}
	it, ok := e.(*types.Item)
	if !ok {
		return nil, types.ErrInvalidData
	}
	patch(it)
	it.ItemID = id
	it.UpdatedAt = time.Now().UTC()
	if _, err := f.items.Set(id, it); err != nil {
		return nil, fmt.Errorf("saving item: %w", err)
	}
	return it, nil
}

// Delete removes the item record, then its images.
func (f *Flow) Delete(id string) error {
	if err := types.ValidateID(id); err != nil {
		return err
	}
	if err := f.items.Delete(id); err != nil {
		return err
	}
	if err := f.images.Remove(id); err != nil {
		f.log.Warn("item deleted but images remain", logger.String("id", id), logger.Error(err))
	}
	return nil
}

func (f *Flow) cleanup(id string) {
	if err := f.images.Remove(id); err != nil {
		f.log.Warn("could not remove images", logger.String("id", id), logger.Error(err))
	}
}
