// Package images normalizes uploaded scans and stores them under the data
// directory.
package images

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/mesh-intelligence/scratchbook/internal/paths"
	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

// Defaults applied when the configuration leaves them unset.
const (
	DefaultMaxDim  = 1600
	DefaultQuality = 85
)

// Sides of a ticket.
const (
	SideFront = "front"
	SideBack  = "back"
)

var (
	// ErrEmptyImage is returned for zero-length uploads.
	ErrEmptyImage = errors.New("image is empty")
	// ErrInvalidRef is returned for references that resolve outside the
	// images directory.
	ErrInvalidRef = errors.New("image reference outside images directory")
)

// Normalize decodes a PNG, JPEG or GIF, applies its EXIF orientation,
// downsizes it so neither side exceeds maxDim, and re-encodes it as JPEG.
func Normalize(data []byte, maxDim, quality int) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	if maxDim <= 0 {
		maxDim = DefaultMaxDim
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	b := img.Bounds()
	if b.Dx() > maxDim || b.Dy() > maxDim {
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encoding jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// Size returns the pixel dimensions of an encoded image.
func Size(data []byte) (int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("decoding image config: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// Store writes item images inside <dataDir>/images. References returned by
// Save are relative to dataDir so the data directory can move as a whole.
type Store struct {
	dataDir string
}

// NewStore returns a Store rooted at dataDir.
func NewStore(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

// Ref returns the relative reference for one side of an item.
func Ref(itemID, side string) string {
	return filepath.ToSlash(filepath.Join(paths.ImagesDirName, itemID+"-"+side+".jpg"))
}

// Save writes already normalized JPEG bytes and returns the reference.
func (s *Store) Save(itemID, side string, jpegData []byte) (string, error) {
	if len(jpegData) == 0 {
		return "", ErrEmptyImage
	}
	if err := types.ValidateID(itemID); err != nil {
		return "", err
	}
	ref := Ref(itemID, side)
	path, err := s.Path(ref)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(paths.ImagesDir(s.dataDir), 0o755); err != nil {
		return "", fmt.Errorf("creating images dir: %w", err)
	}
	if err := os.WriteFile(path, jpegData, 0o644); err != nil {
		return "", fmt.Errorf("writing image: %w", err)
	}
	return ref, nil
}

// Path resolves a reference to a file path. References that do not name a
// file directly inside the images directory yield ErrInvalidRef.
func (s *Store) Path(ref string) (string, error) {
	dir := paths.ImagesDir(s.dataDir)
	p := filepath.Join(s.dataDir, filepath.FromSlash(ref))
	if filepath.Dir(p) != filepath.Clean(dir) {
		return "", fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}
	return p, nil
}

// Read loads the bytes behind a reference.
func (s *Store) Read(ref string) ([]byte, error) {
	p, err := s.Path(ref)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(p)
}

// Remove deletes both sides of an item. Missing files are not an error.
func (s *Store) Remove(itemID string) error {
	if err := types.ValidateID(itemID); err != nil {
		return err
	}
	for _, side := range []string{SideFront, SideBack} {
		p, err := s.Path(Ref(itemID, side))
		if err != nil {
			return err
		}
		err = os.Remove(p)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("removing %s image: %w", side, err)
		}
	}
	return nil
}
