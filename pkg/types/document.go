package types

import (
	"bytes"
	"encoding/base64"
	"time"
)

// pdfMagic is the header every PDF file starts with.
var pdfMagic = []byte("%PDF-")

// Document is an uploaded PDF (catalog sheets, printer leaflets, ...).
type Document struct {
	DocumentID string    `json:"id"`
	Title      string    `json:"title"`
	FileName   string    `json:"file_name"`
	Data       string    `json:"data"` // base64-encoded PDF bytes
	CreatedAt  time.Time `json:"created_at"`
}

// Bytes decodes Data. Returns ErrInvalidContent when Data is not base64 or
// does not hold a PDF.
func (d *Document) Bytes() ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(d.Data)
	if err != nil {
		return nil, ErrInvalidContent
	}
	if !bytes.HasPrefix(raw, pdfMagic) {
		return nil, ErrInvalidContent
	}
	return raw, nil
}

// SetBytes encodes raw PDF bytes into Data.
func (d *Document) SetBytes(raw []byte) error {
	if !bytes.HasPrefix(raw, pdfMagic) {
		return ErrInvalidContent
	}
	d.Data = base64.StdEncoding.EncodeToString(raw)
	return nil
}
