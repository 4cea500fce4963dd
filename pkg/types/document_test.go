package types

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentBytes(t *testing.T) {
	pdf := []byte("%PDF-1.4\n%fake\n")

	t.Run("round trip through SetBytes", func(t *testing.T) {
		d := &Document{}
		require.NoError(t, d.SetBytes(pdf))
		got, err := d.Bytes()
		require.NoError(t, err)
		assert.Equal(t, pdf, got)
	})

	t.Run("SetBytes rejects non-PDF", func(t *testing.T) {
		d := &Document{}
		assert.ErrorIs(t, d.SetBytes([]byte("GIF89a")), ErrInvalidContent)
		assert.Empty(t, d.Data)
	})

	t.Run("Bytes rejects bad base64", func(t *testing.T) {
		d := &Document{Data: "not base64!"}
		_, err := d.Bytes()
		assert.ErrorIs(t, err, ErrInvalidContent)
	})

	t.Run("Bytes rejects base64 of non-PDF", func(t *testing.T) {
		d := &Document{Data: base64.StdEncoding.EncodeToString([]byte("hello"))}
		_, err := d.Bytes()
		assert.ErrorIs(t, err, ErrInvalidContent)
	})
}
