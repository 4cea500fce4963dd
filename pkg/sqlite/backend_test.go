package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

func TestNewBackend(t *testing.T) {
	c := NewBackend()
	require.NoError(t, c.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}))
	defer c.Detach()

	for _, name := range types.StandardTableNames {
		_, err := c.GetTable(name)
		assert.NoError(t, err, name)
	}
	_, err := c.GetTable("tickets")
	assert.ErrorIs(t, err, types.ErrTableNotFound)
	assert.Positive(t, SchemaVersion)
}
