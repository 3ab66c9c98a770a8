package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations(t *testing.T) {
	names, err := Migrations()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"migrations/001_orders.sql",
		"migrations/002_slot_bookings.sql",
	}, names)

	for _, name := range names {
		data, err := migrationsFS.ReadFile(name)
		require.NoError(t, err)
		assert.Contains(t, string(data), "IF NOT EXISTS", name)
	}
}
