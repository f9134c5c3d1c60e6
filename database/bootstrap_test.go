package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAndClose(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	assert.True(t, db.Migrator().HasTable("recommendations"))
	assert.True(t, db.Migrator().HasTable("water_plan_logs"))

	require.NoError(t, Close(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Error(t, sqlDB.Ping())
}
