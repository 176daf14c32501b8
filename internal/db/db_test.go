package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nerd/internal/model"
)

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open("postgres", "", "")
	assert.Error(t, err)
}

func TestMigrateAndReset(t *testing.T) {
	gormDB, err := NewSQLite(":memory:")
	require.NoError(t, err)

	require.NoError(t, Migrate(gormDB))
	for _, m := range Models {
		assert.True(t, gormDB.Migrator().HasTable(m))
	}
	assert.True(t, gormDB.Migrator().HasTable("admins"))

	require.NoError(t, Reset(gormDB))
	assert.False(t, gormDB.Migrator().HasTable(&model.Material{}))
}
