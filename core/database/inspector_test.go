package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupInspectorDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Connect(Config{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE decks (id TEXT PRIMARY KEY, name TEXT, created_at DATETIME, updated_at DATETIME)").Error
	require.NoError(t, err)
	return db
}

func TestGetTableColumns(t *testing.T) {
	db := setupInspectorDB(t)

	columns, err := GetTableColumns(db, "decks")
	require.NoError(t, err)
	require.Len(t, columns, 4)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}

	assert.Equal(t, "text", colMap["id"])
	assert.Equal(t, "text", colMap["name"])
	assert.Equal(t, "datetime", colMap["created_at"])
	assert.Equal(t, "datetime", colMap["updated_at"])

	// PRAGMA table_info yields no rows for a missing table, not an error.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestVerifyColumns(t *testing.T) {
	db := setupInspectorDB(t)

	missing, err := VerifyColumns(db, "decks", []string{"id", "name", "created_at", "updated_at"})
	require.NoError(t, err)
	assert.Empty(t, missing)

	missing, err = VerifyColumns(db, "decks", []string{"id", "deleted_at"})
	require.NoError(t, err)
	assert.Equal(t, []string{"deleted_at"}, missing)
}
