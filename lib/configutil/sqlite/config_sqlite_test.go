package configsqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenDB(t *testing.T) {
	_, err := Struct{}.OpenDB()
	require.Error(t, err)

	db, err := Struct{File: filepath.Join(t.TempDir(), "nested", "results.db")}.OpenDB()
	require.NoError(t, err)
	defer db.Close()

	var enabled int
	err = db.QueryRow("PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	require.Equal(t, 1, enabled)
}
