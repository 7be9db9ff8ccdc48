package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupService(t *testing.T) {
	res, cleanup := SetupService(t, ServiceParams{
		Name:     "lib/testutil",
		DbSchema: "create table if not exists items (id integer primary key);",
	})
	defer cleanup()

	_, err := res.DB.Exec("insert into items (id) values (1)")
	require.NoError(t, err)

	var count int
	err = res.DB.QueryRow("select count(*) from items").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
