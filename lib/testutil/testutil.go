package testutil

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	configsqlite "wishlist-scraper/lib/configutil/sqlite"
	"wishlist-scraper/lib/telemetry"
)

type ServiceParams struct {
	Name string
	// if unspecified, it will skip setting up a db
	DbSchema string
	// if unspecified, it will use a file in a temporary directory
	DbPath string
}

type ServiceResult struct {
	DB *sql.DB
}

// SetupService sets up telemetry and a sqlite database with foreign keys
// enabled for a test. The returned function must be called at the end of the
// test.
func SetupService(t testing.TB, params ServiceParams) (ServiceResult, func()) {
	cleanupTelemetry := telemetry.SetupForTesting(t, fmt.Sprintf("test:%s", params.Name))

	dbpath := params.DbPath
	if dbpath == "" {
		dbpath = filepath.Join(t.TempDir(), "test.db")
	}
	database, err := configsqlite.Struct{File: dbpath}.OpenDB()
	if err != nil {
		t.Fatal(err)
	}
	if params.DbSchema != "" {
		_, err = database.Exec(params.DbSchema)
		if err != nil {
			t.Fatal(err)
		}
	}

	return ServiceResult{DB: database}, func() {
		database.Close()
		cleanupTelemetry()
	}
}
