package configsqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	devenv "wishlist-scraper/dev/env"

	_ "modernc.org/sqlite"
)

// pragmas are applied by the driver to every new connection.
var pragmas = []string{
	"foreign_keys(1)",
	"journal_mode(WAL)",
	"busy_timeout(5000)",
}

type Struct struct {
	File string `json:"file"`
}

func dsn(path string) string {
	query := ""
	for i, p := range pragmas {
		if i > 0 {
			query += "&"
		}
		query += "_pragma=" + p
	}
	return fmt.Sprintf("%s?%s", path, query)
}

func (config Struct) OpenDB() (*sql.DB, error) {
	if config.File == "" {
		return nil, fmt.Errorf("a database path was not specified")
	}
	dbpath, err := devenv.ResolvePath(config.File)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbpath)
	if dir != "." {
		err = os.MkdirAll(dir, 0777)
		if err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dsn(dbpath))
	if err != nil {
		return nil, err
	}
	// see this stackoverflow post for information on why the following
	// line exists: https://stackoverflow.com/questions/35804884/sqlite-concurrent-writing-performance
	db.SetMaxOpenConns(1)

	err = db.Ping()
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
