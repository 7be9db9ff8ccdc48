package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"
	"wishlist-scraper/lib/configutil"
	configsqlite "wishlist-scraper/lib/configutil/sqlite"
	"wishlist-scraper/lib/scrapers/siriust/core"
	"wishlist-scraper/services/wishlist/store"
)

const defaultDatabaseFile = "siriust_db.sqlite"

type Config struct {
	BaseUrl        string              `json:"base_url"`
	Username       string              `json:"username"`
	Password       string              `json:"password"`
	UserAgent      string              `json:"user_agent"`
	TimeoutSeconds int                 `json:"timeout_seconds"`
	Database       configsqlite.Struct `json:"database"`
}

func (c Config) ClientOptions() core.ClientOptions {
	return core.ClientOptions{
		BaseUrl:   c.BaseUrl,
		UserAgent: c.UserAgent,
		Timeout:   time.Duration(c.TimeoutSeconds) * time.Second,
	}
}

// readConfig reads `path` and its .local overlay, a missing config leaves
// every field at its default.
func readConfig(path string) (Config, error) {
	config, err := configutil.ReadConfig[Config](path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("no config found, using defaults", "path", path)
		err = nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if dbPath != "" {
		config.Database.File = dbPath
	}
	if config.Database.File == "" {
		config.Database.File = defaultDatabaseFile
	}
	return config, nil
}

// openStore opens the database named by the --db flag, the config or the
// default, in that order.
func openStore(config Config) (store.Store, func(), error) {
	database, err := config.Database.OpenDB()
	if err != nil {
		return store.Store{}, nil, fmt.Errorf("open database %s: %w", config.Database.File, err)
	}
	return store.New(database), func() { database.Close() }, nil
}
