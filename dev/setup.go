package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	devenv "wishlist-scraper/dev/env"
	configsqlite "wishlist-scraper/lib/configutil/sqlite"
	"wishlist-scraper/services/wishlist/store"

	"github.com/tcnksm/go-input"
)

const devDatabase = "<dev_state>/siriust_db.sqlite"

func CreateDevDB(ctx context.Context) error {
	database, err := configsqlite.Struct{File: devDatabase}.OpenDB()
	if err != nil {
		return err
	}
	defer database.Close()

	path, err := devenv.ResolvePath(devDatabase)
	if err != nil {
		return err
	}
	fmt.Println("creating database at", path)
	return store.New(database).CreateSchema(ctx)
}

type devConfig struct {
	BaseUrl  string              `json:"base_url"`
	Username string              `json:"username"`
	Password string              `json:"password"`
	Database configsqlite.Struct `json:"database"`
}

// WriteDevConfig asks for a test account and writes it to config.local.json5
// in the workspace root, it is skipped if the file already exists.
func WriteDevConfig() error {
	root, err := devenv.GetWorkspaceRoot()
	if err != nil {
		return err
	}
	path := filepath.Join(root, "config.local.json5")
	_, err = os.Stat(path)
	if err == nil {
		slog.Info("dev config has already been written", "path", path)
		return nil
	}

	ui := input.DefaultUI()
	baseUrl, err := ui.Ask("base url:", &input.Options{
		Default: "https://siriust.ru",
		Loop:    true,
	})
	if err != nil {
		return err
	}
	username, err := ui.Ask("username:", &input.Options{
		Required: true,
		Loop:     true,
	})
	if err != nil {
		return err
	}
	password, err := ui.Ask("password:", &input.Options{
		Required: true,
		Loop:     true,
		Mask:     true,
	})
	if err != nil {
		return err
	}

	config := devConfig{
		BaseUrl:  baseUrl,
		Username: username,
		Password: password,
		Database: configsqlite.Struct{File: devDatabase},
	}
	contents, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, contents, 0600)
}

func PrintConfigLocations() {
	slog.Info("run `go run ./cmd/wishlist-cli scrape` from the workspace root, credentials are read from config.local.json5.")
}
