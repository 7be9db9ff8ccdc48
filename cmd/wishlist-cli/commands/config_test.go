package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json5")
	err := os.WriteFile(path, []byte(`{
		// the site to scrape
		base_url: "http://localhost:8080",
		username: "a@b.com",
		timeout_seconds: 10,
		database: { file: "wishlist.db" },
	}`), 0666)
	require.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, "config.local.json5"), []byte(`{password: "secret"}`), 0666)
	require.NoError(t, err)

	config, err := readConfig(path)
	require.NoError(t, err)
	require.Equal(t, "a@b.com", config.Username)
	require.Equal(t, "secret", config.Password)
	require.Equal(t, "wishlist.db", config.Database.File)

	opts := config.ClientOptions()
	require.Equal(t, "http://localhost:8080", opts.BaseUrl)
	require.Equal(t, 10*time.Second, opts.Timeout)
}

func TestReadConfigDefaults(t *testing.T) {
	config, err := readConfig(filepath.Join(t.TempDir(), "config.json5"))
	require.NoError(t, err)
	require.Equal(t, defaultDatabaseFile, config.Database.File)
	require.Zero(t, config.ClientOptions().Timeout)

	dbPath = "override.db"
	defer func() { dbPath = "" }()
	config, err = readConfig(filepath.Join(t.TempDir(), "config.json5"))
	require.NoError(t, err)
	require.Equal(t, "override.db", config.Database.File)
}

func TestPromptCredentialsFromConfig(t *testing.T) {
	creds, err := promptCredentials{config: Config{Username: "a@b.com", Password: "secret"}}.Credentials(context.Background())
	require.NoError(t, err)
	require.Equal(t, "a@b.com", creds.Login)
	require.Equal(t, "secret", creds.Password)
}
