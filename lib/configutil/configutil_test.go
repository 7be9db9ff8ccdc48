package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseUrl  string `json:"base_url"`
	Username string `json:"username"`
	Password string `json:"password"`
	Timeout  int    `json:"timeout_seconds"`
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json5")

	_, err := ReadConfig[testConfig](path)
	require.ErrorIs(t, err, os.ErrNotExist)

	err = os.WriteFile(path, []byte(`{
		// comments are allowed
		base_url: "https://siriust.ru",
		timeout_seconds: 30,
	}`), 0600)
	require.NoError(t, err)

	cfg, err := ReadConfig[testConfig](path)
	require.NoError(t, err)
	require.Equal(t, testConfig{BaseUrl: "https://siriust.ru", Timeout: 30}, cfg)

	err = os.WriteFile(filepath.Join(dir, "config.local.json5"), []byte(`{
		username: "a@b.com",
		password: "secret",
	}`), 0600)
	require.NoError(t, err)

	cfg, err = ReadConfig[testConfig](path)
	require.NoError(t, err)
	require.Equal(t, testConfig{
		BaseUrl:  "https://siriust.ru",
		Username: "a@b.com",
		Password: "secret",
		Timeout:  30,
	}, cfg)
}

func TestReadConfigOnlyLocal(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "config.local.json5"), []byte(`{username: "x"}`), 0600)
	require.NoError(t, err)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	require.Equal(t, "x", cfg.Username)
}

func TestLocalName(t *testing.T) {
	require.Equal(t, "dir/config.local.json5", localName("dir/config.json5"))
	require.Equal(t, "telemetry.local.json5", localName("telemetry.json5"))
}
