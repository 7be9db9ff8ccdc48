package devenv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	plain, err := ResolvePath("results.db")
	require.NoError(t, err)
	require.Equal(t, "results.db", plain)

	root, err := GetWorkspaceRoot()
	if err != nil {
		t.Skip("not running inside the workspace:", err)
	}

	resolved, err := ResolvePath("<dev_state>/resty/login")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "dev", ".state", "resty", "login"), resolved)
}
