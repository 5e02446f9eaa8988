package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/dotconf/internal/config"
	"github.com/thoreinstein/dotconf/internal/logging"
	"github.com/thoreinstein/dotconf/internal/schema"
)

const testEnv = `# fixture
configValue1=test0
configValue2={"configKey0":"test0","configKey4":"test4"}
UNRELATED=keep
`

// testConfig declares the options used across command tests and points the
// store at dir/.env.
func testConfig(dir, format string) *config.Config {
	cfg := config.Default()
	cfg.EnvFile = filepath.Join(dir, ".env")
	cfg.Format = format
	cfg.Options = []schema.Declaration{
		{Name: "configValue1", Kind: "scalar", Description: "A scalar"},
		{Name: "configValue2", Kind: "map", Description: "A map"},
		{Name: "API_TOKEN", Kind: "scalar"},
	}
	return cfg
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	return logging.NewContext(t.Context(), logging.ForTest(t))
}

// openTestSession writes env (when not empty) to a fresh .env and opens a session on it.
func openTestSession(t *testing.T, env, format string) (*session, string) {
	t.Helper()
	dir := t.TempDir()
	if env != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))
	}
	s, err := newSession(testContext(t), testConfig(dir, format))
	require.NoError(t, err)
	return s, dir
}

func readEnv(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
