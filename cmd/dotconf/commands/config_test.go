package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/dotconf/internal/config"
	"github.com/thoreinstein/dotconf/internal/errors"
)

func TestConfigList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runConfigListWithWriter(&buf, config.Example()))

	out := buf.String()
	assert.Contains(t, out, "version: 1\n")
	assert.Contains(t, out, "env_file: .env\n")
	assert.Contains(t, out, "name: FEATURES")
}

func TestConfigPath(t *testing.T) {
	cfg := testConfig("/work", "alfred")

	var buf bytes.Buffer
	require.NoError(t, runConfigPathWithWriter(&buf, cfg, ""))

	out := buf.String()
	assert.Contains(t, out, "(none, using defaults)")
	assert.Contains(t, out, "env:     "+filepath.Join("/work", ".env"))
	assert.Contains(t, out, "pending: "+filepath.Join("/work", ".env.new"))
}

func TestConfigInit(t *testing.T) {
	origForce := configInitForce
	defer func() { configInitForce = origForce }()
	configInitForce = false

	path := filepath.Join(t.TempDir(), "config.yaml")

	var buf bytes.Buffer
	configInitCmd.SetOut(&buf)
	t.Cleanup(func() { configInitCmd.SetOut(nil) })

	require.NoError(t, runConfigInit(configInitCmd, []string{path}))
	assert.Contains(t, buf.String(), "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "APP_ENV")

	err = runConfigInit(configInitCmd, []string{path})
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	assert.Contains(t, errors.Suggestion(err), "--force")
}
