package commands

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/dotconf/internal/config"
	"github.com/thoreinstein/dotconf/internal/errors"
	"github.com/thoreinstein/dotconf/internal/logging"
)

func TestSetupLogging_VerbosityFlags(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		verbosity int
		wantLevel slog.Level
	}{
		{"default (0)", 0, slog.LevelWarn},
		{"verbose (1)", 1, slog.LevelInfo},
		{"debug (2)", 2, slog.LevelDebug},
		{"trace (3)", 3, logging.LevelTrace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = tt.verbosity
			require.NoError(t, setupLogging(rootCmd))

			logger := slog.Default()
			assert.True(t, logger.Enabled(t.Context(), tt.wantLevel))
			if tt.wantLevel > logging.LevelTrace {
				assert.False(t, logger.Enabled(t.Context(), tt.wantLevel-4))
			}
		})
	}
}

func TestSetupLogging_EnvVar(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		envVal    string
		wantLevel slog.Level
	}{
		{"DOTCONF_DEBUG=1", "1", slog.LevelDebug},
		{"DOTCONF_DEBUG=true", "true", slog.LevelDebug},
		{"DOTCONF_DEBUG=2", "2", logging.LevelTrace},
		{"DOTCONF_DEBUG=0", "0", slog.LevelWarn},
		{"DOTCONF_DEBUG=unknown", "foo", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = 0
			t.Setenv("DOTCONF_DEBUG", tt.envVal)

			require.NoError(t, setupLogging(rootCmd))

			logger := slog.Default()
			assert.True(t, logger.Enabled(t.Context(), tt.wantLevel))
			if tt.wantLevel == slog.LevelDebug {
				assert.False(t, logger.Enabled(t.Context(), logging.LevelTrace))
			}
		})
	}
}

func TestSetupLogging_FlagPrecedence(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	t.Setenv("DOTCONF_DEBUG", "2")
	verbosity = 1

	require.NoError(t, setupLogging(rootCmd))

	logger := slog.Default()
	assert.True(t, logger.Enabled(t.Context(), slog.LevelInfo))
	assert.False(t, logger.Enabled(t.Context(), slog.LevelDebug), "flag should override env var")
}

func TestSetupLogging_Quiet(t *testing.T) {
	origQuiet, origVerbosity := quiet, verbosity
	defer func() { quiet, verbosity = origQuiet, origVerbosity }()

	quiet = true
	verbosity = 0

	require.NoError(t, setupLogging(rootCmd))

	logger := slog.Default()
	assert.True(t, logger.Enabled(t.Context(), slog.LevelError))
	assert.False(t, logger.Enabled(t.Context(), slog.LevelWarn))
}

func TestSetupLogging_QuietMutualExclusion(t *testing.T) {
	origQuiet, origVerbosity := quiet, verbosity
	defer func() { quiet, verbosity = origQuiet, origVerbosity }()

	verbosity = 1
	quiet = true

	err := setupLogging(rootCmd)
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestSetupLogging_LogFile(t *testing.T) {
	origLogFile := logFile
	defer func() { logFile = origLogFile }()

	logFile = t.TempDir() + "/dotconf.log"
	require.NoError(t, setupLogging(rootCmd))
	assert.FileExists(t, logFile)
}

func TestCheckConfig(t *testing.T) {
	origCfg, origErr := loadedConfig, configLoadErr
	defer func() { loadedConfig, configLoadErr = origCfg, origErr }()

	loadedConfig, configLoadErr = config.Default(), nil
	assert.NoError(t, checkConfig(configureCmd, nil))

	loadedConfig.Version = 3
	err := checkConfig(configureCmd, nil)
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	assert.ErrorIs(t, err, config.ErrUnsupportedVersion)

	// version does not need a valid config
	assert.NoError(t, checkConfig(versionCmd, nil))

	configLoadErr = errors.New("broken yaml")
	err = checkConfig(showCmd, nil)
	require.Error(t, err)
	assert.NotEmpty(t, errors.Suggestion(err))
}
