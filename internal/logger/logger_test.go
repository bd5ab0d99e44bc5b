package logger_test

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logpkg "github.com/maxviazov/tournament-standings-service/internal/logger"
)

func TestNew(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	tests := []struct {
		name        string
		config      *logpkg.LoggerConfig
		expectError bool
		wantLevel   zerolog.Level
	}{
		{
			name: "production defaults to info",
			config: &logpkg.LoggerConfig{
				ServiceName: "test-service",
				Env:         "prod",
				Fields:      map[string]interface{}{"key": "value"},
			},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name:        "unknown env is rejected",
			config:      &logpkg.LoggerConfig{Env: "wrong-env", Level: "debug"},
			expectError: true,
		},
		{
			name:        "unknown level is rejected",
			config:      &logpkg.LoggerConfig{Env: "prod", Level: "invalid-level"},
			expectError: true,
		},
		{
			name:        "unknown time format is rejected",
			config:      &logpkg.LoggerConfig{Env: "prod", TimeFormat: "iso"},
			expectError: true,
		},
		{
			name: "staging warn to stderr",
			config: &logpkg.LoggerConfig{
				Env:          "staging",
				Level:        "warn",
				OutputTarget: "stderr",
				TimeFormat:   "unix",
			},
			wantLevel: zerolog.WarnLevel,
		},
		{
			name:      "dev info uses console only",
			config:    &logpkg.LoggerConfig{Env: "dev", Level: "info"},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name: "prod error with caller and fields",
			config: &logpkg.LoggerConfig{
				Env:        "prod",
				Level:      "error",
				WithCaller: true,
				Fields:     map[string]interface{}{"customField": "customValue"},
			},
			wantLevel: zerolog.ErrorLevel,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := logpkg.New(test.config)
			if test.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	cfg := &logpkg.LoggerConfig{}
	_, err := logpkg.New(cfg)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "ts", cfg.TimeField)
	assert.Equal(t, "tournament-standings-service", cfg.ServiceName)
	assert.True(t, cfg.Stacktrace)
	assert.NotNil(t, cfg.Fields)
}

func TestNew_DebugLogFile(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })
	t.Chdir(t.TempDir())

	_, err := logpkg.New(&logpkg.LoggerConfig{Env: "dev", Level: "debug"})
	require.NoError(t, err)

	_, statErr := os.Stat("logs/debug.log")
	assert.NoError(t, statErr)
}
