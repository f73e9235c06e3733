package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"QUIZCRAFT_DB", "QUIZCRAFT_LOG_LEVEL", "QUIZCRAFT_LOG_FORMAT"} {
		t.Setenv(key, "") // restores the original value on cleanup
		require.NoError(t, os.Unsetenv(key))
	}
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "pretty", cfg.LogFormat)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("QUIZCRAFT_DB", "/tmp/q.db")
	t.Setenv("QUIZCRAFT_LOG_LEVEL", "debug")
	t.Setenv("QUIZCRAFT_LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/q.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestResolveDBPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "xdg"))

	tests := []struct {
		name     string
		cfg      Config
		override string
		want     string
	}{
		{"flag wins", Config{DBPath: filepath.Join(dir, "env", "q.db")}, filepath.Join(dir, "flag", "q.db"), filepath.Join(dir, "flag", "q.db")},
		{"env", Config{DBPath: filepath.Join(dir, "env", "q.db")}, "", filepath.Join(dir, "env", "q.db")},
		{"xdg default", Config{}, "", filepath.Join(dir, "xdg", "quizcraft", "quizcraft.db")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cfg.ResolveDBPath(tt.override)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			info, err := os.Stat(filepath.Dir(got))
			require.NoError(t, err)
			assert.True(t, info.IsDir())
		})
	}
}
