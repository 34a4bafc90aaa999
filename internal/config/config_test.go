package config

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets the crumble variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"DB", "PROFILE", "LOG_LEVEL", "LOG_FORMAT", "TIMEZONE"} {
		key := Prefix + "_" + k
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, "", cfg.DB)
	assert.Equal(t, "default", cfg.Profile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "UTC", cfg.Location().String())
	assert.Equal(t, log.InfoLevel, cfg.Level())
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("CRUMBLE_DB", "/tmp/c.db")
	t.Setenv("CRUMBLE_PROFILE", "  alex ")
	t.Setenv("CRUMBLE_LOG_LEVEL", "debug")
	t.Setenv("CRUMBLE_LOG_FORMAT", "json")
	t.Setenv("CRUMBLE_TIMEZONE", "Asia/Kolkata")

	cfg, err := Load(noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/c.db", cfg.DB)
	assert.Equal(t, "alex", cfg.Profile)
	assert.Equal(t, log.DebugLevel, cfg.Level())
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "Asia/Kolkata", cfg.Location().String())
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CRUMBLE_LOG_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CRUMBLE_PROFILE=sam\nCRUMBLE_LOG_LEVEL=debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sam", cfg.Profile)
	assert.Equal(t, "warn", cfg.LogLevel, "environment wins over the file")
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"blank profile", map[string]string{"CRUMBLE_PROFILE": "   "}},
		{"bad level", map[string]string{"CRUMBLE_LOG_LEVEL": "loud"}},
		{"bad format", map[string]string{"CRUMBLE_LOG_FORMAT": "xml"}},
		{"bad zone", map[string]string{"CRUMBLE_TIMEZONE": "Mars/Olympus_Mons"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(noEnvFile(t))
			assert.Error(t, err)
		})
	}
}
