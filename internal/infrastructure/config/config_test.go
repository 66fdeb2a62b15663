package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "config.yaml"), []byte(`
aaa:
  host: 10.0.0.5
  username: admin
`), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("SUBCORE_AAA_PORT", "8443")
	t.Setenv("SUBCORE_AAA_PASSWORD", "from-env")

	cfg, err := Load("", "")
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.5", cfg.AAA.Host)
	assert.Equal(t, 8443, cfg.AAA.Port)
	assert.Equal(t, "from-env", cfg.AAA.Password)
	assert.Equal(t, "https", cfg.AAA.Scheme)
	assert.Equal(t, 5, cfg.AAA.TimeoutSeconds)
	assert.Equal(t, "rest", cfg.AAA.DisconnectMode)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 20, cfg.Provisioning.UsernameRetryLimit)
	assert.Equal(t, 120, cfg.Provisioning.CommandRateLimit)
}

func TestLoad_EnvOverridesServerMode(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "config.yaml"), []byte("server:\n  port: 9090\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("production", "")
	require.NoError(t, err)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoad_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("redis:\n  enabled: true\n  port: 6380\n"), 0o600))

	cfg, err := Load("staging", path)
	require.NoError(t, err)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6380", cfg.Redis.GetAddr())
	assert.Equal(t, "debug", cfg.Server.Mode)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"scheme", "aaa:\n  scheme: ftp\n"},
		{"disconnect mode", "aaa:\n  disconnect_mode: coa\n"},
		{"radius without secret", "aaa:\n  disconnect_mode: radius\n  radius_nas_addr: 10.0.0.9:3799\n"},
		{"retry limit", "provisioning:\n  username_retry_limit: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))

			_, err := Load("", path)
			assert.ErrorContains(t, err, "invalid config")
		})
	}
}
