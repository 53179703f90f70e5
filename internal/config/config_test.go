package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NotNil(t, cfg)

	assert.Equal(t, "cm", cfg.Unit)
	assert.Equal(t, "math", cfg.Angles)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "Moments of Inertia - Report", cfg.Report.Title)
	assert.Equal(t, 8.0, cfg.Diagram.Width)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr())
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goinertia.yaml")
	content := `unit: mm
angles: clockwise
log:
  level: debug
report:
  author: J. Doe
server:
  port: 9090
  shutdown_timeout: 3s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mm", cfg.Unit)
	assert.Equal(t, "clockwise", cfg.Angles)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "J. Doe", cfg.Report.Author)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoad_KeywordsIgnoreCase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goinertia.yaml")
	content := "angles: Clockwise\nlog:\n  level: DEBUG\n  format: JSON\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "clockwise", cfg.Angles)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	cfg = Default()
	cfg.Angles = "CLOCKWISE"
	assert.NoError(t, cfg.Validate())
}

func TestLoad_DefaultsMatchDefault(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goinertia.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"unit": "mm"}`), 0o644))

	t.Setenv("GOINERTIA_UNIT", "in")
	t.Setenv("GOINERTIA_SERVER_PORT", "7000")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "in", cfg.Unit)
	assert.Equal(t, 7000, cfg.Server.Port)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("angles: sideways\n"), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "angles")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"log level", func(c *Config) { c.Log.Level = "loud" }},
		{"log format", func(c *Config) { c.Log.Format = "xml" }},
		{"port", func(c *Config) { c.Server.Port = 0 }},
		{"diagram", func(c *Config) { c.Diagram.Height = -1 }},
		{"unit", func(c *Config) { c.Unit = " " }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
