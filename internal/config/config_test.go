package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"DB", "TIMEZONE", "SET_SIZE", "REGISTRY", "BANK", "LOG_LEVEL", "LOG_FILE"} {
		t.Setenv(EnvPrefix+"_"+k, "")
		os.Unsetenv(EnvPrefix + "_" + k)
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, DefaultSetSize, cfg.SetSize)
	assert.Equal(t, "", cfg.DB)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
	assert.Equal(t, 3, cfg.Log.MaxBackups)
	assert.Equal(t, 28, cfg.Log.MaxAgeDays)
}

func TestLoad_FileThenEnvThenFlags(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "quizmastery.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
timezone: America/Chicago
set_size: 20
bank: /srv/bank
log:
  level: info
  file: /tmp/qm.log
`), 0o644))

	t.Setenv("QUIZMASTERY_SET_SIZE", "15")
	t.Setenv("QUIZMASTERY_LOG_LEVEL", "debug")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("timezone", "", "")
	flags.String("bank", "", "")
	flags.Int("size", 0, "")
	require.NoError(t, flags.Parse([]string{"--bank", "/tmp/other"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "America/Chicago", cfg.Timezone, "file value, flag not set")
	assert.Equal(t, 15, cfg.SetSize, "env beats file")
	assert.Equal(t, "/tmp/other", cfg.Bank, "flag beats file")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/qm.log", cfg.Log.File)
}

func TestLoad_DefaultFileInWorkingDir(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile("config.yaml", []byte("registry: chapters.json\n"), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "chapters.json", cfg.Registry)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_InvalidSetSize(t *testing.T) {
	clearEnv(t)
	t.Setenv("QUIZMASTERY_SET_SIZE", "0")
	_, err := Load("", nil)
	assert.Error(t, err)
}
