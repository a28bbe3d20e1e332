package config_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/chomp/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := config.Load("chomp", nil, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.TPS)
	assert.Equal(t, "classic", cfg.Level)
	assert.Equal(t, time.Second/60, cfg.Interval())

	lvl, err := cfg.LoadLevel()
	require.NoError(t, err)
	assert.Equal(t, "classic", lvl.Name)
}

func TestPrecedence(t *testing.T) {
	envFile := writeEnv(t, "CHOMP_TPS=30\nCHOMP_SCALE=2\nCHOMP_DB=file.db\n")
	t.Setenv("CHOMP_SCALE", "3")
	t.Setenv("CHOMP_MUTE", "true")

	cfg, err := config.Load("chomp", []string{"-db", "flag.db"}, envFile)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.TPS, ".env over default")
	assert.Equal(t, 3.0, cfg.Scale, "environment over .env")
	assert.Equal(t, "flag.db", cfg.DB, "flag over .env")
	assert.True(t, cfg.Mute)
}

func TestBadEnvironmentValue(t *testing.T) {
	t.Setenv("CHOMP_TPS", "fast")

	_, err := config.Load("chomp", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHOMP_TPS")
}

func TestValidate(t *testing.T) {
	_, err := config.Load("chomp", []string{"-tps", "0", "-record", "a", "-replay", "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tps must be positive")
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestUnknownFlag(t *testing.T) {
	_, err := config.Load("chomp", []string{"-nope"})
	assert.Error(t, err)
}

func TestLoadFlagsRegistersExtra(t *testing.T) {
	var dump bool
	cfg, err := config.LoadFlags("chomp-soak", []string{"-dump-level", "-frames", "10"}, func(flags *flag.FlagSet) {
		flags.BoolVar(&dump, "dump-level", false, "")
	})
	require.NoError(t, err)

	assert.True(t, dump)
	assert.Equal(t, 10, cfg.Frames)
}
