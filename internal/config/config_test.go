package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Test.Words)
	assert.Nil(t, cfg.Test.Pools)
	assert.Nil(t, cfg.Test.Tick)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[test]\nwords = 12\npools = \"pools.txt\"\ntick = \"250ms\"\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Test.Words)
	require.NotNil(t, cfg.Test.Pools)
	require.NotNil(t, cfg.Test.Tick)
	assert.Equal(t, 12, *cfg.Test.Words)
	assert.Equal(t, "pools.txt", *cfg.Test.Pools)
	assert.Equal(t, 250*time.Millisecond, *cfg.Test.Tick)
}

func TestLoadConfigRejectsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[test]\nlang = \"de\"\n"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test.lang")
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[test\nwords = "), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestDefaultPoolsPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	assert.Equal(t, "", DefaultPoolsPath(""))
	assert.Equal(t, "/abs/pools.txt", DefaultPoolsPath("/abs/pools.txt"))
	assert.Equal(t, filepath.Join("/cfg", "typespeed", "pools.txt"), DefaultPoolsPath("pools.txt"))
}

func TestXDGFallbacks(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("HOME", "/home/tester")
	assert.Equal(t, filepath.Join("/home/tester", ".config", "typespeed", "config.toml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/home/tester", ".local", "state", "typespeed", "typespeed.log"), DefaultLogPath())
}
