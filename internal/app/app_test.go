package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/marquee/internal/readstate"
)

func writeTestConfig(t *testing.T, dataDir string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "data_dir = \"" + filepath.ToSlash(dataDir) + "\"\napi_base = \"http://127.0.0.1:1\"\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestBootstrap_OpensLogAndDatabase(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dataDir := t.TempDir()
	ctx := context.Background()

	env, err := Bootstrap(ctx, Options{ConfigPath: writeTestConfig(t, dataDir), Version: "test"})
	require.NoError(t, err)

	_, isStore := env.Reads.(*readstate.Store)
	assert.True(t, isStore, "expected persistent read-state")
	assert.False(t, env.Client.NotificationsEnabled())

	env.Logger.Info("hello")
	require.NoError(t, env.Close())

	data, err := os.ReadFile(filepath.Join(dataDir, "marquee.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
	assert.FileExists(t, filepath.Join(dataDir, "marquee.db"))
}

func TestBootstrap_FallsBackToMemoryWhenLocked(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dataDir := t.TempDir()
	ctx := context.Background()
	cfgPath := writeTestConfig(t, dataDir)

	first, err := Bootstrap(ctx, Options{ConfigPath: cfgPath})
	require.NoError(t, err)
	defer first.Close()

	second, err := Bootstrap(ctx, Options{ConfigPath: cfgPath})
	require.NoError(t, err)
	defer second.Close()

	_, isMemory := second.Reads.(*readstate.Memory)
	assert.True(t, isMemory, "second instance should use in-memory read marks")
}

func TestBootstrap_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[banner]\npause_for = \"1s\"\n"), 0o600))

	_, err := Bootstrap(context.Background(), Options{ConfigPath: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
