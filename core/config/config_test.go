package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "file", cfg.Ledger.Backend)
	assert.Equal(t, "stored_trade_items", cfg.Ledger.Key)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
	assert.False(t, cfg.Storage.UseSSL)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("LEDGER_BACKEND", "redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SERVER_PORT", "9999")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Ledger.Backend)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, "9999", cfg.Server.Port)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("LEDGER_KEY=guild_trades\nLOG_LEVEL=debug\n"), 0o600)
	require.NoError(t, err)
	t.Cleanup(func() {
		os.Unsetenv("LEDGER_KEY")
		os.Unsetenv("LOG_LEVEL")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "guild_trades", cfg.Ledger.Key)
	assert.Equal(t, "debug", cfg.Log.Level)
}
