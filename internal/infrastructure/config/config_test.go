package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeSlotName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple lowercase",
			input:    "ash",
			expected: "ash",
		},
		{
			name:     "uppercase converted",
			input:    "Ash",
			expected: "ash",
		},
		{
			name:     "spaces to underscores",
			input:    "new game",
			expected: "new_game",
		},
		{
			name:     "special characters removed",
			input:    "ash@home!",
			expected: "ashhome",
		},
		{
			name:     "consecutive underscores collapsed",
			input:    "run--two",
			expected: "run_two",
		},
		{
			name:     "empty string returns default",
			input:    "",
			expected: "default",
		},
		{
			name:     "complex mixed input",
			input:    "Second Run (Hard)",
			expected: "second_run_hard",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeSlotName(tt.input))
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, DefaultDatabaseFile, cfg.Storage.SQLite.Path)
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Addr)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, EventDeltas{Dialogue: 3, Gift: 5, Date: 8, Activity: 4}, cfg.Tuning.Events)
	assert.InDelta(t, 30.0, cfg.Tuning.Conflict.BaseChance, 1e-9)
	assert.NoError(t, cfg.Validate())
}

func TestConfigPaths(t *testing.T) {
	assert.Equal(t, "/home/user/game/.starcrossed", ConfigDir("/home/user/game"))
	assert.Equal(t, "/home/user/game/.starcrossed/config.yaml", ConfigFilePath("/home/user/game"))
	assert.Equal(t, "/home/user/game/.starcrossed/saves.yaml", SavesFilePath("/home/user/game"))

	cfg := Default()
	assert.Equal(t, "/home/user/game/.starcrossed/starcrossed.db", cfg.SQLitePath("/home/user/game"))
	cfg.Storage.SQLite.Path = "/var/lib/game.db"
	assert.Equal(t, "/var/lib/game.db", cfg.SQLitePath("/home/user/game"))

	assert.Empty(t, cfg.RosterPath("/home/user/game"))
	cfg.Roster.File = "roster.yaml"
	assert.Equal(t, "/home/user/game/.starcrossed/roster.yaml", cfg.RosterPath("/home/user/game"))
}

func TestLoad(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "starcrossed init")
	})

	t.Run("default file round trip", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, WriteDefault(dir))
		assert.True(t, Exists(dir))

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)

		assert.Error(t, WriteDefault(dir), "second write refuses to overwrite")
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "storage:\n  backend: redis\n  redis:\n    addr: cache:6379\n")

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, BackendRedis, cfg.Storage.Backend)
		assert.Equal(t, "cache:6379", cfg.Storage.Redis.Addr)
		assert.Equal(t, 8, cfg.Tuning.Events.Date)
	})

	t.Run("env overrides", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, WriteDefault(dir))
		t.Setenv("STARCROSSED_REDIS_ADDR", "redis.internal:6380")
		t.Setenv("STARCROSSED_REDIS_PASSWORD", "hunter2")
		t.Setenv("STARCROSSED_LOG_LEVEL", "debug")

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, "redis.internal:6380", cfg.Storage.Redis.Addr)
		assert.Equal(t, "hunter2", cfg.Storage.Redis.Password)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("unknown backend", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "storage:\n  backend: postgres\n")

		_, err := Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown storage backend")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "storage: [\n")

		_, err := Load(dir)
		assert.Error(t, err)
	})
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Tuning.Events.Gift = 9
	cfg.Roster.File = "custom.json"

	require.NoError(t, Write(dir, cfg))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSavesConfig(t *testing.T) {
	dir := t.TempDir()

	saves, err := LoadSaves(dir)
	require.NoError(t, err)
	assert.Empty(t, saves.Names())
	_, err = saves.Current()
	assert.Error(t, err)

	saves.Add("Main Run", SaveEntry{PlayerID: "p-1", PlayerName: "Ash"})
	saves.Add("alt", SaveEntry{PlayerID: "p-2", PlayerName: "Rook"})
	assert.Equal(t, "alt", saves.Active)
	require.NoError(t, saves.Save(dir))

	loaded, err := LoadSaves(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"alt", "main_run"}, loaded.Names())

	require.NoError(t, loaded.Use("main run"))
	current, err := loaded.Current()
	require.NoError(t, err)
	assert.Equal(t, "p-1", current.PlayerID)

	_, err = loaded.Get("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alt, main_run")

	loaded.Remove("main_run")
	assert.False(t, loaded.Exists("main_run"))
	assert.Empty(t, loaded.Active)
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(ConfigDir(dir), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(ConfigDir(dir), DefaultConfigFile), []byte(content), 0644))
}
