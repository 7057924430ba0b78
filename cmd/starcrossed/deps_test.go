package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/starcrossed/internal/domain/entities"
	"github.com/ersonp/starcrossed/internal/infrastructure/config"
)

func TestResolveSlot(t *testing.T) {
	saves := &config.SavesConfig{}
	saves.Add("first", config.SaveEntry{PlayerID: "p-1", PlayerName: "Ash"})
	saves.Add("second", config.SaveEntry{PlayerID: "p-2", PlayerName: "Rin"})

	t.Run("active slot", func(t *testing.T) {
		entry, err := resolveSlot(saves)
		require.NoError(t, err)
		assert.Equal(t, "p-2", entry.PlayerID)
	})

	t.Run("slot flag wins", func(t *testing.T) {
		globalSlot = "first"
		t.Cleanup(func() { globalSlot = "" })

		entry, err := resolveSlot(saves)
		require.NoError(t, err)
		assert.Equal(t, "p-1", entry.PlayerID)
	})

	t.Run("no active slot", func(t *testing.T) {
		_, err := resolveSlot(&config.SavesConfig{})
		require.Error(t, err)
	})
}

func TestLoadRoster(t *testing.T) {
	dir := t.TempDir()

	t.Run("built-in companions", func(t *testing.T) {
		roster, err := loadRoster(config.Default(), dir)
		require.NoError(t, err)
		assert.Len(t, roster.IDs(), len(entities.DefaultRoster))
	})

	t.Run("roster file", func(t *testing.T) {
		require.NoError(t, os.MkdirAll(config.ConfigDir(dir), 0755))
		content := `[{"id":"vega","name":"Vega","species":"Lyran","conversation_style":"poetic"}]`
		require.NoError(t, os.WriteFile(filepath.Join(config.ConfigDir(dir), "roster.json"), []byte(content), 0644))

		cfg := config.Default()
		cfg.Roster.File = "roster.json"
		roster, err := loadRoster(cfg, dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"vega"}, roster.IDs())
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := config.Default()
		cfg.Roster.File = "nope.yaml"
		_, err := loadRoster(cfg, dir)
		require.Error(t, err)
	})
}

func TestOpenStore(t *testing.T) {
	t.Run("sqlite", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(config.ConfigDir(dir), 0755))

		store, err := openStore(config.Default(), dir, nopLogger())
		require.NoError(t, err)
		defer store.Close()
		require.NoError(t, store.EnsureSchema(context.Background()))
		assert.FileExists(t, filepath.Join(config.ConfigDir(dir), config.DefaultDatabaseFile))
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := config.Default()
		cfg.Storage.Backend = "postgres"
		_, err := openStore(cfg, t.TempDir(), nopLogger())
		require.Error(t, err)
	})
}
