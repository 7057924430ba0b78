package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ersonp/starcrossed/internal/infrastructure/config"
)

func nopLogger() *zap.Logger {
	return zap.NewNop()
}

// execute runs the root command with args in the current directory.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	globalSlot = ""
	t.Cleanup(func() { globalSlot = "" })

	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func TestCLI_GameFlow(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, execute(t, "init"))
	require.Error(t, execute(t, "init"))

	require.NoError(t, execute(t, "player", "create", "Ash",
		"--stats", "charisma=60,empathy=55", "--trait", "curious", "--preference", "everyone"))
	require.Error(t, execute(t, "player", "create", "Ash"), "slot names are unique")

	saves, err := config.LoadSaves(dir)
	require.NoError(t, err)
	assert.Equal(t, "ash", saves.Active)

	require.NoError(t, execute(t, "interact", "zyx", "gift"))
	require.Error(t, execute(t, "interact", "zyx", "dialogue"), "one interaction per day")
	require.NoError(t, execute(t, "interact", "korrin", "dialogue", "--delta", "0"))
	require.Error(t, execute(t, "interact", "korrin", "gift"), "a zero delta still uses the day")
	require.NoError(t, execute(t, "status"))
	require.NoError(t, execute(t, "status", "zyx", "--format", "json"))
	require.NoError(t, execute(t, "compat"))
	require.NoError(t, execute(t, "gallery", "zyx"))
	require.NoError(t, execute(t, "history", "zyx"))

	require.NoError(t, execute(t, "conflict", "start", "luma", "jealousy"))
	require.NoError(t, execute(t, "conflict", "show", "luma"))
	require.NoError(t, execute(t, "conflict", "resolve", "luma", "give_space"))
	require.Error(t, execute(t, "conflict", "show", "luma"))
	require.NoError(t, execute(t, "history", "--action", "conflict_resolved", "--format", "json"))

	require.NoError(t, execute(t, "export", "--format", "csv", "--output", "overview.csv"))
	assert.FileExists(t, "overview.csv")

	require.NoError(t, execute(t, "save", "export", "--output", "ash.json"))
	require.NoError(t, execute(t, "reset", "--force"))

	saves, err = config.LoadSaves(dir)
	require.NoError(t, err)
	assert.Empty(t, saves.Slots)
	require.Error(t, execute(t, "status"))

	require.NoError(t, execute(t, "save", "import", "ash.json", "--slot-name", "restored"))
	require.NoError(t, execute(t, "--slot", "restored", "status", "zyx"))
}

func TestCLI_RequiresInit(t *testing.T) {
	t.Chdir(t.TempDir())

	err := execute(t, "roster")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run 'starcrossed init' first")
}
