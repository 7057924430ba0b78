package handlers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/starcrossed/internal/domain/entities"
	"github.com/ersonp/starcrossed/internal/domain/services"
)

func TestRosterHandler_HandleList(t *testing.T) {
	h := NewRosterHandler(services.NewDefaultRosterService())

	list := h.HandleList()
	require.Len(t, list, len(entities.DefaultRoster))
	for i, c := range list {
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Species)
		if i > 0 {
			assert.Less(t, list[i-1].ID, c.ID)
		}
	}
}

func TestRosterHandler_HandleCheck(t *testing.T) {
	h := NewRosterHandler(services.NewDefaultRosterService())
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	t.Run("valid yaml", func(t *testing.T) {
		path := write("roster.yaml", `
characters:
  - id: vega
    name: Vega
    species: Lyran
    conversation_style: poetic
    interests:
      - category: music
        intensity: 4
    values: [freedom]
    preferred_activities: [creative]
`)
		profiles, err := h.HandleCheck(path)
		require.NoError(t, err)
		require.Len(t, profiles, 1)
		assert.Equal(t, "Vega", profiles[0].Name)
	})

	t.Run("duplicate ids", func(t *testing.T) {
		path := write("dup.json", `[
			{"id":"a","name":"A","conversation_style":"direct"},
			{"id":"a","name":"B","conversation_style":"direct"}
		]`)
		_, err := h.HandleCheck(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate character id")
	})

	t.Run("invalid enum", func(t *testing.T) {
		path := write("bad.json", `[{"id":"a","name":"A","conversation_style":"mumbling"}]`)
		_, err := h.HandleCheck(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid conversation style")
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := h.HandleCheck(write("roster.txt", "vega"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported roster format")
	})
}
