package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/starcrossed/internal/domain/entities"
	"github.com/ersonp/starcrossed/internal/domain/services"
)

func TestPlayerHandler_HandleCreate(t *testing.T) {
	tests := []struct {
		name    string
		input   CreatePlayerInput
		wantErr string
	}{
		{
			name:  "valid",
			input: CreatePlayerInput{Name: "Ash", Stats: "charisma=60", Traits: []string{"kind", "witty"}, Preference: "men"},
		},
		{
			name:    "bad stats",
			input:   CreatePlayerInput{Name: "Ash", Stats: "charisma", Preference: "men"},
			wantErr: "invalid stat",
		},
		{
			name:    "stat out of range",
			input:   CreatePlayerInput{Name: "Ash", Stats: "charisma=101", Preference: "men"},
			wantErr: "charisma",
		},
		{
			name:    "bad trait",
			input:   CreatePlayerInput{Name: "Ash", Traits: []string{"grumpy"}, Preference: "men"},
			wantErr: "invalid trait",
		},
		{
			name:    "bad preference",
			input:   CreatePlayerInput{Name: "Ash", Preference: "robots"},
			wantErr: "invalid preference",
		},
		{
			name:    "blank name",
			input:   CreatePlayerInput{Name: "  ", Preference: "everyone"},
			wantErr: "name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			h := NewPlayerHandler(f.game)

			player, err := h.HandleCreate(context.Background(), tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Empty(t, f.store.Players)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Ash", player.Name)
			assert.Equal(t, 60, player.Stats.Charisma)
			assert.Equal(t, entities.PreferenceMen, player.Preference)
			assert.Len(t, f.store.Records, len(entities.DefaultRoster))
		})
	}
}

func TestPlayerHandler_ListShowReset(t *testing.T) {
	f := newFixture(t)
	h := NewPlayerHandler(f.game)
	ctx := context.Background()
	player := f.createPlayer(t)

	players, err := h.HandleList(ctx)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, player.ID, players[0].ID)

	shown, err := h.HandleShow(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, player, shown)

	require.NoError(t, h.HandleReset(ctx, player.ID))

	_, err = h.HandleShow(ctx, player.ID)
	assert.ErrorIs(t, err, services.ErrPlayerNotFound)

	err = h.HandleReset(ctx, player.ID)
	assert.ErrorIs(t, err, services.ErrPlayerNotFound)
}
