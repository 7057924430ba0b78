package handlers

import (
	"context"

	"github.com/ersonp/starcrossed/internal/domain/entities"
	"github.com/ersonp/starcrossed/internal/domain/services"
)

// PlayerHandler handles player creation and management.
type PlayerHandler struct {
	game *services.GameService
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(game *services.GameService) *PlayerHandler {
	return &PlayerHandler{game: game}
}

// CreatePlayerInput holds the raw character creation choices.
type CreatePlayerInput struct {
	Name       string
	Stats      string // "charisma=60,intelligence=70,..."
	Traits     []string
	Preference string
}

// HandleCreate parses the input and creates a player.
func (h *PlayerHandler) HandleCreate(ctx context.Context, in CreatePlayerInput) (*entities.PlayerProfile, error) {
	stats, err := ParseStats(in.Stats)
	if err != nil {
		return nil, err
	}
	traits, err := parseTraits(in.Traits)
	if err != nil {
		return nil, err
	}
	pref, err := parsePreference(in.Preference)
	if err != nil {
		return nil, err
	}
	return h.game.CreatePlayer(ctx, in.Name, stats, traits, pref)
}

// HandleShow returns a player by ID.
func (h *PlayerHandler) HandleShow(ctx context.Context, playerID string) (*entities.PlayerProfile, error) {
	return h.game.Player(ctx, playerID)
}

// HandleList returns all players.
func (h *PlayerHandler) HandleList(ctx context.Context) ([]entities.PlayerProfile, error) {
	return h.game.Players(ctx)
}

// HandleReset deletes a player and all of its progress.
func (h *PlayerHandler) HandleReset(ctx context.Context, playerID string) error {
	return h.game.Reset(ctx, playerID)
}
