package handlers

import (
	"context"

	"github.com/ersonp/starcrossed/internal/domain/entities"
	"github.com/ersonp/starcrossed/internal/domain/services"
)

// InteractionHandler handles daily interactions with companions.
type InteractionHandler struct {
	game *services.GameService
}

// NewInteractionHandler creates a new InteractionHandler.
func NewInteractionHandler(game *services.GameService) *InteractionHandler {
	return &InteractionHandler{game: game}
}

// InteractView reports the effect of an interaction.
type InteractView struct {
	CharacterID       string                     `json:"character_id"`
	Kind              entities.InteractionKind   `json:"kind"`
	Delta             int                        `json:"delta"`
	PreviousAffection int                        `json:"previous_affection"`
	Affection         int                        `json:"affection"`
	Level             entities.RelationshipLevel `json:"level"`
	LevelChanged      bool                       `json:"level_changed"`
	NewMilestones     []entities.Milestone       `json:"new_milestones,omitempty"`
	NewPhotos         []entities.PhotoUnlock     `json:"new_photos,omitempty"`
	NewlyRevealed     []string                   `json:"newly_revealed,omitempty"`
	Conflict          *entities.Conflict         `json:"conflict,omitempty"`
}

// HandleInteract applies an interaction. A nil delta uses the default for kind.
func (h *InteractionHandler) HandleInteract(ctx context.Context, playerID, characterID, kind string, delta *int) (*InteractView, error) {
	k, err := parseKind(kind)
	if err != nil {
		return nil, err
	}

	var result *services.InteractResult
	if delta != nil {
		result, err = h.game.InteractDelta(ctx, playerID, characterID, k, *delta)
	} else {
		result, err = h.game.Interact(ctx, playerID, characterID, k)
	}
	if err != nil {
		return nil, err
	}

	ledger := result.Ledger
	return &InteractView{
		CharacterID:       characterID,
		Kind:              result.Kind,
		Delta:             result.Delta,
		PreviousAffection: ledger.PreviousAffection,
		Affection:         ledger.Record.Affection,
		Level:             ledger.Level,
		LevelChanged:      ledger.LevelChanged(),
		NewMilestones:     ledger.NewMilestones,
		NewPhotos:         ledger.NewPhotos,
		NewlyRevealed:     ledger.NewlyRevealedFields,
		Conflict:          result.Conflict,
	}, nil
}
