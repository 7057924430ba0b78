package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/starcrossed/internal/domain/entities"
	"github.com/ersonp/starcrossed/internal/domain/services"
)

// ConflictHandler handles conflict inspection and resolution.
type ConflictHandler struct {
	game *services.GameService
}

// NewConflictHandler creates a new ConflictHandler.
func NewConflictHandler(game *services.GameService) *ConflictHandler {
	return &ConflictHandler{game: game}
}

// OptionView is a resolution option with the chance computed for the player.
type OptionView struct {
	ID              string                    `json:"id"`
	Approach        string                    `json:"approach"`
	Description     string                    `json:"description"`
	SuccessChance   int                       `json:"success_chance"`
	AffectionChange int                       `json:"affection_change"`
	Requirement     *entities.StatRequirement `json:"requirement,omitempty"`
}

// ConflictView is an active conflict as the player sees it.
type ConflictView struct {
	CharacterID string                `json:"character_id"`
	ID          string                `json:"id"`
	Type        entities.ConflictType `json:"type"`
	Severity    entities.Severity     `json:"severity"`
	Penalty     int                   `json:"penalty"`
	Description string                `json:"description"`
	Options     []OptionView          `json:"options"`
}

// ResolveView reports a resolution attempt.
type ResolveView struct {
	CharacterID   string                     `json:"character_id"`
	OptionID      string                     `json:"option_id"`
	SuccessChance int                        `json:"success_chance"`
	Roll          float64                    `json:"roll"`
	Success       bool                       `json:"success"`
	Recovery      int                        `json:"recovery"`
	Affection     int                        `json:"affection"`
	Level         entities.RelationshipLevel `json:"level"`
	NewMilestones []entities.Milestone       `json:"new_milestones,omitempty"`
	NewPhotos     []entities.PhotoUnlock     `json:"new_photos,omitempty"`
}

// HandleShow returns the active conflict with a companion.
func (h *ConflictHandler) HandleShow(ctx context.Context, playerID, characterID string) (*ConflictView, error) {
	player, err := h.game.Player(ctx, playerID)
	if err != nil {
		return nil, err
	}
	record, err := h.game.Record(ctx, playerID, characterID)
	if err != nil {
		return nil, err
	}
	if !record.HasActiveConflict() {
		return nil, fmt.Errorf("%w: %s", services.ErrNoActiveConflict, characterID)
	}
	return newConflictView(characterID, record.ActiveConflict, player.Stats), nil
}

// HandleStart forces a conflict of the given type.
func (h *ConflictHandler) HandleStart(ctx context.Context, playerID, characterID, conflictType string) (*ConflictView, error) {
	ct, err := parseConflictType(conflictType)
	if err != nil {
		return nil, err
	}
	player, err := h.game.Player(ctx, playerID)
	if err != nil {
		return nil, err
	}
	conflict, err := h.game.StartConflict(ctx, playerID, characterID, ct)
	if err != nil {
		return nil, err
	}
	return newConflictView(characterID, conflict, player.Stats), nil
}

// HandleResolve attempts to resolve the active conflict with the chosen option.
func (h *ConflictHandler) HandleResolve(ctx context.Context, playerID, characterID, optionID string) (*ResolveView, error) {
	result, err := h.game.ResolveConflict(ctx, playerID, characterID, optionID)
	if err != nil {
		return nil, err
	}
	out := result.Outcome
	return &ResolveView{
		CharacterID:   characterID,
		OptionID:      out.OptionID,
		SuccessChance: out.ActualSuccessChance,
		Roll:          out.Roll,
		Success:       out.Success,
		Recovery:      out.AffectionRecovery,
		Affection:     result.Ledger.Record.Affection,
		Level:         result.Ledger.Level,
		NewMilestones: result.Ledger.NewMilestones,
		NewPhotos:     result.Ledger.NewPhotos,
	}, nil
}

func newConflictView(characterID string, c *entities.Conflict, stats entities.Stats) *ConflictView {
	view := &ConflictView{
		CharacterID: characterID,
		ID:          c.ID,
		Type:        c.Type,
		Severity:    c.Severity,
		Penalty:     c.AffectionPenalty,
		Description: c.Description,
		Options:     make([]OptionView, 0, len(c.ResolutionOptions)),
	}
	for _, o := range c.ResolutionOptions {
		view.Options = append(view.Options, OptionView{
			ID:              o.ID,
			Approach:        o.Approach,
			Description:     o.Description,
			SuccessChance:   services.ActualSuccessChance(o, stats, c.Severity),
			AffectionChange: o.BaseAffectionChange,
			Requirement:     o.StatRequirement,
		})
	}
	return view
}
