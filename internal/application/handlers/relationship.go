package handlers

import (
	"context"
	"sort"
	"time"

	"github.com/ersonp/starcrossed/internal/domain/entities"
	"github.com/ersonp/starcrossed/internal/domain/services"
)

// RelationshipHandler builds read-only views of a player's relationships.
type RelationshipHandler struct {
	game *services.GameService
	now  func() time.Time
}

// NewRelationshipHandler creates a new RelationshipHandler.
func NewRelationshipHandler(game *services.GameService) *RelationshipHandler {
	return &RelationshipHandler{game: game, now: time.Now}
}

// RevealedProfile is the part of a companion profile the player has unlocked.
// Locked fields are left empty.
type RevealedProfile struct {
	Name              string                     `json:"name"`
	Species           string                     `json:"species,omitempty"`
	Interests         []entities.Interest        `json:"interests,omitempty"`
	ConversationStyle entities.ConversationStyle `json:"conversation_style,omitempty"`
	Values            []entities.PersonalValue   `json:"values,omitempty"`
	Dealbreakers      []string                   `json:"dealbreakers,omitempty"`
	Revealed          []string                   `json:"revealed"`
}

// StatusView is the full state of one relationship.
type StatusView struct {
	CharacterID      string                     `json:"character_id"`
	Profile          RevealedProfile            `json:"profile"`
	Affection        int                        `json:"affection"`
	Level            entities.RelationshipLevel `json:"level"`
	LevelTitle       string                     `json:"level_title"`
	NextLevel        entities.RelationshipLevel `json:"next_level,omitempty"`
	NextThreshold    int                        `json:"next_threshold,omitempty"`
	Milestones       []entities.Milestone       `json:"milestones"`
	PhotosUnlocked   int                        `json:"photos_unlocked"`
	PhotosTotal      int                        `json:"photos_total"`
	InteractionCount int                        `json:"interaction_count"`
	CanInteract      bool                       `json:"can_interact"`
	ActiveConflict   *entities.Conflict         `json:"active_conflict,omitempty"`
}

// SummaryView is one row of the relationship overview.
type SummaryView struct {
	CharacterID    string `json:"character_id"`
	Name           string `json:"name"`
	Affection      int    `json:"affection"`
	LevelTitle     string `json:"level_title"`
	Milestones     int    `json:"milestones"`
	Photos         int    `json:"photos"`
	CanInteract    bool   `json:"can_interact"`
	ConflictActive bool   `json:"conflict_active"`
}

// GalleryView lists a companion's photos.
type GalleryView struct {
	CharacterID string                 `json:"character_id"`
	Name        string                 `json:"name"`
	Photos      []entities.PhotoUnlock `json:"photos"`
}

// CompatibilityView is a compatibility score for a named companion.
type CompatibilityView struct {
	CharacterID string                      `json:"character_id"`
	Name        string                      `json:"name"`
	Score       entities.CompatibilityScore `json:"score"`
}

// RevealProfile filters a companion profile down to the unlocked fields.
func RevealProfile(c *entities.CharacterProfile, known entities.KnownInfo) RevealedProfile {
	p := RevealedProfile{Name: c.Name, Revealed: known.Revealed()}
	if known.Species {
		p.Species = c.Species
	}
	if known.Interests {
		p.Interests = c.Interests
	}
	if known.ConversationStyle {
		p.ConversationStyle = c.ConversationStyle
	}
	if known.Values {
		p.Values = c.Values
	}
	if known.Dealbreakers {
		p.Dealbreakers = c.Dealbreakers
	}
	return p
}

// HandleStatus returns the state of the player's relationship with a companion.
func (h *RelationshipHandler) HandleStatus(ctx context.Context, playerID, characterID string) (*StatusView, error) {
	if _, err := h.game.Player(ctx, playerID); err != nil {
		return nil, err
	}
	character, err := h.game.Character(characterID)
	if err != nil {
		return nil, err
	}
	record, err := h.game.Record(ctx, playerID, characterID)
	if err != nil {
		return nil, err
	}

	level := services.ClassifyRelationship(record.Affection)
	view := &StatusView{
		CharacterID:      characterID,
		Profile:          RevealProfile(character, record.KnownInfo),
		Affection:        record.Affection,
		Level:            level,
		LevelTitle:       level.Title(),
		Milestones:       record.Milestones,
		PhotosUnlocked:   record.UnlockedPhotoCount(),
		PhotosTotal:      len(record.PhotoUnlocks),
		InteractionCount: record.InteractionCount,
		CanInteract:      services.CanInteractToday(record.LastInteractionDate, h.now()),
	}
	if next, threshold, ok := services.NextLevel(record.Affection); ok {
		view.NextLevel = next
		view.NextThreshold = threshold
	}
	if record.HasActiveConflict() {
		view.ActiveConflict = record.ActiveConflict
	}
	return view, nil
}

// HandleOverview summarizes the player's relationship with every companion.
func (h *RelationshipHandler) HandleOverview(ctx context.Context, playerID string) ([]SummaryView, error) {
	if _, err := h.game.Player(ctx, playerID); err != nil {
		return nil, err
	}
	records, err := h.game.Records(ctx, playerID)
	if err != nil {
		return nil, err
	}

	now := h.now()
	views := make([]SummaryView, 0, len(records))
	for i := range records {
		r := &records[i]
		name := r.CharacterID
		if c := h.game.Roster().Get(r.CharacterID); c != nil {
			name = c.Name
		}
		views = append(views, SummaryView{
			CharacterID:    r.CharacterID,
			Name:           name,
			Affection:      r.Affection,
			LevelTitle:     services.ClassifyRelationship(r.Affection).Title(),
			Milestones:     r.AchievedMilestoneCount(),
			Photos:         r.UnlockedPhotoCount(),
			CanInteract:    services.CanInteractToday(r.LastInteractionDate, now),
			ConflictActive: r.HasActiveConflict(),
		})
	}
	return views, nil
}

// HandleGallery returns a companion's photo gallery.
func (h *RelationshipHandler) HandleGallery(ctx context.Context, playerID, characterID string) (*GalleryView, error) {
	if _, err := h.game.Player(ctx, playerID); err != nil {
		return nil, err
	}
	character, err := h.game.Character(characterID)
	if err != nil {
		return nil, err
	}
	record, err := h.game.Record(ctx, playerID, characterID)
	if err != nil {
		return nil, err
	}
	return &GalleryView{
		CharacterID: characterID,
		Name:        character.Name,
		Photos:      record.PhotoUnlocks,
	}, nil
}

// HandleHistory returns the audit trail for a companion, or for every
// companion when characterID is empty.
func (h *RelationshipHandler) HandleHistory(ctx context.Context, playerID, characterID string, limit int) ([]entities.AuditEntry, error) {
	if _, err := h.game.Player(ctx, playerID); err != nil {
		return nil, err
	}
	if characterID != "" {
		if _, err := h.game.Character(characterID); err != nil {
			return nil, err
		}
	}
	return h.game.History(ctx, playerID, characterID, limit)
}

// HandleCompatibility scores the player against one companion, or against
// every companion (best match first) when characterID is empty.
func (h *RelationshipHandler) HandleCompatibility(ctx context.Context, playerID, characterID string) ([]CompatibilityView, error) {
	ids := []string{characterID}
	if characterID == "" {
		ids = h.game.Roster().IDs()
	}

	views := make([]CompatibilityView, 0, len(ids))
	for _, id := range ids {
		character, err := h.game.Character(id)
		if err != nil {
			return nil, err
		}
		score, err := h.game.Compatibility(ctx, playerID, id)
		if err != nil {
			return nil, err
		}
		views = append(views, CompatibilityView{CharacterID: id, Name: character.Name, Score: score})
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Score.Overall > views[j].Score.Overall
	})
	return views, nil
}
