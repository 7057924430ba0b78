package handlers

import (
	"fmt"

	"github.com/ersonp/starcrossed/internal/domain/entities"
	"github.com/ersonp/starcrossed/internal/domain/services"
	"github.com/ersonp/starcrossed/internal/infrastructure/parsers"
)

// RosterHandler handles companion roster listing and validation.
type RosterHandler struct {
	roster *services.RosterService
}

// NewRosterHandler creates a new RosterHandler.
func NewRosterHandler(roster *services.RosterService) *RosterHandler {
	return &RosterHandler{roster: roster}
}

// CharacterSummary is what the player knows of a companion before meeting it.
type CharacterSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
}

// HandleList returns every companion on the roster.
func (h *RosterHandler) HandleList() []CharacterSummary {
	list := h.roster.List()
	result := make([]CharacterSummary, 0, len(list))
	for _, c := range list {
		result = append(result, CharacterSummary{ID: c.ID, Name: c.Name, Species: c.Species})
	}
	return result
}

// HandleCheck parses and validates a roster file without loading it.
func (h *RosterHandler) HandleCheck(path string) ([]entities.CharacterProfile, error) {
	profiles, err := parsers.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if _, err := services.NewRosterService(profiles); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return profiles, nil
}
