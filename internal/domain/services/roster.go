package services

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ersonp/starcrossed/internal/domain/entities"
)

// RosterService holds the validated companion content.
// Content is checked once at load time so lookups never meet a bad enum.
type RosterService struct {
	mu         sync.RWMutex
	characters map[string]*entities.CharacterProfile
	sortedIDs  []string
}

// NewRosterService creates a RosterService from the given profiles.
func NewRosterService(profiles []entities.CharacterProfile) (*RosterService, error) {
	s := &RosterService{}
	if err := s.Load(profiles); err != nil {
		return nil, err
	}
	return s, nil
}

// NewDefaultRosterService creates a RosterService with the built-in companions.
func NewDefaultRosterService() *RosterService {
	s, err := NewRosterService(entities.DefaultRoster)
	if err != nil {
		panic(fmt.Sprintf("default roster is invalid: %v", err))
	}
	return s
}

// Load validates profiles and replaces the current roster.
// On error the previous roster is kept.
func (s *RosterService) Load(profiles []entities.CharacterProfile) error {
	if len(profiles) == 0 {
		return errors.New("roster is empty")
	}

	characters := make(map[string]*entities.CharacterProfile, len(profiles))
	ids := make([]string, 0, len(profiles))
	for i := range profiles {
		p := profiles[i]
		if err := p.Validate(); err != nil {
			return fmt.Errorf("validating roster: %w", err)
		}
		if _, dup := characters[p.ID]; dup {
			return fmt.Errorf("validating roster: duplicate character id %q", p.ID)
		}
		characters[p.ID] = &p
		ids = append(ids, p.ID)
	}
	sort.Strings(ids)

	s.mu.Lock()
	s.characters = characters
	s.sortedIDs = ids
	s.mu.Unlock()
	return nil
}

// Get returns a companion by ID, or nil if not found.
func (s *RosterService) Get(id string) *entities.CharacterProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.characters[id]
}

// IDs returns the companion IDs in sorted order.
// The returned slice is shared and must not be modified by callers.
func (s *RosterService) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedIDs
}

// List returns every companion ordered by ID.
func (s *RosterService) List() []entities.CharacterProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]entities.CharacterProfile, 0, len(s.sortedIDs))
	for _, id := range s.sortedIDs {
		result = append(result, *s.characters[id])
	}
	return result
}
