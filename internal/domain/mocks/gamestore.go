// Package mocks provides in-memory implementations of the domain ports for tests.
package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/ersonp/starcrossed/internal/domain/entities"
)

// GameStore is a mock implementation of ports.GameStore.
type GameStore struct {
	Players map[string]*entities.PlayerProfile
	Records map[string]*entities.RelationshipRecord
	Audit   []entities.AuditEntry
	Err     error

	// AuditErr fails only LogAction.
	AuditErr error
}

// NewGameStore creates a new mock GameStore.
func NewGameStore() *GameStore {
	return &GameStore{
		Players: make(map[string]*entities.PlayerProfile),
		Records: make(map[string]*entities.RelationshipRecord),
	}
}

func recordKey(playerID, characterID string) string {
	return playerID + "/" + characterID
}

// EnsureSchema creates the database schema if it doesn't exist.
func (m *GameStore) EnsureSchema(_ context.Context) error {
	return m.Err
}

// Close closes the database connection.
func (m *GameStore) Close() error {
	return nil
}

// SavePlayer saves or replaces a player profile.
func (m *GameStore) SavePlayer(_ context.Context, player *entities.PlayerProfile) error {
	if m.Err != nil {
		return m.Err
	}
	p := *player
	p.Traits = append([]entities.Trait(nil), player.Traits...)
	m.Players[p.ID] = &p
	return nil
}

// FindPlayer finds a player by ID.
func (m *GameStore) FindPlayer(_ context.Context, playerID string) (*entities.PlayerProfile, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	p, ok := m.Players[playerID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

// ListPlayers lists all players ordered by creation time.
func (m *GameStore) ListPlayers(_ context.Context) ([]entities.PlayerProfile, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	result := make([]entities.PlayerProfile, 0, len(m.Players))
	for _, p := range m.Players {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// DeletePlayer deletes a player and its records.
func (m *GameStore) DeletePlayer(_ context.Context, playerID string) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Players, playerID)
	for key, r := range m.Records {
		if r.PlayerID == playerID {
			delete(m.Records, key)
		}
	}
	return nil
}

// SaveRecord saves or replaces a relationship record.
func (m *GameStore) SaveRecord(_ context.Context, record *entities.RelationshipRecord) error {
	if m.Err != nil {
		return m.Err
	}
	m.Records[recordKey(record.PlayerID, record.CharacterID)] = record.Clone()
	return nil
}

// FindRecord finds the record for a player and companion.
func (m *GameStore) FindRecord(_ context.Context, playerID, characterID string) (*entities.RelationshipRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	r, ok := m.Records[recordKey(playerID, characterID)]
	if !ok {
		return nil, nil
	}
	return r.Clone(), nil
}

// ListRecords lists a player's records ordered by character ID.
func (m *GameStore) ListRecords(_ context.Context, playerID string) ([]entities.RelationshipRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var result []entities.RelationshipRecord
	for _, r := range m.Records {
		if r.PlayerID == playerID {
			result = append(result, *r.Clone())
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CharacterID < result[j].CharacterID
	})
	return result, nil
}

// LogAction appends an entry to the in-memory audit log.
func (m *GameStore) LogAction(_ context.Context, action, playerID, characterID string, details map[string]any) error {
	if m.Err != nil {
		return m.Err
	}
	if m.AuditErr != nil {
		return m.AuditErr
	}
	m.Audit = append(m.Audit, entities.AuditEntry{
		ID:          int64(len(m.Audit) + 1),
		Action:      action,
		PlayerID:    playerID,
		CharacterID: characterID,
		Details:     details,
		CreatedAt:   time.Now(),
	})
	return nil
}

// FindAuditLog finds audit entries for a player, newest first.
// An empty characterID matches every companion.
func (m *GameStore) FindAuditLog(_ context.Context, playerID, characterID string, limit int) ([]entities.AuditEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.filter(limit, func(e entities.AuditEntry) bool {
		return e.PlayerID == playerID && (characterID == "" || e.CharacterID == characterID)
	}), nil
}

// FindAuditLogByAction finds audit entries by action type, newest first.
func (m *GameStore) FindAuditLogByAction(_ context.Context, action string, limit int) ([]entities.AuditEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.filter(limit, func(e entities.AuditEntry) bool {
		return e.Action == action
	}), nil
}

// Actions returns the action names logged so far, oldest first.
func (m *GameStore) Actions() []string {
	result := make([]string, 0, len(m.Audit))
	for _, e := range m.Audit {
		result = append(result, e.Action)
	}
	return result
}

func (m *GameStore) filter(limit int, keep func(entities.AuditEntry) bool) []entities.AuditEntry {
	var result []entities.AuditEntry
	for i := len(m.Audit) - 1; i >= 0; i-- {
		if !keep(m.Audit[i]) {
			continue
		}
		result = append(result, m.Audit[i])
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result
}
