// Package ports defines interfaces for external service communication.
package ports

import (
	"context"

	"github.com/ersonp/starcrossed/internal/domain/entities"
)

// GameStore defines the interface for persisting game state.
// Implementations must store records field-for-field: a restored record
// carries the same flags, unlocks and dates it was saved with.
type GameStore interface {
	// EnsureSchema prepares the backing store.
	EnsureSchema(ctx context.Context) error

	// Close releases the underlying connection.
	Close() error

	// Player operations

	// SavePlayer saves or replaces a player profile.
	SavePlayer(ctx context.Context, player *entities.PlayerProfile) error

	// FindPlayer finds a player by ID. Returns nil if not found.
	FindPlayer(ctx context.Context, playerID string) (*entities.PlayerProfile, error)

	// ListPlayers lists all players ordered by creation time.
	ListPlayers(ctx context.Context) ([]entities.PlayerProfile, error)

	// DeletePlayer deletes a player and every record that belongs to it.
	DeletePlayer(ctx context.Context, playerID string) error

	// Relationship record operations

	// SaveRecord saves or replaces a relationship record.
	SaveRecord(ctx context.Context, record *entities.RelationshipRecord) error

	// FindRecord finds the record for a player and companion. Returns nil if not found.
	FindRecord(ctx context.Context, playerID, characterID string) (*entities.RelationshipRecord, error)

	// ListRecords lists a player's records ordered by character ID.
	ListRecords(ctx context.Context, playerID string) ([]entities.RelationshipRecord, error)

	// Audit operations

	// LogAction logs an action to the audit log.
	LogAction(ctx context.Context, action, playerID, characterID string, details map[string]any) error

	// FindAuditLog finds audit entries for a player and companion, newest first.
	FindAuditLog(ctx context.Context, playerID, characterID string, limit int) ([]entities.AuditEntry, error)

	// FindAuditLogByAction finds audit entries by action type, newest first.
	FindAuditLogByAction(ctx context.Context, action string, limit int) ([]entities.AuditEntry, error)
}
