package entities

import "time"

// Audit actions written by the game service.
const (
	ActionPlayerCreated    = "player_created"
	ActionInteraction      = "interaction"
	ActionMilestone        = "milestone_achieved"
	ActionPhotoUnlocked    = "photo_unlocked"
	ActionConflictStarted  = "conflict_started"
	ActionConflictResolved = "conflict_resolved"
	ActionStateImported    = "state_imported"
	ActionGameReset        = "game_reset"
)

// AuditEntry represents a logged action in the system.
type AuditEntry struct {
	ID          int64          `json:"id"`
	Action      string         `json:"action"`
	PlayerID    string         `json:"player_id"`
	CharacterID string         `json:"character_id,omitempty"`
	Details     map[string]any `json:"details,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}
