package entities

import "time"

// GameStateVersion is the snapshot format version written by export.
const GameStateVersion = 1

// GameState is the serializable snapshot of a player's whole game.
type GameState struct {
	Version int                  `json:"version"`
	Player  PlayerProfile        `json:"player"`
	Records []RelationshipRecord `json:"records"`
	SavedAt time.Time            `json:"saved_at"`
}

// InteractionKind is the player action that consumes the daily interaction.
type InteractionKind string

const (
	InteractionDialogue InteractionKind = "dialogue"
	InteractionGift     InteractionKind = "gift"
	InteractionDate     InteractionKind = "date"
	InteractionActivity InteractionKind = "activity"
)

// IsValid reports whether k is a known interaction kind.
func (k InteractionKind) IsValid() bool {
	switch k {
	case InteractionDialogue, InteractionGift, InteractionDate, InteractionActivity:
		return true
	default:
		return false
	}
}
