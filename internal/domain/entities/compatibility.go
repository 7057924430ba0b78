package entities

// CompatibilityBreakdown holds the per-dimension scores, each in [0,100].
type CompatibilityBreakdown struct {
	Interests         int `json:"interests"`
	Values            int `json:"values"`
	ConversationStyle int `json:"conversation_style"`
	Activities        int `json:"activities"`
}

// CompatibilityScore is derived from a player and a companion and never persisted.
type CompatibilityScore struct {
	Overall     int                    `json:"overall"`
	Breakdown   CompatibilityBreakdown `json:"breakdown"`
	Explanation []string               `json:"explanation"`
}

// NeutralCompatibility is the score substituted when a profile cannot be resolved.
func NeutralCompatibility() CompatibilityScore {
	return CompatibilityScore{
		Overall: 50,
		Breakdown: CompatibilityBreakdown{
			Interests:         50,
			Values:            50,
			ConversationStyle: 50,
			Activities:        50,
		},
		Explanation: []string{},
	}
}
