package entities

import "time"

// Affection bounds.
const (
	MinAffection = 0
	MaxAffection = 100
)

// KnownInfo holds the progressive-disclosure flags of a companion.
// Flags only ever move from false to true.
type KnownInfo struct {
	Species           bool `json:"species"`
	Mood              bool `json:"mood"`
	Interests         bool `json:"interests"`
	ConversationStyle bool `json:"conversation_style"`
	Values            bool `json:"values"`
	Background        bool `json:"background"`
	Goals             bool `json:"goals"`
	Dealbreakers      bool `json:"dealbreakers"`
	FavoriteTopics    bool `json:"favorite_topics"`
	DeepPersonality   bool `json:"deep_personality"`
	SecretTraits      bool `json:"secret_traits"`
}

// Union returns the flag-wise OR of k and other.
func (k KnownInfo) Union(other KnownInfo) KnownInfo {
	return KnownInfo{
		Species:           k.Species || other.Species,
		Mood:              k.Mood || other.Mood,
		Interests:         k.Interests || other.Interests,
		ConversationStyle: k.ConversationStyle || other.ConversationStyle,
		Values:            k.Values || other.Values,
		Background:        k.Background || other.Background,
		Goals:             k.Goals || other.Goals,
		Dealbreakers:      k.Dealbreakers || other.Dealbreakers,
		FavoriteTopics:    k.FavoriteTopics || other.FavoriteTopics,
		DeepPersonality:   k.DeepPersonality || other.DeepPersonality,
		SecretTraits:      k.SecretTraits || other.SecretTraits,
	}
}

// Contains reports whether every flag set in other is also set in k.
func (k KnownInfo) Contains(other KnownInfo) bool {
	return k.Union(other) == k
}

// Revealed returns the names of the set flags in disclosure order.
func (k KnownInfo) Revealed() []string {
	flags := []struct {
		name string
		set  bool
	}{
		{"species", k.Species},
		{"mood", k.Mood},
		{"interests", k.Interests},
		{"conversation_style", k.ConversationStyle},
		{"values", k.Values},
		{"background", k.Background},
		{"goals", k.Goals},
		{"dealbreakers", k.Dealbreakers},
		{"favorite_topics", k.FavoriteTopics},
		{"deep_personality", k.DeepPersonality},
		{"secret_traits", k.SecretTraits},
	}
	names := make([]string, 0, len(flags))
	for _, f := range flags {
		if f.set {
			names = append(names, f.name)
		}
	}
	return names
}

// Milestone is a one-time affection-threshold achievement.
type Milestone struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	UnlockThreshold int        `json:"unlock_threshold"`
	Achieved        bool       `json:"achieved"`
	AchievedDate    *time.Time `json:"achieved_date,omitempty"`
}

// PhotoUnlock is a gallery photo gated by affection.
type PhotoUnlock struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	UnlockThreshold int        `json:"unlock_threshold"`
	Unlocked        bool       `json:"unlocked"`
	UnlockedDate    *time.Time `json:"unlocked_date,omitempty"`
}

// RelationshipRecord is the mutable state of the player's bond with one companion.
// Core functions treat it as a value: they return a new record and never
// modify the one they were given.
type RelationshipRecord struct {
	PlayerID            string        `json:"player_id"`
	CharacterID         string        `json:"character_id"`
	Affection           int           `json:"affection"`
	KnownInfo           KnownInfo     `json:"known_info"`
	Milestones          []Milestone   `json:"milestones"`
	PhotoUnlocks        []PhotoUnlock `json:"photo_unlocks"`
	LastInteractionDate *time.Time    `json:"last_interaction_date,omitempty"`
	ActiveConflict      *Conflict     `json:"active_conflict,omitempty"`
	InteractionCount    int           `json:"interaction_count"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// NewRelationshipRecord creates the initial record for a companion:
// zero affection, no flags, and the default milestone and photo tables.
func NewRelationshipRecord(playerID, characterID string, now time.Time) *RelationshipRecord {
	milestones := make([]Milestone, len(DefaultMilestones))
	copy(milestones, DefaultMilestones)
	photos := make([]PhotoUnlock, len(DefaultPhotoUnlocks))
	copy(photos, DefaultPhotoUnlocks)

	return &RelationshipRecord{
		PlayerID:     playerID,
		CharacterID:  characterID,
		Milestones:   milestones,
		PhotoUnlocks: photos,
		UpdatedAt:    now,
	}
}

// Clone returns a deep copy of the record.
func (r *RelationshipRecord) Clone() *RelationshipRecord {
	if r == nil {
		return nil
	}
	c := *r
	c.Milestones = make([]Milestone, len(r.Milestones))
	for i, m := range r.Milestones {
		m.AchievedDate = cloneTime(m.AchievedDate)
		c.Milestones[i] = m
	}
	c.PhotoUnlocks = make([]PhotoUnlock, len(r.PhotoUnlocks))
	for i, p := range r.PhotoUnlocks {
		p.UnlockedDate = cloneTime(p.UnlockedDate)
		c.PhotoUnlocks[i] = p
	}
	c.LastInteractionDate = cloneTime(r.LastInteractionDate)
	c.ActiveConflict = r.ActiveConflict.Clone()
	return &c
}

// AchievedMilestoneCount returns how many milestones have been achieved.
func (r *RelationshipRecord) AchievedMilestoneCount() int {
	n := 0
	for _, m := range r.Milestones {
		if m.Achieved {
			n++
		}
	}
	return n
}

// UnlockedPhotoCount returns how many photos have been unlocked.
func (r *RelationshipRecord) UnlockedPhotoCount() int {
	n := 0
	for _, p := range r.PhotoUnlocks {
		if p.Unlocked {
			n++
		}
	}
	return n
}

// HasActiveConflict reports whether an unresolved conflict is attached.
func (r *RelationshipRecord) HasActiveConflict() bool {
	return r.ActiveConflict != nil && !r.ActiveConflict.Resolved
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
