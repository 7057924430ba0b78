package entities

import "time"

// ConflictType categorizes a relationship conflict.
type ConflictType string

const (
	ConflictMisunderstanding  ConflictType = "misunderstanding"
	ConflictJealousy          ConflictType = "jealousy"
	ConflictForgottenPromise  ConflictType = "forgotten_promise"
	ConflictCulturalClash     ConflictType = "cultural_clash"
	ConflictValueDisagreement ConflictType = "value_disagreement"
)

// Severity is how serious a conflict is.
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeverityMajor    Severity = "major"
	SeverityCritical Severity = "critical"
)

// Modifier returns the success-chance multiplier for the severity.
// Unknown severities behave as moderate.
func (s Severity) Modifier() float64 {
	switch s {
	case SeverityMinor:
		return 1.1
	case SeverityMajor:
		return 0.85
	case SeverityCritical:
		return 0.7
	default:
		return 1.0
	}
}

// StatRequirement gates the stat bonus of a resolution option.
type StatRequirement struct {
	Stat     Stat `json:"stat"`
	MinValue int  `json:"min_value"`
}

// ResolutionOption is one way the player can try to resolve a conflict.
type ResolutionOption struct {
	ID                  string           `json:"id"`
	Approach            string           `json:"approach"`
	Description         string           `json:"description"`
	BaseSuccessChance   int              `json:"base_success_chance"`
	BaseAffectionChange int              `json:"base_affection_change"`
	StatRequirement     *StatRequirement `json:"stat_requirement,omitempty"`
}

// Conflict is a transient negative event that needs a player-chosen resolution.
// A resolved conflict is terminal; a later conflict is a new instance.
type Conflict struct {
	ID                string             `json:"id"`
	Type              ConflictType       `json:"type"`
	Severity          Severity           `json:"severity"`
	AffectionPenalty  int                `json:"affection_penalty"`
	Description       string             `json:"description"`
	ResolutionOptions []ResolutionOption `json:"resolution_options"`
	Resolved          bool               `json:"resolved"`
	CreatedAt         time.Time          `json:"created_at"`
	ResolvedAt        *time.Time         `json:"resolved_at,omitempty"`
}

// Clone returns a deep copy of the conflict.
func (c *Conflict) Clone() *Conflict {
	if c == nil {
		return nil
	}
	cp := *c
	cp.ResolutionOptions = make([]ResolutionOption, len(c.ResolutionOptions))
	for i, o := range c.ResolutionOptions {
		if o.StatRequirement != nil {
			req := *o.StatRequirement
			o.StatRequirement = &req
		}
		cp.ResolutionOptions[i] = o
	}
	cp.ResolvedAt = cloneTime(c.ResolvedAt)
	return &cp
}

// Option returns the resolution option with the given ID, or nil.
func (c *Conflict) Option(id string) *ResolutionOption {
	for i := range c.ResolutionOptions {
		if c.ResolutionOptions[i].ID == id {
			return &c.ResolutionOptions[i]
		}
	}
	return nil
}

// ConflictTemplate describes a conflict that can be instantiated.
type ConflictTemplate struct {
	Type             ConflictType
	Severity         Severity
	AffectionPenalty int
	Description      string
	Options          []ResolutionOption
}
