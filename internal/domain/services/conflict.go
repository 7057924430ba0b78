package services

import (
	"time"

	"github.com/ersonp/starcrossed/internal/domain/entities"
)

// Resolution tuning.
const (
	maxAdjustedSuccessChance = 95
	statBonusPerPoint        = 0.5
	failedEffectiveness      = 0.3
	successPenaltyShare      = 0.8
	failedPenaltyShare       = 0.3
)

// ConflictTuning holds the conflict trigger coefficients:
// chance = max(MinChance, BaseChance - affection*AffectionFactor).
type ConflictTuning struct {
	BaseChance      float64
	AffectionFactor float64
	MinChance       float64
}

// DefaultConflictTuning returns the standard trigger coefficients.
func DefaultConflictTuning() ConflictTuning {
	return ConflictTuning{
		BaseChance:      30,
		AffectionFactor: 0.2,
		MinChance:       5,
	}
}

// ConflictChance returns the percent chance that an interaction starts a conflict.
// Lower affection means a higher chance.
func ConflictChance(affection int, tuning ConflictTuning) float64 {
	return max(tuning.MinChance, tuning.BaseChance-float64(affection)*tuning.AffectionFactor)
}

// ShouldTriggerConflict reports whether roll (in [0,100)) starts a conflict.
// A record with an unresolved conflict never gets a second one.
func ShouldTriggerConflict(record *entities.RelationshipRecord, roll float64, tuning ConflictTuning) bool {
	if record.HasActiveConflict() {
		return false
	}
	return roll < ConflictChance(record.Affection, tuning)
}

// NewConflict instantiates a template as a fresh, unresolved conflict.
func NewConflict(tpl entities.ConflictTemplate, id string, now time.Time) *entities.Conflict {
	c := &entities.Conflict{
		ID:                id,
		Type:              tpl.Type,
		Severity:          tpl.Severity,
		AffectionPenalty:  tpl.AffectionPenalty,
		Description:       tpl.Description,
		ResolutionOptions: tpl.Options,
		CreatedAt:         now,
	}
	// Clone detaches the options from the shared template table.
	return c.Clone()
}

// ResolutionOutcome is the result of applying a resolution option to a conflict.
type ResolutionOutcome struct {
	Conflict                *entities.Conflict `json:"conflict"`
	OptionID                string             `json:"option_id"`
	AdjustedSuccessChance   float64            `json:"adjusted_success_chance"`
	ActualSuccessChance     int                `json:"actual_success_chance"`
	Roll                    float64            `json:"roll"`
	Success                 bool               `json:"success"`
	EffectivenessMultiplier float64            `json:"effectiveness_multiplier"`
	AffectionRecovery       int                `json:"affection_recovery"`
}

// AdjustedSuccessChance applies the stat bonus of an option.
// Options without a stat requirement keep their base chance.
func AdjustedSuccessChance(option entities.ResolutionOption, stats entities.Stats) float64 {
	base := float64(option.BaseSuccessChance)
	req := option.StatRequirement
	if req == nil {
		return base
	}
	bonus := max(0, float64(stats.Get(req.Stat)-req.MinValue)*statBonusPerPoint)
	return min(maxAdjustedSuccessChance, base+bonus)
}

// ActualSuccessChance applies the severity modifier to the adjusted chance.
func ActualSuccessChance(option entities.ResolutionOption, stats entities.Stats, severity entities.Severity) int {
	return roundHalfUp(AdjustedSuccessChance(option, stats) * severity.Modifier())
}

// AffectionRecovery computes the affection delta of a resolution attempt.
// The result is never below -penalty.
func AffectionRecovery(option entities.ResolutionOption, penalty int, success bool) int {
	effectiveness, share := failedEffectiveness, failedPenaltyShare
	if success {
		effectiveness, share = 1, successPenaltyShare
	}
	raw := float64(option.BaseAffectionChange)*effectiveness - float64(penalty)*share
	return max(roundHalfUp(raw), -penalty)
}

// ResolveConflict resolves conflict with option given a roll in [0,100).
// The returned outcome carries a resolved copy of the conflict.
func ResolveConflict(
	conflict *entities.Conflict,
	option entities.ResolutionOption,
	stats entities.Stats,
	roll float64,
	now time.Time,
) ResolutionOutcome {
	adjusted := AdjustedSuccessChance(option, stats)
	actual := roundHalfUp(adjusted * conflict.Severity.Modifier())
	success := roll <= float64(actual)

	effectiveness := failedEffectiveness
	if success {
		effectiveness = 1
	}

	resolved := conflict.Clone()
	resolved.Resolved = true
	stamp := now
	resolved.ResolvedAt = &stamp

	return ResolutionOutcome{
		Conflict:                resolved,
		OptionID:                option.ID,
		AdjustedSuccessChance:   adjusted,
		ActualSuccessChance:     actual,
		Roll:                    roll,
		Success:                 success,
		EffectivenessMultiplier: effectiveness,
		AffectionRecovery:       AffectionRecovery(option, conflict.AffectionPenalty, success),
	}
}
