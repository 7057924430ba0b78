package services

import "github.com/ersonp/starcrossed/internal/domain/entities"

// Milestone counts that reveal the deeper flags.
const (
	DeepPersonalityMilestones = 2
	SecretTraitsMilestones    = 4
)

// disclosureThresholds gates each affection-driven flag, in ascending order.
var disclosureThresholds = []struct {
	threshold int
	set       func(k *entities.KnownInfo)
}{
	{0, func(k *entities.KnownInfo) { k.Species = true }},
	{5, func(k *entities.KnownInfo) { k.Mood = true }},
	{10, func(k *entities.KnownInfo) { k.Interests = true }},
	{15, func(k *entities.KnownInfo) { k.ConversationStyle = true }},
	{25, func(k *entities.KnownInfo) { k.Values = true }},
	{35, func(k *entities.KnownInfo) { k.Background = true }},
	{50, func(k *entities.KnownInfo) { k.Goals = true }},
	{60, func(k *entities.KnownInfo) { k.Dealbreakers = true }},
	{70, func(k *entities.KnownInfo) { k.FavoriteTopics = true }},
}

// DeriveKnownInfo returns the flags unlocked by affection and milestone count,
// merged with prior. A flag set in prior is never cleared.
func DeriveKnownInfo(affection, achievedMilestones int, prior entities.KnownInfo) entities.KnownInfo {
	var derived entities.KnownInfo
	for _, t := range disclosureThresholds {
		if affection >= t.threshold {
			t.set(&derived)
		}
	}
	if achievedMilestones >= DeepPersonalityMilestones {
		derived.DeepPersonality = true
	}
	if achievedMilestones >= SecretTraitsMilestones {
		derived.SecretTraits = true
	}
	return prior.Union(derived)
}
