package services

import (
	"math"

	"github.com/ersonp/starcrossed/internal/domain/entities"
)

// neutralScore is used for a dimension the companion declares nothing for.
const neutralScore = 50

// interestStat maps each interest category to the player stat that drives it.
var interestStat = map[entities.InterestCategory]entities.Stat{
	entities.InterestScience:     entities.StatIntelligence,
	entities.InterestPhilosophy:  entities.StatIntelligence,
	entities.InterestTechnology:  entities.StatTechnology,
	entities.InterestAdventure:   entities.StatAdventure,
	entities.InterestExploration: entities.StatAdventure,
	entities.InterestNature:      entities.StatEmpathy,
	entities.InterestArts:        entities.StatEmpathy,
	entities.InterestCulture:     entities.StatCharisma,
	entities.InterestMusic:       entities.StatCharisma,
	entities.InterestCuisine:     entities.StatCharisma,
}

// valueRule reports whether a player satisfies a companion's value.
type valueRule func(p *entities.PlayerProfile) bool

var valueRules = map[entities.PersonalValue]valueRule{
	entities.ValueAdventure: func(p *entities.PlayerProfile) bool {
		return p.Stats.Adventure >= 70 || p.HasTrait(entities.TraitAdventurous, entities.TraitBold)
	},
	entities.ValueKnowledge: func(p *entities.PlayerProfile) bool {
		return p.Stats.Intelligence >= 70 || p.HasTrait(entities.TraitCurious, entities.TraitIntellectual)
	},
	entities.ValueCompassion: func(p *entities.PlayerProfile) bool {
		return p.Stats.Empathy >= 70 || p.HasTrait(entities.TraitKind, entities.TraitEmpathetic)
	},
	entities.ValueInnovation: func(p *entities.PlayerProfile) bool {
		return p.Stats.Technology >= 70 || p.HasTrait(entities.TraitInventive, entities.TraitTechSavvy)
	},
	entities.ValueTradition: func(p *entities.PlayerProfile) bool {
		return p.Stats.Charisma >= 60 || p.HasTrait(entities.TraitLoyal)
	},
	entities.ValueHonesty: func(p *entities.PlayerProfile) bool {
		return p.Stats.Empathy >= 60 || p.HasTrait(entities.TraitHonest)
	},
	entities.ValueFreedom: func(p *entities.PlayerProfile) bool {
		return p.Stats.Adventure >= 60 || p.HasTrait(entities.TraitFreeSpirited)
	},
	entities.ValueHarmony: func(p *entities.PlayerProfile) bool {
		return (p.Stats.Empathy >= 60 && p.Stats.Charisma >= 50) || p.HasTrait(entities.TraitCalm)
	},
}

// ComputeCompatibility scores how well a player fits a companion.
// It is a pure function of its inputs.
func ComputeCompatibility(player *entities.PlayerProfile, character *entities.CharacterProfile) entities.CompatibilityScore {
	breakdown := entities.CompatibilityBreakdown{
		Interests:         interestScore(player, character),
		Values:            valueScore(player, character),
		ConversationStyle: conversationScore(player, character.ConversationStyle),
		Activities:        activityScore(player, character.PreferredActivities),
	}

	sum := breakdown.Interests + breakdown.Values + breakdown.ConversationStyle + breakdown.Activities
	overall := clampInt(roundHalfUp(float64(sum)/4), 0, 100)

	return entities.CompatibilityScore{
		Overall:     overall,
		Breakdown:   breakdown,
		Explanation: explainCompatibility(overall, breakdown),
	}
}

func interestScore(player *entities.PlayerProfile, character *entities.CharacterProfile) int {
	if len(character.Interests) == 0 {
		return neutralScore
	}

	var weighted, totalWeight float64
	for _, in := range character.Interests {
		stat := neutralScore
		if s, ok := interestStat[in.Category]; ok {
			stat = player.Stats.Get(s)
		}
		match := min(stat, in.Intensity*20)
		weighted += float64(match * in.Intensity)
		totalWeight += float64(in.Intensity)
	}
	if totalWeight <= 0 {
		return neutralScore
	}
	return clampInt(roundHalfUp(weighted/totalWeight), 0, 100)
}

func valueScore(player *entities.PlayerProfile, character *entities.CharacterProfile) int {
	if len(character.Values) == 0 {
		return neutralScore
	}

	matches := 0
	for _, v := range character.Values {
		if rule, ok := valueRules[v]; ok && rule(player) {
			matches++
		}
	}
	return clampInt(roundHalfUp(float64(matches)/float64(len(character.Values))*100), 0, 100)
}

// styleBands scores a stat value against the fixed conversation breakpoints.
func styleBands(v int) int {
	switch {
	case v >= 70:
		return 90
	case v >= 50:
		return 70
	default:
		return neutralScore
	}
}

func conversationScore(player *entities.PlayerProfile, style entities.ConversationStyle) int {
	s := player.Stats
	switch style {
	case entities.StylePhilosophical:
		return styleBands(s.Intelligence)
	case entities.StylePlayful:
		return styleBands(s.Charisma)
	case entities.StyleAnalytical:
		return styleBands((s.Intelligence + s.Technology) / 2)
	case entities.StyleEmpathetic:
		return styleBands(s.Empathy)
	case entities.StyleDirect:
		return styleBands((s.Charisma + s.Adventure) / 2)
	case entities.StylePoetic:
		return styleBands((s.Empathy + s.Charisma) / 2)
	default:
		return neutralScore
	}
}

// activityProxy estimates how much the player enjoys an activity type, uncapped.
func activityProxy(s entities.Stats, a entities.ActivityType) int {
	switch a {
	case entities.ActivityRomantic:
		return s.Charisma + s.Empathy
	case entities.ActivityAdventure:
		return s.Adventure + s.Technology/2
	case entities.ActivityIntellectual:
		return s.Intelligence + s.Technology/2
	case entities.ActivityCreative:
		return s.Empathy + s.Intelligence/2
	case entities.ActivitySocial:
		return s.Charisma + s.Empathy/2
	case entities.ActivityRelaxing:
		return s.Empathy + s.Charisma/2
	default:
		return neutralScore
	}
}

func activityScore(player *entities.PlayerProfile, activities []entities.ActivityType) int {
	if len(activities) == 0 {
		return 0
	}

	total := 0
	for _, a := range activities {
		total += min(activityProxy(player.Stats, a), 100)
	}
	return clampInt(roundHalfUp(float64(total)/float64(len(activities))), 0, 100)
}

func explainCompatibility(overall int, b entities.CompatibilityBreakdown) []string {
	lines := make([]string, 0, 5)

	switch {
	case overall >= 80:
		lines = append(lines, "You two are a remarkable match!")
	case overall >= 60:
		lines = append(lines, "You have strong compatibility.")
	case overall >= 40:
		lines = append(lines, "You have some things in common.")
	default:
		lines = append(lines, "You'll need to work at this connection.")
	}

	dims := []struct {
		score int
		high  string
		low   string
	}{
		{b.Interests, "You share many of the same interests.", "Your interests rarely overlap."},
		{b.Values, "Your core values align closely.", "Your values are quite different."},
		{b.ConversationStyle, "Conversation flows naturally between you.", "You may struggle to find a common way of talking."},
		{b.Activities, "You'll love doing things together.", "You enjoy very different activities."},
	}
	for _, d := range dims {
		switch {
		case d.score >= 80:
			lines = append(lines, d.high)
		case d.score <= 40:
			lines = append(lines, d.low)
		}
	}

	return lines
}

// roundHalfUp rounds to the nearest integer with ties toward +Inf.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
