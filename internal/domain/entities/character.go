package entities

import (
	"errors"
	"fmt"
)

// InterestCategory is the topic a companion cares about.
type InterestCategory string

const (
	InterestScience     InterestCategory = "science"
	InterestPhilosophy  InterestCategory = "philosophy"
	InterestTechnology  InterestCategory = "technology"
	InterestAdventure   InterestCategory = "adventure"
	InterestExploration InterestCategory = "exploration"
	InterestNature      InterestCategory = "nature"
	InterestArts        InterestCategory = "arts"
	InterestCulture     InterestCategory = "culture"
	InterestMusic       InterestCategory = "music"
	InterestCuisine     InterestCategory = "cuisine"
)

// AllInterestCategories lists every known interest category.
var AllInterestCategories = []InterestCategory{
	InterestScience, InterestPhilosophy, InterestTechnology, InterestAdventure,
	InterestExploration, InterestNature, InterestArts, InterestCulture,
	InterestMusic, InterestCuisine,
}

// IsValid reports whether c is a known category.
func (c InterestCategory) IsValid() bool {
	for _, known := range AllInterestCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Interest intensity bounds.
const (
	MinInterestIntensity = 1
	MaxInterestIntensity = 5
)

// Interest is a weighted interest of a companion.
type Interest struct {
	Category  InterestCategory `json:"category" yaml:"category"`
	Intensity int              `json:"intensity" yaml:"intensity"`
}

// ConversationStyle is how a companion prefers to talk.
type ConversationStyle string

const (
	StylePhilosophical ConversationStyle = "philosophical"
	StylePlayful       ConversationStyle = "playful"
	StyleAnalytical    ConversationStyle = "analytical"
	StyleEmpathetic    ConversationStyle = "empathetic"
	StyleDirect        ConversationStyle = "direct"
	StylePoetic        ConversationStyle = "poetic"
)

// IsValid reports whether s is a known conversation style.
func (s ConversationStyle) IsValid() bool {
	switch s {
	case StylePhilosophical, StylePlayful, StyleAnalytical, StyleEmpathetic, StyleDirect, StylePoetic:
		return true
	default:
		return false
	}
}

// PersonalValue is a value a companion holds.
type PersonalValue string

const (
	ValueAdventure  PersonalValue = "adventure"
	ValueKnowledge  PersonalValue = "knowledge"
	ValueCompassion PersonalValue = "compassion"
	ValueInnovation PersonalValue = "innovation"
	ValueTradition  PersonalValue = "tradition"
	ValueHonesty    PersonalValue = "honesty"
	ValueFreedom    PersonalValue = "freedom"
	ValueHarmony    PersonalValue = "harmony"
)

// AllPersonalValues lists every known value.
var AllPersonalValues = []PersonalValue{
	ValueAdventure, ValueKnowledge, ValueCompassion, ValueInnovation,
	ValueTradition, ValueHonesty, ValueFreedom, ValueHarmony,
}

// IsValid reports whether v is a known value.
func (v PersonalValue) IsValid() bool {
	for _, known := range AllPersonalValues {
		if v == known {
			return true
		}
	}
	return false
}

// ActivityType is a kind of date or outing.
type ActivityType string

const (
	ActivityRomantic     ActivityType = "romantic"
	ActivityAdventure    ActivityType = "adventure"
	ActivityIntellectual ActivityType = "intellectual"
	ActivityCreative     ActivityType = "creative"
	ActivitySocial       ActivityType = "social"
	ActivityRelaxing     ActivityType = "relaxing"
)

// IsValid reports whether a is a known activity type.
func (a ActivityType) IsValid() bool {
	switch a {
	case ActivityRomantic, ActivityAdventure, ActivityIntellectual, ActivityCreative, ActivitySocial, ActivityRelaxing:
		return true
	default:
		return false
	}
}

// CharacterProfile is the static definition of a companion.
type CharacterProfile struct {
	ID                  string            `json:"id" yaml:"id"`
	Name                string            `json:"name" yaml:"name"`
	Species             string            `json:"species" yaml:"species"`
	Interests           []Interest        `json:"interests" yaml:"interests"`
	ConversationStyle   ConversationStyle `json:"conversation_style" yaml:"conversation_style"`
	Values              []PersonalValue   `json:"values" yaml:"values"`
	PreferredActivities []ActivityType    `json:"preferred_activities" yaml:"preferred_activities"`
	Dealbreakers        []string          `json:"dealbreakers" yaml:"dealbreakers"`
}

// Validate checks every enum-valued field of the profile.
func (c *CharacterProfile) Validate() error {
	if c.ID == "" {
		return errors.New("character id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("character %s: name is required", c.ID)
	}
	for _, in := range c.Interests {
		if !in.Category.IsValid() {
			return fmt.Errorf("character %s: invalid interest category %q", c.ID, in.Category)
		}
		if in.Intensity < MinInterestIntensity || in.Intensity > MaxInterestIntensity {
			return fmt.Errorf("character %s: interest %s intensity %d out of range (valid: %d-%d)",
				c.ID, in.Category, in.Intensity, MinInterestIntensity, MaxInterestIntensity)
		}
	}
	if !c.ConversationStyle.IsValid() {
		return fmt.Errorf("character %s: invalid conversation style %q", c.ID, c.ConversationStyle)
	}
	for _, v := range c.Values {
		if !v.IsValid() {
			return fmt.Errorf("character %s: invalid value %q", c.ID, v)
		}
	}
	for _, a := range c.PreferredActivities {
		if !a.IsValid() {
			return fmt.Errorf("character %s: invalid activity %q", c.ID, a)
		}
	}
	return nil
}
