// Package entities contains core domain data structures.
package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// MaxStat is the upper bound of every player stat.
const MaxStat = 100

// MaxTraits is the number of trait tags a player may pick at creation.
const MaxTraits = 2

// Stat names one of the five player attributes.
type Stat string

const (
	StatCharisma     Stat = "charisma"
	StatIntelligence Stat = "intelligence"
	StatAdventure    Stat = "adventure"
	StatEmpathy      Stat = "empathy"
	StatTechnology   Stat = "technology"
)

// AllStats lists the stats in display order.
var AllStats = []Stat{StatCharisma, StatIntelligence, StatAdventure, StatEmpathy, StatTechnology}

// IsValid reports whether s is a known stat.
func (s Stat) IsValid() bool {
	for _, known := range AllStats {
		if s == known {
			return true
		}
	}
	return false
}

// Stats holds the player's attribute values, each in [0, MaxStat].
type Stats struct {
	Charisma     int `json:"charisma" yaml:"charisma"`
	Intelligence int `json:"intelligence" yaml:"intelligence"`
	Adventure    int `json:"adventure" yaml:"adventure"`
	Empathy      int `json:"empathy" yaml:"empathy"`
	Technology   int `json:"technology" yaml:"technology"`
}

// Get returns the value of the named stat, or 0 for an unknown stat.
func (s Stats) Get(stat Stat) int {
	switch stat {
	case StatCharisma:
		return s.Charisma
	case StatIntelligence:
		return s.Intelligence
	case StatAdventure:
		return s.Adventure
	case StatEmpathy:
		return s.Empathy
	case StatTechnology:
		return s.Technology
	default:
		return 0
	}
}

// Validate checks every stat is within range.
func (s Stats) Validate() error {
	for _, stat := range AllStats {
		v := s.Get(stat)
		if v < 0 || v > MaxStat {
			return fmt.Errorf("stat %s out of range: %d (valid: 0-%d)", stat, v, MaxStat)
		}
	}
	return nil
}

// Trait is a personality tag chosen at character creation.
type Trait string

const (
	TraitAdventurous  Trait = "adventurous"
	TraitBold         Trait = "bold"
	TraitCurious      Trait = "curious"
	TraitIntellectual Trait = "intellectual"
	TraitKind         Trait = "kind"
	TraitEmpathetic   Trait = "empathetic"
	TraitInventive    Trait = "inventive"
	TraitTechSavvy    Trait = "tech_savvy"
	TraitLoyal        Trait = "loyal"
	TraitHonest       Trait = "honest"
	TraitFreeSpirited Trait = "free_spirited"
	TraitCalm         Trait = "calm"
	TraitCharming     Trait = "charming"
	TraitWitty        Trait = "witty"
)

// AllTraits lists every selectable trait.
var AllTraits = []Trait{
	TraitAdventurous, TraitBold, TraitCurious, TraitIntellectual,
	TraitKind, TraitEmpathetic, TraitInventive, TraitTechSavvy,
	TraitLoyal, TraitHonest, TraitFreeSpirited, TraitCalm,
	TraitCharming, TraitWitty,
}

// IsValid reports whether t is a known trait.
func (t Trait) IsValid() bool {
	for _, known := range AllTraits {
		if t == known {
			return true
		}
	}
	return false
}

// SexualPreference is the declared preference of the player.
type SexualPreference string

const (
	PreferenceMen      SexualPreference = "men"
	PreferenceWomen    SexualPreference = "women"
	PreferenceEveryone SexualPreference = "everyone"
)

// IsValid reports whether p is a known preference.
func (p SexualPreference) IsValid() bool {
	switch p {
	case PreferenceMen, PreferenceWomen, PreferenceEveryone:
		return true
	default:
		return false
	}
}

// PlayerProfile is the immutable record created at character creation.
type PlayerProfile struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Stats      Stats            `json:"stats"`
	Traits     []Trait          `json:"traits"`
	Preference SexualPreference `json:"sexual_preference"`
	CreatedAt  time.Time        `json:"created_at"`
}

// NewPlayerProfile validates its inputs and builds a PlayerProfile.
// Duplicate traits are collapsed before the count check.
func NewPlayerProfile(id, name string, stats Stats, traits []Trait, pref SexualPreference, createdAt time.Time) (*PlayerProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("player name is required")
	}
	if err := stats.Validate(); err != nil {
		return nil, err
	}
	if !pref.IsValid() {
		return nil, fmt.Errorf("invalid sexual preference: %q (valid: men, women, everyone)", pref)
	}

	unique := make([]Trait, 0, len(traits))
	seen := make(map[Trait]bool, len(traits))
	for _, t := range traits {
		if !t.IsValid() {
			return nil, fmt.Errorf("invalid trait: %q", t)
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		unique = append(unique, t)
	}
	if len(unique) > MaxTraits {
		return nil, fmt.Errorf("too many traits: %d (max %d)", len(unique), MaxTraits)
	}

	return &PlayerProfile{
		ID:         id,
		Name:       name,
		Stats:      stats,
		Traits:     unique,
		Preference: pref,
		CreatedAt:  createdAt,
	}, nil
}

// HasTrait reports whether the player selected any of the given traits.
func (p *PlayerProfile) HasTrait(traits ...Trait) bool {
	for _, have := range p.Traits {
		for _, want := range traits {
			if have == want {
				return true
			}
		}
	}
	return false
}
