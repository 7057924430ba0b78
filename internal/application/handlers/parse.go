package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ersonp/starcrossed/internal/domain/entities"
)

// ValidInteractionKinds lists all valid interaction kind strings.
var ValidInteractionKinds = []string{"dialogue", "gift", "date", "activity"}

// ValidPreferences lists all valid sexual preference strings.
var ValidPreferences = []string{"men", "women", "everyone"}

// ValidConflictTypes lists all valid conflict type strings.
var ValidConflictTypes = []string{
	"misunderstanding", "jealousy", "forgotten_promise",
	"cultural_clash", "value_disagreement",
}

// parseKind validates and converts a string to InteractionKind.
func parseKind(s string) (entities.InteractionKind, error) {
	k := entities.InteractionKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", fmt.Errorf("invalid interaction kind: %q (valid: %s)", s, strings.Join(ValidInteractionKinds, ", "))
	}
	return k, nil
}

// parsePreference validates and converts a string to SexualPreference.
func parsePreference(s string) (entities.SexualPreference, error) {
	p := entities.SexualPreference(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("invalid preference: %q (valid: %s)", s, strings.Join(ValidPreferences, ", "))
	}
	return p, nil
}

// parseConflictType validates and converts a string to ConflictType.
func parseConflictType(s string) (entities.ConflictType, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for _, valid := range ValidConflictTypes {
		if normalized == valid {
			return entities.ConflictType(normalized), nil
		}
	}
	return "", fmt.Errorf("invalid conflict type: %q (valid: %s)", s, strings.Join(ValidConflictTypes, ", "))
}

// parseTraits validates and converts trait strings. Hyphens are accepted for underscores.
func parseTraits(values []string) ([]entities.Trait, error) {
	traits := make([]entities.Trait, 0, len(values))
	for _, v := range values {
		t := entities.Trait(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(v)), "-", "_"))
		if t == "" {
			continue
		}
		if !t.IsValid() {
			return nil, fmt.Errorf("invalid trait: %q", v)
		}
		traits = append(traits, t)
	}
	return traits, nil
}

// ParseStats parses "charisma=60,intelligence=70" into Stats.
// Stats that are not named stay at zero.
func ParseStats(s string) (entities.Stats, error) {
	var stats entities.Stats
	if strings.TrimSpace(s) == "" {
		return stats, nil
	}

	seen := make(map[entities.Stat]bool)
	for _, pair := range strings.Split(s, ",") {
		name, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return stats, fmt.Errorf("invalid stat %q (want name=value)", pair)
		}
		stat := entities.Stat(strings.ToLower(strings.TrimSpace(name)))
		if !stat.IsValid() {
			return stats, fmt.Errorf("unknown stat: %q", name)
		}
		if seen[stat] {
			return stats, fmt.Errorf("stat %s given twice", stat)
		}
		seen[stat] = true

		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return stats, fmt.Errorf("stat %s: %w", stat, err)
		}
		setStat(&stats, stat, n)
	}
	return stats, nil
}

func setStat(s *entities.Stats, stat entities.Stat, v int) {
	switch stat {
	case entities.StatCharisma:
		s.Charisma = v
	case entities.StatIntelligence:
		s.Intelligence = v
	case entities.StatAdventure:
		s.Adventure = v
	case entities.StatEmpathy:
		s.Empathy = v
	case entities.StatTechnology:
		s.Technology = v
	}
}
