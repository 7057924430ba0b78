package parsers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ersonp/starcrossed/internal/domain/entities"
)

// JSONParser parses rosters from JSON format.
type JSONParser struct{}

// Parse reads JSON from the reader and returns the character profiles.
func (p *JSONParser) Parse(r io.Reader) ([]entities.CharacterProfile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading JSON: %w", err)
	}

	var doc RosterFile
	if err := json.Unmarshal(data, &doc); err == nil {
		return nonNil(doc.Characters), nil
	}

	var list []entities.CharacterProfile
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	return nonNil(list), nil
}

func nonNil(profiles []entities.CharacterProfile) []entities.CharacterProfile {
	if profiles == nil {
		return []entities.CharacterProfile{}
	}
	return profiles
}
