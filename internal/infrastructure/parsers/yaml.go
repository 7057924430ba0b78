package parsers

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ersonp/starcrossed/internal/domain/entities"
)

// YAMLParser parses rosters from YAML format.
type YAMLParser struct{}

// Parse reads YAML from the reader and returns the character profiles.
func (p *YAMLParser) Parse(r io.Reader) ([]entities.CharacterProfile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading YAML: %w", err)
	}

	var doc RosterFile
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return nonNil(doc.Characters), nil
	}

	var list []entities.CharacterProfile
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	return nonNil(list), nil
}
