// Package parsers provides parsers for loading companion rosters from various formats.
package parsers

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ersonp/starcrossed/internal/domain/entities"
)

// RosterFile is the document shape of a roster file. A bare list of
// characters is accepted as well.
type RosterFile struct {
	Characters []entities.CharacterProfile `json:"characters" yaml:"characters"`
}

// Parser defines the interface for parsing companion rosters.
type Parser interface {
	Parse(r io.Reader) ([]entities.CharacterProfile, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "yaml".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "yaml", "yml":
		return &YAMLParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	ext := strings.ToLower(filepath.Ext(filename))
	return ForFormat(strings.TrimPrefix(ext, "."))
}

// LoadFile parses the roster at path using the parser for its extension.
// The profiles are not validated; RosterService.Load does that.
func LoadFile(path string) ([]entities.CharacterProfile, error) {
	parser := ForFile(path)
	if parser == nil {
		return nil, fmt.Errorf("unsupported roster format: %s (use .json, .yaml or .yml)", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening roster file: %w", err)
	}
	defer f.Close()

	profiles, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(profiles) == 0 {
		return nil, errors.New("roster file has no characters")
	}
	return profiles, nil
}
