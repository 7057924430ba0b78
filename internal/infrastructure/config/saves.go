package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// SavesConfig maps named save slots to player IDs (read/write).
type SavesConfig struct {
	Active string               `yaml:"active,omitempty"`
	Slots  map[string]SaveEntry `yaml:"slots,omitempty"`
}

// SaveEntry holds the player behind a save slot.
type SaveEntry struct {
	PlayerID   string `yaml:"player_id"`
	PlayerName string `yaml:"player_name,omitempty"`
}

// LoadSaves loads the save slots from the .starcrossed directory.
func LoadSaves(basePath string) (*SavesConfig, error) {
	data, err := os.ReadFile(SavesFilePath(basePath))
	if os.IsNotExist(err) {
		// Return empty config if file doesn't exist
		return &SavesConfig{
			Slots: make(map[string]SaveEntry),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading saves file: %w", err)
	}

	var cfg SavesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing saves file: %w", err)
	}

	if cfg.Slots == nil {
		cfg.Slots = make(map[string]SaveEntry)
	}

	return &cfg, nil
}

// Save writes the save slots to the saves file.
func (s *SavesConfig) Save(basePath string) error {
	configDir := ConfigDir(basePath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling saves config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(configDir, DefaultSavesFile), data, 0600); err != nil {
		return fmt.Errorf("writing saves file: %w", err)
	}

	return nil
}

// Add adds a slot and makes it the active one.
func (s *SavesConfig) Add(name string, entry SaveEntry) {
	if s.Slots == nil {
		s.Slots = make(map[string]SaveEntry)
	}
	key := SanitizeSlotName(name)
	s.Slots[key] = entry
	s.Active = key
}

// Remove removes a slot. Removing the active slot leaves no active slot.
func (s *SavesConfig) Remove(name string) {
	key := SanitizeSlotName(name)
	if s.Slots != nil {
		delete(s.Slots, key)
	}
	if s.Active == key {
		s.Active = ""
	}
}

// Get returns the entry of a slot.
func (s *SavesConfig) Get(name string) (*SaveEntry, error) {
	if len(s.Slots) == 0 {
		return nil, errors.New("no save slots (run 'starcrossed player create' first)")
	}

	entry, ok := s.Slots[SanitizeSlotName(name)]
	if !ok {
		return nil, fmt.Errorf("save slot %q not found (available: %s)", name, strings.Join(s.Names(), ", "))
	}

	return &entry, nil
}

// Current returns the active slot's entry.
func (s *SavesConfig) Current() (*SaveEntry, error) {
	if s.Active == "" {
		return nil, errors.New("no active save slot (use 'starcrossed player use <slot>')")
	}
	return s.Get(s.Active)
}

// Use makes an existing slot the active one.
func (s *SavesConfig) Use(name string) error {
	if _, err := s.Get(name); err != nil {
		return err
	}
	s.Active = SanitizeSlotName(name)
	return nil
}

// Exists checks if a slot exists.
func (s *SavesConfig) Exists(name string) bool {
	if s.Slots == nil {
		return false
	}
	_, ok := s.Slots[SanitizeSlotName(name)]
	return ok
}

// Names returns the slot names in sorted order.
func (s *SavesConfig) Names() []string {
	names := make([]string, 0, len(s.Slots))
	for k := range s.Slots {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
