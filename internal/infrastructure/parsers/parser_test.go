package parsers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/starcrossed/internal/domain/entities"
)

var vega = entities.CharacterProfile{
	ID:      "vega",
	Name:    "Vega Solenne",
	Species: "Lyran",
	Interests: []entities.Interest{
		{Category: entities.InterestMusic, Intensity: 4},
		{Category: entities.InterestArts, Intensity: 2},
	},
	ConversationStyle:   entities.StylePlayful,
	Values:              []entities.PersonalValue{entities.ValueFreedom},
	PreferredActivities: []entities.ActivityType{entities.ActivitySocial},
	Dealbreakers:        []string{"boredom"},
}

const vegaYAML = `characters:
  - id: vega
    name: Vega Solenne
    species: Lyran
    interests:
      - category: music
        intensity: 4
      - category: arts
        intensity: 2
    conversation_style: playful
    values: [freedom]
    preferred_activities: [social]
    dealbreakers: [boredom]
`

const vegaJSON = `{"characters": [{
	"id": "vega",
	"name": "Vega Solenne",
	"species": "Lyran",
	"interests": [{"category": "music", "intensity": 4}, {"category": "arts", "intensity": 2}],
	"conversation_style": "playful",
	"values": ["freedom"],
	"preferred_activities": ["social"],
	"dealbreakers": ["boredom"]
}]}`

func TestYAMLParser_Parse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []entities.CharacterProfile
	}{
		{
			name:     "document form",
			input:    vegaYAML,
			expected: []entities.CharacterProfile{vega},
		},
		{
			name:     "bare list",
			input:    "- id: a\n  name: A\n  conversation_style: direct\n",
			expected: []entities.CharacterProfile{{ID: "a", Name: "A", ConversationStyle: entities.StyleDirect}},
		},
		{
			name:     "empty document",
			input:    "characters: []\n",
			expected: []entities.CharacterProfile{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := &YAMLParser{}
			result, err := parser.Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestJSONParser_Parse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []entities.CharacterProfile
	}{
		{
			name:     "document form",
			input:    vegaJSON,
			expected: []entities.CharacterProfile{vega},
		},
		{
			name:     "bare list",
			input:    `[{"id": "a", "name": "A", "conversation_style": "direct"}]`,
			expected: []entities.CharacterProfile{{ID: "a", Name: "A", ConversationStyle: entities.StyleDirect}},
		},
		{
			name:     "empty array",
			input:    "[]",
			expected: []entities.CharacterProfile{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := &JSONParser{}
			result, err := parser.Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParsers_InvalidInput(t *testing.T) {
	_, err := (&JSONParser{}).Parse(strings.NewReader(`{"characters": [`))
	assert.Error(t, err)

	_, err = (&YAMLParser{}).Parse(strings.NewReader("characters: [\n"))
	assert.Error(t, err)
}

func TestForFormat(t *testing.T) {
	assert.IsType(t, &JSONParser{}, ForFormat("JSON"))
	assert.IsType(t, &YAMLParser{}, ForFormat("yaml"))
	assert.IsType(t, &YAMLParser{}, ForFormat("yml"))
	assert.Nil(t, ForFormat("csv"))
}

func TestForFile(t *testing.T) {
	assert.IsType(t, &JSONParser{}, ForFile("roster.json"))
	assert.IsType(t, &YAMLParser{}, ForFile("content/Roster.YAML"))
	assert.Nil(t, ForFile("roster.txt"))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(dir, "roster.yaml")
		require.NoError(t, os.WriteFile(path, []byte(vegaYAML), 0644))

		profiles, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []entities.CharacterProfile{vega}, profiles)
	})

	t.Run("json file", func(t *testing.T) {
		path := filepath.Join(dir, "roster.json")
		require.NoError(t, os.WriteFile(path, []byte(vegaJSON), 0644))

		profiles, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []entities.CharacterProfile{vega}, profiles)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "roster.csv"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported roster format")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("empty roster", func(t *testing.T) {
		path := filepath.Join(dir, "empty.json")
		require.NoError(t, os.WriteFile(path, []byte("[]"), 0644))

		_, err := LoadFile(path)
		assert.Error(t, err)
	})
}
