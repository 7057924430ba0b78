package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ersonp/starcrossed/internal/domain/entities"
	"github.com/ersonp/starcrossed/internal/infrastructure/config"
)

func TestAffectionBar(t *testing.T) {
	tests := []struct {
		affection int
		expected  string
	}{
		{0, "[....................]"},
		{50, "[##########..........]"},
		{100, "[####################]"},
		{-5, "[....................]"},
		{250, "[####################]"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, affectionBar(tt.affection), "affection %d", tt.affection)
	}
}

func TestCheckDisplayFormat(t *testing.T) {
	assert.NoError(t, checkDisplayFormat("text"))
	assert.NoError(t, checkDisplayFormat("json"))
	assert.Error(t, checkDisplayFormat("yaml"))
}

func TestFormatDetails(t *testing.T) {
	assert.Empty(t, formatDetails(nil))
	assert.Equal(t, "delta=5 kind=gift", formatDetails(map[string]any{"kind": "gift", "delta": 5}))
}

func TestGameTuning(t *testing.T) {
	cfg := config.Default()
	cfg.Tuning.Events.Gift = 9
	cfg.Tuning.Conflict.MinChance = 1

	tuning := gameTuning(cfg)
	assert.Equal(t, 9, tuning.EventDeltas["gift"])
	assert.Equal(t, 3, tuning.EventDeltas["dialogue"])
	assert.InDelta(t, 1.0, tuning.Conflict.MinChance, 1e-9)
	assert.NotEmpty(t, tuning.ConflictTemplates)
}

func TestFilterAuditEntries(t *testing.T) {
	all := []entities.AuditEntry{
		{ID: 5, PlayerID: "p-1", CharacterID: "zyx"},
		{ID: 4, PlayerID: "p-2", CharacterID: "zyx"},
		{ID: 3, PlayerID: "p-1", CharacterID: "luma"},
		{ID: 2, PlayerID: "p-1", CharacterID: "zyx"},
	}

	ids := func(entries []entities.AuditEntry) []int64 {
		out := make([]int64, 0, len(entries))
		for _, e := range entries {
			out = append(out, e.ID)
		}
		return out
	}

	assert.Equal(t, []int64{5, 3, 2}, ids(filterAuditEntries(all, "p-1", "", 0)))
	assert.Equal(t, []int64{5, 2}, ids(filterAuditEntries(all, "p-1", "zyx", 0)))
	assert.Equal(t, []int64{5}, ids(filterAuditEntries(all, "p-1", "", 1)))
	assert.Empty(t, filterAuditEntries(all, "p-3", "", 0))
}
