package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/starcrossed/internal/domain/entities"
)

func TestConflictChance(t *testing.T) {
	tuning := DefaultConflictTuning()

	assert.InDelta(t, 30.0, ConflictChance(0, tuning), 1e-9)
	assert.InDelta(t, 20.0, ConflictChance(50, tuning), 1e-9)
	assert.InDelta(t, 10.0, ConflictChance(100, tuning), 1e-9)

	steep := ConflictTuning{BaseChance: 10, AffectionFactor: 1, MinChance: 5}
	assert.InDelta(t, 5.0, ConflictChance(50, steep), 1e-9)
}

func TestShouldTriggerConflict(t *testing.T) {
	tuning := DefaultConflictTuning()
	record := freshRecord()

	assert.True(t, ShouldTriggerConflict(record, 29.9, tuning))
	assert.False(t, ShouldTriggerConflict(record, 30, tuning))

	active := record.Clone()
	active.ActiveConflict = NewConflict(entities.DefaultConflictTemplates[0], "c1", testNow)
	assert.False(t, ShouldTriggerConflict(active, 0, tuning))

	resolved := active.Clone()
	resolved.ActiveConflict.Resolved = true
	assert.True(t, ShouldTriggerConflict(resolved, 0, tuning))
}

func TestNewConflict_DetachesOptions(t *testing.T) {
	tpl := entities.DefaultConflictTemplates[0]
	c := NewConflict(tpl, "c1", testNow)

	c.ResolutionOptions[0].BaseSuccessChance = 1

	assert.Equal(t, "c1", c.ID)
	assert.False(t, c.Resolved)
	assert.NotEqual(t, 1, entities.DefaultConflictTemplates[0].Options[0].BaseSuccessChance)
}

func TestAdjustedSuccessChance(t *testing.T) {
	req := &entities.StatRequirement{Stat: entities.StatEmpathy, MinValue: 50}

	tests := []struct {
		name    string
		option  entities.ResolutionOption
		empathy int
		want    float64
	}{
		{"no requirement", entities.ResolutionOption{BaseSuccessChance: 60}, 100, 60},
		{"below requirement", entities.ResolutionOption{BaseSuccessChance: 60, StatRequirement: req}, 30, 60},
		{"bonus per point", entities.ResolutionOption{BaseSuccessChance: 60, StatRequirement: req}, 80, 75},
		{"capped", entities.ResolutionOption{BaseSuccessChance: 90, StatRequirement: req}, 100, 95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdjustedSuccessChance(tt.option, entities.Stats{Empathy: tt.empathy})
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestActualSuccessChance(t *testing.T) {
	option := entities.ResolutionOption{BaseSuccessChance: 80}

	assert.Equal(t, 56, ActualSuccessChance(option, entities.Stats{}, entities.SeverityCritical))
	assert.Equal(t, 68, ActualSuccessChance(option, entities.Stats{}, entities.SeverityMajor))
	assert.Equal(t, 80, ActualSuccessChance(option, entities.Stats{}, entities.SeverityModerate))
	assert.Equal(t, 88, ActualSuccessChance(option, entities.Stats{}, entities.SeverityMinor))

	// 45 * 0.7 is 31.499999999999996 in float64, so it rounds down.
	compromise := entities.ResolutionOption{BaseSuccessChance: 45}
	assert.Equal(t, 31, ActualSuccessChance(compromise, entities.Stats{}, entities.SeverityCritical))
}

func TestAffectionRecovery(t *testing.T) {
	tests := []struct {
		name    string
		change  int
		penalty int
		success bool
		want    int
	}{
		{"success", 10, 5, true, 6},
		{"failure", 20, 0, false, 6},
		{"failure below zero", 0, 20, false, -6},
		{"floored at penalty", -50, 10, true, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			option := entities.ResolutionOption{BaseAffectionChange: tt.change}
			assert.Equal(t, tt.want, AffectionRecovery(option, tt.penalty, tt.success))
		})
	}
}

func TestResolveConflict(t *testing.T) {
	conflict := &entities.Conflict{
		ID:               "c1",
		Type:             entities.ConflictValueDisagreement,
		Severity:         entities.SeverityCritical,
		AffectionPenalty: 15,
		ResolutionOptions: []entities.ResolutionOption{
			{ID: "agree", BaseSuccessChance: 80, BaseAffectionChange: 3},
		},
		CreatedAt: testNow,
	}
	option := conflict.ResolutionOptions[0]
	later := testNow.Add(time.Hour)

	t.Run("roll on the boundary succeeds", func(t *testing.T) {
		out := ResolveConflict(conflict, option, entities.Stats{}, 56, later)

		assert.True(t, out.Success)
		assert.Equal(t, 56, out.ActualSuccessChance)
		assert.InDelta(t, 1.0, out.EffectivenessMultiplier, 1e-9)
		assert.Equal(t, -9, out.AffectionRecovery)
		require.NotNil(t, out.Conflict.ResolvedAt)
		assert.Equal(t, later, *out.Conflict.ResolvedAt)
		assert.True(t, out.Conflict.Resolved)
		assert.False(t, conflict.Resolved)
	})

	t.Run("roll above fails", func(t *testing.T) {
		out := ResolveConflict(conflict, option, entities.Stats{}, 56.5, later)

		assert.False(t, out.Success)
		assert.InDelta(t, 0.3, out.EffectivenessMultiplier, 1e-9)
		// 3*0.3 - 15*0.3 = -3.6
		assert.Equal(t, -4, out.AffectionRecovery)
		assert.True(t, out.Conflict.Resolved)
	})
}
