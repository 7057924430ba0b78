package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ersonp/starcrossed/internal/domain/entities"
)

func TestClassifyRelationship(t *testing.T) {
	tests := []struct {
		affection int
		want      entities.RelationshipLevel
	}{
		{-5, entities.LevelStranger},
		{0, entities.LevelStranger},
		{10, entities.LevelStranger},
		{11, entities.LevelAcquaintance},
		{20, entities.LevelAcquaintance},
		{21, entities.LevelFriend},
		{35, entities.LevelFriend},
		{36, entities.LevelCloseFriend},
		{50, entities.LevelCloseFriend},
		{51, entities.LevelRomanticInterest},
		{65, entities.LevelRomanticInterest},
		{66, entities.LevelDating},
		{80, entities.LevelDating},
		{81, entities.LevelCommittedPartner},
		{95, entities.LevelCommittedPartner},
		{96, entities.LevelSoulmate},
		{100, entities.LevelSoulmate},
		{250, entities.LevelSoulmate},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyRelationship(tt.affection), "affection %d", tt.affection)
	}
}

func TestLevelBands_Partition(t *testing.T) {
	prev := entities.MinAffection - 1
	for _, b := range entities.LevelBands {
		assert.Equal(t, prev+1, b.Min, b.Level)
		assert.GreaterOrEqual(t, b.Max, b.Min, b.Level)
		prev = b.Max
	}
	assert.Equal(t, entities.MaxAffection, prev)
}

func TestNextLevel(t *testing.T) {
	level, threshold, ok := NextLevel(30)
	assert.True(t, ok)
	assert.Equal(t, entities.LevelCloseFriend, level)
	assert.Equal(t, 36, threshold)

	_, _, ok = NextLevel(100)
	assert.False(t, ok)
}
