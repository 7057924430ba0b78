package services

import "github.com/ersonp/starcrossed/internal/domain/entities"

// ClassifyRelationship maps affection to its relationship level.
// Values outside [0,100] are clamped first, so every int has a level.
func ClassifyRelationship(affection int) entities.RelationshipLevel {
	a := ClampAffection(affection)
	for _, b := range entities.LevelBands {
		if a >= b.Min && a <= b.Max {
			return b.Level
		}
	}
	return entities.LevelSoulmate
}

// NextLevel returns the level above the current one and the affection needed to reach it.
// ok is false at the top level.
func NextLevel(affection int) (level entities.RelationshipLevel, threshold int, ok bool) {
	idx := ClassifyRelationship(affection).Index()
	if idx < 0 || idx+1 >= len(entities.LevelBands) {
		return "", 0, false
	}
	next := entities.LevelBands[idx+1]
	return next.Level, next.Min, true
}
