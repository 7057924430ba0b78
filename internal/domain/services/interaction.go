package services

import (
	"time"

	"github.com/ersonp/starcrossed/internal/domain/entities"
)

// CanInteractToday reports whether a companion can be interacted with on today's
// calendar day. The day boundary is taken in today's location, not a rolling 24h.
func CanInteractToday(last *time.Time, today time.Time) bool {
	if last == nil {
		return true
	}
	return dayOf(*last, today.Location()).Before(dayOf(today, today.Location()))
}

// RecordInteraction returns a copy of record with today as its last interaction day.
func RecordInteraction(record *entities.RelationshipRecord, today time.Time) *entities.RelationshipRecord {
	next := record.Clone()
	day := dayOf(today, today.Location())
	next.LastInteractionDate = &day
	next.InteractionCount++
	return next
}

// dayOf truncates t to midnight of its calendar day in loc.
func dayOf(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
