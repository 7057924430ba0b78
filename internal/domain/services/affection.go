package services

import (
	"time"

	"github.com/ersonp/starcrossed/internal/domain/entities"
)

// LedgerResult is the outcome of an affection mutation.
type LedgerResult struct {
	Record              *entities.RelationshipRecord
	PreviousAffection   int
	NewMilestones       []entities.Milestone
	NewPhotos           []entities.PhotoUnlock
	PreviousLevel       entities.RelationshipLevel
	Level               entities.RelationshipLevel
	PreviousKnownInfo   entities.KnownInfo
	NewlyRevealedFields []string
}

// LevelChanged reports whether the mutation moved the record to another level.
func (r LedgerResult) LevelChanged() bool {
	return r.PreviousLevel != r.Level
}

// ClampAffection bounds an affection value to [MinAffection, MaxAffection].
func ClampAffection(v int) int {
	return clampInt(v, entities.MinAffection, entities.MaxAffection)
}

// ApplyAffectionDelta returns a copy of record with delta applied.
// Out-of-range results are clamped. Milestones and photos whose threshold
// is reached are unlocked once, stamped with now, and never relocked.
// Known-info flags are recomputed and merged with the existing ones.
func ApplyAffectionDelta(record *entities.RelationshipRecord, delta int, now time.Time) *entities.RelationshipRecord {
	return ApplyAffectionDeltaDetailed(record, delta, now).Record
}

// ApplyAffectionDeltaDetailed is ApplyAffectionDelta that also reports what changed.
func ApplyAffectionDeltaDetailed(record *entities.RelationshipRecord, delta int, now time.Time) LedgerResult {
	next := record.Clone()
	next.Affection = ClampAffection(record.Affection + delta)

	result := LedgerResult{
		PreviousAffection: record.Affection,
		PreviousLevel:     ClassifyRelationship(record.Affection),
		PreviousKnownInfo: record.KnownInfo,
	}

	for i := range next.Milestones {
		m := &next.Milestones[i]
		if !m.Achieved && next.Affection >= m.UnlockThreshold {
			stamp := now
			m.Achieved = true
			m.AchievedDate = &stamp
			result.NewMilestones = append(result.NewMilestones, *m)
		}
	}

	for i := range next.PhotoUnlocks {
		p := &next.PhotoUnlocks[i]
		if !p.Unlocked && next.Affection >= p.UnlockThreshold {
			stamp := now
			p.Unlocked = true
			p.UnlockedDate = &stamp
			result.NewPhotos = append(result.NewPhotos, *p)
		}
	}

	next.KnownInfo = DeriveKnownInfo(next.Affection, next.AchievedMilestoneCount(), record.KnownInfo)
	next.UpdatedAt = now

	result.Record = next
	result.Level = ClassifyRelationship(next.Affection)
	result.NewlyRevealedFields = newlyRevealed(record.KnownInfo, next.KnownInfo)
	return result
}

func newlyRevealed(before, after entities.KnownInfo) []string {
	had := make(map[string]bool)
	for _, name := range before.Revealed() {
		had[name] = true
	}
	var fresh []string
	for _, name := range after.Revealed() {
		if !had[name] {
			fresh = append(fresh, name)
		}
	}
	return fresh
}
