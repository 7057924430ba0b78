package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/starcrossed/internal/domain/entities"
	"github.com/ersonp/starcrossed/internal/infrastructure/config"
)

// setupTestRepo creates an in-memory SQLite repository for testing.
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(config.SQLiteConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	err = repo.EnsureSchema(context.Background())
	require.NoError(t, err)

	return repo
}

var testTime = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func testPlayer(id string, created time.Time) *entities.PlayerProfile {
	return &entities.PlayerProfile{
		ID:         id,
		Name:       "Ash",
		Stats:      entities.Stats{Charisma: 60, Intelligence: 70, Adventure: 40, Empathy: 55, Technology: 20},
		Traits:     []entities.Trait{entities.TraitCurious, entities.TraitKind},
		Preference: entities.PreferenceEveryone,
		CreatedAt:  created,
	}
}

// progressedRecord returns a record with every optional field populated.
func progressedRecord(playerID, characterID string) *entities.RelationshipRecord {
	rec := entities.NewRelationshipRecord(playerID, characterID, testTime)
	rec.Affection = 42
	rec.KnownInfo = entities.KnownInfo{Species: true, Mood: true, Interests: true, DeepPersonality: true}
	achieved := testTime.Add(-48 * time.Hour)
	rec.Milestones[0].Achieved = true
	rec.Milestones[0].AchievedDate = &achieved
	rec.PhotoUnlocks[0].Unlocked = true
	rec.PhotoUnlocks[0].UnlockedDate = &achieved
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	rec.LastInteractionDate = &day
	rec.InteractionCount = 7
	rec.ActiveConflict = &entities.Conflict{
		ID:               "c-1",
		Type:             entities.ConflictJealousy,
		Severity:         entities.SeverityModerate,
		AffectionPenalty: 6,
		Description:      "jealous",
		ResolutionOptions: []entities.ResolutionOption{
			{ID: "reassure", Approach: "reassurance", BaseSuccessChance: 60, BaseAffectionChange: 7,
				StatRequirement: &entities.StatRequirement{Stat: entities.StatEmpathy, MinValue: 50}},
		},
		CreatedAt: testTime,
	}
	return rec
}

func TestNewRepository(t *testing.T) {
	t.Run("success with memory database", func(t *testing.T) {
		repo, err := NewRepository(config.SQLiteConfig{Path: ":memory:"})
		require.NoError(t, err)
		defer repo.Close()
		assert.NotNil(t, repo)
		assert.Equal(t, ":memory:", repo.Path())
	})

	t.Run("error with empty path", func(t *testing.T) {
		_, err := NewRepository(config.SQLiteConfig{Path: ""})
		require.Error(t, err)
	})
}

func TestRepository_EnsureSchema(t *testing.T) {
	repo := setupTestRepo(t)

	// Verify tables exist
	tables := []string{"players", "relationships", "audit_log"}
	for _, table := range tables {
		var count int
		err := repo.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "table %s should exist", table)
	}
}

func TestRepository_EnsureSchema_Idempotent(t *testing.T) {
	repo := setupTestRepo(t)

	// Should not error when called again
	err := repo.EnsureSchema(context.Background())
	require.NoError(t, err)
}

func TestRepository_Players(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	t.Run("save and find", func(t *testing.T) {
		p := testPlayer("p-1", testTime)
		require.NoError(t, repo.SavePlayer(ctx, p))

		found, err := repo.FindPlayer(ctx, "p-1")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, p, found)
	})

	t.Run("find nonexistent", func(t *testing.T) {
		found, err := repo.FindPlayer(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("save replaces", func(t *testing.T) {
		p := testPlayer("p-1", testTime)
		p.Name = "Ashen"
		require.NoError(t, repo.SavePlayer(ctx, p))

		found, err := repo.FindPlayer(ctx, "p-1")
		require.NoError(t, err)
		assert.Equal(t, "Ashen", found.Name)
	})

	t.Run("list ordered by creation", func(t *testing.T) {
		require.NoError(t, repo.SavePlayer(ctx, testPlayer("p-0", testTime.Add(-time.Hour))))
		require.NoError(t, repo.SavePlayer(ctx, testPlayer("p-2", testTime.Add(time.Hour))))

		players, err := repo.ListPlayers(ctx)
		require.NoError(t, err)
		require.Len(t, players, 3)
		assert.Equal(t, "p-0", players[0].ID)
		assert.Equal(t, "p-1", players[1].ID)
		assert.Equal(t, "p-2", players[2].ID)
	})
}

func TestRepository_Records(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.SavePlayer(ctx, testPlayer("p-1", testTime)))

	t.Run("fresh record round trip", func(t *testing.T) {
		rec := entities.NewRelationshipRecord("p-1", "zyx", testTime)
		require.NoError(t, repo.SaveRecord(ctx, rec))

		found, err := repo.FindRecord(ctx, "p-1", "zyx")
		require.NoError(t, err)
		assert.Equal(t, rec, found)
	})

	t.Run("every field survives", func(t *testing.T) {
		rec := progressedRecord("p-1", "luma")
		require.NoError(t, repo.SaveRecord(ctx, rec))

		found, err := repo.FindRecord(ctx, "p-1", "luma")
		require.NoError(t, err)
		assert.Equal(t, rec, found)
	})

	t.Run("offset is preserved", func(t *testing.T) {
		loc := time.FixedZone("", 9*60*60)
		rec := entities.NewRelationshipRecord("p-1", "nyx", time.Date(2026, 3, 10, 18, 0, 0, 0, loc))
		require.NoError(t, repo.SaveRecord(ctx, rec))

		found, err := repo.FindRecord(ctx, "p-1", "nyx")
		require.NoError(t, err)
		assert.True(t, rec.UpdatedAt.Equal(found.UpdatedAt))
		_, offset := found.UpdatedAt.Zone()
		assert.Equal(t, 9*60*60, offset)
	})

	t.Run("save replaces", func(t *testing.T) {
		rec := progressedRecord("p-1", "luma")
		rec.Affection = 43
		rec.ActiveConflict = nil
		require.NoError(t, repo.SaveRecord(ctx, rec))

		found, err := repo.FindRecord(ctx, "p-1", "luma")
		require.NoError(t, err)
		assert.Equal(t, 43, found.Affection)
		assert.Nil(t, found.ActiveConflict)
	})

	t.Run("find nonexistent", func(t *testing.T) {
		found, err := repo.FindRecord(ctx, "p-1", "korrin")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("list ordered by character", func(t *testing.T) {
		records, err := repo.ListRecords(ctx, "p-1")
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "luma", records[0].CharacterID)
		assert.Equal(t, "nyx", records[1].CharacterID)
		assert.Equal(t, "zyx", records[2].CharacterID)
	})

	t.Run("delete player cascades", func(t *testing.T) {
		require.NoError(t, repo.DeletePlayer(ctx, "p-1"))

		p, err := repo.FindPlayer(ctx, "p-1")
		require.NoError(t, err)
		assert.Nil(t, p)

		records, err := repo.ListRecords(ctx, "p-1")
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestRepository_AuditLog(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	restore := timeNow
	timeNow = func() time.Time { return testTime }
	t.Cleanup(func() { timeNow = restore })

	t.Run("log action with details", func(t *testing.T) {
		err := repo.LogAction(ctx, entities.ActionInteraction, "p-1", "zyx", map[string]any{"delta": 5})
		require.NoError(t, err)
	})

	t.Run("log action without character", func(t *testing.T) {
		err := repo.LogAction(ctx, entities.ActionPlayerCreated, "p-1", "", map[string]any{"name": "Ash"})
		require.NoError(t, err)
	})

	t.Run("log action without details", func(t *testing.T) {
		err := repo.LogAction(ctx, entities.ActionInteraction, "p-1", "luma", nil)
		require.NoError(t, err)
	})

	t.Run("find by player and character", func(t *testing.T) {
		entries, err := repo.FindAuditLog(ctx, "p-1", "zyx", 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, entities.ActionInteraction, entries[0].Action)
		assert.Equal(t, "zyx", entries[0].CharacterID)
		// JSON numbers decode as float64
		assert.InDelta(t, 5.0, entries[0].Details["delta"], 1e-9)
		assert.Equal(t, testTime, entries[0].CreatedAt)
	})

	t.Run("find by player across characters", func(t *testing.T) {
		entries, err := repo.FindAuditLog(ctx, "p-1", "", 0)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		// Newest first
		assert.Equal(t, "luma", entries[0].CharacterID)
		assert.Nil(t, entries[0].Details)
		assert.Empty(t, entries[1].CharacterID)
	})

	t.Run("find by action", func(t *testing.T) {
		entries, err := repo.FindAuditLogByAction(ctx, entities.ActionInteraction, 10)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("find by action with limit", func(t *testing.T) {
		entries, err := repo.FindAuditLogByAction(ctx, entities.ActionInteraction, 1)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "luma", entries[0].CharacterID)
	})
}
