// Package sqlite provides a SQLite implementation of the GameStore interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/starcrossed/internal/domain/entities"
	"github.com/ersonp/starcrossed/internal/domain/ports"
	"github.com/ersonp/starcrossed/internal/infrastructure/config"
)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

var _ ports.GameStore = (*Repository)(nil)

// Repository implements ports.GameStore using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite repository.
func NewRepository(cfg config.SQLiteConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Every connection to ":memory:" is its own database
	if cfg.Path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	// Enable foreign keys for referential integrity
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Players (immutable after creation)
	CREATE TABLE IF NOT EXISTS players (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		stats TEXT NOT NULL,
		traits TEXT NOT NULL,
		preference TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	-- Relationship records (one per player and companion)
	CREATE TABLE IF NOT EXISTS relationships (
		player_id TEXT NOT NULL REFERENCES players(id) ON DELETE CASCADE,
		character_id TEXT NOT NULL,
		affection INTEGER NOT NULL,
		known_info TEXT NOT NULL,
		milestones TEXT NOT NULL,
		photo_unlocks TEXT NOT NULL,
		last_interaction_date TEXT,
		active_conflict TEXT,
		interaction_count INTEGER NOT NULL DEFAULT 0,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (player_id, character_id)
	);
	CREATE INDEX IF NOT EXISTS idx_relationships_player ON relationships(player_id);

	-- Audit log (tracks all actions)
	CREATE TABLE IF NOT EXISTS audit_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		action TEXT NOT NULL,
		player_id TEXT,
		character_id TEXT,
		details TEXT,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_audit_log_player ON audit_log(player_id, character_id);
	CREATE INDEX IF NOT EXISTS idx_audit_log_action ON audit_log(action);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Player methods.

// SavePlayer saves or replaces a player profile.
func (r *Repository) SavePlayer(ctx context.Context, player *entities.PlayerProfile) error {
	stats, err := json.Marshal(player.Stats)
	if err != nil {
		return fmt.Errorf("marshaling stats: %w", err)
	}
	traits, err := json.Marshal(player.Traits)
	if err != nil {
		return fmt.Errorf("marshaling traits: %w", err)
	}

	query := `
		INSERT INTO players (id, name, stats, traits, preference, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			stats = excluded.stats,
			traits = excluded.traits,
			preference = excluded.preference,
			created_at = excluded.created_at
	`
	_, err = r.db.ExecContext(ctx, query,
		player.ID,
		player.Name,
		string(stats),
		string(traits),
		string(player.Preference),
		formatTime(player.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("saving player: %w", err)
	}
	return nil
}

// FindPlayer finds a player by ID. Returns nil if not found.
func (r *Repository) FindPlayer(ctx context.Context, playerID string) (*entities.PlayerProfile, error) {
	query := `
		SELECT id, name, stats, traits, preference, created_at
		FROM players
		WHERE id = ?
	`
	rows, err := r.db.QueryContext(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("querying player: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanPlayer(rows)
}

// ListPlayers lists all players ordered by creation time.
func (r *Repository) ListPlayers(ctx context.Context) ([]entities.PlayerProfile, error) {
	query := `
		SELECT id, name, stats, traits, preference, created_at
		FROM players
		ORDER BY created_at, id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying players: %w", err)
	}
	defer rows.Close()

	players := make([]entities.PlayerProfile, 0, 4)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

// DeletePlayer deletes a player and every record that belongs to it.
func (r *Repository) DeletePlayer(ctx context.Context, playerID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, `DELETE FROM relationships WHERE player_id = ?`, playerID); err != nil {
		return fmt.Errorf("deleting records: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM players WHERE id = ?`, playerID); err != nil {
		return fmt.Errorf("deleting player: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}
	return nil
}

func scanPlayer(rows *sql.Rows) (*entities.PlayerProfile, error) {
	var p entities.PlayerProfile
	var stats, traits, pref, createdAt string

	if err := rows.Scan(&p.ID, &p.Name, &stats, &traits, &pref, &createdAt); err != nil {
		return nil, fmt.Errorf("scanning player: %w", err)
	}
	if err := json.Unmarshal([]byte(stats), &p.Stats); err != nil {
		return nil, fmt.Errorf("unmarshaling stats: %w", err)
	}
	if err := json.Unmarshal([]byte(traits), &p.Traits); err != nil {
		return nil, fmt.Errorf("unmarshaling traits: %w", err)
	}
	p.Preference = entities.SexualPreference(pref)

	t, err := parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	p.CreatedAt = t
	return &p, nil
}

// Relationship record methods.

// SaveRecord saves or replaces a relationship record.
func (r *Repository) SaveRecord(ctx context.Context, record *entities.RelationshipRecord) error {
	known, err := json.Marshal(record.KnownInfo)
	if err != nil {
		return fmt.Errorf("marshaling known info: %w", err)
	}
	milestones, err := json.Marshal(record.Milestones)
	if err != nil {
		return fmt.Errorf("marshaling milestones: %w", err)
	}
	photos, err := json.Marshal(record.PhotoUnlocks)
	if err != nil {
		return fmt.Errorf("marshaling photo unlocks: %w", err)
	}

	var conflict sql.NullString
	if record.ActiveConflict != nil {
		data, err := json.Marshal(record.ActiveConflict)
		if err != nil {
			return fmt.Errorf("marshaling conflict: %w", err)
		}
		conflict = sql.NullString{String: string(data), Valid: true}
	}

	var lastInteraction sql.NullString
	if record.LastInteractionDate != nil {
		lastInteraction = sql.NullString{String: formatTime(*record.LastInteractionDate), Valid: true}
	}

	query := `
		INSERT INTO relationships (
			player_id, character_id, affection, known_info, milestones, photo_unlocks,
			last_interaction_date, active_conflict, interaction_count, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(player_id, character_id) DO UPDATE SET
			affection = excluded.affection,
			known_info = excluded.known_info,
			milestones = excluded.milestones,
			photo_unlocks = excluded.photo_unlocks,
			last_interaction_date = excluded.last_interaction_date,
			active_conflict = excluded.active_conflict,
			interaction_count = excluded.interaction_count,
			updated_at = excluded.updated_at
	`
	_, err = r.db.ExecContext(ctx, query,
		record.PlayerID,
		record.CharacterID,
		record.Affection,
		string(known),
		string(milestones),
		string(photos),
		lastInteraction,
		conflict,
		record.InteractionCount,
		formatTime(record.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("saving record: %w", err)
	}
	return nil
}

// FindRecord finds the record for a player and companion. Returns nil if not found.
func (r *Repository) FindRecord(ctx context.Context, playerID, characterID string) (*entities.RelationshipRecord, error) {
	query := `
		SELECT player_id, character_id, affection, known_info, milestones, photo_unlocks,
			last_interaction_date, active_conflict, interaction_count, updated_at
		FROM relationships
		WHERE player_id = ? AND character_id = ?
	`
	records, err := r.queryRecords(ctx, query, playerID, characterID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// ListRecords lists a player's records ordered by character ID.
func (r *Repository) ListRecords(ctx context.Context, playerID string) ([]entities.RelationshipRecord, error) {
	query := `
		SELECT player_id, character_id, affection, known_info, milestones, photo_unlocks,
			last_interaction_date, active_conflict, interaction_count, updated_at
		FROM relationships
		WHERE player_id = ?
		ORDER BY character_id
	`
	return r.queryRecords(ctx, query, playerID)
}

// queryRecords is a helper to execute relationship record queries.
func (r *Repository) queryRecords(ctx context.Context, query string, args ...any) ([]entities.RelationshipRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	records := make([]entities.RelationshipRecord, 0, 8)
	for rows.Next() {
		var rec entities.RelationshipRecord
		var known, milestones, photos, updatedAt string
		var lastInteraction, conflict sql.NullString

		if err := rows.Scan(
			&rec.PlayerID,
			&rec.CharacterID,
			&rec.Affection,
			&known,
			&milestones,
			&photos,
			&lastInteraction,
			&conflict,
			&rec.InteractionCount,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}

		if err := json.Unmarshal([]byte(known), &rec.KnownInfo); err != nil {
			return nil, fmt.Errorf("unmarshaling known info: %w", err)
		}
		if err := json.Unmarshal([]byte(milestones), &rec.Milestones); err != nil {
			return nil, fmt.Errorf("unmarshaling milestones: %w", err)
		}
		if err := json.Unmarshal([]byte(photos), &rec.PhotoUnlocks); err != nil {
			return nil, fmt.Errorf("unmarshaling photo unlocks: %w", err)
		}
		if conflict.Valid {
			rec.ActiveConflict = &entities.Conflict{}
			if err := json.Unmarshal([]byte(conflict.String), rec.ActiveConflict); err != nil {
				return nil, fmt.Errorf("unmarshaling conflict: %w", err)
			}
		}
		if lastInteraction.Valid {
			t, err := parseTime(lastInteraction.String)
			if err != nil {
				return nil, err
			}
			rec.LastInteractionDate = &t
		}
		if rec.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}

		records = append(records, rec)
	}
	return records, rows.Err()
}

// Audit log methods.

// LogAction logs an action to the audit log.
func (r *Repository) LogAction(ctx context.Context, action, playerID, characterID string, details map[string]any) error {
	var detailsJSON sql.NullString
	if details != nil {
		data, err := json.Marshal(details)
		if err != nil {
			return fmt.Errorf("marshaling details: %w", err)
		}
		detailsJSON = sql.NullString{String: string(data), Valid: true}
	}

	query := `INSERT INTO audit_log (action, player_id, character_id, details, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, action, nullString(playerID), nullString(characterID), detailsJSON, formatTime(timeNow()))
	if err != nil {
		return fmt.Errorf("logging action: %w", err)
	}
	return nil
}

// FindAuditLog finds audit entries for a player and companion, newest first.
// An empty characterID matches every companion. A limit of 0 means no limit.
func (r *Repository) FindAuditLog(ctx context.Context, playerID, characterID string, limit int) ([]entities.AuditEntry, error) {
	query := `
		SELECT id, action, player_id, character_id, details, created_at
		FROM audit_log
		WHERE player_id = ? AND (? = '' OR character_id = ?)
		ORDER BY id DESC
		LIMIT ?
	`
	return r.queryAuditLog(ctx, query, playerID, characterID, characterID, sqlLimit(limit))
}

// FindAuditLogByAction finds audit log entries by action type, newest first.
func (r *Repository) FindAuditLogByAction(ctx context.Context, action string, limit int) ([]entities.AuditEntry, error) {
	query := `
		SELECT id, action, player_id, character_id, details, created_at
		FROM audit_log
		WHERE action = ?
		ORDER BY id DESC
		LIMIT ?
	`
	return r.queryAuditLog(ctx, query, action, sqlLimit(limit))
}

// queryAuditLog is a helper to execute audit log queries.
func (r *Repository) queryAuditLog(ctx context.Context, query string, args ...any) ([]entities.AuditEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying audit log: %w", err)
	}
	defer rows.Close()

	// Use limit parameter as capacity hint if available
	var entries []entities.AuditEntry
	if len(args) > 0 {
		if limit, ok := args[len(args)-1].(int); ok && limit > 0 {
			entries = make([]entities.AuditEntry, 0, limit)
		}
	}

	for rows.Next() {
		var entry entities.AuditEntry
		var playerID, characterID, details sql.NullString
		var createdAt string

		if err := rows.Scan(
			&entry.ID,
			&entry.Action,
			&playerID,
			&characterID,
			&details,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scanning audit entry: %w", err)
		}

		entry.PlayerID = playerID.String
		entry.CharacterID = characterID.String

		if details.Valid && details.String != "" {
			if err := json.Unmarshal([]byte(details.String), &entry.Details); err != nil {
				return nil, fmt.Errorf("unmarshaling details: %w", err)
			}
		}
		if entry.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Times are stored as RFC 3339 text so the zone offset survives a round trip.
func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing time %q: %w", s, err)
	}
	return t, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// sqlLimit maps "no limit" to SQLite's -1.
func sqlLimit(limit int) int {
	if limit <= 0 {
		return -1
	}
	return limit
}
