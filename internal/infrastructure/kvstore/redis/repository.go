// Package redis provides a Redis implementation of the GameStore interface.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ersonp/starcrossed/internal/domain/entities"
	"github.com/ersonp/starcrossed/internal/domain/ports"
	"github.com/ersonp/starcrossed/internal/infrastructure/config"
)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Compile-time check to ensure Repository implements GameStore
var _ ports.GameStore = (*Repository)(nil)

// Repository implements ports.GameStore using Redis.
//
// Key layout, under the configured prefix:
//
//	{p}:player:{id}               player JSON
//	{p}:players                   zset of player IDs scored by creation time
//	{p}:record:{player}:{char}    record JSON
//	{p}:records:{player}          set of character IDs with a record
//	{p}:audit:seq                 audit entry ID counter
//	{p}:audit:player:{player}     list of audit JSON, newest first
//	{p}:audit:action:{action}     list of audit JSON, newest first
type Repository struct {
	client *goredis.Client
	prefix string
	logger *zap.Logger
}

// NewRepository creates a new Redis repository.
func NewRepository(cfg config.RedisConfig, logger *zap.Logger) (*Repository, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis addr is required")
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "starcrossed"
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &Repository{
		client: client,
		prefix: prefix,
		logger: logger.Named("RedisGameStore"),
	}, nil
}

// Close closes the client connection.
func (r *Repository) Close() error {
	return r.client.Close()
}

// EnsureSchema verifies the server is reachable. Redis needs no schema.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("pinging redis: %w", err)
	}
	return nil
}

func (r *Repository) playerKey(id string) string { return fmt.Sprintf("%s:player:%s", r.prefix, id) }
func (r *Repository) playersKey() string        { return r.prefix + ":players" }
func (r *Repository) recordKey(playerID, characterID string) string {
	return fmt.Sprintf("%s:record:%s:%s", r.prefix, playerID, characterID)
}
func (r *Repository) recordsKey(playerID string) string {
	return fmt.Sprintf("%s:records:%s", r.prefix, playerID)
}
func (r *Repository) auditSeqKey() string { return r.prefix + ":audit:seq" }
func (r *Repository) auditPlayerKey(playerID string) string {
	return fmt.Sprintf("%s:audit:player:%s", r.prefix, playerID)
}
func (r *Repository) auditActionKey(action string) string {
	return fmt.Sprintf("%s:audit:action:%s", r.prefix, action)
}

// Player methods.

// SavePlayer saves or replaces a player profile.
func (r *Repository) SavePlayer(ctx context.Context, player *entities.PlayerProfile) error {
	data, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("marshaling player: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.playerKey(player.ID), data, 0)
	pipe.ZAdd(ctx, r.playersKey(), goredis.Z{Score: float64(player.CreatedAt.UnixNano()), Member: player.ID})
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("Failed to save player", zap.String("playerID", player.ID), zap.Error(err))
		return fmt.Errorf("saving player: %w", err)
	}
	return nil
}

// FindPlayer finds a player by ID. Returns nil if not found.
func (r *Repository) FindPlayer(ctx context.Context, playerID string) (*entities.PlayerProfile, error) {
	data, err := r.client.Get(ctx, r.playerKey(playerID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting player: %w", err)
	}

	var p entities.PlayerProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshaling player: %w", err)
	}
	return &p, nil
}

// ListPlayers lists all players ordered by creation time.
func (r *Repository) ListPlayers(ctx context.Context) ([]entities.PlayerProfile, error) {
	ids, err := r.client.ZRange(ctx, r.playersKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("listing player ids: %w", err)
	}
	if len(ids) == 0 {
		return []entities.PlayerProfile{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.playerKey(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("getting players: %w", err)
	}

	players := make([]entities.PlayerProfile, 0, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			r.logger.Warn("Player index points at a missing player", zap.String("playerID", ids[i]))
			continue
		}
		var p entities.PlayerProfile
		if err := json.Unmarshal([]byte(s), &p); err != nil {
			return nil, fmt.Errorf("unmarshaling player %s: %w", ids[i], err)
		}
		players = append(players, p)
	}
	return players, nil
}

// DeletePlayer deletes a player and every record that belongs to it.
func (r *Repository) DeletePlayer(ctx context.Context, playerID string) error {
	characterIDs, err := r.client.SMembers(ctx, r.recordsKey(playerID)).Result()
	if err != nil {
		return fmt.Errorf("listing records: %w", err)
	}

	keys := make([]string, 0, len(characterIDs)+2)
	for _, c := range characterIDs {
		keys = append(keys, r.recordKey(playerID, c))
	}
	keys = append(keys, r.recordsKey(playerID), r.playerKey(playerID))

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, keys...)
	pipe.ZRem(ctx, r.playersKey(), playerID)
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("Failed to delete player", zap.String("playerID", playerID), zap.Error(err))
		return fmt.Errorf("deleting player: %w", err)
	}

	r.logger.Debug("Player deleted", zap.String("playerID", playerID), zap.Int("records", len(characterIDs)))
	return nil
}

// Relationship record methods.

// SaveRecord saves or replaces a relationship record.
func (r *Repository) SaveRecord(ctx context.Context, record *entities.RelationshipRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshaling record: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.recordKey(record.PlayerID, record.CharacterID), data, 0)
	pipe.SAdd(ctx, r.recordsKey(record.PlayerID), record.CharacterID)
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("Failed to save record",
			zap.String("playerID", record.PlayerID),
			zap.String("characterID", record.CharacterID),
			zap.Error(err),
		)
		return fmt.Errorf("saving record: %w", err)
	}
	return nil
}

// FindRecord finds the record for a player and companion. Returns nil if not found.
func (r *Repository) FindRecord(ctx context.Context, playerID, characterID string) (*entities.RelationshipRecord, error) {
	data, err := r.client.Get(ctx, r.recordKey(playerID, characterID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting record: %w", err)
	}

	var rec entities.RelationshipRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unmarshaling record: %w", err)
	}
	return &rec, nil
}

// ListRecords lists a player's records ordered by character ID.
func (r *Repository) ListRecords(ctx context.Context, playerID string) ([]entities.RelationshipRecord, error) {
	characterIDs, err := r.client.SMembers(ctx, r.recordsKey(playerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	if len(characterIDs) == 0 {
		return []entities.RelationshipRecord{}, nil
	}
	sort.Strings(characterIDs)

	keys := make([]string, len(characterIDs))
	for i, c := range characterIDs {
		keys[i] = r.recordKey(playerID, c)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("getting records: %w", err)
	}

	records := make([]entities.RelationshipRecord, 0, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var rec entities.RelationshipRecord
		if err := json.Unmarshal([]byte(s), &rec); err != nil {
			return nil, fmt.Errorf("unmarshaling record %s: %w", characterIDs[i], err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Audit log methods.

// LogAction logs an action to the audit log.
func (r *Repository) LogAction(ctx context.Context, action, playerID, characterID string, details map[string]any) error {
	id, err := r.client.Incr(ctx, r.auditSeqKey()).Result()
	if err != nil {
		return fmt.Errorf("allocating audit id: %w", err)
	}

	entry := entities.AuditEntry{
		ID:          id,
		Action:      action,
		PlayerID:    playerID,
		CharacterID: characterID,
		Details:     details,
		CreatedAt:   timeNow(),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshaling audit entry: %w", err)
	}

	pipe := r.client.TxPipeline()
	if playerID != "" {
		pipe.LPush(ctx, r.auditPlayerKey(playerID), data)
	}
	pipe.LPush(ctx, r.auditActionKey(action), data)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("logging action: %w", err)
	}
	return nil
}

// FindAuditLog finds audit entries for a player and companion, newest first.
// An empty characterID matches every companion. A limit of 0 means no limit.
func (r *Repository) FindAuditLog(ctx context.Context, playerID, characterID string, limit int) ([]entities.AuditEntry, error) {
	return r.readAuditList(ctx, r.auditPlayerKey(playerID), limit, func(e entities.AuditEntry) bool {
		return characterID == "" || e.CharacterID == characterID
	})
}

// FindAuditLogByAction finds audit log entries by action type, newest first.
func (r *Repository) FindAuditLogByAction(ctx context.Context, action string, limit int) ([]entities.AuditEntry, error) {
	return r.readAuditList(ctx, r.auditActionKey(action), limit, nil)
}

// readAuditList decodes an audit list, keeping entries accepted by keep.
func (r *Repository) readAuditList(ctx context.Context, key string, limit int, keep func(entities.AuditEntry) bool) ([]entities.AuditEntry, error) {
	stop := int64(-1)
	if keep == nil && limit > 0 {
		stop = int64(limit - 1)
	}
	values, err := r.client.LRange(ctx, key, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("querying audit log: %w", err)
	}

	var entries []entities.AuditEntry
	for _, v := range values {
		var entry entities.AuditEntry
		if err := json.Unmarshal([]byte(v), &entry); err != nil {
			return nil, fmt.Errorf("unmarshaling audit entry: %w", err)
		}
		if keep != nil && !keep(entry) {
			continue
		}
		entries = append(entries, entry)
		if limit > 0 && len(entries) == limit {
			break
		}
	}
	return entries, nil
}
